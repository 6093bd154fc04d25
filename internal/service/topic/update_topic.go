package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// UpdateTopic replaces name, level, parent and description. The topic row is
// locked for update and the new parent for share, then every direct child is
// re-checked against the new level.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.topics.GetForUpdate(txCtx, input.TopicID); err != nil {
			return fmt.Errorf("get topic: %w", err)
		}

		if input.ParentID != nil {
			if *input.ParentID == input.TopicID {
				return domain.NewConflictError("topic cannot be its own parent")
			}
			if err := s.checkParent(txCtx, *input.ParentID, input.Level); err != nil {
				return err
			}
		}

		minChild, hasChildren, err := s.topics.MinChildLevel(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("check children: %w", err)
		}
		if hasChildren && minChild <= input.Level {
			return domain.NewConflictError("child level %d must be greater than topic level %d", minChild, input.Level)
		}

		var updateErr error
		topic, updateErr = s.topics.Update(txCtx, &domain.Topic{
			ID:          input.TopicID,
			Name:        strings.TrimSpace(input.Name),
			Level:       input.Level,
			ParentID:    input.ParentID,
			Description: trimOrNil(input.Description),
		})
		if updateErr != nil {
			return fmt.Errorf("update topic: %w", updateErr)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic updated",
		slog.String("topic_id", topic.ID.String()),
		slog.String("name", topic.Name),
		slog.Int("level", topic.Level),
	)

	return topic, nil
}
