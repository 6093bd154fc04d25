package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// CreateTopic validates the parent and inserts the topic in one transaction.
// Listed styles are associated in the same transaction.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var topic *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.ParentID != nil {
			if err := s.checkParent(txCtx, *input.ParentID, input.Level); err != nil {
				return err
			}
		}

		var createErr error
		topic, createErr = s.topics.Create(txCtx, &domain.Topic{
			Name:        strings.TrimSpace(input.Name),
			Level:       input.Level,
			ParentID:    input.ParentID,
			Description: trimOrNil(input.Description),
		})
		if createErr != nil {
			return fmt.Errorf("create topic: %w", createErr)
		}

		seen := make(map[uuid.UUID]bool, len(input.StyleIDs))
		for _, styleID := range input.StyleIDs {
			if seen[styleID] {
				continue
			}
			seen[styleID] = true

			if _, err := s.styles.GetByID(txCtx, styleID); err != nil {
				return fmt.Errorf("get style: %w", err)
			}
			if _, err := s.topics.Associate(txCtx, topic.ID, styleID); err != nil {
				return fmt.Errorf("associate style: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("name", topic.Name),
		slog.Int("level", topic.Level),
		slog.Int("styles", len(input.StyleIDs)),
	)

	return topic, nil
}
