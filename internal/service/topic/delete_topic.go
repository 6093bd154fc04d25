package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// DeleteResult reports what a cascading delete removed.
type DeleteResult struct {
	Topics       int
	Associations int
}

// DeleteTopic removes the topic, all transitive descendants and every
// association touching any of them, atomically.
func (s *Service) DeleteTopic(ctx context.Context, topicID uuid.UUID) (*DeleteResult, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	var result DeleteResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := s.topics.GetForUpdate(txCtx, topicID); err != nil {
			return fmt.Errorf("get topic: %w", err)
		}

		ids, err := s.topics.SubtreeIDs(txCtx, topicID)
		if err != nil {
			return fmt.Errorf("collect subtree: %w", err)
		}

		assocs, err := s.topics.DeleteAssociationsByTopicIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("delete associations: %w", err)
		}

		topics, err := s.topics.DeleteByIDs(txCtx, ids)
		if err != nil {
			return fmt.Errorf("delete topics: %w", err)
		}

		result = DeleteResult{Topics: int(topics), Associations: int(assocs)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", topicID.String()),
		slog.Int("topics", result.Topics),
		slog.Int("associations", result.Associations),
	)

	return &result, nil
}
