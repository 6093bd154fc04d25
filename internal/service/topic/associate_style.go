package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// AssociateStyle links a style to a topic. Associating an existing pair is a
// no-op.
func (s *Service) AssociateStyle(ctx context.Context, input AssociationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.topics.GetByID(ctx, input.TopicID); err != nil {
		return fmt.Errorf("get topic: %w", err)
	}
	if _, err := s.styles.GetByID(ctx, input.StyleID); err != nil {
		return fmt.Errorf("get style: %w", err)
	}

	created, err := s.topics.Associate(ctx, input.TopicID, input.StyleID)
	if err != nil {
		return fmt.Errorf("associate style: %w", err)
	}

	s.log.InfoContext(ctx, "style associated",
		slog.String("topic_id", input.TopicID.String()),
		slog.String("style_id", input.StyleID.String()),
		slog.Bool("created", created),
	)

	return nil
}

// DisassociateStyle removes the pair. Removing a missing pair is a no-op.
func (s *Service) DisassociateStyle(ctx context.Context, input AssociationInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if _, err := s.topics.GetByID(ctx, input.TopicID); err != nil {
		return fmt.Errorf("get topic: %w", err)
	}

	if err := s.topics.Disassociate(ctx, input.TopicID, input.StyleID); err != nil {
		return fmt.Errorf("disassociate style: %w", err)
	}

	s.log.InfoContext(ctx, "style disassociated",
		slog.String("topic_id", input.TopicID.String()),
		slog.String("style_id", input.StyleID.String()),
	)

	return nil
}

// AssociatedStyles returns the styles linked to a topic.
func (s *Service) AssociatedStyles(ctx context.Context, topicID uuid.UUID) ([]*domain.Style, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	if _, err := s.topics.GetByID(ctx, topicID); err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}

	styles, err := s.styles.ListByTopicID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}
	return styles, nil
}
