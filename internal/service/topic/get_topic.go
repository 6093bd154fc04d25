package topic

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// GetTopic returns a single topic.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	return topic, nil
}

// ListTopics returns the flat topic list ordered by level and creation time.
func (s *Service) ListTopics(ctx context.Context, input ListTopicsInput) ([]*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	topics, err := s.topics.List(ctx, domain.TopicFilter{Level: input.Level, ParentID: input.ParentID})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

// Hierarchy returns the nested forest. With a nil parentID the roots are the
// parentless topics; otherwise they are the direct children of parentID.
// All topics are loaded in one query and grouped in memory.
func (s *Service) Hierarchy(ctx context.Context, parentID *uuid.UUID) ([]*domain.TopicNode, error) {
	if parentID != nil {
		if _, err := s.topics.GetByID(ctx, *parentID); err != nil {
			return nil, fmt.Errorf("get parent: %w", err)
		}
	}

	topics, err := s.topics.List(ctx, domain.TopicFilter{})
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	return domain.BuildTopicForest(topics, parentID), nil
}
