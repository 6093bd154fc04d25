package topic

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetForShare(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	Update(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	List(ctx context.Context, filter domain.TopicFilter) ([]*domain.Topic, error)

	// Hierarchy
	MinChildLevel(ctx context.Context, id uuid.UUID) (int, bool, error)
	SubtreeIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error)
	DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error)

	// M2M: topic <-> style
	Associate(ctx context.Context, topicID, styleID uuid.UUID) (bool, error)
	Disassociate(ctx context.Context, topicID, styleID uuid.UUID) error
	DeleteAssociationsByTopicIDs(ctx context.Context, topicIDs []uuid.UUID) (int64, error)
}

type styleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error)
	ListByTopicID(ctx context.Context, topicID uuid.UUID) ([]*domain.Style, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the Topic Store: taxonomy CRUD, hierarchy reads and
// topic-style associations.
type Service struct {
	topics topicRepo
	styles styleRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Topic service.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	styles styleRepo,
	tx txManager,
) *Service {
	return &Service{
		topics: topics,
		styles: styles,
		tx:     tx,
		log:    log.With("service", "topic"),
	}
}

// checkParent loads the parent under a share lock and verifies that it sits
// strictly above level.
func (s *Service) checkParent(ctx context.Context, parentID uuid.UUID, level int) error {
	parent, err := s.topics.GetForShare(ctx, parentID)
	if err != nil {
		return fmt.Errorf("get parent: %w", err)
	}
	if parent.Level >= level {
		return domain.NewConflictError("parent level %d must be less than topic level %d", parent.Level, level)
	}
	return nil
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
