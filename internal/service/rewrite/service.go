package rewrite

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

type styleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error)
}

type recordRepo interface {
	Create(ctx context.Context, rec *domain.RewriteRecord) (*domain.RewriteRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.RewriteRecord, error)
	Count(ctx context.Context) (int, error)
	List(ctx context.Context, limit, offset int) ([]*domain.RewriteRecord, error)
}

type contentGenerator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedContent, error)
}

// Service is the Rewrite Orchestrator and the Record Query Service.
type Service struct {
	styles          styleRepo
	records         recordRepo
	generator       contentGenerator
	generateTimeout time.Duration
	log             *slog.Logger
}

// NewService creates a new Rewrite service.
func NewService(
	log *slog.Logger,
	styles styleRepo,
	records recordRepo,
	generator contentGenerator,
	generateTimeout time.Duration,
) *Service {
	return &Service{
		styles:          styles,
		records:         records,
		generator:       generator,
		generateTimeout: generateTimeout,
		log:             log.With("service", "rewrite"),
	}
}
