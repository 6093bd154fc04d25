package style

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

type styleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error)
	List(ctx context.Context, category string) ([]*domain.Style, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service is the Style Registry: reads and deletion of extracted styles.
// Styles are only ever created by the analysis pipeline.
type Service struct {
	styles styleRepo
	tx     txManager
	log    *slog.Logger
}

// NewService creates a new Style service.
func NewService(log *slog.Logger, styles styleRepo, tx txManager) *Service {
	return &Service{
		styles: styles,
		tx:     tx,
		log:    log.With("service", "style"),
	}
}

// ListStyles returns styles newest first, optionally narrowed to one category.
func (s *Service) ListStyles(ctx context.Context, category string) ([]*domain.Style, error) {
	styles, err := s.styles.List(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}
	return styles, nil
}

// GetStyle returns a single style.
func (s *Service) GetStyle(ctx context.Context, styleID uuid.UUID) (*domain.Style, error) {
	if styleID == uuid.Nil {
		return nil, domain.NewValidationError("style_id", "required")
	}

	style, err := s.styles.GetByID(ctx, styleID)
	if err != nil {
		return nil, fmt.Errorf("get style: %w", err)
	}
	return style, nil
}

// DeleteStyle removes the style together with its topic associations.
func (s *Service) DeleteStyle(ctx context.Context, styleID uuid.UUID) error {
	if styleID == uuid.Nil {
		return domain.NewValidationError("style_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.styles.Delete(txCtx, styleID); err != nil {
			return fmt.Errorf("delete style: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "style deleted", slog.String("style_id", styleID.String()))
	return nil
}
