package analysis

import (
	"context"
	"log/slog"
	"strings"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/config"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

type noteFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*domain.Note, error)
}

type styleExtractor interface {
	Extract(ctx context.Context, title, content string) (*domain.StyleProfile, error)
}

type styleRepo interface {
	Create(ctx context.Context, style *domain.Style) (*domain.Style, error)
}

// Service is the Analysis Pipeline: it turns reference notes into persisted
// style profiles, one at a time or in batches of URLs.
type Service struct {
	fetcher   noteFetcher
	extractor styleExtractor
	styles    styleRepo
	cfg       config.AnalysisConfig
	log       *slog.Logger
}

// NewService creates a new Analysis service.
func NewService(
	log *slog.Logger,
	fetcher noteFetcher,
	extractor styleExtractor,
	styles styleRepo,
	cfg config.AnalysisConfig,
) *Service {
	return &Service{
		fetcher:   fetcher,
		extractor: extractor,
		styles:    styles,
		cfg:       cfg,
		log:       log.With("service", "analysis"),
	}
}

// extract calls the extractor under its own deadline.
func (s *Service) extract(ctx context.Context, title, content string) (*domain.StyleProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ExtractTimeout)
	defer cancel()

	return s.extractor.Extract(ctx, title, content)
}

func newStyle(title, content string, profile *domain.StyleProfile) *domain.Style {
	style := &domain.Style{
		StyleName:     profile.StyleName,
		FeatureDesc:   profile.FeatureDesc,
		Category:      profile.Category,
		SampleContent: content,
	}
	if t := strings.TrimSpace(title); t != "" {
		style.SampleTitle = &t
	}
	return style
}
