package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// AnalyzeResult is the persisted style and the wall-clock seconds it took.
type AnalyzeResult struct {
	Style         *domain.Style
	ExecutionTime float64
}

// AnalyzeSingle extracts a style from a caller-supplied note and persists it.
// Nothing is written when extraction fails.
func (s *Service) AnalyzeSingle(ctx context.Context, input AnalyzeInput) (*AnalyzeResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)

	profile, err := s.extract(ctx, title, content)
	if err != nil {
		return nil, fmt.Errorf("extract style: %w", err)
	}

	style, err := s.styles.Create(ctx, newStyle(title, content, profile))
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	elapsed := time.Since(start).Seconds()

	s.log.InfoContext(ctx, "style analyzed",
		slog.String("style_id", style.ID.String()),
		slog.String("style_name", style.StyleName),
		slog.Float64("execution_time", elapsed),
	)

	return &AnalyzeResult{Style: style, ExecutionTime: elapsed}, nil
}
