package rewrite

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// RewriteResult is the generated content and the record it was saved as.
type RewriteResult struct {
	RecordID      uuid.UUID
	Title         string
	Content       string
	Tags          string
	ExecutionTime float64
}

// Rewrite applies a stored style to the user's task. The generator is called
// once with no retry. A record is written only when generation succeeds.
func (s *Service) Rewrite(ctx context.Context, input RewriteInput) (*RewriteResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()

	style, err := s.styles.GetByID(ctx, input.StyleID)
	if err != nil {
		return nil, fmt.Errorf("get style: %w", err)
	}

	task := strings.TrimSpace(input.UserTask)
	wordCount := trimOrNil(input.WordCount)

	genCtx, cancel := context.WithTimeout(ctx, s.generateTimeout)
	generated, err := s.generator.Generate(genCtx, domain.GenerationRequest{
		StyleName:     style.StyleName,
		FeatureDesc:   style.FeatureDesc,
		SampleContent: style.SampleContent,
		UserTask:      task,
		WordCount:     wordCount,
	})
	cancel()
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	elapsed := time.Since(start).Seconds()

	rec, err := s.records.Create(ctx, &domain.RewriteRecord{
		StyleID:          &style.ID,
		StyleName:        style.StyleName,
		UserTask:         task,
		WordCount:        wordCount,
		GeneratedTitle:   generated.Title,
		GeneratedContent: generated.Content,
		GeneratedTags:    generated.Tags,
		ExecutionTime:    elapsed,
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	s.log.InfoContext(ctx, "content rewritten",
		slog.String("record_id", rec.ID.String()),
		slog.String("style_id", style.ID.String()),
		slog.Float64("execution_time", elapsed),
	)

	return &RewriteResult{
		RecordID:      rec.ID,
		Title:         generated.Title,
		Content:       generated.Content,
		Tags:          generated.Tags,
		ExecutionTime: elapsed,
	}, nil
}

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
