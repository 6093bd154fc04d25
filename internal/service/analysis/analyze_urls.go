package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// Outcome is the per-URL result of a batch analysis.
type Outcome string

const (
	// OutcomeAnalyzed means the note was fetched and its style persisted.
	OutcomeAnalyzed Outcome = "analyzed"
	// OutcomeFetchedOnly means the note was fetched but no style was persisted.
	OutcomeFetchedOnly Outcome = "fetched_only"
	// OutcomeFailed means the note could not be fetched.
	OutcomeFailed Outcome = "failed"
)

// ItemResult is the outcome for one URL. Note is set unless Status is
// OutcomeFailed; Style is set only for OutcomeAnalyzed.
type ItemResult struct {
	URL    string
	Status Outcome
	Note   *domain.Note
	Style  *domain.Style
	Err    error
}

// ItemError is a per-URL failure reason.
type ItemError struct {
	URL    string
	Reason string
}

// BatchResult aggregates a batch analysis in input order.
type BatchResult struct {
	Success       bool
	Message       string
	Results       []ItemResult
	Notes         []*domain.Note
	Analyses      []*domain.Style
	Errors        []ItemError
	ExecutionTime float64
}

// AnalyzeURLs fetches and analyzes every URL in the raw list with a bounded
// worker pool. A failing URL never aborts the others. The batch succeeds when
// at least one note was fetched.
//
// The whole batch runs under analysis.batch_timeout. When ctx is cancelled or
// the batch deadline passes, URLs not yet finished are reported as failed with
// the context error. Styles persisted before cancellation stay persisted.
func (s *Service) AnalyzeURLs(ctx context.Context, input AnalyzeURLsInput) (*BatchResult, error) {
	urls := domain.ParseURLList(input.URLs)
	if len(urls) == 0 {
		return nil, domain.NewValidationError("urls", "at least one url is required")
	}
	if len(urls) > s.cfg.MaxURLs {
		return nil, domain.NewValidationError("urls", fmt.Sprintf("max %d urls per batch", s.cfg.MaxURLs))
	}

	start := time.Now()

	batchCtx, cancel := context.WithTimeout(ctx, s.cfg.BatchTimeout)
	defer cancel()

	results := s.runPool(batchCtx, urls)
	batch := summarize(results)
	batch.ExecutionTime = time.Since(start).Seconds()

	s.log.InfoContext(ctx, "batch analyzed",
		slog.Int("urls", len(urls)),
		slog.Int("analyzed", len(batch.Analyses)),
		slog.Int("fetched", len(batch.Notes)),
		slog.Int("failed", len(batch.Errors)),
		slog.Float64("execution_time", batch.ExecutionTime),
	)

	return batch, nil
}

// runPool drains a queue of URL indexes with min(concurrency, len(urls))
// workers. Each worker writes only the slots it dequeued.
func (s *Service) runPool(ctx context.Context, urls []string) []ItemResult {
	results := make([]ItemResult, len(urls))
	tasks := make(chan int)

	var g errgroup.Group

	g.Go(func() error {
		defer close(tasks)
		for i := range urls {
			if ctx.Err() != nil {
				return nil
			}
			select {
			case tasks <- i:
			case <-ctx.Done():
				return nil
			}
		}
		return nil
	})

	for range min(s.cfg.Concurrency, len(urls)) {
		g.Go(func() error {
			for i := range tasks {
				results[i] = s.process(ctx, urls[i])
			}
			return nil
		})
	}

	_ = g.Wait()

	for i := range results {
		if results[i].Status == "" {
			results[i] = ItemResult{URL: urls[i], Status: OutcomeFailed, Err: ctx.Err()}
		}
	}
	return results
}

// process runs fetch then extract for a single URL.
func (s *Service) process(ctx context.Context, rawURL string) ItemResult {
	note, err := s.fetchWithRetry(ctx, rawURL)
	if err != nil {
		s.log.WarnContext(ctx, "fetch failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return ItemResult{URL: rawURL, Status: OutcomeFailed, Err: err}
	}

	profile, err := s.extract(ctx, note.Title, note.Content)
	if err != nil {
		s.log.WarnContext(ctx, "extract failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return ItemResult{URL: rawURL, Status: OutcomeFetchedOnly, Note: note, Err: fmt.Errorf("extract style: %w", err)}
	}

	style, err := s.styles.Create(ctx, newStyle(note.Title, note.Content, profile))
	if err != nil {
		s.log.WarnContext(ctx, "persist style failed", slog.String("url", rawURL), slog.String("error", err.Error()))
		return ItemResult{URL: rawURL, Status: OutcomeFetchedOnly, Note: note, Err: fmt.Errorf("create style: %w", err)}
	}

	return ItemResult{URL: rawURL, Status: OutcomeAnalyzed, Note: note, Style: style}
}

func summarize(results []ItemResult) *BatchResult {
	batch := &BatchResult{
		Results:  results,
		Notes:    []*domain.Note{},
		Analyses: []*domain.Style{},
		Errors:   []ItemError{},
	}

	for _, r := range results {
		if r.Note != nil {
			batch.Notes = append(batch.Notes, r.Note)
		}
		if r.Style != nil {
			batch.Analyses = append(batch.Analyses, r.Style)
		}
		if r.Err != nil {
			batch.Errors = append(batch.Errors, ItemError{URL: r.URL, Reason: r.Err.Error()})
		}
	}

	batch.Success = len(batch.Notes) > 0
	switch {
	case !batch.Success:
		batch.Message = fmt.Sprintf("all %d urls failed", len(results))
	case len(batch.Errors) > 0:
		batch.Message = fmt.Sprintf("analyzed %d of %d urls", len(batch.Analyses), len(results))
	}

	return batch
}
