package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// fetchWithRetry fetches rawURL, retrying temporary failures with
// exponential backoff. Every attempt gets its own timeout.
func (s *Service) fetchWithRetry(ctx context.Context, rawURL string) (*domain.Note, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.cfg.FetchInitialBackoff
	b.MaxInterval = s.cfg.FetchMaxBackoff
	b.MaxElapsedTime = 0
	b.Reset()

	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(s.cfg.FetchMaxAttempts-1)), ctx)

	var note *domain.Note
	attempt := 0
	op := func() error {
		attempt++
		attemptCtx, cancel := context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()

		n, err := s.fetcher.Fetch(attemptCtx, rawURL)
		if err != nil {
			if ctx.Err() != nil || !domain.IsTemporary(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		note = n
		return nil
	}

	notify := func(err error, wait time.Duration) {
		s.log.DebugContext(ctx, "fetch retry",
			slog.String("url", rawURL),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return nil, err
	}
	return note, nil
}
