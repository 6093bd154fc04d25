// Package fetcher implements the Content Fetcher: it downloads a note page
// and scrapes its title and body with goquery.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/config"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

const opFetch = "fetch"

var errNoContent = errors.New("page has no note content")

// Selectors tried in order; the first non-empty match wins.
var (
	titleSelectors = []selector{
		{query: `meta[property="og:title"]`, attr: "content"},
		{query: "#detail-title"},
		{query: "h1.title"},
		{query: "title"},
	}
	contentSelectors = []selector{
		{query: "#detail-desc"},
		{query: "div.desc"},
		{query: `meta[name="description"]`, attr: "content"},
		{query: `meta[property="og:description"]`, attr: "content"},
	}
)

type selector struct {
	query string
	attr  string
}

// Fetcher is a rate-limited HTTP note scraper.
type Fetcher struct {
	client  *http.Client
	limiter *rate.Limiter
	cfg     config.FetcherConfig
	log     *slog.Logger
}

// New creates a Fetcher. A nil client falls back to http.DefaultClient;
// per-request deadlines come from the caller's context.
func New(log *slog.Logger, cfg config.FetcherConfig, client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		cfg:     cfg,
		log:     log.With("adapter", "fetcher"),
	}
}

// Fetch downloads rawURL and extracts the note. Failures are returned as
// *domain.ServiceError; Temporary is set for throttling, 5xx, network
// errors and timeouts.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*domain.Note, error) {
	u, err := url.Parse(rawURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, false,
			fmt.Errorf("invalid url %q", rawURL))
	}

	if err := f.limiter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return nil, ctxError(ctx, err)
		}
		// The limiter refuses early when the wait would outlive the deadline.
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, true, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, false, err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	if f.cfg.Cookie != "" {
		req.Header.Set("Cookie", f.cfg.Cookie)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctxError(ctx, err)
		}
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, true, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		temporary := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, temporary,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctxError(ctx, err)
		}
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, false, fmt.Errorf("parse html: %w", err))
	}

	note := &domain.Note{
		URL:     rawURL,
		Title:   firstMatch(doc, titleSelectors),
		Content: firstMatch(doc, contentSelectors),
	}
	if note.Content == "" {
		return nil, domain.NewServiceError(domain.ServiceFetcher, opFetch, false, errNoContent)
	}

	f.log.DebugContext(ctx, "note fetched",
		slog.String("url", rawURL),
		slog.Int("content_len", len(note.Content)),
	)

	return note, nil
}

func firstMatch(doc *goquery.Document, selectors []selector) string {
	for _, s := range selectors {
		sel := doc.Find(s.query).First()
		if sel.Length() == 0 {
			continue
		}
		var text string
		if s.attr != "" {
			text, _ = sel.Attr(s.attr)
		} else {
			text = sel.Text()
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

// ctxError reports a cancelled caller as permanent and an expired deadline
// as a temporary timeout.
func ctxError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewServiceError(domain.ServiceFetcher, opFetch, true, context.DeadlineExceeded)
	}
	if ctx.Err() != nil {
		return domain.NewServiceError(domain.ServiceFetcher, opFetch, false, ctx.Err())
	}
	return domain.NewServiceError(domain.ServiceFetcher, opFetch, false, err)
}
