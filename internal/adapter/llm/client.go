// Package llm implements the AI Extractor and AI Generator on top of the
// Anthropic Messages API. Each operation is exactly one API call.
package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/config"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// Client talks to the Messages API. SDK-level retries are disabled: the
// analysis pipeline owns its retry policy and rewrites are never retried.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
	log       *slog.Logger
}

// New creates a Client from LLMConfig. Extra options are appended after the
// configured ones.
func New(log *slog.Logger, cfg config.LLMConfig, opts ...option.RequestOption) *Client {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		base = append(base, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		api:       anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		log:       log.With("adapter", "llm"),
	}
}

// complete sends one prompt and returns the first JSON object in the reply.
func (c *Client) complete(ctx context.Context, service, op, prompt string) (string, error) {
	msg, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classify(ctx, service, op, err)
	}

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", domain.NewServiceError(service, op, false, errors.New("empty response"))
	}

	c.log.DebugContext(ctx, "llm call completed",
		slog.String("op", op),
		slog.Int64("input_tokens", msg.Usage.InputTokens),
		slog.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	jsonStr, err := extractJSON(text.String())
	if err != nil {
		return "", domain.NewServiceError(service, op, false, err)
	}
	if !json.Valid([]byte(jsonStr)) {
		return "", domain.NewServiceError(service, op, false, errors.New("response does not contain valid JSON"))
	}

	return jsonStr, nil
}

// classify maps SDK and transport errors to ServiceError. Throttling,
// overload, 5xx, network errors and deadlines are temporary.
func classify(ctx context.Context, service, op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return domain.NewServiceError(service, op, true, context.DeadlineExceeded)
	}
	if errors.Is(err, context.Canceled) {
		return domain.NewServiceError(service, op, false, context.Canceled)
	}

	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		temporary := apiErr.StatusCode == http.StatusTooManyRequests || apiErr.StatusCode >= 500
		return domain.NewServiceError(service, op, temporary, fmt.Errorf("api status %d: %w", apiErr.StatusCode, err))
	}

	return domain.NewServiceError(service, op, true, err)
}

// extractJSON finds the first complete JSON object in a string.
func extractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return s[start : end+1], nil
}
