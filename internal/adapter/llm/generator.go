package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

const opGenerate = "generate"

type generation struct {
	Title   string          `json:"title"`
	Content string          `json:"content"`
	Tags    json.RawMessage `json:"tags"`
}

// Generate writes new copy in the given style. The word count is passed to
// the model as-is and never checked against the result.
func (c *Client) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GeneratedContent, error) {
	raw, err := c.complete(ctx, domain.ServiceGenerator, opGenerate, buildGeneratePrompt(req))
	if err != nil {
		return nil, err
	}

	var out generation
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, domain.NewServiceError(domain.ServiceGenerator, opGenerate, false, fmt.Errorf("decode generation: %w", err))
	}

	tags, err := parseTags(out.Tags)
	if err != nil {
		return nil, domain.NewServiceError(domain.ServiceGenerator, opGenerate, false, err)
	}

	result := &domain.GeneratedContent{
		Title:   strings.TrimSpace(out.Title),
		Content: strings.TrimSpace(out.Content),
		Tags:    tags,
	}
	if result.Content == "" {
		return nil, domain.NewServiceError(domain.ServiceGenerator, opGenerate, false, errors.New("generation has no content"))
	}

	c.log.InfoContext(ctx, "content generated",
		slog.String("style_name", req.StyleName),
		slog.Int("content_len", len(result.Content)),
	)

	return result, nil
}

// parseTags accepts either a string or an array of strings.
func parseTags(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s), nil
	}

	var list []string
	if err := json.Unmarshal(raw, &list); err != nil {
		return "", fmt.Errorf("tags must be a string or an array of strings: %w", err)
	}

	parts := make([]string, 0, len(list))
	for _, tag := range list {
		if tag = strings.TrimSpace(tag); tag != "" {
			parts = append(parts, tag)
		}
	}
	return strings.Join(parts, " "), nil
}

func buildGeneratePrompt(req domain.GenerationRequest) string {
	wordCount := "not specified"
	if req.WordCount != nil && strings.TrimSpace(*req.WordCount) != "" {
		wordCount = strings.TrimSpace(*req.WordCount)
	}

	return fmt.Sprintf(`Write a viral Xiaohongshu (RED) note following the reference writing style.

# Style

Style name: %s
Features: %s
Word count: %s

## Style sample

%s

# Other requirements

%s

Produce brand-new original copy that matches the style and the requirements.

Output ONLY a valid JSON object matching this exact schema:
{
  "title": "<note title>",
  "content": "<note body>",
  "tags": "<hashtags separated by spaces>"
}

Rules:
- Write in the same language as the style sample
- Output ONLY the JSON, no markdown, no explanations`,
		req.StyleName, req.FeatureDesc, wordCount, req.SampleContent, req.UserTask)
}
