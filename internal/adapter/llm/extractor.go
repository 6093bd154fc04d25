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

const opExtract = "extract"

type extraction struct {
	StyleName   string `json:"style_name"`
	FeatureDesc string `json:"feature_desc"`
	Category    string `json:"category"`
}

// Extract derives a style profile from a reference note.
func (c *Client) Extract(ctx context.Context, title, content string) (*domain.StyleProfile, error) {
	raw, err := c.complete(ctx, domain.ServiceExtractor, opExtract, buildExtractPrompt(title, content))
	if err != nil {
		return nil, err
	}

	var out extraction
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, domain.NewServiceError(domain.ServiceExtractor, opExtract, false, fmt.Errorf("decode extraction: %w", err))
	}

	profile := &domain.StyleProfile{
		StyleName:   strings.TrimSpace(out.StyleName),
		FeatureDesc: strings.TrimSpace(out.FeatureDesc),
		Category:    strings.TrimSpace(out.Category),
	}
	if profile.StyleName == "" || profile.FeatureDesc == "" {
		return nil, domain.NewServiceError(domain.ServiceExtractor, opExtract, false,
			errors.New("extraction is missing style_name or feature_desc"))
	}

	c.log.InfoContext(ctx, "style extracted",
		slog.String("style_name", profile.StyleName),
		slog.String("category", profile.Category),
	)

	return profile, nil
}

func buildExtractPrompt(title, content string) string {
	return fmt.Sprintf(`You are an expert analyst of Xiaohongshu (RED) note writing styles.

Analyze the writing style of the reference note below.

**Title**

%s

**Content**

%s

Output ONLY a valid JSON object matching this exact schema:
{
  "style_name": "<short name of the style>",
  "feature_desc": "<one sentence describing what characterizes the copy>",
  "category": "<recommended categories joined with '-'>"
}

Rules:
- Write the values in the same language as the reference note
- Output ONLY the JSON, no markdown, no explanations`, title, content)
}
