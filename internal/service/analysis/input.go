package analysis

import (
	"strings"
	"unicode/utf8"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

const (
	maxTitleLen   = 200
	maxContentLen = 20000
)

// AnalyzeInput is a note supplied directly by the caller.
type AnalyzeInput struct {
	Title   string
	Content string
}

// Validate checks all fields and collects all errors.
func (i AnalyzeInput) Validate() error {
	var errs []domain.FieldError

	if utf8.RuneCountInString(strings.TrimSpace(i.Title)) > maxTitleLen {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 200 characters"})
	}
	content := strings.TrimSpace(i.Content)
	if content == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	}
	if utf8.RuneCountInString(content) > maxContentLen {
		errs = append(errs, domain.FieldError{Field: "content", Message: "max 20000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AnalyzeURLsInput is the raw URL list as typed by the user.
type AnalyzeURLsInput struct {
	URLs string
}
