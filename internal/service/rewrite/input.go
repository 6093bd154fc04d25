package rewrite

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

const (
	maxUserTaskLen  = 2000
	maxWordCountLen = 50
	maxPageSize     = 100
)

// RewriteInput holds the parameters for a rewrite.
type RewriteInput struct {
	StyleID   uuid.UUID
	UserTask  string
	WordCount *string
}

// Validate checks all fields and collects all errors.
func (i RewriteInput) Validate() error {
	var errs []domain.FieldError

	if i.StyleID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "style_id", Message: "required"})
	}
	task := strings.TrimSpace(i.UserTask)
	if task == "" {
		errs = append(errs, domain.FieldError{Field: "user_task", Message: "required"})
	}
	if utf8.RuneCountInString(task) > maxUserTaskLen {
		errs = append(errs, domain.FieldError{Field: "user_task", Message: "max 2000 characters"})
	}
	if i.WordCount != nil && utf8.RuneCountInString(*i.WordCount) > maxWordCountLen {
		errs = append(errs, domain.FieldError{Field: "word_count", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListRecordsInput selects one page of rewrite history.
type ListRecordsInput struct {
	Page     int
	PageSize int
}

// Validate checks all fields and collects all errors.
func (i ListRecordsInput) Validate() error {
	var errs []domain.FieldError

	if i.Page < 1 {
		errs = append(errs, domain.FieldError{Field: "page", Message: "must be at least 1"})
	}
	if i.PageSize < 1 || i.PageSize > maxPageSize {
		errs = append(errs, domain.FieldError{Field: "page_size", Message: "must be between 1 and 100"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
