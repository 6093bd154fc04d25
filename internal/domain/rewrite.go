package domain

import (
	"time"

	"github.com/google/uuid"
)

// GenerationRequest is the input handed to the AI generator.
type GenerationRequest struct {
	StyleName     string
	FeatureDesc   string
	SampleContent string
	UserTask      string
	WordCount     *string // passed through uninterpreted
}

// GeneratedContent is the output of the AI generator.
type GeneratedContent struct {
	Title   string
	Content string
	Tags    string
}

// RewriteRecord is an immutable history row written after a successful rewrite.
// StyleName is a snapshot taken when the rewrite ran; StyleID is informational
// and may point to a style that no longer exists.
type RewriteRecord struct {
	ID               uuid.UUID
	StyleID          *uuid.UUID
	StyleName        string
	UserTask         string
	WordCount        *string
	GeneratedTitle   string
	GeneratedContent string
	GeneratedTags    string
	ExecutionTime    float64 // seconds
	CreatedAt        time.Time
}

// RecordPage is one page of rewrite history, newest first.
type RecordPage struct {
	Records    []*RewriteRecord
	Total      int
	TotalPages int
	Page       int
	PageSize   int
}

// TotalPages returns ceil(total / pageSize); zero when pageSize is not positive.
func TotalPages(total, pageSize int) int {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	return (total + pageSize - 1) / pageSize
}
