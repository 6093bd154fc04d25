package domain

import (
	"time"

	"github.com/google/uuid"
)

// Style is a style profile extracted from a reference note. Rows are
// append-only: analyzing the same note twice yields two rows.
type Style struct {
	ID            uuid.UUID
	StyleName     string
	FeatureDesc   string
	Category      string
	SampleTitle   *string
	SampleContent string
	CreatedAt     time.Time
}

// StyleProfile is what the AI extractor derives from a note.
type StyleProfile struct {
	StyleName   string
	FeatureDesc string
	Category    string
}

// Note is a reference note obtained by the content fetcher.
type Note struct {
	URL     string
	Title   string
	Content string
}
