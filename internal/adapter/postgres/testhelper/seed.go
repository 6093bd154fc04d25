package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTopic inserts a topic at the given level under parent (nil for a root).
func SeedTopic(t *testing.T, pool *pgxpool.Pool, level int, parent *uuid.UUID) domain.Topic {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	topic := domain.Topic{
		ID:        uuid.New(),
		Name:      "topic-" + uniqueSuffix(),
		Level:     level,
		ParentID:  parent,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topics (id, name, level, parent_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		topic.ID, topic.Name, topic.Level, topic.ParentID, topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedStyle inserts a style with unique name and the given category.
func SeedStyle(t *testing.T, pool *pgxpool.Pool, category string) domain.Style {
	t.Helper()

	suffix := uniqueSuffix()
	title := "sample title " + suffix
	style := domain.Style{
		ID:            uuid.New(),
		StyleName:     "style-" + suffix,
		FeatureDesc:   "short sentences, many emoji",
		Category:      category,
		SampleTitle:   &title,
		SampleContent: "sample content " + suffix,
		CreatedAt:     time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO styles (id, style_name, feature_desc, category, sample_title, sample_content, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		style.ID, style.StyleName, style.FeatureDesc, style.Category, style.SampleTitle, style.SampleContent, style.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStyle: %v", err)
	}

	return style
}

// SeedAssociation links a topic and a style.
func SeedAssociation(t *testing.T, pool *pgxpool.Pool, topicID, styleID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO topic_styles (topic_id, style_id) VALUES ($1, $2)`, topicID, styleID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAssociation: %v", err)
	}
}

// CountAssociations returns the number of topic_styles rows for the pair.
func CountAssociations(t *testing.T, pool *pgxpool.Pool, topicID, styleID uuid.UUID) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM topic_styles WHERE topic_id = $1 AND style_id = $2`, topicID, styleID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAssociations: %v", err)
	}
	return n
}
