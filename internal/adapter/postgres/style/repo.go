// Package style implements the Style repository using PostgreSQL.
// Styles are append-only; the only mutation after insert is deletion.
package style

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/Fun-Fox/xhs-ai-note-styler/internal/adapter/postgres"
	"github.com/Fun-Fox/xhs-ai-note-styler/internal/domain"
)

const tableStyles = "styles"

var styleColumns = []string{
	"id", "style_name", "feature_desc", "category", "sample_title", "sample_content", "created_at",
}

// Repo provides style persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new style repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type styleRow struct {
	ID            uuid.UUID `db:"id"`
	StyleName     string    `db:"style_name"`
	FeatureDesc   string    `db:"feature_desc"`
	Category      string    `db:"category"`
	SampleTitle   *string   `db:"sample_title"`
	SampleContent string    `db:"sample_content"`
	CreatedAt     time.Time `db:"created_at"`
}

func (r styleRow) toDomain() *domain.Style {
	return &domain.Style{
		ID:            r.ID,
		StyleName:     r.StyleName,
		FeatureDesc:   r.FeatureDesc,
		Category:      r.Category,
		SampleTitle:   r.SampleTitle,
		SampleContent: r.SampleContent,
		CreatedAt:     r.CreatedAt.UTC(),
	}
}

func toDomainStyles(rows []styleRow) []*domain.Style {
	styles := make([]*domain.Style, len(rows))
	for i, row := range rows {
		styles[i] = row.toDomain()
	}
	return styles
}

// Create inserts a new style row. Re-analyzing the same source always
// produces a new row.
func (r *Repo) Create(ctx context.Context, s *domain.Style) (*domain.Style, error) {
	sql, args, err := postgres.Builder.
		Insert(tableStyles).
		Columns("style_name", "feature_desc", "category", "sample_title", "sample_content").
		Values(s.StyleName, s.FeatureDesc, s.Category, s.SampleTitle, s.SampleContent).
		Suffix("RETURNING " + strings.Join(styleColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create style: %w", err)
	}

	var row styleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "style", uuid.Nil)
	}

	return row.toDomain(), nil
}

// GetByID returns a style by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Style, error) {
	sql, args, err := postgres.Builder.
		Select(styleColumns...).
		From(tableStyles).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get style: %w", err)
	}

	var row styleRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "style", id)
	}

	return row.toDomain(), nil
}

// List returns styles newest first, optionally restricted to one category.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, category string) ([]*domain.Style, error) {
	query := postgres.Builder.
		Select(styleColumns...).
		From(tableStyles).
		OrderBy("created_at DESC", "id DESC")
	if category != "" {
		query = query.Where(squirrel.Eq{"category": category})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list styles: %w", err)
	}

	var rows []styleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list styles: %w", err)
	}

	return toDomainStyles(rows), nil
}

// ListByTopicID returns the styles associated with a topic, newest first.
func (r *Repo) ListByTopicID(ctx context.Context, topicID uuid.UUID) ([]*domain.Style, error) {
	cols := make([]string, len(styleColumns))
	for i, c := range styleColumns {
		cols[i] = "s." + c
	}

	sql, args, err := postgres.Builder.
		Select(cols...).
		From(tableStyles + " s").
		Join("topic_styles ts ON ts.style_id = s.id").
		Where(squirrel.Eq{"ts.topic_id": topicID}).
		OrderBy("s.created_at DESC", "s.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list styles by topic: %w", err)
	}

	var rows []styleRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic_style", topicID)
	}

	return toDomainStyles(rows), nil
}

// Delete removes a style and every association referencing it.
// Rewrite records keep their style_name snapshot.
// Returns domain.ErrNotFound if the style does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	sql, args, err := postgres.Builder.
		Delete("topic_styles").
		Where(squirrel.Eq{"style_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete style associations: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "style", id)
	}

	sql, args, err = postgres.Builder.
		Delete(tableStyles).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete style: %w", err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "style", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("style %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
