// Package record implements the RewriteRecord repository using PostgreSQL.
// Records are immutable once written.
package record

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

const tableRecords = "rewrite_records"

var recordColumns = []string{
	"id", "style_id", "style_name", "user_task", "word_count",
	"generated_title", "generated_content", "generated_tags", "execution_time", "created_at",
}

// Repo provides rewrite record persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new record repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type recordRow struct {
	ID               uuid.UUID  `db:"id"`
	StyleID          *uuid.UUID `db:"style_id"`
	StyleName        string     `db:"style_name"`
	UserTask         string     `db:"user_task"`
	WordCount        *string    `db:"word_count"`
	GeneratedTitle   string     `db:"generated_title"`
	GeneratedContent string     `db:"generated_content"`
	GeneratedTags    string     `db:"generated_tags"`
	ExecutionTime    float64    `db:"execution_time"`
	CreatedAt        time.Time  `db:"created_at"`
}

func (r recordRow) toDomain() *domain.RewriteRecord {
	return &domain.RewriteRecord{
		ID:               r.ID,
		StyleID:          r.StyleID,
		StyleName:        r.StyleName,
		UserTask:         r.UserTask,
		WordCount:        r.WordCount,
		GeneratedTitle:   r.GeneratedTitle,
		GeneratedContent: r.GeneratedContent,
		GeneratedTags:    r.GeneratedTags,
		ExecutionTime:    r.ExecutionTime,
		CreatedAt:        r.CreatedAt.UTC(),
	}
}

// Create inserts a rewrite record and returns it with id and created_at set.
func (r *Repo) Create(ctx context.Context, rec *domain.RewriteRecord) (*domain.RewriteRecord, error) {
	sql, args, err := postgres.Builder.
		Insert(tableRecords).
		Columns(
			"style_id", "style_name", "user_task", "word_count",
			"generated_title", "generated_content", "generated_tags", "execution_time",
		).
		Values(
			rec.StyleID, rec.StyleName, rec.UserTask, rec.WordCount,
			rec.GeneratedTitle, rec.GeneratedContent, rec.GeneratedTags, rec.ExecutionTime,
		).
		Suffix("RETURNING " + strings.Join(recordColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create record: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "rewrite_record", uuid.Nil)
	}

	return row.toDomain(), nil
}

// GetByID returns a record by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.RewriteRecord, error) {
	sql, args, err := postgres.Builder.
		Select(recordColumns...).
		From(tableRecords).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get record: %w", err)
	}

	var row recordRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "rewrite_record", id)
	}

	return row.toDomain(), nil
}

// Count returns the total number of records.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder.Select("count(*)").From(tableRecords).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count records: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count records: %w", err)
	}

	return count, nil
}

// List returns up to limit records newest first, skipping offset rows.
// Returns an empty slice (not nil) when the offset is past the end.
func (r *Repo) List(ctx context.Context, limit, offset int) ([]*domain.RewriteRecord, error) {
	sql, args, err := postgres.Builder.
		Select(recordColumns...).
		From(tableRecords).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list records: %w", err)
	}

	var rows []recordRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	records := make([]*domain.RewriteRecord, len(rows))
	for i, row := range rows {
		records[i] = row.toDomain()
	}
	return records, nil
}
