// Package topic implements the Topic repository using PostgreSQL.
// It covers the taxonomy rows and the topic_styles association table.
package topic

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

const (
	tableTopics      = "topics"
	tableTopicStyles = "topic_styles"
)

var topicColumns = []string{"id", "name", "level", "parent_id", "description", "created_at", "updated_at"}

// subtreeIDsSQL collects the root and every transitive descendant.
const subtreeIDsSQL = `
WITH RECURSIVE subtree AS (
    SELECT id FROM topics WHERE id = $1
    UNION ALL
    SELECT t.id FROM topics t JOIN subtree s ON t.parent_id = s.id
)
SELECT id FROM subtree`

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type topicRow struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"name"`
	Level       int        `db:"level"`
	ParentID    *uuid.UUID `db:"parent_id"`
	Description *string    `db:"description"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r topicRow) toDomain() *domain.Topic {
	return &domain.Topic{
		ID:          r.ID,
		Name:        r.Name,
		Level:       r.Level,
		ParentID:    r.ParentID,
		Description: r.Description,
		CreatedAt:   r.CreatedAt.UTC(),
		UpdatedAt:   r.UpdatedAt.UTC(),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return r.get(ctx, id, "")
}

// GetForShare reads a topic and holds a share lock until the transaction ends,
// so the row cannot be updated or deleted while a child is validated against it.
func (r *Repo) GetForShare(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return r.get(ctx, id, "FOR SHARE")
}

// GetForUpdate reads a topic and holds an exclusive row lock.
func (r *Repo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	return r.get(ctx, id, "FOR UPDATE")
}

func (r *Repo) get(ctx context.Context, id uuid.UUID, lock string) (*domain.Topic, error) {
	query := postgres.Builder.
		Select(topicColumns...).
		From(tableTopics).
		Where(squirrel.Eq{"id": id})
	if lock != "" {
		query = query.Suffix(lock)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get topic: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}

	return row.toDomain(), nil
}

// List returns topics ordered by level then creation time, optionally
// filtered. Returns an empty slice (not nil) when nothing matches.
func (r *Repo) List(ctx context.Context, filter domain.TopicFilter) ([]*domain.Topic, error) {
	query := postgres.Builder.
		Select(topicColumns...).
		From(tableTopics).
		OrderBy("level ASC", "created_at ASC", "id ASC")
	if filter.Level != nil {
		query = query.Where(squirrel.Eq{"level": *filter.Level})
	}
	if filter.ParentID != nil {
		query = query.Where(squirrel.Eq{"parent_id": *filter.ParentID})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	var rows []topicRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	topics := make([]*domain.Topic, len(rows))
	for i, row := range rows {
		topics[i] = row.toDomain()
	}
	return topics, nil
}

// MinChildLevel returns the lowest level among the direct children of id.
// ok is false when the topic has no children.
func (r *Repo) MinChildLevel(ctx context.Context, id uuid.UUID) (level int, ok bool, err error) {
	sql, args, err := postgres.Builder.
		Select("min(level)").
		From(tableTopics).
		Where(squirrel.Eq{"parent_id": id}).
		ToSql()
	if err != nil {
		return 0, false, fmt.Errorf("build min child level: %w", err)
	}

	var minLevel *int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sql, args...).Scan(&minLevel); err != nil {
		return 0, false, postgres.MapError(err, "topic", id)
	}
	if minLevel == nil {
		return 0, false, nil
	}
	return *minLevel, true, nil
}

// SubtreeIDs returns id and the ids of all its descendants.
func (r *Repo) SubtreeIDs(ctx context.Context, id uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &ids, subtreeIDsSQL, id); err != nil {
		return nil, postgres.MapError(err, "topic", id)
	}
	return ids, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new topic and returns the persisted row.
// Returns domain.ErrNotFound if parent_id references a missing topic.
func (r *Repo) Create(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	sql, args, err := postgres.Builder.
		Insert(tableTopics).
		Columns("name", "level", "parent_id", "description").
		Values(t.Name, t.Level, t.ParentID, t.Description).
		Suffix("RETURNING " + strings.Join(topicColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build create topic: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic", uuid.Nil)
	}

	return row.toDomain(), nil
}

// Update replaces the mutable fields of a topic.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Update(ctx context.Context, t *domain.Topic) (*domain.Topic, error) {
	sql, args, err := postgres.Builder.
		Update(tableTopics).
		Set("name", t.Name).
		Set("level", t.Level).
		Set("parent_id", t.ParentID).
		Set("description", t.Description).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": t.ID}).
		Suffix("RETURNING " + strings.Join(topicColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update topic: %w", err)
	}

	var row topicRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "topic", t.ID)
	}

	return row.toDomain(), nil
}

// DeleteByIDs removes the listed topics in one statement, so a parent and its
// children can go together. Returns the number of rows removed.
func (r *Repo) DeleteByIDs(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder.
		Delete(tableTopics).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete topics: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "topic", ids[0])
	}

	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Associations
// ---------------------------------------------------------------------------

// Associate links a topic and a style.
// Idempotent: linking the same pair twice is NOT an error (ON CONFLICT DO NOTHING).
// created reports whether a new row was written.
func (r *Repo) Associate(ctx context.Context, topicID, styleID uuid.UUID) (created bool, err error) {
	sql, args, err := postgres.Builder.
		Insert(tableTopicStyles).
		Columns("topic_id", "style_id").
		Values(topicID, styleID).
		Suffix("ON CONFLICT (topic_id, style_id) DO NOTHING").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build associate: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return false, postgres.MapError(err, "topic_style", topicID)
	}

	return tag.RowsAffected() > 0, nil
}

// Disassociate removes the link between a topic and a style.
// Not an error if the link does not exist.
func (r *Repo) Disassociate(ctx context.Context, topicID, styleID uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete(tableTopicStyles).
		Where(squirrel.Eq{"topic_id": topicID, "style_id": styleID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build disassociate: %w", err)
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...); err != nil {
		return postgres.MapError(err, "topic_style", topicID)
	}

	return nil
}

// DeleteAssociationsByTopicIDs removes every association touching the topics.
func (r *Repo) DeleteAssociationsByTopicIDs(ctx context.Context, topicIDs []uuid.UUID) (int64, error) {
	if len(topicIDs) == 0 {
		return 0, nil
	}

	sql, args, err := postgres.Builder.
		Delete(tableTopicStyles).
		Where(squirrel.Eq{"topic_id": topicIDs}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build delete associations: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "topic_style", topicIDs[0])
	}

	return tag.RowsAffected(), nil
}
