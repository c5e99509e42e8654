// Package comment implements the Comment repository using PostgreSQL.
// Threads are one level deep, so every read is a flat query partitioned by
// whether parent_id is null; no recursive CTEs are needed.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const commentColumns = `id, entity_id, entity_kind, author_id, content, parent_id, ` + postgres.AuditColumns

const getByIDSQL = `
SELECT ` + commentColumns + `
FROM comments
WHERE id = $1`

const getByIDForUpdateSQL = getByIDSQL + `
FOR UPDATE`

const createSQL = `
INSERT INTO comments (id, entity_id, entity_kind, author_id, content, parent_id, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + commentColumns

const updateContentSQL = `
UPDATE comments
SET content = $2, updated_at = $3, updated_by = $4
WHERE id = $1 AND NOT is_deleted
RETURNING ` + commentColumns

const softDeleteSQL = `
UPDATE comments
SET is_deleted = true, deleted_at = $2, deleted_by = $3
WHERE id = $1 AND NOT is_deleted`

const restoreSQL = `
UPDATE comments
SET is_deleted = false, updated_at = $2, updated_by = $3
WHERE id = $1 AND is_deleted
RETURNING ` + commentColumns

const countsSQL = `
SELECT
    count(*) FILTER (WHERE parent_id IS NULL),
    count(*)
FROM comments
WHERE entity_id = $1 AND entity_kind = $2 AND NOT is_deleted`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a comment by primary key, including soft-deleted comments.
// Returns domain.ErrNotFound if the comment does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetByIDForUpdate is GetByID with a row lock held until the surrounding
// transaction ends.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	return r.get(ctx, getByIDForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, sql string, id uuid.UUID) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(querier.QueryRow(ctx, sql, id))
	if err != nil {
		return nil, postgres.MapError(err, "comment", id)
	}
	return c, nil
}

// Counts returns live top-level and total (top-level plus replies) counts.
// A live reply under a deleted parent still counts toward total.
func (r *Repo) Counts(ctx context.Context, ref domain.EntityReference) (topLevel, total int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, countsSQL, ref.ID, string(ref.Kind)).Scan(&topLevel, &total); err != nil {
		return 0, 0, postgres.MapError(err, "comment counts", ref)
	}
	return topLevel, total, nil
}

// ListTopLevel returns top-level comments on ref in creation order plus the
// total matching count. Soft-deleted comments are included only when
// includeDeleted is set; callers redact their content.
func (r *Repo) ListTopLevel(ctx context.Context, ref domain.EntityReference, includeDeleted bool, limit, offset int) ([]domain.Comment, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.And{
		squirrel.Eq{"entity_id": ref.ID, "entity_kind": string(ref.Kind), "parent_id": nil},
	}
	if !includeDeleted {
		where = append(where, squirrel.Eq{"is_deleted": false})
	}

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").From("comments").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "comments", ref)
	}

	listQuery, listArgs, err := postgres.Builder().
		Select(commentColumns).From("comments").Where(where).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	comments, err := r.query(ctx, querier, listQuery, listArgs)
	if err != nil {
		return nil, 0, postgres.MapError(err, "comments", ref)
	}
	return comments, total, nil
}

// ListReplies returns up to limit live replies of parentID ordered by
// (created_at, id), starting strictly after the given cursor when set.
func (r *Repo) ListReplies(ctx context.Context, parentID uuid.UUID, after *domain.Cursor, limit int) ([]domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	q := postgres.Builder().
		Select(commentColumns).From("comments").
		Where(squirrel.Eq{"parent_id": parentID, "is_deleted": false}).
		OrderBy("created_at ASC", "id ASC").
		Limit(uint64(limit))
	if after != nil {
		q = q.Where(squirrel.Expr("(created_at, id) > (?, ?)", after.CreatedAt, after.ID))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build replies query: %w", err)
	}

	comments, err := r.query(ctx, querier, sql, args)
	if err != nil {
		return nil, postgres.MapError(err, "replies of comment", parentID)
	}
	return comments, nil
}

func (r *Repo) query(ctx context.Context, querier postgres.Querier, sql string, args []any) ([]domain.Comment, error) {
	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a comment. A parent_id pointing at a missing comment
// yields domain.ErrNotFound through the foreign key.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		c.ID,
		c.Ref.ID,
		string(c.Ref.Kind),
		c.AuthorID,
		c.Content,
		c.ParentID,
		c.CreatedAt,
		string(c.CreatedBy),
	)

	created, err := scanComment(row)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return created, nil
}

// UpdateContent persists new content and the modification stamp.
// Returns domain.ErrNotFound if the comment is deleted or absent.
func (r *Repo) UpdateContent(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateContentSQL, c.ID, c.Content, c.UpdatedAt, postgres.ActorArg(c.UpdatedBy))

	updated, err := scanComment(row)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return updated, nil
}

// SoftDelete persists the comment's deletion stamp. Replies are untouched.
// Returns domain.ErrNotFound if the comment is not live.
func (r *Repo) SoftDelete(ctx context.Context, c *domain.Comment) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, c.ID, c.DeletedAt, postgres.ActorArg(c.DeletedBy))
	if err != nil {
		return postgres.MapError(err, "comment", c.ID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("comment %s: %w", c.ID, domain.ErrNotFound)
	}
	return nil
}

// Restore clears the deletion flag and stamps the modification. The last
// deletion stamp is kept. Returns domain.ErrNotFound if the comment is not deleted.
func (r *Repo) Restore(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, restoreSQL, c.ID, c.UpdatedAt, postgres.ActorArg(c.UpdatedBy))

	restored, err := scanComment(row)
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return restored, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var (
		c        domain.Comment
		refKind  string
		auditRow postgres.AuditRow
	)

	dest := append([]any{&c.ID, &c.Ref.ID, &refKind, &c.AuthorID, &c.Content, &c.ParentID}, auditRow.Dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	c.Ref.Kind = domain.EntityKind(refKind)
	c.Audit = auditRow.Audit()
	return &c, nil
}
