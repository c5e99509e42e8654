// Package bookmark implements the Bookmark repository using PostgreSQL.
package bookmark

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

// Repo provides bookmark persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new bookmark repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const bookmarkColumns = `id, entity_id, entity_kind, user_id, ` + postgres.AuditColumns

const findLiveForUpdateSQL = `
SELECT ` + bookmarkColumns + `
FROM bookmarks
WHERE entity_id = $1 AND entity_kind = $2 AND user_id = $3 AND NOT is_deleted
FOR UPDATE`

const existsSQL = `
SELECT EXISTS (
    SELECT 1 FROM bookmarks
    WHERE entity_id = $1 AND entity_kind = $2 AND user_id = $3 AND NOT is_deleted
)`

const countSQL = `
SELECT count(*) FROM bookmarks
WHERE entity_id = $1 AND entity_kind = $2 AND NOT is_deleted`

const createSQL = `
INSERT INTO bookmarks (id, entity_id, entity_kind, user_id, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + bookmarkColumns

const softDeleteSQL = `
UPDATE bookmarks
SET is_deleted = true, deleted_at = $2, deleted_by = $3
WHERE id = $1 AND NOT is_deleted`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindLiveForUpdate returns the user's live bookmark on ref with a row lock.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	b, err := scanBookmark(querier.QueryRow(ctx, findLiveForUpdateSQL, ref.ID, string(ref.Kind), userID))
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", ref)
	}
	return b, nil
}

// Exists reports whether the user has a live bookmark on ref.
func (r *Repo) Exists(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var exists bool
	if err := querier.QueryRow(ctx, existsSQL, ref.ID, string(ref.Kind), userID).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "bookmark", ref)
	}
	return exists, nil
}

// Count returns the number of live bookmarks on ref.
func (r *Repo) Count(ctx context.Context, ref domain.EntityReference) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSQL, ref.ID, string(ref.Kind)).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "bookmark count", ref)
	}
	return n, nil
}

// ListByUser returns the user's live bookmarks, newest first, optionally
// restricted to one entity kind, plus the total matching count.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, kind *domain.EntityKind, limit, offset int) ([]domain.Bookmark, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := squirrel.Eq{"user_id": userID, "is_deleted": false}
	if kind != nil {
		where["entity_kind"] = string(*kind)
	}

	countQuery, countArgs, err := postgres.Builder().
		Select("count(*)").From("bookmarks").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "bookmarks of user", userID)
	}

	listQuery, listArgs, err := postgres.Builder().
		Select(bookmarkColumns).From("bookmarks").Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "bookmarks of user", userID)
	}
	defer rows.Close()

	bookmarks := make([]domain.Bookmark, 0, limit)
	for rows.Next() {
		b, err := scanBookmark(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "bookmarks of user", userID)
		}
		bookmarks = append(bookmarks, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "bookmarks of user", userID)
	}

	return bookmarks, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new live bookmark.
// Returns domain.ErrAlreadyExists if the user already has a live bookmark on the entity.
func (r *Repo) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		b.ID,
		b.Ref.ID,
		string(b.Ref.Kind),
		b.UserID,
		b.CreatedAt,
		string(b.CreatedBy),
	)

	created, err := scanBookmark(row)
	if err != nil {
		return nil, postgres.MapError(err, "bookmark", b.ID)
	}
	return created, nil
}

// SoftDelete persists the bookmark's deletion stamp.
// Returns domain.ErrNotFound if the bookmark is no longer live.
func (r *Repo) SoftDelete(ctx context.Context, b *domain.Bookmark) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, b.ID, b.DeletedAt, postgres.ActorArg(b.DeletedBy))
	if err != nil {
		return postgres.MapError(err, "bookmark", b.ID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("bookmark %s: %w", b.ID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanBookmark(row pgx.Row) (*domain.Bookmark, error) {
	var (
		b        domain.Bookmark
		refKind  string
		auditRow postgres.AuditRow
	)

	dest := append([]any{&b.ID, &b.Ref.ID, &refKind, &b.UserID}, auditRow.Dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	b.Ref.Kind = domain.EntityKind(refKind)
	b.Audit = auditRow.Audit()
	return &b, nil
}
