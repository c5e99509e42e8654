// Package content implements the content-item registry using PostgreSQL.
// The registry is what entity references resolve against; comments are
// resolved from the comments table since they are themselves interactable.
package content

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/domain"
)

// Repo provides content-item persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new content repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `entity_id, entity_kind, title, description, image_url, ` + postgres.AuditColumns

const getSQL = `
SELECT ` + itemColumns + `
FROM content_items
WHERE entity_id = $1 AND entity_kind = $2`

const upsertSQL = `
INSERT INTO content_items (entity_id, entity_kind, title, description, image_url, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (entity_id, entity_kind) DO UPDATE
SET title       = EXCLUDED.title,
    description = EXCLUDED.description,
    image_url   = EXCLUDED.image_url,
    updated_at  = EXCLUDED.created_at,
    updated_by  = EXCLUDED.created_by,
    is_deleted  = false
RETURNING ` + itemColumns

const softDeleteSQL = `
UPDATE content_items
SET is_deleted = true, deleted_at = $3, deleted_by = $4
WHERE entity_id = $1 AND entity_kind = $2 AND NOT is_deleted`

const commentMetadataSQL = `
SELECT left(content, 120)
FROM comments
WHERE id = $1 AND NOT is_deleted`

const existsSQL = `
SELECT EXISTS (
    SELECT 1 FROM content_items
    WHERE entity_id = $1 AND entity_kind = $2 AND NOT is_deleted
)`

const commentExistsSQL = `
SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND NOT is_deleted)`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the registry row for ref, including soft-deleted rows.
// Returns domain.ErrNotFound if the item was never registered.
func (r *Repo) Get(ctx context.Context, ref domain.EntityReference) (*domain.ContentItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	item, err := scanItem(querier.QueryRow(ctx, getSQL, ref.ID, string(ref.Kind)))
	if err != nil {
		return nil, postgres.MapError(err, "content_item", ref)
	}
	return item, nil
}

// Metadata returns display metadata for a live entity.
// Returns domain.ErrNotFound if ref does not resolve.
func (r *Repo) Metadata(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if ref.Kind == domain.EntityKindComment {
		var excerpt string
		if err := querier.QueryRow(ctx, commentMetadataSQL, ref.ID).Scan(&excerpt); err != nil {
			return domain.ContentMetadata{}, postgres.MapError(err, "comment", ref)
		}
		return domain.ContentMetadata{Ref: ref, Title: excerpt}, nil
	}

	item, err := r.Get(ctx, ref)
	if err != nil {
		return domain.ContentMetadata{}, err
	}
	if item.IsDeleted {
		return domain.ContentMetadata{}, fmt.Errorf("content_item %s: %w", ref, domain.ErrNotFound)
	}
	return item.Metadata(), nil
}

// Exists reports whether ref resolves to a live entity.
func (r *Repo) Exists(ctx context.Context, ref domain.EntityReference) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		exists bool
		err    error
	)
	if ref.Kind == domain.EntityKindComment {
		err = querier.QueryRow(ctx, commentExistsSQL, ref.ID).Scan(&exists)
	} else {
		err = querier.QueryRow(ctx, existsSQL, ref.ID, string(ref.Kind)).Scan(&exists)
	}
	if err != nil {
		return false, postgres.MapError(err, "content_item", ref)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert registers an item or refreshes its display fields. Registering a
// retired item brings it back.
func (r *Repo) Upsert(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, upsertSQL,
		item.Ref.ID,
		string(item.Ref.Kind),
		item.Title,
		item.Description,
		item.ImageURL,
		item.CreatedAt,
		string(item.CreatedBy),
	)

	saved, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "content_item", item.Ref)
	}
	return saved, nil
}

// SoftDelete retires the item using the deletion stamp carried in audit.
// Returns false if the item was absent or already retired.
func (r *Repo) SoftDelete(ctx context.Context, ref domain.EntityReference, audit domain.Audit) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, ref.ID, string(ref.Kind), audit.DeletedAt, postgres.ActorArg(audit.DeletedBy))
	if err != nil {
		return false, postgres.MapError(err, "content_item", ref)
	}
	return ct.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanItem(row pgx.Row) (*domain.ContentItem, error) {
	var (
		item  domain.ContentItem
		kind  string
		audit postgres.AuditRow
	)

	dest := append([]any{&item.Ref.ID, &kind, &item.Title, &item.Description, &item.ImageURL}, audit.Dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	item.Ref.Kind = domain.EntityKind(kind)
	item.Audit = audit.Audit()
	return &item, nil
}
