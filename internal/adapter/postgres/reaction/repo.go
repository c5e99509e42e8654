// Package reaction implements the Reaction repository using PostgreSQL.
// The partial unique index ux_reactions_live guarantees at most one live
// reaction per (entity, user); a losing concurrent insert surfaces as
// domain.ErrAlreadyExists.
package reaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/domain"
)

// Repo provides reaction persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reaction repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const reactionColumns = `id, entity_id, entity_kind, user_id, kind, ` + postgres.AuditColumns

const findLiveSQL = `
SELECT ` + reactionColumns + `
FROM reactions
WHERE entity_id = $1 AND entity_kind = $2 AND user_id = $3 AND NOT is_deleted`

const findLiveForUpdateSQL = findLiveSQL + `
FOR UPDATE`

const createSQL = `
INSERT INTO reactions (id, entity_id, entity_kind, user_id, kind, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + reactionColumns

const updateKindSQL = `
UPDATE reactions
SET kind = $2, updated_at = $3, updated_by = $4
WHERE id = $1 AND NOT is_deleted
RETURNING ` + reactionColumns

const softDeleteSQL = `
UPDATE reactions
SET is_deleted = true, deleted_at = $2, deleted_by = $3
WHERE id = $1 AND NOT is_deleted`

const countByKindSQL = `
SELECT kind, count(*)
FROM reactions
WHERE entity_id = $1 AND entity_kind = $2 AND NOT is_deleted
GROUP BY kind`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindLive returns the user's live reaction on ref.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) FindLive(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error) {
	return r.findLive(ctx, findLiveSQL, ref, userID)
}

// FindLiveForUpdate is FindLive with a row lock held until the surrounding
// transaction ends.
func (r *Repo) FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error) {
	return r.findLive(ctx, findLiveForUpdateSQL, ref, userID)
}

func (r *Repo) findLive(ctx context.Context, sql string, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	reaction, err := scanReaction(querier.QueryRow(ctx, sql, ref.ID, string(ref.Kind), userID))
	if err != nil {
		return nil, postgres.MapError(err, "reaction", ref)
	}
	return reaction, nil
}

// CountByKind returns live reaction counts grouped by kind. Kinds with no
// reactions are absent from the map.
func (r *Repo) CountByKind(ctx context.Context, ref domain.EntityReference) (map[domain.ReactionKind]int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, countByKindSQL, ref.ID, string(ref.Kind))
	if err != nil {
		return nil, postgres.MapError(err, "reaction counts", ref)
	}
	defer rows.Close()

	counts := make(map[domain.ReactionKind]int)
	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return nil, postgres.MapError(err, "reaction counts", ref)
		}
		counts[domain.ReactionKind(kind)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "reaction counts", ref)
	}

	return counts, nil
}

// List returns live reactions on ref, newest first, optionally filtered by
// kind, plus the total matching count.
func (r *Repo) List(ctx context.Context, ref domain.EntityReference, kind *domain.ReactionKind, limit, offset int) ([]domain.Reaction, int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	where := postgres.LiveRef(ref.ID, string(ref.Kind))
	if kind != nil {
		where["kind"] = string(*kind)
	}

	countSQL, countArgs, err := postgres.Builder().
		Select("count(*)").From("reactions").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := querier.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, postgres.MapError(err, "reactions", ref)
	}

	listSQL, listArgs, err := postgres.Builder().
		Select(reactionColumns).From("reactions").Where(where).
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := querier.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, postgres.MapError(err, "reactions", ref)
	}
	defer rows.Close()

	reactions := make([]domain.Reaction, 0, limit)
	for rows.Next() {
		reaction, err := scanReaction(rows)
		if err != nil {
			return nil, 0, postgres.MapError(err, "reactions", ref)
		}
		reactions = append(reactions, *reaction)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, postgres.MapError(err, "reactions", ref)
	}

	return reactions, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new live reaction.
// Returns domain.ErrAlreadyExists if the user already has a live reaction on the entity.
func (r *Repo) Create(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		reaction.ID,
		reaction.Ref.ID,
		string(reaction.Ref.Kind),
		reaction.UserID,
		string(reaction.Kind),
		reaction.CreatedAt,
		string(reaction.CreatedBy),
	)

	created, err := scanReaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "reaction", reaction.ID)
	}
	return created, nil
}

// UpdateKind persists the reaction's kind and modification stamp.
// Returns domain.ErrNotFound if the reaction is no longer live.
func (r *Repo) UpdateKind(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateKindSQL,
		reaction.ID,
		string(reaction.Kind),
		reaction.UpdatedAt,
		postgres.ActorArg(reaction.UpdatedBy),
	)

	updated, err := scanReaction(row)
	if err != nil {
		return nil, postgres.MapError(err, "reaction", reaction.ID)
	}
	return updated, nil
}

// SoftDelete persists the reaction's deletion stamp.
// Returns domain.ErrNotFound if the reaction is no longer live.
func (r *Repo) SoftDelete(ctx context.Context, reaction *domain.Reaction) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, reaction.ID, reaction.DeletedAt, postgres.ActorArg(reaction.DeletedBy))
	if err != nil {
		return postgres.MapError(err, "reaction", reaction.ID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("reaction %s: %w", reaction.ID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanReaction(row pgx.Row) (*domain.Reaction, error) {
	var (
		r        domain.Reaction
		refKind  string
		kind     string
		auditRow postgres.AuditRow
	)

	dest := append([]any{&r.ID, &r.Ref.ID, &refKind, &r.UserID, &kind}, auditRow.Dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	r.Ref.Kind = domain.EntityKind(refKind)
	r.Kind = domain.ReactionKind(kind)
	r.Audit = auditRow.Audit()
	return &r, nil
}
