// Package vote implements the Vote repository using PostgreSQL.
package vote

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/domain"
)

// Repo provides vote persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new vote repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const voteColumns = `id, entity_id, entity_kind, user_id, kind, ` + postgres.AuditColumns

const findLiveSQL = `
SELECT ` + voteColumns + `
FROM votes
WHERE entity_id = $1 AND entity_kind = $2 AND user_id = $3 AND NOT is_deleted`

const findLiveForUpdateSQL = findLiveSQL + `
FOR UPDATE`

const createSQL = `
INSERT INTO votes (id, entity_id, entity_kind, user_id, kind, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + voteColumns

const updateKindSQL = `
UPDATE votes
SET kind = $2, updated_at = $3, updated_by = $4
WHERE id = $1 AND NOT is_deleted
RETURNING ` + voteColumns

const softDeleteSQL = `
UPDATE votes
SET is_deleted = true, deleted_at = $2, deleted_by = $3
WHERE id = $1 AND NOT is_deleted`

const tallySQL = `
SELECT
    count(*) FILTER (WHERE kind = 'UP'),
    count(*) FILTER (WHERE kind = 'DOWN')
FROM votes
WHERE entity_id = $1 AND entity_kind = $2 AND NOT is_deleted`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// FindLive returns the user's live vote on ref.
// Returns domain.ErrNotFound if there is none.
func (r *Repo) FindLive(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Vote, error) {
	return r.findLive(ctx, findLiveSQL, ref, userID)
}

// FindLiveForUpdate is FindLive with a row lock held until the surrounding
// transaction ends.
func (r *Repo) FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Vote, error) {
	return r.findLive(ctx, findLiveForUpdateSQL, ref, userID)
}

func (r *Repo) findLive(ctx context.Context, sql string, ref domain.EntityReference, userID uuid.UUID) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	vote, err := scanVote(querier.QueryRow(ctx, sql, ref.ID, string(ref.Kind), userID))
	if err != nil {
		return nil, postgres.MapError(err, "vote", ref)
	}
	return vote, nil
}

// Tally returns live up and down vote counts for ref in one statement, so
// the pair is always a consistent snapshot.
func (r *Repo) Tally(ctx context.Context, ref domain.EntityReference) (up, down int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if err := querier.QueryRow(ctx, tallySQL, ref.ID, string(ref.Kind)).Scan(&up, &down); err != nil {
		return 0, 0, postgres.MapError(err, "vote tally", ref)
	}
	return up, down, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new live vote.
// Returns domain.ErrAlreadyExists if the user already has a live vote on the entity.
func (r *Repo) Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		vote.ID,
		vote.Ref.ID,
		string(vote.Ref.Kind),
		vote.UserID,
		string(vote.Kind),
		vote.CreatedAt,
		string(vote.CreatedBy),
	)

	created, err := scanVote(row)
	if err != nil {
		return nil, postgres.MapError(err, "vote", vote.ID)
	}
	return created, nil
}

// UpdateKind flips the vote direction in place. A single UPDATE moves the
// score by two, so readers never observe the intermediate state.
func (r *Repo) UpdateKind(ctx context.Context, vote *domain.Vote) (*domain.Vote, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, updateKindSQL,
		vote.ID,
		string(vote.Kind),
		vote.UpdatedAt,
		postgres.ActorArg(vote.UpdatedBy),
	)

	updated, err := scanVote(row)
	if err != nil {
		return nil, postgres.MapError(err, "vote", vote.ID)
	}
	return updated, nil
}

// SoftDelete persists the vote's deletion stamp.
// Returns domain.ErrNotFound if the vote is no longer live.
func (r *Repo) SoftDelete(ctx context.Context, vote *domain.Vote) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := querier.Exec(ctx, softDeleteSQL, vote.ID, vote.DeletedAt, postgres.ActorArg(vote.DeletedBy))
	if err != nil {
		return postgres.MapError(err, "vote", vote.ID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("vote %s: %w", vote.ID, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanVote(row pgx.Row) (*domain.Vote, error) {
	var (
		v        domain.Vote
		refKind  string
		kind     string
		auditRow postgres.AuditRow
	)

	dest := append([]any{&v.ID, &v.Ref.ID, &refKind, &v.UserID, &kind}, auditRow.Dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	v.Ref.Kind = domain.EntityKind(refKind)
	v.Kind = domain.VoteKind(kind)
	v.Audit = auditRow.Audit()
	return &v, nil
}
