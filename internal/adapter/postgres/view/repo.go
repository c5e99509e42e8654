// Package view implements the ViewEvent repository using PostgreSQL.
// Every view is stored; the counted flag marks the ones outside the dedup
// window of an earlier counted view by the same viewer.
package view

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/domain"
)

// Repo provides view-event persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new view repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

// Serialises dedup decisions per (entity, viewer) for the rest of the
// transaction. hashtextextended gives a 64-bit key.
const lockViewerSQL = `
SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`

const lastCountedAtSQL = `
SELECT occurred_at
FROM view_events
WHERE entity_id = $1 AND entity_kind = $2 AND viewer_key = $3 AND counted
ORDER BY occurred_at DESC
LIMIT 1`

const insertSQL = `
INSERT INTO view_events (id, entity_id, entity_kind, user_id, ip_address, user_agent, viewer_key, counted, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

// Purged counted views live on in view_counts.
const countSQL = `
SELECT
    COALESCE((SELECT views FROM view_counts WHERE entity_id = $1 AND entity_kind = $2), 0)
  + (SELECT count(*) FROM view_events WHERE entity_id = $1 AND entity_kind = $2 AND counted)`

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// LockViewer takes a transaction-scoped advisory lock on (ref, viewerKey).
// Must be called inside TxManager.RunInTx.
func (r *Repo) LockViewer(ctx context.Context, ref domain.EntityReference, viewerKey string) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := querier.Exec(ctx, lockViewerSQL, ref.String()+"|"+viewerKey); err != nil {
		return postgres.MapError(err, "view lock", ref)
	}
	return nil
}

// LastCountedAt returns when viewerKey last produced a counted view of ref.
// Returns domain.ErrNotFound if it never did.
func (r *Repo) LastCountedAt(ctx context.Context, ref domain.EntityReference, viewerKey string) (time.Time, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var at time.Time
	if err := querier.QueryRow(ctx, lastCountedAtSQL, ref.ID, string(ref.Kind), viewerKey).Scan(&at); err != nil {
		return time.Time{}, postgres.MapError(err, "view", ref)
	}
	return at, nil
}

// Insert stores a raw view event.
func (r *Repo) Insert(ctx context.Context, e *domain.ViewEvent) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	_, err := querier.Exec(ctx, insertSQL,
		e.ID,
		e.Ref.ID,
		string(e.Ref.Kind),
		e.UserID,
		e.IPAddress,
		e.UserAgent,
		e.ViewerKey,
		e.Counted,
		e.OccurredAt,
	)
	if err != nil {
		return postgres.MapError(err, "view", e.ID)
	}
	return nil
}

// Count returns the number of counted views of ref, including those whose
// raw events were purged.
func (r *Repo) Count(ctx context.Context, ref domain.EntityReference) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := querier.QueryRow(ctx, countSQL, ref.ID, string(ref.Kind)).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "view count", ref)
	}
	return n, nil
}
