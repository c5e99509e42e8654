// Package retention physically removes interaction rows that have been
// soft-deleted for longer than the retention period, and raw view events
// older than it. Counted views are folded into view_counts before their
// events go, so view totals survive the purge.
package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
)

// Repo purges expired rows.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new retention repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Result reports how many rows were removed per table.
type Result map[string]int64

// Total returns the number of rows removed across all tables.
func (r Result) Total() int64 {
	var n int64
	for _, v := range r {
		n += v
	}
	return n
}

type purgeStatement struct {
	table string
	sql   string
}

// Soft-deleted comments that still have replies are kept so reply linkage
// survives; they become purgeable once their replies are gone.
var purgeStatements = []purgeStatement{
	{"reactions", `DELETE FROM reactions WHERE is_deleted AND deleted_at < $1`},
	{"votes", `DELETE FROM votes WHERE is_deleted AND deleted_at < $1`},
	{"bookmarks", `DELETE FROM bookmarks WHERE is_deleted AND deleted_at < $1`},
	{"shares", `DELETE FROM shares WHERE is_deleted AND deleted_at < $1`},
	{"comments", `
DELETE FROM comments c
WHERE c.is_deleted AND c.deleted_at < $1
  AND NOT EXISTS (SELECT 1 FROM comments r WHERE r.parent_id = c.id)`},
	{"content_items", `DELETE FROM content_items WHERE is_deleted AND deleted_at < $1`},
	{"view_counts", `
DELETE FROM view_counts vc
WHERE NOT EXISTS (
    SELECT 1 FROM content_items ci
    WHERE ci.entity_id = vc.entity_id AND ci.entity_kind = vc.entity_kind)`},
}

// foldViewsSQL deletes expired view events and adds the counted ones to
// view_counts in a single statement, so no counted row can be lost between
// the two steps.
const foldViewsSQL = `
WITH purged AS (
    DELETE FROM view_events WHERE occurred_at < $1
    RETURNING entity_id, entity_kind, counted
), folded AS (
    INSERT INTO view_counts (entity_id, entity_kind, views)
    SELECT entity_id, entity_kind, count(*) FROM purged WHERE counted
    GROUP BY entity_id, entity_kind
    ON CONFLICT (entity_id, entity_kind)
    DO UPDATE SET views = view_counts.views + EXCLUDED.views
)
SELECT count(*) FROM purged`

// Purge removes every row eligible at threshold in one transaction.
func (r *Repo) Purge(ctx context.Context, threshold time.Time) (Result, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin purge: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var views int64
	if err := tx.QueryRow(ctx, foldViewsSQL, threshold).Scan(&views); err != nil {
		return nil, postgres.MapError(err, "purge", "view_events")
	}

	batch := &pgx.Batch{}
	for _, st := range purgeStatements {
		batch.Queue(st.sql, threshold)
	}

	results := tx.SendBatch(ctx, batch)
	out := make(Result, len(purgeStatements)+1)
	out["view_events"] = views
	for _, st := range purgeStatements {
		ct, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return nil, postgres.MapError(err, "purge", st.table)
		}
		out[st.table] = ct.RowsAffected()
	}
	if err := results.Close(); err != nil {
		return nil, fmt.Errorf("close purge batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit purge: %w", err)
	}
	return out, nil
}
