// Package share implements the Share repository using PostgreSQL.
// Shares are append-only: there is no uniqueness per user.
package share

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/community-backend/internal/adapter/postgres"
	"github.com/heartmarshall/community-backend/internal/domain"
)

// Repo provides share persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new share repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const shareColumns = `id, entity_id, entity_kind, user_id, kind, platform, message, ` + postgres.AuditColumns

const createSQL = `
INSERT INTO shares (id, entity_id, entity_kind, user_id, kind, platform, message, created_at, created_by)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + shareColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Breakdown returns live share counts grouped by (kind, platform).
func (r *Repo) Breakdown(ctx context.Context, ref domain.EntityReference) ([]domain.ShareBucket, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select("kind", "platform", "count(*)").
		From("shares").
		Where(postgres.LiveRef(ref.ID, string(ref.Kind))).
		GroupBy("kind", "platform").
		OrderBy("kind", "platform").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build breakdown query: %w", err)
	}

	rows, err := querier.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "share breakdown", ref)
	}
	defer rows.Close()

	var result []domain.ShareBucket
	for rows.Next() {
		var (
			b    domain.ShareBucket
			kind string
		)
		if err := rows.Scan(&kind, &b.Platform, &b.Count); err != nil {
			return nil, postgres.MapError(err, "share breakdown", ref)
		}
		b.Kind = domain.ShareKind(kind)
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "share breakdown", ref)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a share record.
func (r *Repo) Create(ctx context.Context, s *domain.Share) (*domain.Share, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	row := querier.QueryRow(ctx, createSQL,
		s.ID,
		s.Ref.ID,
		string(s.Ref.Kind),
		s.UserID,
		string(s.Kind),
		s.Platform,
		s.Message,
		s.CreatedAt,
		string(s.CreatedBy),
	)

	created, err := scanShare(row)
	if err != nil {
		return nil, postgres.MapError(err, "share", s.ID)
	}
	return created, nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanShare(row pgx.Row) (*domain.Share, error) {
	var (
		s        domain.Share
		refKind  string
		kind     string
		auditRow postgres.AuditRow
	)

	dest := append([]any{&s.ID, &s.Ref.ID, &refKind, &s.UserID, &kind, &s.Platform, &s.Message}, auditRow.Dest()...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	s.Ref.Kind = domain.EntityKind(refKind)
	s.Kind = domain.ShareKind(kind)
	s.Audit = auditRow.Audit()
	return &s, nil
}
