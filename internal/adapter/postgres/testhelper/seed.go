package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// Now returns the current time truncated to PostgreSQL precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// SeedContentItem registers a live content item of the given kind and
// returns its reference.
func SeedContentItem(t *testing.T, pool *pgxpool.Pool, kind domain.EntityKind) domain.EntityReference {
	t.Helper()
	ctx := context.Background()

	ref := domain.EntityReference{ID: uuid.New(), Kind: kind}
	title := "Test " + kind.Slug() + " " + uniqueSuffix()

	_, err := pool.Exec(ctx,
		`INSERT INTO content_items (entity_id, entity_kind, title, created_at, created_by)
		 VALUES ($1, $2, $3, $4, $5)`,
		ref.ID, string(ref.Kind), title, Now(), string(domain.SystemActor),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContentItem insert: %v", err)
	}

	return ref
}

// SeedComment inserts a live comment on ref. parentID may be nil.
func SeedComment(t *testing.T, pool *pgxpool.Pool, ref domain.EntityReference, authorID uuid.UUID, parentID *uuid.UUID, at time.Time) domain.Comment {
	t.Helper()
	ctx := context.Background()

	c := domain.Comment{
		ID:       uuid.New(),
		Ref:      ref,
		AuthorID: authorID,
		Content:  "comment " + uniqueSuffix(),
		ParentID: parentID,
		Audit:    domain.NewAudit(domain.UserActor(authorID), at),
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO comments (id, entity_id, entity_kind, author_id, content, parent_id, created_at, created_by)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		c.ID, c.Ref.ID, string(c.Ref.Kind), c.AuthorID, c.Content, c.ParentID, c.CreatedAt, string(c.CreatedBy),
	)
	if err != nil {
		t.Fatalf("testhelper: SeedComment insert: %v", err)
	}

	return c
}

// SoftDeleteRow marks a row of an audited table as deleted at the given time.
func SoftDeleteRow(t *testing.T, pool *pgxpool.Pool, table string, id uuid.UUID, at time.Time) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`UPDATE `+table+` SET is_deleted = true, deleted_at = $2, deleted_by = 'System' WHERE id = $1`,
		id, at,
	)
	if err != nil {
		t.Fatalf("testhelper: SoftDeleteRow %s: %v", table, err)
	}
}
