package postgres

import (
	"time"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// AuditColumns is the column list of the audited-record columns, in the
// order AuditRow.Dest scans them.
const AuditColumns = `created_at, created_by, updated_at, updated_by, is_deleted, deleted_at, deleted_by`

// AuditRow is the scan target for AuditColumns.
type AuditRow struct {
	CreatedAt time.Time
	CreatedBy string
	UpdatedAt *time.Time
	UpdatedBy *string
	IsDeleted bool
	DeletedAt *time.Time
	DeletedBy *string
}

// Dest returns scan destinations matching AuditColumns.
func (a *AuditRow) Dest() []any {
	return []any{&a.CreatedAt, &a.CreatedBy, &a.UpdatedAt, &a.UpdatedBy, &a.IsDeleted, &a.DeletedAt, &a.DeletedBy}
}

// Audit converts the scanned row to domain.Audit.
func (a *AuditRow) Audit() domain.Audit {
	return domain.Audit{
		CreatedAt: a.CreatedAt,
		CreatedBy: domain.Actor(a.CreatedBy),
		UpdatedAt: a.UpdatedAt,
		UpdatedBy: actorPtr(a.UpdatedBy),
		IsDeleted: a.IsDeleted,
		DeletedAt: a.DeletedAt,
		DeletedBy: actorPtr(a.DeletedBy),
	}
}

// ActorArg converts an optional actor to a nullable text argument.
func ActorArg(a *domain.Actor) *string {
	if a == nil {
		return nil
	}
	s := string(*a)
	return &s
}

func actorPtr(s *string) *domain.Actor {
	if s == nil {
		return nil
	}
	a := domain.Actor(*s)
	return &a
}
