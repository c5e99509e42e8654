package domain

import (
	"time"

	"github.com/google/uuid"
)

// Actor identifies who performed a mutation: a user ID or SystemActor.
type Actor string

// SystemActor stamps mutations not initiated by a user (purges, migrations, moderation jobs).
const SystemActor Actor = "System"

// UserActor returns the Actor for a user ID.
func UserActor(id uuid.UUID) Actor { return Actor(id.String()) }

func (a Actor) String() string { return string(a) }

// Audit carries creation, modification and soft-delete provenance. It is
// embedded in every interaction record and content item; all state
// transitions go through its methods.
type Audit struct {
	CreatedAt time.Time
	CreatedBy Actor
	UpdatedAt *time.Time
	UpdatedBy *Actor
	IsDeleted bool
	DeletedAt *time.Time
	DeletedBy *Actor
}

// NewAudit stamps creation. CreatedAt/CreatedBy are never written again.
func NewAudit(actor Actor, now time.Time) Audit {
	return Audit{CreatedAt: now, CreatedBy: actor}
}

// Touch records a modification.
func (a *Audit) Touch(actor Actor, now time.Time) {
	a.UpdatedAt = &now
	a.UpdatedBy = &actor
}

// SoftDelete hides the record. Returns false (and changes nothing) when it
// is already deleted.
func (a *Audit) SoftDelete(actor Actor, now time.Time) bool {
	if a.IsDeleted {
		return false
	}
	a.IsDeleted = true
	a.DeletedAt = &now
	a.DeletedBy = &actor
	return true
}

// Restore un-hides a soft-deleted record and stamps UpdatedAt/UpdatedBy.
// DeletedAt/DeletedBy keep the provenance of the last deletion.
// Returns false when the record is not deleted.
func (a *Audit) Restore(actor Actor, now time.Time) bool {
	if !a.IsDeleted {
		return false
	}
	a.IsDeleted = false
	a.Touch(actor, now)
	return true
}

// Live reports whether the record is visible (not soft-deleted).
func (a Audit) Live() bool { return !a.IsDeleted }
