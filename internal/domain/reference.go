package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// EntityReference identifies what is being interacted with. It is the
// composite key of every interaction record and never a foreign key into a
// concrete content table.
type EntityReference struct {
	ID   uuid.UUID
	Kind EntityKind
}

// NewEntityReference builds a validated reference.
func NewEntityReference(id uuid.UUID, kind EntityKind) (EntityReference, error) {
	ref := EntityReference{ID: id, Kind: kind}
	if err := ref.Validate(); err != nil {
		return EntityReference{}, err
	}
	return ref, nil
}

// Validate checks both halves of the key.
func (r EntityReference) Validate() error {
	var errs []FieldError
	if r.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "entity_id", Message: "required"})
	}
	if !r.Kind.IsValid() {
		errs = append(errs, FieldError{Field: "entity_kind", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}

// IsZero reports whether the reference is unset.
func (r EntityReference) IsZero() bool {
	return r.ID == uuid.Nil && r.Kind == ""
}

func (r EntityReference) String() string {
	return fmt.Sprintf("%s:%s", r.Kind, r.ID)
}
