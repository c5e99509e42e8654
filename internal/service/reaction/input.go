package reaction

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// AddOrUpdateInput holds the parameters for setting a user's reaction.
type AddOrUpdateInput struct {
	Ref    domain.EntityReference
	UserID uuid.UUID
	Kind   domain.ReactionKind
}

// Validate checks all fields and collects all errors.
func (i AddOrUpdateInput) Validate() error {
	errs := refErrors(i.Ref)
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RemoveInput holds the parameters for removing a user's reaction.
type RemoveInput struct {
	Ref    domain.EntityReference
	UserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RemoveInput) Validate() error {
	errs := refErrors(i.Ref)
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing who reacted to an entity.
type ListInput struct {
	Ref    domain.EntityReference
	Kind   *domain.ReactionKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	errs := refErrors(i.Ref)
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "invalid value"})
	}
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 200"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func refErrors(ref domain.EntityReference) []domain.FieldError {
	var errs []domain.FieldError
	if ref.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "entity_id", Message: "required"})
	}
	if !ref.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_kind", Message: "invalid value"})
	}
	return errs
}
