package vote

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// CastInput holds the parameters for casting a vote.
type CastInput struct {
	Ref    domain.EntityReference
	UserID uuid.UUID
	Kind   domain.VoteKind
}

// Validate checks all fields and collects all errors.
func (i CastInput) Validate() error {
	errs := refErrors(i.Ref)
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "kind", Message: "must be UP or DOWN"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RetractInput holds the parameters for retracting a vote.
type RetractInput struct {
	Ref    domain.EntityReference
	UserID uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i RetractInput) Validate() error {
	errs := refErrors(i.Ref)
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
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
