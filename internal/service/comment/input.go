package comment

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

const (
	DefaultListLimit = 20
	MaxListLimit     = 100
)

// AddInput holds the parameters for posting a comment or a reply.
type AddInput struct {
	Ref      domain.EntityReference
	AuthorID uuid.UUID
	Content  string
	ParentID *uuid.UUID
}

func (i AddInput) validate(maxLength int) error {
	var errs []domain.FieldError
	errs = append(errs, refErrors(i.Ref)...)
	if i.AuthorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "author_id", Message: "required"})
	}
	errs = append(errs, contentErrors(i.Content, maxLength)...)
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "must be a valid id"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds the parameters for editing a comment.
type EditInput struct {
	CommentID uuid.UUID
	EditorID  uuid.UUID
	Content   string
}

func (i EditInput) validate(maxLength int) error {
	var errs []domain.FieldError
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if i.EditorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "editor_id", Message: "required"})
	}
	errs = append(errs, contentErrors(i.Content, maxLength)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ActInput identifies a comment and the user acting on it.
type ActInput struct {
	CommentID uuid.UUID
	ActorID   uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i ActInput) Validate() error {
	var errs []domain.FieldError
	if i.CommentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "comment_id", Message: "required"})
	}
	if i.ActorID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "actor_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListInput holds the parameters for listing top-level comments.
type ListInput struct {
	Ref            domain.EntityReference
	Limit          int
	Offset         int
	IncludeDeleted bool
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	errs := refErrors(i.Ref)
	if i.Limit < 0 || i.Limit > MaxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: fmt.Sprintf("must be between 0 and %d", MaxListLimit)})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func contentErrors(content string, maxLength int) []domain.FieldError {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return []domain.FieldError{{Field: "content", Message: "required"}}
	}
	if maxLength > 0 && utf8.RuneCountInString(trimmed) > maxLength {
		return []domain.FieldError{{Field: "content", Message: fmt.Sprintf("max %d characters", maxLength)}}
	}
	return nil
}

func refErrors(ref domain.EntityReference) []domain.FieldError {
	err := ref.Validate()
	if err == nil {
		return nil
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "entity", Message: err.Error()}}
}
