package content

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/community-backend/internal/domain"
)

const (
	maxTitleLength       = 300
	maxDescriptionLength = 2000
	maxImageURLLength    = 2048
)

// RegisterInput holds the parameters for registering a content item.
type RegisterInput struct {
	Ref         domain.EntityReference
	Title       string
	Description *string
	ImageURL    *string
}

// Validate checks all fields and collects all errors.
func (i RegisterInput) Validate() error {
	var errs []domain.FieldError

	if err := i.Ref.Validate(); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}
	if i.Ref.Kind == domain.EntityKindComment {
		errs = append(errs, domain.FieldError{Field: "entity_kind", Message: "comments are registered by the comment store"})
	}

	title := strings.TrimSpace(i.Title)
	if title == "" {
		errs = append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		errs = append(errs, domain.FieldError{Field: "title", Message: "max 300 characters"})
	}

	if i.Description != nil && utf8.RuneCountInString(*i.Description) > maxDescriptionLength {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}

	if i.ImageURL != nil && *i.ImageURL != "" {
		if len(*i.ImageURL) > maxImageURLLength {
			errs = append(errs, domain.FieldError{Field: "image_url", Message: "too long"})
		} else if u, err := url.Parse(*i.ImageURL); err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, domain.FieldError{Field: "image_url", Message: "must be an http(s) URL"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// fieldErrors unpacks a ValidationError so nested checks can be merged
// into the caller's error list.
func fieldErrors(err error) []domain.FieldError {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return ve.Errors
	}
	return []domain.FieldError{{Field: "input", Message: err.Error()}}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
