// Package bookmark implements the bookmark store: a per-user on/off flag on
// any entity.
package bookmark

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/txretry"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

type bookmarkRepo interface {
	FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Bookmark, error)
	Exists(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error)
	Count(ctx context.Context, ref domain.EntityReference) (int, error)
	ListByUser(ctx context.Context, userID uuid.UUID, kind *domain.EntityKind, limit int, offset int) ([]domain.Bookmark, int, error)
	Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	SoftDelete(ctx context.Context, b *domain.Bookmark) error
}

type entityResolver interface {
	Ensure(ctx context.Context, ref domain.EntityReference) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// Service provides bookmark operations.
type Service struct {
	bookmarks bookmarkRepo
	entities  entityResolver
	tx        txManager
	clock     clock.Clock
	log       *slog.Logger
}

// NewService creates a new bookmark service.
func NewService(
	log *slog.Logger,
	bookmarks bookmarkRepo,
	entities entityResolver,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		bookmarks: bookmarks,
		entities:  entities,
		tx:        tx,
		clock:     clk,
		log:       log.With("service", "bookmark"),
	}
}

// SetInput holds the parameters for turning a bookmark on or off.
type SetInput struct {
	Ref    domain.EntityReference
	UserID uuid.UUID
	On     bool
}

// Validate checks all fields and collects all errors.
func (i SetInput) Validate() error {
	var errs []domain.FieldError
	if err := i.Ref.Validate(); err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			errs = append(errs, ve.Errors...)
		}
	}
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListForUserInput holds the parameters for listing a user's bookmarks.
type ListForUserInput struct {
	UserID uuid.UUID
	Kind   *domain.EntityKind
	Limit  int
	Offset int
}

// Validate checks all fields and collects all errors.
func (i ListForUserInput) Validate() error {
	var errs []domain.FieldError
	if i.UserID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Kind != nil && !i.Kind.IsValid() {
		errs = append(errs, domain.FieldError{Field: "entity_kind", Message: "invalid value"})
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

// ---------------------------------------------------------------------------
// Operations
// ---------------------------------------------------------------------------

// Set turns the user's bookmark on or off. Both directions are idempotent;
// the returned flag reports whether anything changed.
func (s *Service) Set(ctx context.Context, input SetInput) (bool, error) {
	if err := input.Validate(); err != nil {
		return false, err
	}

	var (
		changed bool
		err     error
	)
	if input.On {
		changed, err = s.setOn(ctx, input)
	} else {
		changed, err = s.setOff(ctx, input)
	}
	if err != nil {
		return false, err
	}

	if changed {
		s.log.InfoContext(ctx, "bookmark set",
			slog.String("user_id", input.UserID.String()),
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
			slog.Bool("on", input.On),
		)
	}

	return changed, nil
}

func (s *Service) setOn(ctx context.Context, input SetInput) (bool, error) {
	if err := s.entities.Ensure(ctx, input.Ref); err != nil {
		return false, err
	}

	var changed bool
	err := txretry.CreateOrUpdate(ctx, s.tx, func(txCtx context.Context) error {
		changed = false

		_, err := s.bookmarks.FindLiveForUpdate(txCtx, input.Ref, input.UserID)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("find bookmark: %w", err)
		}

		if _, err := s.bookmarks.Create(txCtx, &domain.Bookmark{
			ID:     uuid.New(),
			Ref:    input.Ref,
			UserID: input.UserID,
			Audit:  domain.NewAudit(domain.UserActor(input.UserID), s.clock.Now()),
		}); err != nil {
			return fmt.Errorf("create bookmark: %w", err)
		}
		changed = true
		return nil
	})
	return changed, err
}

func (s *Service) setOff(ctx context.Context, input SetInput) (bool, error) {
	var changed bool
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.bookmarks.FindLiveForUpdate(txCtx, input.Ref, input.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find bookmark: %w", err)
		}

		existing.SoftDelete(domain.UserActor(input.UserID), s.clock.Now())
		if err := s.bookmarks.SoftDelete(txCtx, existing); err != nil {
			return fmt.Errorf("delete bookmark: %w", err)
		}
		changed = true
		return nil
	})
	return changed, err
}

// IsBookmarked reports whether the user has a live bookmark on ref.
func (s *Service) IsBookmarked(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error) {
	if err := ref.Validate(); err != nil {
		return false, err
	}

	ok, err := s.bookmarks.Exists(ctx, ref, userID)
	if err != nil {
		return false, fmt.Errorf("check bookmark: %w", err)
	}
	return ok, nil
}

// CountFor returns the number of live bookmarks on ref.
func (s *Service) CountFor(ctx context.Context, ref domain.EntityReference) (int, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}

	n, err := s.bookmarks.Count(ctx, ref)
	if err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return n, nil
}

// ListForUser returns the user's live bookmarks, newest first.
func (s *Service) ListForUser(ctx context.Context, input ListForUserInput) ([]domain.Bookmark, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	items, total, err := s.bookmarks.ListByUser(ctx, input.UserID, input.Kind, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookmarks: %w", err)
	}
	return items, total, nil
}
