package vote

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/txretry"
)

// Cast sets the user's vote on an entity. Flipping an existing vote updates
// the row in place, so the score moves by two in a single write.
func (s *Service) Cast(ctx context.Context, input CastInput) (*domain.Vote, domain.MutationOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.entities.Ensure(ctx, input.Ref); err != nil {
		return nil, "", err
	}

	var (
		result  *domain.Vote
		outcome domain.MutationOutcome
	)
	err := txretry.CreateOrUpdate(ctx, s.tx, func(txCtx context.Context) error {
		var err error
		result, outcome, err = s.cast(txCtx, input)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	if outcome != domain.OutcomeUnchanged {
		s.log.InfoContext(ctx, "vote cast",
			slog.String("user_id", input.UserID.String()),
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
			slog.String("kind", input.Kind.String()),
			slog.String("outcome", outcome.String()),
		)
	}

	return result, outcome, nil
}

func (s *Service) cast(ctx context.Context, input CastInput) (*domain.Vote, domain.MutationOutcome, error) {
	actor := domain.UserActor(input.UserID)
	now := s.clock.Now()

	existing, err := s.votes.FindLiveForUpdate(ctx, input.Ref, input.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		created, err := s.votes.Create(ctx, &domain.Vote{
			ID:     uuid.New(),
			Ref:    input.Ref,
			UserID: input.UserID,
			Kind:   input.Kind,
			Audit:  domain.NewAudit(actor, now),
		})
		if err != nil {
			return nil, "", fmt.Errorf("create vote: %w", err)
		}
		return created, domain.OutcomeCreated, nil
	case err != nil:
		return nil, "", fmt.Errorf("find vote: %w", err)
	}

	if existing.Kind == input.Kind {
		return existing, domain.OutcomeUnchanged, nil
	}

	existing.Kind = input.Kind
	existing.Touch(actor, now)

	updated, err := s.votes.UpdateKind(ctx, existing)
	if err != nil {
		return nil, "", fmt.Errorf("update vote: %w", err)
	}
	return updated, domain.OutcomeChanged, nil
}

// Retract soft-deletes the user's live vote. Retracting an absent vote is a
// no-op.
func (s *Service) Retract(ctx context.Context, input RetractInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	retracted := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.votes.FindLiveForUpdate(txCtx, input.Ref, input.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find vote: %w", err)
		}

		existing.SoftDelete(domain.UserActor(input.UserID), s.clock.Now())
		if err := s.votes.SoftDelete(txCtx, existing); err != nil {
			return fmt.Errorf("delete vote: %w", err)
		}
		retracted = true
		return nil
	})
	if err != nil {
		return err
	}

	if retracted {
		s.log.InfoContext(ctx, "vote retracted",
			slog.String("user_id", input.UserID.String()),
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
		)
	}

	return nil
}
