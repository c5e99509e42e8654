package reaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/txretry"
)

// AddOrUpdate sets the user's reaction on an entity. It creates the reaction
// when none is live, leaves it untouched when the kind is the same, and
// changes the kind in place otherwise.
func (s *Service) AddOrUpdate(ctx context.Context, input AddOrUpdateInput) (*domain.Reaction, domain.MutationOutcome, error) {
	if err := input.Validate(); err != nil {
		return nil, "", err
	}

	if err := s.entities.Ensure(ctx, input.Ref); err != nil {
		return nil, "", err
	}

	var (
		result  *domain.Reaction
		outcome domain.MutationOutcome
	)
	err := txretry.CreateOrUpdate(ctx, s.tx, func(txCtx context.Context) error {
		var err error
		result, outcome, err = s.addOrUpdate(txCtx, input)
		return err
	})
	if err != nil {
		return nil, "", err
	}

	if outcome != domain.OutcomeUnchanged {
		s.log.InfoContext(ctx, "reaction set",
			slog.String("user_id", input.UserID.String()),
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
			slog.String("kind", input.Kind.String()),
			slog.String("outcome", outcome.String()),
		)
	}

	return result, outcome, nil
}

func (s *Service) addOrUpdate(ctx context.Context, input AddOrUpdateInput) (*domain.Reaction, domain.MutationOutcome, error) {
	actor := domain.UserActor(input.UserID)
	now := s.clock.Now()

	existing, err := s.reactions.FindLiveForUpdate(ctx, input.Ref, input.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		created, err := s.reactions.Create(ctx, &domain.Reaction{
			ID:     uuid.New(),
			Ref:    input.Ref,
			UserID: input.UserID,
			Kind:   input.Kind,
			Audit:  domain.NewAudit(actor, now),
		})
		if err != nil {
			return nil, "", fmt.Errorf("create reaction: %w", err)
		}
		return created, domain.OutcomeCreated, nil
	case err != nil:
		return nil, "", fmt.Errorf("find reaction: %w", err)
	}

	if existing.Kind == input.Kind {
		return existing, domain.OutcomeUnchanged, nil
	}

	existing.Kind = input.Kind
	existing.Touch(actor, now)

	updated, err := s.reactions.UpdateKind(ctx, existing)
	if err != nil {
		return nil, "", fmt.Errorf("update reaction: %w", err)
	}
	return updated, domain.OutcomeChanged, nil
}
