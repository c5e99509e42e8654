package reaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Remove soft-deletes the user's live reaction. Removing an absent reaction
// is a no-op.
func (s *Service) Remove(ctx context.Context, input RemoveInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	removed := false
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		existing, err := s.reactions.FindLiveForUpdate(txCtx, input.Ref, input.UserID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("find reaction: %w", err)
		}

		existing.SoftDelete(domain.UserActor(input.UserID), s.clock.Now())
		if err := s.reactions.SoftDelete(txCtx, existing); err != nil {
			return fmt.Errorf("delete reaction: %w", err)
		}
		removed = true
		return nil
	})
	if err != nil {
		return err
	}

	if removed {
		s.log.InfoContext(ctx, "reaction removed",
			slog.String("user_id", input.UserID.String()),
			slog.String("entity_id", input.Ref.ID.String()),
			slog.String("entity_kind", input.Ref.Kind.String()),
		)
	}

	return nil
}
