package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// Register adds a content item to the registry or refreshes its display
// fields. Registering a retired item brings it back.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.ContentItem, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	item, err := s.items.Upsert(ctx, &domain.ContentItem{
		Ref:         input.Ref,
		Title:       strings.TrimSpace(input.Title),
		Description: trimOrNil(input.Description),
		ImageURL:    trimOrNil(input.ImageURL),
		Audit:       domain.NewAudit(actorFromCtx(ctx), s.clock.Now()),
	})
	if err != nil {
		return nil, fmt.Errorf("register content: %w", err)
	}

	s.log.InfoContext(ctx, "content registered",
		slog.String("entity_id", item.Ref.ID.String()),
		slog.String("entity_kind", item.Ref.Kind.String()),
	)

	return item, nil
}

// Retire soft-deletes a content item. Interactions on a retired item stay
// in storage but the reference no longer resolves. Retiring an already
// retired item is a no-op.
func (s *Service) Retire(ctx context.Context, ref domain.EntityReference) error {
	if err := ref.Validate(); err != nil {
		return err
	}

	var audit domain.Audit
	audit.SoftDelete(actorFromCtx(ctx), s.clock.Now())

	retired, err := s.items.SoftDelete(ctx, ref, audit)
	if err != nil {
		return fmt.Errorf("retire content: %w", err)
	}
	if !retired {
		if _, err := s.items.Get(ctx, ref); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("retire %s: %w", ref, domain.ErrUnknownEntity)
			}
			return fmt.Errorf("get content: %w", err)
		}
		return nil
	}

	s.log.InfoContext(ctx, "content retired",
		slog.String("entity_id", ref.ID.String()),
		slog.String("entity_kind", ref.Kind.String()),
	)

	return nil
}
