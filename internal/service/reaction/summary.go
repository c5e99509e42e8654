package reaction

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// SummaryFor returns live reaction counts per kind. When viewerID is set the
// viewer's own kind is included. Counts are computed on every call.
func (s *Service) SummaryFor(ctx context.Context, ref domain.EntityReference, viewerID *uuid.UUID) (domain.ReactionSummary, error) {
	if err := ref.Validate(); err != nil {
		return domain.ReactionSummary{}, err
	}

	counts, err := s.reactions.CountByKind(ctx, ref)
	if err != nil {
		return domain.ReactionSummary{}, fmt.Errorf("count reactions: %w", err)
	}

	summary := domain.ReactionSummary{Counts: counts}
	for _, n := range counts {
		summary.Total += n
	}

	if viewerID != nil {
		own, err := s.reactions.FindLive(ctx, ref, *viewerID)
		switch {
		case err == nil:
			summary.ViewerKind = &own.Kind
		case !errors.Is(err, domain.ErrNotFound):
			return domain.ReactionSummary{}, fmt.Errorf("find viewer reaction: %w", err)
		}
	}

	return summary, nil
}

// ListFor returns live reactions on an entity, newest first, with the total
// number matching the filter.
func (s *Service) ListFor(ctx context.Context, input ListInput) ([]domain.Reaction, int, error) {
	if err := input.Validate(); err != nil {
		return nil, 0, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = DefaultListLimit
	}

	reactions, total, err := s.reactions.List(ctx, input.Ref, input.Kind, limit, input.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list reactions: %w", err)
	}
	return reactions, total, nil
}
