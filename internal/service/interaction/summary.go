package interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/community-backend/internal/domain"
)

// MaxBatchSize caps the number of distinct references SummariesFor accepts.
const MaxBatchSize = 100

// SummaryFor returns the aggregated interaction state of ref. When viewerID
// is set the summary carries that viewer's own reaction, vote and bookmark.
// Sub-queries run concurrently and are not read in one snapshot.
func (s *Service) SummaryFor(ctx context.Context, ref domain.EntityReference, viewerID *uuid.UUID) (*domain.InteractionSummary, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}
	if err := s.entities.Ensure(ctx, ref); err != nil {
		return nil, err
	}
	return s.collect(ctx, ref, viewerID)
}

// SummariesFor returns summaries for a batch of references. Duplicates are
// collapsed and references that do not resolve are left out of the map.
func (s *Service) SummariesFor(ctx context.Context, refs []domain.EntityReference, viewerID *uuid.UUID) (map[domain.EntityReference]*domain.InteractionSummary, error) {
	refs = lo.Uniq(refs)
	if len(refs) > MaxBatchSize {
		return nil, domain.NewValidationError("refs", fmt.Sprintf("at most %d references per batch", MaxBatchSize))
	}
	for _, ref := range refs {
		if err := ref.Validate(); err != nil {
			return nil, err
		}
	}

	var (
		mu     sync.Mutex
		result = make(map[domain.EntityReference]*domain.InteractionSummary, len(refs))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for _, ref := range refs {
		g.Go(func() error {
			summary, err := s.SummaryFor(gctx, ref, viewerID)
			if errors.Is(err, domain.ErrUnknownEntity) {
				return nil
			}
			if err != nil {
				return err
			}
			mu.Lock()
			result[ref] = summary
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.DebugContext(ctx, "summaries built",
		slog.Int("requested", len(refs)),
		slog.Int("resolved", len(result)),
	)

	return result, nil
}

func (s *Service) collect(ctx context.Context, ref domain.EntityReference, viewerID *uuid.UUID) (*domain.InteractionSummary, error) {
	summary := &domain.InteractionSummary{Ref: ref}

	var (
		viewerVote     *domain.VoteKind
		viewerBookmark bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r, err := s.stores.Reactions.SummaryFor(gctx, ref, viewerID)
		if err != nil {
			return fmt.Errorf("reactions: %w", err)
		}
		summary.Reactions = r
		return nil
	})
	g.Go(func() error {
		c, err := s.stores.Comments.CountsFor(gctx, ref)
		if err != nil {
			return fmt.Errorf("comments: %w", err)
		}
		summary.Comments = c
		return nil
	})
	g.Go(func() error {
		sh, err := s.stores.Shares.SummaryFor(gctx, ref)
		if err != nil {
			return fmt.Errorf("shares: %w", err)
		}
		summary.Shares = sh
		return nil
	})
	g.Go(func() error {
		v, err := s.stores.Votes.ScoreFor(gctx, ref)
		if err != nil {
			return fmt.Errorf("votes: %w", err)
		}
		summary.Votes = v
		return nil
	})
	g.Go(func() error {
		n, err := s.stores.Bookmarks.CountFor(gctx, ref)
		if err != nil {
			return fmt.Errorf("bookmarks: %w", err)
		}
		summary.BookmarkCount = n
		return nil
	})
	g.Go(func() error {
		n, err := s.stores.Views.CountFor(gctx, ref)
		if err != nil {
			return fmt.Errorf("views: %w", err)
		}
		summary.ViewCount = n
		return nil
	})

	if viewerID != nil {
		userID := *viewerID
		g.Go(func() error {
			kind, err := s.stores.Votes.VoteOf(gctx, ref, userID)
			if err != nil {
				return fmt.Errorf("viewer vote: %w", err)
			}
			viewerVote = kind
			return nil
		})
		g.Go(func() error {
			on, err := s.stores.Bookmarks.IsBookmarked(gctx, ref, userID)
			if err != nil {
				return fmt.Errorf("viewer bookmark: %w", err)
			}
			viewerBookmark = on
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("summary %s: %w", ref, err)
	}

	if viewerID != nil {
		summary.Viewer = &domain.ViewerState{
			UserID:       *viewerID,
			Reaction:     summary.Reactions.ViewerKind,
			Vote:         viewerVote,
			IsBookmarked: viewerBookmark,
		}
	}

	return summary, nil
}
