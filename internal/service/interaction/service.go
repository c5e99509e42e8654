// Package interaction composes the per-kind interaction services into one
// summary per entity.
package interaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/config"
	"github.com/heartmarshall/community-backend/internal/domain"
)

type entityResolver interface {
	Ensure(ctx context.Context, ref domain.EntityReference) error
}

type reactionReader interface {
	SummaryFor(ctx context.Context, ref domain.EntityReference, viewerID *uuid.UUID) (domain.ReactionSummary, error)
}

type commentCounter interface {
	CountsFor(ctx context.Context, ref domain.EntityReference) (domain.CommentCounts, error)
}

type shareSummarizer interface {
	SummaryFor(ctx context.Context, ref domain.EntityReference) (domain.ShareSummary, error)
}

type voteReader interface {
	ScoreFor(ctx context.Context, ref domain.EntityReference) (domain.VoteScore, error)
	VoteOf(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.VoteKind, error)
}

type bookmarkReader interface {
	IsBookmarked(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error)
	CountFor(ctx context.Context, ref domain.EntityReference) (int, error)
}

type viewCounter interface {
	CountFor(ctx context.Context, ref domain.EntityReference) (int, error)
}

// Stores groups the sub-services the aggregator reads from.
type Stores struct {
	Reactions reactionReader
	Comments  commentCounter
	Shares    shareSummarizer
	Votes     voteReader
	Bookmarks bookmarkReader
	Views     viewCounter
}

// Service builds InteractionSummary values.
type Service struct {
	entities    entityResolver
	stores      Stores
	log         *slog.Logger
	concurrency int
}

// NewService creates a new aggregator.
func NewService(log *slog.Logger, entities entityResolver, stores Stores, cfg config.InteractionConfig) *Service {
	concurrency := cfg.SummaryConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Service{
		entities:    entities,
		stores:      stores,
		log:         log.With("service", "interaction"),
		concurrency: concurrency,
	}
}
