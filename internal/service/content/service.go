// Package content maintains the registry of content items that can receive
// interactions and resolves references against it.
package content

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/clock"
	"github.com/heartmarshall/community-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type contentRepo interface {
	Get(ctx context.Context, ref domain.EntityReference) (*domain.ContentItem, error)
	Metadata(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error)
	Exists(ctx context.Context, ref domain.EntityReference) (bool, error)
	Upsert(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	SoftDelete(ctx context.Context, ref domain.EntityReference, audit domain.Audit) (bool, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the content registry.
type Service struct {
	log   *slog.Logger
	items contentRepo
	clock clock.Clock
}

// NewService creates a new content registry service.
func NewService(log *slog.Logger, items contentRepo, clk clock.Clock) *Service {
	return &Service{
		log:   log.With("service", "content"),
		items: items,
		clock: clk,
	}
}

// actorFromCtx returns the authenticated user as actor, or SystemActor for
// calls made by background jobs.
func actorFromCtx(ctx context.Context) domain.Actor {
	if id, ok := ctxutil.UserIDFromCtx(ctx); ok {
		return domain.UserActor(id)
	}
	return domain.SystemActor
}
