// Package reaction implements the reaction store: one live reaction per
// (entity, user), changed in place when the user picks another kind.
package reaction

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

type reactionRepo interface {
	FindLive(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error)
	FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error)
	CountByKind(ctx context.Context, ref domain.EntityReference) (map[domain.ReactionKind]int, error)
	List(ctx context.Context, ref domain.EntityReference, kind *domain.ReactionKind, limit int, offset int) ([]domain.Reaction, int, error)
	Create(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error)
	UpdateKind(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error)
	SoftDelete(ctx context.Context, reaction *domain.Reaction) error
}

type entityResolver interface {
	Ensure(ctx context.Context, ref domain.EntityReference) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides reaction operations.
type Service struct {
	reactions reactionRepo
	entities  entityResolver
	tx        txManager
	clock     clock.Clock
	log       *slog.Logger
}

// NewService creates a new reaction service.
func NewService(
	log *slog.Logger,
	reactions reactionRepo,
	entities entityResolver,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		reactions: reactions,
		entities:  entities,
		tx:        tx,
		clock:     clk,
		log:       log.With("service", "reaction"),
	}
}
