// Package vote implements the vote store: one live up or down vote per
// (entity, user), used mostly by Q&A content.
package vote

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

type voteRepo interface {
	FindLive(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Vote, error)
	FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Vote, error)
	Tally(ctx context.Context, ref domain.EntityReference) (up int, down int, err error)
	Create(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	UpdateKind(ctx context.Context, vote *domain.Vote) (*domain.Vote, error)
	SoftDelete(ctx context.Context, vote *domain.Vote) error
}

type entityResolver interface {
	Ensure(ctx context.Context, ref domain.EntityReference) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides vote operations.
type Service struct {
	votes    voteRepo
	entities entityResolver
	tx       txManager
	clock    clock.Clock
	log      *slog.Logger
}

// NewService creates a new vote service.
func NewService(
	log *slog.Logger,
	votes voteRepo,
	entities entityResolver,
	tx txManager,
	clk clock.Clock,
) *Service {
	return &Service{
		votes:    votes,
		entities: entities,
		tx:       tx,
		clock:    clk,
		log:      log.With("service", "vote"),
	}
}
