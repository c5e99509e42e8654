// Package comment implements the comment store: top-level comments and one
// level of replies per entity, with author-only edits and soft deletion.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/community-backend/internal/config"
	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type commentRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	Counts(ctx context.Context, ref domain.EntityReference) (topLevel int, total int, err error)
	ListTopLevel(ctx context.Context, ref domain.EntityReference, includeDeleted bool, limit int, offset int) ([]domain.Comment, int, error)
	ListReplies(ctx context.Context, parentID uuid.UUID, after *domain.Cursor, limit int) ([]domain.Comment, error)
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	UpdateContent(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	SoftDelete(ctx context.Context, c *domain.Comment) error
	Restore(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
}

type entityResolver interface {
	Ensure(ctx context.Context, ref domain.EntityReference) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service provides comment operations.
type Service struct {
	comments   commentRepo
	entities   entityResolver
	tx         txManager
	clock      clock.Clock
	log        *slog.Logger
	maxLength  int
	repliesPer int
}

// NewService creates a new comment service.
func NewService(
	log *slog.Logger,
	comments commentRepo,
	entities entityResolver,
	tx txManager,
	clk clock.Clock,
	cfg config.InteractionConfig,
) *Service {
	return &Service{
		comments:   comments,
		entities:   entities,
		tx:         tx,
		clock:      clk,
		log:        log.With("service", "comment"),
		maxLength:  cfg.MaxCommentLength,
		repliesPer: cfg.RepliesPageSize,
	}
}
