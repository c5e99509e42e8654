// Package view implements the view tracker. Every view is stored; only the
// first view per viewer inside the dedup window is counted.
package view

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/clock"
)

type viewRepo interface {
	LockViewer(ctx context.Context, ref domain.EntityReference, viewerKey string) error
	LastCountedAt(ctx context.Context, ref domain.EntityReference, viewerKey string) (time.Time, error)
	Insert(ctx context.Context, e *domain.ViewEvent) error
	Count(ctx context.Context, ref domain.EntityReference) (int, error)
}

// viewGate admits at most one counted view per (ref, viewer) per window.
// Release undoes the admission stamped at, if it still holds.
// When no gate is configured the decision is made in PostgreSQL.
type viewGate interface {
	Admit(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time, window time.Duration) (bool, error)
	Release(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time) error
}

type entityResolver interface {
	Ensure(ctx context.Context, ref domain.EntityReference) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service records and counts views.
type Service struct {
	views    viewRepo
	gate     viewGate
	entities entityResolver
	tx       txManager
	clock    clock.Clock
	log      *slog.Logger
	window   time.Duration
}

// NewService creates a new view service. gate may be nil.
func NewService(
	log *slog.Logger,
	views viewRepo,
	gate viewGate,
	entities entityResolver,
	tx txManager,
	clk clock.Clock,
	window time.Duration,
) *Service {
	return &Service{
		views:    views,
		gate:     gate,
		entities: entities,
		tx:       tx,
		clock:    clk,
		log:      log.With("service", "view"),
		window:   window,
	}
}
