// Package dataloader provides per-request loaders that batch interaction
// summary lookups into single aggregator calls.
package dataloader

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/samber/lo"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/pkg/ctxutil"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type summaryService interface {
	SummariesFor(ctx context.Context, refs []domain.EntityReference, viewerID *uuid.UUID) (map[domain.EntityReference]*domain.InteractionSummary, error)
}

// Loaders holds the per-request loader instances.
type Loaders struct {
	SummaryByRef *dataloader.Loader[domain.EntityReference, *domain.InteractionSummary]
}

// NewLoaders creates loaders personalised to viewerID (nil for anonymous).
// Must be called per request: loaders cache results for their lifetime.
func NewLoaders(svc summaryService, viewerID *uuid.UUID) *Loaders {
	return &Loaders{
		SummaryByRef: dataloader.NewBatchedLoader(
			newSummaryBatchFn(svc, viewerID),
			dataloader.WithWait[domain.EntityReference, *domain.InteractionSummary](wait),
			dataloader.WithBatchCapacity[domain.EntityReference, *domain.InteractionSummary](maxBatch),
		),
	}
}

func newSummaryBatchFn(svc summaryService, viewerID *uuid.UUID) dataloader.BatchFunc[domain.EntityReference, *domain.InteractionSummary] {
	return func(ctx context.Context, keys []domain.EntityReference) []*dataloader.Result[*domain.InteractionSummary] {
		summaries, err := svc.SummariesFor(ctx, keys, viewerID)
		if err != nil {
			return lo.Map(keys, func(_ domain.EntityReference, _ int) *dataloader.Result[*domain.InteractionSummary] {
				return &dataloader.Result[*domain.InteractionSummary]{Error: err}
			})
		}

		return lo.Map(keys, func(key domain.EntityReference, _ int) *dataloader.Result[*domain.InteractionSummary] {
			if s, ok := summaries[key]; ok {
				return &dataloader.Result[*domain.InteractionSummary]{Data: s}
			}
			return &dataloader.Result[*domain.InteractionSummary]{
				Error: fmt.Errorf("%s: %w", key, domain.ErrUnknownEntity),
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}

// Middleware instantiates per-request Loaders for the authenticated viewer.
// It must run after the auth middleware.
func Middleware(svc summaryService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			loaders := NewLoaders(svc, ctxutil.UserIDPtrFromCtx(r.Context()))
			next.ServeHTTP(w, r.WithContext(WithLoaders(r.Context(), loaders)))
		})
	}
}
