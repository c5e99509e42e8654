package share

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ shareRepo = &shareRepoMock{}

type shareRepoMock struct {
	CreateFunc    func(ctx context.Context, s *domain.Share) (*domain.Share, error)
	BreakdownFunc func(ctx context.Context, ref domain.EntityReference) ([]domain.ShareBucket, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			S   *domain.Share
		}
		Breakdown []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockCreate    sync.RWMutex
	lockBreakdown sync.RWMutex
}

func (mock *shareRepoMock) Create(ctx context.Context, s *domain.Share) (*domain.Share, error) {
	if mock.CreateFunc == nil {
		panic("shareRepoMock.CreateFunc: method is nil but shareRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		S   *domain.Share
	}{
		Ctx: ctx,
		S:   s,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, s)
}

func (mock *shareRepoMock) CreateCalls() []struct {
	Ctx context.Context
	S   *domain.Share
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *shareRepoMock) Breakdown(ctx context.Context, ref domain.EntityReference) ([]domain.ShareBucket, error) {
	if mock.BreakdownFunc == nil {
		panic("shareRepoMock.BreakdownFunc: method is nil but shareRepo.Breakdown was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockBreakdown.Lock()
	mock.calls.Breakdown = append(mock.calls.Breakdown, callInfo)
	mock.lockBreakdown.Unlock()
	return mock.BreakdownFunc(ctx, ref)
}

func (mock *shareRepoMock) BreakdownCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockBreakdown.RLock()
	calls := mock.calls.Breakdown
	mock.lockBreakdown.RUnlock()
	return calls
}
