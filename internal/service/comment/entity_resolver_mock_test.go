package comment

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ entityResolver = &entityResolverMock{}

type entityResolverMock struct {
	EnsureFunc func(ctx context.Context, ref domain.EntityReference) error

	calls struct {
		Ensure []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockEnsure sync.RWMutex
}

func (mock *entityResolverMock) Ensure(ctx context.Context, ref domain.EntityReference) error {
	if mock.EnsureFunc == nil {
		panic("entityResolverMock.EnsureFunc: method is nil but entityResolver.Ensure was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockEnsure.Lock()
	mock.calls.Ensure = append(mock.calls.Ensure, callInfo)
	mock.lockEnsure.Unlock()
	return mock.EnsureFunc(ctx, ref)
}

func (mock *entityResolverMock) EnsureCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockEnsure.RLock()
	calls := mock.calls.Ensure
	mock.lockEnsure.RUnlock()
	return calls
}
