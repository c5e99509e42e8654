package share

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ metadataResolver = &metadataResolverMock{}

type metadataResolverMock struct {
	ResolveFunc func(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error)

	calls struct {
		Resolve []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockResolve sync.RWMutex
}

func (mock *metadataResolverMock) Resolve(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error) {
	if mock.ResolveFunc == nil {
		panic("metadataResolverMock.ResolveFunc: method is nil but metadataResolver.Resolve was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockResolve.Lock()
	mock.calls.Resolve = append(mock.calls.Resolve, callInfo)
	mock.lockResolve.Unlock()
	return mock.ResolveFunc(ctx, ref)
}

func (mock *metadataResolverMock) ResolveCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockResolve.RLock()
	calls := mock.calls.Resolve
	mock.lockResolve.RUnlock()
	return calls
}
