package interaction

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ viewCounter = &viewCounterMock{}

type viewCounterMock struct {
	CountForFunc func(ctx context.Context, ref domain.EntityReference) (int, error)

	calls struct {
		CountFor []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockCountFor sync.RWMutex
}

func (mock *viewCounterMock) CountFor(ctx context.Context, ref domain.EntityReference) (int, error) {
	if mock.CountForFunc == nil {
		panic("viewCounterMock.CountForFunc: method is nil but viewCounter.CountFor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockCountFor.Lock()
	mock.calls.CountFor = append(mock.calls.CountFor, callInfo)
	mock.lockCountFor.Unlock()
	return mock.CountForFunc(ctx, ref)
}

func (mock *viewCounterMock) CountForCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockCountFor.RLock()
	calls := mock.calls.CountFor
	mock.lockCountFor.RUnlock()
	return calls
}
