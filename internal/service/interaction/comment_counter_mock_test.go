package interaction

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ commentCounter = &commentCounterMock{}

type commentCounterMock struct {
	CountsForFunc func(ctx context.Context, ref domain.EntityReference) (domain.CommentCounts, error)

	calls struct {
		CountsFor []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockCountsFor sync.RWMutex
}

func (mock *commentCounterMock) CountsFor(ctx context.Context, ref domain.EntityReference) (domain.CommentCounts, error) {
	if mock.CountsForFunc == nil {
		panic("commentCounterMock.CountsForFunc: method is nil but commentCounter.CountsFor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockCountsFor.Lock()
	mock.calls.CountsFor = append(mock.calls.CountsFor, callInfo)
	mock.lockCountsFor.Unlock()
	return mock.CountsForFunc(ctx, ref)
}

func (mock *commentCounterMock) CountsForCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockCountsFor.RLock()
	calls := mock.calls.CountsFor
	mock.lockCountsFor.RUnlock()
	return calls
}
