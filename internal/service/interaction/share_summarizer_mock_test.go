package interaction

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ shareSummarizer = &shareSummarizerMock{}

type shareSummarizerMock struct {
	SummaryForFunc func(ctx context.Context, ref domain.EntityReference) (domain.ShareSummary, error)

	calls struct {
		SummaryFor []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockSummaryFor sync.RWMutex
}

func (mock *shareSummarizerMock) SummaryFor(ctx context.Context, ref domain.EntityReference) (domain.ShareSummary, error) {
	if mock.SummaryForFunc == nil {
		panic("shareSummarizerMock.SummaryForFunc: method is nil but shareSummarizer.SummaryFor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockSummaryFor.Lock()
	mock.calls.SummaryFor = append(mock.calls.SummaryFor, callInfo)
	mock.lockSummaryFor.Unlock()
	return mock.SummaryForFunc(ctx, ref)
}

func (mock *shareSummarizerMock) SummaryForCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockSummaryFor.RLock()
	calls := mock.calls.SummaryFor
	mock.lockSummaryFor.RUnlock()
	return calls
}
