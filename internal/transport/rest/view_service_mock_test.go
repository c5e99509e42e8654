package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/service/view"
)

var _ viewService = &viewServiceMock{}

type viewServiceMock struct {
	RecordViewFunc func(ctx context.Context, input view.RecordViewInput) (bool, error)

	calls struct {
		RecordView []struct {
			Ctx   context.Context
			Input view.RecordViewInput
		}
	}
	lockRecordView sync.RWMutex
}

func (mock *viewServiceMock) RecordView(ctx context.Context, input view.RecordViewInput) (bool, error) {
	if mock.RecordViewFunc == nil {
		panic("viewServiceMock.RecordViewFunc: method is nil but viewService.RecordView was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input view.RecordViewInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecordView.Lock()
	mock.calls.RecordView = append(mock.calls.RecordView, callInfo)
	mock.lockRecordView.Unlock()
	return mock.RecordViewFunc(ctx, input)
}

func (mock *viewServiceMock) RecordViewCalls() []struct {
	Ctx   context.Context
	Input view.RecordViewInput
} {
	mock.lockRecordView.RLock()
	calls := mock.calls.RecordView
	mock.lockRecordView.RUnlock()
	return calls
}
