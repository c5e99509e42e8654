package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/service/share"
)

var _ shareService = &shareServiceMock{}

type shareServiceMock struct {
	RecordFunc func(ctx context.Context, input share.RecordInput) (*share.Result, error)

	calls struct {
		Record []struct {
			Ctx   context.Context
			Input share.RecordInput
		}
	}
	lockRecord sync.RWMutex
}

func (mock *shareServiceMock) Record(ctx context.Context, input share.RecordInput) (*share.Result, error) {
	if mock.RecordFunc == nil {
		panic("shareServiceMock.RecordFunc: method is nil but shareService.Record was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input share.RecordInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRecord.Lock()
	mock.calls.Record = append(mock.calls.Record, callInfo)
	mock.lockRecord.Unlock()
	return mock.RecordFunc(ctx, input)
}

func (mock *shareServiceMock) RecordCalls() []struct {
	Ctx   context.Context
	Input share.RecordInput
} {
	mock.lockRecord.RLock()
	calls := mock.calls.Record
	mock.lockRecord.RUnlock()
	return calls
}
