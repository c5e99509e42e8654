package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/content"
)

var _ contentService = &contentServiceMock{}

type contentServiceMock struct {
	RegisterFunc func(ctx context.Context, input content.RegisterInput) (*domain.ContentItem, error)
	RetireFunc   func(ctx context.Context, ref domain.EntityReference) error

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input content.RegisterInput
		}
		Retire []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
	}
	lockRegister sync.RWMutex
	lockRetire   sync.RWMutex
}

func (mock *contentServiceMock) Register(ctx context.Context, input content.RegisterInput) (*domain.ContentItem, error) {
	if mock.RegisterFunc == nil {
		panic("contentServiceMock.RegisterFunc: method is nil but contentService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input content.RegisterInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *contentServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input content.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *contentServiceMock) Retire(ctx context.Context, ref domain.EntityReference) error {
	if mock.RetireFunc == nil {
		panic("contentServiceMock.RetireFunc: method is nil but contentService.Retire was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockRetire.Lock()
	mock.calls.Retire = append(mock.calls.Retire, callInfo)
	mock.lockRetire.Unlock()
	return mock.RetireFunc(ctx, ref)
}

func (mock *contentServiceMock) RetireCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockRetire.RLock()
	calls := mock.calls.Retire
	mock.lockRetire.RUnlock()
	return calls
}
