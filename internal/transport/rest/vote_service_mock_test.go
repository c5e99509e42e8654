package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/vote"
)

var _ voteService = &voteServiceMock{}

type voteServiceMock struct {
	CastFunc    func(ctx context.Context, input vote.CastInput) (*domain.Vote, domain.MutationOutcome, error)
	RetractFunc func(ctx context.Context, input vote.RetractInput) error

	calls struct {
		Cast []struct {
			Ctx   context.Context
			Input vote.CastInput
		}
		Retract []struct {
			Ctx   context.Context
			Input vote.RetractInput
		}
	}
	lockCast    sync.RWMutex
	lockRetract sync.RWMutex
}

func (mock *voteServiceMock) Cast(ctx context.Context, input vote.CastInput) (*domain.Vote, domain.MutationOutcome, error) {
	if mock.CastFunc == nil {
		panic("voteServiceMock.CastFunc: method is nil but voteService.Cast was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vote.CastInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCast.Lock()
	mock.calls.Cast = append(mock.calls.Cast, callInfo)
	mock.lockCast.Unlock()
	return mock.CastFunc(ctx, input)
}

func (mock *voteServiceMock) CastCalls() []struct {
	Ctx   context.Context
	Input vote.CastInput
} {
	mock.lockCast.RLock()
	calls := mock.calls.Cast
	mock.lockCast.RUnlock()
	return calls
}

func (mock *voteServiceMock) Retract(ctx context.Context, input vote.RetractInput) error {
	if mock.RetractFunc == nil {
		panic("voteServiceMock.RetractFunc: method is nil but voteService.Retract was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vote.RetractInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRetract.Lock()
	mock.calls.Retract = append(mock.calls.Retract, callInfo)
	mock.lockRetract.Unlock()
	return mock.RetractFunc(ctx, input)
}

func (mock *voteServiceMock) RetractCalls() []struct {
	Ctx   context.Context
	Input vote.RetractInput
} {
	mock.lockRetract.RLock()
	calls := mock.calls.Retract
	mock.lockRetract.RUnlock()
	return calls
}
