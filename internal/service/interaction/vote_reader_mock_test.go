package interaction

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ voteReader = &voteReaderMock{}

type voteReaderMock struct {
	ScoreForFunc func(ctx context.Context, ref domain.EntityReference) (domain.VoteScore, error)
	VoteOfFunc   func(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.VoteKind, error)

	calls struct {
		ScoreFor []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		VoteOf []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			UserID uuid.UUID
		}
	}
	lockScoreFor sync.RWMutex
	lockVoteOf   sync.RWMutex
}

func (mock *voteReaderMock) ScoreFor(ctx context.Context, ref domain.EntityReference) (domain.VoteScore, error) {
	if mock.ScoreForFunc == nil {
		panic("voteReaderMock.ScoreForFunc: method is nil but voteReader.ScoreFor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockScoreFor.Lock()
	mock.calls.ScoreFor = append(mock.calls.ScoreFor, callInfo)
	mock.lockScoreFor.Unlock()
	return mock.ScoreForFunc(ctx, ref)
}

func (mock *voteReaderMock) ScoreForCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockScoreFor.RLock()
	calls := mock.calls.ScoreFor
	mock.lockScoreFor.RUnlock()
	return calls
}

func (mock *voteReaderMock) VoteOf(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.VoteKind, error) {
	if mock.VoteOfFunc == nil {
		panic("voteReaderMock.VoteOfFunc: method is nil but voteReader.VoteOf was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Ref    domain.EntityReference
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		Ref:    ref,
		UserID: userID,
	}
	mock.lockVoteOf.Lock()
	mock.calls.VoteOf = append(mock.calls.VoteOf, callInfo)
	mock.lockVoteOf.Unlock()
	return mock.VoteOfFunc(ctx, ref, userID)
}

func (mock *voteReaderMock) VoteOfCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	UserID uuid.UUID
} {
	mock.lockVoteOf.RLock()
	calls := mock.calls.VoteOf
	mock.lockVoteOf.RUnlock()
	return calls
}
