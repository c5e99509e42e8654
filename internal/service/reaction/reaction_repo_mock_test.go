package reaction

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ reactionRepo = &reactionRepoMock{}

type reactionRepoMock struct {
	FindLiveFunc          func(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error)
	FindLiveForUpdateFunc func(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error)
	CountByKindFunc       func(ctx context.Context, ref domain.EntityReference) (map[domain.ReactionKind]int, error)
	ListFunc              func(ctx context.Context, ref domain.EntityReference, kind *domain.ReactionKind, limit int, offset int) ([]domain.Reaction, int, error)
	CreateFunc            func(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error)
	UpdateKindFunc        func(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error)
	SoftDeleteFunc        func(ctx context.Context, reaction *domain.Reaction) error

	calls struct {
		FindLive []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			UserID uuid.UUID
		}
		FindLiveForUpdate []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			UserID uuid.UUID
		}
		CountByKind []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		List []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			Kind   *domain.ReactionKind
			Limit  int
			Offset int
		}
		Create []struct {
			Ctx      context.Context
			Reaction *domain.Reaction
		}
		UpdateKind []struct {
			Ctx      context.Context
			Reaction *domain.Reaction
		}
		SoftDelete []struct {
			Ctx      context.Context
			Reaction *domain.Reaction
		}
	}
	lockFindLive          sync.RWMutex
	lockFindLiveForUpdate sync.RWMutex
	lockCountByKind       sync.RWMutex
	lockList              sync.RWMutex
	lockCreate            sync.RWMutex
	lockUpdateKind        sync.RWMutex
	lockSoftDelete        sync.RWMutex
}

func (mock *reactionRepoMock) FindLive(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error) {
	if mock.FindLiveFunc == nil {
		panic("reactionRepoMock.FindLiveFunc: method is nil but reactionRepo.FindLive was just called")
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
	mock.lockFindLive.Lock()
	mock.calls.FindLive = append(mock.calls.FindLive, callInfo)
	mock.lockFindLive.Unlock()
	return mock.FindLiveFunc(ctx, ref, userID)
}

func (mock *reactionRepoMock) FindLiveCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	UserID uuid.UUID
} {
	mock.lockFindLive.RLock()
	calls := mock.calls.FindLive
	mock.lockFindLive.RUnlock()
	return calls
}

func (mock *reactionRepoMock) FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Reaction, error) {
	if mock.FindLiveForUpdateFunc == nil {
		panic("reactionRepoMock.FindLiveForUpdateFunc: method is nil but reactionRepo.FindLiveForUpdate was just called")
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
	mock.lockFindLiveForUpdate.Lock()
	mock.calls.FindLiveForUpdate = append(mock.calls.FindLiveForUpdate, callInfo)
	mock.lockFindLiveForUpdate.Unlock()
	return mock.FindLiveForUpdateFunc(ctx, ref, userID)
}

func (mock *reactionRepoMock) FindLiveForUpdateCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	UserID uuid.UUID
} {
	mock.lockFindLiveForUpdate.RLock()
	calls := mock.calls.FindLiveForUpdate
	mock.lockFindLiveForUpdate.RUnlock()
	return calls
}

func (mock *reactionRepoMock) CountByKind(ctx context.Context, ref domain.EntityReference) (map[domain.ReactionKind]int, error) {
	if mock.CountByKindFunc == nil {
		panic("reactionRepoMock.CountByKindFunc: method is nil but reactionRepo.CountByKind was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockCountByKind.Lock()
	mock.calls.CountByKind = append(mock.calls.CountByKind, callInfo)
	mock.lockCountByKind.Unlock()
	return mock.CountByKindFunc(ctx, ref)
}

func (mock *reactionRepoMock) CountByKindCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockCountByKind.RLock()
	calls := mock.calls.CountByKind
	mock.lockCountByKind.RUnlock()
	return calls
}

func (mock *reactionRepoMock) List(ctx context.Context, ref domain.EntityReference, kind *domain.ReactionKind, limit int, offset int) ([]domain.Reaction, int, error) {
	if mock.ListFunc == nil {
		panic("reactionRepoMock.ListFunc: method is nil but reactionRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Ref    domain.EntityReference
		Kind   *domain.ReactionKind
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		Ref:    ref,
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, ref, kind, limit, offset)
}

func (mock *reactionRepoMock) ListCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	Kind   *domain.ReactionKind
	Limit  int
	Offset int
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *reactionRepoMock) Create(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error) {
	if mock.CreateFunc == nil {
		panic("reactionRepoMock.CreateFunc: method is nil but reactionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Reaction *domain.Reaction
	}{
		Ctx:      ctx,
		Reaction: reaction,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, reaction)
}

func (mock *reactionRepoMock) CreateCalls() []struct {
	Ctx      context.Context
	Reaction *domain.Reaction
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *reactionRepoMock) UpdateKind(ctx context.Context, reaction *domain.Reaction) (*domain.Reaction, error) {
	if mock.UpdateKindFunc == nil {
		panic("reactionRepoMock.UpdateKindFunc: method is nil but reactionRepo.UpdateKind was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Reaction *domain.Reaction
	}{
		Ctx:      ctx,
		Reaction: reaction,
	}
	mock.lockUpdateKind.Lock()
	mock.calls.UpdateKind = append(mock.calls.UpdateKind, callInfo)
	mock.lockUpdateKind.Unlock()
	return mock.UpdateKindFunc(ctx, reaction)
}

func (mock *reactionRepoMock) UpdateKindCalls() []struct {
	Ctx      context.Context
	Reaction *domain.Reaction
} {
	mock.lockUpdateKind.RLock()
	calls := mock.calls.UpdateKind
	mock.lockUpdateKind.RUnlock()
	return calls
}

func (mock *reactionRepoMock) SoftDelete(ctx context.Context, reaction *domain.Reaction) error {
	if mock.SoftDeleteFunc == nil {
		panic("reactionRepoMock.SoftDeleteFunc: method is nil but reactionRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		Reaction *domain.Reaction
	}{
		Ctx:      ctx,
		Reaction: reaction,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, reaction)
}

func (mock *reactionRepoMock) SoftDeleteCalls() []struct {
	Ctx      context.Context
	Reaction *domain.Reaction
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
