package bookmark

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ bookmarkRepo = &bookmarkRepoMock{}

type bookmarkRepoMock struct {
	FindLiveForUpdateFunc func(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Bookmark, error)
	ExistsFunc            func(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error)
	CountFunc             func(ctx context.Context, ref domain.EntityReference) (int, error)
	ListByUserFunc        func(ctx context.Context, userID uuid.UUID, kind *domain.EntityKind, limit int, offset int) ([]domain.Bookmark, int, error)
	CreateFunc            func(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error)
	SoftDeleteFunc        func(ctx context.Context, b *domain.Bookmark) error

	calls struct {
		FindLiveForUpdate []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			UserID uuid.UUID
		}
		Exists []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			UserID uuid.UUID
		}
		Count []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Kind   *domain.EntityKind
			Limit  int
			Offset int
		}
		Create []struct {
			Ctx context.Context
			B   *domain.Bookmark
		}
		SoftDelete []struct {
			Ctx context.Context
			B   *domain.Bookmark
		}
	}
	lockFindLiveForUpdate sync.RWMutex
	lockExists            sync.RWMutex
	lockCount             sync.RWMutex
	lockListByUser        sync.RWMutex
	lockCreate            sync.RWMutex
	lockSoftDelete        sync.RWMutex
}

func (mock *bookmarkRepoMock) FindLiveForUpdate(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (*domain.Bookmark, error) {
	if mock.FindLiveForUpdateFunc == nil {
		panic("bookmarkRepoMock.FindLiveForUpdateFunc: method is nil but bookmarkRepo.FindLiveForUpdate was just called")
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

func (mock *bookmarkRepoMock) FindLiveForUpdateCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	UserID uuid.UUID
} {
	mock.lockFindLiveForUpdate.RLock()
	calls := mock.calls.FindLiveForUpdate
	mock.lockFindLiveForUpdate.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Exists(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("bookmarkRepoMock.ExistsFunc: method is nil but bookmarkRepo.Exists was just called")
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
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, ref, userID)
}

func (mock *bookmarkRepoMock) ExistsCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	UserID uuid.UUID
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Count(ctx context.Context, ref domain.EntityReference) (int, error) {
	if mock.CountFunc == nil {
		panic("bookmarkRepoMock.CountFunc: method is nil but bookmarkRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, ref)
}

func (mock *bookmarkRepoMock) CountCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) ListByUser(ctx context.Context, userID uuid.UUID, kind *domain.EntityKind, limit int, offset int) ([]domain.Bookmark, int, error) {
	if mock.ListByUserFunc == nil {
		panic("bookmarkRepoMock.ListByUserFunc: method is nil but bookmarkRepo.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Kind   *domain.EntityKind
		Limit  int
		Offset int
	}{
		Ctx:    ctx,
		UserID: userID,
		Kind:   kind,
		Limit:  limit,
		Offset: offset,
	}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, kind, limit, offset)
}

func (mock *bookmarkRepoMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Kind   *domain.EntityKind
	Limit  int
	Offset int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) Create(ctx context.Context, b *domain.Bookmark) (*domain.Bookmark, error) {
	if mock.CreateFunc == nil {
		panic("bookmarkRepoMock.CreateFunc: method is nil but bookmarkRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bookmark
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, b)
}

func (mock *bookmarkRepoMock) CreateCalls() []struct {
	Ctx context.Context
	B   *domain.Bookmark
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *bookmarkRepoMock) SoftDelete(ctx context.Context, b *domain.Bookmark) error {
	if mock.SoftDeleteFunc == nil {
		panic("bookmarkRepoMock.SoftDeleteFunc: method is nil but bookmarkRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		B   *domain.Bookmark
	}{
		Ctx: ctx,
		B:   b,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, b)
}

func (mock *bookmarkRepoMock) SoftDeleteCalls() []struct {
	Ctx context.Context
	B   *domain.Bookmark
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
