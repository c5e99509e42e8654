package content

import (
	"context"
	"sync"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	GetFunc        func(ctx context.Context, ref domain.EntityReference) (*domain.ContentItem, error)
	MetadataFunc   func(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error)
	ExistsFunc     func(ctx context.Context, ref domain.EntityReference) (bool, error)
	UpsertFunc     func(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error)
	SoftDeleteFunc func(ctx context.Context, ref domain.EntityReference, audit domain.Audit) (bool, error)

	calls struct {
		Get []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		Metadata []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		Exists []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		Upsert []struct {
			Ctx  context.Context
			Item *domain.ContentItem
		}
		SoftDelete []struct {
			Ctx   context.Context
			Ref   domain.EntityReference
			Audit domain.Audit
		}
	}
	lockGet        sync.RWMutex
	lockMetadata   sync.RWMutex
	lockExists     sync.RWMutex
	lockUpsert     sync.RWMutex
	lockSoftDelete sync.RWMutex
}

func (mock *contentRepoMock) Get(ctx context.Context, ref domain.EntityReference) (*domain.ContentItem, error) {
	if mock.GetFunc == nil {
		panic("contentRepoMock.GetFunc: method is nil but contentRepo.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, ref)
}

func (mock *contentRepoMock) GetCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *contentRepoMock) Metadata(ctx context.Context, ref domain.EntityReference) (domain.ContentMetadata, error) {
	if mock.MetadataFunc == nil {
		panic("contentRepoMock.MetadataFunc: method is nil but contentRepo.Metadata was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockMetadata.Lock()
	mock.calls.Metadata = append(mock.calls.Metadata, callInfo)
	mock.lockMetadata.Unlock()
	return mock.MetadataFunc(ctx, ref)
}

func (mock *contentRepoMock) MetadataCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockMetadata.RLock()
	calls := mock.calls.Metadata
	mock.lockMetadata.RUnlock()
	return calls
}

func (mock *contentRepoMock) Exists(ctx context.Context, ref domain.EntityReference) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("contentRepoMock.ExistsFunc: method is nil but contentRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, ref)
}

func (mock *contentRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockExists.RLock()
	calls := mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *contentRepoMock) Upsert(ctx context.Context, item *domain.ContentItem) (*domain.ContentItem, error) {
	if mock.UpsertFunc == nil {
		panic("contentRepoMock.UpsertFunc: method is nil but contentRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Item *domain.ContentItem
	}{
		Ctx:  ctx,
		Item: item,
	}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, item)
}

func (mock *contentRepoMock) UpsertCalls() []struct {
	Ctx  context.Context
	Item *domain.ContentItem
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *contentRepoMock) SoftDelete(ctx context.Context, ref domain.EntityReference, audit domain.Audit) (bool, error) {
	if mock.SoftDeleteFunc == nil {
		panic("contentRepoMock.SoftDeleteFunc: method is nil but contentRepo.SoftDelete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Ref   domain.EntityReference
		Audit domain.Audit
	}{
		Ctx:   ctx,
		Ref:   ref,
		Audit: audit,
	}
	mock.lockSoftDelete.Lock()
	mock.calls.SoftDelete = append(mock.calls.SoftDelete, callInfo)
	mock.lockSoftDelete.Unlock()
	return mock.SoftDeleteFunc(ctx, ref, audit)
}

func (mock *contentRepoMock) SoftDeleteCalls() []struct {
	Ctx   context.Context
	Ref   domain.EntityReference
	Audit domain.Audit
} {
	mock.lockSoftDelete.RLock()
	calls := mock.calls.SoftDelete
	mock.lockSoftDelete.RUnlock()
	return calls
}
