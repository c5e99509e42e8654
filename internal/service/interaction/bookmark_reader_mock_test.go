package interaction

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ bookmarkReader = &bookmarkReaderMock{}

type bookmarkReaderMock struct {
	CountForFunc     func(ctx context.Context, ref domain.EntityReference) (int, error)
	IsBookmarkedFunc func(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error)

	calls struct {
		CountFor []struct {
			Ctx context.Context
			Ref domain.EntityReference
		}
		IsBookmarked []struct {
			Ctx    context.Context
			Ref    domain.EntityReference
			UserID uuid.UUID
		}
	}
	lockCountFor     sync.RWMutex
	lockIsBookmarked sync.RWMutex
}

func (mock *bookmarkReaderMock) CountFor(ctx context.Context, ref domain.EntityReference) (int, error) {
	if mock.CountForFunc == nil {
		panic("bookmarkReaderMock.CountForFunc: method is nil but bookmarkReader.CountFor was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Ref domain.EntityReference
	}{
		Ctx: ctx,
		Ref: ref,
	}
	mock.lockCountFor.Lock()
	mock.calls.CountFor = append(mock.calls.CountFor, callInfo)
	mock.lockCountFor.Unlock()
	return mock.CountForFunc(ctx, ref)
}

func (mock *bookmarkReaderMock) CountForCalls() []struct {
	Ctx context.Context
	Ref domain.EntityReference
} {
	mock.lockCountFor.RLock()
	calls := mock.calls.CountFor
	mock.lockCountFor.RUnlock()
	return calls
}

func (mock *bookmarkReaderMock) IsBookmarked(ctx context.Context, ref domain.EntityReference, userID uuid.UUID) (bool, error) {
	if mock.IsBookmarkedFunc == nil {
		panic("bookmarkReaderMock.IsBookmarkedFunc: method is nil but bookmarkReader.IsBookmarked was just called")
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
	mock.lockIsBookmarked.Lock()
	mock.calls.IsBookmarked = append(mock.calls.IsBookmarked, callInfo)
	mock.lockIsBookmarked.Unlock()
	return mock.IsBookmarkedFunc(ctx, ref, userID)
}

func (mock *bookmarkReaderMock) IsBookmarkedCalls() []struct {
	Ctx    context.Context
	Ref    domain.EntityReference
	UserID uuid.UUID
} {
	mock.lockIsBookmarked.RLock()
	calls := mock.calls.IsBookmarked
	mock.lockIsBookmarked.RUnlock()
	return calls
}
