package view

import (
	"context"
	"sync"
	"time"

	"github.com/heartmarshall/community-backend/internal/domain"
)

var _ viewGate = &viewGateMock{}

type viewGateMock struct {
	AdmitFunc   func(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time, window time.Duration) (bool, error)
	ReleaseFunc func(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time) error

	calls struct {
		Admit []struct {
			Ctx       context.Context
			Ref       domain.EntityReference
			ViewerKey string
			At        time.Time
			Window    time.Duration
		}
		Release []struct {
			Ctx       context.Context
			Ref       domain.EntityReference
			ViewerKey string
			At        time.Time
		}
	}
	lockAdmit   sync.RWMutex
	lockRelease sync.RWMutex
}

func (mock *viewGateMock) Admit(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time, window time.Duration) (bool, error) {
	if mock.AdmitFunc == nil {
		panic("viewGateMock.AdmitFunc: method is nil but viewGate.Admit was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Ref       domain.EntityReference
		ViewerKey string
		At        time.Time
		Window    time.Duration
	}{
		Ctx:       ctx,
		Ref:       ref,
		ViewerKey: viewerKey,
		At:        at,
		Window:    window,
	}
	mock.lockAdmit.Lock()
	mock.calls.Admit = append(mock.calls.Admit, callInfo)
	mock.lockAdmit.Unlock()
	return mock.AdmitFunc(ctx, ref, viewerKey, at, window)
}

func (mock *viewGateMock) AdmitCalls() []struct {
	Ctx       context.Context
	Ref       domain.EntityReference
	ViewerKey string
	At        time.Time
	Window    time.Duration
} {
	mock.lockAdmit.RLock()
	calls := mock.calls.Admit
	mock.lockAdmit.RUnlock()
	return calls
}

func (mock *viewGateMock) Release(ctx context.Context, ref domain.EntityReference, viewerKey string, at time.Time) error {
	if mock.ReleaseFunc == nil {
		panic("viewGateMock.ReleaseFunc: method is nil but viewGate.Release was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Ref       domain.EntityReference
		ViewerKey string
		At        time.Time
	}{
		Ctx:       ctx,
		Ref:       ref,
		ViewerKey: viewerKey,
		At:        at,
	}
	mock.lockRelease.Lock()
	mock.calls.Release = append(mock.calls.Release, callInfo)
	mock.lockRelease.Unlock()
	return mock.ReleaseFunc(ctx, ref, viewerKey, at)
}

func (mock *viewGateMock) ReleaseCalls() []struct {
	Ctx       context.Context
	Ref       domain.EntityReference
	ViewerKey string
	At        time.Time
} {
	mock.lockRelease.RLock()
	calls := mock.calls.Release
	mock.lockRelease.RUnlock()
	return calls
}
