package rest

import (
	"context"
	"iter"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/community-backend/internal/domain"
	"github.com/heartmarshall/community-backend/internal/service/comment"
)

var _ commentService = &commentServiceMock{}

type commentServiceMock struct {
	AddFunc         func(ctx context.Context, input comment.AddInput) (*domain.Comment, error)
	EditFunc        func(ctx context.Context, input comment.EditInput) (*domain.Comment, error)
	DeleteFunc      func(ctx context.Context, input comment.ActInput) error
	RestoreFunc     func(ctx context.Context, input comment.ActInput) (*domain.Comment, error)
	GetFunc         func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	RepliesOfFunc   func(ctx context.Context, parentID uuid.UUID) iter.Seq2[domain.Comment, error]
	CommentsForFunc func(ctx context.Context, input comment.ListInput) ([]domain.Comment, int, error)

	calls struct {
		Add []struct {
			Ctx   context.Context
			Input comment.AddInput
		}
		Edit []struct {
			Ctx   context.Context
			Input comment.EditInput
		}
		Delete []struct {
			Ctx   context.Context
			Input comment.ActInput
		}
		Restore []struct {
			Ctx   context.Context
			Input comment.ActInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		RepliesOf []struct {
			Ctx      context.Context
			ParentID uuid.UUID
		}
		CommentsFor []struct {
			Ctx   context.Context
			Input comment.ListInput
		}
	}
	lockAdd         sync.RWMutex
	lockEdit        sync.RWMutex
	lockDelete      sync.RWMutex
	lockRestore     sync.RWMutex
	lockGet         sync.RWMutex
	lockRepliesOf   sync.RWMutex
	lockCommentsFor sync.RWMutex
}

func (mock *commentServiceMock) Add(ctx context.Context, input comment.AddInput) (*domain.Comment, error) {
	if mock.AddFunc == nil {
		panic("commentServiceMock.AddFunc: method is nil but commentService.Add was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.AddInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, input)
}

func (mock *commentServiceMock) AddCalls() []struct {
	Ctx   context.Context
	Input comment.AddInput
} {
	mock.lockAdd.RLock()
	calls := mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

func (mock *commentServiceMock) Edit(ctx context.Context, input comment.EditInput) (*domain.Comment, error) {
	if mock.EditFunc == nil {
		panic("commentServiceMock.EditFunc: method is nil but commentService.Edit was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.EditInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockEdit.Lock()
	mock.calls.Edit = append(mock.calls.Edit, callInfo)
	mock.lockEdit.Unlock()
	return mock.EditFunc(ctx, input)
}

func (mock *commentServiceMock) EditCalls() []struct {
	Ctx   context.Context
	Input comment.EditInput
} {
	mock.lockEdit.RLock()
	calls := mock.calls.Edit
	mock.lockEdit.RUnlock()
	return calls
}

func (mock *commentServiceMock) Delete(ctx context.Context, input comment.ActInput) error {
	if mock.DeleteFunc == nil {
		panic("commentServiceMock.DeleteFunc: method is nil but commentService.Delete was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.ActInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, input)
}

func (mock *commentServiceMock) DeleteCalls() []struct {
	Ctx   context.Context
	Input comment.ActInput
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *commentServiceMock) Restore(ctx context.Context, input comment.ActInput) (*domain.Comment, error) {
	if mock.RestoreFunc == nil {
		panic("commentServiceMock.RestoreFunc: method is nil but commentService.Restore was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.ActInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRestore.Lock()
	mock.calls.Restore = append(mock.calls.Restore, callInfo)
	mock.lockRestore.Unlock()
	return mock.RestoreFunc(ctx, input)
}

func (mock *commentServiceMock) RestoreCalls() []struct {
	Ctx   context.Context
	Input comment.ActInput
} {
	mock.lockRestore.RLock()
	calls := mock.calls.Restore
	mock.lockRestore.RUnlock()
	return calls
}

func (mock *commentServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if mock.GetFunc == nil {
		panic("commentServiceMock.GetFunc: method is nil but commentService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *commentServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *commentServiceMock) RepliesOf(ctx context.Context, parentID uuid.UUID) iter.Seq2[domain.Comment, error] {
	if mock.RepliesOfFunc == nil {
		panic("commentServiceMock.RepliesOfFunc: method is nil but commentService.RepliesOf was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		ParentID uuid.UUID
	}{
		Ctx:      ctx,
		ParentID: parentID,
	}
	mock.lockRepliesOf.Lock()
	mock.calls.RepliesOf = append(mock.calls.RepliesOf, callInfo)
	mock.lockRepliesOf.Unlock()
	return mock.RepliesOfFunc(ctx, parentID)
}

func (mock *commentServiceMock) RepliesOfCalls() []struct {
	Ctx      context.Context
	ParentID uuid.UUID
} {
	mock.lockRepliesOf.RLock()
	calls := mock.calls.RepliesOf
	mock.lockRepliesOf.RUnlock()
	return calls
}

func (mock *commentServiceMock) CommentsFor(ctx context.Context, input comment.ListInput) ([]domain.Comment, int, error) {
	if mock.CommentsForFunc == nil {
		panic("commentServiceMock.CommentsForFunc: method is nil but commentService.CommentsFor was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input comment.ListInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockCommentsFor.Lock()
	mock.calls.CommentsFor = append(mock.calls.CommentsFor, callInfo)
	mock.lockCommentsFor.Unlock()
	return mock.CommentsForFunc(ctx, input)
}

func (mock *commentServiceMock) CommentsForCalls() []struct {
	Ctx   context.Context
	Input comment.ListInput
} {
	mock.lockCommentsFor.RLock()
	calls := mock.calls.CommentsFor
	mock.lockCommentsFor.RUnlock()
	return calls
}
