package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/task"
)

var _ taskService = &taskServiceMock{}

type taskServiceMock struct {
	ListFunc   func(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error)
	CreateFunc func(ctx context.Context, input task.CreateInput) (*domain.Task, error)
	UpdateFunc func(ctx context.Context, input task.UpdateInput) (*domain.Task, error)
	DeleteFunc func(ctx context.Context, taskID uuid.UUID) error

	calls struct {
		List []struct {
			Ctx       context.Context
			MeetingID uuid.UUID
		}
		Create []struct {
			Ctx   context.Context
			Input task.CreateInput
		}
		Update []struct {
			Ctx   context.Context
			Input task.UpdateInput
		}
		Delete []struct {
			Ctx    context.Context
			TaskID uuid.UUID
		}
	}
	lockList   sync.RWMutex
	lockCreate sync.RWMutex
	lockUpdate sync.RWMutex
	lockDelete sync.RWMutex
}

func (mock *taskServiceMock) List(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error) {
	if mock.ListFunc == nil {
		panic("taskServiceMock.ListFunc: method is nil but taskService.List was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeetingID uuid.UUID
	}{Ctx: ctx, MeetingID: meetingID}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, meetingID)
}

func (mock *taskServiceMock) ListCalls() []struct {
	Ctx       context.Context
	MeetingID uuid.UUID
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *taskServiceMock) Create(ctx context.Context, input task.CreateInput) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskServiceMock.CreateFunc: method is nil but taskService.Create was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.CreateInput
	}{Ctx: ctx, Input: input}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, input)
}

func (mock *taskServiceMock) CreateCalls() []struct {
	Ctx   context.Context
	Input task.CreateInput
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskServiceMock) Update(ctx context.Context, input task.UpdateInput) (*domain.Task, error) {
	if mock.UpdateFunc == nil {
		panic("taskServiceMock.UpdateFunc: method is nil but taskService.Update was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input task.UpdateInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, input)
}

func (mock *taskServiceMock) UpdateCalls() []struct {
	Ctx   context.Context
	Input task.UpdateInput
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *taskServiceMock) Delete(ctx context.Context, taskID uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("taskServiceMock.DeleteFunc: method is nil but taskService.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		TaskID uuid.UUID
	}{Ctx: ctx, TaskID: taskID}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, taskID)
}

func (mock *taskServiceMock) DeleteCalls() []struct {
	Ctx    context.Context
	TaskID uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}
