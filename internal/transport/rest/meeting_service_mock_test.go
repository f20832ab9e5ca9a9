package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/meeting"
)

var _ meetingService = &meetingServiceMock{}

type meetingServiceMock struct {
	SyncFunc            func(ctx context.Context, input meeting.SyncInput) (*meeting.SyncResult, error)
	ListFunc            func(ctx context.Context, input meeting.ListInput) (*meeting.ListResult, error)
	GetFunc             func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	FetchTranscriptFunc func(ctx context.Context, id uuid.UUID) (*domain.Meeting, error)
	UploadCSVFunc       func(ctx context.Context, input meeting.UploadCSVInput) (*meeting.UploadResult, error)

	calls struct {
		Sync []struct {
			Ctx   context.Context
			Input meeting.SyncInput
		}
		List []struct {
			Ctx   context.Context
			Input meeting.ListInput
		}
		Get []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		Delete []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		FetchTranscript []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		UploadCSV []struct {
			Ctx   context.Context
			Input meeting.UploadCSVInput
		}
	}
	lockSync            sync.RWMutex
	lockList            sync.RWMutex
	lockGet             sync.RWMutex
	lockDelete          sync.RWMutex
	lockFetchTranscript sync.RWMutex
	lockUploadCSV       sync.RWMutex
}

func (mock *meetingServiceMock) Sync(ctx context.Context, input meeting.SyncInput) (*meeting.SyncResult, error) {
	if mock.SyncFunc == nil {
		panic("meetingServiceMock.SyncFunc: method is nil but meetingService.Sync was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meeting.SyncInput
	}{Ctx: ctx, Input: input}
	mock.lockSync.Lock()
	mock.calls.Sync = append(mock.calls.Sync, callInfo)
	mock.lockSync.Unlock()
	return mock.SyncFunc(ctx, input)
}

func (mock *meetingServiceMock) SyncCalls() []struct {
	Ctx   context.Context
	Input meeting.SyncInput
} {
	mock.lockSync.RLock()
	calls := mock.calls.Sync
	mock.lockSync.RUnlock()
	return calls
}

func (mock *meetingServiceMock) List(ctx context.Context, input meeting.ListInput) (*meeting.ListResult, error) {
	if mock.ListFunc == nil {
		panic("meetingServiceMock.ListFunc: method is nil but meetingService.List was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meeting.ListInput
	}{Ctx: ctx, Input: input}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, input)
}

func (mock *meetingServiceMock) ListCalls() []struct {
	Ctx   context.Context
	Input meeting.ListInput
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *meetingServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if mock.GetFunc == nil {
		panic("meetingServiceMock.GetFunc: method is nil but meetingService.Get was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, id)
}

func (mock *meetingServiceMock) GetCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *meetingServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("meetingServiceMock.DeleteFunc: method is nil but meetingService.Delete was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, id)
}

func (mock *meetingServiceMock) DeleteCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *meetingServiceMock) FetchTranscript(ctx context.Context, id uuid.UUID) (*domain.Meeting, error) {
	if mock.FetchTranscriptFunc == nil {
		panic("meetingServiceMock.FetchTranscriptFunc: method is nil but meetingService.FetchTranscript was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockFetchTranscript.Lock()
	mock.calls.FetchTranscript = append(mock.calls.FetchTranscript, callInfo)
	mock.lockFetchTranscript.Unlock()
	return mock.FetchTranscriptFunc(ctx, id)
}

func (mock *meetingServiceMock) FetchTranscriptCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockFetchTranscript.RLock()
	calls := mock.calls.FetchTranscript
	mock.lockFetchTranscript.RUnlock()
	return calls
}

func (mock *meetingServiceMock) UploadCSV(ctx context.Context, input meeting.UploadCSVInput) (*meeting.UploadResult, error) {
	if mock.UploadCSVFunc == nil {
		panic("meetingServiceMock.UploadCSVFunc: method is nil but meetingService.UploadCSV was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input meeting.UploadCSVInput
	}{Ctx: ctx, Input: input}
	mock.lockUploadCSV.Lock()
	mock.calls.UploadCSV = append(mock.calls.UploadCSV, callInfo)
	mock.lockUploadCSV.Unlock()
	return mock.UploadCSVFunc(ctx, input)
}

func (mock *meetingServiceMock) UploadCSVCalls() []struct {
	Ctx   context.Context
	Input meeting.UploadCSVInput
} {
	mock.lockUploadCSV.RLock()
	calls := mock.calls.UploadCSV
	mock.lockUploadCSV.RUnlock()
	return calls
}
