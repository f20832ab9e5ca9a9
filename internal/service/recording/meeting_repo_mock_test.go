package recording

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ meetingRepo = &meetingRepoMock{}

type meetingRepoMock struct {
	GetByIDFunc                func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Meeting, error)
	ListFunc                   func(ctx context.Context, userID uuid.UUID, f domain.MeetingFilter) ([]domain.Meeting, int, error)
	SetRecordingURLIfEmptyFunc func(ctx context.Context, id uuid.UUID, url string) (bool, error)

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.MeetingFilter
		}
		SetRecordingURLIfEmpty []struct {
			Ctx context.Context
			Id  uuid.UUID
			Url string
		}
	}
	lockGetByID                sync.RWMutex
	lockList                   sync.RWMutex
	lockSetRecordingURLIfEmpty sync.RWMutex
}

func (mock *meetingRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Meeting, error) {
	if mock.GetByIDFunc == nil {
		panic("meetingRepoMock.GetByIDFunc: method is nil but meetingRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Id     uuid.UUID
	}{Ctx: ctx, UserID: userID, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *meetingRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Id     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *meetingRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.MeetingFilter) ([]domain.Meeting, int, error) {
	if mock.ListFunc == nil {
		panic("meetingRepoMock.ListFunc: method is nil but meetingRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.MeetingFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *meetingRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.MeetingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *meetingRepoMock) SetRecordingURLIfEmpty(ctx context.Context, id uuid.UUID, url string) (bool, error) {
	if mock.SetRecordingURLIfEmptyFunc == nil {
		panic("meetingRepoMock.SetRecordingURLIfEmptyFunc: method is nil but meetingRepo.SetRecordingURLIfEmpty was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		Url string
	}{Ctx: ctx, Id: id, Url: url}
	mock.lockSetRecordingURLIfEmpty.Lock()
	mock.calls.SetRecordingURLIfEmpty = append(mock.calls.SetRecordingURLIfEmpty, callInfo)
	mock.lockSetRecordingURLIfEmpty.Unlock()
	return mock.SetRecordingURLIfEmptyFunc(ctx, id, url)
}

func (mock *meetingRepoMock) SetRecordingURLIfEmptyCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	Url string
} {
	mock.lockSetRecordingURLIfEmpty.RLock()
	calls := mock.calls.SetRecordingURLIfEmpty
	mock.lockSetRecordingURLIfEmpty.RUnlock()
	return calls
}
