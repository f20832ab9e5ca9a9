package export

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListByMeetingFunc func(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error)

	calls struct {
		ListByMeeting []struct {
			Ctx       context.Context
			MeetingID uuid.UUID
		}
	}
	lockListByMeeting sync.RWMutex
}

func (mock *taskRepoMock) ListByMeeting(ctx context.Context, meetingID uuid.UUID) ([]domain.Task, error) {
	if mock.ListByMeetingFunc == nil {
		panic("taskRepoMock.ListByMeetingFunc: method is nil but taskRepo.ListByMeeting was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeetingID uuid.UUID
	}{Ctx: ctx, MeetingID: meetingID}
	mock.lockListByMeeting.Lock()
	mock.calls.ListByMeeting = append(mock.calls.ListByMeeting, callInfo)
	mock.lockListByMeeting.Unlock()
	return mock.ListByMeetingFunc(ctx, meetingID)
}

func (mock *taskRepoMock) ListByMeetingCalls() []struct {
	Ctx       context.Context
	MeetingID uuid.UUID
} {
	mock.lockListByMeeting.RLock()
	calls := mock.calls.ListByMeeting
	mock.lockListByMeeting.RUnlock()
	return calls
}
