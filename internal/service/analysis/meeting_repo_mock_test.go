package analysis

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ meetingRepo = &meetingRepoMock{}

type meetingRepoMock struct {
	GetByIDFunc      func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Meeting, error)
	SaveAnalysisFunc func(ctx context.Context, id uuid.UUID, a domain.AnalysisUpdate) error

	calls struct {
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Id     uuid.UUID
		}
		SaveAnalysis []struct {
			Ctx context.Context
			Id  uuid.UUID
			A   domain.AnalysisUpdate
		}
	}
	lockGetByID      sync.RWMutex
	lockSaveAnalysis sync.RWMutex
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

func (mock *meetingRepoMock) SaveAnalysis(ctx context.Context, id uuid.UUID, a domain.AnalysisUpdate) error {
	if mock.SaveAnalysisFunc == nil {
		panic("meetingRepoMock.SaveAnalysisFunc: method is nil but meetingRepo.SaveAnalysis was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
		A   domain.AnalysisUpdate
	}{Ctx: ctx, Id: id, A: a}
	mock.lockSaveAnalysis.Lock()
	mock.calls.SaveAnalysis = append(mock.calls.SaveAnalysis, callInfo)
	mock.lockSaveAnalysis.Unlock()
	return mock.SaveAnalysisFunc(ctx, id, a)
}

func (mock *meetingRepoMock) SaveAnalysisCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
	A   domain.AnalysisUpdate
} {
	mock.lockSaveAnalysis.RLock()
	calls := mock.calls.SaveAnalysis
	mock.lockSaveAnalysis.RUnlock()
	return calls
}
