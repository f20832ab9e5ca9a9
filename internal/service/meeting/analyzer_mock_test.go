package meeting

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/service/analysis"
)

var _ analyzer = &analyzerMock{}

type analyzerMock struct {
	AnalyzeFunc func(ctx context.Context, meetingID uuid.UUID) (*analysis.AnalyzeResult, error)

	calls struct {
		Analyze []struct {
			Ctx       context.Context
			MeetingID uuid.UUID
		}
	}
	lockAnalyze sync.RWMutex
}

func (mock *analyzerMock) Analyze(ctx context.Context, meetingID uuid.UUID) (*analysis.AnalyzeResult, error) {
	if mock.AnalyzeFunc == nil {
		panic("analyzerMock.AnalyzeFunc: method is nil but analyzer.Analyze was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeetingID uuid.UUID
	}{Ctx: ctx, MeetingID: meetingID}
	mock.lockAnalyze.Lock()
	mock.calls.Analyze = append(mock.calls.Analyze, callInfo)
	mock.lockAnalyze.Unlock()
	return mock.AnalyzeFunc(ctx, meetingID)
}

func (mock *analyzerMock) AnalyzeCalls() []struct {
	Ctx       context.Context
	MeetingID uuid.UUID
} {
	mock.lockAnalyze.RLock()
	calls := mock.calls.Analyze
	mock.lockAnalyze.RUnlock()
	return calls
}
