package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetsum-backend/internal/service/notification"
)

var _ shareService = &shareServiceMock{}

type shareServiceMock struct {
	ShareFunc func(ctx context.Context, input notification.ShareInput) (*notification.ShareResult, error)

	calls struct {
		Share []struct {
			Ctx   context.Context
			Input notification.ShareInput
		}
	}
	lockShare sync.RWMutex
}

func (mock *shareServiceMock) Share(ctx context.Context, input notification.ShareInput) (*notification.ShareResult, error) {
	if mock.ShareFunc == nil {
		panic("shareServiceMock.ShareFunc: method is nil but shareService.Share was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input notification.ShareInput
	}{Ctx: ctx, Input: input}
	mock.lockShare.Lock()
	mock.calls.Share = append(mock.calls.Share, callInfo)
	mock.lockShare.Unlock()
	return mock.ShareFunc(ctx, input)
}

func (mock *shareServiceMock) ShareCalls() []struct {
	Ctx   context.Context
	Input notification.ShareInput
} {
	mock.lockShare.RLock()
	calls := mock.calls.Share
	mock.lockShare.RUnlock()
	return calls
}
