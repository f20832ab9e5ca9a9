package zoomtoken

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ tokenRefresher = &tokenRefresherMock{}

type tokenRefresherMock struct {
	RefreshFunc func(ctx context.Context, refreshToken string) (domain.ZoomToken, error)

	calls struct {
		Refresh []struct {
			Ctx          context.Context
			RefreshToken string
		}
	}
	lockRefresh sync.RWMutex
}

func (mock *tokenRefresherMock) Refresh(ctx context.Context, refreshToken string) (domain.ZoomToken, error) {
	if mock.RefreshFunc == nil {
		panic("tokenRefresherMock.RefreshFunc: method is nil but tokenRefresher.Refresh was just called")
	}
	callInfo := struct {
		Ctx          context.Context
		RefreshToken string
	}{Ctx: ctx, RefreshToken: refreshToken}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, refreshToken)
}

func (mock *tokenRefresherMock) RefreshCalls() []struct {
	Ctx          context.Context
	RefreshToken string
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}
