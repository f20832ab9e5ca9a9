package meeting

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

var _ tokenSource = &tokenSourceMock{}

type tokenSourceMock struct {
	GetValidAccessTokenFunc func(ctx context.Context, userID uuid.UUID) (string, error)

	calls struct {
		GetValidAccessToken []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetValidAccessToken sync.RWMutex
}

func (mock *tokenSourceMock) GetValidAccessToken(ctx context.Context, userID uuid.UUID) (string, error) {
	if mock.GetValidAccessTokenFunc == nil {
		panic("tokenSourceMock.GetValidAccessTokenFunc: method is nil but tokenSource.GetValidAccessToken was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetValidAccessToken.Lock()
	mock.calls.GetValidAccessToken = append(mock.calls.GetValidAccessToken, callInfo)
	mock.lockGetValidAccessToken.Unlock()
	return mock.GetValidAccessTokenFunc(ctx, userID)
}

func (mock *tokenSourceMock) GetValidAccessTokenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetValidAccessToken.RLock()
	calls := mock.calls.GetValidAccessToken
	mock.lockGetValidAccessToken.RUnlock()
	return calls
}
