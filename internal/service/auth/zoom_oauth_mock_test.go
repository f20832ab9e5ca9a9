package auth

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ zoomOAuth = &zoomOAuthMock{}

type zoomOAuthMock struct {
	AuthCodeURLFunc func(state string) string
	ExchangeFunc    func(ctx context.Context, code string) (domain.ZoomToken, error)

	calls struct {
		AuthCodeURL []struct {
			State string
		}
		Exchange []struct {
			Ctx  context.Context
			Code string
		}
	}
	lockAuthCodeURL sync.RWMutex
	lockExchange    sync.RWMutex
}

func (mock *zoomOAuthMock) AuthCodeURL(state string) string {
	if mock.AuthCodeURLFunc == nil {
		panic("zoomOAuthMock.AuthCodeURLFunc: method is nil but zoomOAuth.AuthCodeURL was just called")
	}
	callInfo := struct {
		State string
	}{State: state}
	mock.lockAuthCodeURL.Lock()
	mock.calls.AuthCodeURL = append(mock.calls.AuthCodeURL, callInfo)
	mock.lockAuthCodeURL.Unlock()
	return mock.AuthCodeURLFunc(state)
}

func (mock *zoomOAuthMock) AuthCodeURLCalls() []struct {
	State string
} {
	mock.lockAuthCodeURL.RLock()
	calls := mock.calls.AuthCodeURL
	mock.lockAuthCodeURL.RUnlock()
	return calls
}

func (mock *zoomOAuthMock) Exchange(ctx context.Context, code string) (domain.ZoomToken, error) {
	if mock.ExchangeFunc == nil {
		panic("zoomOAuthMock.ExchangeFunc: method is nil but zoomOAuth.Exchange was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Code string
	}{Ctx: ctx, Code: code}
	mock.lockExchange.Lock()
	mock.calls.Exchange = append(mock.calls.Exchange, callInfo)
	mock.lockExchange.Unlock()
	return mock.ExchangeFunc(ctx, code)
}

func (mock *zoomOAuthMock) ExchangeCalls() []struct {
	Ctx  context.Context
	Code string
} {
	mock.lockExchange.RLock()
	calls := mock.calls.Exchange
	mock.lockExchange.RUnlock()
	return calls
}
