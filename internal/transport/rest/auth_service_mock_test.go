package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/auth"
)

var _ authService = &authServiceMock{}

type authServiceMock struct {
	RegisterFunc          func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginWithPasswordFunc func(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error)
	RefreshFunc           func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc            func(ctx context.Context) error
	MeFunc                func(ctx context.Context) (*domain.User, error)
	ZoomAuthorizeURLFunc  func(ctx context.Context) (string, error)
	ZoomCallbackFunc      func(ctx context.Context, input auth.ZoomCallbackInput) (*auth.AuthResult, error)
	DisconnectZoomFunc    func(ctx context.Context) error

	calls struct {
		Register []struct {
			Ctx   context.Context
			Input auth.RegisterInput
		}
		LoginWithPassword []struct {
			Ctx   context.Context
			Input auth.LoginPasswordInput
		}
		Refresh []struct {
			Ctx   context.Context
			Input auth.RefreshInput
		}
		Logout []struct {
			Ctx context.Context
		}
		Me []struct {
			Ctx context.Context
		}
		ZoomAuthorizeURL []struct {
			Ctx context.Context
		}
		ZoomCallback []struct {
			Ctx   context.Context
			Input auth.ZoomCallbackInput
		}
		DisconnectZoom []struct {
			Ctx context.Context
		}
	}
	lockRegister          sync.RWMutex
	lockLoginWithPassword sync.RWMutex
	lockRefresh           sync.RWMutex
	lockLogout            sync.RWMutex
	lockMe                sync.RWMutex
	lockZoomAuthorizeURL  sync.RWMutex
	lockZoomCallback      sync.RWMutex
	lockDisconnectZoom    sync.RWMutex
}

func (mock *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	if mock.RegisterFunc == nil {
		panic("authServiceMock.RegisterFunc: method is nil but authService.Register was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RegisterInput
	}{Ctx: ctx, Input: input}
	mock.lockRegister.Lock()
	mock.calls.Register = append(mock.calls.Register, callInfo)
	mock.lockRegister.Unlock()
	return mock.RegisterFunc(ctx, input)
}

func (mock *authServiceMock) RegisterCalls() []struct {
	Ctx   context.Context
	Input auth.RegisterInput
} {
	mock.lockRegister.RLock()
	calls := mock.calls.Register
	mock.lockRegister.RUnlock()
	return calls
}

func (mock *authServiceMock) LoginWithPassword(ctx context.Context, input auth.LoginPasswordInput) (*auth.AuthResult, error) {
	if mock.LoginWithPasswordFunc == nil {
		panic("authServiceMock.LoginWithPasswordFunc: method is nil but authService.LoginWithPassword was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.LoginPasswordInput
	}{Ctx: ctx, Input: input}
	mock.lockLoginWithPassword.Lock()
	mock.calls.LoginWithPassword = append(mock.calls.LoginWithPassword, callInfo)
	mock.lockLoginWithPassword.Unlock()
	return mock.LoginWithPasswordFunc(ctx, input)
}

func (mock *authServiceMock) LoginWithPasswordCalls() []struct {
	Ctx   context.Context
	Input auth.LoginPasswordInput
} {
	mock.lockLoginWithPassword.RLock()
	calls := mock.calls.LoginWithPassword
	mock.lockLoginWithPassword.RUnlock()
	return calls
}

func (mock *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	if mock.RefreshFunc == nil {
		panic("authServiceMock.RefreshFunc: method is nil but authService.Refresh was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.RefreshInput
	}{Ctx: ctx, Input: input}
	mock.lockRefresh.Lock()
	mock.calls.Refresh = append(mock.calls.Refresh, callInfo)
	mock.lockRefresh.Unlock()
	return mock.RefreshFunc(ctx, input)
}

func (mock *authServiceMock) RefreshCalls() []struct {
	Ctx   context.Context
	Input auth.RefreshInput
} {
	mock.lockRefresh.RLock()
	calls := mock.calls.Refresh
	mock.lockRefresh.RUnlock()
	return calls
}

func (mock *authServiceMock) Logout(ctx context.Context) error {
	if mock.LogoutFunc == nil {
		panic("authServiceMock.LogoutFunc: method is nil but authService.Logout was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockLogout.Lock()
	mock.calls.Logout = append(mock.calls.Logout, callInfo)
	mock.lockLogout.Unlock()
	return mock.LogoutFunc(ctx)
}

func (mock *authServiceMock) LogoutCalls() []struct {
	Ctx context.Context
} {
	mock.lockLogout.RLock()
	calls := mock.calls.Logout
	mock.lockLogout.RUnlock()
	return calls
}

func (mock *authServiceMock) Me(ctx context.Context) (*domain.User, error) {
	if mock.MeFunc == nil {
		panic("authServiceMock.MeFunc: method is nil but authService.Me was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMe.Lock()
	mock.calls.Me = append(mock.calls.Me, callInfo)
	mock.lockMe.Unlock()
	return mock.MeFunc(ctx)
}

func (mock *authServiceMock) MeCalls() []struct {
	Ctx context.Context
} {
	mock.lockMe.RLock()
	calls := mock.calls.Me
	mock.lockMe.RUnlock()
	return calls
}

func (mock *authServiceMock) ZoomAuthorizeURL(ctx context.Context) (string, error) {
	if mock.ZoomAuthorizeURLFunc == nil {
		panic("authServiceMock.ZoomAuthorizeURLFunc: method is nil but authService.ZoomAuthorizeURL was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockZoomAuthorizeURL.Lock()
	mock.calls.ZoomAuthorizeURL = append(mock.calls.ZoomAuthorizeURL, callInfo)
	mock.lockZoomAuthorizeURL.Unlock()
	return mock.ZoomAuthorizeURLFunc(ctx)
}

func (mock *authServiceMock) ZoomAuthorizeURLCalls() []struct {
	Ctx context.Context
} {
	mock.lockZoomAuthorizeURL.RLock()
	calls := mock.calls.ZoomAuthorizeURL
	mock.lockZoomAuthorizeURL.RUnlock()
	return calls
}

func (mock *authServiceMock) ZoomCallback(ctx context.Context, input auth.ZoomCallbackInput) (*auth.AuthResult, error) {
	if mock.ZoomCallbackFunc == nil {
		panic("authServiceMock.ZoomCallbackFunc: method is nil but authService.ZoomCallback was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input auth.ZoomCallbackInput
	}{Ctx: ctx, Input: input}
	mock.lockZoomCallback.Lock()
	mock.calls.ZoomCallback = append(mock.calls.ZoomCallback, callInfo)
	mock.lockZoomCallback.Unlock()
	return mock.ZoomCallbackFunc(ctx, input)
}

func (mock *authServiceMock) ZoomCallbackCalls() []struct {
	Ctx   context.Context
	Input auth.ZoomCallbackInput
} {
	mock.lockZoomCallback.RLock()
	calls := mock.calls.ZoomCallback
	mock.lockZoomCallback.RUnlock()
	return calls
}

func (mock *authServiceMock) DisconnectZoom(ctx context.Context) error {
	if mock.DisconnectZoomFunc == nil {
		panic("authServiceMock.DisconnectZoomFunc: method is nil but authService.DisconnectZoom was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockDisconnectZoom.Lock()
	mock.calls.DisconnectZoom = append(mock.calls.DisconnectZoom, callInfo)
	mock.lockDisconnectZoom.Unlock()
	return mock.DisconnectZoomFunc(ctx)
}

func (mock *authServiceMock) DisconnectZoomCalls() []struct {
	Ctx context.Context
} {
	mock.lockDisconnectZoom.RLock()
	calls := mock.calls.DisconnectZoom
	mock.lockDisconnectZoom.RUnlock()
	return calls
}
