package zoomtoken

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ credentialStore = &credentialStoreMock{}

type credentialStoreMock struct {
	GetZoomCredentialsFunc func(ctx context.Context, userID uuid.UUID) (*domain.ZoomCredentials, error)
	SaveZoomTokenFunc      func(ctx context.Context, userID uuid.UUID, tok domain.ZoomToken) error
	DisconnectZoomFunc     func(ctx context.Context, userID uuid.UUID) error

	calls struct {
		GetZoomCredentials []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		SaveZoomToken []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Tok    domain.ZoomToken
		}
		DisconnectZoom []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
	}
	lockGetZoomCredentials sync.RWMutex
	lockSaveZoomToken      sync.RWMutex
	lockDisconnectZoom     sync.RWMutex
}

func (mock *credentialStoreMock) GetZoomCredentials(ctx context.Context, userID uuid.UUID) (*domain.ZoomCredentials, error) {
	if mock.GetZoomCredentialsFunc == nil {
		panic("credentialStoreMock.GetZoomCredentialsFunc: method is nil but credentialStore.GetZoomCredentials was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockGetZoomCredentials.Lock()
	mock.calls.GetZoomCredentials = append(mock.calls.GetZoomCredentials, callInfo)
	mock.lockGetZoomCredentials.Unlock()
	return mock.GetZoomCredentialsFunc(ctx, userID)
}

func (mock *credentialStoreMock) GetZoomCredentialsCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockGetZoomCredentials.RLock()
	calls := mock.calls.GetZoomCredentials
	mock.lockGetZoomCredentials.RUnlock()
	return calls
}

func (mock *credentialStoreMock) SaveZoomToken(ctx context.Context, userID uuid.UUID, tok domain.ZoomToken) error {
	if mock.SaveZoomTokenFunc == nil {
		panic("credentialStoreMock.SaveZoomTokenFunc: method is nil but credentialStore.SaveZoomToken was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Tok    domain.ZoomToken
	}{Ctx: ctx, UserID: userID, Tok: tok}
	mock.lockSaveZoomToken.Lock()
	mock.calls.SaveZoomToken = append(mock.calls.SaveZoomToken, callInfo)
	mock.lockSaveZoomToken.Unlock()
	return mock.SaveZoomTokenFunc(ctx, userID, tok)
}

func (mock *credentialStoreMock) SaveZoomTokenCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Tok    domain.ZoomToken
} {
	mock.lockSaveZoomToken.RLock()
	calls := mock.calls.SaveZoomToken
	mock.lockSaveZoomToken.RUnlock()
	return calls
}

func (mock *credentialStoreMock) DisconnectZoom(ctx context.Context, userID uuid.UUID) error {
	if mock.DisconnectZoomFunc == nil {
		panic("credentialStoreMock.DisconnectZoomFunc: method is nil but credentialStore.DisconnectZoom was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{Ctx: ctx, UserID: userID}
	mock.lockDisconnectZoom.Lock()
	mock.calls.DisconnectZoom = append(mock.calls.DisconnectZoom, callInfo)
	mock.lockDisconnectZoom.Unlock()
	return mock.DisconnectZoomFunc(ctx, userID)
}

func (mock *credentialStoreMock) DisconnectZoomCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDisconnectZoom.RLock()
	calls := mock.calls.DisconnectZoom
	mock.lockDisconnectZoom.RUnlock()
	return calls
}
