package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	ConnectZoomFunc    func(ctx context.Context, userID uuid.UUID, zoomUserID string, tok domain.ZoomToken) error
	CreateFunc         func(ctx context.Context, user *domain.User) (*domain.User, error)
	DisconnectZoomFunc func(ctx context.Context, userID uuid.UUID) error
	GetByEmailFunc     func(ctx context.Context, email string) (*domain.User, error)
	GetByIDFunc        func(ctx context.Context, id uuid.UUID) (*domain.User, error)

	calls struct {
		ConnectZoom []struct {
			Ctx        context.Context
			UserID     uuid.UUID
			ZoomUserID string
			Tok        domain.ZoomToken
		}
		Create []struct {
			Ctx  context.Context
			User *domain.User
		}
		DisconnectZoom []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		GetByEmail []struct {
			Ctx   context.Context
			Email string
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockConnectZoom    sync.RWMutex
	lockCreate         sync.RWMutex
	lockDisconnectZoom sync.RWMutex
	lockGetByEmail     sync.RWMutex
	lockGetByID        sync.RWMutex
}

func (mock *userRepoMock) ConnectZoom(ctx context.Context, userID uuid.UUID, zoomUserID string, tok domain.ZoomToken) error {
	if mock.ConnectZoomFunc == nil {
		panic("userRepoMock.ConnectZoomFunc: method is nil but userRepo.ConnectZoom was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UserID     uuid.UUID
		ZoomUserID string
		Tok        domain.ZoomToken
	}{Ctx: ctx, UserID: userID, ZoomUserID: zoomUserID, Tok: tok}
	mock.lockConnectZoom.Lock()
	mock.calls.ConnectZoom = append(mock.calls.ConnectZoom, callInfo)
	mock.lockConnectZoom.Unlock()
	return mock.ConnectZoomFunc(ctx, userID, zoomUserID, tok)
}

func (mock *userRepoMock) ConnectZoomCalls() []struct {
	Ctx        context.Context
	UserID     uuid.UUID
	ZoomUserID string
	Tok        domain.ZoomToken
} {
	mock.lockConnectZoom.RLock()
	calls := mock.calls.ConnectZoom
	mock.lockConnectZoom.RUnlock()
	return calls
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		User *domain.User
	}{Ctx: ctx, User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) DisconnectZoom(ctx context.Context, userID uuid.UUID) error {
	if mock.DisconnectZoomFunc == nil {
		panic("userRepoMock.DisconnectZoomFunc: method is nil but userRepo.DisconnectZoom was just called")
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

func (mock *userRepoMock) DisconnectZoomCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	mock.lockDisconnectZoom.RLock()
	calls := mock.calls.DisconnectZoom
	mock.lockDisconnectZoom.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Email string
	}{Ctx: ctx, Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Ctx   context.Context
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}
