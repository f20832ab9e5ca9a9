package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/export"
)

var _ exportService = &exportServiceMock{}

type exportServiceMock struct {
	ExportFunc       func(ctx context.Context, input export.ExportInput) (*export.ExportResult, error)
	ListExportsFunc  func(ctx context.Context, meetingID uuid.UUID) ([]domain.Export, error)
	DeleteExportFunc func(ctx context.Context, id uuid.UUID) error
	OpenExportFunc   func(ctx context.Context, fileName string) (*domain.Export, *storage.File, error)

	calls struct {
		Export []struct {
			Ctx   context.Context
			Input export.ExportInput
		}
		ListExports []struct {
			Ctx       context.Context
			MeetingID uuid.UUID
		}
		DeleteExport []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		OpenExport []struct {
			Ctx      context.Context
			FileName string
		}
	}
	lockExport       sync.RWMutex
	lockListExports  sync.RWMutex
	lockDeleteExport sync.RWMutex
	lockOpenExport   sync.RWMutex
}

func (mock *exportServiceMock) Export(ctx context.Context, input export.ExportInput) (*export.ExportResult, error) {
	if mock.ExportFunc == nil {
		panic("exportServiceMock.ExportFunc: method is nil but exportService.Export was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input export.ExportInput
	}{Ctx: ctx, Input: input}
	mock.lockExport.Lock()
	mock.calls.Export = append(mock.calls.Export, callInfo)
	mock.lockExport.Unlock()
	return mock.ExportFunc(ctx, input)
}

func (mock *exportServiceMock) ExportCalls() []struct {
	Ctx   context.Context
	Input export.ExportInput
} {
	mock.lockExport.RLock()
	calls := mock.calls.Export
	mock.lockExport.RUnlock()
	return calls
}

func (mock *exportServiceMock) ListExports(ctx context.Context, meetingID uuid.UUID) ([]domain.Export, error) {
	if mock.ListExportsFunc == nil {
		panic("exportServiceMock.ListExportsFunc: method is nil but exportService.ListExports was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeetingID uuid.UUID
	}{Ctx: ctx, MeetingID: meetingID}
	mock.lockListExports.Lock()
	mock.calls.ListExports = append(mock.calls.ListExports, callInfo)
	mock.lockListExports.Unlock()
	return mock.ListExportsFunc(ctx, meetingID)
}

func (mock *exportServiceMock) ListExportsCalls() []struct {
	Ctx       context.Context
	MeetingID uuid.UUID
} {
	mock.lockListExports.RLock()
	calls := mock.calls.ListExports
	mock.lockListExports.RUnlock()
	return calls
}

func (mock *exportServiceMock) DeleteExport(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteExportFunc == nil {
		panic("exportServiceMock.DeleteExportFunc: method is nil but exportService.DeleteExport was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteExport.Lock()
	mock.calls.DeleteExport = append(mock.calls.DeleteExport, callInfo)
	mock.lockDeleteExport.Unlock()
	return mock.DeleteExportFunc(ctx, id)
}

func (mock *exportServiceMock) DeleteExportCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteExport.RLock()
	calls := mock.calls.DeleteExport
	mock.lockDeleteExport.RUnlock()
	return calls
}

func (mock *exportServiceMock) OpenExport(ctx context.Context, fileName string) (*domain.Export, *storage.File, error) {
	if mock.OpenExportFunc == nil {
		panic("exportServiceMock.OpenExportFunc: method is nil but exportService.OpenExport was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FileName string
	}{Ctx: ctx, FileName: fileName}
	mock.lockOpenExport.Lock()
	mock.calls.OpenExport = append(mock.calls.OpenExport, callInfo)
	mock.lockOpenExport.Unlock()
	return mock.OpenExportFunc(ctx, fileName)
}

func (mock *exportServiceMock) OpenExportCalls() []struct {
	Ctx      context.Context
	FileName string
} {
	mock.lockOpenExport.RLock()
	calls := mock.calls.OpenExport
	mock.lockOpenExport.RUnlock()
	return calls
}
