package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/storage"
	"github.com/heartmarshall/meetsum-backend/internal/domain"
	"github.com/heartmarshall/meetsum-backend/internal/service/recording"
)

var _ recordingService = &recordingServiceMock{}

type recordingServiceMock struct {
	ImportRecordingsFunc func(ctx context.Context, input recording.ImportInput) (*recording.ImportResult, error)
	BatchImportFunc      func(ctx context.Context, input recording.BatchImportInput) (*recording.BatchImportResult, error)
	ListRecordingsFunc   func(ctx context.Context, meetingID uuid.UUID) ([]domain.Recording, error)
	DeleteRecordingFunc  func(ctx context.Context, id uuid.UUID) error
	OpenRecordingFunc    func(ctx context.Context, fileName string) (*domain.Recording, *storage.File, error)

	calls struct {
		ImportRecordings []struct {
			Ctx   context.Context
			Input recording.ImportInput
		}
		BatchImport []struct {
			Ctx   context.Context
			Input recording.BatchImportInput
		}
		ListRecordings []struct {
			Ctx       context.Context
			MeetingID uuid.UUID
		}
		DeleteRecording []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		OpenRecording []struct {
			Ctx      context.Context
			FileName string
		}
	}
	lockImportRecordings sync.RWMutex
	lockBatchImport      sync.RWMutex
	lockListRecordings   sync.RWMutex
	lockDeleteRecording  sync.RWMutex
	lockOpenRecording    sync.RWMutex
}

func (mock *recordingServiceMock) ImportRecordings(ctx context.Context, input recording.ImportInput) (*recording.ImportResult, error) {
	if mock.ImportRecordingsFunc == nil {
		panic("recordingServiceMock.ImportRecordingsFunc: method is nil but recordingService.ImportRecordings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recording.ImportInput
	}{Ctx: ctx, Input: input}
	mock.lockImportRecordings.Lock()
	mock.calls.ImportRecordings = append(mock.calls.ImportRecordings, callInfo)
	mock.lockImportRecordings.Unlock()
	return mock.ImportRecordingsFunc(ctx, input)
}

func (mock *recordingServiceMock) ImportRecordingsCalls() []struct {
	Ctx   context.Context
	Input recording.ImportInput
} {
	mock.lockImportRecordings.RLock()
	calls := mock.calls.ImportRecordings
	mock.lockImportRecordings.RUnlock()
	return calls
}

func (mock *recordingServiceMock) BatchImport(ctx context.Context, input recording.BatchImportInput) (*recording.BatchImportResult, error) {
	if mock.BatchImportFunc == nil {
		panic("recordingServiceMock.BatchImportFunc: method is nil but recordingService.BatchImport was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input recording.BatchImportInput
	}{Ctx: ctx, Input: input}
	mock.lockBatchImport.Lock()
	mock.calls.BatchImport = append(mock.calls.BatchImport, callInfo)
	mock.lockBatchImport.Unlock()
	return mock.BatchImportFunc(ctx, input)
}

func (mock *recordingServiceMock) BatchImportCalls() []struct {
	Ctx   context.Context
	Input recording.BatchImportInput
} {
	mock.lockBatchImport.RLock()
	calls := mock.calls.BatchImport
	mock.lockBatchImport.RUnlock()
	return calls
}

func (mock *recordingServiceMock) ListRecordings(ctx context.Context, meetingID uuid.UUID) ([]domain.Recording, error) {
	if mock.ListRecordingsFunc == nil {
		panic("recordingServiceMock.ListRecordingsFunc: method is nil but recordingService.ListRecordings was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		MeetingID uuid.UUID
	}{Ctx: ctx, MeetingID: meetingID}
	mock.lockListRecordings.Lock()
	mock.calls.ListRecordings = append(mock.calls.ListRecordings, callInfo)
	mock.lockListRecordings.Unlock()
	return mock.ListRecordingsFunc(ctx, meetingID)
}

func (mock *recordingServiceMock) ListRecordingsCalls() []struct {
	Ctx       context.Context
	MeetingID uuid.UUID
} {
	mock.lockListRecordings.RLock()
	calls := mock.calls.ListRecordings
	mock.lockListRecordings.RUnlock()
	return calls
}

func (mock *recordingServiceMock) DeleteRecording(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteRecordingFunc == nil {
		panic("recordingServiceMock.DeleteRecordingFunc: method is nil but recordingService.DeleteRecording was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{Ctx: ctx, Id: id}
	mock.lockDeleteRecording.Lock()
	mock.calls.DeleteRecording = append(mock.calls.DeleteRecording, callInfo)
	mock.lockDeleteRecording.Unlock()
	return mock.DeleteRecordingFunc(ctx, id)
}

func (mock *recordingServiceMock) DeleteRecordingCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	mock.lockDeleteRecording.RLock()
	calls := mock.calls.DeleteRecording
	mock.lockDeleteRecording.RUnlock()
	return calls
}

func (mock *recordingServiceMock) OpenRecording(ctx context.Context, fileName string) (*domain.Recording, *storage.File, error) {
	if mock.OpenRecordingFunc == nil {
		panic("recordingServiceMock.OpenRecordingFunc: method is nil but recordingService.OpenRecording was just called")
	}
	callInfo := struct {
		Ctx      context.Context
		FileName string
	}{Ctx: ctx, FileName: fileName}
	mock.lockOpenRecording.Lock()
	mock.calls.OpenRecording = append(mock.calls.OpenRecording, callInfo)
	mock.lockOpenRecording.Unlock()
	return mock.OpenRecordingFunc(ctx, fileName)
}

func (mock *recordingServiceMock) OpenRecordingCalls() []struct {
	Ctx      context.Context
	FileName string
} {
	mock.lockOpenRecording.RLock()
	calls := mock.calls.OpenRecording
	mock.lockOpenRecording.RUnlock()
	return calls
}
