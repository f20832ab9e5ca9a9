package recording

import (
	"context"
	"io"
	"sync"

	"github.com/heartmarshall/meetsum-backend/internal/adapter/zoom"
)

var _ zoomClient = &zoomClientMock{}

type zoomClientMock struct {
	GetRecordingsFunc func(ctx context.Context, token string, meetingID string) (*zoom.RecordingList, error)
	DownloadToFunc    func(ctx context.Context, token string, downloadURL string, w io.Writer) (int64, error)

	calls struct {
		GetRecordings []struct {
			Ctx       context.Context
			Token     string
			MeetingID string
		}
		DownloadTo []struct {
			Ctx         context.Context
			Token       string
			DownloadURL string
			W           io.Writer
		}
	}
	lockGetRecordings sync.RWMutex
	lockDownloadTo    sync.RWMutex
}

func (mock *zoomClientMock) GetRecordings(ctx context.Context, token string, meetingID string) (*zoom.RecordingList, error) {
	if mock.GetRecordingsFunc == nil {
		panic("zoomClientMock.GetRecordingsFunc: method is nil but zoomClient.GetRecordings was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Token     string
		MeetingID string
	}{Ctx: ctx, Token: token, MeetingID: meetingID}
	mock.lockGetRecordings.Lock()
	mock.calls.GetRecordings = append(mock.calls.GetRecordings, callInfo)
	mock.lockGetRecordings.Unlock()
	return mock.GetRecordingsFunc(ctx, token, meetingID)
}

func (mock *zoomClientMock) GetRecordingsCalls() []struct {
	Ctx       context.Context
	Token     string
	MeetingID string
} {
	mock.lockGetRecordings.RLock()
	calls := mock.calls.GetRecordings
	mock.lockGetRecordings.RUnlock()
	return calls
}

func (mock *zoomClientMock) DownloadTo(ctx context.Context, token string, downloadURL string, w io.Writer) (int64, error) {
	if mock.DownloadToFunc == nil {
		panic("zoomClientMock.DownloadToFunc: method is nil but zoomClient.DownloadTo was just called")
	}
	callInfo := struct {
		Ctx         context.Context
		Token       string
		DownloadURL string
		W           io.Writer
	}{Ctx: ctx, Token: token, DownloadURL: downloadURL, W: w}
	mock.lockDownloadTo.Lock()
	mock.calls.DownloadTo = append(mock.calls.DownloadTo, callInfo)
	mock.lockDownloadTo.Unlock()
	return mock.DownloadToFunc(ctx, token, downloadURL, w)
}

func (mock *zoomClientMock) DownloadToCalls() []struct {
	Ctx         context.Context
	Token       string
	DownloadURL string
	W           io.Writer
} {
	mock.lockDownloadTo.RLock()
	calls := mock.calls.DownloadTo
	mock.lockDownloadTo.RUnlock()
	return calls
}
