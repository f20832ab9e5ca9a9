package recording

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/meetsum-backend/internal/domain"
)

// ImportResult is the aggregate outcome of importing one meeting.
type ImportResult struct {
	MeetingID  uuid.UUID
	Imported   []domain.Recording
	Skipped    []SkippedFile
	Errors     []FileError
	TotalBytes int64
}

// SkippedFile is a file that was not imported because it already exists
// or cannot be downloaded yet.
type SkippedFile struct {
	FileID   string
	FileType domain.RecordingFileType
	Reason   string
}

// FileError reports a file whose download, storage or insert failed.
type FileError struct {
	FileID   string
	FileType domain.RecordingFileType
	Message  string
}

// BatchImportResult holds per-meeting outcomes and totals.
type BatchImportResult struct {
	Results       []BatchItem
	Succeeded     int
	Failed        int
	FilesImported int
	TotalBytes    int64
}

// BatchItem is one meeting of a batch; exactly one of Result and Error is set.
type BatchItem struct {
	MeetingID uuid.UUID
	Topic     string
	Result    *ImportResult
	Error     string
}
