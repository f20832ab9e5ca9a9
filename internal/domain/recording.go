package domain

import (
	"time"

	"github.com/google/uuid"
)

// Recording is one imported recording artifact of a meeting.
// (MeetingID, SourceDownloadURL) is unique and is the dedup key.
type Recording struct {
	ID                uuid.UUID
	MeetingID         uuid.UUID
	ZoomFileID        string
	FileType          RecordingFileType
	RecordingType     string
	FileSize          int64
	FileName          string
	StorageURL        string
	SourceDownloadURL string
	PlayURL           *string
	RecordingStart    *time.Time
	RecordingEnd      *time.Time
	CreatedAt         time.Time
}

// Export is a generated meeting artifact.
type Export struct {
	ID        uuid.UUID
	MeetingID uuid.UUID
	Format    ExportFormat
	FileName  string
	FileURL   string
	CreatedAt time.Time
}
