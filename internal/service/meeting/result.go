package meeting

import "github.com/heartmarshall/meetsum-backend/internal/domain"

// SyncResult counts the provider meetings seen by a sync.
type SyncResult struct {
	Created  int
	Existing int
	Total    int
}

// ListResult is one page of meetings plus the unpaged total.
type ListResult struct {
	Meetings []domain.Meeting
	Total    int
}

// RowError reports a CSV row that was not imported or not analyzed.
// Row is the 1-based data row, not counting the header.
type RowError struct {
	Row     int
	Message string
}

// UploadResult is the outcome of a CSV upload.
type UploadResult struct {
	Created        []domain.Meeting
	Errors         []RowError
	Analyzed       int
	AnalysisErrors []RowError
}
