package export

import "github.com/heartmarshall/meetsum-backend/internal/domain"

// ExportResult is a stored export and the URL it is served from.
type ExportResult struct {
	Export      *domain.Export
	DownloadURL string
}
