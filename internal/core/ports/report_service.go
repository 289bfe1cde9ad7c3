package ports

import (
	"context"
	"time"
)

// BuildReportInput carries one report request. CSV is the raw uploaded
// statistics file; Now defaults to the current time when zero.
type BuildReportInput struct {
	Supervisor string
	Day        string
	CSV        []byte
	Now        time.Time
}

// ReportResult is the assembled report plus ingestion bookkeeping.
type ReportResult struct {
	Report      string
	Players     int
	MatchedRows int
	// DuplicateUpload is true when the exact same CSV body was already
	// submitted recently.
	DuplicateUpload bool
}

// ReportService builds the shareable per-supervisor ticket report.
type ReportService interface {
	BuildReport(ctx context.Context, input BuildReportInput) (*ReportResult, error)
}
