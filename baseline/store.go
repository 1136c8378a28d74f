package baseline

import (
	"context"
	"errors"

	"github.com/snipdrift/sdk/match"
	"github.com/snipdrift/sdk/snippet"
)

// Common errors returned by baseline operations.
var (
	// ErrScanNotFound is returned when no collection is stored under a scan id.
	ErrScanNotFound = errors.New("baseline: scan not found")

	// ErrReportNotFound is returned when no report is stored under a report id.
	ErrReportNotFound = errors.New("baseline: report not found")

	// ErrInvalidID is returned when a scan or report id is empty.
	ErrInvalidID = errors.New("baseline: invalid id")
)

// Store provides access to stored scans and comparison reports.
//
// A scan is the snippet collection extracted from one scan export, keyed by
// a caller-chosen scan id (build number, commit, date). Reports are archived
// comparison outputs, keyed by their run id.
type Store interface {
	// SaveScan stores the snippet collection of a scan, replacing any
	// collection previously stored under the same id.
	SaveScan(ctx context.Context, scanID string, c snippet.Collection) error

	// LoadScan returns the snippet collection stored under scanID.
	// Returns ErrScanNotFound if the scan does not exist.
	LoadScan(ctx context.Context, scanID string) (snippet.Collection, error)

	// ListScans returns all stored scan ids in lexicographic order.
	ListScans(ctx context.Context) ([]string, error)

	// DeleteScan removes a stored scan. Deleting an absent scan is not an error.
	DeleteScan(ctx context.Context, scanID string) error

	// SaveReport archives a comparison report under its run id.
	SaveReport(ctx context.Context, report match.Report) error

	// LoadReport returns the report stored under reportID.
	// Returns ErrReportNotFound if the report does not exist.
	LoadReport(ctx context.Context, reportID string) (match.Report, error)

	// Close releases the underlying connection.
	Close() error
}
