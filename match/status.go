package match

import "fmt"

// Status is the terminal classification of a finding after comparing its old
// and new snippets against a threshold.
type Status string

const (
	// StatusReviewed indicates the finding persists essentially unchanged:
	// its snippets matched at or above the threshold.
	StatusReviewed Status = "reviewed"

	// StatusNeedsReview indicates a pairing below the threshold: the snippet
	// changed enough that a human should re-triage the finding.
	StatusNeedsReview Status = "needs_review"

	// StatusNotFound indicates an old finding with no counterpart in the new
	// scan: removed or substantially rewritten.
	StatusNotFound Status = "not_found"

	// StatusAdded indicates a new finding with no counterpart in the old scan.
	StatusAdded Status = "added"
)

// IsValid returns true if the status is valid.
func (s Status) IsValid() bool {
	switch s {
	case StatusReviewed, StatusNeedsReview, StatusNotFound, StatusAdded:
		return true
	default:
		return false
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}

// DisplayName returns a human-readable display name for the status.
func (s Status) DisplayName() string {
	switch s {
	case StatusReviewed:
		return "Reviewed"
	case StatusNeedsReview:
		return "Needs Review"
	case StatusNotFound:
		return "Not Found"
	case StatusAdded:
		return "Added"
	default:
		return string(s)
	}
}

// ParseStatus parses a string into a Status value.
// Returns an error if the string is not a valid status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid status: %s", s)
	}
	return status, nil
}

// AllStatuses returns all valid statuses in report order.
func AllStatuses() []Status {
	return []Status{
		StatusReviewed,
		StatusNeedsReview,
		StatusNotFound,
		StatusAdded,
	}
}
