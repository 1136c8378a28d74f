package match

import (
	"time"

	"github.com/google/uuid"
)

// Result is the terminal outcome for one finding. Exactly one Result exists
// per snippet id across both input collections; values are produced once and
// never mutated afterwards.
type Result struct {
	// OldID is the finding's snippet id in the old scan. Empty for Added.
	OldID string `json:"old_id,omitempty" yaml:"old_id,omitempty"`

	// NewID is the finding's snippet id in the new scan. Empty for NotFound.
	NewID string `json:"new_id,omitempty" yaml:"new_id,omitempty"`

	// Score is the 0-100 similarity score. It is present only when both
	// ids are present.
	Score *int `json:"score,omitempty" yaml:"score,omitempty"`

	// Status classifies the finding's persistence between the two scans.
	Status Status `json:"status" yaml:"status"`
}

// ScoreValue returns the similarity score and whether one was computed.
func (r Result) ScoreValue() (int, bool) {
	if r.Score == nil {
		return 0, false
	}
	return *r.Score, true
}

// Report bundles the results of one comparison run with enough identifying
// information for a reporting layer to join against externally held finding
// metadata.
type Report struct {
	// ID uniquely identifies this comparison run.
	ID string `json:"id" yaml:"id"`

	// OldScan names the baseline scan the old snippets came from.
	OldScan string `json:"old_scan" yaml:"old_scan"`

	// NewScan names the scan the new snippets came from.
	NewScan string `json:"new_scan" yaml:"new_scan"`

	// Threshold is the similarity threshold the classification used.
	Threshold int `json:"threshold" yaml:"threshold"`

	// Results holds one entry per finding, in deterministic order: old-scan
	// ids first (lexicographic), then added ids.
	Results []Result `json:"results" yaml:"results"`

	// CreatedAt is when the comparison was performed.
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// NewReport stamps comparison results with a fresh run id and timestamp.
func NewReport(oldScan, newScan string, threshold int, results []Result) Report {
	return Report{
		ID:        uuid.New().String(),
		OldScan:   oldScan,
		NewScan:   newScan,
		Threshold: threshold,
		Results:   results,
		CreatedAt: time.Now().UTC(),
	}
}

// Summary returns the number of results per status. Every valid status is
// present in the map, including zero counts.
func (r Report) Summary() map[Status]int {
	counts := make(map[Status]int, len(AllStatuses()))
	for _, status := range AllStatuses() {
		counts[status] = 0
	}
	for _, res := range r.Results {
		counts[res.Status]++
	}
	return counts
}
