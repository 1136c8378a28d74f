package match

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/snipdrift/sdk/score"
	"github.com/snipdrift/sdk/snippet"
)

// DefaultThreshold is the similarity threshold used when the caller has no
// site-specific tuning.
const DefaultThreshold = 80

// Sentinel errors for invalid comparison input.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrInvalidThreshold indicates a threshold outside [0,100].
	ErrInvalidThreshold = errors.New("match: threshold out of range [0,100]")

	// ErrInvalidCollection indicates a snippet collection that violates the
	// extraction contract (see snippet.Collection.Validate).
	ErrInvalidCollection = errors.New("match: invalid snippet collection")
)

// Matcher compares the snippet collections of two scans. A Matcher holds no
// per-comparison state and is safe for concurrent use.
type Matcher struct {
	workers      int
	minPairScore int
	logger       *slog.Logger
	tracer       trace.Tracer
	meter        metric.Meter
	metrics      *otelMetrics
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithWorkers sets the number of goroutines scoring snippet pairs.
// Defaults to GOMAXPROCS; values below 1 fall back to 1.
func WithWorkers(n int) Option {
	return func(m *Matcher) {
		m.workers = n
	}
}

// WithMinPairScore sets the minimum score at which two snippets may pair.
// Pairs below it are never committed, so fully dissimilar snippets classify
// as NotFound plus Added rather than as a meaningless pairing. Defaults to 1.
func WithMinPairScore(n int) Option {
	return func(m *Matcher) {
		m.minPairScore = n
	}
}

// WithLogger sets a structured logger for comparison diagnostics.
// If not provided, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Matcher) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithTracer sets an OpenTelemetry tracer; each comparison then runs inside
// a "match.compare" span.
func WithTracer(tracer trace.Tracer) Option {
	return func(m *Matcher) {
		m.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for score and result metrics.
func WithMeter(meter metric.Meter) Option {
	return func(m *Matcher) {
		m.meter = meter
	}
}

// NewMatcher creates a Matcher with the given options.
func NewMatcher(opts ...Option) *Matcher {
	m := &Matcher{
		workers:      runtime.GOMAXPROCS(0),
		minPairScore: 1,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.workers < 1 {
		m.workers = 1
	}

	// Metric failures must not break comparison; log and continue.
	metrics, err := m.initOTelMetrics()
	if err != nil {
		m.logger.Warn("failed to initialize comparison metrics", "error", err)
	} else {
		m.metrics = metrics
	}
	return m
}

// Compare produces exactly one Result per snippet id across both scans.
//
// Ids present in both collections pair immediately at score 100 and classify
// as Reviewed. The remaining snippets are scored pairwise and paired
// one-to-one greedily in descending score order; ties break on (old id,
// new id) lexicographic order, so identical inputs always yield identical
// output. Committed pairings classify as Reviewed or NeedsReview against
// threshold; unpaired old snippets become NotFound and unpaired new snippets
// become Added.
//
// Results are ordered deterministically: one entry per old-scan id in
// lexicographic order, followed by the Added entries in lexicographic order.
//
// Compare fails fast on a threshold outside [0,100] or a collection that
// violates the extraction contract; it never returns partial results.
func (m *Matcher) Compare(ctx context.Context, old, new snippet.Collection, threshold int) ([]Result, error) {
	if threshold < 0 || threshold > 100 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
	}
	if err := old.Validate(); err != nil {
		return nil, fmt.Errorf("%w: old scan: %w", ErrInvalidCollection, err)
	}
	if err := new.Validate(); err != nil {
		return nil, fmt.Errorf("%w: new scan: %w", ErrInvalidCollection, err)
	}

	start := time.Now()
	ctx, span := m.startSpan(ctx, old.Len(), new.Len(), threshold)
	if span != nil {
		defer span.End()
	}

	// An id present in both scans is an exact hash match: the snippet is
	// unchanged and both sides leave further consideration.
	oldRem := make([]string, 0, len(old))
	for _, id := range old.IDs() {
		if _, ok := new[id]; !ok {
			oldRem = append(oldRem, id)
		}
	}
	newRem := make([]string, 0, len(new))
	for _, id := range new.IDs() {
		if _, ok := old[id]; !ok {
			newRem = append(newRem, id)
		}
	}

	scores, err := m.scoreMatrix(ctx, old, new, oldRem, newRem)
	if err != nil {
		return nil, err
	}

	pairedNew, pairedScore := m.resolve(oldRem, newRem, scores)

	// Assemble in deterministic order: every old-scan id first, then the
	// leftover new-scan ids.
	results := make([]Result, 0, len(old)+len(newRem))
	consumedNew := make(map[string]bool, len(pairedNew))
	for _, id := range old.IDs() {
		if _, exact := new[id]; exact {
			results = append(results, Result{
				OldID:  id,
				NewID:  id,
				Score:  intPtr(100),
				Status: StatusReviewed,
			})
			continue
		}
		newID, paired := pairedNew[id]
		if !paired {
			results = append(results, Result{OldID: id, Status: StatusNotFound})
			continue
		}
		consumedNew[newID] = true
		s := pairedScore[id]
		status := StatusNeedsReview
		if s >= threshold {
			status = StatusReviewed
		}
		m.logger.Debug("snippet pairing committed",
			"old_id", id, "new_id", newID, "score", s, "status", status)
		results = append(results, Result{
			OldID:  id,
			NewID:  newID,
			Score:  intPtr(s),
			Status: status,
		})
	}
	for _, id := range newRem {
		if !consumedNew[id] {
			results = append(results, Result{NewID: id, Status: StatusAdded})
		}
	}

	elapsed := time.Since(start)
	m.recordCompare(ctx, span, results, elapsed)

	summary := summarize(results)
	m.logger.Info("scan comparison complete",
		"old_count", len(old),
		"new_count", len(new),
		"threshold", threshold,
		"reviewed", summary[StatusReviewed],
		"needs_review", summary[StatusNeedsReview],
		"not_found", summary[StatusNotFound],
		"added", summary[StatusAdded],
		"duration", elapsed,
	)
	return results, nil
}

// scoreMatrix computes the pairwise score matrix for the unmatched snippets.
// Pair scoring has no inter-pair dependency, so cells are filled by a worker
// pool; each job writes a disjoint cell and no locking is needed.
func (m *Matcher) scoreMatrix(ctx context.Context, old, new snippet.Collection, oldIDs, newIDs []string) ([][]int, error) {
	scores := make([][]int, len(oldIDs))
	for i := range scores {
		scores[i] = make([]int, len(newIDs))
	}
	if len(oldIDs) == 0 || len(newIDs) == 0 {
		return scores, nil
	}

	// Normalize and tokenize each snippet once, not once per pair.
	oldProfiles := make([]score.Profile, len(oldIDs))
	for i, id := range oldIDs {
		oldProfiles[i] = score.NewProfile(old[id].Code)
	}
	newProfiles := make([]score.Profile, len(newIDs))
	for j, id := range newIDs {
		newProfiles[j] = score.NewProfile(new[id].Code)
	}

	total := len(oldIDs) * len(newIDs)
	workers := m.workers
	if workers > total {
		workers = total
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for idx := range jobs {
				i, j := idx/len(newIDs), idx%len(newIDs)
				scores[i][j] = score.Profiles(oldProfiles[i], newProfiles[j])
			}
		}()
	}

feed:
	for idx := 0; idx < total; idx++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- idx:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return scores, nil
}

// resolve commits one-to-one pairings greedily over the fully computed score
// matrix, highest score first. This step is single-threaded on purpose: the
// deterministic (old id, new id) tie-break requires a total order over
// candidates. Pairs below the minimum viable score never commit.
func (m *Matcher) resolve(oldIDs, newIDs []string, scores [][]int) (map[string]string, map[string]int) {
	type candidate struct {
		oldIdx, newIdx, score int
	}

	candidates := make([]candidate, 0, len(oldIDs)*len(newIDs))
	for i := range oldIDs {
		for j := range newIDs {
			if scores[i][j] >= m.minPairScore {
				candidates = append(candidates, candidate{oldIdx: i, newIdx: j, score: scores[i][j]})
			}
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		ca, cb := candidates[a], candidates[b]
		if ca.score != cb.score {
			return ca.score > cb.score
		}
		if oldIDs[ca.oldIdx] != oldIDs[cb.oldIdx] {
			return oldIDs[ca.oldIdx] < oldIDs[cb.oldIdx]
		}
		return newIDs[ca.newIdx] < newIDs[cb.newIdx]
	})

	usedOld := make([]bool, len(oldIDs))
	usedNew := make([]bool, len(newIDs))
	pairedNew := make(map[string]string)
	pairedScore := make(map[string]int)
	for _, c := range candidates {
		if usedOld[c.oldIdx] || usedNew[c.newIdx] {
			continue
		}
		usedOld[c.oldIdx] = true
		usedNew[c.newIdx] = true
		pairedNew[oldIDs[c.oldIdx]] = newIDs[c.newIdx]
		pairedScore[oldIDs[c.oldIdx]] = c.score
	}
	return pairedNew, pairedScore
}

// Compare classifies every finding across two scans using a default Matcher
// and is the package-level convenience for one-shot comparisons.
func Compare(old, new snippet.Collection, threshold int) ([]Result, error) {
	return NewMatcher().Compare(context.Background(), old, new, threshold)
}

func summarize(results []Result) map[Status]int {
	counts := make(map[Status]int, len(AllStatuses()))
	for _, r := range results {
		counts[r.Status]++
	}
	return counts
}

func intPtr(v int) *int {
	return &v
}
