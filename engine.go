package sdk

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/snipdrift/sdk/baseline"
	"github.com/snipdrift/sdk/filter"
	"github.com/snipdrift/sdk/match"
	"github.com/snipdrift/sdk/snippet"
)

// Engine ties the comparison pipeline together: it scores and classifies
// snippet collections, filters the results, and archives reports when a
// baseline store is attached.
//
// An Engine is safe for concurrent use.
type Engine struct {
	matcher   *match.Matcher
	filter    *filter.Filter
	store     baseline.Store
	threshold int
	logger    *slog.Logger
}

// New creates an Engine from the given options.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.threshold < 0 || cfg.threshold > 100 {
		return nil, NewConfigurationError("sdk.New",
			fmt.Errorf("%w: threshold %d out of range [0, 100]", ErrInvalidConfig, cfg.threshold))
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var f *filter.Filter
	if cfg.filterExpr != "" {
		var err error
		f, err = filter.New(cfg.filterExpr)
		if err != nil {
			return nil, NewConfigurationError("sdk.New", err)
		}
	}

	matcherOpts := []match.Option{
		match.WithLogger(logger),
		match.WithMinPairScore(cfg.minPairScore),
	}
	if cfg.workers > 0 {
		matcherOpts = append(matcherOpts, match.WithWorkers(cfg.workers))
	}
	if cfg.tracer != nil {
		matcherOpts = append(matcherOpts, match.WithTracer(cfg.tracer))
	}
	if cfg.meter != nil {
		matcherOpts = append(matcherOpts, match.WithMeter(cfg.meter))
	}

	return &Engine{
		matcher:   match.NewMatcher(matcherOpts...),
		filter:    f,
		store:     cfg.store,
		threshold: cfg.threshold,
		logger:    logger,
	}, nil
}

// CompareScans classifies every finding across the two collections and returns
// the report. oldScan and newScan name the scans in the report; they are
// labels only and need not exist in the store. If a store is attached the
// report is archived before returning.
func (e *Engine) CompareScans(ctx context.Context, oldScan, newScan string, old, new snippet.Collection) (match.Report, error) {
	results, err := e.matcher.Compare(ctx, old, new, e.threshold)
	if err != nil {
		return match.Report{}, NewExecutionError("Engine.CompareScans", err).WithContext(map[string]any{
			"old_scan": oldScan,
			"new_scan": newScan,
		})
	}

	if e.filter != nil {
		results, err = e.filter.Apply(results)
		if err != nil {
			return match.Report{}, NewExecutionError("Engine.CompareScans", err)
		}
	}

	report := match.NewReport(oldScan, newScan, e.threshold, results)

	if e.store != nil {
		if err := e.store.SaveReport(ctx, report); err != nil {
			return match.Report{}, NewStorageError("Engine.CompareScans", err).WithContext(map[string]any{
				"report_id": report.ID,
			})
		}
	}

	e.logger.Info("comparison complete",
		"report_id", report.ID,
		"old_scan", oldScan,
		"new_scan", newScan,
		"results", len(report.Results))

	return report, nil
}

// CompareStored loads two scans from the baseline store by id and compares
// them. Returns ErrNoStore when no store is configured.
func (e *Engine) CompareStored(ctx context.Context, oldScanID, newScanID string) (match.Report, error) {
	if e.store == nil {
		return match.Report{}, NewConfigurationError("Engine.CompareStored", ErrNoStore)
	}

	old, err := e.store.LoadScan(ctx, oldScanID)
	if err != nil {
		return match.Report{}, NewStorageError("Engine.CompareStored", err).WithContext(map[string]any{
			"scan_id": oldScanID,
		})
	}

	newScan, err := e.store.LoadScan(ctx, newScanID)
	if err != nil {
		return match.Report{}, NewStorageError("Engine.CompareStored", err).WithContext(map[string]any{
			"scan_id": newScanID,
		})
	}

	return e.CompareScans(ctx, oldScanID, newScanID, old, newScan)
}

// SaveScan stores a snippet collection under a scan id for later comparison.
// Returns ErrNoStore when no store is configured.
func (e *Engine) SaveScan(ctx context.Context, scanID string, c snippet.Collection) error {
	if e.store == nil {
		return NewConfigurationError("Engine.SaveScan", ErrNoStore)
	}
	if err := e.store.SaveScan(ctx, scanID, c); err != nil {
		return NewStorageError("Engine.SaveScan", err).WithContext(map[string]any{
			"scan_id": scanID,
		})
	}
	return nil
}

// Close releases the baseline store, if one is attached.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}
