package sdk

import (
	"log/slog"

	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/snipdrift/sdk/baseline"
	"github.com/snipdrift/sdk/match"
)

// Option configures the Engine.
type Option func(*engineConfig)

// engineConfig holds configuration for an Engine instance.
type engineConfig struct {
	logger       *slog.Logger
	tracer       trace.Tracer
	meter        metric.Meter
	workers      int
	threshold    int
	minPairScore int
	filterExpr   string
	store        baseline.Store
}

func defaultConfig() *engineConfig {
	return &engineConfig{
		threshold:    match.DefaultThreshold,
		minPairScore: 1,
	}
}

// WithLogger sets a custom logger for the engine.
// If not provided, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithTracer sets an OpenTelemetry tracer for distributed tracing.
// Comparison runs are recorded as spans.
func WithTracer(tracer trace.Tracer) Option {
	return func(c *engineConfig) {
		c.tracer = tracer
	}
}

// WithMeter sets an OpenTelemetry meter for comparison metrics.
func WithMeter(meter metric.Meter) Option {
	return func(c *engineConfig) {
		c.meter = meter
	}
}

// WithWorkers sets the number of goroutines used for pairwise scoring.
// Defaults to GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *engineConfig) {
		c.workers = n
	}
}

// WithThreshold sets the similarity threshold (0-100) that separates
// reviewed findings from ones needing review. Defaults to 80.
func WithThreshold(threshold int) Option {
	return func(c *engineConfig) {
		c.threshold = threshold
	}
}

// WithMinPairScore sets the minimum similarity score at which two snippets
// are considered candidates for pairing. Defaults to 1, so snippets with
// nothing in common are never paired.
func WithMinPairScore(score int) Option {
	return func(c *engineConfig) {
		c.minPairScore = score
	}
}

// WithFilter restricts report results to those satisfying a CEL expression
// over status, score, old_id and new_id. See the filter package for the
// expression grammar. An empty expression keeps all results.
func WithFilter(expr string) Option {
	return func(c *engineConfig) {
		c.filterExpr = expr
	}
}

// WithStore attaches a baseline store. With a store configured the engine
// can load scans by id and archives every report it produces. The engine
// takes ownership of the store and closes it on Close.
func WithStore(store baseline.Store) Option {
	return func(c *engineConfig) {
		c.store = store
	}
}
