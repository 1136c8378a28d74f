package match

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// otelMetrics holds the OpenTelemetry metric instruments for comparisons.
// They are created once in NewMatcher and reused for every Compare call.
type otelMetrics struct {
	// scoreHistogram records the similarity score of every committed pairing.
	scoreHistogram metric.Int64Histogram

	// durationHistogram records comparison duration in milliseconds.
	durationHistogram metric.Float64Histogram

	// resultCounter counts results partitioned by status.
	resultCounter metric.Int64Counter
}

// initOTelMetrics creates the metric instruments. Returns (nil, nil) when no
// meter is configured.
func (m *Matcher) initOTelMetrics() (*otelMetrics, error) {
	if m.meter == nil {
		return nil, nil
	}

	metrics := &otelMetrics{}
	var err error

	metrics.scoreHistogram, err = m.meter.Int64Histogram(
		"match.pair_score",
		metric.WithDescription("Similarity score of committed pairings from 0 (disjoint) to 100 (identical)"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create pair score histogram: %w", err)
	}

	metrics.durationHistogram, err = m.meter.Float64Histogram(
		"match.compare_duration",
		metric.WithDescription("Scan comparison duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("create duration histogram: %w", err)
	}

	metrics.resultCounter, err = m.meter.Int64Counter(
		"match.results",
		metric.WithDescription("Number of comparison results, partitioned by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("create result counter: %w", err)
	}

	return metrics, nil
}

// startSpan opens the comparison span when a tracer is configured.
// The returned span is nil otherwise.
func (m *Matcher) startSpan(ctx context.Context, oldCount, newCount, threshold int) (context.Context, trace.Span) {
	if m.tracer == nil {
		return ctx, nil
	}
	ctx, span := m.tracer.Start(ctx, "match.compare")
	span.SetAttributes(
		attribute.Int("match.old_count", oldCount),
		attribute.Int("match.new_count", newCount),
		attribute.Int("match.threshold", threshold),
	)
	return ctx, span
}

// recordCompare captures span attributes and metrics for a finished
// comparison. It returns silently when observability is not configured.
func (m *Matcher) recordCompare(ctx context.Context, span trace.Span, results []Result, elapsed time.Duration) {
	if span == nil && m.metrics == nil {
		return
	}

	summary := summarize(results)

	if span != nil {
		span.SetAttributes(
			attribute.Int("match.result_count", len(results)),
			attribute.Int("match.reviewed", summary[StatusReviewed]),
			attribute.Int("match.needs_review", summary[StatusNeedsReview]),
			attribute.Int("match.not_found", summary[StatusNotFound]),
			attribute.Int("match.added", summary[StatusAdded]),
		)
	}

	if m.metrics == nil {
		return
	}
	for _, r := range results {
		if s, ok := r.ScoreValue(); ok {
			m.metrics.scoreHistogram.Record(ctx, int64(s))
		}
		m.metrics.resultCounter.Add(ctx, 1,
			metric.WithAttributes(attribute.String("status", r.Status.String())))
	}
	m.metrics.durationHistogram.Record(ctx, float64(elapsed.Milliseconds()))
}
