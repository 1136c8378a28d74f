package match

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/snipdrift/sdk/snippet"
)

func TestOTel_CompareWithTracer(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	defer tp.Shutdown(context.Background())

	m := NewMatcher(WithTracer(tp.Tracer("test")))

	old := snippet.NewCollection(snippet.Snippet{ID: "h1", Code: "foo(a,b);"})
	new := snippet.NewCollection(snippet.Snippet{ID: "n1", Code: "bar(a,b);"})

	results, err := m.Compare(context.Background(), old, new, 80)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, StatusNeedsReview, results[0].Status)
}

func TestOTel_CompareWithMeter(t *testing.T) {
	m := NewMatcher(WithMeter(noop.NewMeterProvider().Meter("test")))
	require.NotNil(t, m.metrics)

	old := snippet.NewCollection(
		snippet.Snippet{ID: "h1", Code: "foo(a,b);"},
		snippet.Snippet{ID: "h2", Code: "alpha beta"},
	)
	new := snippet.NewCollection(snippet.Snippet{ID: "n1", Code: "foo(a,b);"})

	results, err := m.Compare(context.Background(), old, new, 80)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestOTel_UnconfiguredMatcherHasNoInstruments(t *testing.T) {
	m := NewMatcher()
	assert.Nil(t, m.metrics)
	assert.Nil(t, m.tracer)

	// Recording with nothing configured is a no-op, not a panic.
	m.recordCompare(context.Background(), nil, []Result{{OldID: "h1", Status: StatusNotFound}}, 0)
}
