package sdk

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdrift/sdk/baseline"
	"github.com/snipdrift/sdk/match"
	"github.com/snipdrift/sdk/snippet"
)

func oldScan() snippet.Collection {
	return snippet.NewCollection(
		snippet.Snippet{ID: "h1", Code: "int x = 5; // init"},
		snippet.Snippet{ID: "h2", Code: "foo(a, b);"},
		snippet.Snippet{ID: "h3", Code: "delete session tokens"},
	)
}

func newScan() snippet.Collection {
	return snippet.NewCollection(
		snippet.Snippet{ID: "n1", Code: "int x=5;"},
		snippet.Snippet{ID: "n2", Code: "bar(a, b);"},
		snippet.Snippet{ID: "n3", Code: "zzz qqq www"},
	)
}

// setupTestEngine returns an engine backed by a miniredis baseline store.
func setupTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	mr := miniredis.RunT(t)
	store, err := baseline.NewRedisStore(baseline.RedisOptions{
		URL: fmt.Sprintf("redis://%s", mr.Addr()),
	})
	require.NoError(t, err)

	engine, err := New(append([]Option{WithStore(store)}, opts...)...)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = engine.Close()
	})

	return engine
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine, err := New()
		require.NoError(t, err)
		require.NotNil(t, engine)
		assert.Equal(t, match.DefaultThreshold, engine.threshold)
		assert.NoError(t, engine.Close())
	})

	t.Run("invalid threshold", func(t *testing.T) {
		_, err := New(WithThreshold(101))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidConfig)

		_, err = New(WithThreshold(-1))
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("invalid filter expression", func(t *testing.T) {
		_, err := New(WithFilter(`status ==`))
		require.Error(t, err)
		assert.ErrorIs(t, err, &SDKError{Kind: KindConfiguration})
	})
}

func TestEngine_Compare(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()

	report, err := engine.CompareScans(context.Background(), "build-100", "build-200", oldScan(), newScan())
	require.NoError(t, err)

	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "build-100", report.OldScan)
	assert.Equal(t, "build-200", report.NewScan)
	assert.Equal(t, match.DefaultThreshold, report.Threshold)
	assert.False(t, report.CreatedAt.IsZero())

	summary := report.Summary()
	assert.Equal(t, 1, summary[match.StatusReviewed])
	assert.Equal(t, 1, summary[match.StatusNeedsReview])
	assert.Equal(t, 1, summary[match.StatusNotFound])
	assert.Equal(t, 1, summary[match.StatusAdded])
}

func TestEngine_CompareWithFilter(t *testing.T) {
	engine, err := New(WithFilter(`status != "reviewed"`))
	require.NoError(t, err)
	defer engine.Close()

	report, err := engine.CompareScans(context.Background(), "build-100", "build-200", oldScan(), newScan())
	require.NoError(t, err)

	require.Len(t, report.Results, 3)
	for _, res := range report.Results {
		assert.NotEqual(t, match.StatusReviewed, res.Status)
	}
}

func TestEngine_CompareArchivesReport(t *testing.T) {
	engine := setupTestEngine(t)
	ctx := context.Background()

	report, err := engine.CompareScans(ctx, "build-100", "build-200", oldScan(), newScan())
	require.NoError(t, err)

	stored, err := engine.store.LoadReport(ctx, report.ID)
	require.NoError(t, err)
	assert.Equal(t, report.Results, stored.Results)
}

func TestEngine_SaveScanAndCompareStored(t *testing.T) {
	engine := setupTestEngine(t)
	ctx := context.Background()

	require.NoError(t, engine.SaveScan(ctx, "build-100", oldScan()))
	require.NoError(t, engine.SaveScan(ctx, "build-200", newScan()))

	report, err := engine.CompareStored(ctx, "build-100", "build-200")
	require.NoError(t, err)

	assert.Equal(t, "build-100", report.OldScan)
	assert.Equal(t, "build-200", report.NewScan)
	assert.Len(t, report.Results, 4)
}

func TestEngine_CompareStoredMissingScan(t *testing.T) {
	engine := setupTestEngine(t)

	_, err := engine.CompareStored(context.Background(), "absent", "also-absent")
	require.Error(t, err)
	assert.ErrorIs(t, err, baseline.ErrScanNotFound)
	assert.ErrorIs(t, err, &SDKError{Kind: KindStorage})
}

func TestEngine_NoStore(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()

	ctx := context.Background()

	_, err = engine.CompareStored(ctx, "build-100", "build-200")
	assert.ErrorIs(t, err, ErrNoStore)

	err = engine.SaveScan(ctx, "build-100", oldScan())
	assert.ErrorIs(t, err, ErrNoStore)
}

func TestEngine_CompareInvalidCollection(t *testing.T) {
	engine, err := New()
	require.NoError(t, err)
	defer engine.Close()

	bad := snippet.Collection{"h1": {ID: "other", Code: "x"}}
	_, err = engine.CompareScans(context.Background(), "a", "b", bad, newScan())
	require.Error(t, err)
	assert.ErrorIs(t, err, match.ErrInvalidCollection)
}
