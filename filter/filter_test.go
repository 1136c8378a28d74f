package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snipdrift/sdk/match"
)

func scored(oldID, newID string, score int, status match.Status) match.Result {
	return match.Result{OldID: oldID, NewID: newID, Score: &score, Status: status}
}

func TestNew(t *testing.T) {
	t.Run("valid expression", func(t *testing.T) {
		f, err := New(`status == "reviewed"`)
		require.NoError(t, err)
		assert.Equal(t, `status == "reviewed"`, f.String())
	})

	t.Run("syntax error", func(t *testing.T) {
		_, err := New(`status ==`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to compile filter")
	})

	t.Run("unknown variable", func(t *testing.T) {
		_, err := New(`severity == "high"`)
		require.Error(t, err)
	})

	t.Run("non-boolean output", func(t *testing.T) {
		_, err := New(`score + 1`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must evaluate to bool")
	})
}

func TestFilter_Match(t *testing.T) {
	tests := []struct {
		name   string
		expr   string
		result match.Result
		want   bool
	}{
		{
			name:   "status match",
			expr:   `status == "needs_review"`,
			result: scored("h1", "n1", 60, match.StatusNeedsReview),
			want:   true,
		},
		{
			name:   "status mismatch",
			expr:   `status == "needs_review"`,
			result: scored("h1", "n1", 100, match.StatusReviewed),
			want:   false,
		},
		{
			name:   "status disjunction",
			expr:   `status == "not_found" || status == "added"`,
			result: match.Result{NewID: "n2", Status: match.StatusAdded},
			want:   true,
		},
		{
			name:   "score range",
			expr:   `score >= 40 && score < 80`,
			result: scored("h1", "n1", 60, match.StatusNeedsReview),
			want:   true,
		},
		{
			name:   "unscored result evaluates score as -1",
			expr:   `score == -1`,
			result: match.Result{OldID: "h2", Status: match.StatusNotFound},
			want:   true,
		},
		{
			name:   "unscored result excluded from score range",
			expr:   `score >= 0`,
			result: match.Result{OldID: "h2", Status: match.StatusNotFound},
			want:   false,
		},
		{
			name:   "id prefix",
			expr:   `old_id.startsWith("web/")`,
			result: scored("web/h1", "n1", 90, match.StatusReviewed),
			want:   true,
		},
		{
			name:   "absent new id is empty string",
			expr:   `new_id == ""`,
			result: match.Result{OldID: "h2", Status: match.StatusNotFound},
			want:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := New(tt.expr)
			require.NoError(t, err)

			got, err := f.Match(tt.result)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	results := []match.Result{
		scored("h1", "n1", 100, match.StatusReviewed),
		scored("h2", "n2", 60, match.StatusNeedsReview),
		{OldID: "h3", Status: match.StatusNotFound},
		{NewID: "n4", Status: match.StatusAdded},
	}

	t.Run("keeps matching results in order", func(t *testing.T) {
		f, err := New(`status == "needs_review" || status == "not_found"`)
		require.NoError(t, err)

		filtered, err := f.Apply(results)
		require.NoError(t, err)
		require.Len(t, filtered, 2)
		assert.Equal(t, "h2", filtered[0].OldID)
		assert.Equal(t, "h3", filtered[1].OldID)
	})

	t.Run("match-all returns everything", func(t *testing.T) {
		f, err := New(`true`)
		require.NoError(t, err)

		filtered, err := f.Apply(results)
		require.NoError(t, err)
		assert.Equal(t, results, filtered)
	})

	t.Run("match-none returns empty slice", func(t *testing.T) {
		f, err := New(`false`)
		require.NoError(t, err)

		filtered, err := f.Apply(results)
		require.NoError(t, err)
		assert.Empty(t, filtered)
	})
}
