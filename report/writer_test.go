package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/snipdrift/sdk/match"
)

func testReport() match.Report {
	score := 60
	full := 100
	return match.Report{
		ID:        "run-1",
		OldScan:   "build-100",
		NewScan:   "build-200",
		Threshold: 80,
		Results: []match.Result{
			{OldID: "h1", NewID: "n1", Score: &full, Status: match.StatusReviewed},
			{OldID: "h2", NewID: "n2", Score: &score, Status: match.StatusNeedsReview},
			{OldID: "h3", Status: match.StatusNotFound},
			{NewID: "n4", Status: match.StatusAdded},
		},
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport(), FormatJSON))

	var decoded match.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.ID)
	assert.Equal(t, testReport().Results, decoded.Results)
	assert.True(t, testReport().CreatedAt.Equal(decoded.CreatedAt))
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport(), FormatYAML))

	var decoded match.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "run-1", decoded.ID)
	assert.Equal(t, testReport().Results, decoded.Results)
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport(), FormatCSV))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "old_id,new_id,score,status", lines[0])
	assert.Equal(t, "h1,n1,100,reviewed", lines[1])
	assert.Equal(t, "h2,n2,60,needs_review", lines[2])
	assert.Equal(t, "h3,,,not_found", lines[3])
	assert.Equal(t, ",n4,,added", lines[4])
}

func TestWrite_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testReport(), FormatMarkdown))
	out := buf.String()

	assert.Contains(t, out, "# Comparison run-1")
	assert.Contains(t, out, "`build-100`")
	assert.Contains(t, out, "`build-200`")
	assert.Contains(t, out, "- Needs Review: 1")
	assert.Contains(t, out, "- Reviewed: 1")
	assert.Contains(t, out, "| h2 | n2 | 60 | Needs Review |")
	assert.Contains(t, out, "| h3 | - | - | Not Found |")
	assert.Contains(t, out, "| - | n4 | - | Added |")
}

func TestWrite_UnsupportedFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, testReport(), Format("xml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteFile(t *testing.T) {
	t.Run("format from extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.json")
		require.NoError(t, WriteFile(path, testReport()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		var decoded match.Report
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, "run-1", decoded.ID)
	})

	t.Run("unknown extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "report.xml")
		err := WriteFile(path, testReport())
		assert.ErrorIs(t, err, ErrUnsupportedFormat)
	})
}
