package report

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/snipdrift/sdk/match"
)

// ErrUnsupportedFormat is returned when a format is not recognized.
var ErrUnsupportedFormat = errors.New("report: unsupported format")

// Write serializes the report to w in the given format.
func Write(w io.Writer, r match.Report, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, r)
	case FormatYAML:
		return writeYAML(w, r)
	case FormatCSV:
		return writeCSV(w, r)
	case FormatMarkdown:
		return writeMarkdown(w, r)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// WriteFile serializes the report to path, choosing the format from the
// file extension.
func WriteFile(path string, r match.Report) error {
	format, ok := FormatForPath(path)
	if !ok {
		return fmt.Errorf("%w: no format for path %q", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}

	if err := Write(f, r, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, r match.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report as JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, r match.Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode report as YAML: %w", err)
	}
	return enc.Close()
}

func writeCSV(w io.Writer, r match.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"old_id", "new_id", "score", "status"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, res := range r.Results {
		score := ""
		if v, ok := res.ScoreValue(); ok {
			score = strconv.Itoa(v)
		}
		if err := cw.Write([]string{res.OldID, res.NewID, score, res.Status.String()}); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

func writeMarkdown(w io.Writer, r match.Report) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Comparison %s\n\n", r.ID)
	fmt.Fprintf(&b, "Old scan `%s` against new scan `%s`, threshold %d, %s.\n\n",
		r.OldScan, r.NewScan, r.Threshold, r.CreatedAt.Format(time.RFC3339))

	summary := r.Summary()
	b.WriteString("## Summary\n\n")
	for _, status := range match.AllStatuses() {
		fmt.Fprintf(&b, "- %s: %d\n", status.DisplayName(), summary[status])
	}

	b.WriteString("\n## Results\n\n")
	b.WriteString("| Old ID | New ID | Score | Status |\n")
	b.WriteString("|--------|--------|-------|--------|\n")
	for _, res := range r.Results {
		score := "-"
		if v, ok := res.ScoreValue(); ok {
			score = strconv.Itoa(v)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n",
			mdCell(res.OldID), mdCell(res.NewID), score, res.Status.DisplayName())
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write Markdown report: %w", err)
	}
	return nil
}

// mdCell keeps empty and pipe-bearing ids from breaking the table layout.
func mdCell(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, "|", "\\|")
}
