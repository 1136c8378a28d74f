package report

import (
	"path/filepath"
	"strings"
)

// Format represents the output format for a comparison report.
type Format string

const (
	// FormatJSON writes the report as indented JSON.
	FormatJSON Format = "json"

	// FormatYAML writes the report as YAML.
	FormatYAML Format = "yaml"

	// FormatCSV writes one CSV row per result.
	FormatCSV Format = "csv"

	// FormatMarkdown writes a human-readable Markdown summary.
	FormatMarkdown Format = "markdown"
)

// IsValid returns true if the format is valid.
func (f Format) IsValid() bool {
	switch f {
	case FormatJSON, FormatYAML, FormatCSV, FormatMarkdown:
		return true
	default:
		return false
	}
}

// String returns the string representation of the format.
func (f Format) String() string {
	return string(f)
}

// FileExtension returns the file extension for the format.
func (f Format) FileExtension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatYAML:
		return ".yaml"
	case FormatCSV:
		return ".csv"
	case FormatMarkdown:
		return ".md"
	default:
		return ""
	}
}

// MimeType returns the MIME type for the format.
func (f Format) MimeType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatYAML:
		return "application/yaml"
	case FormatCSV:
		return "text/csv"
	case FormatMarkdown:
		return "text/markdown"
	default:
		return "application/octet-stream"
	}
}

// FormatForPath returns the format matching the path's file extension.
// The second return value is false when the extension is not recognized.
func FormatForPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".csv":
		return FormatCSV, true
	case ".md", ".markdown":
		return FormatMarkdown, true
	default:
		return "", false
	}
}
