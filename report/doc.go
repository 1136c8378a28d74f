// Package report serializes comparison reports for downstream consumers.
//
// A Report is written in one of four formats: JSON and YAML for machine
// consumers, CSV for spreadsheet import, and Markdown for review in a pull
// request or chat message. Write targets an io.Writer; WriteFile picks the
// format from the file extension.
package report
