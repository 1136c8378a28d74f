// Package snippet provides the data model for code excerpts attached to
// security findings.
//
// A Snippet is the code excerpt captured verbatim for one finding, identified
// by a stable content-derived id. A Collection holds the snippets of one
// scan, keyed by id. Collections are the hand-off point from the extraction
// layer that reads scan exports: the extraction layer is responsible for
// excluding malformed entries, and Validate enforces the contract before
// comparison.
//
// Collections round-trip through JSON and YAML files via Load and Save, with
// the format detected by file extension.
package snippet
