// Package sdk provides the Snipdrift SDK for re-identifying code-security
// findings across scans.
//
// A static-analysis finding is anchored to a snippet of source code. Between
// two scans of the same codebase the code moves, gets reformatted, or changes
// slightly, and the finding's file/line anchor goes stale. Snipdrift matches
// each old finding's snippet against the new scan's snippets by content
// similarity, so triage decisions survive the diff.
//
// # Core Concepts
//
// The SDK is organized around a small pipeline:
//
//   - snippet: a code excerpt with a stable id (snippet.Snippet, snippet.Collection)
//   - normalize: strips comments and literal values so cosmetic edits do not
//     affect matching
//   - token: splits normalized code into comparable tokens
//   - score: combines sequence similarity and token-frequency overlap into a
//     0-100 score
//   - match: pairs old and new snippets and classifies every finding as
//     reviewed, needs_review, not_found or added
//   - baseline: persists scans and reports between runs (Redis-backed)
//   - filter: CEL expressions over results for selective reporting
//   - report: JSON, YAML, CSV and Markdown output
//
// # Quick Start
//
// Compare two in-memory collections:
//
//	results, err := match.Compare(oldScan, newScan, match.DefaultThreshold)
//
// Or run the full pipeline through an Engine:
//
//	engine, err := sdk.New(
//	    sdk.WithThreshold(80),
//	    sdk.WithFilter(`status != "reviewed"`),
//	    sdk.WithStore(store),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	report, err := engine.CompareScans(ctx, "build-100", "build-200", oldScan, newScan)
//
// # Error Handling
//
// Engine methods return *SDKError values that wrap sentinel errors from this
// package and the pipeline packages. Use errors.Is to test for conditions:
//
//	if errors.Is(err, baseline.ErrScanNotFound) {
//	    // first run, nothing to compare against
//	}
package sdk
