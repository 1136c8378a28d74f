// Package filter selects comparison results with CEL expressions.
//
// Reporting layers rarely want every result: a triage dashboard shows only
// what needs attention, a regression gate only what disappeared. Instead of
// a fixed set of filter fields, a Filter compiles one CEL (Common Expression
// Language) boolean expression over the result's identifying data:
//
//	status  string  result status: "reviewed", "needs_review", "not_found", "added"
//	score   int     similarity score, or -1 when no score was computed
//	old_id  string  snippet id in the old scan, "" when absent
//	new_id  string  snippet id in the new scan, "" when absent
//
// Example expressions:
//
//	status == "needs_review"
//	status == "needs_review" || status == "not_found"
//	score >= 0 && score < 50
//	old_id.startsWith("web/")
package filter
