// Package match classifies the persistence of security findings between two
// scans by comparing their attached code snippets.
//
// Given the snippet collections of an old and a new scan, a Matcher produces
// exactly one Result per snippet id:
//
//   - Ids present in both scans pair immediately at score 100 (an identical
//     hash implies an unchanged snippet) and classify as Reviewed.
//   - Remaining snippets are scored pairwise, parallelized across a worker
//     pool, and paired one-to-one greedily in descending score order with a
//     deterministic tie-break on (old id, new id).
//   - Paired findings classify as Reviewed when the score meets the caller's
//     threshold, NeedsReview otherwise.
//   - Old snippets left unpaired are NotFound; new snippets left unpaired
//     are Added.
//
// Compare is a pure function of its inputs: identical inputs always produce
// the identical result list, and no state is shared across invocations. It
// either returns a complete result set or fails fast on invalid input;
// there is no partial-result contract.
package match
