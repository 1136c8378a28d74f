// Package score computes a hybrid 0-100 similarity score between two code
// snippets.
//
// The score blends two symmetric ratios over the snippets' canonical token
// forms:
//
//   - Sequence ratio: alignment similarity over the ordered token sequences,
//     2*M/(lenA+lenB) where M is the total size of the matching blocks found
//     by a greedy longest-matching-block matcher. Two empty sequences have
//     ratio 1.0.
//   - Jaccard ratio: multiset overlap of the token frequency maps,
//     sum(min)/sum(max) over the union vocabulary. Two empty multisets have
//     ratio 1.0.
//
// The combined score is round(100 * (0.6*sequence + 0.4*jaccard)). Identical
// snippets score 100, the score is symmetric in its arguments, and it is
// always within [0, 100].
//
// Callers comparing one snippet against many should build a Profile once per
// snippet so normalization and tokenization are not repeated per pair.
package score
