// Package token splits normalized code into the token forms consumed by
// similarity scoring: an ordered sequence for alignment and a frequency
// multiset for overlap.
//
// The grammar is fixed and part of the package's contract, since it directly
// affects similarity scores:
//
//   - Word characters (letters, digits, underscore, and any multi-byte rune)
//     group into a single token.
//   - Known multi-character operators such as ==, !=, <=, >=, &&, ||, ->,
//     and :: are single tokens.
//   - All remaining single-character punctuation is formatting noise and is
//     discarded: braces, parentheses, commas and semicolons appear in nearly
//     every statement and would inflate the similarity of unrelated code.
//
// Tokenize is total over any string and never emits empty or whitespace
// tokens.
package token
