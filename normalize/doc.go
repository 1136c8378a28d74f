// Package normalize canonicalizes raw code snippets before tokenization and
// similarity scoring.
//
// Snippets captured from scan exports differ in formatting noise that carries
// no signal about whether the underlying finding changed: comments, literal
// values, indentation, and line breaks. Normalize removes all of it:
//
//   - Line comments (//) and block comments (/* */) are stripped. An
//     unterminated block comment consumes the remainder of the input.
//   - Every string literal is replaced with the placeholder token STR and
//     every numeric literal with the placeholder token NUM, so renaming a
//     string or number value does not affect similarity.
//   - Runs of whitespace, including newlines, collapse to a single space and
//     the result is trimmed.
//
// Normalize is total over arbitrary input, never fails, and is idempotent:
// Normalize(Normalize(x)) == Normalize(x) for all x.
package normalize
