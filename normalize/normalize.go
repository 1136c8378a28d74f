package normalize

import "strings"

const (
	// StringPlaceholder is the token substituted for every string literal.
	StringPlaceholder = "STR"

	// NumberPlaceholder is the token substituted for every numeric literal.
	NumberPlaceholder = "NUM"
)

// Normalize returns the canonical form of a code snippet: comment-free,
// whitespace-collapsed, with string and numeric literals generalized to
// fixed placeholder tokens.
//
// Normalize accepts any input, including empty strings, snippets with
// unterminated comment or string markers, and non-ASCII text. It never fails
// and is idempotent.
func Normalize(code string) string {
	var out strings.Builder
	out.Grow(len(code))

	// pendingSpace records that a whitespace run or a stripped construct
	// separates the next emission from the previous one. inWord tracks
	// whether the last emitted byte belongs to a word token.
	pendingSpace := false
	inWord := false

	writeByte := func(c byte) {
		if pendingSpace && out.Len() > 0 {
			out.WriteByte(' ')
		}
		pendingSpace = false
		out.WriteByte(c)
		inWord = isWordByte(c)
	}

	// writeToken emits a placeholder with a space boundary on both sides so
	// it can never merge into an adjacent identifier.
	writeToken := func(tok string) {
		if out.Len() > 0 {
			out.WriteByte(' ')
		}
		out.WriteString(tok)
		pendingSpace = true
		inWord = true
	}

	for i := 0; i < len(code); {
		c := code[i]

		switch {
		case c == '/' && i+1 < len(code) && code[i+1] == '/':
			// Line comment: drop everything up to the newline. The newline
			// itself is handled as ordinary whitespace on the next pass.
			i += 2
			for i < len(code) && code[i] != '\n' {
				i++
			}
			pendingSpace = true

		case c == '/' && i+1 < len(code) && code[i+1] == '*':
			// Block comment. Unterminated comments consume to end of input.
			end := strings.Index(code[i+2:], "*/")
			if end < 0 {
				i = len(code)
			} else {
				i += 2 + end + 2
			}
			pendingSpace = true

		case c == '"' || c == '\'' || c == '`':
			i = skipStringLiteral(code, i)
			writeToken(StringPlaceholder)

		case isDigit(c) && (!inWord || pendingSpace):
			i = skipNumericLiteral(code, i)
			writeToken(NumberPlaceholder)

		case isSpace(c):
			pendingSpace = true
			i++

		default:
			writeByte(c)
			i++
		}
	}

	return out.String()
}

// skipStringLiteral advances past the literal opening at code[i] and returns
// the index of the first byte after it. Backslash escapes are honored inside
// single- and double-quoted literals; raw backtick literals have none. An
// unterminated literal consumes to end of input.
func skipStringLiteral(code string, i int) int {
	quote := code[i]
	i++
	for i < len(code) {
		switch {
		case quote != '`' && code[i] == '\\' && i+1 < len(code):
			i += 2
		case code[i] == quote:
			return i + 1
		default:
			i++
		}
	}
	return i
}

// skipNumericLiteral advances past a numeric literal starting at code[i].
// It covers decimal, hex, octal and binary prefixes, fractional parts, type
// suffixes, and signed exponents (1e-9, 2.5E+10).
func skipNumericLiteral(code string, i int) int {
	j := i + 1
	for j < len(code) {
		c := code[j]
		if isWordByte(c) || c == '.' {
			j++
			continue
		}
		if (c == '+' || c == '-') && (code[j-1] == 'e' || code[j-1] == 'E') &&
			j+1 < len(code) && isDigit(code[j+1]) {
			j++
			continue
		}
		break
	}
	return j
}

// isWordByte reports whether c belongs to a word token. Bytes outside the
// ASCII range are part of multi-byte runes and stay glued to their word.
func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
