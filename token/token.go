package token

// operators holds the multi-character operators recognized as single tokens,
// grouped by length. Longer operators are matched first so >>= never splits
// into >> and =.
var operators = map[string]struct{}{
	"===": {}, "!==": {}, ">>=": {}, "<<=": {}, "...": {},
	"==": {}, "!=": {}, "<=": {}, ">=": {}, "&&": {}, "||": {},
	"->": {}, "=>": {}, "::": {}, "<<": {}, ">>": {}, "++": {}, "--": {},
	"+=": {}, "-=": {}, "*=": {}, "/=": {}, "%=": {}, "&=": {}, "|=": {}, "^=": {},
}

// Tokenize splits normalized code into its ordered token sequence. Word
// characters group into one token, known multi-character operators are kept
// as single tokens, and remaining punctuation is dropped.
func Tokenize(code string) []string {
	var tokens []string

	for i := 0; i < len(code); {
		c := code[i]

		if isWordByte(c) {
			j := i + 1
			for j < len(code) && isWordByte(code[j]) {
				j++
			}
			tokens = append(tokens, code[i:j])
			i = j
			continue
		}

		if op, n := matchOperator(code[i:]); n > 0 {
			tokens = append(tokens, op)
			i += n
			continue
		}

		// Single-character punctuation and whitespace carry no signal.
		i++
	}

	return tokens
}

// Frequencies builds the token frequency multiset used for overlap scoring.
func Frequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}

// matchOperator reports the longest known operator prefixing s and its
// byte length, or ("", 0) when none matches.
func matchOperator(s string) (string, int) {
	for n := 3; n >= 2; n-- {
		if len(s) < n {
			continue
		}
		if _, ok := operators[s[:n]]; ok {
			return s[:n], n
		}
	}
	return "", 0
}

// isWordByte mirrors the normalizer's notion of a word character: bytes
// outside the ASCII range belong to multi-byte runes and stay in the word.
func isWordByte(c byte) bool {
	return c == '_' || c >= 0x80 ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z') ||
		('0' <= c && c <= '9')
}
