package score

import (
	"math"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/snipdrift/sdk/normalize"
	"github.com/snipdrift/sdk/token"
)

// Relative weights of the two ratios in the combined score.
const (
	sequenceWeight = 0.6
	jaccardWeight  = 0.4
)

// Profile is the precomputed canonical form of one snippet: its ordered
// token sequence and token frequency multiset. Building a Profile once per
// snippet keeps batch comparison from re-normalizing the same code for every
// pair.
type Profile struct {
	// Tokens is the ordered token sequence of the normalized code.
	Tokens []string

	// Freq is the token frequency multiset of the normalized code.
	Freq map[string]int
}

// NewProfile normalizes and tokenizes code into a Profile.
func NewProfile(code string) Profile {
	tokens := token.Tokenize(normalize.Normalize(code))
	return Profile{
		Tokens: tokens,
		Freq:   token.Frequencies(tokens),
	}
}

// SequenceRatio computes alignment similarity between two token sequences
// as 2*M/(lenA+lenB), where M is the total size of the matching blocks found
// by a greedy longest-matching-block matcher. Two empty sequences are
// identical by definition and yield 1.0.
func SequenceRatio(a, b []string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	// The popularity junk heuristic is disabled: it silently degrades
	// matching on long snippets and makes scores depend on sequence length.
	return difflib.NewMatcherWithJunk(a, b, false, nil).Ratio()
}

// Jaccard computes multiset overlap between two token frequency maps:
// sum of per-token minimum counts over sum of per-token maximum counts
// across the union vocabulary. Two empty multisets yield 1.0.
func Jaccard(a, b map[string]int) float64 {
	var intersection, union int

	for t, ca := range a {
		cb := b[t]
		intersection += min(ca, cb)
		union += max(ca, cb)
	}
	for t, cb := range b {
		if _, seen := a[t]; !seen {
			union += cb
		}
	}

	if union == 0 {
		return 1.0
	}
	return float64(intersection) / float64(union)
}

// Profiles computes the combined 0-100 score from two precomputed profiles.
func Profiles(a, b Profile) int {
	seq := SequenceRatio(a.Tokens, b.Tokens)
	jac := Jaccard(a.Freq, b.Freq)
	return int(math.Round(100 * (sequenceWeight*seq + jaccardWeight*jac)))
}

// Score computes the combined 0-100 similarity score between two raw code
// snippets. It is symmetric and total over any pair of strings.
func Score(oldCode, newCode string) int {
	return Profiles(NewProfile(oldCode), NewProfile(newCode))
}
