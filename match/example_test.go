package match_test

import (
	"fmt"

	"github.com/snipdrift/sdk/match"
	"github.com/snipdrift/sdk/snippet"
)

func ExampleCompare() {
	oldScan := snippet.NewCollection(
		snippet.Snippet{ID: "h1", Code: "int x = 5; // init"},
		snippet.Snippet{ID: "h2", Code: "alpha(beta)"},
	)
	newScan := snippet.NewCollection(
		snippet.Snippet{ID: "n1", Code: "int x=5;"},
		snippet.Snippet{ID: "n2", Code: "totally different()"},
	)

	results, err := match.Compare(oldScan, newScan, 80)
	if err != nil {
		panic(err)
	}

	for _, r := range results {
		if score, ok := r.ScoreValue(); ok {
			fmt.Printf("%s -> %s: %s (score %d)\n", r.OldID, r.NewID, r.Status, score)
		} else if r.Status == match.StatusAdded {
			fmt.Printf("%s: %s\n", r.NewID, r.Status)
		} else {
			fmt.Printf("%s: %s\n", r.OldID, r.Status)
		}
	}

	// Output:
	// h1 -> n1: reviewed (score 100)
	// h2: not_found
	// n2: added
}
