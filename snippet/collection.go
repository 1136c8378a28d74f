package snippet

import (
	"errors"
	"fmt"
	"sort"
)

// Errors returned when a collection violates the extraction contract.
var (
	// ErrEmptyID is returned when a collection contains an entry without an id.
	ErrEmptyID = errors.New("snippet: empty id")

	// ErrIDMismatch is returned when a collection key differs from the id of
	// the snippet stored under it.
	ErrIDMismatch = errors.New("snippet: collection key does not match snippet id")

	// ErrDuplicateID is returned when a collection file declares the same id twice.
	ErrDuplicateID = errors.New("snippet: duplicate id")
)

// Collection holds the snippets of one scan, keyed by snippet id. Keys are
// unique within a collection and insertion order is irrelevant.
type Collection map[string]Snippet

// NewCollection builds a Collection from snippets. The last snippet wins
// when two share an id; use Validate on loaded data to reject duplicates
// instead.
func NewCollection(snippets ...Snippet) Collection {
	c := make(Collection, len(snippets))
	for _, s := range snippets {
		c[s.ID] = s
	}
	return c
}

// Add inserts or replaces a snippet under its own id.
func (c Collection) Add(s Snippet) {
	c[s.ID] = s
}

// Len returns the number of snippets in the collection.
func (c Collection) Len() int {
	return len(c)
}

// IDs returns all snippet ids in lexicographic order. The order is the
// canonical iteration order everywhere determinism matters.
func (c Collection) IDs() []string {
	ids := make([]string, 0, len(c))
	for id := range c {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Snippets returns the snippets ordered by id.
func (c Collection) Snippets() []Snippet {
	out := make([]Snippet, 0, len(c))
	for _, id := range c.IDs() {
		out = append(out, c[id])
	}
	return out
}

// Validate checks the extraction contract: every entry has a non-empty id
// and is stored under its own id. Malformed entries are the extraction
// layer's responsibility to exclude; comparison fails fast on them rather
// than producing a misleading score.
func (c Collection) Validate() error {
	for key, s := range c {
		if key == "" || s.ID == "" {
			return ErrEmptyID
		}
		if key != s.ID {
			return fmt.Errorf("%w: key %q holds snippet %q", ErrIDMismatch, key, s.ID)
		}
	}
	return nil
}
