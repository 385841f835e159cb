package lexicon

import (
	"iter"
	"slices"
)

// Entry is a single dictionary record: a lowercase headword and an opaque
// payload (the schema index in practice) that the lexicon never interprets.
type Entry struct {
	Key     string
	Payload int
}

// Filter narrows a search to the entries it returns true for.
// A nil Filter accepts every entry.
type Filter func(Entry) bool

func (f Filter) accepts(e Entry) bool {
	return f == nil || f(e)
}

// Lexicon is an immutable list of entries sorted by Compare.
// Homonyms (equal keys) stay adjacent and keep the order they were given in.
// A built Lexicon is safe for concurrent use without locking.
type Lexicon struct {
	entries []Entry
}

// New copies entries and stable-sorts them by key in suffix order.
func New(entries []Entry) *Lexicon {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return Compare(a.Key, b.Key)
	})
	return &Lexicon{entries: sorted}
}

// Len returns the number of entries.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// At returns the i-th entry in suffix order.
func (l *Lexicon) At(i int) Entry {
	return l.entries[i]
}

// All yields every entry in suffix order.
func (l *Lexicon) All() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		for _, e := range l.entries {
			if !yield(e) {
				return
			}
		}
	}
}
