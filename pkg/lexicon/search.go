package lexicon

import (
	"iter"
	"sort"
)

// similarityThreshold is the Divergence a neighbour must exceed to be
// returned by FindSimilar.
const similarityThreshold = 1

// Match is the result of FindSimilar. Exact is false when the entry was picked
// from the neighbours of a word that is not in the lexicon.
type Match struct {
	Entry
	Exact bool
}

// run returns the half-open index range of entries whose key equals word.
// When word is absent, lo == hi is the insertion point.
func (l *Lexicon) run(word string) (lo, hi int) {
	lo = sort.Search(len(l.entries), func(i int) bool {
		return Compare(l.entries[i].Key, word) >= 0
	})
	hi = lo
	for hi < len(l.entries) && Compare(l.entries[hi].Key, word) == 0 {
		hi++
	}
	return lo, hi
}

// FindOne returns the first entry keyed exactly word that keep accepts.
func (l *Lexicon) FindOne(word string, keep Filter) (Entry, bool) {
	lo, hi := l.run(word)
	for _, e := range l.entries[lo:hi] {
		if keep.accepts(e) {
			return e, true
		}
	}
	return Entry{}, false
}

// FindAll yields every entry keyed exactly word, in lexicon order.
// The sequence can be ranged over any number of times.
func (l *Lexicon) FindAll(word string) iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		lo, hi := l.run(word)
		for _, e := range l.entries[lo:hi] {
			if !yield(e) {
				return
			}
		}
	}
}

// FindSimilar returns an exact entry for word if one passes keep. Otherwise it
// looks for the nearest accepted entry on each side of where word would sort
// and returns one of them as an inexact match, provided its Divergence from
// word exceeds the threshold. When both sides qualify, the candidate with the
// larger Divergence wins and a tie goes to the right-hand one.
func (l *Lexicon) FindSimilar(word string, keep Filter) (Match, bool) {
	if len(l.entries) == 0 {
		return Match{}, false
	}

	lo, hi := l.run(word)
	for _, e := range l.entries[lo:hi] {
		if keep.accepts(e) {
			return Match{Entry: e, Exact: true}, true
		}
	}

	left := -1
	for j := lo - 1; j >= 0; j-- {
		if keep.accepts(l.entries[j]) {
			left = j
			break
		}
	}

	// entries in [lo, hi) share word's key and were all rejected above
	right := -1
	for j := hi; j < len(l.entries); j++ {
		if keep.accepts(l.entries[j]) {
			right = j
			break
		}
	}

	switch {
	case left < 0 && right < 0:
		return Match{}, false
	case left < 0:
		return l.inexact(right, word)
	case right < 0:
		return l.inexact(left, word)
	}

	// NOTE: the larger divergence wins here, which reads backwards if
	// Divergence is taken as a distance. Kept as the established ranking.
	dl := Divergence(l.entries[left].Key, word)
	dr := Divergence(l.entries[right].Key, word)
	if dl > dr {
		return l.inexact(left, word)
	}
	return l.inexact(right, word)
}

func (l *Lexicon) inexact(i int, word string) (Match, bool) {
	e := l.entries[i]
	if Divergence(e.Key, word) <= similarityThreshold {
		return Match{}, false
	}
	return Match{Entry: e}, true
}
