// Package lexicon holds the suffix-ordered word list and the searches over it.
//
// Words are ordered by their reversed rune sequence, so entries that share an
// ending sit next to each other regardless of their stems. A binary search for
// an unseen inflection therefore lands among the words that inflect the same way.
package lexicon

import "unicode/utf8"

// lastUnit decodes the last rune of s. A byte that is not part of valid
// UTF-8 becomes a value above utf8.MaxRune unique to that byte, so invalid
// input still orders strictly.
func lastUnit(s string) (rune, int) {
	r, n := utf8.DecodeLastRuneInString(s)
	if r == utf8.RuneError && n == 1 {
		return utf8.MaxRune + 1 + rune(s[len(s)-1]), 1
	}
	return r, n
}

// Compare orders a and b by comparing runes from the end of each word.
// The first differing rune decides; if one word is a suffix of the other,
// the shorter one sorts first. It returns -1, 0 or +1.
func Compare(a, b string) int {
	for len(a) > 0 && len(b) > 0 {
		ra, na := lastUnit(a)
		rb, nb := lastUnit(b)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
		a, b = a[:len(a)-na], b[:len(b)-nb]
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

// Divergence walks a and b backward the same way Compare does and counts the
// aligned positions whose runes differ, plus the runes of the longer word left
// over once the shorter one is exhausted. Equal words score 0.
//
// It is a coarse heuristic used by FindSimilar to rank neighbours and is not
// a metric: two words with different stems of equal length and a shared
// ending can score the same as two unrelated words.
func Divergence(a, b string) int {
	n := 0
	for len(a) > 0 && len(b) > 0 {
		ra, na := lastUnit(a)
		rb, nb := lastUnit(b)
		if ra != rb {
			n++
		}
		a, b = a[:len(a)-na], b[:len(b)-nb]
	}
	return n + utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
}
