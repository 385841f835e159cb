// Package suggest completes headword prefixes over the loaded dictionaries.
package suggest

import "iter"

// ICompleter defines the interface for headword completion engines
type ICompleter interface {
	// Complete returns up to limit headwords starting with prefix
	Complete(prefix string, limit int) []Suggestion

	// AddWord records one headword of the given kind
	AddWord(word, kind string)

	// AddAll records every word of seq
	AddAll(kind string, seq iter.Seq[string])

	// Stats returns statistics about the indexed headwords
	Stats() map[string]int
}
