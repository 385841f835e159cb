package suggest

import (
	"slices"
	"unicode"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// headword is the trie item: how many entries of each kind share the word.
type headword map[string]int

// SearchTrie collects every headword under lowerPrefix, the prefix itself
// included.
func SearchTrie(trie *patricia.Trie, lowerPrefix string) []Suggestion {
	if trie == nil {
		return []Suggestion{}
	}

	var suggestions []Suggestion
	err := trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		hw, ok := item.(headword)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}

		s := Suggestion{Word: string(p)}
		for kind, n := range hw {
			s.Kinds = append(s.Kinds, kind)
			s.Homonyms += n
		}
		slices.Sort(s.Kinds)
		suggestions = append(suggestions, s)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
	}
	return suggestions
}

// CapitalPositions marks the upper-case runes of prefix.
func CapitalPositions(prefix string) []bool {
	var caps []bool
	for _, r := range prefix {
		caps = append(caps, unicode.IsUpper(r))
	}
	return caps
}

// ApplyCapitalization upper-cases the runes of word marked in capitalPositions.
func ApplyCapitalization(word string, capitalPositions []bool) string {
	if !slices.Contains(capitalPositions, true) {
		return word
	}

	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] {
			wordRunes[i] = unicode.ToUpper(wordRunes[i])
		}
	}
	return string(wordRunes)
}
