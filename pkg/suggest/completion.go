package suggest

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/tchap/go-patricia/v2/patricia"
)

// Kinds of headwords.
const (
	KindAdjective = "adjective"
	KindAdverb    = "adverb"
)

// Suggestion is one completed headword.
type Suggestion struct {
	Word     string   `json:"word" msgpack:"w"`
	Kinds    []string `json:"kinds" msgpack:"k"`
	Homonyms int      `json:"homonyms" msgpack:"h"`
}

var _ ICompleter = (*Completer)(nil)

// Completer is a prefix index over headwords. Words are added up front and
// completions may then run concurrently.
type Completer struct {
	mu         sync.RWMutex
	trie       *patricia.Trie
	hotCache   *HotCache
	totalWords int
}

// NewCompleter returns an empty completer with a hot cache of cacheSize
// results. A cacheSize of 0 disables caching.
func NewCompleter(cacheSize int) *Completer {
	return &Completer{
		trie:     patricia.NewTrie(),
		hotCache: NewHotCache(cacheSize),
	}
}

func (c *Completer) AddWord(word, kind string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.addLocked(strings.ToLower(word), kind)
	c.hotCache.Purge()
}

func (c *Completer) AddAll(kind string, seq iter.Seq[string]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for word := range seq {
		c.addLocked(strings.ToLower(word), kind)
	}
	c.hotCache.Purge()
}

func (c *Completer) addLocked(word, kind string) {
	if word == "" {
		return
	}
	key := patricia.Prefix(word)
	hw, _ := c.trie.Get(key).(headword)
	if hw == nil {
		hw = headword{}
		c.trie.Insert(key, hw)
	}
	hw[kind]++
	c.totalWords++
}

// Complete returns up to limit headwords beginning with prefix, shortest
// first, then alphabetically. Capital letters of the prefix are carried
// over to the suggestions. A limit of 0 or less returns everything.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(prefix)
	if lowerPrefix == "" {
		return nil
	}

	c.mu.RLock()
	suggestions, ok := c.hotCache.Get(lowerPrefix, limit)
	if !ok {
		// filled under the read lock; inserts purge under the write lock
		suggestions = SearchTrie(c.trie, lowerPrefix)
		slices.SortFunc(suggestions, func(a, b Suggestion) int {
			return cmp.Or(
				cmp.Compare(utf8.RuneCountInString(a.Word), utf8.RuneCountInString(b.Word)),
				strings.Compare(a.Word, b.Word),
			)
		})
		if limit > 0 && len(suggestions) > limit {
			suggestions = suggestions[:limit]
		}
		c.hotCache.Add(lowerPrefix, limit, suggestions)
	}
	c.mu.RUnlock()

	caps := CapitalPositions(prefix)
	out := make([]Suggestion, len(suggestions))
	for i, s := range suggestions {
		s.Word = ApplyCapitalization(s.Word, caps)
		out[i] = s
	}
	return out
}

func (c *Completer) Stats() map[string]int {
	c.mu.RLock()
	stats := map[string]int{"totalWords": c.totalWords}
	c.mu.RUnlock()

	for k, v := range c.hotCache.Stats() {
		stats[k] = v
	}
	return stats
}
