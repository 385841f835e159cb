package suggest

import (
	"fmt"
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(s []Suggestion) []string {
	out := make([]string, len(s))
	for i, x := range s {
		out[i] = x.Word
	}
	return out
}

func newTestCompleter(cacheSize int) *Completer {
	c := NewCompleter(cacheSize)
	c.AddAll(KindAdjective, slices.Values([]string{"красный", "красивый", "крайний", "синий", "синий", "кр"}))
	c.AddWord("красиво", KindAdverb)
	c.AddWord("Красно", KindAdverb)
	return c
}

func TestComplete(t *testing.T) {
	c := newTestCompleter(16)

	got := c.Complete("крас", 0)
	assert.Equal(t, []string{"красно", "красиво", "красный", "красивый"}, words(got))

	got = c.Complete("крас", 2)
	assert.Equal(t, []string{"красно", "красиво"}, words(got))

	assert.Empty(t, c.Complete("зел", 5))
	assert.Empty(t, c.Complete("", 5))
}

func TestCompleteHomonymsAndKinds(t *testing.T) {
	c := newTestCompleter(0)

	got := c.Complete("син", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "синий", got[0].Word)
	assert.Equal(t, 2, got[0].Homonyms)
	assert.Equal(t, []string{KindAdjective}, got[0].Kinds)

	c.AddWord("синий", KindAdverb)
	got = c.Complete("синий", 1)
	require.Len(t, got, 1)
	assert.Equal(t, []string{KindAdjective, KindAdverb}, got[0].Kinds)
}

func TestCompleteCapitalization(t *testing.T) {
	c := newTestCompleter(16)

	got := c.Complete("Кра", 1)
	require.Len(t, got, 1)
	assert.Equal(t, "Красно", got[0].Word)

	// cached entries stay lower case
	got = c.Complete("кра", 1)
	assert.Equal(t, "красно", got[0].Word)
}

func TestHotCache(t *testing.T) {
	c := newTestCompleter(1)

	c.Complete("крас", 3)
	c.Complete("крас", 3)
	stats := c.Stats()
	assert.Equal(t, 1, stats["hotCacheHits"])
	assert.Equal(t, 1, stats["hotCacheEntries"])
	assert.Equal(t, 8, stats["totalWords"])

	c.AddWord("красный", KindAdverb)
	assert.Equal(t, 0, c.Stats()["hotCacheEntries"])

	var nilCache *HotCache
	_, ok := nilCache.Get("x", 1)
	assert.False(t, ok)
	assert.Empty(t, nilCache.Stats())
}

func TestApplyCapitalization(t *testing.T) {
	assert.Equal(t, "КРасный", ApplyCapitalization("красный", CapitalPositions("КР")))
	assert.Equal(t, "красный", ApplyCapitalization("красный", CapitalPositions("кр")))
	assert.Equal(t, "Ab", ApplyCapitalization("ab", []bool{true, false, true}))
}

func TestCompleteConcurrentInserts(t *testing.T) {
	c := newTestCompleter(16)

	var added []string
	for i := range 50 {
		added = append(added, fmt.Sprintf("крас%03d", i))
	}

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					c.Complete("крас", 0)
				}
			}
		}()
	}
	for _, w := range added {
		c.AddWord(w, KindAdjective)
	}
	close(stop)
	wg.Wait()

	got := words(c.Complete("крас", 0))
	assert.Subset(t, got, added, "cache must not keep results from before the last insert")
}
