package suggest

import (
	"strconv"
	"sync/atomic"

	"github.com/charmbracelet/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

// HotCache keeps the results of recent completions. A nil *HotCache is a
// valid, always-missing cache.
type HotCache struct {
	entries *lru.Cache[string, []Suggestion]
	size    int
	hits    atomic.Int64
	misses  atomic.Int64
}

// NewHotCache returns a cache holding up to size results, or nil when size is
// not positive.
func NewHotCache(size int) *HotCache {
	if size <= 0 {
		return nil
	}
	entries, err := lru.New[string, []Suggestion](size)
	if err != nil {
		log.Errorf("Failed to create hot cache: %v", err)
		return nil
	}
	return &HotCache{entries: entries, size: size}
}

func cacheKey(lowerPrefix string, limit int) string {
	return strconv.Itoa(limit) + ":" + lowerPrefix
}

// Get returns a cached result for a lower-cased prefix and limit.
func (hc *HotCache) Get(lowerPrefix string, limit int) ([]Suggestion, bool) {
	if hc == nil {
		return nil, false
	}
	s, ok := hc.entries.Get(cacheKey(lowerPrefix, limit))
	if ok {
		hc.hits.Add(1)
	} else {
		hc.misses.Add(1)
	}
	return s, ok
}

// Add stores a result. Callers must not modify s afterwards.
func (hc *HotCache) Add(lowerPrefix string, limit int, s []Suggestion) {
	if hc == nil {
		return
	}
	if hc.entries.Add(cacheKey(lowerPrefix, limit), s) {
		log.Debugf("Hot cache full, evicted oldest entry")
	}
}

// Purge drops every cached result.
func (hc *HotCache) Purge() {
	if hc == nil {
		return
	}
	hc.entries.Purge()
}

func (hc *HotCache) Stats() map[string]int {
	if hc == nil {
		return map[string]int{}
	}
	return map[string]int{
		"hotCacheEntries": hc.entries.Len(),
		"maxHotEntries":   hc.size,
		"hotCacheHits":    int(hc.hits.Load()),
		"hotCacheMisses":  int(hc.misses.Load()),
	}
}
