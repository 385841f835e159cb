package lexicon

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keys(seq func(func(Entry) bool)) []string {
	var out []string
	for e := range seq {
		out = append(out, e.Key)
	}
	return out
}

func payloads(seq func(func(Entry) bool)) []int {
	var out []int
	for e := range seq {
		out = append(out, e.Payload)
	}
	return out
}

func TestNewSortsBySuffix(t *testing.T) {
	lex := New([]Entry{
		{Key: "синий"}, {Key: "красный"}, {Key: "печь", Payload: 1}, {Key: "новая"},
		{Key: "столом"}, {Key: "печь", Payload: 2}, {Key: "синяя"}, {Key: "лечь"},
	})

	require.Equal(t, 8, lex.Len())
	for i := 1; i < lex.Len(); i++ {
		assert.LessOrEqual(t, Compare(lex.At(i-1).Key, lex.At(i).Key), 0,
			"%q before %q", lex.At(i-1).Key, lex.At(i).Key)
	}

	// homonyms occupy one contiguous range
	seen := map[string]int{}
	for i := 0; i < lex.Len(); i++ {
		k := lex.At(i).Key
		if last, ok := seen[k]; ok {
			assert.Equal(t, i-1, last, "key %q is split", k)
		}
		seen[k] = i
	}
}

func TestNewDoesNotAliasInput(t *testing.T) {
	in := []Entry{{Key: "б"}, {Key: "а"}}
	New(in)
	assert.Equal(t, "б", in[0].Key)
}

func TestFindOne(t *testing.T) {
	lex := New([]Entry{
		{Key: "столик", Payload: 1},
		{Key: "стол", Payload: 2},
		{Key: "застол", Payload: 3},
	})

	e, ok := lex.FindOne("стол", nil)
	require.True(t, ok)
	assert.Equal(t, Entry{Key: "стол", Payload: 2}, e)

	_, ok = lex.FindOne("сто", nil)
	assert.False(t, ok)

	_, ok = lex.FindOne("тол", nil)
	assert.False(t, ok)
}

func TestFindOneScansRun(t *testing.T) {
	lex := New([]Entry{
		{Key: "печь", Payload: 1},
		{Key: "печь", Payload: 2},
		{Key: "печь", Payload: 3},
		{Key: "течь", Payload: 4},
	})

	e, ok := lex.FindOne("печь", func(e Entry) bool { return e.Payload > 1 })
	require.True(t, ok)
	assert.Equal(t, 2, e.Payload)

	_, ok = lex.FindOne("печь", func(e Entry) bool { return e.Payload == 4 })
	assert.False(t, ok, "filter must not leak outside the run")
}

func TestFindAll(t *testing.T) {
	lex := New([]Entry{
		{Key: "лечь", Payload: 0},
		{Key: "печь", Payload: 1},
		{Key: "течь", Payload: 2},
		{Key: "печь", Payload: 3},
		{Key: "печь-", Payload: 4},
	})

	homonyms := lex.FindAll("печь")
	assert.Equal(t, []int{1, 3}, payloads(homonyms))
	assert.Equal(t, []int{1, 3}, payloads(homonyms), "sequence must be restartable")

	assert.Empty(t, keys(lex.FindAll("речь")))
}

func TestFindAllStopsEarly(t *testing.T) {
	lex := New([]Entry{{Key: "печь", Payload: 1}, {Key: "печь", Payload: 2}})
	n := 0
	for range lex.FindAll("печь") {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestFindSimilar(t *testing.T) {
	testCases := []struct {
		name      string
		entries   []string
		word      string
		keep      Filter
		wantKey   string
		wantExact bool
		wantOK    bool
	}{
		{
			name:      "exact hit",
			entries:   []string{"стол", "столом"},
			word:      "стол",
			wantKey:   "стол",
			wantExact: true,
			wantOK:    true,
		},
		{
			name:    "unseen inflection falls back to a neighbour",
			entries: []string{"столом", "столами"},
			word:    "столов",
			wantKey: "столами",
			wantOK:  true,
		},
		{
			name:    "lone candidate below threshold",
			entries: []string{"красная"},
			word:    "красныя",
			wantOK:  false,
		},
		{
			name:    "right candidate diverges more",
			entries: []string{"ba", "zc"},
			word:    "bb",
			wantKey: "zc",
			wantOK:  true,
		},
		{
			name:    "left candidate diverges more",
			entries: []string{"xa", "bc"},
			word:    "bb",
			wantKey: "xa",
			wantOK:  true,
		},
		{
			name:    "tie goes right",
			entries: []string{"ya", "xc"},
			word:    "bb",
			wantKey: "xc",
			wantOK:  true,
		},
		{
			name:    "both candidates below threshold",
			entries: []string{"ba", "bc"},
			word:    "bb",
			wantOK:  false,
		},
		{
			name:    "filtered exact hit uses neighbours",
			entries: []string{"xa", "bb", "cc"},
			word:    "bb",
			keep:    func(e Entry) bool { return e.Key != "bb" },
			wantKey: "cc",
			wantOK:  true,
		},
		{
			name:    "filter skips rejected neighbours",
			entries: []string{"xa", "ya", "bc"},
			word:    "bb",
			keep:    func(e Entry) bool { return e.Key != "ya" && e.Key != "bc" },
			wantKey: "xa",
			wantOK:  true,
		},
		{
			name:    "nothing passes the filter",
			entries: []string{"xa", "cc"},
			word:    "bb",
			keep:    func(Entry) bool { return false },
			wantOK:  false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			entries := make([]Entry, len(tc.entries))
			for i, k := range tc.entries {
				entries[i] = Entry{Key: k, Payload: i}
			}
			lex := New(entries)

			m, ok := lex.FindSimilar(tc.word, tc.keep)
			require.Equal(t, tc.wantOK, ok)
			if !ok {
				return
			}
			assert.Equal(t, tc.wantKey, m.Key)
			assert.Equal(t, tc.wantExact, m.Exact)
			if !m.Exact {
				assert.NotEqual(t, tc.word, m.Key)
			}
		})
	}
}

func TestFindSimilarIdempotent(t *testing.T) {
	lex := New([]Entry{{Key: "столом"}, {Key: "столами"}, {Key: "стол"}, {Key: "печь"}, {Key: "печь", Payload: 1}})

	for _, w := range []string{"столов", "стол", "речь", "печь"} {
		m1, ok1 := lex.FindSimilar(w, nil)
		m2, ok2 := lex.FindSimilar(w, nil)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, m1, m2)

		e1, ok1 := lex.FindOne(w, nil)
		e2, ok2 := lex.FindOne(w, nil)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, e1, e2)

		assert.Equal(t, payloads(lex.FindAll(w)), payloads(lex.FindAll(w)))
	}
}

func TestEmptyLexicon(t *testing.T) {
	lex := New(nil)

	_, ok := lex.FindOne("стол", nil)
	assert.False(t, ok)

	_, ok = lex.FindSimilar("стол", nil)
	assert.False(t, ok)

	assert.Empty(t, keys(lex.FindAll("стол")))
	assert.Empty(t, keys(lex.All()))
}

func TestAll(t *testing.T) {
	in := []Entry{{Key: "синий"}, {Key: "красный"}, {Key: "новая"}}
	lex := New(in)

	got := keys(lex.All())
	want := []string{"синий", "красный", "новая"}
	assert.Equal(t, want, got)
	assert.True(t, slices.IsSortedFunc(got, Compare))
}

func TestInvalidUTF8KeysStayDistinct(t *testing.T) {
	lex := New([]Entry{{Key: "\xff", Payload: 1}, {Key: "\xfd", Payload: 2}})

	_, ok := lex.FindOne("\xfe", nil)
	assert.False(t, ok)

	e, ok := lex.FindOne("\xff", nil)
	require.True(t, ok)
	assert.Equal(t, 1, e.Payload)

	m, ok := lex.FindSimilar("\xfe", nil)
	if ok {
		assert.False(t, m.Exact)
	}
}

func TestConcurrentReaders(t *testing.T) {
	lex := New([]Entry{
		{Key: "столом"}, {Key: "столами", Payload: 1}, {Key: "стол", Payload: 2},
		{Key: "печь", Payload: 3}, {Key: "печь", Payload: 4},
	})
	wantSimilar, _ := lex.FindSimilar("столов", nil)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				e, ok := lex.FindOne("стол", nil)
				assert.True(t, ok)
				assert.Equal(t, 2, e.Payload)

				m, ok := lex.FindSimilar("столов", nil)
				assert.True(t, ok)
				assert.Equal(t, wantSimilar, m)

				assert.Equal(t, []int{3, 4}, payloads(lex.FindAll("печь")))
				assert.Len(t, keys(lex.All()), 5)
			}
		}()
	}
	wg.Wait()
}
