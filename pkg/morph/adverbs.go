package morph

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bastiangx/lingvo/pkg/dictionary"
	"github.com/bastiangx/lingvo/pkg/grammar"
	"github.com/bastiangx/lingvo/pkg/lexicon"
	"github.com/charmbracelet/log"
)

// Adverbs is a dictionary of adverbs. Adverbs do not inflect, so entries carry
// no schema.
type Adverbs struct {
	lex *lexicon.Lexicon
}

// NewAdverbs builds the dictionary from a one-field word list.
func NewAdverbs(src dictionary.Source) (*Adverbs, error) {
	var entries []lexicon.Entry
	for rec, err := range src.Records() {
		if err != nil {
			return nil, fmt.Errorf("failed to read adverbs: %w", err)
		}
		if !utf8.ValidString(rec.Word) {
			return nil, fmt.Errorf("adverb at line %d: %w", rec.Line, &dictionary.EncodingError{Line: rec.Line})
		}
		entries = append(entries, lexicon.Entry{Key: normalize(rec.Word)})
	}

	log.Debugf("Loaded %d adverbs", len(entries))
	return &Adverbs{lex: lexicon.New(entries)}, nil
}

// LoadAdverbs opens a word list and builds Adverbs from it.
func LoadAdverbs(path, encoding string) (*Adverbs, error) {
	f, err := dictionary.Open(path, dictionary.Options{Fields: 1, Encoding: encoding})
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewAdverbs(f)
}

// Len returns the number of entries.
func (a *Adverbs) Len() int { return a.lex.Len() }

func adverbFilter(keep func(*Adverb) bool) lexicon.Filter {
	if keep == nil {
		return nil
	}
	return func(e lexicon.Entry) bool { return keep(&Adverb{Word: e.Key, Key: e.Key}) }
}

func adverbComparability(c grammar.Comparability) func(*Adverb) bool {
	if c == grammar.Undefined {
		return nil
	}
	return func(adv *Adverb) bool { return adv.Comparability() == c }
}

// FindOne returns the exact match for word, or nil.
func (a *Adverbs) FindOne(word string, c grammar.Comparability) *Adverb {
	e, ok := a.lex.FindOne(normalize(word), adverbFilter(adverbComparability(c)))
	if !ok {
		return nil
	}
	return &Adverb{Word: word, Key: e.Key}
}

// FindSimilar returns the exact match or the nearest neighbour in suffix
// order with Inexact set.
func (a *Adverbs) FindSimilar(word string, c grammar.Comparability) *Adverb {
	return a.FindSimilarFunc(word, adverbComparability(c))
}

// FindSimilarFunc is FindSimilar with an arbitrary predicate.
func (a *Adverbs) FindSimilarFunc(word string, keep func(*Adverb) bool) *Adverb {
	m, ok := a.lex.FindSimilar(normalize(word), adverbFilter(keep))
	if !ok {
		return nil
	}
	return &Adverb{Word: word, Key: m.Key, Inexact: !m.Exact}
}

// FindAll yields every entry spelled like word.
func (a *Adverbs) FindAll(word string) iter.Seq[*Adverb] {
	return func(yield func(*Adverb) bool) {
		for e := range a.lex.FindAll(normalize(word)) {
			if !yield(&Adverb{Word: word, Key: e.Key}) {
				return
			}
		}
	}
}

// GetAll yields the whole dictionary in suffix order.
func (a *Adverbs) GetAll() iter.Seq[*Adverb] {
	return func(yield func(*Adverb) bool) {
		for e := range a.lex.All() {
			if !yield(&Adverb{Word: e.Key, Key: e.Key}) {
				return
			}
		}
	}
}

// Records implements dictionary.Source.
func (a *Adverbs) Records() iter.Seq2[dictionary.Record, error] {
	return func(yield func(dictionary.Record, error) bool) {
		for e := range a.lex.All() {
			if !yield(dictionary.Record{Word: e.Key}, nil) {
				return
			}
		}
	}
}

// AdverbOf wraps word without consulting a dictionary. Comparatives are
// rule based, so this is enough to build them.
func AdverbOf(word string) *Adverb {
	return &Adverb{Word: word, Key: normalize(word)}
}

// Adverb is a lookup result.
type Adverb struct {
	Word    string
	Key     string
	Inexact bool
}

// Comparability is Comparable for adverbs ending in "о".
func (a *Adverb) Comparability() grammar.Comparability {
	if strings.HasSuffix(normalize(a.Word), "о") {
		return grammar.Comparable
	}
	return grammar.Incomparable
}

// Comparative builds a comparative form by rule:
//
//	быстро  быстрее  побыстрее  быстрей  побыстрей  более быстро
//
// Irregular adverbs (хорошо, плохо, далеко) are not handled. Incomparable
// adverbs yield "". A leading capital is kept rather than lower-cased:
// "Быстро" gives "Быстрее" and "Побыстрее".
func (a *Adverb) Comparative(c grammar.Comparison) string {
	if a.Comparability() != grammar.Comparable {
		return ""
	}
	base := strings.TrimSuffix(a.Word, "о")
	base = strings.TrimSuffix(base, "О")
	if base == "" {
		return ""
	}

	switch c {
	case grammar.Comparative1:
		return base + "ее"
	case grammar.Comparative2:
		return withPo(base + "ее")
	case grammar.Comparative3:
		return base + "ей"
	case grammar.Comparative4:
		return withPo(base + "ей")
	case grammar.Comparative5:
		if startsUpper(a.Word) {
			return "Более " + strings.ToLower(a.Word)
		}
		return "более " + a.Word
	}
	return ""
}

func (a *Adverb) String() string { return a.Word }

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
