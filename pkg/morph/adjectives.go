// Package morph exposes adjectives and adverbs backed by suffix-ordered
// lexicons. Lookups normalise the surface form to lower case, search the
// lexicon and wrap the hit in a value that computes its forms on demand.
package morph

import (
	"fmt"
	"iter"
	"strings"
	"unicode/utf8"

	"github.com/bastiangx/lingvo/pkg/dictionary"
	"github.com/bastiangx/lingvo/pkg/grammar"
	"github.com/bastiangx/lingvo/pkg/lexicon"
	"github.com/bastiangx/lingvo/pkg/schema"
	"github.com/charmbracelet/log"
)

// Adjectives is a dictionary of adjectives. It is immutable once built and
// safe for concurrent use.
type Adjectives struct {
	lex     *lexicon.Lexicon
	schemas *schema.Table
}

// NewAdjectives reads every record of src and builds the lexicon. Any read or
// schema error aborts construction.
func NewAdjectives(src dictionary.Source) (*Adjectives, error) {
	schemas := schema.NewTable()
	var entries []lexicon.Entry
	for rec, err := range src.Records() {
		if err != nil {
			return nil, fmt.Errorf("failed to read adjectives: %w", err)
		}
		if !utf8.ValidString(rec.Word) {
			return nil, fmt.Errorf("adjective at line %d: %w", rec.Line, &dictionary.EncodingError{Line: rec.Line})
		}
		id, err := schemas.Intern(rec.Schema)
		if err != nil {
			return nil, fmt.Errorf("adjective %q at line %d: %w", rec.Word, rec.Line, err)
		}
		entries = append(entries, lexicon.Entry{Key: normalize(rec.Word), Payload: id})
	}

	log.Debugf("Loaded %d adjectives with %d schemas", len(entries), schemas.Len())
	return &Adjectives{lex: lexicon.New(entries), schemas: schemas}, nil
}

// LoadAdjectives opens a dictionary file and builds Adjectives from it.
func LoadAdjectives(path, encoding string) (*Adjectives, error) {
	f, err := dictionary.Open(path, dictionary.Options{Fields: 2, Encoding: encoding})
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return NewAdjectives(f)
}

// normalize lower-cases word. Invalid UTF-8 is left as is, since ToLower
// would turn every bad byte into the same replacement rune.
func normalize(word string) string {
	if !utf8.ValidString(word) {
		return word
	}
	return strings.ToLower(word)
}

// Len returns the number of entries.
func (a *Adjectives) Len() int { return a.lex.Len() }

// Schemas returns the number of distinct schemas.
func (a *Adjectives) Schemas() int { return a.schemas.Len() }

func (a *Adjectives) wrap(e lexicon.Entry, word string) *Adjective {
	return &Adjective{Word: word, Key: e.Key, schema: a.schemas.At(e.Payload)}
}

func (a *Adjectives) filter(keep func(*Adjective) bool) lexicon.Filter {
	if keep == nil {
		return nil
	}
	return func(e lexicon.Entry) bool { return keep(a.wrap(e, e.Key)) }
}

func byComparability(c grammar.Comparability) func(*Adjective) bool {
	if c == grammar.Undefined {
		return nil
	}
	return func(adj *Adjective) bool { return adj.Comparability() == c }
}

// FindOne returns the first exact match for word with the given
// comparability, or nil. Undefined accepts any.
func (a *Adjectives) FindOne(word string, c grammar.Comparability) *Adjective {
	return a.FindOneFunc(word, byComparability(c))
}

// FindOneFunc is FindOne with an arbitrary predicate. A nil keep accepts any.
func (a *Adjectives) FindOneFunc(word string, keep func(*Adjective) bool) *Adjective {
	e, ok := a.lex.FindOne(normalize(word), a.filter(keep))
	if !ok {
		return nil
	}
	return a.wrap(e, word)
}

// FindSimilar returns an exact match when there is one, otherwise an adjective
// declined like its nearest neighbour in suffix order with Inexact set.
func (a *Adjectives) FindSimilar(word string, c grammar.Comparability) *Adjective {
	return a.FindSimilarFunc(word, byComparability(c))
}

// FindSimilarFunc is FindSimilar with an arbitrary predicate.
func (a *Adjectives) FindSimilarFunc(word string, keep func(*Adjective) bool) *Adjective {
	m, ok := a.lex.FindSimilar(normalize(word), a.filter(keep))
	if !ok {
		return nil
	}
	adj := a.wrap(m.Entry, word)
	adj.Inexact = !m.Exact
	return adj
}

// FindAll yields every homonym of word, each carrying word as given.
func (a *Adjectives) FindAll(word string) iter.Seq[*Adjective] {
	return func(yield func(*Adjective) bool) {
		for e := range a.lex.FindAll(normalize(word)) {
			if !yield(a.wrap(e, word)) {
				return
			}
		}
	}
}

// GetAll yields the whole dictionary in suffix order.
func (a *Adjectives) GetAll() iter.Seq[*Adjective] {
	return func(yield func(*Adjective) bool) {
		for e := range a.lex.All() {
			if !yield(a.wrap(e, e.Key)) {
				return
			}
		}
	}
}

// Records implements dictionary.Source so the dictionary can be written back
// out, e.g. as a snapshot.
func (a *Adjectives) Records() iter.Seq2[dictionary.Record, error] {
	return func(yield func(dictionary.Record, error) bool) {
		for e := range a.lex.All() {
			rec := dictionary.Record{Word: e.Key, Schema: a.schemas.At(e.Payload).Descriptor()}
			if !yield(rec, nil) {
				return
			}
		}
	}
}

// Adjective is a lookup result. Its forms are derived from Word, so a
// capitalised query yields capitalised forms.
type Adjective struct {
	// Word is the form the adjective was looked up by.
	Word string
	// Key is the headword that matched.
	Key string
	// Inexact is set when Key differs from the query and the forms were
	// borrowed from a similar word.
	Inexact bool

	schema *schema.Schema
}

func (a *Adjective) form(index int) string {
	if a.schema == nil {
		return ""
	}
	s, _ := a.schema.Form(a.Word, index)
	return s
}

// Comparability reports whether the adjective has comparative forms.
func (a *Adjective) Comparability() grammar.Comparability {
	if a.form(grammar.ComparativeSlot) != "" {
		return grammar.Comparable
	}
	return grammar.Incomparable
}

// Form returns the full form for a case and gender, or "" when the schema has
// none.
func (a *Adjective) Form(c grammar.Case, g grammar.Gender) string {
	return a.form(grammar.Index(c, g))
}

// Short returns the short form (краток) for a gender.
func (a *Adjective) Short(g grammar.Gender) string {
	return a.form(grammar.ShortSlot + grammar.SlotsPerGender*int(g.Base()))
}

// Comparative returns a comparative form. Comparative5 is not defined for
// adjectives and yields "".
func (a *Adjective) Comparative(c grammar.Comparison) string {
	if c < grammar.Comparative1 || c > grammar.Comparative4 {
		return ""
	}
	slot := grammar.ComparativeSlot
	if c == grammar.Comparative3 || c == grammar.Comparative4 {
		slot = grammar.ComparativeSlotAlt
	}
	res := a.form(slot)
	if res == "" || !c.Prefixed() {
		return res
	}
	return withPo(res)
}

// withPo prepends "по", moving a leading capital onto the prefix.
func withPo(word string) string {
	if startsUpper(word) {
		return "По" + strings.ToLower(word)
	}
	return "по" + word
}

func (a *Adjective) String() string { return a.Word }
