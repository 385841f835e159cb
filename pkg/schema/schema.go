// Package schema holds inflection schemas: how to derive every form of a word
// from the word itself.
//
// A schema descriptor has the shape
//
//	<cut>|<ending0>,<ending1>,...
//
// The word loses its last <cut> runes to give the stem and each ending is
// appended to the stem. An ending of "-" marks a slot without a form, and an
// ending written as "<n>:<ending>" cuts n runes instead of the default for
// that slot only.
package schema

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

const noForm = "-"

type slot struct {
	cut    int
	ending string
	ok     bool
}

// Schema is an immutable parsed descriptor.
type Schema struct {
	descriptor string
	slots      []slot
}

// Parse parses a descriptor.
func Parse(descriptor string) (*Schema, error) {
	head, body, found := strings.Cut(descriptor, "|")
	if !found {
		return nil, fmt.Errorf("schema %q: missing '|'", descriptor)
	}
	cut, err := parseCut(head)
	if err != nil {
		return nil, fmt.Errorf("schema %q: %w", descriptor, err)
	}

	fields := strings.Split(body, ",")
	s := &Schema{descriptor: descriptor, slots: make([]slot, len(fields))}
	for i, f := range fields {
		if f == noForm {
			continue
		}
		sl := slot{cut: cut, ending: f, ok: true}
		if n, ending, ok := strings.Cut(f, ":"); ok {
			if sl.cut, err = parseCut(n); err != nil {
				return nil, fmt.Errorf("schema %q slot %d: %w", descriptor, i, err)
			}
			sl.ending = ending
		}
		s.slots[i] = sl
	}
	return s, nil
}

func parseCut(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("bad cut %q: %w", s, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("negative cut %d", n)
	}
	return n, nil
}

// Descriptor returns the text the schema was parsed from.
func (s *Schema) Descriptor() string { return s.descriptor }

// Len is the number of slots, including empty ones.
func (s *Schema) Len() int { return len(s.slots) }

// Form builds the form in slot index for word. It reports false when the slot
// is empty, out of range, or the word is shorter than the cut.
func (s *Schema) Form(word string, index int) (string, bool) {
	if index < 0 || index >= len(s.slots) {
		return "", false
	}
	sl := s.slots[index]
	if !sl.ok {
		return "", false
	}
	stem, ok := trimRunes(word, sl.cut)
	if !ok {
		return "", false
	}
	return stem + sl.ending, true
}

func trimRunes(word string, n int) (string, bool) {
	end := len(word)
	for ; n > 0; n-- {
		if end == 0 {
			return "", false
		}
		_, size := utf8.DecodeLastRuneInString(word[:end])
		end -= size
	}
	return word[:end], true
}

// Table interns schemas by descriptor so that words sharing a paradigm share
// one *Schema. It is safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	ids     map[string]int
	schemas []*Schema
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{ids: make(map[string]int)}
}

// Intern returns the id of descriptor, parsing and storing it on first use.
func (t *Table) Intern(descriptor string) (int, error) {
	t.mu.RLock()
	id, ok := t.ids[descriptor]
	t.mu.RUnlock()
	if ok {
		return id, nil
	}

	s, err := Parse(descriptor)
	if err != nil {
		return 0, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.ids[descriptor]; ok {
		return id, nil
	}
	id = len(t.schemas)
	t.schemas = append(t.schemas, s)
	t.ids[descriptor] = id
	return id, nil
}

// At returns the schema with the given id, or nil.
func (t *Table) At(id int) *Schema {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if id < 0 || id >= len(t.schemas) {
		return nil
	}
	return t.schemas[id]
}

// Len returns the number of distinct schemas.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.schemas)
}
