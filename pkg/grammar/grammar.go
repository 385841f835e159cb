// Package grammar defines the grammatical categories used to address a word form
// inside a schema: case, gender/number, comparison degree and comparability.
package grammar

import (
	"fmt"
	"strings"
)

// Schema layout. Each base gender owns SlotsPerGender consecutive slots:
// the six cases, the animate accusative and the short form.
const (
	SlotsPerGender     = 8
	AnimateAccusative  = 6
	ShortSlot          = 7
	ComparativeSlot    = 32
	ComparativeSlotAlt = 33
)

// Case is a grammatical case (падеж).
type Case int

const (
	Nominative Case = iota
	Genitive
	Dative
	Accusative
	Instrumental
	Locative
)

// Cases lists every case in slot order.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Instrumental, Locative}

var caseNames = []string{"nominative", "genitive", "dative", "accusative", "instrumental", "locative"}

func (c Case) String() string {
	if c < 0 || int(c) >= len(caseNames) {
		return fmt.Sprintf("Case(%d)", int(c))
	}
	return caseNames[c]
}

// ParseCase accepts a case name or its first three letters.
func ParseCase(s string) (Case, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range caseNames {
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return Case(i), nil
		}
	}
	return 0, fmt.Errorf("unknown case %q", s)
}

// Slot returns the position of the case inside a gender block. The accusative
// of an animate gender lives in its own slot.
func (c Case) Slot(g Gender) int {
	if c == Accusative && g.Animate() {
		return AnimateAccusative
	}
	return int(c)
}

// Index returns the schema index of the form for case c and gender g.
func Index(c Case, g Gender) int {
	return c.Slot(g) + SlotsPerGender*int(g.Base())
}

// Gender combines gender and number (род и число), with animate variants
// where the accusative depends on animacy.
type Gender int

const (
	Masculine Gender = iota
	Feminine
	Neuter
	Plural
	MasculineAnimate
	PluralAnimate
)

// Genders lists the base genders in schema order.
var Genders = []Gender{Masculine, Feminine, Neuter, Plural}

// AllGenders adds the animate variants to Genders.
var AllGenders = []Gender{Masculine, Feminine, Neuter, Plural, MasculineAnimate, PluralAnimate}

var genderNames = []string{"masculine", "feminine", "neuter", "plural", "masculine-animate", "plural-animate"}

func (g Gender) String() string {
	if g < 0 || int(g) >= len(genderNames) {
		return fmt.Sprintf("Gender(%d)", int(g))
	}
	return genderNames[g]
}

// ParseGender accepts a gender name as returned by String.
func ParseGender(s string) (Gender, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range genderNames {
		if s == name {
			return Gender(i), nil
		}
	}
	return 0, fmt.Errorf("unknown gender %q", s)
}

// Base strips animacy.
func (g Gender) Base() Gender {
	switch g {
	case MasculineAnimate:
		return Masculine
	case PluralAnimate:
		return Plural
	}
	return g
}

// Animate reports whether g is an animate variant.
func (g Gender) Animate() bool {
	return g == MasculineAnimate || g == PluralAnimate
}

// Comparison selects a comparative form.
//
//	Comparative1  краснее
//	Comparative2  покраснее
//	Comparative3  красней
//	Comparative4  покрасней
//	Comparative5  более красно (adverbs only)
type Comparison int

const (
	Comparative1 Comparison = iota
	Comparative2
	Comparative3
	Comparative4
	Comparative5
)

// Comparisons lists every comparison degree.
var Comparisons = []Comparison{Comparative1, Comparative2, Comparative3, Comparative4, Comparative5}

func (c Comparison) String() string {
	return fmt.Sprintf("comparative%d", int(c)+1)
}

// Prefixed reports whether the form takes the "по" prefix.
func (c Comparison) Prefixed() bool {
	return c == Comparative2 || c == Comparative4
}

// Comparability tells whether a word has comparative forms (разряд).
type Comparability int

const (
	Undefined Comparability = iota
	Comparable
	Incomparable
)

func (c Comparability) String() string {
	switch c {
	case Comparable:
		return "comparable"
	case Incomparable:
		return "incomparable"
	}
	return "undefined"
}

// ParseComparability maps "", "any" and "undefined" to Undefined.
func ParseComparability(s string) (Comparability, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any", "undefined":
		return Undefined, nil
	case "comparable":
		return Comparable, nil
	case "incomparable":
		return Incomparable, nil
	}
	return Undefined, fmt.Errorf("unknown comparability %q", s)
}
