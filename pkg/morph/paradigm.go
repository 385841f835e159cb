package morph

import "github.com/bastiangx/lingvo/pkg/grammar"

// Paradigm is the full table of an adjective's forms, keyed by the String
// names of the grammar categories. Missing forms are left out.
type Paradigm struct {
	Word          string                       `json:"word" msgpack:"word"`
	Key           string                       `json:"key" msgpack:"key"`
	Inexact       bool                         `json:"inexact" msgpack:"inexact"`
	Comparability string                       `json:"comparability" msgpack:"comparability"`
	Forms         map[string]map[string]string `json:"forms,omitempty" msgpack:"forms,omitempty"`
	Short         map[string]string            `json:"short,omitempty" msgpack:"short,omitempty"`
	Comparatives  map[string]string            `json:"comparatives,omitempty" msgpack:"comparatives,omitempty"`
}

// Paradigm collects every form of the adjective.
func (a *Adjective) Paradigm() Paradigm {
	p := Paradigm{
		Word:          a.Word,
		Key:           a.Key,
		Inexact:       a.Inexact,
		Comparability: a.Comparability().String(),
		Forms:         make(map[string]map[string]string),
		Short:         make(map[string]string),
		Comparatives:  make(map[string]string),
	}

	for _, g := range grammar.AllGenders {
		cases := make(map[string]string)
		for _, c := range grammar.Cases {
			if f := a.Form(c, g); f != "" {
				cases[c.String()] = f
			}
		}
		if len(cases) > 0 {
			p.Forms[g.String()] = cases
		}
	}
	for _, g := range grammar.Genders {
		if f := a.Short(g); f != "" {
			p.Short[g.String()] = f
		}
	}
	for _, c := range grammar.Comparisons {
		if f := a.Comparative(c); f != "" {
			p.Comparatives[c.String()] = f
		}
	}
	return p
}

// Paradigm returns the comparatives of the adverb. Adverbs have no case
// forms.
func (a *Adverb) Paradigm() Paradigm {
	p := Paradigm{
		Word:          a.Word,
		Key:           a.Key,
		Inexact:       a.Inexact,
		Comparability: a.Comparability().String(),
		Comparatives:  make(map[string]string),
	}
	for _, c := range grammar.Comparisons {
		if f := a.Comparative(c); f != "" {
			p.Comparatives[c.String()] = f
		}
	}
	return p
}
