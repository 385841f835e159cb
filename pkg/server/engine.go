package server

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bastiangx/lingvo/internal/utils"
	"github.com/bastiangx/lingvo/pkg/config"
	"github.com/bastiangx/lingvo/pkg/grammar"
	"github.com/bastiangx/lingvo/pkg/morph"
	"github.com/bastiangx/lingvo/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Lookup modes.
const (
	ModeOne     = "one"
	ModeSimilar = "similar"
	ModeAll     = "all"
)

const defaultLimit = 10

var (
	ErrInvalidWord = errors.New("invalid word")
	ErrUnknownKind = errors.New("unknown word kind")
	ErrUnknownMode = errors.New("unknown lookup mode")
	ErrNoAdverbs   = errors.New("adverb dictionary not loaded")
)

// Engine answers lookups over the loaded dictionaries. It is read-only after
// construction and shared by the IPC and HTTP front ends.
type Engine struct {
	adjectives *morph.Adjectives
	adverbs    *morph.Adverbs
	completer  *suggest.Completer
	limits     config.ServerConfig
}

// NewEngine indexes the dictionaries for completion. adverbs may be nil, in
// which case adverbs are only wrapped, never looked up.
func NewEngine(adjectives *morph.Adjectives, adverbs *morph.Adverbs, limits config.ServerConfig) *Engine {
	completer := suggest.NewCompleter(limits.CacheSize)
	completer.AddAll(suggest.KindAdjective, func(yield func(string) bool) {
		for a := range adjectives.GetAll() {
			if !yield(a.Key) {
				return
			}
		}
	})
	if adverbs != nil {
		completer.AddAll(suggest.KindAdverb, func(yield func(string) bool) {
			for a := range adverbs.GetAll() {
				if !yield(a.Key) {
					return
				}
			}
		})
	}

	return &Engine{
		adjectives: adjectives,
		adverbs:    adverbs,
		completer:  completer,
		limits:     limits,
	}
}

// LoadEngine opens the dictionaries named in cfg.
func LoadEngine(cfg *config.Config) (*Engine, error) {
	resolver, err := utils.NewPathResolver()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve paths: %w", err)
	}

	adjPath := resolver.ResolveDictPath(cfg.Dict.Adjectives)
	adjectives, err := morph.LoadAdjectives(adjPath, cfg.Dict.Encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load adjectives: %w", err)
	}

	var adverbs *morph.Adverbs
	if cfg.Dict.Adverbs != "" {
		advPath := resolver.ResolveDictPath(cfg.Dict.Adverbs)
		adverbs, err = morph.LoadAdverbs(advPath, cfg.Dict.Encoding)
		if err != nil {
			log.Warnf("Adverb dictionary unavailable, continuing without it: %v", err)
			adverbs = nil
		}
	}
	return NewEngine(adjectives, adverbs, cfg.Server), nil
}

func (e *Engine) limit(requested int) int {
	if requested <= 0 {
		requested = defaultLimit
	}
	if e.limits.MaxLimit > 0 && requested > e.limits.MaxLimit {
		return e.limits.MaxLimit
	}
	return requested
}

func (e *Engine) checkWord(word string) error {
	if !utils.IsValidWord(word, e.limits.MaxWordLen) {
		return fmt.Errorf("%w: %q", ErrInvalidWord, word)
	}
	return nil
}

// Lookup runs one query. kind is suggest.KindAdjective (also the default
// for "") or suggest.KindAdverb; mode is one of the Mode constants. A word
// that is not found yields an empty slice and no error.
func (e *Engine) Lookup(kind, mode, word, comparability string, limit int) ([]morph.Paradigm, error) {
	if err := e.checkWord(word); err != nil {
		return nil, err
	}
	cmp, err := grammar.ParseComparability(comparability)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(kind) {
	case "", suggest.KindAdjective:
		return e.lookupAdjective(mode, word, cmp, e.limit(limit))
	case suggest.KindAdverb:
		return e.lookupAdverb(mode, word, cmp, e.limit(limit))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func (e *Engine) lookupAdjective(mode, word string, cmp grammar.Comparability, limit int) ([]morph.Paradigm, error) {
	out := []morph.Paradigm{}
	switch mode {
	case "", ModeOne:
		if a := e.adjectives.FindOne(word, cmp); a != nil {
			out = append(out, a.Paradigm())
		}
	case ModeSimilar:
		if a := e.adjectives.FindSimilar(word, cmp); a != nil {
			out = append(out, a.Paradigm())
		}
	case ModeAll:
		for a := range e.adjectives.FindAll(word) {
			if len(out) == limit {
				break
			}
			if cmp == grammar.Undefined || a.Comparability() == cmp {
				out = append(out, a.Paradigm())
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return out, nil
}

func (e *Engine) lookupAdverb(mode, word string, cmp grammar.Comparability, limit int) ([]morph.Paradigm, error) {
	out := []morph.Paradigm{}
	if e.adverbs == nil {
		if mode != "" && mode != ModeOne {
			return nil, ErrNoAdverbs
		}
		if a := morph.AdverbOf(word); cmp == grammar.Undefined || a.Comparability() == cmp {
			out = append(out, a.Paradigm())
		}
		return out, nil
	}

	switch mode {
	case "", ModeOne:
		if a := e.adverbs.FindOne(word, cmp); a != nil {
			out = append(out, a.Paradigm())
		}
	case ModeSimilar:
		if a := e.adverbs.FindSimilar(word, cmp); a != nil {
			out = append(out, a.Paradigm())
		}
	case ModeAll:
		for a := range e.adverbs.FindAll(word) {
			if len(out) == limit {
				break
			}
			if cmp == grammar.Undefined || a.Comparability() == cmp {
				out = append(out, a.Paradigm())
			}
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
	return out, nil
}

// Complete returns headwords starting with prefix.
func (e *Engine) Complete(prefix string, limit int) ([]suggest.Suggestion, error) {
	if err := e.checkWord(prefix); err != nil {
		return nil, err
	}
	out := e.completer.Complete(prefix, e.limit(limit))
	if out == nil {
		out = []suggest.Suggestion{}
	}
	return out, nil
}

// Stats reports dictionary sizes and completion cache counters.
func (e *Engine) Stats() map[string]int {
	stats := e.completer.Stats()
	stats["adjectives"] = e.adjectives.Len()
	stats["schemas"] = e.adjectives.Schemas()
	if e.adverbs != nil {
		stats["adverbs"] = e.adverbs.Len()
	}
	return stats
}
