package lookup

import (
	"fmt"
	"iter"
	"strings"

	gaff "github.com/az-ai-labs/gohunspell/aff"
	"github.com/az-ai-labs/gohunspell/capitalize"
	"github.com/az-ai-labs/gohunspell/dic"
	"github.com/az-ai-labs/gohunspell/trie"
)

// Engine is a fully compiled LOOKUP engine for one language: the affix
// indices, compound rules/patterns, break patterns and collation rules all
// precomputed from an Aff+Dic pair. Grounded on spyll's Lookup class
// (__init__/compile).
type Engine struct {
	aff *gaff.Aff
	dic *dic.Dic

	suffixes *trie.Index[*gaff.AffixEntry] // keyed by reversed add string
	prefixes *trie.Index[*gaff.AffixEntry] // keyed by add string

	breakPatterns []breakPattern
	collation     capitalize.Collation
}

// New compiles an Engine from a and d. The Aff and Dic must not be mutated
// afterwards (spec.md §5: safe for concurrent reads because read-only after
// construction).
func New(a *gaff.Aff, d *dic.Dic) (*Engine, error) {
	e := &Engine{aff: a, dic: d}

	e.suffixes = trie.New[*gaff.AffixEntry]()
	for _, s := range a.Suffixes {
		e.suffixes.Put(s.ReverseKey(), s)
	}
	if err := e.suffixes.Build(); err != nil {
		return nil, fmt.Errorf("lookup: suffix index: %w", err)
	}

	e.prefixes = trie.New[*gaff.AffixEntry]()
	for _, p := range a.Prefixes {
		e.prefixes.Put(p.Add, p)
	}
	if err := e.prefixes.Build(); err != nil {
		return nil, fmt.Errorf("lookup: prefix index: %w", err)
	}

	patterns, err := compileBreakPatterns(a.Break)
	if err != nil {
		return nil, fmt.Errorf("lookup: break patterns: %w", err)
	}
	e.breakPatterns = patterns

	e.collation = capitalize.Collation{SharpS: a.CheckSharps, DotlessI: a.IsTurkic()}

	return e, nil
}

// Options controls Check's behavior, mirroring spec.md §6's external
// interface (capitalization/allow_nosuggest/allow_break). Compound analysis
// is always on; there is no option to switch it off.
type Options struct {
	Capitalization bool
	AllowNosuggest bool
	AllowBreak     bool
}

// DefaultOptions matches spec.md §6's documented defaults.
func DefaultOptions() Options {
	return Options{Capitalization: true, AllowNosuggest: true, AllowBreak: true}
}

// Check reports whether word is accepted by this engine: found directly (as
// a single word or a compound), or found after applying ICONV/IGNORE and/or
// splitting it at BREAK patterns. Grounded on spyll's Lookup.__call__.
func (e *Engine) Check(word string, opts Options) bool {
	if e.aff.ForbiddenWord != "" && e.dic.HasFlag(word, e.aff.ForbiddenWord, true) {
		return false
	}

	if e.aff.Iconv != nil {
		word = e.aff.Iconv.Apply(word)
	}
	if e.aff.Ignore != "" {
		word = stripRunes(word, e.aff.Ignore)
	}

	if isAllNumeric(word) {
		return true
	}

	if e.isFound(word, opts) {
		return true
	}

	if !opts.AllowBreak {
		return false
	}

	for parts := range e.tryBreak(word, 0) {
		allFound := true
		for _, part := range parts {
			if part == "" {
				continue
			}
			if !e.isFound(part, opts) {
				allFound = false
				break
			}
		}
		if allFound {
			return true
		}
	}
	return false
}

// isFound reports whether variant resolves to any word-form or compound
// analysis at all — the first item pulled from Analyze, then stopped.
func (e *Engine) isFound(variant string, opts Options) bool {
	for range e.Analyze(variant, opts) {
		return true
	}
	return false
}

// Analyze lazily enumerates every accepted analysis of word (single-word
// Forms wrapped as a one-element Compound, plus any genuine multi-part
// compounds). It's a pull-based iter.Seq so callers (isFound chief among
// them) can stop after the first hit without the engine doing any more work
// than necessary — the generator-style laziness spec.md §9 calls for.
// Grounded on spyll's Lookup.analyze.
func (e *Engine) Analyze(word string, opts Options) iter.Seq[Compound] {
	return func(yield func(Compound) bool) {
		analyzeVariant := func(variant string, captype capitalize.Type) bool {
			for f := range e.wordForms(variant, captype, NotCompound, opts.AllowNosuggest, false) {
				if !yield(Compound{f}) {
					return false
				}
			}
			for c := range e.compoundParts(variant, captype, opts.AllowNosuggest) {
				if !yield(c) {
					return false
				}
			}
			return true
		}

		if opts.Capitalization {
			captype, variants := e.collation.Variants(word)
			for _, v := range variants {
				if !analyzeVariant(v, captype) {
					return
				}
			}
			return
		}
		analyzeVariant(word, capitalize.Guess(word))
	}
}

func isAllNumeric(word string) bool {
	if word == "" {
		return false
	}
	dotSeen := false
	for i, r := range word {
		if r == '.' {
			if dotSeen || i == 0 || i == len(word)-1 {
				return false
			}
			dotSeen = true
			continue
		}
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func stripRunes(word, cut string) string {
	if cut == "" {
		return word
	}
	drop := make(map[rune]bool, len(cut))
	for _, r := range cut {
		drop[r] = true
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if !drop[r] {
			b.WriteRune(r)
		}
	}
	return b.String()
}
