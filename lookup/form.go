// Package lookup is the LOOKUP engine itself: capitalization-aware affix
// stripping, compound splitting, and the break engine that together decide
// whether a word is one the dictionary would accept. Grounded on
// spyll.hunspell.algo.lookup in full.
package lookup

import (
	"github.com/az-ai-labs/gohunspell/aff"
	"github.com/az-ai-labs/gohunspell/dic"
	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// CompoundPos names a compound part's position, per spec.md §4.5/§4.6.
type CompoundPos int

const (
	// NotCompound marks a form that isn't part of a compound at all.
	NotCompound CompoundPos = iota
	Begin
	Middle
	End
)

// Form is one candidate analysis of a word: the original text, the stem it
// reduces to, and the (up to two layers of) prefix/suffix that got it
// there. Grounded on spyll's algo.lookup.WordForm.
type Form struct {
	Text string
	stem string

	Prefix, Prefix2 *aff.AffixEntry
	Suffix, Suffix2 *aff.AffixEntry

	Root *dic.Word
}

// Stem returns the form's stem (the Text after the affixes were undone).
func (f Form) Stem() string { return f.stem }

// IsBase reports whether this form carries no prefix or suffix at all —
// i.e. it's the word exactly as typed, unmodified.
func (f Form) IsBase() bool { return f.Prefix == nil && f.Suffix == nil }

// Flags returns the union of the root dictionary entry's flags with any
// flags the applied prefix/suffix themselves carry.
func (f Form) Flags() gflag.Set {
	var flags gflag.Set
	if f.Root != nil {
		flags = f.Root.Flags
	} else {
		flags = gflag.Set{}
	}
	if f.Prefix != nil {
		flags = flags.Union(f.Prefix.Flags)
	}
	if f.Suffix != nil {
		flags = flags.Union(f.Suffix.Flags)
	}
	return flags
}

// HasFlag satisfies aff.CompoundPart.
func (f Form) HasFlag(fl gflag.Flag) bool { return f.Flags().Has(fl) }

// AllAffixes returns every non-nil affix applied to this form, in
// prefix2/prefix/suffix/suffix2 order (inner prefix, outer prefix, outer
// suffix, inner suffix), matching spyll's WordForm.all_affixes.
func (f Form) AllAffixes() []*aff.AffixEntry {
	var out []*aff.AffixEntry
	for _, a := range []*aff.AffixEntry{f.Prefix2, f.Prefix, f.Suffix, f.Suffix2} {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// withStem returns a copy of f with a new stem; root and affixes are kept.
// Mirrors spyll's WordForm.replace.
func (f Form) withStem(stem string) Form {
	f2 := f
	f2.stem = stem
	return f2
}

// Compound is an ordered sequence of Forms, one per compound part.
type Compound []Form
