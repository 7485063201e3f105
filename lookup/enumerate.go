package lookup

import (
	"iter"
)

// TryAffixForms lazily enumerates every way word could be the base word
// itself or an inflected form obtained by undoing a chain of up to two
// suffixes and/or up to two prefixes. NOSUGGEST is a root-level flag in
// this format (checked later in goodForm against the resolved dictionary
// entry), so allowNosuggest isn't consulted at the affix-stripping stage —
// it's threaded through only so callers don't have to special-case it.
//
// Both suffix- and prefix-stripping are attempted regardless of compound
// position: spec.md's per-position rule isn't "never" at either end, it's
// "needs COMPOUNDPERMITFLAG on the affix" (a BEGIN part's suffix, an END
// part's prefix, and both sides of a MIDDLE part) — goodCompoundAffixPosition
// applies that filter once the candidate Form (and which affix entries it
// actually used) is known, rather than gating the search up front here.
// Grounded on spyll's Lookup.try_affix_forms.
func (e *Engine) TryAffixForms(word string, pos CompoundPos, allowNosuggest bool) iter.Seq[Form] {
	return func(yield func(Form) bool) {
		if !yield(Form{Text: word, stem: word}) {
			return
		}

		for f := range e.desuffix(word, word, false) {
			if !yield(f) {
				return
			}
		}

		for f := range e.deprefix(word, word, false) {
			if !yield(f) {
				return
			}
		}
	}
}

// desuffix peels one suffix off word (checked against text, the form-in-
// progress so repeated stripping composes correctly), then — so long as
// we're not already inside a nested call — tries peeling a second suffix
// off the resulting stem, and tries combining with a prefix if the first
// suffix allows cross-product affixation. Grounded on spyll's desuffix.
func (e *Engine) desuffix(text, stem string, nested bool) iter.Seq[Form] {
	return func(yield func(Form) bool) {
		reversed := reverseString(stem)
		for _, entry := range e.suffixes.WithPrefix(reversed) {
			newStem, ok := entry.Match([]rune(stem))
			if !ok {
				continue
			}
			form := Form{Text: text, stem: string(newStem), Suffix: entry}
			if !yield(form) {
				return
			}

			if nested {
				continue
			}

			for inner := range e.desuffix(text, string(newStem), true) {
				inner.Suffix2 = inner.Suffix
				inner.Suffix = entry
				if !yield(inner) {
					return
				}
			}

			if entry.CrossProduct {
				for pf := range e.deprefix(text, string(newStem), true) {
					pf.Suffix = entry
					if !yield(pf) {
						return
					}
				}
			}
		}
	}
}

// deprefix mirrors desuffix for the front of the word.
func (e *Engine) deprefix(text, stem string, nested bool) iter.Seq[Form] {
	return func(yield func(Form) bool) {
		for _, entry := range e.prefixes.WithPrefix(stem) {
			newStem, ok := entry.Match([]rune(stem))
			if !ok {
				continue
			}
			form := Form{Text: text, stem: string(newStem), Prefix: entry}
			if !yield(form) {
				return
			}

			if nested {
				continue
			}

			for inner := range e.deprefix(text, string(newStem), true) {
				inner.Prefix2 = inner.Prefix
				inner.Prefix = entry
				if !yield(inner) {
					return
				}
			}

			if entry.CrossProduct {
				for sf := range e.desuffix(text, string(newStem), true) {
					sf.Prefix = entry
					if !yield(sf) {
						return
					}
				}
			}
		}
	}
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
