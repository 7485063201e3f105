package lookup

import (
	"iter"

	"github.com/az-ai-labs/gohunspell/capitalize"
)

// wordForms enumerates every accepted analysis of variant at the given
// compound position: every affix-stripped candidate that resolves to a
// dictionary root whose flags actually permit the analysis. Grounded on
// spyll's Lookup.word_forms.
//
// A FORBIDDENWORD-flagged stem halts the entire enumeration immediately
// (not just that candidate) — Hunspell treats the presence of a forbidden
// stem as an authoritative veto over any other analysis reaching the same
// stem, so a bare return (rather than continue) is deliberate here.
func (e *Engine) wordForms(variant string, captype capitalize.Type, pos CompoundPos, allowNosuggest, withForbidden bool) iter.Seq[Form] {
	return func(yield func(Form) bool) {
		for form := range e.TryAffixForms(variant, pos, allowNosuggest) {
			if pos != NotCompound || !form.IsBase() {
				if !withForbidden && e.aff.ForbiddenWord != "" && e.dic.HasFlag(form.Stem(), e.aff.ForbiddenWord, false) {
					return
				}
			}

			found := false
			for _, hom := range e.dic.Homonyms(form.Stem(), false) {
				candidate := form
				candidate.Root = hom
				if e.goodForm(candidate, captype, pos, allowNosuggest, withForbidden) {
					found = true
					if !yield(candidate) {
						return
					}
				}
			}

			// A FORCEUCASE stem can open a sentence-like compound in its
			// plain lowercase form, even though capitalization==false would
			// otherwise have suppressed checking anything but the literal
			// query string.
			if e.aff.ForceUCase != "" && captype == capitalize.Init && pos == Begin {
				lowered := lowerASCIIAware(form.Stem())
				for _, hom := range e.dic.Homonyms(lowered, false) {
					candidate := form.withStem(lowered)
					candidate.Root = hom
					if e.goodForm(candidate, captype, pos, allowNosuggest, withForbidden) {
						found = true
						if !yield(candidate) {
							return
						}
					}
				}
			}

			if !found && pos == NotCompound {
				keys := []string{form.Stem()}
				if e.collation.SharpS {
					keys = append(keys, capitalize.SharpSVariants(form.Stem())...)
				}
				for _, key := range keys {
					for _, hom := range e.dic.Homonyms(key, true) {
						candidate := form
						candidate.Root = hom
						if e.goodFormCaseInsensitive(candidate, captype, pos, allowNosuggest, withForbidden) {
							if !yield(candidate) {
								return
							}
						}
					}
				}
			}
		}
	}
}

func lowerASCIIAware(s string) string {
	r := []rune(s)
	for i, c := range r {
		if c >= 'A' && c <= 'Z' {
			r[i] = c + ('a' - 'A')
		}
	}
	return string(r)
}
