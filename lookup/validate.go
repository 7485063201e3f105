package lookup

import (
	"github.com/az-ai-labs/gohunspell/capitalize"
	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// goodForm reports whether a candidate Form (already matched against a
// dictionary root) is actually an acceptable analysis: its flags are
// consistent with the affixes applied, NEEDAFFIX/CIRCUMFIX/compound-position
// constraints hold, and NOSUGGEST is respected. Grounded on spyll's
// Lookup.good_form.
func (e *Engine) goodForm(f Form, captype capitalize.Type, pos CompoundPos, allowNosuggest, withForbidden bool) bool {
	if f.Root == nil {
		return false
	}
	flags := f.Root.Flags

	if !withForbidden && e.aff.ForbiddenWord != "" && flags.Has(e.aff.ForbiddenWord) {
		return false
	}
	if !allowNosuggest && e.aff.NoSuggest != "" && flags.Has(e.aff.NoSuggest) {
		return false
	}

	// Every applied affix's flag must actually be listed on the root entry.
	for _, a := range f.AllAffixes() {
		if !flags.Has(a.Flag) {
			return false
		}
	}

	// NEEDAFFIX: a root carrying this flag can never stand on its own.
	if e.aff.NeedAffix != "" && flags.Has(e.aff.NeedAffix) && f.IsBase() {
		return false
	}
	// An affix itself can be marked NEEDAFFIX, meaning it must not be the
	// only affix applied — it exists purely so another affix can combine
	// with it.
	if e.aff.NeedAffix != "" {
		if f.Suffix != nil && f.Suffix.Flags.Has(e.aff.NeedAffix) && f.Suffix2 == nil && f.Prefix == nil {
			return false
		}
		if f.Prefix != nil && f.Prefix.Flags.Has(e.aff.NeedAffix) && f.Prefix2 == nil && f.Suffix == nil {
			return false
		}
	}

	// CIRCUMFIX: a circumfix prefix and circumfix suffix must appear
	// together or not at all — strict bi-implication.
	if e.aff.Circumfix != "" {
		prefixHas := f.Prefix != nil && f.Prefix.Flags.Has(e.aff.Circumfix)
		suffixHas := f.Suffix != nil && f.Suffix.Flags.Has(e.aff.Circumfix)
		if prefixHas != suffixHas {
			return false
		}
	}

	if !goodCompoundPosition(e, flags, pos) {
		return false
	}
	if !goodCompoundAffixPosition(e, f, pos) {
		return false
	}

	if !goodCapitalization(e, f, flags, captype) {
		return false
	}

	return true
}

// goodFormCaseInsensitive is goodForm for a candidate reached through the
// case-insensitive homonym fallback (spec.md §4.6): every other constraint is
// identical, but the capitalization check is the stricter one spec.md §4.4
// step 2 describes for that path, since a case-insensitive match is only
// trustworthy when the query was fully uppercase or the root itself is
// lowercase — otherwise two differently-capitalized unrelated words could
// collide under folding. Grounded on spyll's good_form(check_cap=True).
func (e *Engine) goodFormCaseInsensitive(f Form, captype capitalize.Type, pos CompoundPos, allowNosuggest, withForbidden bool) bool {
	if f.Root == nil {
		return false
	}
	flags := f.Root.Flags

	if !withForbidden && e.aff.ForbiddenWord != "" && flags.Has(e.aff.ForbiddenWord) {
		return false
	}
	if !allowNosuggest && e.aff.NoSuggest != "" && flags.Has(e.aff.NoSuggest) {
		return false
	}

	for _, a := range f.AllAffixes() {
		if !flags.Has(a.Flag) {
			return false
		}
	}

	if e.aff.NeedAffix != "" && flags.Has(e.aff.NeedAffix) && f.IsBase() {
		return false
	}
	if e.aff.NeedAffix != "" {
		if f.Suffix != nil && f.Suffix.Flags.Has(e.aff.NeedAffix) && f.Suffix2 == nil && f.Prefix == nil {
			return false
		}
		if f.Prefix != nil && f.Prefix.Flags.Has(e.aff.NeedAffix) && f.Prefix2 == nil && f.Suffix == nil {
			return false
		}
	}

	if e.aff.Circumfix != "" {
		prefixHas := f.Prefix != nil && f.Prefix.Flags.Has(e.aff.Circumfix)
		suffixHas := f.Suffix != nil && f.Suffix.Flags.Has(e.aff.Circumfix)
		if prefixHas != suffixHas {
			return false
		}
	}

	if !goodCompoundPosition(e, flags, pos) {
		return false
	}
	if !goodCompoundAffixPosition(e, f, pos) {
		return false
	}

	return goodCapitalizationFallback(e, f, flags, captype)
}

// goodCapitalizationFallback is the check_cap=True capitalization rule:
// CHECKSHARPS roots bypass it entirely (a ß/ss fold is definitionally a case
// match for that dictionary), otherwise KEEPCASE still forbids any
// refolding, and otherwise the fold is only trusted when the query was
// ALL-caps or the root is itself all-lowercase.
func goodCapitalizationFallback(e *Engine, f Form, flags gflag.Set, captype capitalize.Type) bool {
	if e.aff.CheckSharps {
		return true
	}
	if e.aff.KeepCase != "" && flags.Has(e.aff.KeepCase) {
		return false
	}
	rootCap := capitalize.Guess(f.Root.Stem)
	return captype == capitalize.All || rootCap == capitalize.No
}

// goodCompoundPosition enforces spec.md §4.5/§4.6: a word whose root is
// marked ONLYINCOMPOUND can't stand alone, and a word being slotted into a
// compound position needs the matching position flag (or the blanket
// COMPOUNDFLAG).
func goodCompoundPosition(e *Engine, flags gflag.Set, pos CompoundPos) bool {
	if pos == NotCompound {
		return e.aff.OnlyInCompound == "" || !flags.Has(e.aff.OnlyInCompound)
	}

	if e.aff.CompoundFlag != "" && flags.Has(e.aff.CompoundFlag) {
		return true
	}
	switch pos {
	case Begin:
		return e.aff.CompoundBegin != "" && flags.Has(e.aff.CompoundBegin)
	case Middle:
		return e.aff.CompoundMiddle != "" && flags.Has(e.aff.CompoundMiddle)
	case End:
		return e.aff.CompoundEnd != "" && flags.Has(e.aff.CompoundEnd)
	default:
		return false
	}
}

// goodCompoundAffixPosition enforces spec.md's per-position affix rules for
// compound parts: a BEGIN part's prefix is unrestricted but its suffix (and
// any second-level suffix) needs COMPOUNDPERMITFLAG, an END part's suffix is
// unrestricted but its prefix needs it, and a MIDDLE part needs it on both
// sides. Checked against the affix entry's own flags (not the root's), since
// this is a property of the affix rule itself. Grounded on spyll's
// try_affix_forms, which computes suffix_allowed/prefix_allowed and their
// required_flags from compoundpos and aff.COMPOUNDPERMITFLAG the same way.
func goodCompoundAffixPosition(e *Engine, f Form, pos CompoundPos) bool {
	if pos == NotCompound {
		return true
	}
	permit := e.aff.CompoundPermitFlag

	if f.Suffix != nil && pos != End {
		if permit == "" || !f.Suffix.Flags.Has(permit) {
			return false
		}
	}
	if f.Suffix2 != nil && pos != End {
		if permit == "" || !f.Suffix2.Flags.Has(permit) {
			return false
		}
	}
	if f.Prefix != nil && pos != Begin {
		if permit == "" || !f.Prefix.Flags.Has(permit) {
			return false
		}
	}
	if f.Prefix2 != nil && pos != Begin {
		if permit == "" || !f.Prefix2.Flags.Has(permit) {
			return false
		}
	}
	return true
}

// goodCapitalization enforces KEEPCASE (the root's case is the only case
// this word may appear in) and lets FORCEUCASE be handled separately by
// wordForms, which needs to special-case it (an all-lowercase dictionary
// entry that FORCEUCASE marks can still surface as the Init-case variant
// of a sentence-initial word).
func goodCapitalization(e *Engine, f Form, flags gflag.Set, captype capitalize.Type) bool {
	if e.aff.KeepCase == "" || !flags.Has(e.aff.KeepCase) {
		return true
	}
	// Hunspell's own source carries conflicting comments on this
	// interaction; observed behaviour is that CHECKSHARPS takes priority,
	// since KEEPCASE on a sharp-s root exists to opt into ß/ss variants,
	// not to forbid them.
	if e.aff.CheckSharps {
		return true
	}
	return f.Text == f.Root.Stem
}
