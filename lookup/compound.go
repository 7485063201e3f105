package lookup

import (
	"iter"
	"strings"
	"unicode"

	"github.com/az-ai-labs/gohunspell/aff"
	"github.com/az-ai-labs/gohunspell/capitalize"
	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// compoundParts enumerates every way variant splits into a compound this
// Aff accepts, dispatching to flag-based or rule-based splitting depending
// on which compounding mechanism the .aff file configured — Hunspell
// supports both at once, but most dictionaries use only one. Grounded on
// spyll's Lookup.compound_parts.
func (e *Engine) compoundParts(variant string, captype capitalize.Type, allowNosuggest bool) iter.Seq[Compound] {
	return func(yield func(Compound) bool) {
		if len(e.aff.CompoundRules) > 0 {
			for c := range e.compoundPartsByRules(variant, captype, allowNosuggest) {
				if !yield(c) {
					return
				}
			}
		}
		if e.aff.CompoundFlag != "" || e.aff.CompoundBegin != "" {
			for c := range e.compoundPartsByFlags(variant, captype, allowNosuggest) {
				if !yield(c) {
					return
				}
			}
		}
	}
}

// hasForbiddenForm reports whether any affix-stripped form of the whole
// input resolves to a FORBIDDENWORD-flagged root. withForbidden=true on the
// wordForms call disables its own forbidden short-circuit so the forbidden
// root actually gets yielded here instead of silently halting enumeration.
func (e *Engine) hasForbiddenForm(variant string, captype capitalize.Type, allowNosuggest bool) bool {
	if e.aff.ForbiddenWord == "" {
		return false
	}
	for f := range e.wordForms(variant, captype, NotCompound, allowNosuggest, true) {
		if f.Root != nil && f.Root.Flags.Has(e.aff.ForbiddenWord) {
			return true
		}
	}
	return false
}

func (e *Engine) compoundMinLen() int {
	if e.aff.CompoundMin <= 0 {
		return 3
	}
	return e.aff.CompoundMin
}

// compoundPartsByFlags splits variant recursively at every rune boundary
// that leaves both sides at least CompoundMin runes long, accepting a split
// when the left part is a valid word form tagged for its position
// (BEGIN/MIDDLE) and the remainder either forms a valid END part or splits
// further. Grounded on spyll's Lookup.compound_parts_by_flags.
func (e *Engine) compoundPartsByFlags(variant string, captype capitalize.Type, allowNosuggest bool) iter.Seq[Compound] {
	return func(yield func(Compound) bool) {
		// Before attempting any split, reject outright if the whole input
		// resolves to a FORBIDDENWORD-flagged form — FORBIDDENWORD blocks
		// decompounding paths too, not just the plain whole-word check.
		if e.hasForbiddenForm(variant, captype, allowNosuggest) {
			return
		}

		minLen := e.compoundMinLen()
		maxParts := e.aff.CompoundWordMax

		var rec func(remaining []rune, pos CompoundPos, acc Compound, depth int) bool
		rec = func(remaining []rune, pos CompoundPos, acc Compound, depth int) bool {
			if maxParts > 0 && depth >= maxParts {
				return true
			}
			for i := minLen; i <= len(remaining)-minLen; i++ {
				left := string(remaining[:i])
				rightRunes := remaining[i:]
				right := string(rightRunes)

				lefts := []string{left}
				// SIMPLIFIEDTRIPLE: a compound boundary may have dropped a
				// tripled letter (e.g. "Schiff" + "fahrt" simplifying to
				// "Schiffahrt"), so when the letter straddling the split
				// matches, also try the left part with it duplicated back
				// in. Only the left part is tried, matching the reference
				// implementation's limitation (spec.md §9).
				if e.aff.SimplifiedTriple && i > 0 && len(rightRunes) > 0 && remaining[i-1] == rightRunes[0] {
					lefts = append(lefts, left+string(rightRunes[0]))
				}

				for _, leftCandidate := range lefts {
					for lf := range e.wordForms(leftCandidate, captype, pos, allowNosuggest, false) {
						if leftCandidate != left {
							lf.Text = left
						}
						newAcc := appendForm(acc, lf)

						for rf := range e.wordForms(right, captype, End, allowNosuggest, false) {
							full := appendForm(newAcc, rf)
							if !e.badCompound(full, captype) {
								if !yield(full) {
									return false
								}
							}
						}

						if !rec(rightRunes, Middle, newAcc, depth+1) {
							return false
						}
					}
				}
			}
			return true
		}

		rec([]rune(variant), Begin, nil, 1)
	}
}

// compoundPartsByRules mirrors compoundPartsByFlags but gates each split on
// whether the accumulated sequence of part flag-sets is still a possible
// (or complete) match against at least one COMPOUNDRULE. Grounded on
// spyll's Lookup.compound_parts_by_rules.
func (e *Engine) compoundPartsByRules(variant string, captype capitalize.Type, allowNosuggest bool) iter.Seq[Compound] {
	return func(yield func(Compound) bool) {
		if e.hasForbiddenForm(variant, captype, allowNosuggest) {
			return
		}

		minLen := e.compoundMinLen()

		var rec func(remaining []rune, acc Compound, flagSets []gflag.Set) bool
		rec = func(remaining []rune, acc Compound, flagSets []gflag.Set) bool {
			for i := minLen; i <= len(remaining)-minLen; i++ {
				left := string(remaining[:i])
				rightRunes := remaining[i:]
				right := string(rightRunes)

				for lf := range e.wordForms(left, captype, NotCompound, allowNosuggest, false) {
					candidateSets := append(append([]gflag.Set{}, flagSets...), lf.Flags())
					if !anyRulePartiallyMatches(e.aff.CompoundRules, candidateSets) {
						continue
					}
					newAcc := appendForm(acc, lf)

					for rf := range e.wordForms(right, captype, NotCompound, allowNosuggest, false) {
						fullSets := append(append([]gflag.Set{}, candidateSets...), rf.Flags())
						if anyRuleFullyMatches(e.aff.CompoundRules, fullSets) {
							full := appendForm(newAcc, rf)
							if !e.badCompound(full, captype) {
								if !yield(full) {
									return false
								}
							}
						}
					}

					if !rec(rightRunes, newAcc, candidateSets) {
						return false
					}
				}
			}
			return true
		}

		rec([]rune(variant), nil, nil)
	}
}

func appendForm(acc Compound, f Form) Compound {
	out := make(Compound, len(acc)+1)
	copy(out, acc)
	out[len(acc)] = f
	return out
}

func anyRulePartiallyMatches(rules []*aff.CompoundRule, flagSets []gflag.Set) bool {
	for _, r := range rules {
		if r.PartialMatch(flagSets) {
			return true
		}
	}
	return false
}

func anyRuleFullyMatches(rules []*aff.CompoundRule, flagSets []gflag.Set) bool {
	for _, r := range rules {
		if r.FullMatch(flagSets) {
			return true
		}
	}
	return false
}

// badCompound rejects an otherwise-matched compound split that violates one
// of the CHECKCOMPOUND* integrity rules, COMPOUNDFORBIDFLAG, or FORCEUCASE.
// Grounded on spyll's Lookup.bad_compound.
func (e *Engine) badCompound(c Compound, captype capitalize.Type) bool {
	if e.aff.CompoundForbidFlag != "" {
		for _, part := range c {
			if part.HasFlag(e.aff.CompoundForbidFlag) {
				return true
			}
		}
	}

	if e.aff.ForceUCase != "" && len(c) > 0 && captype != capitalize.All && captype != capitalize.Init {
		last := c[len(c)-1]
		if last.HasFlag(e.aff.ForceUCase) {
			return true
		}
	}

	for i := 0; i+1 < len(c); i++ {
		left, right := c[i], c[i+1]

		// Boundary-space test: if inserting a literal space at this split
		// point would itself resolve to a recognized word form, the two
		// parts are really one dictionary entry that happens to contain a
		// space, not a genuine compound — reject unconditionally, not just
		// under a CHECKCOMPOUND* switch. Grounded on spyll's bad_compound,
		// which runs this check for every split regardless of configuration.
		for range e.wordForms(left.Text+" "+right.Text, captype, NotCompound, true, false) {
			return true
		}

		if e.aff.CheckCompoundDup && left.Stem() == right.Stem() {
			return true
		}

		if e.aff.CheckCompoundTriple && hasTripleAtBoundary(left.Stem(), right.Stem()) {
			return true
		}

		if e.aff.CheckCompoundCase && hasCaseClashAtBoundary(left.Stem(), right.Stem()) {
			return true
		}

		if e.aff.CheckCompoundRep && e.repCreatesRealWord(left.Stem(), right.Stem()) {
			return true
		}

		if e.aff.CheckCompoundPattern {
			for _, p := range e.aff.CompoundPatterns {
				if p.Match(left, right) {
					return true
				}
			}
		}
	}

	return false
}

func hasTripleAtBoundary(left, right string) bool {
	lr := []rune(left)
	rr := []rune(right)
	if len(lr) < 2 || len(rr) < 1 {
		return false
	}
	a, b, c := lr[len(lr)-2], lr[len(lr)-1], rr[0]
	return a == b && b == c
}

func hasCaseClashAtBoundary(left, right string) bool {
	lr := []rune(left)
	rr := []rune(right)
	if len(lr) == 0 || len(rr) == 0 {
		return false
	}
	a, b := lr[len(lr)-1], rr[0]
	return unicode.IsUpper(a) && unicode.IsUpper(b)
}

// repCreatesRealWord reports whether applying any REP substitution across
// the left/right stem boundary produces a sequence that is itself a known
// word — Hunspell's CHECKCOMPOUNDREP heuristic for catching compounds that
// are really just a typo of a single word (e.g. "foobar" when "REP o a"
// turns it into "faobar" and "faobar" is a real single word, meaning "foobar" as
// typed is probably the single word missing its typo correction, not a
// genuine compound).
func (e *Engine) repCreatesRealWord(left, right string) bool {
	if len(e.aff.Rep) == 0 {
		return false
	}
	joined := left + right
	for _, pair := range e.aff.Rep {
		pattern, replacement := pair[0], pair[1]
		pattern = strings.Trim(pattern, "_")
		if pattern == "" {
			continue
		}
		if !strings.Contains(joined, pattern) {
			continue
		}
		candidate := strings.Replace(joined, pattern, strings.ReplaceAll(replacement, "_", " "), 1)
		if e.isFound(candidate, DefaultOptions()) {
			return true
		}
	}
	return false
}
