package aff

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"

	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// CompoundRule is one COMPOUNDRULE pattern: a regex over the "flag
// alphabet" (each distinct flag occupies one position, optionally starred
// or optioned) that a chain of compound parts' flag sets must satisfy.
// Grounded on spyll's algo.lookup.CompoundRule, in full (its fullmatch /
// partial_match / the right-to-left reduce that builds the partial
// pattern).
//
// coregex patterns are single-byte/rune sequences with no named groups, so
// each distinct flag (which may itself be a multi-character long/numeric
// token) is mapped to one private-use-area rune for the lifetime of this
// rule; flag sets are projected onto that alphabet before matching.
type CompoundRule struct {
	Text      string
	Flags     gflag.Set
	flagRune  map[gflag.Flag]rune
	fullRe    *coregex.Regex
	partialRe *coregex.Regex
}

type compoundRulePart struct {
	flag gflag.Flag
	quant string // "", "*", or "?"
}

// parseCompoundRuleParts tokenizes a COMPOUNDRULE's text into its parts,
// supporting both the bracket-less short-flag form ("A*BC?") and the
// parenthesized long/numeric form ("(aa)(bb)*(cc)").
func parseCompoundRuleParts(text string) []compoundRulePart {
	runes := []rune(text)
	var parts []compoundRulePart
	for i := 0; i < len(runes); {
		var tok string
		if runes[i] == '(' {
			j := i + 1
			for j < len(runes) && runes[j] != ')' {
				j++
			}
			tok = string(runes[i+1 : j])
			if j < len(runes) {
				j++
			}
			i = j
		} else {
			tok = string(runes[i])
			i++
		}
		quant := ""
		if i < len(runes) && (runes[i] == '*' || runes[i] == '?') {
			quant = string(runes[i])
			i++
		}
		parts = append(parts, compoundRulePart{flag: gflag.Flag(tok), quant: quant})
	}
	return parts
}

// NewCompoundRule compiles a single COMPOUNDRULE line.
func NewCompoundRule(text string) (*CompoundRule, error) {
	parts := parseCompoundRuleParts(text)

	flags := make(gflag.Set, len(parts))
	flagRune := make(map[gflag.Flag]rune, len(parts))
	nextRune := rune(0xE000) // Unicode Private Use Area, start
	for _, p := range parts {
		flags.Add(p.flag)
		if _, ok := flagRune[p.flag]; !ok {
			flagRune[p.flag] = nextRune
			nextRune++
		}
	}

	var full strings.Builder
	full.WriteByte('^')
	for _, p := range parts {
		full.WriteRune(flagRune[p.flag])
		full.WriteString(p.quant)
	}
	full.WriteByte('$')

	fullRe, err := coregex.Compile(full.String())
	if err != nil {
		return nil, fmt.Errorf("aff: bad COMPOUNDRULE %q: %w", text, err)
	}

	// Partial pattern: right-to-left reduce, res := last; for each part
	// moving left, res := part + "(" + res + ")?" — matches any PREFIX of
	// a word that could still complete the rule later.
	tokens := make([]string, len(parts))
	for i, p := range parts {
		tokens[i] = string(flagRune[p.flag]) + p.quant
	}
	acc := tokens[len(tokens)-1]
	for i := len(tokens) - 2; i >= 0; i-- {
		acc = tokens[i] + "(" + acc + ")?"
	}
	partialRe, err := coregex.Compile("^" + acc + "$")
	if err != nil {
		return nil, fmt.Errorf("aff: bad COMPOUNDRULE partial %q: %w", text, err)
	}

	return &CompoundRule{Text: text, Flags: flags, flagRune: flagRune, fullRe: fullRe, partialRe: partialRe}, nil
}

// project renders one choice of flags (one per compound part) onto this
// rule's private-use alphabet.
func (r *CompoundRule) project(choice []gflag.Flag) string {
	var b strings.Builder
	for _, f := range choice {
		b.WriteRune(r.flagRune[f])
	}
	return b.String()
}

// relevantFlags intersects each part's flag set with this rule's alphabet.
func (r *CompoundRule) relevantFlags(flagSets []gflag.Set) [][]gflag.Flag {
	out := make([][]gflag.Flag, len(flagSets))
	for i, fs := range flagSets {
		out[i] = r.Flags.Intersect(fs).Slice()
	}
	return out
}

// product calls yield once per element of the Cartesian product of choices.
// Stops (returns false from the whole call) as soon as yield returns false,
// or immediately if any choice list is empty (mirroring Python's
// itertools.product, which yields nothing when any input is empty).
func product(choices [][]gflag.Flag, yield func([]gflag.Flag) bool) {
	for _, c := range choices {
		if len(c) == 0 {
			return
		}
	}
	combo := make([]gflag.Flag, len(choices))
	var rec func(i int) bool
	rec = func(i int) bool {
		if i == len(choices) {
			return yield(combo)
		}
		for _, f := range choices[i] {
			combo[i] = f
			if !rec(i + 1) {
				return false
			}
		}
		return true
	}
	rec(0)
}

// FullMatch reports whether some choice of one relevant flag per compound
// part fully satisfies this rule.
func (r *CompoundRule) FullMatch(flagSets []gflag.Set) bool {
	relevant := r.relevantFlags(flagSets)
	found := false
	product(relevant, func(choice []gflag.Flag) bool {
		if r.fullRe.MatchString(r.project(choice)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// PartialMatch reports whether some choice of flags is a viable prefix of
// this rule — i.e. compounding could still succeed if more parts follow.
func (r *CompoundRule) PartialMatch(flagSets []gflag.Set) bool {
	relevant := r.relevantFlags(flagSets)
	found := false
	product(relevant, func(choice []gflag.Flag) bool {
		if r.partialRe.MatchString(r.project(choice)) {
			found = true
			return false
		}
		return true
	})
	return found
}

// CompoundPattern is one CHECKCOMPOUNDPATTERN entry: a constraint on the
// boundary characters (and optionally flags) between two adjacent compound
// parts. Grounded on spyll's algo.lookup.CompoundPattern.
type CompoundPattern struct {
	LeftStem    string
	LeftFlag    gflag.Flag
	LeftNoAffix bool

	RightStem    string
	RightFlag    gflag.Flag
	RightNoAffix bool

	Replacement string
}

// NewCompoundPattern parses the raw "stem[/flag]" left/right columns of a
// CHECKCOMPOUNDPATTERN line.
func NewCompoundPattern(left, right, replacement string) *CompoundPattern {
	leftStem, leftFlag, leftNoAffix := splitPatternColumn(left)
	rightStem, rightFlag, rightNoAffix := splitPatternColumn(right)
	return &CompoundPattern{
		LeftStem: leftStem, LeftFlag: leftFlag, LeftNoAffix: leftNoAffix,
		RightStem: rightStem, RightFlag: rightFlag, RightNoAffix: rightNoAffix,
		Replacement: replacement,
	}
}

func splitPatternColumn(col string) (stem string, fl gflag.Flag, noAffix bool) {
	stem = col
	if i := strings.IndexByte(col, '/'); i >= 0 {
		stem, fl = col[:i], gflag.Flag(col[i+1:])
	}
	if stem == "0" {
		return "", fl, true
	}
	return stem, fl, false
}

// CompoundPart is the minimal view of a compound word-form CompoundPattern
// needs to evaluate a boundary — satisfied by lookup.Form without aff
// needing to import lookup.
type CompoundPart interface {
	Stem() string
	IsBase() bool
	HasFlag(gflag.Flag) bool
}

// Match reports whether left/right satisfy this pattern's boundary
// constraint. Grounded on spyll's CompoundPattern.match.
func (p *CompoundPattern) Match(left, right CompoundPart) bool {
	if !strings.HasSuffix(left.Stem(), p.LeftStem) {
		return false
	}
	if !strings.HasPrefix(right.Stem(), p.RightStem) {
		return false
	}
	if p.LeftNoAffix && left.IsBase() {
		return false
	}
	if p.RightNoAffix && right.IsBase() {
		return false
	}
	if p.LeftFlag != "" && !left.HasFlag(p.LeftFlag) {
		return false
	}
	if p.RightFlag != "" && !right.HasFlag(p.RightFlag) {
		return false
	}
	return true
}
