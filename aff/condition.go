package aff

import (
	"fmt"
	"strings"

	"github.com/coregx/coregex"
)

// condition is a compiled Hunspell affix CONDITION: a fixed-length run of
// regex atoms (literal chars or bracket classes like "[aeiou]") that must
// match exactly the window of runes adjacent to where an affix's add/strip
// splice happens.
//
// Hunspell's reference implementations compile conditions as a lookahead
// (prefix) or lookbehind (suffix) assertion glued to the add string and
// match that against the whole inflected word. coregex v0.1.0 has neither
// capture groups nor lookaround, and doesn't need to: an affix condition is
// always anchored to a fixed position (immediately before a suffix's add,
// or immediately after a prefix's), so it can be checked directly against
// that substring with a plain anchored pattern instead of an assertion
// embedded in a larger match.
type condition struct {
	windowLen int // in runes; nil-equivalent (always matches) when re == nil
	re        *coregex.Regex
}

// tokenizeCondition splits a raw CONDITION string into its regex atoms: each
// bracket expression "[...]" is one atom, every other rune is its own atom.
func tokenizeCondition(cond string) []string {
	runes := []rune(cond)
	var atoms []string
	for i := 0; i < len(runes); {
		if runes[i] == '[' {
			j := i + 1
			for j < len(runes) && runes[j] != ']' {
				j++
			}
			if j < len(runes) {
				j++ // include the closing bracket
			}
			atoms = append(atoms, string(runes[i:j]))
			i = j
		} else {
			atoms = append(atoms, string(runes[i]))
			i++
		}
	}
	return atoms
}

// compileCondition builds a condition from the atoms left after trimming
// the strip-string's own atoms away (callers do the trimming; see
// suffixCondition/prefixCondition). A condition of no atoms, or the single
// wildcard atom ".", always matches and compiles to nil.
func compileCondition(atoms []string) (*condition, error) {
	if len(atoms) == 0 || (len(atoms) == 1 && atoms[0] == ".") {
		return nil, nil
	}
	pattern := "^" + strings.Join(atoms, "") + "$"
	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("aff: bad affix condition %q: %w", strings.Join(atoms, ""), err)
	}
	return &condition{windowLen: len(atoms), re: re}, nil
}

// matches reports whether window (already sliced to the expected length by
// the caller) satisfies the condition.
func (c *condition) matches(window []rune) bool {
	if c == nil {
		return true
	}
	if len(window) != c.windowLen {
		return false
	}
	return c.re.MatchString(string(window))
}

// suffixCondition compiles a suffix's CONDITION for matching against the
// runes immediately preceding the suffix's "add" at the end of an inflected
// word — dropping the trailing atoms that correspond to the stripped
// characters, since those no longer appear once the suffix is applied.
// Grounded on spyll's Lookup.compile.suffix_regexp.
func suffixCondition(cond, strip string) (*condition, error) {
	atoms := tokenizeCondition(cond)
	stripLen := len([]rune(strip))
	if stripLen > 0 {
		if stripLen > len(atoms) {
			stripLen = len(atoms)
		}
		atoms = atoms[:len(atoms)-stripLen]
	}
	return compileCondition(atoms)
}

// prefixCondition compiles a prefix's CONDITION for matching against the
// runes immediately following the prefix's "add" at the start of an
// inflected word — dropping the leading atoms that correspond to the
// stripped characters. Grounded on spyll's Lookup.compile.prefix_regexp.
func prefixCondition(cond, strip string) (*condition, error) {
	atoms := tokenizeCondition(cond)
	stripLen := len([]rune(strip))
	if stripLen > len(atoms) {
		stripLen = len(atoms)
	}
	atoms = atoms[stripLen:]
	return compileCondition(atoms)
}
