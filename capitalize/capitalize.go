// Package capitalize implements Hunspell's capitalization analysis: guessing
// a word's capitalization pattern (spec.md §4.1), generating the case
// variants worth re-checking against the dictionary, and the
// language-specific Collation rules (Turkic dotless-i, German CHECKSHARPS)
// that those variants must respect.
package capitalize

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Type is a word's capitalization pattern, as spec.md §4.1 names it.
type Type int

const (
	// No: word has no uppercase letters at all.
	No Type = iota
	// Init: only the first letter is uppercase.
	Init
	// All: every letter is uppercase.
	All
	// HuhInit: the first letter is uppercase and the rest is mixed case
	// (neither all-lower nor all-upper).
	HuhInit
	// Huh: mixed case, first letter not uppercase (e.g. "mcDonald").
	Huh
)

func (t Type) String() string {
	switch t {
	case No:
		return "NO"
	case Init:
		return "INIT"
	case All:
		return "ALL"
	case HuhInit:
		return "HUHINIT"
	case Huh:
		return "HUH"
	default:
		return "UNKNOWN"
	}
}

// dottedCapitalI is Turkish/Azerbaijani İ (U+0130).
const dottedCapitalI = 'İ'

// Guess classifies word's capitalization pattern. Grounded directly on
// spyll's capitalization.guess.
func Guess(word string) Type {
	if word == "" {
		return No
	}
	lower := strings.ToLower(word)
	if lower == word {
		return No
	}
	if r, size := utf8.DecodeRuneInString(word); size > 0 {
		if strings.ToLower(string(r))+word[size:] == lower {
			return Init
		}
	}
	if strings.ToUpper(word) == word {
		return All
	}
	r, size := utf8.DecodeRuneInString(word)
	if size > 0 && strings.ToLower(string(r)) != string(r) {
		return HuhInit
	}
	return Huh
}

// Coerce reapplies cap's case pattern to word, e.g. to recapitalize a
// suggestion found against a lowercased variant.
func Coerce(word string, cap Type) string {
	switch cap {
	case Init, HuhInit:
		return UpperFirst(word)
	case All:
		return strings.ToUpper(word)
	default:
		return word
	}
}

// LowerFirst lowercases only the first rune of word.
func LowerFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return strings.ToLower(string(r)) + word[size:]
}

// UpperFirst uppercases only the first rune of word.
func UpperFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return strings.ToUpper(string(r)) + word[size:]
}

// lowerTurkic lowercases word the "plain" way: standard Unicode lowercasing,
// then folding the Turkic dotted-capital-I sequence "i̇" (i + combining dot
// above, which is what "İ".lower() produces under Unicode casing rules) back
// down to a plain "i". Grounded on spyll's capitalization.lower.
func lowerTurkic(word string) string {
	return strings.ReplaceAll(strings.ToLower(word), "i̇", "i")
}

// Capitalize uppercases the first rune and lowerTurkic-lowercases the rest.
func Capitalize(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if size == 0 {
		return word
	}
	return strings.ToUpper(string(r)) + lowerTurkic(word[size:])
}

// NormalizeNFC composes word into Unicode Normalization Form C ahead of
// capitalization analysis, using golang.org/x/text's full implementation
// (the teacher's own internal/azcase package notes this as the right
// external tool for full NFC, doing only a hand-rolled Azerbaijani-specific
// subset itself).
func NormalizeNFC(word string) string {
	return norm.NFC.String(word)
}

// Collation holds the language-specific rules that affect how lowercasing
// and capitalization-variant generation behave: CHECKSHARPS (German ß/ss
// interchangeability) and the Turkic dotless-i alphabet (tr/az/crh).
// Grounded on spyll's algo.capitalization.Collation, in full.
type Collation struct {
	SharpS   bool // aff.CHECKSHARPS
	DotlessI bool // aff.LANG in {tr, az, crh}
}

// Lower returns the set of acceptable lowercasings of word under this
// collation. It returns no variants at all when word starts with a dotted
// capital İ under a non-Turkic collation (that letter has no unambiguous
// plain lowercase in that case), and, when CHECKSHARPS is set and word
// contains uppercase "SS", adds every sharp-s variant of the lowercased
// word. A lowercase "ss" in word does not trigger the expansion.
func (c Collation) Lower(word string) []string {
	if word == "" {
		return []string{word}
	}
	firstRune, _ := utf8.DecodeRuneInString(word)
	if firstRune == dottedCapitalI && !c.DotlessI {
		return nil
	}

	// CHECKSHARPS also prohibits uppercase "sharp s": an all-caps word
	// that happens to contain ß (after stripping it) is not a legal form.
	if c.SharpS && strings.Contains(word, "ß") {
		stripped := strings.ReplaceAll(word, "ß", "")
		if Guess(stripped) == All {
			return nil
		}
	}

	var lowered string
	if c.DotlessI {
		replacer := strings.NewReplacer(string(dottedCapitalI), "i", "I", "ı")
		lowered = strings.ToLower(replacer.Replace(word))
	} else {
		lowered = lowerTurkic(word)
	}

	if c.SharpS && strings.Contains(word, "SS") {
		variants := sharpSVariants(lowered, 0)
		return append(variants, lowered)
	}
	return []string{lowered}
}

// SharpSVariants returns every string obtained by substituting some subset
// of word's "ss" occurrences with "ß" (word itself is not included). Used to
// build case-insensitive dictionary lookup keys for a plain-lowercase query
// like "strasse" against a root stored as "Straße" — Collation.Lower only
// expands "SS" (the all-caps spelling), since that's the only place spec.md's
// per-captype variant table calls for it, but CHECKSHARPS dictionaries still
// need the lowercase form found for an exact-case query to fall through to.
func SharpSVariants(word string) []string {
	return sharpSVariants(word, 0)
}

// sharpSVariants recursively substitutes every "ss" occurrence (from start
// onward) with "ß", one at a time, collecting every resulting string —
// mirroring spyll's recursive sharp_s_variants helper exactly.
func sharpSVariants(text string, start int) []string {
	pos := strings.Index(text[start:], "ss")
	if pos == -1 {
		return nil
	}
	pos += start
	replaced := text[:pos] + "ß" + text[pos+2:]

	var out []string
	out = append(out, replaced)
	out = append(out, sharpSVariants(replaced, pos+1)...)
	out = append(out, sharpSVariants(text, pos+2)...)
	return out
}

// Variants returns word's capitalization type and the set of strings worth
// checking against the dictionary, given this collation's rules. Grounded on
// spyll's Collation.variants.
func (c Collation) Variants(word string) (Type, []string) {
	captype := Guess(word)

	switch captype {
	case No:
		return captype, []string{word}
	case Init:
		return captype, append([]string{word}, c.Lower(word)...)
	case HuhInit:
		firstRune, size := utf8.DecodeRuneInString(word)
		result := []string{word}
		for _, l := range c.Lower(string(firstRune)) {
			result = append(result, l+word[size:])
		}
		return captype, result
	case Huh:
		return captype, []string{word}
	case All:
		result := []string{word}
		result = append(result, c.Lower(word)...)
		firstRune, size := utf8.DecodeRuneInString(word)
		for _, l := range c.Lower(word[size:]) {
			result = append(result, string(firstRune)+l)
		}
		return captype, result
	default:
		return captype, []string{word}
	}
}
