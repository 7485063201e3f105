package lookup

import (
	"fmt"
	"iter"
	"strings"
)

// breakPattern is one compiled BREAK directive: a literal substring at
// which a word may be split for checking, optionally anchored to the start
// and/or end of the word (a leading "^" or trailing "$" in the directive).
// An unanchored pattern only matches with at least one character on each
// side of it.
// Hunspell's own pattern2regexp additionally lets BREAK carry arbitrary
// regex metacharacters; since coregex (this project's regex engine, see
// aff/condition.go) has no capture groups, and real-world BREAK tables are
// overwhelmingly literal strings (hyphens, em dashes), gohunspell treats
// the directive as literal text rather than compiling it as a pattern.
type breakPattern struct {
	text        string
	anchorStart bool
	anchorEnd   bool
}

// compileBreakPatterns parses each BREAK directive's value into a
// breakPattern. Grounded on spyll's aff_reader handling of BREAK plus
// data.aff.Aff.break (the FSA there is anchor-aware the same way).
func compileBreakPatterns(patterns []string) ([]breakPattern, error) {
	out := make([]breakPattern, 0, len(patterns))
	for _, p := range patterns {
		if p == "" {
			return nil, fmt.Errorf("lookup: empty BREAK pattern")
		}
		bp := breakPattern{text: p}
		if strings.HasPrefix(bp.text, "^") {
			bp.anchorStart = true
			bp.text = bp.text[1:]
		}
		if strings.HasSuffix(bp.text, "$") {
			bp.anchorEnd = true
			bp.text = strings.TrimSuffix(bp.text, "$")
		}
		out = append(out, bp)
	}
	return out, nil
}

// occurrences returns every start index at which bp.text occurs in word,
// filtered to the ones its anchors permit.
func (bp breakPattern) occurrences(word string) []int {
	if bp.text == "" {
		return nil
	}
	var idxs []int
	from := 0
	for {
		i := strings.Index(word[from:], bp.text)
		if i < 0 {
			break
		}
		start := from + i
		end := start + len(bp.text)
		ok := (!bp.anchorStart || start == 0) && (!bp.anchorEnd || end == len(word))
		if !bp.anchorStart && !bp.anchorEnd {
			ok = start > 0 && end < len(word)
		}
		if ok {
			idxs = append(idxs, start)
		}
		from = start + 1
		if from >= len(word) {
			break
		}
	}
	return idxs
}

// tryBreak lazily enumerates every way word can be read as-is or split at a
// BREAK occurrence (recursively, up to depth 10 — spec.md's bound against
// pathological BREAK tables), each yielded as the ordered list of pieces to
// check independently. Grounded on spyll's Lookup.try_break.
func (e *Engine) tryBreak(word string, depth int) iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		if !yield([]string{word}) {
			return
		}
		if depth >= 10 {
			return
		}

		for _, bp := range e.breakPatterns {
			for _, start := range bp.occurrences(word) {
				left := word[:start]
				right := word[start+len(bp.text):]

				if left == "" {
					for rightParts := range e.tryBreak(right, depth+1) {
						if !yield(rightParts) {
							return
						}
					}
					continue
				}
				if right == "" {
					for leftParts := range e.tryBreak(left, depth+1) {
						if !yield(leftParts) {
							return
						}
					}
					continue
				}

				for leftParts := range e.tryBreak(left, depth+1) {
					for rightParts := range e.tryBreak(right, depth+1) {
						combined := append(append([]string{}, leftParts...), rightParts...)
						if !yield(combined) {
							return
						}
					}
				}
			}
		}
	}
}
