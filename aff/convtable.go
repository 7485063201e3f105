package aff

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/coregx/coregex"
)

// ConvTable implements ICONV/OCONV/REP: an ordered set of search/replace
// rules, applied greedily left to right with longest-search-wins at each
// position. Grounded on spyll's algo.lookup.ConvTable.
type ConvTable struct {
	rows []convRow
}

type convRow struct {
	searchLen   int // in runes, used both for tie-breaking and for advancing
	anchorStart bool
	anchorEnd   bool
	re          *coregex.Regex
	replacement string
}

// NewConvTable compiles the raw two-column ICONV/OCONV/REP pairs. A leading
// "_" in the search column anchors to the start of the word; a trailing "_"
// anchors to the end. "_" elsewhere in the replacement column means a
// literal space.
func NewConvTable(pairs [][2]string) (*ConvTable, error) {
	rows := make([]convRow, 0, len(pairs))
	for _, pair := range pairs {
		search, replace := pair[0], pair[1]
		anchorStart := strings.HasPrefix(search, "_")
		anchorEnd := strings.HasSuffix(search, "_")
		clean := strings.ReplaceAll(search, "_", "")
		re, err := coregex.Compile(clean)
		if err != nil {
			return nil, fmt.Errorf("aff: bad conversion pattern %q: %w", search, err)
		}
		rows = append(rows, convRow{
			searchLen:   utf8.RuneCountInString(clean),
			anchorStart: anchorStart,
			anchorEnd:   anchorEnd,
			re:          re,
			replacement: strings.ReplaceAll(replace, "_", " "),
		})
	}
	return &ConvTable{rows: rows}, nil
}

// matches reports whether row applies with its match starting exactly at
// runes[pos:].
func (r convRow) matches(runes []rune, pos int) bool {
	if r.anchorStart && pos != 0 {
		return false
	}
	sub := string(runes[pos:])
	loc := r.re.FindStringIndex(sub)
	if loc == nil || loc[0] != 0 {
		return false
	}
	if r.anchorEnd && loc[1] != len(sub) {
		return false
	}
	return true
}

// Apply runs the conversion table over word, greedily preferring the
// longest matching search pattern at each position and copying through any
// rune no rule matches.
func (c *ConvTable) Apply(word string) string {
	if c == nil || len(c.rows) == 0 {
		return word
	}
	runes := []rune(word)
	var out strings.Builder
	pos := 0
	for pos < len(runes) {
		best := -1
		bestRepl := ""
		for _, row := range c.rows {
			if row.searchLen > best && row.matches(runes, pos) {
				best = row.searchLen
				bestRepl = row.replacement
			}
		}
		if best >= 0 {
			out.WriteString(bestRepl)
			pos += best
		} else {
			out.WriteRune(runes[pos])
			pos++
		}
	}
	return out.String()
}
