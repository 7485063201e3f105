// Package dic models a Hunspell .dic word list: dictionary entries (a stem
// plus its flags) indexed for exact and case-insensitive homonym lookup,
// plus the text-format reader that builds one from disk. Grounded on
// spyll.hunspell.data.dic.
package dic

import (
	"strings"

	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// Word is one dictionary entry: a stem and the flags attached to it
// (affix-continuation flags, compounding flags, FORBIDDENWORD, ...).
type Word struct {
	Stem  string
	Flags gflag.Set
}

// Dic is the loaded word list, indexed both by exact stem and by
// lowercased stem so callers can find homonyms either way. Multiple Word
// entries may share a stem (Hunspell calls these "homonyms": the same
// written form with different flag sets, e.g. a noun/verb pair).
type Dic struct {
	Words []*Word

	index      map[string][]*Word
	indexLower map[string][]*Word
}

// New builds a Dic from a flat word list, grouping homonyms by stem. Unlike
// spyll's Dic (which groups via itertools.groupby and so silently drops
// homonyms that aren't adjacent in the source file), this groups by a
// map so homonym discovery doesn't depend on entry order.
func New(words []*Word) *Dic {
	d := &Dic{
		Words:      words,
		index:      make(map[string][]*Word),
		indexLower: make(map[string][]*Word),
	}
	for _, w := range words {
		d.index[w.Stem] = append(d.index[w.Stem], w)
		lower := strings.ToLower(w.Stem)
		d.indexLower[lower] = append(d.indexLower[lower], w)
	}
	return d
}

// Homonyms returns every entry whose stem equals word (or, with
// ignorecase, whose lowercased stem equals word).
func (d *Dic) Homonyms(word string, ignorecase bool) []*Word {
	if ignorecase {
		return d.indexLower[word]
	}
	return d.index[word]
}

// HasFlag reports whether word's homonyms carry flag f. With forAll it
// requires every homonym to carry it (and at least one homonym to exist);
// otherwise any single homonym carrying it is enough.
func (d *Dic) HasFlag(word string, f gflag.Flag, forAll bool) bool {
	if f == "" {
		return false
	}
	homonyms := d.Homonyms(word, false)
	if len(homonyms) == 0 {
		return false
	}
	if forAll {
		for _, w := range homonyms {
			if !w.Flags.Has(f) {
				return false
			}
		}
		return true
	}
	for _, w := range homonyms {
		if w.Flags.Has(f) {
			return true
		}
	}
	return false
}
