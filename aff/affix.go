package aff

import (
	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// Variant is one raw strip/add/condition/flags tuple as read from a PFX/SFX
// table line, before condition compilation.
type Variant struct {
	Strip     string
	Add       string
	Condition string
	Flags     gflag.Set // continuation flags this variant's resulting form carries
}

// AffixEntry is one compiled PFX or SFX table row: a self-contained affix
// application rule. Grounded on spyll's data.aff.Prefix/Suffix, which (unlike
// a Hunspell AFFIX's "flag" grouping several rows under one banner) models
// each table row as its own object; AffixEntry keeps that shape.
type AffixEntry struct {
	Flag         gflag.Flag
	CrossProduct bool
	Variant

	isPrefix bool
	cond     *condition
}

// NewSuffixEntry compiles one SFX table row.
func NewSuffixEntry(flag gflag.Flag, crossProduct bool, v Variant) (*AffixEntry, error) {
	cond, err := suffixCondition(v.Condition, v.Strip)
	if err != nil {
		return nil, err
	}
	return &AffixEntry{Flag: flag, CrossProduct: crossProduct, Variant: v, isPrefix: false, cond: cond}, nil
}

// NewPrefixEntry compiles one PFX table row.
func NewPrefixEntry(flag gflag.Flag, crossProduct bool, v Variant) (*AffixEntry, error) {
	cond, err := prefixCondition(v.Condition, v.Strip)
	if err != nil {
		return nil, err
	}
	return &AffixEntry{Flag: flag, CrossProduct: crossProduct, Variant: v, isPrefix: true, cond: cond}, nil
}

// Match reports whether word (the inflected form under analysis) has this
// entry's add string at the relevant end, with its condition window
// satisfied, and if so returns the stem with the affix undone (add removed,
// strip restored). Suffix entries check the end of word; prefix entries the
// start.
func (e *AffixEntry) Match(word []rune) (stem []rune, ok bool) {
	if e.isPrefix {
		return e.matchPrefix(word)
	}
	return e.matchSuffix(word)
}

func (e *AffixEntry) matchSuffix(word []rune) (stem []rune, ok bool) {
	add := []rune(e.Add)
	if len(word) < len(add) {
		return nil, false
	}
	tail := word[len(word)-len(add):]
	if string(tail) != e.Add {
		return nil, false
	}
	rest := word[:len(word)-len(add)]
	if e.cond != nil {
		if len(rest) < e.cond.windowLen {
			return nil, false
		}
		if !e.cond.matches(rest[len(rest)-e.cond.windowLen:]) {
			return nil, false
		}
	}
	stem = append(append([]rune{}, rest...), []rune(e.Strip)...)
	return stem, true
}

func (e *AffixEntry) matchPrefix(word []rune) (stem []rune, ok bool) {
	add := []rune(e.Add)
	if len(word) < len(add) {
		return nil, false
	}
	head := word[:len(add)]
	if string(head) != e.Add {
		return nil, false
	}
	rest := word[len(add):]
	if e.cond != nil {
		if len(rest) < e.cond.windowLen {
			return nil, false
		}
		if !e.cond.matches(rest[:e.cond.windowLen]) {
			return nil, false
		}
	}
	stem = append(append([]rune{}, []rune(e.Strip)...), rest...)
	return stem, true
}

// ReverseKey returns the key this entry should be registered under in a
// suffix trie (its add string, reversed) — suffixes are looked up by
// walking the reversed word, so they're indexed by reversed add string.
func (e *AffixEntry) ReverseKey() string {
	r := []rune(e.Add)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}
