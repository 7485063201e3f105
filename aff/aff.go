// Package aff models a Hunspell .aff file: the affix rules, compounding
// rules, conversion tables and global flags that together configure a
// LOOKUP engine, plus the text-format reader that builds one from disk.
// Grounded on spyll.hunspell.data.aff and spyll.hunspell.readers.aff_reader.
package aff

import (
	"strings"

	gflag "github.com/az-ai-labs/gohunspell/flag"
)

// RawVariant is the unprocessed strip/add/condition/flags tuple as read
// from a PFX/SFX table line, before condition compilation.
type RawVariant = Variant

// Aff is the full configuration snapshot spec.md §3 names: every directive
// a .aff file can set, with affix groups and compounding rules already
// compiled. Construct one with Build, not by hand.
type Aff struct {
	// General
	Encoding     string
	FlagEncoding gflag.Encoding
	Lang         string
	AliasFlags   [][]gflag.Flag // AF table: AliasFlags[i] usable via "/i+1" in .dic

	// Affixes: one AffixEntry per PFX/SFX table row, grounded on spyll's
	// flat self.pfx/self.sfx lists (grouping by flag happens only in the
	// trie, not in the data model).
	Prefixes []*AffixEntry
	Suffixes []*AffixEntry

	Circumfix     gflag.Flag
	NeedAffix     gflag.Flag
	ForbiddenWord gflag.Flag
	NoSuggest     gflag.Flag
	KeepCase      gflag.Flag
	ForceUCase    gflag.Flag

	// Compounding
	CompoundRules      []*CompoundRule
	CompoundPatterns   []*CompoundPattern
	CompoundMin        int
	CompoundWordMax    int
	CompoundFlag       gflag.Flag
	CompoundBegin      gflag.Flag
	CompoundMiddle     gflag.Flag
	CompoundEnd        gflag.Flag
	OnlyInCompound     gflag.Flag
	CompoundPermitFlag gflag.Flag
	CompoundForbidFlag gflag.Flag
	SimplifiedTriple   bool

	CheckCompoundRep     bool
	CheckCompoundTriple  bool
	CheckCompoundCase    bool
	CheckCompoundPattern bool
	CheckCompoundDup     bool

	// Conversion and breaking
	Break []string
	Rep   [][2]string
	Iconv *ConvTable
	Oconv *ConvTable
	Ignore string

	CheckSharps bool
}

// Builder accumulates raw directive data before compilation, matching the
// shape an .aff reader naturally produces.
type Builder struct {
	Encoding     string
	FlagEncoding gflag.Encoding
	Lang         string
	AliasFlags   [][]gflag.Flag

	PfxGroups []RawAffixGroup
	SfxGroups []RawAffixGroup

	Circumfix     gflag.Flag
	NeedAffix     gflag.Flag
	ForbiddenWord gflag.Flag
	NoSuggest     gflag.Flag
	KeepCase      gflag.Flag
	ForceUCase    gflag.Flag

	CompoundRuleTexts []string
	CompoundPatterns  [][3]string // left, right, replacement

	CompoundMin        int
	CompoundWordMax    int
	CompoundFlag       gflag.Flag
	CompoundBegin      gflag.Flag
	CompoundMiddle     gflag.Flag
	CompoundEnd        gflag.Flag
	OnlyInCompound     gflag.Flag
	CompoundPermitFlag gflag.Flag
	CompoundForbidFlag gflag.Flag
	SimplifiedTriple   bool

	CheckCompoundRep     bool
	CheckCompoundTriple  bool
	CheckCompoundCase    bool
	CheckCompoundPattern bool
	CheckCompoundDup     bool

	Break  []string
	Rep    [][2]string
	Iconv  [][2]string
	Oconv  [][2]string
	Ignore string

	CheckSharps bool
}

// RawAffixGroup is one PFX/SFX block as read off disk: a flag, its
// cross-product eligibility, and its strip/add/condition lines.
type RawAffixGroup struct {
	Flag         gflag.Flag
	CrossProduct bool
	Variants     []Variant
}

// NewBuilder returns a Builder with spec-mandated defaults (COMPOUNDMIN=3).
func NewBuilder() *Builder {
	return &Builder{CompoundMin: 3}
}

// Build compiles the accumulated raw directives into an Aff.
func (b *Builder) Build() (*Aff, error) {
	var prefixes []*AffixEntry
	for _, g := range b.PfxGroups {
		for _, v := range g.Variants {
			e, err := NewPrefixEntry(g.Flag, g.CrossProduct, v)
			if err != nil {
				return nil, err
			}
			prefixes = append(prefixes, e)
		}
	}

	var suffixes []*AffixEntry
	for _, g := range b.SfxGroups {
		for _, v := range g.Variants {
			e, err := NewSuffixEntry(g.Flag, g.CrossProduct, v)
			if err != nil {
				return nil, err
			}
			suffixes = append(suffixes, e)
		}
	}

	rules := make([]*CompoundRule, 0, len(b.CompoundRuleTexts))
	for _, text := range b.CompoundRuleTexts {
		r, err := NewCompoundRule(text)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}

	patterns := make([]*CompoundPattern, 0, len(b.CompoundPatterns))
	for _, row := range b.CompoundPatterns {
		patterns = append(patterns, NewCompoundPattern(row[0], row[1], row[2]))
	}

	iconv, err := NewConvTable(b.Iconv)
	if err != nil {
		return nil, err
	}
	oconv, err := NewConvTable(b.Oconv)
	if err != nil {
		return nil, err
	}

	compoundMin := b.CompoundMin
	if compoundMin <= 0 {
		compoundMin = 3
	}

	return &Aff{
		Encoding:     b.Encoding,
		FlagEncoding: b.FlagEncoding,
		Lang:         b.Lang,
		AliasFlags:   b.AliasFlags,

		Prefixes: prefixes,
		Suffixes: suffixes,

		Circumfix:     b.Circumfix,
		NeedAffix:     b.NeedAffix,
		ForbiddenWord: b.ForbiddenWord,
		NoSuggest:     b.NoSuggest,
		KeepCase:      b.KeepCase,
		ForceUCase:    b.ForceUCase,

		CompoundRules:    rules,
		CompoundPatterns: patterns,
		CompoundMin:      compoundMin,
		CompoundWordMax:  b.CompoundWordMax,

		CompoundFlag:       b.CompoundFlag,
		CompoundBegin:      b.CompoundBegin,
		CompoundMiddle:     b.CompoundMiddle,
		CompoundEnd:        b.CompoundEnd,
		OnlyInCompound:     b.OnlyInCompound,
		CompoundPermitFlag: b.CompoundPermitFlag,
		CompoundForbidFlag: b.CompoundForbidFlag,
		SimplifiedTriple:   b.SimplifiedTriple,

		CheckCompoundRep:     b.CheckCompoundRep,
		CheckCompoundTriple:  b.CheckCompoundTriple,
		CheckCompoundCase:    b.CheckCompoundCase,
		CheckCompoundPattern: b.CheckCompoundPattern,
		CheckCompoundDup:     b.CheckCompoundDup,

		Break:  b.Break,
		Rep:    b.Rep,
		Iconv:  iconv,
		Oconv:  oconv,
		Ignore: b.Ignore,

		CheckSharps: b.CheckSharps,
	}, nil
}

// IsTurkic reports whether this Aff's LANG selects the Turkic dotless-i
// alphabet (tr, az, crh, with or without a region suffix such as tr_TR),
// per spec.md §9 and spyll's Lookup.compile.
func (a *Aff) IsTurkic() bool {
	lang := a.Lang
	if i := strings.IndexAny(lang, "_-"); i >= 0 {
		lang = lang[:i]
	}
	switch lang {
	case "tr", "az", "crh":
		return true
	default:
		return false
	}
}
