// Package gohunspell is a Hunspell-compatible spell-checking LOOKUP engine:
// given a .aff/.dic pair it decides whether a word is one the dictionary
// accepts, handling affix stripping, compounding and capitalization the
// same way Hunspell itself does. The suggestion engine (edit-distance
// candidates) is out of scope; see spec.md and SPEC_FULL.md.
//
// Grounded on spyll.hunspell.dictionary.Dictionary.
package gohunspell

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/az-ai-labs/gohunspell/aff"
	"github.com/az-ai-labs/gohunspell/capitalize"
	"github.com/az-ai-labs/gohunspell/dic"
	"github.com/az-ai-labs/gohunspell/internal/zipreader"
	"github.com/az-ai-labs/gohunspell/lookup"
)

// systemSearchPaths mirrors spyll's Dictionary.PATHES: the usual install
// locations for Hunspell/MySpell dictionaries on Unix-like systems.
var systemSearchPaths = []string{
	"/usr/share/hunspell",
	"/usr/share/myspell",
	"/usr/share/myspell/dicts",
	"/Library/Spelling",
}

// Dictionary is a compiled .aff/.dic pair ready to check words against.
// Safe for concurrent use by multiple goroutines once constructed — nothing
// in a Dictionary is mutated after New returns.
type Dictionary struct {
	Aff *aff.Aff
	Dic *dic.Dic

	engine *lookup.Engine
}

// New wraps an already-parsed Aff/Dic pair into a queryable Dictionary,
// compiling the lookup engine (affix tries, compound rules, break
// patterns) once up front.
func New(a *aff.Aff, d *dic.Dic) (*Dictionary, error) {
	engine, err := lookup.New(a, d)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}
	return &Dictionary{Aff: a, Dic: d, engine: engine}, nil
}

// FromFiles loads a dictionary from path+".aff" and path+".dic" on disk.
func FromFiles(path string) (*Dictionary, error) {
	a, err := aff.ReadFile(path + ".aff")
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}
	d, err := dic.ReadFile(path+".dic", a.FlagEncoding, a.AliasFlags)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}
	return New(a, d)
}

// FromZip loads a dictionary packaged as a single .zip archive (the
// LibreOffice/OpenOffice .oxt/.xpi extension layout): whichever single
// *.aff and *.dic entries the archive contains.
func FromZip(zipPath string) (*Dictionary, error) {
	affName, dicName, err := findAffDicEntries(zipPath)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}

	affRC, err := zipreader.OpenZip(zipPath, affName)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}
	defer affRC.Close()
	a, err := aff.Read(affRC)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}

	dicRC, err := zipreader.OpenZip(zipPath, dicName)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}
	defer dicRC.Close()
	d, err := dic.Read(dicRC, a.FlagEncoding, a.AliasFlags)
	if err != nil {
		return nil, fmt.Errorf("gohunspell: %w", err)
	}

	return New(a, d)
}

// FromSystem searches the usual system dictionary install locations for
// name+".aff"/name+".dic" (e.g. "en_US"), loading the first pair found.
func FromSystem(name string) (*Dictionary, error) {
	for _, folder := range systemSearchPaths {
		candidate := filepath.Join(folder, name+".aff")
		if _, err := os.Stat(candidate); err == nil {
			return FromFiles(filepath.Join(folder, name))
		}
	}
	return nil, fmt.Errorf("gohunspell: %s.aff not found (search paths: %v)", name, systemSearchPaths)
}

// findAffDicEntries scans a zip archive's entry names and picks the first
// .aff and the first .dic entry, per spyll's from_zip. An archive holding
// several of either is not rejected; the later ones are ignored.
func findAffDicEntries(zipPath string) (affName, dicName string, err error) {
	entries, err := zipreader.ListEntries(zipPath)
	if err != nil {
		return "", "", err
	}
	for _, name := range entries {
		switch filepath.Ext(name) {
		case ".aff":
			if affName == "" {
				affName = name
			}
		case ".dic":
			if dicName == "" {
				dicName = name
			}
		}
	}
	if affName == "" || dicName == "" {
		return "", "", fmt.Errorf("no .aff/.dic pair found in %s", zipPath)
	}
	return affName, dicName, nil
}

// Check reports whether word is accepted by this dictionary, using
// lookup.DefaultOptions(). The word is normalized to Unicode NFC first, as
// Hunspell expects its input encoded consistently.
func (d *Dictionary) Check(word string) bool {
	return d.CheckOptions(word, lookup.DefaultOptions())
}

// CheckOptions is Check with explicit lookup.Options (e.g. to disable
// capitalization variants or BREAK splitting).
func (d *Dictionary) CheckOptions(word string, opts lookup.Options) bool {
	return d.engine.Check(capitalize.NormalizeNFC(word), opts)
}

// Analyze exposes every accepted analysis of word — its base form and every
// compound/affix decomposition that resolves to a dictionary entry. Mostly
// useful for debugging a dictionary or driving a suggestion engine built on
// top of this package.
func (d *Dictionary) Analyze(word string) []lookup.Compound {
	var out []lookup.Compound
	for c := range d.engine.Analyze(capitalize.NormalizeNFC(word), lookup.DefaultOptions()) {
		out = append(out, c)
	}
	return out
}
