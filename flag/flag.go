// Package flag implements Hunspell's flag model: short opaque tokens attached
// to dictionary entries and affixes, decoded from one of four on-disk
// encodings (FLAG directive: short, long, num, UTF-8).
package flag

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Flag is an opaque token. Its meaning (FORBIDDENWORD, COMPOUNDFLAG, a
// user-defined morphological marker, ...) is assigned entirely by the .aff
// file; gohunspell never interprets a flag's text.
type Flag string

// Set is a small, comparable collection of flags. Hunspell flag sets per
// word rarely exceed a handful of entries, so a map is simpler than a
// bitset and fine for this scale.
type Set map[Flag]struct{}

// NewSet builds a Set from the given flags.
func NewSet(flags ...Flag) Set {
	s := make(Set, len(flags))
	for _, f := range flags {
		s[f] = struct{}{}
	}
	return s
}

// Has reports whether f is a non-empty flag present in s.
func (s Set) Has(f Flag) bool {
	if f == "" {
		return false
	}
	_, ok := s[f]
	return ok
}

// Add inserts f into s.
func (s Set) Add(f Flag) {
	s[f] = struct{}{}
}

// Union returns a new Set containing every flag in s or other.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for f := range s {
		out[f] = struct{}{}
	}
	for f := range other {
		out[f] = struct{}{}
	}
	return out
}

// Intersect returns a new Set containing flags present in both s and other.
func (s Set) Intersect(other Set) Set {
	out := make(Set)
	small, big := s, other
	if len(other) < len(s) {
		small, big = other, s
	}
	for f := range small {
		if _, ok := big[f]; ok {
			out[f] = struct{}{}
		}
	}
	return out
}

// Slice returns the flags in s in unspecified order.
func (s Set) Slice() []Flag {
	out := make([]Flag, 0, len(s))
	for f := range s {
		out = append(out, f)
	}
	return out
}

// Encoding identifies one of the four on-disk flag encodings Hunspell's FLAG
// directive selects between.
type Encoding int

const (
	// Short: each flag is a single byte/char (the default when no FLAG
	// directive is present).
	Short Encoding = iota
	// Long: each flag is exactly two chars.
	Long
	// Numeric: flags are decimal numbers separated by commas.
	Numeric
	// UTF8: each flag is a single Unicode code point.
	UTF8
)

// ParseEncoding maps a FLAG directive value ("long", "num", "UTF-8") to an
// Encoding. The short encoding has no directive value since it is the
// default.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(s) {
	case "long":
		return Long, nil
	case "num":
		return Numeric, nil
	case "utf-8", "utf8":
		return UTF8, nil
	default:
		return Short, fmt.Errorf("flag: unknown FLAG encoding %q", s)
	}
}

// Decode splits a flag-field string (e.g. the part of a .dic entry after
// the '/') into its component flags according to enc.
func Decode(s string, enc Encoding) (Set, error) {
	if s == "" {
		return Set{}, nil
	}
	switch enc {
	case Long:
		if len(s)%2 != 0 {
			return nil, fmt.Errorf("flag: long-encoded flag string %q has odd length", s)
		}
		out := make(Set, len(s)/2)
		for i := 0; i < len(s); i += 2 {
			out.Add(Flag(s[i : i+2]))
		}
		return out, nil
	case Numeric:
		out := make(Set)
		for _, part := range strings.Split(s, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if _, err := strconv.Atoi(part); err != nil {
				return nil, fmt.Errorf("flag: invalid numeric flag %q: %w", part, err)
			}
			out.Add(Flag(part))
		}
		return out, nil
	case UTF8:
		out := make(Set)
		for _, r := range s {
			out.Add(Flag(string(r)))
		}
		return out, nil
	default: // Short
		out := make(Set, utf8.RuneCountInString(s))
		for _, r := range s {
			out.Add(Flag(string(r)))
		}
		return out, nil
	}
}

// DecodeOne decodes a single flag (e.g. a standalone AFFIX-line flag field)
// in the given encoding.
func DecodeOne(s string, enc Encoding) (Flag, error) {
	set, err := Decode(s, enc)
	if err != nil {
		return "", err
	}
	for f := range set {
		return f, nil
	}
	return "", nil
}
