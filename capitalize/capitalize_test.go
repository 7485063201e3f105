package capitalize

import (
	"reflect"
	"testing"
)

func TestGuess(t *testing.T) {
	cases := map[string]Type{
		"word":   No,
		"Word":   Init,
		"WORD":   All,
		"wOrd":   Huh,
		"WOrd":   HuhInit,
		"":       No,
	}
	for word, want := range cases {
		if got := Guess(word); got != want {
			t.Errorf("Guess(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestDefaultCollationVariants(t *testing.T) {
	c := Collation{}

	captype, variants := c.Variants("word")
	if captype != No || !reflect.DeepEqual(variants, []string{"word"}) {
		t.Fatalf("NO: got %v %v", captype, variants)
	}

	captype, variants = c.Variants("Word")
	if captype != Init {
		t.Fatalf("expected INIT, got %v", captype)
	}
	if variants[0] != "Word" || variants[1] != "word" {
		t.Fatalf("expected [Word word], got %v", variants)
	}

	captype, variants = c.Variants("WORD")
	if captype != All {
		t.Fatalf("expected ALL, got %v", captype)
	}
	if variants[0] != "WORD" {
		t.Fatalf("expected first variant WORD, got %v", variants)
	}
}

func TestCollationDottedCapitalIBlocksLowerByDefault(t *testing.T) {
	c := Collation{}
	if got := c.Lower("İstanbul"); got != nil {
		t.Fatalf("expected no lower variants for dotted capital I without DotlessI, got %v", got)
	}
}

func TestCollationTurkicDotlessI(t *testing.T) {
	c := Collation{DotlessI: true}
	got := c.Lower("İstanbul")
	if len(got) != 1 || got[0] != "istanbul" {
		t.Fatalf("expected [istanbul], got %v", got)
	}
}

func TestCollationCheckSharpS(t *testing.T) {
	c := Collation{SharpS: true}
	got := c.Lower("STRASSE")
	found := false
	for _, v := range got {
		if v == "straße" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected straße among sharp-s variants, got %v", got)
	}
}

func TestCollationCheckSharpSRejectsAllUpperSS(t *testing.T) {
	c := Collation{SharpS: true}
	// "STRAßE" stripped of ß becomes "STRAE" which is ALL-caps: rejected.
	if got := c.Lower("STRAßE"); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestCapitalizeAndUpperFirst(t *testing.T) {
	if got := UpperFirst("word"); got != "Word" {
		t.Fatalf("UpperFirst: got %q", got)
	}
	if got := Capitalize("WORD"); got != "Word" {
		t.Fatalf("Capitalize: got %q", got)
	}
}
