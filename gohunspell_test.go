package gohunspell

import (
	"strings"
	"testing"

	"github.com/az-ai-labs/gohunspell/aff"
	"github.com/az-ai-labs/gohunspell/dic"
)

func mustNew(t *testing.T, affText, dicText string) *Dictionary {
	t.Helper()
	a, err := aff.Read(strings.NewReader(affText))
	if err != nil {
		t.Fatalf("aff.Read: %v", err)
	}
	d, err := dic.Read(strings.NewReader(dicText), a.FlagEncoding, a.AliasFlags)
	if err != nil {
		t.Fatalf("dic.Read: %v", err)
	}
	dict, err := New(a, d)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return dict
}

func TestCheckAcceptsDictionaryWord(t *testing.T) {
	dict := mustNew(t, "SET UTF-8\n", "1\ncat\n")
	if !dict.Check("cat") {
		t.Error(`Check("cat") = false, want true`)
	}
	if dict.Check("dog") {
		t.Error(`Check("dog") = true, want false`)
	}
}

func TestCheckNormalizesNFC(t *testing.T) {
	// precomposed is "café" (single code point); decomposed is
	// "caf" + "e" + the combining acute accent (U+0065 U+0301) — two
	// different byte sequences for the same rendered word.
	precomposed := "café"
	decomposed := "café"

	dict := mustNew(t, "SET UTF-8\n", "1\n"+precomposed+"\n")
	if !dict.Check(decomposed) {
		t.Error("Check with decomposed e-acute = false, want true after NFC normalization")
	}
}

func TestAnalyzeReturnsCompounds(t *testing.T) {
	dict := mustNew(t, "SET UTF-8\nCOMPOUNDFLAG C\nCOMPOUNDMIN 3\n", "2\nfoo/C\nbar/C\n")
	got := dict.Analyze("foobar")
	if len(got) == 0 {
		t.Fatal("expected at least one analysis for \"foobar\"")
	}
	found := false
	for _, c := range got {
		if len(c) == 2 && c[0].Stem() == "foo" && c[1].Stem() == "bar" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 2-part foo+bar compound analysis, got %+v", got)
	}
}

func TestFindAffDicEntriesMissingArchive(t *testing.T) {
	if _, _, err := findAffDicEntries("/nonexistent-path-for-test.zip"); err == nil {
		t.Fatal("expected an error opening a nonexistent zip")
	}
}

func TestFromSystemNotFound(t *testing.T) {
	if _, err := FromSystem("definitely-not-an-installed-dictionary"); err == nil {
		t.Fatal("expected an error for a dictionary absent from every system search path")
	}
}
