package aff

import (
	"strings"
	"testing"

	gflag "github.com/az-ai-labs/gohunspell/flag"
)

func TestReadGeneralDirectives(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\nFLAG long\nLANG tr_TR\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if a.Encoding != "UTF-8" {
		t.Errorf("Encoding = %q", a.Encoding)
	}
	if a.FlagEncoding != gflag.Long {
		t.Errorf("FlagEncoding = %v, want Long", a.FlagEncoding)
	}
	if a.Lang != "tr_TR" {
		t.Errorf("Lang = %q", a.Lang)
	}
	if !a.IsTurkic() {
		t.Error("IsTurkic() = false for tr_TR")
	}
}

func TestReadSuffixTable(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\nSFX M Y 2\nSFX M 0 s .\nSFX M y ies [^aeiou]y\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(a.Suffixes) != 2 {
		t.Fatalf("expected 2 suffix entries, got %d", len(a.Suffixes))
	}
	for _, s := range a.Suffixes {
		if !s.CrossProduct {
			t.Error("expected cross-product Y")
		}
		if s.Flag != "M" {
			t.Errorf("Flag = %q, want M", s.Flag)
		}
	}
}

func TestReadPrefixTable(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\nPFX P N 1\nPFX P 0 un .\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(a.Prefixes) != 1 {
		t.Fatalf("expected 1 prefix entry, got %d", len(a.Prefixes))
	}
	p := a.Prefixes[0]
	if p.CrossProduct {
		t.Error("expected cross-product N (false)")
	}
	if p.Add != "un" {
		t.Errorf("Add = %q, want un", p.Add)
	}
	stem, ok := p.Match([]rune("unhappy"))
	if !ok || string(stem) != "happy" {
		t.Fatalf("Match(unhappy) = %q, %v", string(stem), ok)
	}
}

func TestReadCompoundRule(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\nCOMPOUNDRULE 1\nCOMPOUNDRULE A*B\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(a.CompoundRules) != 1 {
		t.Fatalf("expected 1 compound rule, got %d", len(a.CompoundRules))
	}
}

func TestReadFlagDirectives(t *testing.T) {
	a, err := Read(strings.NewReader(
		"SET UTF-8\nFORBIDDENWORD !\nNOSUGGEST #\nKEEPCASE K\nCIRCUMFIX X\nNEEDAFFIX Z\nCHECKSHARPS\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if a.ForbiddenWord != "!" || a.NoSuggest != "#" || a.KeepCase != "K" || a.Circumfix != "X" || a.NeedAffix != "Z" {
		t.Fatalf("unexpected flag fields: %+v", a)
	}
	if !a.CheckSharps {
		t.Error("CheckSharps = false, want true")
	}
}

func TestReadBreakAndRep(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\nBREAK 2\nBREAK -\nBREAK ^re-\nREP 1\nREP teh the\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(a.Break) != 2 || a.Break[0] != "-" || a.Break[1] != "^re-" {
		t.Fatalf("Break = %v", a.Break)
	}
	if len(a.Rep) != 1 || a.Rep[0][0] != "teh" || a.Rep[0][1] != "the" {
		t.Fatalf("Rep = %v", a.Rep)
	}
}

func TestReadAFTable(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\nAF 2\nAF AB\nAF C\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(a.AliasFlags) != 2 {
		t.Fatalf("expected 2 AF entries, got %d", len(a.AliasFlags))
	}
	want := gflag.NewSet("A", "B")
	got := gflag.NewSet(a.AliasFlags[0]...)
	if !got.Has("A") || !got.Has("B") || len(got) != len(want) {
		t.Fatalf("AliasFlags[0] = %v", a.AliasFlags[0])
	}
}

func TestCompoundMinDefaultsToThree(t *testing.T) {
	a, err := Read(strings.NewReader("SET UTF-8\n"))
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if a.CompoundMin != 3 {
		t.Errorf("CompoundMin = %d, want 3", a.CompoundMin)
	}
}
