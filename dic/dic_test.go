package dic

import (
	"strings"
	"testing"

	gflag "github.com/az-ai-labs/gohunspell/flag"
)

func TestReadBasic(t *testing.T) {
	d, err := Read(strings.NewReader("2\ncat/S\ndog\n"), gflag.Short, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(d.Words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(d.Words))
	}
	cat := d.Homonyms("cat", false)
	if len(cat) != 1 || !cat[0].Flags.Has("S") {
		t.Fatalf("cat homonyms = %v", cat)
	}
	dog := d.Homonyms("dog", false)
	if len(dog) != 1 || len(dog[0].Flags) != 0 {
		t.Fatalf("dog homonyms = %v", dog)
	}
}

func TestHomonymsIgnoreCaseUsesLowercasedKey(t *testing.T) {
	d, err := Read(strings.NewReader("1\nStraße\n"), gflag.Short, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if got := d.Homonyms("straße", true); len(got) != 1 {
		t.Fatalf("Homonyms(straße, true) = %v, want 1 match", got)
	}
	if got := d.Homonyms("Straße", true); len(got) != 0 {
		t.Fatalf("Homonyms(Straße, true) = %v, want 0 matches (key must already be lowercased)", got)
	}
}

func TestMultipleHomonymsGroupByStem(t *testing.T) {
	d, err := Read(strings.NewReader("2\nwind/N\nwind/V\n"), gflag.Short, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := d.Homonyms("wind", false)
	if len(got) != 2 {
		t.Fatalf("expected 2 homonyms for wind, got %d", len(got))
	}
}

func TestHasFlagForAll(t *testing.T) {
	d, err := Read(strings.NewReader("2\nwind/N\nwind/V!\n"), gflag.Short, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if d.HasFlag("wind", "!", true) {
		t.Error("HasFlag(forAll=true) = true, want false (only one homonym carries !)")
	}
	if !d.HasFlag("wind", "!", false) {
		t.Error("HasFlag(forAll=false) = false, want true")
	}
}

func TestReadWithAliasFlags(t *testing.T) {
	aliasFlags := [][]gflag.Flag{{"A", "B"}, {"C"}}
	d, err := Read(strings.NewReader("1\nfoo/1\n"), gflag.Short, aliasFlags)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := d.Homonyms("foo", false)
	if len(got) != 1 || !got[0].Flags.Has("A") || !got[0].Flags.Has("B") {
		t.Fatalf("foo flags = %v, want {A,B} via AF table", got)
	}
}

func TestReadIgnoresMorphologicalFields(t *testing.T) {
	d, err := Read(strings.NewReader("1\ncat/S po:noun\n"), gflag.Short, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	got := d.Homonyms("cat", false)
	if len(got) != 1 || !got[0].Flags.Has("S") {
		t.Fatalf("cat flags = %v", got)
	}
}

func TestReadEmptyDic(t *testing.T) {
	d, err := Read(strings.NewReader("0\n"), gflag.Short, nil)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if len(d.Words) != 0 {
		t.Fatalf("expected 0 words, got %d", len(d.Words))
	}
}
