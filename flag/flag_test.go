package flag

import "testing"

func TestDecodeShort(t *testing.T) {
	set, err := Decode("AB", Short)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !set.Has("A") || !set.Has("B") {
		t.Fatalf("expected A and B, got %v", set)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 flags, got %d", len(set))
	}
}

func TestDecodeLong(t *testing.T) {
	set, err := Decode("aabbcc", Long)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, want := range []Flag{"aa", "bb", "cc"} {
		if !set.Has(want) {
			t.Fatalf("expected %q in %v", want, set)
		}
	}
}

func TestDecodeLongOddLength(t *testing.T) {
	if _, err := Decode("aab", Long); err == nil {
		t.Fatal("expected error for odd-length long encoding")
	}
}

func TestDecodeNumeric(t *testing.T) {
	set, err := Decode("1,2,300", Numeric)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	for _, want := range []Flag{"1", "2", "300"} {
		if !set.Has(want) {
			t.Fatalf("expected %q in %v", want, set)
		}
	}
}

func TestDecodeUTF8(t *testing.T) {
	set, err := Decode("şğ", UTF8)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !set.Has("ş") || !set.Has("ğ") {
		t.Fatalf("expected ş and ğ, got %v", set)
	}
}

func TestSetUnionIntersect(t *testing.T) {
	a := NewSet("A", "B")
	b := NewSet("B", "C")
	u := a.Union(b)
	for _, want := range []Flag{"A", "B", "C"} {
		if !u.Has(want) {
			t.Fatalf("union missing %q", want)
		}
	}
	i := a.Intersect(b)
	if len(i) != 1 || !i.Has("B") {
		t.Fatalf("expected intersection {B}, got %v", i)
	}
}

func TestParseEncoding(t *testing.T) {
	cases := map[string]Encoding{
		"long":  Long,
		"num":   Numeric,
		"UTF-8": UTF8,
	}
	for in, want := range cases {
		got, err := ParseEncoding(in)
		if err != nil {
			t.Fatalf("ParseEncoding(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseEncoding(%q) = %v, want %v", in, got, want)
		}
	}
}
