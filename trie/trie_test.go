package trie

import "testing"

func TestWithPrefixReturnsAllPrefixMatches(t *testing.T) {
	idx := New[string]()
	idx.Put("un", "un-payload")
	idx.Put("unhappy", "unhappy-payload")
	idx.Put("re", "re-payload")
	if err := idx.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}

	got := idx.WithPrefix("unhappy")
	want := map[string]bool{"un-payload": true, "unhappy-payload": true}
	if len(got) != len(want) {
		t.Fatalf("got %v, want keys %v", got, want)
	}
	for _, g := range got {
		if !want[g] {
			t.Fatalf("unexpected payload %q in %v", g, got)
		}
	}
}

func TestWithPrefixNoMatch(t *testing.T) {
	idx := New[string]()
	idx.Put("un", "un-payload")
	if err := idx.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := idx.WithPrefix("reheat"); len(got) != 0 {
		t.Fatalf("expected no matches, got %v", got)
	}
}

func TestWithPrefixWithoutBuild(t *testing.T) {
	idx := New[string]()
	idx.Put("a", "a-payload")
	got := idx.WithPrefix("abc")
	if len(got) != 1 || got[0] != "a-payload" {
		t.Fatalf("expected [a-payload], got %v", got)
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := New[string]()
	if err := idx.Build(); err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := idx.WithPrefix("anything"); len(got) != 0 {
		t.Fatalf("expected no matches on empty index, got %v", got)
	}
}
