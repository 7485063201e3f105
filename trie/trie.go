// Package trie implements the forward/reverse affix index spec.md §4.2
// calls for: "given a word, find every registered affix whose add-string is
// a prefix (or, reversed, a suffix) of it." Grounded on spyll's
// data.aff.FSA (Leaf/put/traverse/lookup), generalized with Go generics, and
// accelerated with an Aho-Corasick prefilter borrowed from coregex's own
// literal-alternation engine.
package trie

import (
	"github.com/coregx/ahocorasick"
)

type node[T any] struct {
	children map[rune]*node[T]
	payloads []T
}

func newNode[T any]() *node[T] {
	return &node[T]{children: make(map[rune]*node[T])}
}

// Index is a rune trie mapping each registered key to zero or more payloads,
// with WithPrefix returning the union of payloads for every registered key
// that is a prefix of the query. Callers reverse both keys and queries to
// get suffix-lookup semantics (this is how the affix index's "suffix trie"
// is built — see lookup.New).
type Index[T any] struct {
	root  *node[T]
	keys  [][]byte // registered keys, for Build's automaton
	built bool
	ac    *ahocorasick.Automaton
}

// New returns an empty Index.
func New[T any]() *Index[T] {
	return &Index[T]{root: newNode[T]()}
}

// Put registers payload under key. Safe to call repeatedly with the same
// key to accumulate multiple payloads (e.g. several suffixes sharing an
// "add" string via different conditions).
func (idx *Index[T]) Put(key string, payload T) {
	cur := idx.root
	for _, r := range key {
		next, ok := cur.children[r]
		if !ok {
			next = newNode[T]()
			cur.children[r] = next
		}
		cur = next
	}
	cur.payloads = append(cur.payloads, payload)
	idx.keys = append(idx.keys, []byte(key))
	idx.built = false
}

// Build compiles the Aho-Corasick prefilter over every registered key. Must
// be called after the last Put and before MightMatch; WithPrefix works
// without it (Build only speeds up the reject-early path).
func (idx *Index[T]) Build() error {
	if len(idx.keys) == 0 {
		idx.ac = nil
		idx.built = true
		return nil
	}
	builder := ahocorasick.NewBuilder()
	for _, k := range idx.keys {
		builder.AddPattern(k)
	}
	auto, err := builder.Build()
	if err != nil {
		return err
	}
	idx.ac = auto
	idx.built = true
	return nil
}

// MightMatch conservatively reports whether query could possibly have any
// registered key as a prefix. A "no" here is definitive: if no registered
// key occurs anywhere in query, none can occur at the very start of it
// either, so WithPrefix would return nothing. A "yes" still requires the
// WithPrefix walk to confirm (a key occurring mid-string doesn't mean it's
// a prefix).
func (idx *Index[T]) MightMatch(query string) bool {
	if !idx.built {
		return true // no prefilter compiled yet: fall back to "maybe"
	}
	if idx.ac == nil {
		return false // no keys registered at all
	}
	return idx.ac.Find([]byte(query), 0) != nil
}

// WithPrefix returns the payloads of every registered key that is a prefix
// of query, in the order their defining Put calls ran into each other along
// the shared path (root's own payloads first, then depth 1, depth 2, ...).
func (idx *Index[T]) WithPrefix(query string) []T {
	if !idx.MightMatch(query) {
		return nil
	}
	var out []T
	cur := idx.root
	out = append(out, cur.payloads...)
	for _, r := range query {
		next, ok := cur.children[r]
		if !ok {
			break
		}
		out = append(out, next.payloads...)
		cur = next
	}
	return out
}
