package suggest

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// present is stored as the item of every entry. patricia skips nil items
// during visits, so the marker must be non-nil.
var present = struct{}{}

type patriciaTree struct {
	trie *patricia.Trie
	size int
}

func newPatriciaTree() *patriciaTree {
	return &patriciaTree{trie: patricia.NewTrie()}
}

func (t *patriciaTree) Insert(word string) bool {
	if !t.trie.Insert(patricia.Prefix(word), present) {
		return false
	}
	t.size++
	return true
}

func (t *patriciaTree) Contains(word string) bool {
	return t.trie.Get(patricia.Prefix(word)) != nil
}

func (t *patriciaTree) Len() int {
	return t.size
}

func (t *patriciaTree) WalkPrefix(prefix string, fn func(word string) error) error {
	return t.trie.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		// string(p) copies, the visitor's slice is not ours to keep
		return fn(string(p))
	})
}
