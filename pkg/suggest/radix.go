package suggest

import (
	"github.com/armon/go-radix"
)

// radixTree keeps entries in a compressed radix tree. Walks come back in
// lexical order, unlike patricia.
type radixTree struct {
	tree *radix.Tree
}

func newRadixTree() *radixTree {
	return &radixTree{tree: radix.New()}
}

func (t *radixTree) Insert(word string) bool {
	_, updated := t.tree.Insert(word, present)
	return !updated
}

func (t *radixTree) Contains(word string) bool {
	_, ok := t.tree.Get(word)
	return ok
}

func (t *radixTree) Len() int {
	return t.tree.Len()
}

func (t *radixTree) WalkPrefix(prefix string, fn func(word string) error) error {
	var walkErr error
	t.tree.WalkPrefix(prefix, func(k string, _ interface{}) bool {
		if err := fn(k); err != nil {
			walkErr = err
			return true
		}
		return false
	})
	return walkErr
}
