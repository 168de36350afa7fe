// Package suggest is the core, building the prefix tree over the vocabulary and
// running predictive searches against it with prefix-only filtering.
package suggest

// Tree is the storage behind an Index. Implementations hold distinct byte
// sequences and enumerate every stored entry below a prefix.
type Tree interface {
	// Insert stores word and reports whether it was not already present
	Insert(word string) bool

	// Contains reports exact membership
	Contains(word string) bool

	// Len returns the number of distinct stored entries
	Len() int

	// WalkPrefix calls fn for every stored entry that starts with prefix,
	// prefix itself included. A non-nil error from fn stops the walk and is returned.
	WalkPrefix(prefix string, fn func(word string) error) error
}

// Backend names a Tree implementation.
type Backend string

const (
	BackendPatricia Backend = "patricia"
	BackendRadix    Backend = "radix"
)

// NewTree returns an empty tree for the given backend.
func NewTree(b Backend) (Tree, error) {
	switch b {
	case BackendPatricia, "":
		return newPatriciaTree(), nil
	case BackendRadix:
		return newRadixTree(), nil
	default:
		return nil, &BackendError{Backend: string(b)}
	}
}
