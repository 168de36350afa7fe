package suggest

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// Index is an immutable prefix tree over the vocabulary.
// It is safe for concurrent lookups once built.
type Index struct {
	tree Tree
	opts Options
}

// Builder collects vocabulary lines into a tree until Build seals it.
type Builder struct {
	tree    Tree
	opts    Options
	pushed  int
	skipped int
	sealed  bool
}

// NewBuilder returns a builder for an empty tree of the configured backend.
func NewBuilder(opts ...Option) (*Builder, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	tree, err := NewTree(o.Backend)
	if err != nil {
		return nil, err
	}
	return &Builder{tree: tree, opts: o}, nil
}

// Push inserts one vocabulary line. Empty lines are skipped: the empty entry
// could only match the empty query, which never reaches the tree.
func (b *Builder) Push(line string) error {
	if b.sealed {
		return ErrBuilderSealed
	}
	b.pushed++
	if line == "" {
		b.skipped++
		return nil
	}
	b.tree.Insert(line)
	return nil
}

// Build seals the builder and returns the index.
func (b *Builder) Build() (*Index, error) {
	if b.sealed {
		return nil, ErrBuilderSealed
	}
	b.sealed = true
	log.Debugf("Built %s index: %d lines, %d entries, %d empty skipped",
		b.opts.Backend, b.pushed, b.tree.Len(), b.skipped)
	idx := &Index{tree: b.tree, opts: b.opts}
	b.tree = nil
	return idx, nil
}

// Build inserts every line and returns the sealed index.
func Build(lines []string, opts ...Option) (*Index, error) {
	b, err := NewBuilder(opts...)
	if err != nil {
		return nil, err
	}
	for _, line := range lines {
		if err := b.Push(line); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// Lookup runs a query against idx. A nil index reports ErrIndexUnavailable.
func Lookup(idx *Index, query string) ([]string, error) {
	if idx == nil {
		return nil, ErrIndexUnavailable
	}
	return idx.Lookup(query)
}

// Lookup returns the entries starting with query, minus those extending a
// shorter entry in the same match set, capped at the index limit.
// The empty query returns no entries.
func (idx *Index) Lookup(query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}

	matches, err := idx.PredictiveSearch(query)
	if err != nil {
		return nil, err
	}

	var results []string
	switch {
	case idx.opts.Policy == PolicyFilterOverLimit && len(matches) <= idx.opts.Limit:
		results = matches
	default:
		results = truncate(filterSorted(matches), idx.opts.Limit)
	}

	log.Debugf("Lookup %q: %d matches, %d results (policy=%s)", query, len(matches), len(results), idx.opts.Policy)
	return results, nil
}

// PredictiveSearch returns every stored entry that starts with query, query
// itself included, in byte order. Nothing is filtered or truncated.
func (idx *Index) PredictiveSearch(query string) ([]string, error) {
	matches := make([]string, 0, 16)
	err := idx.tree.WalkPrefix(query, func(word string) error {
		if !utf8.ValidString(word) {
			return fmt.Errorf("%w: %q", ErrEncodingInvariant, word)
		}
		matches = append(matches, word)
		return nil
	})
	if err != nil {
		log.Errorf("Predictive search for %q failed: %v", query, err)
		return nil, err
	}
	sort.Strings(matches)
	return matches, nil
}

// Contains reports whether word is a vocabulary entry.
func (idx *Index) Contains(word string) bool {
	return idx.tree.Contains(word)
}

// Len returns the number of distinct entries.
func (idx *Index) Len() int {
	return idx.tree.Len()
}

// Options returns the settings the index was built with.
func (idx *Index) Options() Options {
	return idx.opts
}

// Stats returns counters about the index.
func (idx *Index) Stats() map[string]int {
	return map[string]int{
		"entries": idx.tree.Len(),
		"limit":   idx.opts.Limit,
	}
}

// FilterPrefixesOnly drops every word that has another, shorter word of the
// same slice as a prefix. Duplicates collapse. The result is in byte order.
func FilterPrefixesOnly(words []string) []string {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)
	return filterSorted(sorted)
}

// filterSorted expects byte-ordered input. A proper prefix always sorts
// before its extensions, and everything between them shares it, so only the
// last kept word can make the current one redundant.
func filterSorted(sorted []string) []string {
	kept := make([]string, 0, len(sorted))
	for _, w := range sorted {
		if n := len(kept); n > 0 && strings.HasPrefix(w, kept[n-1]) {
			continue
		}
		kept = append(kept, w)
	}
	return kept
}

func truncate(words []string, limit int) []string {
	if limit > 0 && len(words) > limit {
		return words[:limit]
	}
	return words
}
