// Package completion holds the process-wide index and the two entry points a
// host calls: Init once at load, Lookup any number of times afterwards.
package completion

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/charmbracelet/log"
)

// LoadedMessage is returned to the host after a successful Init.
const LoadedMessage = "Prose-Complete module loaded"

// ErrNilIndex is returned when Install is handed nothing to install.
var ErrNilIndex = errors.New("cannot install a nil index")

// instance is written at most once. Readers never block.
var instance atomic.Pointer[suggest.Index]

// Install publishes idx as the process-wide index. Only the first call can
// succeed; later calls return suggest.ErrDoubleInit and leave it untouched.
func Install(idx *suggest.Index) error {
	if idx == nil {
		return ErrNilIndex
	}
	if !instance.CompareAndSwap(nil, idx) {
		log.Errorf("Index already installed, refusing to replace it")
		return suggest.ErrDoubleInit
	}
	log.Debugf("Installed index with %d entries", idx.Len())
	return nil
}

// Init builds an index from lines and installs it.
func Init(lines []string, opts ...suggest.Option) (msg string, err error) {
	defer recoverInto(&err, "init")

	if instance.Load() != nil {
		return "", suggest.ErrDoubleInit
	}
	idx, err := suggest.Build(lines, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to build index: %w", err)
	}
	if err := Install(idx); err != nil {
		return "", err
	}
	return LoadedMessage, nil
}

// Current returns the installed index, or suggest.ErrIndexUnavailable.
func Current() (*suggest.Index, error) {
	idx := instance.Load()
	if idx == nil {
		return nil, suggest.ErrIndexUnavailable
	}
	return idx, nil
}

// Lookup queries the installed index.
func Lookup(query string) (results []string, err error) {
	defer recoverInto(&err, "lookup")

	idx, err := Current()
	if err != nil {
		return nil, err
	}
	return idx.Lookup(query)
}

// recoverInto turns a panic in an entry point into an error for the host.
func recoverInto(err *error, op string) {
	if r := recover(); r != nil {
		log.Errorf("Recovered from panic in %s: %v", op, r)
		*err = fmt.Errorf("%s: internal error: %v", op, r)
	}
}

// Module binds a vocabulary and its build options to the package entry
// points, so a host adapter can drive them without knowing about the cell.
type Module struct {
	Lines   []string
	Options []suggest.Option
}

// Init builds and installs the module's vocabulary.
func (m Module) Init() (string, error) {
	return Init(m.Lines, m.Options...)
}

// Lookup queries the installed index.
func (m Module) Lookup(query string) ([]string, error) {
	return Lookup(query)
}

// Stats reports counters of the installed index.
func (m Module) Stats() (map[string]int, error) {
	idx, err := Current()
	if err != nil {
		return nil, err
	}
	return idx.Stats(), nil
}
