package suggest

import (
	"errors"
	"fmt"
)

var (
	// ErrDoubleInit is returned when an index is installed over an existing one.
	ErrDoubleInit = errors.New("failed to set trie instance")

	// ErrIndexUnavailable is returned when a query arrives before any index was installed.
	ErrIndexUnavailable = errors.New("failed to acquire trie instance")

	// ErrEncodingInvariant marks a stored entry that does not decode as UTF-8.
	// Only well-formed text is ever inserted, so seeing it is a defect.
	ErrEncodingInvariant = errors.New("stored entry is not valid UTF-8")

	// ErrBuilderSealed is returned when a builder is used after Build.
	ErrBuilderSealed = errors.New("builder already produced an index")
)

// BackendError reports an unknown tree backend name.
type BackendError struct {
	Backend string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("unknown index backend %q (expected %q or %q)", e.Backend, BackendPatricia, BackendRadix)
}

// PolicyError reports an unknown limit policy name.
type PolicyError struct {
	Policy string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("unknown limit policy %q (expected %q or %q)", e.Policy, PolicyFilterAlways, PolicyFilterOverLimit)
}
