package suggest

// DefaultLimit caps the number of completions one lookup returns.
const DefaultLimit = 1000

// Policy decides when the prefix-only filter runs relative to the limit.
type Policy string

const (
	// PolicyFilterAlways filters every match set, then truncates to the limit.
	PolicyFilterAlways Policy = "always"

	// PolicyFilterOverLimit returns match sets within the limit verbatim and
	// only filters and truncates the ones above it.
	PolicyFilterOverLimit Policy = "over_limit"
)

// ParsePolicy maps a config value onto a Policy. Empty means the default.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyFilterAlways, "":
		return PolicyFilterAlways, nil
	case PolicyFilterOverLimit:
		return PolicyFilterOverLimit, nil
	default:
		return "", &PolicyError{Policy: s}
	}
}

// Options are fixed when an index is built and apply to every lookup on it.
type Options struct {
	Backend Backend
	Limit   int
	Policy  Policy
}

// Option mutates Options.
type Option func(*Options)

// WithBackend picks the tree implementation.
func WithBackend(b Backend) Option {
	return func(o *Options) {
		o.Backend = b
	}
}

// WithLimit sets the maximum result count. Values below 1 keep the default.
func WithLimit(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.Limit = n
		}
	}
}

// WithPolicy sets the limit policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		o.Policy = p
	}
}

func defaultOptions() Options {
	return Options{
		Backend: BackendPatricia,
		Limit:   DefaultLimit,
		Policy:  PolicyFilterAlways,
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	p, err := ParsePolicy(string(o.Policy))
	if err != nil {
		return o, err
	}
	o.Policy = p
	return o, nil
}
