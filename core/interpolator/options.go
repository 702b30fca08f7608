package interpolator

// Options holds the four flags controlling pattern resolution. The zero
// value is not the default configuration; use DefaultOptions.
type Options struct {
	// Raises turns invalid-token, misplaced-token and option-resolution
	// conditions into returned errors instead of silent fallbacks.
	Raises bool

	// UnknownDefaults substitutes a kind's default token when the requested
	// option is missing, empty or unrecognized.
	UnknownDefaults bool

	// ExcludedDefaults prefers the default token's group over the free-text
	// fallback when a recognized but not enumerated option was supplied.
	ExcludedDefaults bool

	// AliasedPatterns resolves alias names written inside pattern groups to
	// their true tokens before matching.
	AliasedPatterns bool
}

// DefaultOptions returns the stock configuration: only UnknownDefaults is
// enabled.
func DefaultOptions() Options {
	return Options{UnknownDefaults: true}
}

// Option overrides a single flag, either process-wide at construction or for
// one Interpolate call.
type Option func(*Options)

// WithRaises toggles error raising for invalid, misplaced and unresolvable
// conditions.
func WithRaises(raises bool) Option {
	return func(o *Options) {
		o.Raises = raises
	}
}

// WithUnknownDefaults toggles falling back to a kind's default token for
// missing or unrecognized options.
func WithUnknownDefaults(enabled bool) Option {
	return func(o *Options) {
		o.UnknownDefaults = enabled
	}
}

// WithExcludedDefaults toggles substituting the default token's group value
// when no group matches a recognized option.
func WithExcludedDefaults(enabled bool) Option {
	return func(o *Options) {
		o.ExcludedDefaults = enabled
	}
}

// WithAliasedPatterns toggles alias resolution for tokens written inside
// pattern groups.
func WithAliasedPatterns(enabled bool) Option {
	return func(o *Options) {
		o.AliasedPatterns = enabled
	}
}

// apply copies base and layers the overrides on top, leaving base untouched.
func apply(base Options, opts []Option) Options {
	result := base
	for _, opt := range opts {
		opt(&result)
	}
	return result
}
