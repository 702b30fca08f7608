package interpolator

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/inflector/core/inflection"
)

// Interpolator substitutes inflection patterns embedded in translated
// strings. It holds a registry reference and the process-wide flag defaults;
// both are fixed at construction, so a single instance is safe for
// concurrent use.
type Interpolator struct {
	registry *inflection.Registry
	defaults Options
}

// New creates an Interpolator reading from the given registry. Options set
// here become the process-wide defaults; each Interpolate call may override
// them.
func New(registry *inflection.Registry, opts ...Option) (*Interpolator, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	return &Interpolator{
		registry: registry,
		defaults: apply(DefaultOptions(), opts),
	}, nil
}

// Defaults returns the process-wide flag defaults.
func (ip *Interpolator) Defaults() Options {
	return ip.defaults
}

// Interpolate resolves every pattern occurrence in text against the
// databases registered for locale. values maps kind names to requested
// tokens; strict-style "@kind" keys address named patterns. Errors are
// returned only when the Raises flag is in effect; otherwise failed patterns
// degrade to their free-text or default rules and scanning continues.
func (ip *Interpolator) Interpolate(text, locale string, values map[string]string, opts ...Option) (string, error) {
	o := apply(ip.defaults, opts)

	matches := scan(text)
	if len(matches) == 0 {
		return text, nil
	}

	loose, ok := ip.registry.Database(locale)
	if !ok {
		loose = inflection.New()
	}
	strict, ok := ip.registry.StrictDatabase(locale)
	if !ok {
		strict = inflection.NewStrict()
	}

	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(text[last:m.start])
		last = m.end

		if m.escaped {
			b.WriteString(m.raw)
			continue
		}

		db := loose
		if m.kind != "" {
			db = strict
		}
		out, err := resolvePattern(m, db, values, o)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	b.WriteString(text[last:])

	return b.String(), nil
}

// resolvePattern runs one pattern occurrence through kind binding, option
// resolution and group matching. Named patterns arrive with the strict
// database, unnamed ones with the loose database.
func resolvePattern(m match, db *inflection.Database, values map[string]string, o Options) (string, error) {
	groups := parseBody(m.body)
	fallback, hasFallback := freeText(groups)

	render := func(value, token, kind string) string {
		if value == loudMarker {
			desc, ok := db.Description(token, kind)
			if !ok {
				return ""
			}
			return desc
		}
		if strings.HasPrefix(value, string(escapeChar)+loudMarker) {
			return value[1:]
		}
		return value
	}

	// degrade is the non-raising outcome of any failed condition: the
	// pattern falls through to its free-text fallback. A degraded pattern
	// carries no matched token, so a loud-marker fallback has no description
	// to substitute and renders empty.
	degrade := func(err error) (string, error) {
		if o.Raises {
			return "", err
		}
		if hasFallback {
			return render(fallback, "", m.kind), nil
		}
		return "", nil
	}

	// Kind binding and token validation. Named patterns are bound up front
	// and look tokens up scoped to their kind; unnamed patterns bind to the
	// kind of the first resolved token and must stay within it.
	boundKind := m.kind
	hasTokens := false
	for gi := range groups {
		g := &groups[gi]
		if g.free {
			continue
		}
		for ri := range g.refs {
			hasTokens = true
			ref := &g.refs[ri]
			if ref.name == "" {
				return degrade(&InvalidTokenError{Pattern: m.raw, Token: ref.name})
			}

			lookupKind := m.kind
			if o.AliasedPatterns {
				if t, ok := db.TrueToken(ref.name, lookupKind); ok {
					ref.resolved = t
				}
			}

			kind, ok := db.Kind(ref.name, lookupKind)
			if !ok {
				return degrade(&InvalidTokenError{Pattern: m.raw, Token: ref.name})
			}
			if boundKind == "" {
				boundKind = kind
			} else if kind != boundKind {
				return degrade(&MisplacedTokenError{Pattern: m.raw, Token: ref.name, Kind: boundKind})
			}
		}
	}

	// A pattern with no token groups is pure free text.
	if !hasTokens {
		if hasFallback {
			return render(fallback, "", boundKind), nil
		}
		return "", nil
	}

	requested, supplied := requestedOption(values, m.kind, boundKind)

	// The effective option is the resolved request, or the kind's default
	// when the request is unusable and unknown defaults are on, or nothing.
	effective := ""
	requestedValid := false
	if supplied {
		if t, ok := db.TrueToken(requested, boundKind); ok {
			effective = t
			requestedValid = true
		}
	}
	if effective == "" && o.UnknownDefaults {
		if def, ok := db.Default(boundKind); ok {
			effective = def
		}
	}
	if effective == "" && o.Raises {
		if supplied {
			return "", &OptionIncorrectError{Pattern: m.raw, Kind: boundKind, Option: requested}
		}
		return "", &OptionNotFoundError{Pattern: m.raw, Kind: boundKind}
	}

	// First matching group wins. A group with no negated tokens matches when
	// the effective option is among its tokens; a group with exactly one
	// negated token matches when the option is anything else. Groups with
	// two or more negations never match.
	for _, g := range groups {
		if g.free {
			continue
		}
		if groupMatches(g, effective) {
			return render(g.text, effective, boundKind), nil
		}
	}

	// A recognized but not enumerated option may stand in for the default
	// token, taking the default token's group over the free-text fallback.
	if o.ExcludedDefaults && requestedValid {
		if def, ok := db.Default(boundKind); ok {
			for _, g := range groups {
				if g.free {
					continue
				}
				for _, ref := range g.refs {
					if !ref.negated && ref.resolved == def {
						return render(g.text, def, boundKind), nil
					}
				}
			}
		}
	}

	if hasFallback {
		return render(fallback, effective, boundKind), nil
	}
	return "", nil
}

// requestedOption finds the caller-supplied option value for a pattern.
// Named patterns prefer the strict-style "@kind" key over the plain one; an
// empty value counts as not supplied.
func requestedOption(values map[string]string, patternKind, boundKind string) (string, bool) {
	if boundKind == "" {
		return "", false
	}

	keys := []string{boundKind, "@" + boundKind}
	if patternKind != "" {
		keys = []string{"@" + patternKind, patternKind}
	}
	for _, key := range keys {
		if v, ok := values[key]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// groupMatches applies the matching rules for one group against the
// effective option token.
func groupMatches(g group, effective string) bool {
	var negated *tokenRef
	negations := 0
	for i := range g.refs {
		if g.refs[i].negated {
			negated = &g.refs[i]
			negations++
		}
	}

	switch negations {
	case 0:
		if effective == "" {
			return false
		}
		for _, ref := range g.refs {
			if ref.resolved == effective {
				return true
			}
		}
		return false
	case 1:
		return effective != negated.resolved
	default:
		return false
	}
}
