package inflector

import (
	"io/fs"
	"log/slog"

	"github.com/dmitrymomot/inflector/core/inflection"
	"github.com/dmitrymomot/inflector/core/interpolator"
	"github.com/dmitrymomot/inflector/core/loader"
)

// Inflector bundles a locale registry, a loader and an interpolator behind
// one host-facing surface: load inflection documents, interpolate patterns,
// and introspect the loaded data. Safe for concurrent use; reloads swap
// databases atomically.
type Inflector struct {
	registry *inflection.Registry
	interp   *interpolator.Interpolator
	loader   *loader.Loader
}

// Option configures an Inflector during construction.
type Option func(*settings)

type settings struct {
	interpOpts []interpolator.Option
	loaderOpts []loader.Option
}

// WithOptions sets the process-wide interpolation flag defaults.
func WithOptions(opts ...interpolator.Option) Option {
	return func(s *settings) {
		s.interpOpts = append(s.interpOpts, opts...)
	}
}

// WithLogger sets the logger used for load reporting.
func WithLogger(log *slog.Logger) Option {
	return func(s *settings) {
		s.loaderOpts = append(s.loaderOpts, loader.WithLogger(log))
	}
}

// New creates an Inflector with an empty registry.
func New(opts ...Option) (*Inflector, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	registry := inflection.NewRegistry()
	interp, err := interpolator.New(registry, s.interpOpts...)
	if err != nil {
		return nil, err
	}
	l, err := loader.New(registry, s.loaderOpts...)
	if err != nil {
		return nil, err
	}

	return &Inflector{
		registry: registry,
		interp:   interp,
		loader:   l,
	}, nil
}

// Registry exposes the underlying locale registry for hosts that manage
// databases directly.
func (inf *Inflector) Registry() *inflection.Registry {
	return inf.registry
}

// LoadLocale parses a TOML inflection document and installs it for the
// locale, replacing any previous data atomically.
func (inf *Inflector) LoadLocale(locale string, data []byte) error {
	return inf.loader.LoadLocale(locale, data)
}

// LoadFS reads an inflection document from a filesystem and installs it for
// the locale.
func (inf *Inflector) LoadFS(fsys fs.FS, locale, path string) error {
	return inf.loader.LoadFS(fsys, locale, path)
}

// Interpolate resolves every pattern in text for the locale. values maps
// kind names to requested tokens; per-call options override the defaults
// set at construction.
func (inf *Inflector) Interpolate(text, locale string, values map[string]string, opts ...interpolator.Option) (string, error) {
	return inf.interp.Interpolate(text, locale, values, opts...)
}

// Locales returns all locales with loaded inflection data, sorted.
func (inf *Inflector) Locales() []string {
	return inf.registry.Locales()
}

// Match picks the best loaded locale for the requested tags.
func (inf *Inflector) Match(requested ...string) (string, bool) {
	return inf.registry.Match(requested...)
}

// database returns the loose or strict database for a locale, falling back
// to an empty one so query methods behave uniformly for unknown locales.
func (inf *Inflector) database(locale string, strict bool) *inflection.Database {
	if strict {
		if db, ok := inf.registry.StrictDatabase(locale); ok {
			return db
		}
		return inflection.NewStrict()
	}
	if db, ok := inf.registry.Database(locale); ok {
		return db
	}
	return inflection.New()
}

// Kinds returns the loose-mode kinds known for a locale.
func (inf *Inflector) Kinds(locale string) []string {
	return inf.database(locale, false).Kinds()
}

// Tokens returns token name to description for a locale, aliases resolved.
// Pass kind "" for all kinds.
func (inf *Inflector) Tokens(locale, kind string) map[string]string {
	return inf.database(locale, false).Tokens(kind)
}

// TrueTokens returns true-token name to description for a locale. Pass kind
// "" for all kinds.
func (inf *Inflector) TrueTokens(locale, kind string) map[string]string {
	return inf.database(locale, false).TrueTokens(kind)
}

// RawTokens returns every registered name for a locale with alias targets
// left unresolved. Pass kind "" for all kinds.
func (inf *Inflector) RawTokens(locale, kind string) map[string]inflection.RawEntry {
	return inf.database(locale, false).RawTokens(kind)
}

// Aliases returns alias name to target token for a locale. Pass kind "" for
// all kinds.
func (inf *Inflector) Aliases(locale, kind string) map[string]string {
	return inf.database(locale, false).Aliases(kind)
}

// DefaultToken returns the default token of a kind for a locale.
func (inf *Inflector) DefaultToken(locale, kind string) (string, bool) {
	return inf.database(locale, false).Default(kind)
}

// HasKind reports whether a loose-mode kind is known for a locale.
func (inf *Inflector) HasKind(locale, kind string) bool {
	return inf.database(locale, false).HasKind(kind)
}

// HasToken reports whether a token or alias is known for a locale,
// optionally restricted to a kind.
func (inf *Inflector) HasToken(locale, name, kind string) bool {
	return inf.database(locale, false).HasToken(name, kind)
}

// HasTrueToken reports whether a true token is known for a locale,
// optionally restricted to a kind.
func (inf *Inflector) HasTrueToken(locale, name, kind string) bool {
	return inf.database(locale, false).HasTrueToken(name, kind)
}

// HasAlias reports whether an alias is known for a locale, optionally
// restricted to a kind.
func (inf *Inflector) HasAlias(locale, name, kind string) bool {
	return inf.database(locale, false).HasAlias(name, kind)
}

// TrueToken resolves a token or alias to its true token for a locale.
func (inf *Inflector) TrueToken(locale, name, kind string) (string, bool) {
	return inf.database(locale, false).TrueToken(name, kind)
}

// TokenDescription returns a token's description for a locale, resolving
// aliases.
func (inf *Inflector) TokenDescription(locale, name, kind string) (string, bool) {
	return inf.database(locale, false).Description(name, kind)
}

// Strict-mode variants operate on the kind-namespaced databases consumed by
// named patterns. Lookups require the kind, since strict tokens have no
// identity without one.

// StrictKinds returns the strict-mode kinds known for a locale.
func (inf *Inflector) StrictKinds(locale string) []string {
	return inf.database(locale, true).Kinds()
}

// StrictTokens returns token name to description under a strict kind,
// aliases resolved.
func (inf *Inflector) StrictTokens(locale, kind string) map[string]string {
	return inf.database(locale, true).Tokens(kind)
}

// StrictTrueTokens returns true-token name to description under a strict
// kind.
func (inf *Inflector) StrictTrueTokens(locale, kind string) map[string]string {
	return inf.database(locale, true).TrueTokens(kind)
}

// StrictRawTokens returns every registered name under a strict kind with
// alias targets left unresolved.
func (inf *Inflector) StrictRawTokens(locale, kind string) map[string]inflection.RawEntry {
	return inf.database(locale, true).RawTokens(kind)
}

// StrictAliases returns alias name to target token under a strict kind.
func (inf *Inflector) StrictAliases(locale, kind string) map[string]string {
	return inf.database(locale, true).Aliases(kind)
}

// StrictDefaultToken returns the default token of a strict kind.
func (inf *Inflector) StrictDefaultToken(locale, kind string) (string, bool) {
	return inf.database(locale, true).Default(kind)
}

// StrictHasKind reports whether a strict kind is known for a locale.
func (inf *Inflector) StrictHasKind(locale, kind string) bool {
	return inf.database(locale, true).HasKind(kind)
}

// StrictHasToken reports whether a token or alias is known under a strict
// kind.
func (inf *Inflector) StrictHasToken(locale, name, kind string) bool {
	return inf.database(locale, true).HasToken(name, kind)
}

// StrictTrueToken resolves a token or alias to its true token under a
// strict kind.
func (inf *Inflector) StrictTrueToken(locale, name, kind string) (string, bool) {
	return inf.database(locale, true).TrueToken(name, kind)
}

// StrictTokenDescription returns a token's description under a strict kind,
// resolving aliases.
func (inf *Inflector) StrictTokenDescription(locale, name, kind string) (string, bool) {
	return inf.database(locale, true).Description(name, kind)
}
