package loader

import (
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"unicode"

	"github.com/pelletier/go-toml/v2"

	"github.com/dmitrymomot/inflector/core/inflection"
	"github.com/dmitrymomot/inflector/core/logger"
)

const (
	// defaultKey is the reserved entry name declaring a kind's default token.
	defaultKey = "default"

	// strictPrefix marks a kind as strict-mode; aliasPrefix marks an entry
	// value as an alias target.
	strictPrefix = "@"
	aliasPrefix  = "@"

	// reservedChars are pattern syntax characters that must not appear in
	// token or kind names.
	reservedChars = "@{}|:,!~\\"
)

// document is the wire shape of an inflection file: one table per kind,
// mapping token names to descriptions or "@target" alias declarations.
type document struct {
	Inflections map[string]map[string]string `toml:"inflections"`
}

// Loader parses inflection documents and installs them into a registry.
type Loader struct {
	registry *inflection.Registry
	log      *slog.Logger
}

// Option configures a Loader during construction.
type Option func(*Loader)

// WithLogger sets the logger used to report load progress and failures.
// Without it the loader stays silent.
func WithLogger(log *slog.Logger) Option {
	return func(l *Loader) {
		l.log = log
	}
}

// New creates a Loader installing into the given registry.
func New(registry *inflection.Registry, opts ...Option) (*Loader, error) {
	if registry == nil {
		return nil, fmt.Errorf("registry cannot be nil")
	}
	l := &Loader{
		registry: registry,
		log:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// LoadLocale parses a TOML inflection document and atomically replaces the
// locale's databases. On any error the registry is left untouched, so
// readers never observe a partially loaded locale.
func (l *Loader) LoadLocale(locale string, data []byte) error {
	loose, strict, err := Parse(data)
	if err != nil {
		l.log.Error("inflection load failed", logger.Locale(locale), logger.Error(err))
		return fmt.Errorf("load inflections for locale %q: %w", locale, err)
	}
	if err := l.registry.Replace(locale, loose, strict); err != nil {
		return fmt.Errorf("load inflections for locale %q: %w", locale, err)
	}
	l.log.Debug("inflections loaded",
		logger.Locale(locale),
		logger.Count("kinds", len(loose.Kinds())+len(strict.Kinds())),
	)
	return nil
}

// LoadFS reads an inflection document from a filesystem (embed.FS friendly)
// and installs it for the locale.
func (l *Loader) LoadFS(fsys fs.FS, locale, path string) error {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("read inflection file %q: %w", path, err)
	}
	return l.LoadLocale(locale, data)
}

// Parse builds a fresh loose and strict database pair from one TOML
// document. True tokens are inserted first, then aliases, then defaults, so
// declaration order inside the file never matters. The first integrity
// violation aborts parsing.
func Parse(data []byte) (*inflection.Database, *inflection.Database, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to parse inflection document: %w", err)
	}

	loose := inflection.New()
	strict := inflection.NewStrict()
	kinds := slices.Sorted(maps.Keys(doc.Inflections))

	// True tokens across all kinds first, so aliases and defaults can
	// target tokens of kinds declared later in the file.
	for _, rawKind := range kinds {
		kind, db, err := kindTarget(rawKind, loose, strict)
		if err != nil {
			return nil, nil, err
		}
		entries := doc.Inflections[rawKind]
		for _, name := range slices.Sorted(maps.Keys(entries)) {
			value := entries[name]
			if name == defaultKey || strings.HasPrefix(value, aliasPrefix) {
				continue
			}
			if reason := checkName(name); reason != "" {
				return nil, nil, &BadTokenError{Token: name, Kind: kind, Reason: reason}
			}
			if value == "" {
				return nil, nil, &BadTokenError{Token: name, Kind: kind, Reason: "empty description"}
			}
			if !db.Strict() {
				if other, ok := db.Kind(name, ""); ok && other != kind {
					return nil, nil, &DuplicatedTokenError{Token: name, Kind: kind, OriginalKind: other}
				}
			}
			db.AddToken(name, kind, value)
		}
	}

	for _, rawKind := range kinds {
		kind, db, err := kindTarget(rawKind, loose, strict)
		if err != nil {
			return nil, nil, err
		}
		entries := doc.Inflections[rawKind]
		for _, name := range slices.Sorted(maps.Keys(entries)) {
			value := entries[name]
			if name == defaultKey || !strings.HasPrefix(value, aliasPrefix) {
				continue
			}
			if reason := checkName(name); reason != "" {
				return nil, nil, &BadTokenError{Token: name, Kind: kind, Reason: reason}
			}
			target := strings.TrimPrefix(value, aliasPrefix)
			if !db.Strict() {
				if other, ok := db.Kind(name, ""); ok && other != kind {
					return nil, nil, &DuplicatedTokenError{Token: name, Kind: kind, OriginalKind: other}
				}
			}
			if err := db.AddAlias(name, target, kind); err != nil {
				return nil, nil, &BadAliasError{Token: name, Target: target, Kind: kind, Err: err}
			}
		}
	}

	for _, rawKind := range kinds {
		kind, db, err := kindTarget(rawKind, loose, strict)
		if err != nil {
			return nil, nil, err
		}
		if def, ok := doc.Inflections[rawKind][defaultKey]; ok {
			db.SetDefault(kind, def)
		}
	}

	if err := loose.ValidateDefaults(); err != nil {
		return nil, nil, fmt.Errorf("invalid default token: %w", err)
	}
	if err := strict.ValidateDefaults(); err != nil {
		return nil, nil, fmt.Errorf("invalid default token: %w", err)
	}

	return loose, strict, nil
}

// kindTarget resolves a raw kind table name to its clean kind name and the
// database it populates.
func kindTarget(rawKind string, loose, strict *inflection.Database) (string, *inflection.Database, error) {
	kind := strings.TrimPrefix(rawKind, strictPrefix)
	if reason := checkName(kind); reason != "" {
		return "", nil, &BadTokenError{Kind: rawKind, Reason: "bad kind name: " + reason}
	}
	if kind != rawKind {
		return kind, strict, nil
	}
	return kind, loose, nil
}

// checkName validates a token or kind name against the pattern syntax.
func checkName(name string) string {
	if name == "" {
		return "empty name"
	}
	if strings.ContainsAny(name, reservedChars) {
		return "name contains reserved characters"
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return "name contains whitespace"
	}
	return ""
}
