package inflection

import (
	"fmt"
	"sort"
)

// entry is a single record in the database: either a true token carrying its
// own description, or an alias carrying the true token it stands for.
type entry struct {
	kind        string
	description string
	target      string
	alias       bool
}

// entryKey identifies an entry. In loose mode the kind component is always
// empty, giving one flat namespace shared by all kinds. In strict mode the
// kind participates in identity, so the same token name may exist once per
// kind.
type entryKey struct {
	name string
	kind string
}

// RawEntry is the value type returned by RawTokens. For a true token Text is
// the description; for an alias Text is the target token name.
type RawEntry struct {
	Text  string
	Alias bool
}

// Database stores the inflection tokens, aliases and default tokens for a
// single locale. It is populated by a loader and read-only during
// interpolation; it performs no I/O and holds no locks. Concurrent reads are
// safe as long as the owner serializes population against reads, which the
// Registry does by swapping fully built instances.
type Database struct {
	strict   bool
	entries  map[entryKey]entry
	kinds    map[string]struct{}
	defaults map[string]string
}

// New creates an empty loose-mode database: one flat token namespace shared
// across kinds.
func New() *Database {
	return &Database{
		entries:  make(map[entryKey]entry),
		kinds:    make(map[string]struct{}),
		defaults: make(map[string]string),
	}
}

// NewStrict creates an empty strict-mode database: tokens are namespaced per
// kind, so the same name may exist under several kinds.
func NewStrict() *Database {
	db := New()
	db.strict = true
	return db
}

// Strict reports whether kind participates in token identity.
func (db *Database) Strict() bool {
	return db.strict
}

// IsEmpty reports whether no tokens or aliases are registered.
func (db *Database) IsEmpty() bool {
	return len(db.entries) == 0
}

// key builds the storage key for a token name under a kind, honoring the
// database mode.
func (db *Database) key(name, kind string) entryKey {
	if db.strict {
		return entryKey{name: name, kind: kind}
	}
	return entryKey{name: name}
}

// lookup fetches the entry for a token. In loose mode a non-empty kind acts
// as a filter: an entry of a different kind is reported as missing rather
// than mismatched. In strict mode an empty kind never matches anything,
// since kind is part of identity there.
func (db *Database) lookup(name, kind string) (entry, bool) {
	if name == "" {
		return entry{}, false
	}
	if db.strict && kind == "" {
		return entry{}, false
	}
	e, ok := db.entries[db.key(name, kind)]
	if !ok {
		return entry{}, false
	}
	if kind != "" && e.kind != kind {
		return entry{}, false
	}
	return e, true
}

// AddToken inserts or overwrites a true token and registers its kind.
// Overwriting is intentional: loaders repopulate databases wholesale on
// reload. Name and kind validation is the loader's responsibility.
func (db *Database) AddToken(name, kind, description string) {
	db.entries[db.key(name, kind)] = entry{kind: kind, description: description}
	db.kinds[kind] = struct{}{}
}

// AddAlias inserts or overwrites an alias pointing at target. The target
// must already exist as a true token, which keeps every alias single-hop:
// resolution never chases a chain and cycles cannot form. When kind is
// non-empty it must match the target's kind. On any failure the database is
// left unchanged.
//
// In strict mode kind is required, since the target cannot be located
// without it.
func (db *Database) AddAlias(name, target, kind string) error {
	if name == "" {
		return fmt.Errorf("add alias: %w", ErrEmptyName)
	}
	if target == "" {
		return fmt.Errorf("add alias %q: %w", name, ErrEmptyTarget)
	}
	if db.strict && kind == "" {
		return fmt.Errorf("add alias %q: %w", name, ErrEmptyKind)
	}
	// Loose mode locates the target without a kind filter so that a target
	// living under a different kind is reported as a mismatch rather than as
	// missing. Strict mode keys entries by kind, so the scoped lookup stands.
	lookupKind := kind
	if !db.strict {
		lookupKind = ""
	}
	e, ok := db.lookup(target, lookupKind)
	if !ok || e.alias {
		return fmt.Errorf("add alias %q -> %q: %w", name, target, ErrUnknownTarget)
	}
	if kind != "" && e.kind != kind {
		return fmt.Errorf("add alias %q -> %q: %w", name, target, ErrKindMismatch)
	}
	db.entries[db.key(name, e.kind)] = entry{kind: e.kind, target: target, alias: true}
	return nil
}

// SetDefault records the default token for a kind. The target is not
// validated here; ValidateDefaults resolves and rewrites all defaults after
// bulk population.
func (db *Database) SetDefault(kind, token string) {
	db.defaults[kind] = token
}

// HasToken reports whether name is registered as a true token or an alias.
// A non-empty kind restricts the check to that kind.
func (db *Database) HasToken(name, kind string) bool {
	_, ok := db.lookup(name, kind)
	return ok
}

// HasTrueToken reports whether name is registered as a true token,
// optionally restricted to a kind.
func (db *Database) HasTrueToken(name, kind string) bool {
	e, ok := db.lookup(name, kind)
	return ok && !e.alias
}

// HasAlias reports whether name is registered as an alias, optionally
// restricted to a kind.
func (db *Database) HasAlias(name, kind string) bool {
	e, ok := db.lookup(name, kind)
	return ok && e.alias
}

// HasKind reports whether at least one token has been added under kind.
func (db *Database) HasKind(kind string) bool {
	_, ok := db.kinds[kind]
	return ok
}

// HasDefault reports whether a default token is recorded for kind.
func (db *Database) HasDefault(kind string) bool {
	_, ok := db.defaults[kind]
	return ok
}

// Kind returns the kind of a token or alias. The kind argument scopes the
// lookup in strict mode and filters it in loose mode; pass "" in loose mode
// to accept any kind.
func (db *Database) Kind(name, kind string) (string, bool) {
	e, ok := db.lookup(name, kind)
	if !ok {
		return "", false
	}
	return e.kind, true
}

// TrueToken resolves name to a true token: aliases yield their target, true
// tokens yield themselves, anything unknown or kind-mismatched reports a
// miss.
func (db *Database) TrueToken(name, kind string) (string, bool) {
	e, ok := db.lookup(name, kind)
	if !ok {
		return "", false
	}
	if e.alias {
		return e.target, true
	}
	return name, true
}

// Description returns the description of a token, resolving aliases to their
// target first so an alias always reflects its target's current text.
func (db *Database) Description(name, kind string) (string, bool) {
	e, ok := db.lookup(name, kind)
	if !ok {
		return "", false
	}
	if e.alias {
		t, ok := db.lookup(e.target, e.kind)
		if !ok || t.alias {
			return "", false
		}
		return t.description, true
	}
	return e.description, true
}

// Default returns the default token recorded for kind.
func (db *Database) Default(kind string) (string, bool) {
	token, ok := db.defaults[kind]
	return token, ok
}

// Kinds returns all known kinds, sorted.
func (db *Database) Kinds() []string {
	kinds := make([]string, 0, len(db.kinds))
	for k := range db.kinds {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// TrueTokens returns token name to description for every true token,
// optionally restricted to a kind. Strict-mode callers should pass a kind:
// an unfiltered read collapses same-named tokens from different kinds.
func (db *Database) TrueTokens(kind string) map[string]string {
	out := make(map[string]string)
	for k, e := range db.entries {
		if e.alias || (kind != "" && e.kind != kind) {
			continue
		}
		out[k.name] = e.description
	}
	return out
}

// Aliases returns alias name to target token for every alias, optionally
// restricted to a kind.
func (db *Database) Aliases(kind string) map[string]string {
	out := make(map[string]string)
	for k, e := range db.entries {
		if !e.alias || (kind != "" && e.kind != kind) {
			continue
		}
		out[k.name] = e.target
	}
	return out
}

// RawTokens returns every registered name, optionally restricted to a kind.
// True tokens carry their description, aliases carry their target, and the
// Alias flag tells the two apart.
func (db *Database) RawTokens(kind string) map[string]RawEntry {
	out := make(map[string]RawEntry)
	for k, e := range db.entries {
		if kind != "" && e.kind != kind {
			continue
		}
		if e.alias {
			out[k.name] = RawEntry{Text: e.target, Alias: true}
			continue
		}
		out[k.name] = RawEntry{Text: e.description}
	}
	return out
}

// Tokens returns every registered name mapped to a description, optionally
// restricted to a kind. Aliases are resolved so they carry their target's
// description.
func (db *Database) Tokens(kind string) map[string]string {
	out := make(map[string]string)
	for k, e := range db.entries {
		if kind != "" && e.kind != kind {
			continue
		}
		if desc, ok := db.Description(k.name, e.kind); ok {
			out[k.name] = desc
		}
	}
	return out
}

// ValidateDefaults resolves every recorded default through the alias chain
// and rewrites it to the resolved true token. The first default that fails
// to resolve is reported as a DefaultValidationError; defaults already
// resolved are left untouched, so a second run after success is a no-op.
func (db *Database) ValidateDefaults() error {
	kinds := make([]string, 0, len(db.defaults))
	for k := range db.defaults {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	for _, kind := range kinds {
		target := db.defaults[kind]
		resolved, ok := db.TrueToken(target, kind)
		if !ok {
			return &DefaultValidationError{Kind: kind, Target: target}
		}
		db.defaults[kind] = resolved
	}
	return nil
}
