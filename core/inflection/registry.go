package inflection

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Registry owns the per-locale databases. Each locale carries one loose and
// one strict database, replaced together so readers never observe a
// half-reloaded locale. All methods are safe for concurrent use; reads take
// a shared lock and reloads swap fully built instances under the write lock.
type Registry struct {
	mu      sync.RWMutex
	locales map[string]databasePair
}

type databasePair struct {
	loose  *Database
	strict *Database
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{locales: make(map[string]databasePair)}
}

// NormalizeLocale canonicalizes a locale tag ("EN-us" -> "en-US") so lookups
// are insensitive to the caller's casing. Tags that do not parse are
// returned trimmed as-is, letting hosts use private locale identifiers.
func NormalizeLocale(locale string) string {
	locale = strings.TrimSpace(locale)
	tag, err := language.Parse(locale)
	if err != nil {
		return locale
	}
	return tag.String()
}

// Replace installs the databases for a locale, atomically swapping out any
// previous pair. Nil databases are replaced with empty ones so a locale can
// be registered loose-only or strict-only.
func (r *Registry) Replace(locale string, loose, strict *Database) error {
	locale = NormalizeLocale(locale)
	if locale == "" {
		return ErrEmptyLocale
	}
	if loose == nil {
		loose = New()
	}
	if strict == nil {
		strict = NewStrict()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.locales[locale] = databasePair{loose: loose, strict: strict}
	return nil
}

// Drop removes a locale and its databases.
func (r *Registry) Drop(locale string) {
	locale = NormalizeLocale(locale)

	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locales, locale)
}

// Database returns the loose-mode database for a locale.
func (r *Registry) Database(locale string) (*Database, bool) {
	locale = NormalizeLocale(locale)

	r.mu.RLock()
	defer r.mu.RUnlock()
	pair, ok := r.locales[locale]
	if !ok {
		return nil, false
	}
	return pair.loose, true
}

// StrictDatabase returns the strict-mode database for a locale.
func (r *Registry) StrictDatabase(locale string) (*Database, bool) {
	locale = NormalizeLocale(locale)

	r.mu.RLock()
	defer r.mu.RUnlock()
	pair, ok := r.locales[locale]
	if !ok {
		return nil, false
	}
	return pair.strict, true
}

// Locales returns all registered locales, sorted.
func (r *Registry) Locales() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	locales := make([]string, 0, len(r.locales))
	for locale := range r.locales {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// Match picks the best registered locale for the requested tags, in
// preference order ("en-US" matches a registered "en"). Requested tags that
// do not parse are skipped. Returns false when nothing matches or the
// registry is empty.
func (r *Registry) Match(requested ...string) (string, bool) {
	registered := r.Locales()
	if len(registered) == 0 {
		return "", false
	}

	tags := make([]language.Tag, 0, len(registered))
	candidates := make([]string, 0, len(registered))
	for _, locale := range registered {
		tag, err := language.Parse(locale)
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		candidates = append(candidates, locale)
	}
	if len(tags) == 0 {
		return "", false
	}

	var wanted []language.Tag
	for _, req := range requested {
		if tag, err := language.Parse(req); err == nil {
			wanted = append(wanted, tag)
		}
	}
	if len(wanted) == 0 {
		return "", false
	}

	matcher := language.NewMatcher(tags)
	_, index, confidence := matcher.Match(wanted...)
	if confidence == language.No {
		return "", false
	}
	return candidates[index], true
}
