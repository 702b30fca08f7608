package loader

import "fmt"

// Load-time data-integrity errors abort the whole load for a locale and are
// never gated by interpolation flags: a database is either fully consistent
// or not installed at all.

// DuplicatedTokenError reports a loose-mode token name declared by more than
// one kind. Loose mode has a single flat namespace, so the collision has to
// be rejected before it reaches the database.
type DuplicatedTokenError struct {
	Token        string
	Kind         string
	OriginalKind string
}

// Error implements the error interface.
func (e *DuplicatedTokenError) Error() string {
	return fmt.Sprintf("token %q of kind %q already declared by kind %q", e.Token, e.Kind, e.OriginalKind)
}

// BadTokenError reports a malformed token declaration: an empty or reserved
// name, a name containing pattern syntax characters, or a missing
// description.
type BadTokenError struct {
	Token  string
	Kind   string
	Reason string
}

// Error implements the error interface.
func (e *BadTokenError) Error() string {
	return fmt.Sprintf("bad token %q of kind %q: %s", e.Token, e.Kind, e.Reason)
}

// BadAliasError reports an alias that could not be added, wrapping the
// database error that rejected it.
type BadAliasError struct {
	Token  string
	Target string
	Kind   string
	Err    error
}

// Error implements the error interface.
func (e *BadAliasError) Error() string {
	return fmt.Sprintf("bad alias %q -> %q of kind %q: %v", e.Token, e.Target, e.Kind, e.Err)
}

// Unwrap exposes the underlying database error for errors.Is checks.
func (e *BadAliasError) Unwrap() error {
	return e.Err
}
