package inflection

import (
	"errors"
	"fmt"
)

// Error variables define the failure scenarios of database population,
// allowing loaders to classify failures with errors.Is.
var (
	// ErrEmptyName indicates an alias was added without a name.
	ErrEmptyName = errors.New("token name cannot be empty")

	// ErrEmptyTarget indicates an alias was added without a target token.
	ErrEmptyTarget = errors.New("alias target cannot be empty")

	// ErrEmptyKind indicates a strict-mode operation was attempted without
	// the kind that strict mode needs for token identity.
	ErrEmptyKind = errors.New("kind cannot be empty in strict mode")

	// ErrUnknownTarget indicates an alias target is not a known true token.
	// Aliases must point directly at true tokens so resolution stays
	// single-hop.
	ErrUnknownTarget = errors.New("alias target is not a known true token")

	// ErrKindMismatch indicates the declared kind of an alias disagrees with
	// its target's kind.
	ErrKindMismatch = errors.New("alias kind does not match target kind")

	// ErrEmptyLocale indicates a registry operation was attempted without a
	// locale.
	ErrEmptyLocale = errors.New("locale cannot be empty")
)

// DefaultValidationError reports a default token that no longer resolves to
// a true token, typically because the target was never loaded or was removed
// by a reload.
type DefaultValidationError struct {
	Kind   string
	Target string
}

// Error implements the error interface.
func (e *DefaultValidationError) Error() string {
	return fmt.Sprintf("default token %q for kind %q does not resolve to a true token", e.Target, e.Kind)
}
