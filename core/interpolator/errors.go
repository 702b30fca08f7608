package interpolator

import "fmt"

// Interpolation errors are typed per condition so hosts can classify them
// with errors.As. They are returned only when the Raises flag is enabled;
// otherwise the offending pattern degrades silently to its fallback rules.

// InvalidTokenError reports a pattern token that is empty or does not
// resolve to any known token of the expected kind.
type InvalidTokenError struct {
	Pattern string
	Token   string
}

// Error implements the error interface.
func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q in pattern %q", e.Token, e.Pattern)
}

// MisplacedTokenError reports an unnamed pattern mixing tokens from more
// than one kind. The pattern's kind is fixed by its first token; Kind is
// that kind and Token the later token that disagreed with it.
type MisplacedTokenError struct {
	Pattern string
	Token   string
	Kind    string
}

// Error implements the error interface.
func (e *MisplacedTokenError) Error() string {
	return fmt.Sprintf("misplaced token %q in pattern %q bound to kind %q", e.Token, e.Pattern, e.Kind)
}

// OptionNotFoundError reports that no usable option value could be
// determined for a pattern's kind: nothing was requested and no default
// resolved.
type OptionNotFoundError struct {
	Pattern string
	Kind    string
}

// Error implements the error interface.
func (e *OptionNotFoundError) Error() string {
	return fmt.Sprintf("no option value for kind %q in pattern %q", e.Kind, e.Pattern)
}

// OptionIncorrectError reports that a supplied option value does not name a
// known token of the expected kind. Unlike OptionNotFoundError the caller
// did supply something; it just did not resolve.
type OptionIncorrectError struct {
	Pattern string
	Kind    string
	Option  string
}

// Error implements the error interface.
func (e *OptionIncorrectError) Error() string {
	return fmt.Sprintf("option %q does not name a known token of kind %q in pattern %q", e.Option, e.Kind, e.Pattern)
}
