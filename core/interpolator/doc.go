// Package interpolator resolves inflection patterns embedded in translated
// strings: conditional fragments selected by a grammatical kind and a token
// value supplied at render time, backed by per-locale databases from
// core/inflection.
//
// # Pattern Syntax
//
// A pattern is an @ followed by an optional kind name and a braced body of
// |-separated groups:
//
//	"Dear @{f:Lady|m:Sir|n:You|All}!"
//	"Dear @gender{f:Lady|m:Sir}!"
//
// Each group is a comma-separated token list, a colon, and replacement text.
// A leading ! on a token makes the group match every option except that
// token. A trailing segment without a colon is the free-text fallback. A
// pattern prefixed with an extra @ or a backslash is emitted verbatim with
// the escape stripped:
//
//	"@@{f:A|m:B}"  ->  "@{f:A|m:B}"
//	`\@{f:A|m:B}`  ->  "@{f:A|m:B}"
//
// Replacement text equal to the loud marker "~" substitutes the matched
// token's description instead of literal text; `\~` escapes it. Any %{name}
// placeholders inside replacement text pass through untouched for the
// host's own substitution pass.
//
// # Usage
//
//	reg := inflection.NewRegistry()
//	// ... load databases into reg ...
//
//	ip, err := interpolator.New(reg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, _ := ip.Interpolate("Dear @{f:Lady|m:Sir|All}!", "en",
//		map[string]string{"gender": "m"})
//	// out == "Dear Sir!"
//
// Unnamed patterns infer their kind from the first token and resolve against
// the loose database; named patterns bind their kind up front and resolve
// against the strict database. For named patterns a strict-style "@kind" key
// in the option map beats the plain "kind" key.
//
// # Flags
//
// Four flags control resolution. Defaults set at construction apply
// process-wide; per-call options win:
//
//	out, err := ip.Interpolate(text, "en", values,
//		interpolator.WithRaises(true),
//		interpolator.WithAliasedPatterns(true),
//	)
//
//   - Raises: return typed errors (InvalidTokenError, MisplacedTokenError,
//     OptionNotFoundError, OptionIncorrectError) instead of degrading a
//     failed pattern to its fallback rules. Off by default.
//   - UnknownDefaults: substitute the kind's default token when the
//     requested option is missing or unrecognized. On by default.
//   - ExcludedDefaults: when a recognized option matches no group, use the
//     default token's group instead of the free-text fallback. Off by
//     default.
//   - AliasedPatterns: resolve alias names written inside pattern groups to
//     their true tokens before matching. Off by default.
//
// Flag defaults can also come from the environment:
//
//	cfg, err := interpolator.LoadConfig()
//	ip, err := interpolator.New(reg, interpolator.WithRaises(cfg.Raises))
//
// # Concurrency
//
// Interpolate is a pure function over the registry snapshot it reads;
// concurrent calls are safe. Reload safety is the registry's concern: it
// swaps fully built databases under a lock.
package interpolator
