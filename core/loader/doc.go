// Package loader populates inflection databases from TOML documents and
// installs them into a registry. Loading is all-or-nothing: a document
// either builds a fully consistent database pair that replaces the locale's
// previous one atomically, or the registry is left untouched.
//
// # Document Format
//
// One table per kind under [inflections], mapping token names to
// descriptions. A value prefixed with @ declares an alias to another token
// of the same kind, and the reserved "default" entry names the kind's
// default token. A kind name prefixed with @ declares a strict-mode kind:
//
//	[inflections.gender]
//	default = "n"
//	m = "male"
//	f = "female"
//	n = "neuter"
//	masculine = "@m"
//
//	[inflections."@tense"]
//	past = "takes past forms"
//	present = "takes present forms"
//
// Plain kinds share one flat token namespace per locale; declaring the same
// token name under two plain kinds is rejected as a DuplicatedTokenError.
// Strict kinds namespace their tokens, so collisions across them are fine.
//
// # Usage
//
//	reg := inflection.NewRegistry()
//	l, err := loader.New(reg, loader.WithLogger(log))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	//go:embed inflections.*.toml
//	var inflectionFS embed.FS
//
//	if err := l.LoadFS(inflectionFS, "en", "inflections.en.toml"); err != nil {
//		log.Fatal(err)
//	}
//
// Reloading a locale is the same call again; readers keep seeing the old
// databases until the new pair is fully built.
//
// # Integrity Errors
//
// Parse rejects malformed documents with typed errors, independent of any
// interpolation flags: BadTokenError for empty or reserved names and missing
// descriptions, BadAliasError for aliases whose target is missing or of the
// wrong kind, DuplicatedTokenError for flat-namespace collisions, and a
// wrapped DefaultValidationError when a kind's default does not resolve to a
// true token.
package loader
