// Package inflection stores per-locale grammatical tokens for pattern
// interpolation: true tokens with descriptions, aliases that redirect to
// true tokens, and a default token per kind. It is the data model consumed
// by the interpolator; loading configuration into it is the loader's job.
//
// # Tokens, Aliases and Kinds
//
// A kind is a grammatical category such as "gender" or "number". A token is
// one alternative within a kind ("m", "f", "n"). An alias is a second name
// for a true token ("masculine" -> "m"); it inherits the target's kind and
// its description is always read through the target:
//
//	db := inflection.New()
//	db.AddToken("m", "gender", "male")
//	db.AddToken("f", "gender", "female")
//	if err := db.AddAlias("masculine", "m", "gender"); err != nil {
//		log.Fatal(err)
//	}
//
//	token, ok := db.TrueToken("masculine", "gender") // "m", true
//	desc, ok := db.Description("masculine", "")      // "male", true
//
// Alias targets must be true tokens at insertion time, so resolution is
// always a single hop and cannot cycle.
//
// # Loose and Strict Mode
//
// New creates a loose database: one flat token namespace shared by every
// kind, so two kinds must not declare the same token name (loaders reject
// such collisions). NewStrict creates a strict database where kind is part
// of token identity, so "m" under "gender" and "m" under "measure" are
// distinct entries:
//
//	sdb := inflection.NewStrict()
//	sdb.AddToken("m", "gender", "male")
//	sdb.AddToken("m", "measure", "meter")
//
//	desc, ok := sdb.Description("m", "measure") // "meter", true
//
// Both modes expose the same operation surface; in loose mode a non-empty
// kind argument filters lookups, in strict mode it scopes them.
//
// # Defaults
//
// Each kind may carry one default token, used by the interpolator when no
// usable option is supplied. Defaults are recorded unchecked and resolved in
// bulk after population:
//
//	db.SetDefault("gender", "masculine")
//	if err := db.ValidateDefaults(); err != nil {
//		var dve *inflection.DefaultValidationError
//		if errors.As(err, &dve) {
//			log.Fatalf("kind %s: bad default %s", dve.Kind, dve.Target)
//		}
//	}
//	def, ok := db.Default("gender") // "m", true — alias resolved
//
// # Registry Lifecycle
//
// Registry holds the databases for all locales, one loose and one strict
// pair per locale. Loaders build fresh databases and swap them in with
// Replace, so concurrent interpolation never observes a partially populated
// locale:
//
//	reg := inflection.NewRegistry()
//	if err := reg.Replace("en", db, sdb); err != nil {
//		log.Fatal(err)
//	}
//
//	loose, ok := reg.Database("en")
//	locale, ok := reg.Match("en-US", "pl") // "en", true
//
// Locale tags are canonicalized with golang.org/x/text/language, and Match
// performs best-fit matching against the registered locales.
package inflection
