// Package inflector interpolates grammatical inflection patterns embedded
// in localized strings. A translation string can carry conditional fragments
// selected by a kind (gender, number, tense) and a token value supplied at
// render time:
//
//	"Dear @{f:Lady|m:Sir|n:You|All}!"
//
// rendered with gender "m" yields "Dear Sir!". Token selection is a pure
// lookup of caller-supplied symbolic values against caller-declared
// inflection tables; no numeric plural rules are involved.
//
// # Quick Start
//
//	inf, err := inflector.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	err = inf.LoadLocale("en", []byte(`
//	[inflections.gender]
//	default = "n"
//	m = "male"
//	f = "female"
//	n = "neuter"
//	masculine = "@m"
//	`))
//
//	out, _ := inf.Interpolate("Dear @{f:Lady|m:Sir|n:You|All}!", "en",
//		map[string]string{"gender": "m"})
//	// out == "Dear Sir!"
//
// # Structure
//
// The root package is a thin facade over three core packages:
//
//   - core/inflection: per-locale token databases and the locale registry
//   - core/interpolator: pattern scanning, matching and flag handling
//   - core/loader: TOML document parsing with all-or-nothing installs
//
// Hosts needing finer control use those packages directly; the facade also
// re-exposes the introspection surface (Kinds, Tokens, Aliases, TrueToken,
// TokenDescription and their strict-mode variants) for tooling.
//
// # Concurrency
//
// Interpolation is a pure read over immutable database snapshots. Reloading
// a locale builds fresh databases and swaps them in atomically, so readers
// and reloads never race.
package inflector
