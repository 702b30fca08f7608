package interpolator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inflector/core/inflection"
	"github.com/dmitrymomot/inflector/core/interpolator"
)

// setup registers an "en" locale with a gender kind (m/f/n plus the
// masculine/feminine aliases) and a number kind (s/p). withDefault records
// "n" as the gender default in both databases.
func setup(t *testing.T, withDefault bool) *interpolator.Interpolator {
	t.Helper()

	loose := inflection.New()
	loose.AddToken("m", "gender", "male")
	loose.AddToken("f", "gender", "female")
	loose.AddToken("n", "gender", "neuter")
	require.NoError(t, loose.AddAlias("masculine", "m", "gender"))
	require.NoError(t, loose.AddAlias("feminine", "f", "gender"))
	loose.AddToken("s", "number", "singular")
	loose.AddToken("p", "number", "plural")

	strict := inflection.NewStrict()
	strict.AddToken("m", "gender", "male")
	strict.AddToken("f", "gender", "female")
	strict.AddToken("n", "gender", "neuter")
	require.NoError(t, strict.AddAlias("masculine", "m", "gender"))

	if withDefault {
		loose.SetDefault("gender", "n")
		strict.SetDefault("gender", "n")
	}

	reg := inflection.NewRegistry()
	require.NoError(t, reg.Replace("en", loose, strict))

	ip, err := interpolator.New(reg)
	require.NoError(t, err)
	return ip
}

func gender(value string) map[string]string {
	return map[string]string{"gender": value}
}

func TestInterpolateBasic(t *testing.T) {
	t.Parallel()
	ip := setup(t, false)

	t.Run("no patterns passes through", func(t *testing.T) {
		out, err := ip.Interpolate("Hello, world!", "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello, world!", out)
	})

	t.Run("selects group by option", func(t *testing.T) {
		out, err := ip.Interpolate("Dear @{f:Lady|m:Sir|n:You|All}!", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "Dear Sir!", out)
	})

	t.Run("option resolves through aliases", func(t *testing.T) {
		out, err := ip.Interpolate("Dear @{f:Lady|m:Sir|All}!", "en", gender("masculine"))
		require.NoError(t, err)
		assert.Equal(t, "Dear Sir!", out)
	})

	t.Run("free text fallback", func(t *testing.T) {
		out, err := ip.Interpolate("Dear @{f:Lady|m:Sir|All}!", "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "Dear All!", out)
	})

	t.Run("no match and no fallback yields empty", func(t *testing.T) {
		out, err := ip.Interpolate("Dear @{m:Sir}!", "en", gender("f"))
		require.NoError(t, err)
		assert.Equal(t, "Dear !", out)
	})

	t.Run("invalid option without default yields empty", func(t *testing.T) {
		out, err := ip.Interpolate("Dear @{m:Sir}!", "en", gender("xyz"))
		require.NoError(t, err)
		assert.Equal(t, "Dear !", out)
	})

	t.Run("multiple patterns resolve independently", func(t *testing.T) {
		out, err := ip.Interpolate("@{m:He|f:She} said @{m:his|f:her} name", "en", gender("f"))
		require.NoError(t, err)
		assert.Equal(t, "She said her name", out)
	})

	t.Run("stray at signs untouched", func(t *testing.T) {
		for _, text := range []string{"a@b.com", "@nobrace", "@{unclosed", "@{}"} {
			out, err := ip.Interpolate(text, "en", gender("m"))
			require.NoError(t, err)
			assert.Equal(t, text, out)
		}
	})

	t.Run("placeholders pass through", func(t *testing.T) {
		out, err := ip.Interpolate("@{m:%{name} is male|All}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "%{name} is male", out)

		out, err = ip.Interpolate("@{m:Sir|%{name}}", "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "%{name}", out)

		out, err = ip.Interpolate("@{f:%{title} %{last}|m:Sir}", "en", gender("f"))
		require.NoError(t, err)
		assert.Equal(t, "%{title} %{last}", out)
	})

	t.Run("unknown locale degrades to fallback", func(t *testing.T) {
		out, err := ip.Interpolate("Dear @{m:Sir|All}!", "xx", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "Dear All!", out)
	})

	t.Run("pure free text pattern", func(t *testing.T) {
		out, err := ip.Interpolate("@{Hello}", "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "Hello", out)
	})
}

func TestEscaping(t *testing.T) {
	t.Parallel()
	ip := setup(t, false)

	t.Run("double at", func(t *testing.T) {
		out, err := ip.Interpolate("@@{f:A|m:B}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "@{f:A|m:B}", out)
	})

	t.Run("backslash", func(t *testing.T) {
		out, err := ip.Interpolate(`\@{f:A|m:B}`, "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "@{f:A|m:B}", out)
	})

	t.Run("escaped next to live pattern", func(t *testing.T) {
		out, err := ip.Interpolate("@@{f:A|m:B} @{f:A|m:B}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "@{f:A|m:B} B", out)
	})
}

func TestNegationAndCommaGroups(t *testing.T) {
	t.Parallel()
	ip := setup(t, false)

	const pattern = "@{!m:Lady|m:Sir|n:You|All}"

	t.Run("negation excludes token", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("n"))
		require.NoError(t, err)
		assert.Equal(t, "Lady", out)
	})

	t.Run("negated token falls to its group", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "Sir", out)
	})

	t.Run("negation matches missing option", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "Lady", out)
	})

	t.Run("comma joins alternatives", func(t *testing.T) {
		out, err := ip.Interpolate("@{f,m:Someone|n:You|All}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "Someone", out)
	})

	t.Run("double negation never matches", func(t *testing.T) {
		out, err := ip.Interpolate("@{!m,!f:Nobody|All}", "en", gender("n"))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})
}

func TestDefaultToken(t *testing.T) {
	t.Parallel()
	ip := setup(t, true)

	const pattern = "@{f:Lady|m:Sir|n:You|All}"

	t.Run("unknown option falls back to default", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("xyz"))
		require.NoError(t, err)
		assert.Equal(t, "You", out)
	})

	t.Run("missing option falls back to default", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "You", out)
	})

	t.Run("unknown defaults disabled uses free text", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("xyz"),
			interpolator.WithUnknownDefaults(false))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})
}

func TestExcludedDefaults(t *testing.T) {
	t.Parallel()
	ip := setup(t, true)

	const pattern = "@{m:Sir|n:You|All}"

	t.Run("recognized but not enumerated option uses default group", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("f"),
			interpolator.WithExcludedDefaults(true))
		require.NoError(t, err)
		assert.Equal(t, "You", out)
	})

	t.Run("disabled uses free text", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("f"))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})

	t.Run("unrecognized option is not substituted", func(t *testing.T) {
		out, err := ip.Interpolate("@{m:Sir|All}", "en", gender("xyz"),
			interpolator.WithExcludedDefaults(true),
			interpolator.WithUnknownDefaults(false))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})
}

func TestNamedPatterns(t *testing.T) {
	t.Parallel()
	ip := setup(t, false)

	t.Run("resolves against strict database", func(t *testing.T) {
		out, err := ip.Interpolate("@gender{f:Lady|m:Sir|All}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "Sir", out)
	})

	t.Run("strict key beats plain key", func(t *testing.T) {
		out, err := ip.Interpolate("@gender{f:Lady|m:Sir}", "en", map[string]string{
			"gender":  "f",
			"@gender": "m",
		})
		require.NoError(t, err)
		assert.Equal(t, "Sir", out)
	})

	t.Run("plain key still applies", func(t *testing.T) {
		out, err := ip.Interpolate("@gender{f:Lady|m:Sir}", "en", gender("f"))
		require.NoError(t, err)
		assert.Equal(t, "Lady", out)
	})

	t.Run("unknown kind degrades", func(t *testing.T) {
		out, err := ip.Interpolate("@tense{past:Was|All}", "en", nil)
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})
}

func TestAliasedPatterns(t *testing.T) {
	t.Parallel()
	ip := setup(t, false)

	const pattern = "@{masculine:Sir|All}"

	t.Run("disabled leaves alias unresolved", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})

	t.Run("enabled resolves alias to true token", func(t *testing.T) {
		out, err := ip.Interpolate(pattern, "en", gender("m"),
			interpolator.WithAliasedPatterns(true))
		require.NoError(t, err)
		assert.Equal(t, "Sir", out)
	})
}

func TestLoudMarker(t *testing.T) {
	t.Parallel()
	ip := setup(t, false)

	t.Run("substitutes description", func(t *testing.T) {
		out, err := ip.Interpolate("@{m:~|All}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "male", out)
	})

	t.Run("escaped marker is literal", func(t *testing.T) {
		out, err := ip.Interpolate(`@{m:\~|All}`, "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "~", out)
	})

	t.Run("fallback marker uses effective token", func(t *testing.T) {
		out, err := ip.Interpolate("@{f:Lady|~}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "male", out)
	})

	t.Run("fallback marker on degraded pattern is empty", func(t *testing.T) {
		out, err := ip.Interpolate("@{nosuch:x|~}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "", out)
	})
}

func TestRaising(t *testing.T) {
	t.Parallel()

	t.Run("invalid token raises", func(t *testing.T) {
		ip := setup(t, false)
		_, err := ip.Interpolate("@{x:Foo|All}", "en", gender("m"),
			interpolator.WithRaises(true))
		require.Error(t, err)

		var ite *interpolator.InvalidTokenError
		require.ErrorAs(t, err, &ite)
		assert.Equal(t, "x", ite.Token)
	})

	t.Run("invalid token degrades silently", func(t *testing.T) {
		ip := setup(t, false)
		out, err := ip.Interpolate("@{x:Foo|All}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})

	t.Run("misplaced token raises", func(t *testing.T) {
		ip := setup(t, false)
		_, err := ip.Interpolate("@{m:Sir|s:One|All}", "en", gender("m"),
			interpolator.WithRaises(true))

		var mte *interpolator.MisplacedTokenError
		require.ErrorAs(t, err, &mte)
		assert.Equal(t, "s", mte.Token)
		assert.Equal(t, "gender", mte.Kind)
	})

	t.Run("misplaced token degrades silently", func(t *testing.T) {
		ip := setup(t, false)
		out, err := ip.Interpolate("@{m:Sir|s:One|All}", "en", gender("m"))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})

	t.Run("missing option raises not found", func(t *testing.T) {
		ip := setup(t, false)
		_, err := ip.Interpolate("@{m:Sir|f:Lady}", "en", nil,
			interpolator.WithRaises(true))

		var onf *interpolator.OptionNotFoundError
		require.ErrorAs(t, err, &onf)
		assert.Equal(t, "gender", onf.Kind)
	})

	t.Run("unrecognized option raises incorrect", func(t *testing.T) {
		ip := setup(t, false)
		_, err := ip.Interpolate("@{m:Sir|f:Lady}", "en", gender("xyz"),
			interpolator.WithRaises(true))

		var oie *interpolator.OptionIncorrectError
		require.ErrorAs(t, err, &oie)
		assert.Equal(t, "xyz", oie.Option)
	})

	t.Run("default suppresses option errors", func(t *testing.T) {
		ip := setup(t, true)
		out, err := ip.Interpolate("@{m:Sir|n:You}", "en", gender("xyz"),
			interpolator.WithRaises(true))
		require.NoError(t, err)
		assert.Equal(t, "You", out)
	})

	t.Run("per-call override beats constructor default", func(t *testing.T) {
		reg := inflection.NewRegistry()
		require.NoError(t, reg.Replace("en", inflection.New(), nil))
		ip, err := interpolator.New(reg, interpolator.WithRaises(true))
		require.NoError(t, err)

		out, err := ip.Interpolate("@{x:Foo|All}", "en", nil,
			interpolator.WithRaises(false))
		require.NoError(t, err)
		assert.Equal(t, "All", out)
	})
}

func TestNewValidation(t *testing.T) {
	t.Parallel()

	_, err := interpolator.New(nil)
	assert.Error(t, err)
}
