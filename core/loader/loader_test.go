package loader_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inflector/core/inflection"
	"github.com/dmitrymomot/inflector/core/loader"
)

const validDoc = `
[inflections.gender]
default = "masculine"
m = "male"
f = "female"
n = "neuter"
masculine = "@m"

[inflections.number]
s = "singular"
p = "plural"

[inflections."@tense"]
default = "present"
past = "takes past forms"
present = "takes present forms"
`

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("builds both databases", func(t *testing.T) {
		loose, strict, err := loader.Parse([]byte(validDoc))
		require.NoError(t, err)

		assert.Equal(t, []string{"gender", "number"}, loose.Kinds())
		assert.True(t, loose.HasTrueToken("m", "gender"))
		assert.True(t, loose.HasAlias("masculine", "gender"))
		assert.True(t, loose.HasTrueToken("s", "number"))

		assert.Equal(t, []string{"tense"}, strict.Kinds())
		assert.True(t, strict.HasTrueToken("past", "tense"))
	})

	t.Run("defaults resolved through aliases", func(t *testing.T) {
		loose, strict, err := loader.Parse([]byte(validDoc))
		require.NoError(t, err)

		def, ok := loose.Default("gender")
		require.True(t, ok)
		assert.Equal(t, "m", def)

		def, ok = strict.Default("tense")
		require.True(t, ok)
		assert.Equal(t, "present", def)
	})

	t.Run("rejects malformed toml", func(t *testing.T) {
		_, _, err := loader.Parse([]byte("[inflections"))
		assert.Error(t, err)
	})

	t.Run("rejects cross-kind collision in loose mode", func(t *testing.T) {
		doc := `
[inflections.gender]
m = "male"

[inflections.measure]
m = "meter"
`
		_, _, err := loader.Parse([]byte(doc))

		var dte *loader.DuplicatedTokenError
		require.ErrorAs(t, err, &dte)
		assert.Equal(t, "m", dte.Token)
	})

	t.Run("allows collision across strict kinds", func(t *testing.T) {
		doc := `
[inflections."@gender"]
m = "male"

[inflections."@measure"]
m = "meter"
`
		_, strict, err := loader.Parse([]byte(doc))
		require.NoError(t, err)
		assert.True(t, strict.HasTrueToken("m", "gender"))
		assert.True(t, strict.HasTrueToken("m", "measure"))
	})

	t.Run("rejects alias to unknown target", func(t *testing.T) {
		doc := `
[inflections.gender]
m = "male"
fem = "@f"
`
		_, _, err := loader.Parse([]byte(doc))

		var bae *loader.BadAliasError
		require.ErrorAs(t, err, &bae)
		assert.Equal(t, "fem", bae.Token)
		assert.Equal(t, "f", bae.Target)
		assert.ErrorIs(t, err, inflection.ErrUnknownTarget)
	})

	t.Run("rejects alias to other kind", func(t *testing.T) {
		doc := `
[inflections.gender]
m = "male"

[inflections.number]
sing = "@m"
`
		_, _, err := loader.Parse([]byte(doc))

		var bae *loader.BadAliasError
		require.ErrorAs(t, err, &bae)
		assert.ErrorIs(t, err, inflection.ErrKindMismatch)
	})

	t.Run("rejects reserved characters in names", func(t *testing.T) {
		doc := `
[inflections.gender]
"m!x" = "male"
`
		_, _, err := loader.Parse([]byte(doc))

		var bte *loader.BadTokenError
		require.ErrorAs(t, err, &bte)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		doc := `
[inflections.gender]
m = ""
`
		_, _, err := loader.Parse([]byte(doc))

		var bte *loader.BadTokenError
		require.ErrorAs(t, err, &bte)
		assert.Equal(t, "m", bte.Token)
	})

	t.Run("rejects dangling default", func(t *testing.T) {
		doc := `
[inflections.gender]
default = "x"
m = "male"
`
		_, _, err := loader.Parse([]byte(doc))
		require.Error(t, err)

		var dve *inflection.DefaultValidationError
		require.ErrorAs(t, err, &dve)
		assert.Equal(t, "gender", dve.Kind)
		assert.Equal(t, "x", dve.Target)
	})
}

func TestLoadLocale(t *testing.T) {
	t.Parallel()

	t.Run("installs into registry", func(t *testing.T) {
		reg := inflection.NewRegistry()
		l, err := loader.New(reg)
		require.NoError(t, err)

		require.NoError(t, l.LoadLocale("en", []byte(validDoc)))

		db, ok := reg.Database("en")
		require.True(t, ok)
		assert.True(t, db.HasTrueToken("m", "gender"))
	})

	t.Run("failed load leaves registry untouched", func(t *testing.T) {
		reg := inflection.NewRegistry()
		l, err := loader.New(reg)
		require.NoError(t, err)
		require.NoError(t, l.LoadLocale("en", []byte(validDoc)))

		err = l.LoadLocale("en", []byte(`
[inflections.gender]
bad = "@missing"
`))
		require.Error(t, err)

		db, ok := reg.Database("en")
		require.True(t, ok)
		assert.True(t, db.HasTrueToken("m", "gender"))
	})

	t.Run("reload replaces wholesale", func(t *testing.T) {
		reg := inflection.NewRegistry()
		l, err := loader.New(reg)
		require.NoError(t, err)
		require.NoError(t, l.LoadLocale("en", []byte(validDoc)))

		require.NoError(t, l.LoadLocale("en", []byte(`
[inflections.person]
i = "first person"
`)))

		db, ok := reg.Database("en")
		require.True(t, ok)
		assert.False(t, db.HasToken("m", ""))
		assert.True(t, db.HasTrueToken("i", "person"))
	})

	t.Run("rejects nil registry", func(t *testing.T) {
		_, err := loader.New(nil)
		assert.Error(t, err)
	})
}

func TestLoadFS(t *testing.T) {
	t.Parallel()

	t.Run("loads from filesystem", func(t *testing.T) {
		reg := inflection.NewRegistry()
		l, err := loader.New(reg)
		require.NoError(t, err)

		require.NoError(t, l.LoadFS(os.DirFS("testdata"), "en", "inflections.en.toml"))

		db, ok := reg.Database("en")
		require.True(t, ok)
		assert.True(t, db.HasAlias("feminine", "gender"))

		strict, ok := reg.StrictDatabase("en")
		require.True(t, ok)
		assert.True(t, strict.HasTrueToken("past", "tense"))
	})

	t.Run("missing file", func(t *testing.T) {
		reg := inflection.NewRegistry()
		l, err := loader.New(reg)
		require.NoError(t, err)

		err = l.LoadFS(os.DirFS("testdata"), "en", "missing.toml")
		assert.Error(t, err)
	})
}
