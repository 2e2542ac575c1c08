package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/locale"
	"go.jacobcolvin.com/ndoc/stringtest"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		tag  string
		lang string
		err  error
	}{
		"english":        {tag: "en", lang: "en"},
		"regional":       {tag: "en-GB", lang: "en"},
		"german":         {tag: "de", lang: "de"},
		"underscore":     {tag: "de_AT", lang: "de"},
		"unsupported":    {tag: "ja", err: locale.ErrUnknownLocale},
		"not a language": {tag: "!!", err: locale.ErrUnknownLocale},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			c, err := locale.Load(tc.tag)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.lang, c.Language)
		})
	}
}

func TestAvailable(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"en", "de"}, locale.Available())
}

func TestHeading(t *testing.T) {
	t.Parallel()

	c := locale.MustLoad("en")

	tcs := map[string]struct {
		dialect string
		section string
		want    string
		count   int
		ok      bool
	}{
		"singular":         {dialect: "javadoc", section: "param", count: 1, want: "Parameter", ok: true},
		"plural":           {dialect: "javadoc", section: "param", count: 3, want: "Parameters", ok: true},
		"dialect override": {dialect: "javadoc", section: "exception", count: 2, want: "Throws", ok: true},
		"common fallback":  {dialect: "xml", section: "exception", count: 2, want: "Exceptions", ok: true},
		"single form":      {dialect: "xml", section: "seealso", count: 4, want: "See Also", ok: true},
		"missing":          {dialect: "xml", section: "summary", count: 1},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := c.Heading(tc.dialect, tc.section, tc.count)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestPhrase(t *testing.T) {
	t.Parallel()

	en := locale.MustLoad("en")
	de := locale.MustLoad("de")

	assert.Equal(t, "The value of X", en.Phrase("value", "X"))
	assert.Equal(t, "Der Wert von X", de.Phrase("value", "X"))
	assert.Equal(t, "Deprecated:", en.Phrase("deprecated"))
	assert.Equal(t, "no.such.key", en.Phrase("no.such.key"))
}

func TestParseAndMerge(t *testing.T) {
	t.Parallel()

	extra, err := locale.Parse([]byte(stringtest.Input(`
		headings:
		  xml:
		    summary: Summary
		    param: {one: Argument, other: Arguments}
		phrases:
		  deprecated: "Obsolete:"
	`)))
	require.NoError(t, err)

	c := locale.MustLoad("en")
	c.Merge(extra)

	got, ok := c.Heading("xml", "summary", 1)
	require.True(t, ok)
	assert.Equal(t, "Summary", got)

	got, _ = c.Heading("xml", "param", 2)
	assert.Equal(t, "Arguments", got)

	got, _ = c.Heading("javadoc", "param", 2)
	assert.Equal(t, "Parameters", got)

	assert.Equal(t, "Obsolete:", c.Phrase("deprecated"))
	assert.Equal(t, "en", c.Language)

	// The embedded catalog is unaffected.
	assert.Equal(t, "Deprecated:", locale.MustLoad("en").Phrase("deprecated"))
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"bad yaml":     "headings: [",
		"bad language": "language: '!!'",
		"bad forms":    "headings: {xml: {param: [a, b]}}",
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := locale.Parse([]byte(input))
			require.ErrorIs(t, err, locale.ErrInvalidCatalog)
		})
	}
}
