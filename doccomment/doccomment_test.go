package doccomment_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
)

type testLocalizer map[string]string

func (l testLocalizer) Heading(dialect, section string, count int) (string, bool) {
	if count > 1 {
		if h, ok := l[dialect+"."+section+".other"]; ok {
			return h, true
		}
	}

	h, ok := l[dialect+"."+section]

	return h, ok
}

func (l testLocalizer) Phrase(key string, args ...any) string {
	return fmt.Sprint(append([]any{key}, args...)...)
}

func TestSectionedComment(t *testing.T) {
	t.Parallel()

	var c doccomment.SectionedComment

	c.TextSection("description").Append("<p>a</p>")
	c.ListSection("param").AddMember("x", "first")
	c.TextSection("return").Append("<p>r</p>")
	c.ListSection("param").AddMember("y", "")
	c.TextSection("description").Append("<p>b</p>")

	names := make([]string, 0, len(c.Sections()))
	for _, s := range c.Sections() {
		names = append(names, s.SectionName())
	}

	assert.Equal(t, []string{"description", "param", "return"}, names)
	assert.Equal(t, "<p>a</p><p>b</p>", c.TextSection("description").Content())
	assert.Equal(t, []doccomment.Member{
		{Name: "x", Description: "first"},
		{Name: "y"},
	}, c.ListSection("param").Members)

	_, ok := c.Lookup("missing")
	assert.False(t, ok)

	assert.Panics(t, func() {
		c.ListSection("description")
	})
}

func TestAssembler(t *testing.T) {
	t.Parallel()

	loc := testLocalizer{
		"test.param":           "Parameter",
		"test.param.other":     "Parameters",
		"test.throws":          "Throws",
		"test.see":             "See",
		"test.author":          "Author",
		"test.authors.missing": "",
	}

	asm := doccomment.Assembler{
		Dialect: "test",
		Env:     doccomment.Env{Localizer: loc},
		Styles: map[string]doccomment.SectionStyle{
			"param":   {HeadingType: "parameters", DefinitionList: true},
			"throws":  {LinkNames: true},
			"summary": {Unheaded: true},
		},
	}

	tcs := map[string]struct {
		build func(*doccomment.SectionedComment)
		want  string
	}{
		"forced definition list": {
			build: func(c *doccomment.SectionedComment) {
				c.ListSection("param").AddMember("x", "the value")
			},
			want: `<h type="parameters">Parameter</h><dl><de>x</de><dd>the value</dd></dl>`,
		},
		"plural heading": {
			build: func(c *doccomment.SectionedComment) {
				s := c.ListSection("param")
				s.AddMember("x", "a")
				s.AddMember("y", "b")
			},
			want: `<h type="parameters">Parameters</h>` +
				`<dl><de>x</de><dd>a</dd><de>y</de><dd>b</dd></dl>`,
		},
		"linked names": {
			build: func(c *doccomment.SectionedComment) {
				c.ListSection("throws").AddMember("IOException", "on failure")
			},
			want: `<h>Throws</h><dl><de><link type="symbol" target="IOException"></de>` +
				`<dd>on failure</dd></dl>`,
		},
		"single member bullet": {
			build: func(c *doccomment.SectionedComment) {
				c.ListSection("author").AddMember("", "Ada")
			},
			want: `<h>Author</h><p>Ada</p>`,
		},
		"mixed members bullet list": {
			build: func(c *doccomment.SectionedComment) {
				s := c.ListSection("see")
				s.AddMember("Foo", "the foo")
				s.AddMember("", "&quot;Book&quot;")
			},
			want: `<h>See</h><ul><li><b>Foo</b> the foo</li><li>&quot;Book&quot;</li></ul>`,
		},
		"unheaded text": {
			build: func(c *doccomment.SectionedComment) {
				c.TextSection("summary").Append("<p>Does a thing.</p>")
			},
			want: `<p>Does a thing.</p>`,
		},
		"no heading in catalog": {
			build: func(c *doccomment.SectionedComment) {
				c.TextSection("other").Append("<p>x</p>")
			},
			want: `<p>x</p>`,
		},
		"empty sections skipped": {
			build: func(c *doccomment.SectionedComment) {
				c.TextSection("summary").Append("  ")
				c.ListSection("param").AddMember("", "orphan")
				c.ListSection("author").AddMember(" ", "")
			},
			want: ``,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var (
				c   doccomment.SectionedComment
				out strings.Builder
			)

			tc.build(&c)

			for _, s := range c.Sections() {
				asm.Section(&out, s)
			}

			assert.Equal(t, tc.want, out.String())
		})
	}
}

func TestNewUnit(t *testing.T) {
	t.Parallel()

	u := doccomment.NewUnit("plain", 7, "<p>Hello\nworld.</p>\n<p>More.</p>")

	assert.Equal(t, "<p>Hello world.</p><p>More.</p>", u.Body)
	assert.Equal(t, "Hello world.", u.Summary)
	assert.Equal(t, 7, u.Line)

	u.AddTag("deprecated")
	u.AddTag("deprecated")
	assert.Equal(t, []string{"deprecated"}, u.Tags)

	empty := doccomment.NewUnit("plain", 1, "<p> </p>")
	assert.Empty(t, empty.Body)
	assert.Empty(t, empty.Summary)
}

func TestReinterpretListAsEmbedded(t *testing.T) {
	t.Parallel()

	u := doccomment.NewUnit("plain", 3,
		"<p>Colors.</p><dl><de>Red</de><dd>The red one.</dd>"+
			"<de><link type=\"symbol\" target=\"Blue\"></de><dd><p>Blue.</p><p>Cold.</p></dd></dl>")
	u.Access = "public"
	u.Tags = []string{"deprecated"}

	require.True(t, doccomment.ReinterpretListAsEmbedded(u))

	assert.Equal(t, "<p>Colors.</p><dl><ds>Red</ds><dd>The red one.</dd>"+
		"<ds><link type=\"symbol\" target=\"Blue\"></ds><dd><p>Blue.</p><p>Cold.</p></dd></dl>", u.Body)
	assert.Equal(t, "Colors.", u.Summary)

	require.Len(t, u.Embedded, 2)

	red := u.Embedded[0]
	assert.Equal(t, "Red", red.Title)
	assert.Equal(t, "<p>The red one.</p>", red.Body)
	assert.Equal(t, "The red one.", red.Summary)
	assert.Equal(t, "public", red.Access)
	assert.Equal(t, []string{"deprecated"}, red.Tags)
	assert.Equal(t, 3, red.Line)

	blue := u.Embedded[1]
	assert.Equal(t, "Blue", blue.Title)
	assert.Equal(t, "<p>Blue.</p><p>Cold.</p>", blue.Body)
	assert.Equal(t, "Blue.", blue.Summary)

	plain := doccomment.NewUnit("plain", 1, "<p>No list.</p>")
	assert.False(t, doccomment.ReinterpretListAsEmbedded(plain))
	assert.Empty(t, plain.Embedded)
}

func TestLinkify(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"url": {
			input: "see https://example.com/a?b=1&c=2.",
			want:  `see <link type="url" target="https://example.com/a?b=1&amp;c=2">.`,
		},
		"parenthesized url": {
			input: "(http://x.org)",
			want:  `(<link type="url" target="http://x.org">)`,
		},
		"unknown protocol": {
			input: "javascript://alert",
			want:  "javascript://alert",
		},
		"email": {
			input: "mail someone@example.com, please",
			want:  `mail <link type="email" target="someone@example.com">, please`,
		},
		"mailto": {
			input: "mailto:a.b@c.io",
			want:  `<link type="email" target="a.b@c.io">`,
		},
		"not email": {
			input: "a@b @handle x@y.",
			want:  "a@b @handle x@y.",
		},
		"entities": {
			input: `a < b & "c"`,
			want:  "a &lt; b &amp; &quot;c&quot;",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, doccomment.Linkify(tc.input, doccomment.KnownProtocol))
		})
	}
}

type stubParser struct {
	env doccomment.Env
}

func (stubParser) Name() string                   { return "stub" }
func (stubParser) Accepts(_ comment.Dialect) bool { return true }

func (p stubParser) Parse(span comment.Span) (*doccomment.Unit, bool) {
	return doccomment.NewUnit("stub", span.LineNumber(), "<p>"+p.env.Phrase("x")+"</p>"), true
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := make(doccomment.Registry)
	reg.Register("stub", func(env doccomment.Env) doccomment.Parser {
		return stubParser{env: env}
	})
	reg.Register("another", func(env doccomment.Env) doccomment.Parser {
		return stubParser{env: env}
	})

	assert.Equal(t, []string{"another", "stub"}, reg.Names())

	parsers, err := reg.New(doccomment.Env{}, "stub")
	require.NoError(t, err)
	require.Len(t, parsers, 1)

	span, err := comment.Parse("// hi", 5)
	require.NoError(t, err)

	u, ok := parsers[0].Parse(span)
	require.True(t, ok)
	assert.Equal(t, "<p>x</p>", u.Body)
	assert.Equal(t, 5, u.Line)

	_, err = reg.New(doccomment.Env{}, "missing")
	require.ErrorIs(t, err, doccomment.ErrUnknownDialect)
}

func TestEnvDefaults(t *testing.T) {
	t.Parallel()

	var env doccomment.Env

	assert.Equal(t, 4, env.Tabs())
	assert.True(t, env.Protocol("https"))
	assert.False(t, env.Protocol("javascript"))
	assert.Equal(t, "key", env.Phrase("key"))

	_, ok := env.Heading("javadoc", "param", 1)
	assert.False(t, ok)
}
