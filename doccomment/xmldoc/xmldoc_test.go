package xmldoc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/doccomment/xmldoc"
	"go.jacobcolvin.com/ndoc/locale"
	"go.jacobcolvin.com/ndoc/stringtest"
)

func parse(t *testing.T, input string) (*doccomment.Unit, bool) {
	t.Helper()

	span, err := comment.Parse(input, 7)
	require.NoError(t, err)

	p := xmldoc.NewParser(doccomment.Env{Localizer: locale.MustLoad("en")})

	return p.Parse(span)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input   string
		body    string
		summary string
	}{
		"summary and param": {
			input: stringtest.JoinLF(
				`/// <summary>Does a thing.</summary>`,
				`/// <param name="x">the value</param>`,
			),
			body: `<p>Does a thing.</p>` +
				`<h type="parameters">Parameter</h><dl><de>x</de><dd>the value</dd></dl>`,
			summary: "Does a thing.",
		},
		"see references": {
			input:   `/// <summary>Uses <see cref="T:Foo.Bar"/> and <see langword="null"/>.</summary>`,
			body:    `<p>Uses <link type="symbol" target="Foo.Bar"> and null.</p>`,
			summary: `Uses <link type="symbol" target="Foo.Bar"> and null.`,
		},
		"href links": {
			input: stringtest.JoinLF(
				`/// <summary>See <see href="https://example.com">the site</see>`,
				`/// or <a href="mailto:me@example.org">mail</a>.</summary>`,
			),
			body: `<p>See <link type="url" target="https://example.com" text="the site">` +
				` or <link type="email" target="me@example.org" text="mail">.</p>`,
			summary: `See <link type="url" target="https://example.com" text="the site">` +
				` or <link type="email" target="me@example.org" text="mail">.`,
		},
		"bare links": {
			input: `/// <summary>Visit https://example.com/docs. Mail a@b.org.</summary>`,
			body: `<p>Visit <link type="url" target="https://example.com/docs">.` +
				` Mail <link type="email" target="a@b.org">.</p>`,
			summary: `Visit <link type="url" target="https://example.com/docs">.` +
				` Mail <link type="email" target="a@b.org">.`,
		},
		"leading sections first": {
			input: stringtest.JoinLF(
				`/// <returns>The sum.</returns>`,
				`/// <remarks>Extra.</remarks>`,
				`/// <summary>Adds.</summary>`,
				`/// <value>Val.</value>`,
			),
			body:    `<p>Adds.</p><p>Extra.</p><p>Val.</p><h>Returns</h><p>The sum.</p>`,
			summary: "Adds.",
		},
		"para and code": {
			input: stringtest.JoinLF(
				`/// <summary>`,
				`/// First.`,
				`/// <para>Second <b>bold</b>.</para>`,
				`/// <code>`,
				`///   if (x)`,
				`///     y();`,
				`/// </code>`,
				`/// </summary>`,
			),
			body:    `<p>First.</p><p>Second <b>bold</b>.</p><pre>if (x)<br>  y();</pre>`,
			summary: "First.",
		},
		"table list": {
			input: stringtest.JoinLF(
				`/// <summary>Options:`,
				`/// <list type="table">`,
				`/// <listheader><term>Name</term><description>Meaning</description></listheader>`,
				`/// <item><term>a</term><description>first</description></item>`,
				`/// <item><term>b</term><description>second</description></item>`,
				`/// </list>`,
				`/// </summary>`,
			),
			body: `<p>Options:</p><dl>` +
				`<de><b>Name</b></de><dd><b>Meaning</b></dd>` +
				`<de>a</de><dd>first</dd>` +
				`<de>b</de><dd>second</dd></dl>`,
			summary: "Options:",
		},
		"bullet list": {
			input: `/// <summary><list type="bullet"><item>one</item>` +
				`<item><description>two</description></item></list></summary>`,
			body: `<ul><li>one</li><li>two</li></ul>`,
		},
		"references and unknown elements": {
			input: stringtest.JoinLF(
				`/// <summary>Sets <paramref name="x"/> to <c>a &lt; b</c>.</summary>`,
				`/// <custom><summary>hidden</summary></custom>`,
				`/// <param name="x">the <i>input</i></param>`,
			),
			body: `<p>Sets x to a &lt; b.</p>` +
				`<h type="parameters">Parameter</h><dl><de>x</de><dd>the <i>input</i></dd></dl>`,
			summary: "Sets x to a &lt; b.",
		},
		"linked sections": {
			input: stringtest.JoinLF(
				`/// <summary>S.</summary>`,
				`/// <exception cref="E:ArgumentException">when bad</exception>`,
				`/// <seealso cref="Other"/>`,
				`/// <see href="https://x.org">X</see>`,
			),
			body: `<p>S.</p>` +
				`<h>Exception</h><dl><de><link type="symbol" target="ArgumentException"></de>` +
				`<dd>when bad</dd></dl>` +
				`<h>See Also</h><ul><li><link type="symbol" target="Other"></li>` +
				`<li><link type="url" target="https://x.org" text="X"></li></ul>`,
			summary: "S.",
		},
		"example section": {
			input: stringtest.JoinLF(
				`/// <example>Call it:`,
				`/// <code>Run();</code>`,
				`/// </example>`,
			),
			body:    `<h>Example</h><p>Call it:</p><pre>Run();</pre>`,
			summary: "Call it:",
		},
		"nested example": {
			input:   `/// <summary>Intro.<example>Use it.</example></summary>`,
			body:    `<p>Intro.</p><h>Example</h><p>Use it.</p>`,
			summary: "Intro.",
		},
		"inheritdoc skipped": {
			input:   `/// <summary><inheritdoc/>Own text.</summary>`,
			body:    `<p>Own text.</p>`,
			summary: "Own text.",
		},
		"javadoc comment": {
			input:   `/** <summary>Hi.</summary> */`,
			body:    `<p>Hi.</p>`,
			summary: "Hi.",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			u, ok := parse(t, tc.input)
			require.True(t, ok)

			assert.Equal(t, tc.body, u.Body)
			assert.Equal(t, tc.summary, u.Summary)
			assert.Equal(t, xmldoc.Name, u.Dialect)
			assert.Equal(t, 7, u.Line)
		})
	}
}

func TestParseNotXML(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"plain text":      "/// Just text.",
		"unknown element": "/// <b>bold</b> text.",
		"broken tag":      "/// <summary text.",
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, ok := parse(t, input)
			assert.False(t, ok)
		})
	}
}

func TestParseEntities(t *testing.T) {
	t.Parallel()

	u, ok := parse(t, `/// <summary>a &lt; b &amp;&amp; c &gt; "d"</summary>`)
	require.True(t, ok)

	assert.Equal(t, `<p>a &lt; b &amp;&amp; c &gt; &quot;d&quot;</p>`, u.Body)
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	p := xmldoc.NewParser(doccomment.Env{})

	assert.Equal(t, xmldoc.Name, p.Name())
	assert.True(t, p.Accepts(comment.XML))
	assert.True(t, p.Accepts(comment.Javadoc))
	assert.False(t, p.Accepts(comment.Plain))
}
