package plain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/doccomment/plain"
	"go.jacobcolvin.com/ndoc/linefinder"
	"go.jacobcolvin.com/ndoc/stringtest"
)

func parse(t *testing.T, env doccomment.Env, input string) (*doccomment.Unit, bool) {
	t.Helper()

	span, err := comment.Parse(input, 3)
	require.NoError(t, err)

	linefinder.MarkTextBoxes(span)

	return plain.NewParser(env).Parse(span)
}

func TestParse(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		env     doccomment.Env
		input   string
		body    string
		summary string
	}{
		"line comment": {
			input: stringtest.JoinLF(
				"// Does a thing.",
				"// More text.",
			),
			body:    `<p>Does a thing.  More text.</p>`,
			summary: `Does a thing.  More text.`,
		},
		"boxed code and list": {
			input: stringtest.JoinLF(
				"/*",
				" * Usage:",
				" *",
				" *     run(x)",
				" *       more",
				" *",
				" * - one",
				" * - two",
				" */",
			),
			body:    `<p>Usage:</p><pre>run(x)<br>  more</pre><ul><li>one</li><li>two</li></ul>`,
			summary: "Usage:",
		},
		"heading and links": {
			input: stringtest.JoinLF(
				"// Intro.",
				"//",
				"// # Details",
				"//",
				"// See [Foo.Bar] and https://example.com. Mail a@b.org.",
			),
			body: `<p>Intro.</p><h>Details</h>` +
				`<p>See <link type="symbol" target="Foo.Bar"> and <link type="url" target="https://example.com">.` +
				` Mail <link type="email" target="a@b.org">.</p>`,
			summary: "Intro.",
		},
		"disallowed protocol": {
			env: doccomment.Env{
				URLProtocol: func(p string) bool { return p == "https" },
			},
			input:   "// Get ftp://example.com/f now.",
			body:    `<p>Get ftp://example.com/f now.</p>`,
			summary: `Get ftp://example.com/f now.`,
		},
		"entities": {
			input:   `# if a < b && "c"`,
			body:    `<p>if a &lt; b &amp;&amp; &quot;c&quot;</p>`,
			summary: `if a &lt; b &amp;&amp; &quot;c&quot;`,
		},
		"definition list": {
			input: stringtest.JoinLF(
				"// Colors:",
				"//",
				"// Red - the red one",
				"// Blue - the blue one",
			),
			body: `<p>Colors:</p><dl><de>Red</de><dd>the red one</dd>` +
				`<de>Blue</de><dd>the blue one</dd></dl>`,
			summary: "Colors:",
		},
		"single dash line stays text": {
			input:   "// Note - not a list",
			body:    `<p>Note - not a list</p>`,
			summary: "Note - not a list",
		},
		"numbered list": {
			input: stringtest.JoinLF(
				"// Steps:",
				"// 1. first",
				"// 2. second",
			),
			body:    `<p>Steps:</p><ul><li>first</li><li>second</li></ul>`,
			summary: "Steps:",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			u, ok := parse(t, tc.env, tc.input)
			require.True(t, ok)

			assert.Equal(t, tc.body, u.Body)
			assert.Equal(t, tc.summary, u.Summary)
			assert.Equal(t, plain.Name, u.Dialect)
			assert.Equal(t, 3, u.Line)
		})
	}
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()

	tcs := map[string]string{
		"empty block": "/* */",
		"empty lines": stringtest.JoinLF("//", "//"),
	}

	for name, input := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, ok := parse(t, doccomment.Env{}, input)
			assert.False(t, ok)
		})
	}
}

func TestAccepts(t *testing.T) {
	t.Parallel()

	p := plain.NewParser(doccomment.Env{})

	for _, d := range []comment.Dialect{comment.Plain, comment.Javadoc, comment.XML} {
		assert.True(t, p.Accepts(d))
	}
}
