package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/ndoc/stringtest"
)

func TestInput(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  string
	}{
		"empty string": {
			input: "",
			want:  "",
		},
		"single line": {
			input: "/// text",
			want:  "/// text",
		},
		"leading and trailing newline": {
			input: "\n// text\n",
			want:  "// text",
		},
		"common tab indent": {
			input: "\n\t\t/**\n\t\t * Summary.\n\t\t */\n\t",
			want:  "/**\n * Summary.\n */",
		},
		"varying indent": {
			input: `
    <pre>
      code
    </pre>`,
			want: "<pre>\n  code\n</pre>",
		},
		"whitespace-only lines become empty": {
			input: "\n    a\n    \n    b",
			want:  "a\n\nb",
		},
		"only one leading newline is dropped": {
			input: "\n\na\nb",
			want:  "\na\nb",
		},
		"only one trailing line is dropped": {
			input: "a\nb\n\n",
			want:  "a\nb\n",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, stringtest.Input(tc.input))
		})
	}
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantLF   string
		wantCRLF string
		input    []string
	}{
		"empty input": {
			input:    nil,
			wantLF:   "",
			wantCRLF: "",
		},
		"single line": {
			input:    []string{"/** x */"},
			wantLF:   "/** x */",
			wantCRLF: "/** x */",
		},
		"comment block": {
			input:    []string{"/**", " * x", " */"},
			wantLF:   "/**\n * x\n */",
			wantCRLF: "/**\r\n * x\r\n */",
		},
		"empty line kept": {
			input:    []string{"a", "", "c"},
			wantLF:   "a\n\nc",
			wantCRLF: "a\r\n\r\nc",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.wantLF, stringtest.JoinLF(tc.input...))
			assert.Equal(t, tc.wantCRLF, stringtest.JoinCRLF(tc.input...))
		})
	}
}
