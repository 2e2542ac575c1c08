package extract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.jacobcolvin.com/ndoc/extract"
	"go.jacobcolvin.com/ndoc/stringtest"
)

func TestExtractJava(t *testing.T) {
	t.Parallel()

	src := stringtest.JoinLF(
		"package p;",
		"",
		"/** Colors. */",
		"public enum Color {",
		"    /** Red. */",
		"    RED,",
		"    GREEN // trailing",
		"}",
	)

	got, err := extract.Extract(t.Context(), extract.LanguageJava, []byte(src))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "/** Colors. */", got[0].Text)
	assert.Equal(t, 3, got[0].Line)
	assert.Equal(t, &extract.Declaration{
		Kind:   extract.KindEnum,
		Name:   "Color",
		Access: "public",
		Line:   4,
	}, got[0].Decl)

	assert.Equal(t, "    /** Red. */", got[1].Text)
	assert.Equal(t, 4, got[1].Column)
	require.NotNil(t, got[1].Decl)
	assert.Equal(t, extract.KindMember, got[1].Decl.Kind)
	assert.Equal(t, "RED", got[1].Decl.Name)

	assert.True(t, got[2].Trailing)
	assert.Nil(t, got[2].Decl)
	assert.Equal(t, 10, got[2].Column)
	assert.Equal(t, "          // trailing", got[2].Text)
}

func TestExtractGo(t *testing.T) {
	t.Parallel()

	src := stringtest.JoinLF(
		"package p",
		"",
		"// Add adds.",
		"// More.",
		"func Add() {}",
		"",
		"// unrelated",
		"",
		"/* block */",
		"var x = 1",
	)

	got, err := extract.Extract(t.Context(), extract.LanguageGo, []byte(src))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, extract.Comment{
		Text: stringtest.JoinLF("// Add adds.", "// More."),
		Line: 3,
		Decl: &extract.Declaration{
			Kind:   extract.KindFunction,
			Name:   "Add",
			Access: "public",
			Line:   5,
		},
	}, got[0])

	assert.Equal(t, "// unrelated", got[1].Text)
	assert.Nil(t, got[1].Decl)

	assert.Equal(t, &extract.Declaration{
		Kind:   extract.KindVariable,
		Name:   "x",
		Access: "private",
		Line:   10,
	}, got[2].Decl)
}

func TestExtractCSharp(t *testing.T) {
	t.Parallel()

	src := stringtest.JoinLF(
		"public class Calc",
		"{",
		"    /// <summary>Adds.</summary>",
		`    /// <param name="a">A.</param>`,
		"    // not documentation",
		"    public int Add(int a) { return a; }",
		"}",
	)

	got, err := extract.Extract(t.Context(), extract.LanguageCSharp, []byte(src))
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, stringtest.JoinLF(
		"    /// <summary>Adds.</summary>",
		`    /// <param name="a">A.</param>`,
	), got[0].Text)
	assert.Nil(t, got[0].Decl)

	require.NotNil(t, got[1].Decl)
	assert.Equal(t, extract.KindFunction, got[1].Decl.Kind)
	assert.Equal(t, "Add", got[1].Decl.Name)
	assert.Equal(t, "public", got[1].Decl.Access)
}

func TestExtractJavaScript(t *testing.T) {
	t.Parallel()

	src := stringtest.JoinLF(
		"/** Runs. */",
		"export function run() {}",
	)

	got, err := extract.Extract(t.Context(), extract.LanguageJavaScript, []byte(src))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.NotNil(t, got[0].Decl)

	assert.Equal(t, extract.KindFunction, got[0].Decl.Kind)
	assert.Equal(t, "run", got[0].Decl.Name)
}

func TestExtractUnsupported(t *testing.T) {
	t.Parallel()

	_, err := extract.Extract(t.Context(), extract.Language("cobol"), nil)
	require.ErrorIs(t, err, extract.ErrUnsupportedLanguage)
}

func TestDetectLanguage(t *testing.T) {
	t.Parallel()

	tcs := map[string]extract.Language{
		"Main.java":    extract.LanguageJava,
		"Calc.cs":      extract.LanguageCSharp,
		"lib.h":        extract.LanguageC,
		"lib.HPP":      extract.LanguageCPP,
		"app.mjs":      extract.LanguageJavaScript,
		"x/y/main.go":  extract.LanguageGo,
		"README.md":    extract.LanguageUnknown,
		"no-extension": extract.LanguageUnknown,
	}

	for path, want := range tcs {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, want, extract.DetectLanguage(path))
		})
	}
}
