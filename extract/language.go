package extract

import (
	"maps"
	"path/filepath"
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/c"
	"github.com/smacker/go-tree-sitter/cpp"
	"github.com/smacker/go-tree-sitter/csharp"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/smacker/go-tree-sitter/javascript"
)

// Language identifies a source language.
type Language string

const (
	LanguageUnknown    Language = ""
	LanguageJava       Language = "java"
	LanguageCSharp     Language = "csharp"
	LanguageC          Language = "c"
	LanguageCPP        Language = "cpp"
	LanguageJavaScript Language = "javascript"
	LanguageGo         Language = "go"
)

var extensions = map[string]Language{
	".java": LanguageJava,
	".cs":   LanguageCSharp,
	".c":    LanguageC,
	".h":    LanguageC,
	".cc":   LanguageCPP,
	".cpp":  LanguageCPP,
	".cxx":  LanguageCPP,
	".hh":   LanguageCPP,
	".hpp":  LanguageCPP,
	".js":   LanguageJavaScript,
	".mjs":  LanguageJavaScript,
	".cjs":  LanguageJavaScript,
	".go":   LanguageGo,
}

// DetectLanguage returns the language of a file from its extension.
func DetectLanguage(path string) Language {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// Languages returns every supported language.
func Languages() []Language {
	return []Language{
		LanguageC, LanguageCPP, LanguageCSharp,
		LanguageGo, LanguageJava, LanguageJavaScript,
	}
}

// grammar describes how comments and declarations look in one language.
type grammar struct {
	language func() *sitter.Language
	comments map[string]bool
	decls    map[string]Kind
	// wrappers are nodes whose declaration is a child, such as
	// "export_statement".
	wrappers map[string]bool
	access   func(n *sitter.Node, src []byte, name string) string
}

var cDecls = map[string]Kind{
	"function_definition": KindFunction,
	"declaration":         KindVariable,
	"struct_specifier":    KindType,
	"union_specifier":     KindType,
	"enum_specifier":      KindEnum,
	"type_definition":     KindType,
	"enumerator":          KindMember,
	"field_declaration":   KindVariable,
}

var grammars = map[Language]grammar{
	LanguageJava: {
		language: java.GetLanguage,
		comments: map[string]bool{"line_comment": true, "block_comment": true},
		decls: map[string]Kind{
			"class_declaration":           KindType,
			"interface_declaration":       KindType,
			"record_declaration":          KindType,
			"annotation_type_declaration": KindType,
			"enum_declaration":            KindEnum,
			"method_declaration":          KindFunction,
			"constructor_declaration":     KindFunction,
			"field_declaration":           KindVariable,
			"constant_declaration":        KindVariable,
			"enum_constant":               KindMember,
		},
		access: modifierAccess("modifiers"),
	},
	LanguageCSharp: {
		language: csharp.GetLanguage,
		comments: map[string]bool{"comment": true},
		decls: map[string]Kind{
			"class_declaration":       KindType,
			"struct_declaration":      KindType,
			"interface_declaration":   KindType,
			"record_declaration":      KindType,
			"delegate_declaration":    KindType,
			"enum_declaration":        KindEnum,
			"method_declaration":      KindFunction,
			"constructor_declaration": KindFunction,
			"operator_declaration":    KindFunction,
			"property_declaration":    KindVariable,
			"field_declaration":       KindVariable,
			"event_declaration":       KindVariable,
			"event_field_declaration": KindVariable,
			"enum_member_declaration": KindMember,
		},
		access: modifierAccess("modifier"),
	},
	LanguageC: {
		language: c.GetLanguage,
		comments: map[string]bool{"comment": true},
		decls:    cDecls,
	},
	LanguageCPP: {
		language: cpp.GetLanguage,
		comments: map[string]bool{"comment": true},
		decls: merge(cDecls, map[string]Kind{
			"class_specifier":   KindType,
			"alias_declaration": KindType,
		}),
		wrappers: map[string]bool{"template_declaration": true},
	},
	LanguageJavaScript: {
		language: javascript.GetLanguage,
		comments: map[string]bool{"comment": true},
		decls: map[string]Kind{
			"function_declaration":           KindFunction,
			"generator_function_declaration": KindFunction,
			"method_definition":              KindFunction,
			"class_declaration":              KindType,
			"lexical_declaration":            KindVariable,
			"variable_declaration":           KindVariable,
			"field_definition":               KindVariable,
		},
		wrappers: map[string]bool{"export_statement": true},
	},
	LanguageGo: {
		language: golang.GetLanguage,
		comments: map[string]bool{"comment": true},
		decls: map[string]Kind{
			"function_declaration": KindFunction,
			"method_declaration":   KindFunction,
			"type_declaration":     KindType,
			"const_declaration":    KindVariable,
			"var_declaration":      KindVariable,
		},
		access: exportedAccess,
	},
}

func merge(a, b map[string]Kind) map[string]Kind {
	out := maps.Clone(a)
	maps.Copy(out, b)

	return out
}

var accessKeywords = []string{"public", "protected", "internal", "private"}

// modifierAccess reads the access keyword from children of the given
// node type.
func modifierAccess(modifier string) func(*sitter.Node, []byte, string) string {
	return func(n *sitter.Node, src []byte, _ string) string {
		for i := range int(n.ChildCount()) {
			child := n.Child(i)
			if child.Type() != modifier {
				continue
			}

			for _, word := range strings.Fields(child.Content(src)) {
				if slices.Contains(accessKeywords, word) {
					return word
				}
			}
		}

		return ""
	}
}

func exportedAccess(_ *sitter.Node, _ []byte, name string) string {
	if name == "" {
		return ""
	}

	if strings.ToUpper(name[:1]) == name[:1] {
		return "public"
	}

	return "private"
}
