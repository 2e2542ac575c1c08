// Package extract locates documentation comments in source files.
//
// Files are parsed with tree-sitter. Consecutive line comments that start
// in the same column and use the same marker form one [Comment]. Each
// comment records the declaration that directly follows it, which callers
// use to decide how the comment is documented. A comment that follows code
// on the same line is marked as trailing and has no declaration.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// ErrUnsupportedLanguage is returned for files no grammar handles.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// Kind classifies a declaration.
type Kind string

const (
	KindType     Kind = "type"
	KindEnum     Kind = "enum"
	KindFunction Kind = "function"
	KindVariable Kind = "variable"
	// KindMember is an enum constant.
	KindMember Kind = "member"
)

// Declaration is the code documented by a comment.
type Declaration struct {
	Kind   Kind   `json:"kind"`
	Name   string `json:"name,omitempty"`
	Access string `json:"access,omitempty"`
	Line   int    `json:"line"`
}

// Comment is one comment or group of line comments.
type Comment struct {
	// Decl is nil when no declaration directly follows.
	Decl *Declaration
	// Text is the comment source. Each line keeps its original columns, so
	// the first line is indented by Column spaces.
	Text string
	// Line is the one-based line of the first marker.
	Line int
	// Column is the zero-based byte column of the first marker.
	Column int
	// Trailing is set when code precedes the comment on its first line.
	Trailing bool
}

// Extract returns the comments of src in source order.
func Extract(ctx context.Context, lang Language, src []byte) ([]Comment, error) {
	g, ok := grammars[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	parser := sitter.NewParser()
	defer parser.Close()

	parser.SetLanguage(g.language())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", lang, err)
	}
	defer tree.Close()

	e := &extraction{grammar: g, src: src}
	e.visit(tree.RootNode())

	return e.comments, nil
}

type extraction struct {
	src      []byte
	comments []Comment
	grammar  grammar
}

func (e *extraction) visit(n *sitter.Node) {
	count := int(n.NamedChildCount())

	for i := 0; i < count; {
		child := n.NamedChild(i)
		if !e.grammar.comments[child.Type()] {
			e.visit(child)
			i++

			continue
		}

		i = e.group(n, i)
	}
}

// group collects the comment at named child i of parent and the line
// comments that continue it. It returns the index after the group.
func (e *extraction) group(parent *sitter.Node, i int) int {
	first := parent.NamedChild(i)
	start := first.StartPoint()
	text := first.Content(e.src)

	c := Comment{
		Line:     int(start.Row) + 1,
		Column:   int(start.Column),
		Trailing: followsCode(first),
	}

	lines := []string{text}
	last := first
	count := int(parent.NamedChildCount())

	i++

	if marker := lineMarker(text); marker != "" {
		for ; i < count; i++ {
			next := parent.NamedChild(i)
			if !e.grammar.comments[next.Type()] || !adjacent(last, next) ||
				int(next.StartPoint().Column) != c.Column || lineMarker(next.Content(e.src)) != marker {
				break
			}

			lines = append(lines, next.Content(e.src))
			last = next
		}
	}

	c.Text = strings.Repeat(" ", c.Column) + strings.Join(lines, "\n"+strings.Repeat(" ", c.Column))

	if !c.Trailing && i < count {
		next := parent.NamedChild(i)
		if next.StartPoint().Row <= last.EndPoint().Row+1 {
			c.Decl = e.declaration(next)
		}
	}

	e.comments = append(e.comments, c)

	return i
}

// followsCode reports whether another node ends on the line n starts on.
func followsCode(n *sitter.Node) bool {
	prev := n.PrevSibling()

	return prev != nil && prev.EndPoint().Row == n.StartPoint().Row
}

// adjacent reports whether next starts on the line after prev with nothing
// in between.
func adjacent(prev, next *sitter.Node) bool {
	if next.StartPoint().Row != prev.EndPoint().Row+1 {
		return false
	}

	between := next.PrevSibling()

	return between != nil && between.StartByte() == prev.StartByte()
}

// lineMarker returns the line comment marker text starts with, or "" for
// a block comment.
func lineMarker(text string) string {
	switch {
	case strings.HasPrefix(text, "///") && !strings.HasPrefix(text, "////"):
		return "///"
	case strings.HasPrefix(text, "//"):
		return "//"
	case strings.HasPrefix(text, "#"):
		return "#"
	}

	return ""
}

func (e *extraction) declaration(n *sitter.Node) *Declaration {
	for e.grammar.wrappers[n.Type()] {
		inner := n.ChildByFieldName("declaration")
		if inner == nil {
			inner = lastNamedChild(n)
		}

		if inner == nil {
			return nil
		}

		n = inner
	}

	kind, ok := e.grammar.decls[n.Type()]
	if !ok {
		return nil
	}

	d := &Declaration{
		Kind: refineKind(n, kind),
		Name: nameOf(n, e.src),
		Line: int(n.StartPoint().Row) + 1,
	}

	if e.grammar.access != nil {
		d.Access = e.grammar.access(n, e.src, d.Name)
	}

	return d
}

// refineKind finds enums hidden in C typedefs and declarations.
func refineKind(n *sitter.Node, kind Kind) Kind {
	switch n.Type() {
	case "type_definition", "declaration":
		if t := n.ChildByFieldName("type"); t != nil && t.Type() == "enum_specifier" {
			return KindEnum
		}
	}

	if kind == KindVariable && n.Type() == "declaration" {
		if d := n.ChildByFieldName("declarator"); d != nil && d.Type() == "function_declarator" {
			return KindFunction
		}
	}

	return kind
}

var identifierTypes = map[string]bool{
	"identifier":          true,
	"type_identifier":     true,
	"field_identifier":    true,
	"property_identifier": true,
}

// nameOf finds the declared name through the "name" and "declarator"
// fields, looking into the first named child for grouped declarations.
func nameOf(n *sitter.Node, src []byte) string {
	for range 4 {
		if n == nil {
			return ""
		}

		if identifierTypes[n.Type()] {
			return n.Content(src)
		}

		if name := n.ChildByFieldName("name"); name != nil {
			if identifierTypes[name.Type()] {
				return name.Content(src)
			}

			n = name

			continue
		}

		if d := n.ChildByFieldName("declarator"); d != nil {
			n = d

			continue
		}

		if n.NamedChildCount() == 0 {
			return ""
		}

		n = n.NamedChild(0)
	}

	return ""
}

func lastNamedChild(n *sitter.Node) *sitter.Node {
	count := int(n.NamedChildCount())
	if count == 0 {
		return nil
	}

	return n.NamedChild(count - 1)
}
