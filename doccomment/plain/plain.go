// Package plain converts untagged comments into NDMarkup.
//
// Text follows the Go doc comment conventions: blank lines separate
// paragraphs, indented runs become preformatted blocks, "#" lines become
// headings, and [Name] becomes a symbol link. Bullet and numbered list
// items are recognized even when they are not indented. A paragraph whose
// lines all read "term - description" becomes a definition list.
package plain

import (
	gocomment "go/doc/comment"
	"strings"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/ndmarkup"
)

// Name is the registry name of the dialect.
const Name = "plain"

// Parser converts plain comments. It accepts every comment with text, so
// it belongs at the end of a fallback chain.
type Parser struct {
	env doccomment.Env
}

// NewParser returns a plain [doccomment.Parser].
func NewParser(env doccomment.Env) doccomment.Parser {
	return &Parser{env: env}
}

// Name implements [doccomment.Parser].
func (p *Parser) Name() string {
	return Name
}

// Accepts implements [doccomment.Parser].
func (p *Parser) Accepts(_ comment.Dialect) bool {
	return true
}

// Parse implements [doccomment.Parser].
func (p *Parser) Parse(span comment.Span) (*doccomment.Unit, bool) {
	text := dedent(span.Content(p.env.Tabs()))
	if text == "" {
		return nil, false
	}

	gp := gocomment.Parser{
		LookupSym: func(_, _ string) bool { return true },
	}

	doc := gp.Parse(text)

	var body strings.Builder

	r := renderer{env: p.env}
	for _, b := range doc.Content {
		r.block(&body, b)
	}

	return doccomment.NewUnit(Name, span.LineNumber(), body.String()), true
}

// dedent removes the common indent, trailing whitespace, and surrounding
// blank lines. Unindented list items are indented so they parse as lists.
func dedent(text string) string {
	lines := strings.Split(text, "\n")
	indent := -1

	for i, l := range lines {
		l = strings.TrimRight(l, " \t\r")
		lines[i] = l

		if l == "" {
			continue
		}

		n := len(l) - len(strings.TrimLeft(l, " "))
		if indent < 0 || n < indent {
			indent = n
		}
	}

	for i, l := range lines {
		if l == "" {
			continue
		}

		l = l[indent:]
		if isListItem(l) {
			l = "  " + l
		}

		lines[i] = l
	}

	return strings.Trim(strings.Join(lines, "\n"), "\n")
}

// isListItem reports whether line starts with a bullet or number marker.
func isListItem(line string) bool {
	if len(line) >= 2 && strings.IndexByte("-*+", line[0]) >= 0 && line[1] == ' ' {
		return true
	}

	digits := len(line) - len(strings.TrimLeft(line, "0123456789"))
	if digits == 0 || digits > 3 || len(line) < digits+2 {
		return false
	}

	return (line[digits] == '.' || line[digits] == ')') && line[digits+1] == ' '
}

type renderer struct {
	env doccomment.Env
}

func (r renderer) block(out *strings.Builder, block gocomment.Block) {
	switch b := block.(type) {
	case *gocomment.Paragraph:
		if dl, ok := r.definitions(b.Text); ok {
			out.WriteString(dl)

			return
		}

		out.WriteString(ndmarkup.ParagraphOpen)
		r.text(out, b.Text)
		out.WriteString(ndmarkup.ParagraphClose)

	case *gocomment.Heading:
		var sb strings.Builder

		r.text(&sb, b.Text)
		out.WriteString(ndmarkup.Heading(sb.String(), ""))

	case *gocomment.Code:
		var lines []ndmarkup.CodeLine
		for line := range strings.SplitSeq(strings.TrimSuffix(b.Text, "\n"), "\n") {
			lines = append(lines, ndmarkup.NewCodeLine(line, false))
		}

		out.WriteString(ndmarkup.Pre(ndmarkup.PreOpen, lines))

	case *gocomment.List:
		out.WriteString(ndmarkup.BulletListOpen)

		for _, item := range b.Items {
			out.WriteString(ndmarkup.ItemOpen)

			for i, c := range item.Content {
				if p, ok := c.(*gocomment.Paragraph); ok {
					if i > 0 {
						out.WriteString(ndmarkup.Break)
					}

					r.text(out, p.Text)
				}
			}

			out.WriteString(ndmarkup.ItemClose)
		}

		out.WriteString(ndmarkup.BulletListClose)
	}
}

// definitions renders a paragraph of two or more "term - description"
// lines as a definition list. Terms are single words.
func (r renderer) definitions(text []gocomment.Text) (string, bool) {
	var sb strings.Builder

	for _, t := range text {
		p, ok := t.(gocomment.Plain)
		if !ok {
			return "", false
		}

		sb.WriteString(string(p))
	}

	lines := strings.Split(sb.String(), "\n")
	if len(lines) < 2 {
		return "", false
	}

	var out strings.Builder

	out.WriteString(ndmarkup.DefListOpen)

	for _, line := range lines {
		term, desc, ok := strings.Cut(line, " - ")
		term = strings.TrimSpace(term)
		desc = strings.TrimSpace(desc)

		if !ok || term == "" || desc == "" || strings.ContainsAny(term, " \t") {
			return "", false
		}

		out.WriteString(ndmarkup.TermOpen + ndmarkup.Encode(term) + ndmarkup.TermClose)
		out.WriteString(ndmarkup.DefOpen + doccomment.Linkify(desc, r.env.Protocol) + ndmarkup.DefClose)
	}

	out.WriteString(ndmarkup.DefListClose)

	return out.String(), true
}

func (r renderer) text(out *strings.Builder, text []gocomment.Text) {
	for _, t := range text {
		switch v := t.(type) {
		case gocomment.Plain:
			out.WriteString(doccomment.Linkify(string(v), r.env.Protocol))

		case gocomment.Italic:
			out.WriteString(ndmarkup.ItalicOpen)
			out.WriteString(ndmarkup.Encode(string(v)))
			out.WriteString(ndmarkup.ItalicClose)

		case *gocomment.Link:
			out.WriteString(r.link(v))

		case *gocomment.DocLink:
			out.WriteString(ndmarkup.Link(ndmarkup.LinkSymbol, docLinkTarget(v), plainText(v.Text)))
		}
	}
}

func (r renderer) link(l *gocomment.Link) string {
	label := plainText(l.Text)

	if addr, ok := strings.CutPrefix(l.URL, "mailto:"); ok {
		return ndmarkup.Link(ndmarkup.LinkEmail, addr, label)
	}

	scheme, _, ok := strings.Cut(l.URL, ":")
	if !ok || !r.env.Protocol(scheme) {
		return ndmarkup.Encode(label)
	}

	return ndmarkup.Link(ndmarkup.LinkURL, l.URL, label)
}

func plainText(text []gocomment.Text) string {
	var sb strings.Builder

	for _, t := range text {
		switch v := t.(type) {
		case gocomment.Plain:
			sb.WriteString(string(v))
		case gocomment.Italic:
			sb.WriteString(string(v))
		case *gocomment.Link:
			sb.WriteString(plainText(v.Text))
		case *gocomment.DocLink:
			sb.WriteString(plainText(v.Text))
		}
	}

	return strings.Join(strings.Fields(sb.String()), " ")
}

func docLinkTarget(link *gocomment.DocLink) string {
	var parts []string

	for _, p := range []string{link.ImportPath, link.Recv, link.Name} {
		if p != "" {
			parts = append(parts, p)
		}
	}

	return strings.Join(parts, ".")
}
