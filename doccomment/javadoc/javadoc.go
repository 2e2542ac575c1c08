package javadoc

import (
	"strings"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/ndmarkup"
	"go.jacobcolvin.com/ndoc/token"
)

// Name is the registry name of the dialect.
const Name = "javadoc"

type blockKind uint8

const (
	unnamedMember blockKind = iota
	namedMember
	deprecatedNote
	textBlock
	seeBlock
	discarded
)

type blockTag struct {
	section string
	kind    blockKind
}

var blockTags = map[string]blockTag{
	"author":      {section: "author", kind: unnamedMember},
	"since":       {section: "since", kind: unnamedMember},
	"version":     {section: "version", kind: unnamedMember},
	"deprecated":  {kind: deprecatedNote},
	"param":       {section: "param", kind: namedMember},
	"exception":   {section: "throws", kind: namedMember},
	"throws":      {section: "throws", kind: namedMember},
	"return":      {section: "return", kind: textBlock},
	"returns":     {section: "return", kind: textBlock},
	"see":         {section: "see", kind: seeBlock},
	"apiNote":     {section: "apiNote", kind: textBlock},
	"implSpec":    {section: "implSpec", kind: textBlock},
	"implNote":    {section: "implNote", kind: textBlock},
	"serial":      {kind: discarded},
	"serialData":  {kind: discarded},
	"serialField": {kind: discarded},
	"hidden":      {kind: discarded},
}

var inlineTags = map[string]bool{
	"code":       true,
	"literal":    true,
	"link":       true,
	"linkplain":  true,
	"linkPlain":  true,
	"value":      true,
	"inheritDoc": true,
	"docRoot":    true,
}

var styles = map[string]doccomment.SectionStyle{
	"description": {Unheaded: true},
	"param":       {HeadingType: "parameters", DefinitionList: true},
	"throws":      {LinkNames: true},
}

// Parser converts Javadoc comments.
type Parser struct {
	env doccomment.Env
}

// NewParser returns a Javadoc [doccomment.Parser].
func NewParser(env doccomment.Env) doccomment.Parser {
	return &Parser{env: env}
}

// Name implements [doccomment.Parser].
func (p *Parser) Name() string {
	return Name
}

// Accepts implements [doccomment.Parser].
func (p *Parser) Accepts(d comment.Dialect) bool {
	return d == comment.Javadoc
}

// Parse implements [doccomment.Parser].
func (p *Parser) Parse(span comment.Span) (*doccomment.Unit, bool) {
	buf := token.New(span.Content(p.env.Tabs()))
	if !hasTags(buf) {
		return nil, false
	}

	var (
		sc    doccomment.SectionedComment
		notes []string
	)

	c := &converter{env: p.env}

	first := buf.FirstLine()
	for first.Valid() {
		if _, _, ok := tagLine(first); ok {
			break
		}

		first.Next()
	}

	c.end = first.Start()
	_, desc := c.convert(buf.First(), normalMode)
	sc.TextSection("description").Append(desc)

	for l := first; l.Valid(); {
		name, at, ok := tagLine(l)
		if !ok || !isBlockTag(name) {
			l.Next()

			continue
		}

		next := l
		for next.Next(); next.Valid(); next.Next() {
			if _, _, ok := tagLine(next); ok {
				break
			}
		}

		at.Advance(2)
		c.end = next.Start()

		if note := c.block(&sc, blockTags[name], at); note != "" {
			notes = append(notes, note)
		}

		l = next
	}

	var body strings.Builder

	if len(notes) > 0 {
		body.WriteString(ndmarkup.ParagraphOpen)
		body.WriteString(ndmarkup.BoldOpen)
		body.WriteString(ndmarkup.Encode(p.env.Phrase("deprecated")))
		body.WriteString(ndmarkup.BoldClose)
		body.WriteString(" ")
		body.WriteString(ndmarkup.ItalicOpen)
		body.WriteString(strings.Join(notes, " "))
		body.WriteString(ndmarkup.ItalicClose)
		body.WriteString(ndmarkup.ParagraphClose)
	}

	asm := doccomment.Assembler{Dialect: Name, Env: p.env, Styles: styles}
	for _, s := range sc.Sections() {
		asm.Section(&body, s)
	}

	u := doccomment.NewUnit(Name, span.LineNumber(), body.String())
	if len(notes) > 0 {
		u.AddTag("deprecated")
	}

	return u, true
}

// block converts one block tag whose text starts at it and runs to c.end.
// It returns the text of a deprecation note.
func (c *converter) block(sc *doccomment.SectionedComment, tag blockTag, it token.Iterator) string {
	it.SkipWhitespace(c.end, true)

	switch tag.kind {
	case unnamedMember:
		_, desc := c.convert(it, memberMode)
		sc.ListSection(tag.section).AddMember("", desc)

	case namedMember:
		symbol, rest := extractSymbol(it, c.end)
		_, desc := c.convert(rest, memberMode)

		if symbol == "" || strings.TrimSpace(desc) == "" {
			return ""
		}

		sc.ListSection(tag.section).AddMember(ndmarkup.Encode(symbol), desc)

	case deprecatedNote:
		_, note := c.convert(it, memberMode)

		return strings.TrimSpace(note)

	case textBlock:
		_, text := c.convert(it, normalMode)
		sc.TextSection(tag.section).Append(text)

	case seeBlock:
		if it.Is(`"`) || it.Is("<") {
			_, desc := c.convert(it, memberMode)
			sc.ListSection(tag.section).AddMember("", desc)

			break
		}

		symbol, rest := extractSymbol(it, c.end)
		if symbol == "" {
			break
		}

		label, _ := c.plainText(rest, "")
		sc.ListSection(tag.section).AddMember(ndmarkup.Link(ndmarkup.LinkSymbol, symbol, label), "")

	case discarded:
	}

	return ""
}

// hasTags reports whether the text holds a known block tag at the start of
// a line or a known inline tag anywhere.
func hasTags(buf *token.Buffer) bool {
	for l := buf.FirstLine(); l.Valid(); l.Next() {
		if name, _, ok := tagLine(l); ok && isBlockTag(name) {
			return true
		}
	}

	for it := buf.First(); it.Valid(); it.Next() {
		if !it.HasPrefix("{@") {
			continue
		}

		name := it
		name.Advance(2)

		if inlineTags[name.String()] {
			return true
		}
	}

	return false
}

func isBlockTag(name string) bool {
	_, ok := blockTags[name]

	return ok
}

// tagLine returns the name and position of an "@word" starting the line.
func tagLine(l token.Line) (string, token.Iterator, bool) {
	start, end := l.Bounds(token.ExcludeWhitespace)
	if !start.Before(end) || !start.Is("@") {
		return "", start, false
	}

	name := start
	name.Next()

	if !name.Before(end) || name.Type() != token.Text {
		return "", start, false
	}

	return name.String(), start, true
}
