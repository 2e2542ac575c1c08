package xmldoc

import (
	"slices"
	"strings"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/ndmarkup"
	"go.jacobcolvin.com/ndoc/token"
)

// Name is the registry name of the dialect.
const Name = "xml"

type sectionKind uint8

const (
	textSection sectionKind = iota
	// paramSection members are named by their name attribute.
	paramSection
	// referenceSection members are named by a link built from their cref
	// or href attribute.
	referenceSection
	// seeSection members are links whose label is the element content.
	seeSection
)

type section struct {
	name string
	kind sectionKind
}

var sections = map[string]section{
	"summary":    {name: "summary"},
	"remark":     {name: "remark"},
	"remarks":    {name: "remark"},
	"example":    {name: "example"},
	"returns":    {name: "returns"},
	"value":      {name: "value"},
	"param":      {name: "param", kind: paramSection},
	"typeparam":  {name: "typeparam", kind: paramSection},
	"exception":  {name: "exception", kind: referenceSection},
	"permission": {name: "permission", kind: referenceSection},
	"see":        {name: "seealso", kind: seeSection},
	"seealso":    {name: "seealso", kind: seeSection},
}

// leading sections are rendered first, in this order.
var leading = []string{"summary", "remark", "value"}

var styles = map[string]doccomment.SectionStyle{
	"summary":    {Unheaded: true},
	"remark":     {Unheaded: true},
	"value":      {Unheaded: true},
	"param":      {HeadingType: "parameters", DefinitionList: true},
	"exception":  {LinkNames: true},
	"permission": {LinkNames: true},
	"seealso":    {LinkNames: true},
}

// Parser converts XML documentation comments.
type Parser struct {
	env doccomment.Env
}

// NewParser returns an XML [doccomment.Parser].
func NewParser(env doccomment.Env) doccomment.Parser {
	return &Parser{env: env}
}

// Name implements [doccomment.Parser].
func (p *Parser) Name() string {
	return Name
}

// Accepts implements [doccomment.Parser]. Javadoc-style block comments are
// accepted too, since some projects put XML tags in them.
func (p *Parser) Accepts(d comment.Dialect) bool {
	return d == comment.XML || d == comment.Javadoc
}

// Parse implements [doccomment.Parser].
func (p *Parser) Parse(span comment.Span) (*doccomment.Unit, bool) {
	buf := token.New(span.Content(p.env.Tabs()))
	end := buf.End()

	var (
		sc    doccomment.SectionedComment
		found bool
	)

	c := &converter{env: p.env, end: end}

	for it := buf.First(); it.Before(end); {
		if !it.Is("<") {
			it.Next()

			continue
		}

		tag, next, ok := doccomment.ScanTag(it, end)
		if !ok || tag.Closing {
			it.Next()

			continue
		}

		s, known := sections[tag.Name]

		switch {
		case !known && tag.SelfClosing:
			it = next

			continue

		case !known:
			it = skipElement(next, end, tag.Name)

			continue
		}

		found = true
		it = c.section(&sc, s, tag, next)
	}

	if !found {
		return nil, false
	}

	var body strings.Builder

	asm := doccomment.Assembler{Dialect: Name, Env: p.env, Styles: styles}

	for _, name := range leading {
		if s, ok := sc.Lookup(name); ok {
			asm.Section(&body, s)
		}
	}

	for _, s := range sc.Sections() {
		if !slices.Contains(leading, s.SectionName()) {
			asm.Section(&body, s)
		}
	}

	return doccomment.NewUnit(Name, span.LineNumber(), body.String()), true
}

// section converts one top-level element whose opening tag ends at it and
// returns the position after its closing tag.
func (c *converter) section(sc *doccomment.SectionedComment, s section, tag doccomment.Tag, it token.Iterator) token.Iterator {
	var content string

	switch {
	case tag.SelfClosing:
	case s.kind == textSection:
		it, content = c.convert(it, tag.Name, normalMode)
	case s.kind == seeSection:
		content, it = c.unformatted(it, tag.Name)
	default:
		it, content = c.convert(it, tag.Name, inlineMode)
	}

	switch s.kind {
	case textSection:
		sc.TextSection(s.name).Append(content)

	case paramSection:
		name, _ := tag.Attr("name")
		sc.ListSection(s.name).AddMember(ndmarkup.Encode(strings.TrimSpace(name)), content)

	case referenceSection:
		sc.ListSection(s.name).AddMember(reference(tag, ""), content)

	case seeSection:
		if name := reference(tag, content); name != "" {
			sc.ListSection(s.name).AddMember(name, "")
		}
	}

	return it
}

// reference builds a link from the cref or href attribute of tag.
func reference(tag doccomment.Tag, label string) string {
	if cref, ok := tag.Attr("cref"); ok && strings.TrimSpace(cref) != "" {
		return ndmarkup.Link(ndmarkup.LinkSymbol, crefSymbol(cref), label)
	}

	if href, ok := tag.Attr("href"); ok && strings.TrimSpace(href) != "" {
		return hrefLink(href, label)
	}

	return ""
}

// crefSymbol drops the member kind prefix of a cref such as "T:System.String".
func crefSymbol(cref string) string {
	cref = strings.TrimSpace(cref)

	if len(cref) > 2 && cref[1] == ':' && strings.IndexByte("TMPFEN!", cref[0]) >= 0 {
		return cref[2:]
	}

	return cref
}

// hrefLink builds a URL or e-mail link.
func hrefLink(href, label string) string {
	href = strings.TrimSpace(href)

	if addr, ok := cutPrefixFold(href, "mailto:"); ok {
		return ndmarkup.Link(ndmarkup.LinkEmail, addr, label)
	}

	return ndmarkup.Link(ndmarkup.LinkURL, href, label)
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || !strings.EqualFold(s[:len(prefix)], prefix) {
		return s, false
	}

	return s[len(prefix):], true
}

// skipElement returns the position after the closing tag of an element
// named name whose opening tag ends at it. Nested elements of the same name
// are counted.
func skipElement(it, end token.Iterator, name string) token.Iterator {
	depth := 1

	for it.Before(end) {
		if !it.Is("<") {
			it.Next()

			continue
		}

		tag, next, ok := doccomment.ScanTag(it, end)
		if !ok {
			it.Next()

			continue
		}

		it = next

		if tag.Name != name || tag.SelfClosing {
			continue
		}

		if tag.Closing {
			depth--
			if depth == 0 {
				return it
			}
		} else {
			depth++
		}
	}

	return it
}
