package ndmarkup

import (
	"strings"
)

// BreakPlaceholder marks a source line break in raw generated markup.
// [Normalize] turns it into spaces.
const BreakPlaceholder = "\n"

// Tags of the canonical vocabulary.
const (
	ParagraphOpen   = "<p>"
	ParagraphClose  = "</p>"
	HeadingOpen     = "<h>"
	HeadingClose    = "</h>"
	PreOpen         = "<pre>"
	PrototypeOpen   = `<pre type="prototype">`
	PreClose        = "</pre>"
	BulletListOpen  = "<ul>"
	BulletListClose = "</ul>"
	ItemOpen        = "<li>"
	ItemClose       = "</li>"
	DefListOpen     = "<dl>"
	DefListClose    = "</dl>"
	TermOpen        = "<de>"
	TermClose       = "</de>"
	SymbolTermOpen  = "<ds>"
	SymbolTermClose = "</ds>"
	DefOpen         = "<dd>"
	DefClose        = "</dd>"
	BoldOpen        = "<b>"
	BoldClose       = "</b>"
	ItalicOpen      = "<i>"
	ItalicClose     = "</i>"
	UnderlineOpen   = "<u>"
	UnderlineClose  = "</u>"
	Break           = "<br>"
)

// LinkKind is the type attribute of a link tag.
type LinkKind string

// Link kinds.
const (
	LinkSymbol LinkKind = "symbol"
	LinkURL    LinkKind = "url"
	LinkEmail  LinkKind = "email"
)

var (
	encoder = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	decoder = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&amp;", "&",
	)
)

// Encode entity-encodes plain text for use as markup text or an attribute
// value.
func Encode(s string) string {
	return encoder.Replace(s)
}

// Decode reverses [Encode].
func Decode(s string) string {
	return decoder.Replace(s)
}

// Link returns a link tag. target and text are plain text. The text
// attribute is omitted when text is empty or equal to target.
func Link(kind LinkKind, target, text string) string {
	var sb strings.Builder

	sb.WriteString(`<link type="`)
	sb.WriteString(string(kind))
	sb.WriteString(`" target="`)
	sb.WriteString(Encode(target))
	sb.WriteByte('"')

	if text != "" && text != target {
		sb.WriteString(` text="`)
		sb.WriteString(Encode(text))
		sb.WriteByte('"')
	}

	sb.WriteByte('>')

	return sb.String()
}

// IsLink reports whether s is exactly one link tag.
func IsLink(s string) bool {
	return strings.HasPrefix(s, "<link ") && strings.HasSuffix(s, ">") &&
		strings.Count(s, "<") == 1
}

// Heading wraps markup in a heading. An empty typ yields a plain heading.
func Heading(markup, typ string) string {
	if typ == "" {
		return HeadingOpen + markup + HeadingClose
	}

	return `<h type="` + Encode(typ) + `">` + markup + HeadingClose
}

// Image returns a standalone image tag.
func Image(target string) string {
	return `<image type="standalone" target="` + Encode(target) + `">`
}

// PieceKind classifies a [Piece].
type PieceKind uint8

// Piece kinds.
const (
	// TextPiece is entity-encoded text between tags.
	TextPiece PieceKind = iota
	// TagPiece is one tag.
	TagPiece
	// PrePiece is a whole preformatted block, tags included.
	PrePiece
)

// Piece is one element of markup as returned by [Split].
type Piece struct {
	// Text is the exact source of the piece.
	Text string
	// Name is the tag name for TagPiece and PrePiece, without the slash.
	Name string
	Kind PieceKind
	// Closing is set for closing tags.
	Closing bool
}

// IsBlock reports whether the piece starts or ends a block-level element.
func (p Piece) IsBlock() bool {
	if p.Kind == PrePiece {
		return true
	}

	if p.Kind != TagPiece {
		return false
	}

	switch p.Name {
	case "p", "h", "pre", "ul", "li", "dl", "de", "ds", "dd":
		return true
	case "image":
		return strings.Contains(p.Text, `type="standalone"`)
	}

	return false
}

// IsBreak reports whether the piece is a line break tag.
func (p Piece) IsBreak() bool {
	return p.Kind == TagPiece && p.Name == "br"
}

// Attr returns the decoded value of a tag attribute.
func (p Piece) Attr(name string) (string, bool) {
	key := " " + name + `="`

	i := strings.Index(p.Text, key)
	if i < 0 || p.Kind == TextPiece {
		return "", false
	}

	rest := p.Text[i+len(key):]

	end := strings.IndexByte(rest, '"')
	if end < 0 {
		return "", false
	}

	return Decode(rest[:end]), true
}

// Split breaks markup into text, tags, and whole preformatted blocks.
// Concatenating the Text of every piece yields the input.
func Split(markup string) []Piece {
	var pieces []Piece

	for markup != "" {
		lt := strings.IndexByte(markup, '<')
		if lt != 0 {
			if lt < 0 {
				lt = len(markup)
			}

			pieces = append(pieces, Piece{Kind: TextPiece, Text: markup[:lt]})
			markup = markup[lt:]

			continue
		}

		gt := strings.IndexByte(markup, '>')
		if gt < 0 {
			pieces = append(pieces, Piece{Kind: TextPiece, Text: markup})

			break
		}

		p := Piece{Kind: TagPiece, Text: markup[:gt+1]}
		p.Name, p.Closing = tagName(p.Text)

		if p.Name == "pre" && !p.Closing {
			end := strings.Index(markup, PreClose)
			if end < 0 {
				end = len(markup)
			} else {
				end += len(PreClose)
			}

			p.Kind = PrePiece
			p.Text = markup[:end]
		}

		pieces = append(pieces, p)
		markup = markup[len(p.Text):]
	}

	return pieces
}

func tagName(tag string) (string, bool) {
	name := strings.TrimSuffix(strings.TrimPrefix(tag, "<"), ">")

	closing := strings.HasPrefix(name, "/")
	name = strings.TrimPrefix(name, "/")

	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}

	return name, closing
}

// Join concatenates pieces back into markup.
func Join(pieces []Piece) string {
	var sb strings.Builder
	for _, p := range pieces {
		sb.WriteString(p.Text)
	}

	return sb.String()
}
