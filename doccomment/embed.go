package doccomment

import (
	"strings"

	"go.jacobcolvin.com/ndoc/ndmarkup"
)

// ReinterpretListAsEmbedded turns the generic definition lists of u into
// lists of embedded symbols, for parents such as enums whose list entries
// document their members.
//
// Every term tag is renamed to the symbol form and every entry becomes an
// embedded unit, in order, titled by the term's text. Embedded units
// inherit the parent's access level, tags, dialect, and line, and get their
// own summary. It reports whether any entry was found.
func ReinterpretListAsEmbedded(u *Unit) bool {
	pieces := ndmarkup.Split(u.Body)

	var embedded []*Unit

	for i := 0; i < len(pieces); i++ {
		p := pieces[i]
		if p.Kind != ndmarkup.TagPiece || p.Name != "de" || p.Closing {
			continue
		}

		end := matching(pieces, i)
		if end+1 >= len(pieces) || pieces[end+1].Text != ndmarkup.DefOpen {
			continue
		}

		defEnd := matching(pieces, end+1)

		title := ndmarkup.Decode(plainText(pieces[i+1 : end]))
		desc := ndmarkup.Join(pieces[end+2 : min(defEnd, len(pieces))])

		pieces[i].Text = ndmarkup.SymbolTermOpen
		pieces[i].Name = "ds"
		pieces[end].Text = ndmarkup.SymbolTermClose
		pieces[end].Name = "ds"

		embedded = append(embedded, embeddedUnit(u, strings.TrimSpace(title), desc))
	}

	if len(embedded) == 0 {
		return false
	}

	u.Body = ndmarkup.Join(pieces)
	u.Summary, _ = ndmarkup.ExtractSummary(u.Body)
	u.Embedded = append(u.Embedded, embedded...)

	return true
}

func embeddedUnit(parent *Unit, title, desc string) *Unit {
	raw := desc

	parts := ndmarkup.Split(desc)
	if len(parts) == 0 || !parts[0].IsBlock() {
		raw = ndmarkup.ParagraphOpen + desc + ndmarkup.ParagraphClose
	}

	child := &Unit{
		Title:   title,
		Dialect: parent.Dialect,
		Access:  parent.Access,
		Tags:    append([]string(nil), parent.Tags...),
		Line:    parent.Line,
	}
	child.SetBody(raw)

	return child
}

// matching returns the index of the tag closing the one opened at i.
func matching(pieces []ndmarkup.Piece, i int) int {
	name := pieces[i].Name
	depth := 0

	for j := i; j < len(pieces); j++ {
		p := pieces[j]
		if p.Kind != ndmarkup.TagPiece || p.Name != name {
			continue
		}

		if p.Closing {
			depth--
			if depth == 0 {
				return j
			}
		} else {
			depth++
		}
	}

	return len(pieces)
}

// plainText returns the text pieces only, dropping tags.
func plainText(pieces []ndmarkup.Piece) string {
	var sb strings.Builder

	for _, p := range pieces {
		if p.Kind == ndmarkup.TextPiece {
			sb.WriteString(p.Text)
		}

		if p.Kind == ndmarkup.TagPiece && p.Name == "link" {
			text, ok := p.Attr("text")
			if !ok {
				text, _ = p.Attr("target")
			}

			sb.WriteString(ndmarkup.Encode(text))
		}
	}

	return sb.String()
}
