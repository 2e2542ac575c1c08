package xmldoc

import (
	"strings"

	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/ndmarkup"
	"go.jacobcolvin.com/ndoc/token"
)

type mode uint8

const (
	// normalMode wraps text in paragraphs and allows block markup.
	normalMode mode = iota
	// inlineMode produces markup for list members and list items.
	inlineMode
)

var inlineFormats = map[string]struct{ open, close string }{
	"b": {ndmarkup.BoldOpen, ndmarkup.BoldClose},
	"i": {ndmarkup.ItalicOpen, ndmarkup.ItalicClose},
	"u": {ndmarkup.UnderlineOpen, ndmarkup.UnderlineClose},
}

// converter turns the content of XML elements into markup. Conversions
// share one tag stack.
type converter struct {
	env   doccomment.Env
	end   token.Iterator
	stack ndmarkup.TagStack
}

// convert converts the content of an element named closing whose opening
// tag ends at it. It returns the position after the closing tag and the
// markup.
func (c *converter) convert(it token.Iterator, closing string, m mode) (token.Iterator, string) {
	w := doccomment.NewWriter(&c.stack, m == normalMode)
	depth := 1

	for it.Before(c.end) {
		switch {
		case it.Type() == token.LineBreak:
			w.LineBreak()
			it.Next()

		case it.Type() == token.Whitespace:
			w.Space()
			it.Next()

		case it.Is("<"):
			tag, next, ok := doccomment.ScanTag(it, c.end)
			if !ok {
				w.Write(ndmarkup.Encode("<"))
				it.Next()

				continue
			}

			if tag.Name == closing && !tag.SelfClosing {
				if tag.Closing {
					depth--
				} else {
					depth++
				}

				if depth == 0 {
					return next, w.Finish()
				}
			}

			it = c.element(w, tag, next, m)

		case it.Is("&"):
			s, next, ok := doccomment.ScanEntity(it, c.end)
			if !ok {
				s, next = "&", it
				next.Next()
			}

			w.Write(ndmarkup.Encode(s))

			it = next

		default:
			start := it
			for it.Before(c.end) && !endsWord(it) {
				it.Next()
			}

			w.Write(doccomment.Linkify(start.TextTo(it), c.env.Protocol))
		}
	}

	return it, w.Finish()
}

func endsWord(it token.Iterator) bool {
	switch it.Type() {
	case token.Whitespace, token.LineBreak:
		return true
	}

	return it.Is("<") || it.Is("&")
}

// element applies one tag whose text ends at next and returns the position
// to continue from.
func (c *converter) element(w *doccomment.Writer, tag doccomment.Tag, next token.Iterator, m mode) token.Iterator {
	if f, ok := inlineFormats[tag.Name]; ok {
		switch {
		case tag.SelfClosing:
		case tag.Closing:
			w.CloseInline(tag.Name)
		default:
			w.OpenInline(tag.Name, f.open, f.close)
		}

		return next
	}

	open := !tag.Closing && !tag.SelfClosing

	switch tag.Name {
	case "para":
		if m == normalMode {
			w.SplitParagraph()
		} else {
			w.LineBreak()
			w.LineBreak()
		}

	case "br":
		w.Write(ndmarkup.Break)

	case "c":
		if open {
			text, after := c.unformatted(next, tag.Name)
			w.Write(ndmarkup.Encode(text))

			return after
		}

	case "code":
		if !open {
			break
		}

		after, lines := c.codeLines(next)
		if m == normalMode {
			w.Block(ndmarkup.Pre(ndmarkup.PreOpen, lines))
		} else {
			w.Write(ndmarkup.Encode(joinCode(lines)))
		}

		return after

	case "see", "seealso", "a":
		if tag.Closing {
			break
		}

		label, after := "", next
		if open {
			label, after = c.unformatted(next, tag.Name)
		}

		if word, ok := tag.Attr("langword"); ok {
			w.Write(ndmarkup.Encode(strings.TrimSpace(word)))

			return after
		}

		if link := reference(tag, label); link != "" {
			w.Write(link)
		} else {
			w.Write(ndmarkup.Encode(label))
		}

		return after

	case "paramref", "typeparamref":
		if tag.Closing {
			break
		}

		if name, ok := tag.Attr("name"); ok {
			w.Write(ndmarkup.Encode(strings.TrimSpace(name)))
		}

		if open {
			return skipElement(next, c.end, tag.Name)
		}

	case "example":
		switch {
		case m != normalMode:
		case tag.Closing:
			w.SplitParagraph()
		case open:
			if text, ok := c.env.Heading(Name, "example", 1); ok {
				w.Block(ndmarkup.Heading(ndmarkup.Encode(text), ""))
			}
		}

	case "list":
		if !open {
			break
		}

		after, list := c.list(next)
		if m == normalMode {
			w.Block(list)
		} else {
			w.Write(list)
		}

		return after

	case "inheritdoc", "include":
		if open {
			return skipElement(next, c.end, tag.Name)
		}
	}

	return next
}

// unformatted collects the plain text content of an element named closing
// whose opening tag ends at it. Only entities, whitespace, and parameter
// references are interpreted. It returns the collapsed text and the
// position after the closing tag.
func (c *converter) unformatted(it token.Iterator, closing string) (string, token.Iterator) {
	var sb strings.Builder

	depth := 1

	for it.Before(c.end) {
		switch {
		case it.Type() == token.Whitespace || it.Type() == token.LineBreak:
			sb.WriteByte(' ')
			it.Next()

		case it.Is("<"):
			tag, next, ok := doccomment.ScanTag(it, c.end)
			if !ok {
				sb.WriteByte('<')
				it.Next()

				continue
			}

			it = next

			switch {
			case tag.Name == closing && tag.Closing:
				depth--
				if depth == 0 {
					return collapse(sb.String()), it
				}

			case tag.Name == closing && !tag.SelfClosing:
				depth++

			case tag.Name == "paramref" || tag.Name == "typeparamref":
				if name, ok := tag.Attr("name"); ok {
					sb.WriteString(name)
				}

			case tag.Name == "br":
				sb.WriteByte(' ')
			}

		case it.Is("&"):
			s, next, ok := doccomment.ScanEntity(it, c.end)
			if !ok {
				s, next = "&", it
				next.Next()
			}

			sb.WriteString(s)

			it = next

		default:
			sb.WriteString(it.String())
			it.Next()
		}
	}

	return collapse(sb.String()), it
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// codeLines collects the lines of a code element whose opening tag ends at
// it.
func (c *converter) codeLines(it token.Iterator) (token.Iterator, []ndmarkup.CodeLine) {
	start := it
	stop := c.end

	for ; it.Before(c.end); it.Next() {
		if !it.Is("<") {
			continue
		}

		tag, next, ok := doccomment.ScanTag(it, c.end)
		if ok && tag.Name == "code" && tag.Closing {
			stop = it
			it = next

			break
		}
	}

	raw := doccomment.DecodeEntities(start.TextTo(stop))

	var lines []ndmarkup.CodeLine

	for i, line := range strings.Split(raw, "\n") {
		lines = append(lines, ndmarkup.NewCodeLine(line, i == 0))
	}

	return it, lines
}

func joinCode(lines []ndmarkup.CodeLine) string {
	var parts []string

	for _, l := range ndmarkup.NormalizeCodeLines(lines) {
		if !l.IsBlank() {
			parts = append(parts, l.Text)
		}
	}

	return strings.Join(parts, " ")
}
