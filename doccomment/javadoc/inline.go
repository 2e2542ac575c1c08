package javadoc

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
	// listItemMode produces inline markup only and stops at the boundary of
	// a list item.
	listItemMode
	// memberMode produces inline markup only and runs to the end. Nested
	// lists are flattened into the text.
	memberMode
)

// inlineFormats maps HTML tags to canonical inline frames.
var inlineFormats = map[string]struct{ frame, open, close string }{
	"b":      {"b", ndmarkup.BoldOpen, ndmarkup.BoldClose},
	"strong": {"b", ndmarkup.BoldOpen, ndmarkup.BoldClose},
	"i":      {"i", ndmarkup.ItalicOpen, ndmarkup.ItalicClose},
	"em":     {"i", ndmarkup.ItalicOpen, ndmarkup.ItalicClose},
	"u":      {"u", ndmarkup.UnderlineOpen, ndmarkup.UnderlineClose},
}

var headings = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

// converter turns Javadoc text into markup. Conversions run over
// [position, end) and share one tag stack.
type converter struct {
	env   doccomment.Env
	end   token.Iterator
	stack ndmarkup.TagStack
}

// convert converts text from it until c.end, or in list item mode until a
// list item boundary. It returns where it stopped and the markup.
func (c *converter) convert(it token.Iterator, m mode) (token.Iterator, string) {
	w := doccomment.NewWriter(&c.stack, m == normalMode)

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

			if m == listItemMode && isItemBoundary(tag) {
				return it, w.Finish()
			}

			var stop bool

			it, stop = c.html(w, tag, it, next, m)
			if stop {
				return it, w.Finish()
			}

		case it.Is("&"):
			s, next, ok := doccomment.ScanEntity(it, c.end)
			if !ok {
				s, next = "&", it
				next.Next()
			}

			w.Write(ndmarkup.Encode(s))

			it = next

		case it.HasPrefix("{@"):
			it = c.inlineTag(w, it)

		default:
			w.Write(ndmarkup.Encode(it.String()))
			it.Next()
		}
	}

	return it, w.Finish()
}

func isItemBoundary(tag doccomment.Tag) bool {
	switch tag.Name {
	case "li":
		return true
	case "ul", "ol":
		return tag.Closing
	}

	return false
}

// html applies one HTML tag at "at", whose text ends at next. It returns
// the position to continue from and whether the current conversion must
// stop there.
func (c *converter) html(w *doccomment.Writer, tag doccomment.Tag, at, next token.Iterator, m mode) (token.Iterator, bool) {
	if f, ok := inlineFormats[tag.Name]; ok {
		switch {
		case tag.SelfClosing:
		case tag.Closing:
			if w.CloseInline(f.frame) {
				return at, true
			}

		default:
			w.OpenInline(f.frame, f.open, f.close)
		}

		return next, false
	}

	switch {
	case tag.Name == "p":
		if m == normalMode {
			w.SplitParagraph()
		} else {
			w.LineBreak()
			w.LineBreak()
		}

	case tag.Name == "br":
		w.Write(ndmarkup.Break)

	case tag.Name == "a" && !tag.Closing:
		href, ok := tag.Attr("href")
		if !ok {
			break
		}

		label, after := c.plainText(next, "a")
		w.Write(hrefLink(href, label))

		return after, false

	case m == memberMode && (tag.Name == "li" || tag.Name == "ul" || tag.Name == "ol"):
		w.Space()

	case m != normalMode || tag.Closing:

	case tag.Name == "pre":
		after, lines := c.preLines(next)
		w.Block(ndmarkup.Pre(ndmarkup.PreOpen, lines))

		return after, false

	case tag.Name == "ul" || tag.Name == "ol":
		after, list := c.list(next)
		w.Block(list)

		return after, false

	case headings[tag.Name]:
		text, after := c.plainText(next, tag.Name)
		if text != "" {
			w.Block(ndmarkup.Heading(ndmarkup.Encode(text), ""))
		}

		return after, false
	}

	return next, false
}

// hrefLink renders an anchor. Targets that cannot be followed leave only
// the label.
func hrefLink(href, label string) string {
	href = strings.TrimSpace(href)

	lower := strings.ToLower(href)

	switch {
	case href == "", strings.HasPrefix(href, "#"), strings.HasPrefix(href, "{@docRoot}"),
		strings.HasPrefix(lower, "javascript:"):
		return ndmarkup.Encode(label)

	case strings.HasPrefix(lower, "mailto:"):
		return ndmarkup.Link(ndmarkup.LinkEmail, href[len("mailto:"):], label)
	}

	return ndmarkup.Link(ndmarkup.LinkURL, href, label)
}

// list converts the items of a list whose opening tag ends at it.
func (c *converter) list(it token.Iterator) (token.Iterator, string) {
	var items []string

	for it.Before(c.end) {
		it.SkipWhitespace(c.end, true)

		if !it.Before(c.end) {
			break
		}

		if tag, next, ok := doccomment.ScanTag(it, c.end); ok {
			switch {
			case tag.Name == "li" && !tag.Closing:
				var item string

				it, item = c.convert(next, listItemMode)
				items = append(items, item)

				continue

			case tag.Name == "li":
				it = next

				continue

			case (tag.Name == "ul" || tag.Name == "ol") && tag.Closing:
				return next, renderList(items)
			}
		}

		// Text outside any item becomes an item of its own.
		before := it

		var item string

		it, item = c.convert(it, listItemMode)
		items = append(items, item)

		if !before.Before(it) {
			it.Next()
		}
	}

	return it, renderList(items)
}

func renderList(items []string) string {
	var sb strings.Builder

	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}

		sb.WriteString(ndmarkup.ItemOpen)
		sb.WriteString(item)
		sb.WriteString(ndmarkup.ItemClose)
	}

	if sb.Len() == 0 {
		return ""
	}

	return ndmarkup.BulletListOpen + sb.String() + ndmarkup.BulletListClose
}

// preLines collects a preformatted block whose opening tag ends at it.
func (c *converter) preLines(it token.Iterator) (token.Iterator, []ndmarkup.CodeLine) {
	start := it
	stop := c.end

	for ; it.Before(c.end); it.Next() {
		if !it.Is("<") {
			continue
		}

		tag, next, ok := doccomment.ScanTag(it, c.end)
		if ok && tag.Name == "pre" && tag.Closing {
			stop = it
			it = next

			break
		}
	}

	raw := start.TextTo(stop)

	// <pre>{@code ...}</pre> is the usual way to avoid escaping.
	if trimmed := strings.TrimSpace(raw); strings.HasPrefix(trimmed, "{@code") && strings.HasSuffix(trimmed, "}") {
		open := strings.Index(raw, "{@code")
		closing := strings.LastIndex(raw, "}")
		raw = raw[:open] + raw[open+len("{@code"):closing]
	}

	raw = doccomment.DecodeEntities(raw)

	var lines []ndmarkup.CodeLine

	for i, line := range strings.Split(raw, "\n") {
		lines = append(lines, ndmarkup.NewCodeLine(line, i == 0))
	}

	return it, lines
}

// plainText collects the text from it up to the closing tag named
// closing, or up to c.end when closing is empty. Tags are dropped,
// entities decoded, and whitespace collapsed. It returns the text and the
// position after the closing tag.
func (c *converter) plainText(it token.Iterator, closing string) (string, token.Iterator) {
	var sb strings.Builder

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

			if closing != "" && tag.Closing && tag.Name == closing {
				return collapse(sb.String()), it
			}

		case it.Is("&"):
			s, next, ok := doccomment.ScanEntity(it, c.end)
			if !ok {
				s, next = "&", it
				next.Next()
			}

			sb.WriteString(s)

			it = next

		case it.HasPrefix("{@"):
			closeIt, ok := matchBrace(it, c.end)
			if !ok {
				sb.WriteByte('{')
				it.Next()

				continue
			}

			name := it
			name.Advance(2)

			body := name
			body.Next()
			body.SkipWhitespace(closeIt, true)

			switch name.String() {
			case "code", "literal":
				sb.WriteString(body.TextTo(closeIt))
			case "link", "linkplain", "linkPlain":
				symbol, rest := extractSymbol(body, closeIt)
				if label := strings.TrimSpace(rest.TextTo(closeIt)); label != "" {
					sb.WriteString(label)
				} else {
					sb.WriteString(symbol)
				}
			}

			it = closeIt
			it.Next()

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

// inlineTag converts a "{@name ...}" tag at it and returns the position
// after its closing brace.
func (c *converter) inlineTag(w *doccomment.Writer, it token.Iterator) token.Iterator {
	closeIt, ok := matchBrace(it, c.end)

	name := it
	name.Advance(2)

	if !ok || name.Type() != token.Text {
		w.Write("{")
		it.Next()

		return it
	}

	body := name
	body.Next()
	body.SkipWhitespace(closeIt, true)

	switch name.String() {
	case "code", "literal":
		w.Write(ndmarkup.Encode(body.TextTo(closeIt)))

	case "link", "linkplain", "linkPlain":
		symbol, rest := extractSymbol(body, closeIt)
		label := collapse(rest.TextTo(closeIt))

		if symbol == "" {
			w.Write(ndmarkup.Encode(label))

			break
		}

		w.Write(ndmarkup.Link(ndmarkup.LinkSymbol, symbol, label))

	case "value":
		symbol, _ := extractSymbol(body, closeIt)
		if symbol == "" {
			w.Write(ndmarkup.Encode(c.env.Phrase("value.self")))

			break
		}

		const slot = "\x00"

		phrase := ndmarkup.Encode(c.env.Phrase("value", slot))
		link := ndmarkup.Link(ndmarkup.LinkSymbol, symbol, "")
		w.Write(strings.Replace(phrase, slot, link, 1))
	}

	it = closeIt
	it.Next()

	return it
}
