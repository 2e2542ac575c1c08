package doccomment

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"go.jacobcolvin.com/ndoc/token"
)

// Tag is an HTML or XML tag read from comment text.
type Tag struct {
	// Attrs holds decoded attribute values by lowercase name.
	Attrs map[string]string
	// Name is the lowercase tag name.
	Name        string
	Closing     bool
	SelfClosing bool
}

// Attr returns an attribute value.
func (t Tag) Attr(name string) (string, bool) {
	v, ok := t.Attrs[name]

	return v, ok
}

// ScanTag reads a tag at it, which must be on "<", and returns the position
// after its ">". It returns false when the text is not a well-formed tag.
func ScanTag(it, end token.Iterator) (Tag, token.Iterator, bool) {
	if !it.Is("<") {
		return Tag{}, it, false
	}

	it.Next()

	var t Tag

	if it.Before(end) && it.Is("/") {
		t.Closing = true

		it.Next()
	}

	name, it := scanName(it, end)
	if name == "" {
		return Tag{}, it, false
	}

	t.Name = strings.ToLower(name)

	for {
		it.SkipWhitespace(end, true)

		if !it.Before(end) {
			return Tag{}, it, false
		}

		switch {
		case it.Is(">"):
			it.Next()

			return t, it, true

		case it.HasPrefix("/>"):
			it.Advance(2)

			t.SelfClosing = true

			return t, it, true
		}

		var attr string

		attr, it = scanName(it, end)
		if attr == "" {
			return Tag{}, it, false
		}

		it.SkipWhitespace(end, true)

		value := ""

		if it.Before(end) && it.Is("=") {
			it.Next()
			it.SkipWhitespace(end, true)

			var ok bool

			value, it, ok = scanValue(it, end)
			if !ok {
				return Tag{}, it, false
			}
		}

		if t.Attrs == nil {
			t.Attrs = make(map[string]string)
		}

		t.Attrs[strings.ToLower(attr)] = DecodeEntities(value)
	}
}

// scanName reads a tag or attribute name: text with embedded "-", ":", or
// ".".
func scanName(it, end token.Iterator) (string, token.Iterator) {
	start := it

	if !it.Before(end) || it.Type() != token.Text {
		return "", it
	}

	for it.Before(end) {
		switch {
		case it.Type() == token.Text:
		case it.Is("-"), it.Is(":"), it.Is("."):
		default:
			return start.TextTo(it), it
		}

		it.Next()
	}

	return start.TextTo(it), it
}

func scanValue(it, end token.Iterator) (string, token.Iterator, bool) {
	if !it.Before(end) {
		return "", it, false
	}

	if it.Is(`"`) || it.Is("'") {
		quote := it.String()

		it.Next()

		start := it
		for it.Before(end) && !it.Is(quote) {
			it.Next()
		}

		if !it.Before(end) {
			return "", it, false
		}

		value := start.TextTo(it)

		it.Next()

		return value, it, true
	}

	start := it
	for it.Before(end) && !it.Is(">") && !it.HasPrefix("/>") &&
		it.Type() != token.Whitespace && it.Type() != token.LineBreak {
		it.Next()
	}

	return start.TextTo(it), it, start.Before(it)
}

var entities = map[string]string{
	"lt":     "<",
	"gt":     ">",
	"amp":    "&",
	"quot":   `"`,
	"apos":   "'",
	"nbsp":   " ",
	"copy":   "©",
	"reg":    "®",
	"trade":  "™",
	"mdash":  "—",
	"ndash":  "–",
	"hellip": "…",
	"lsquo":  "‘",
	"rsquo":  "’",
	"ldquo":  "“",
	"rdquo":  "”",
	"middot": "·",
	"times":  "×",
}

// maxEntity is the longest entity reference accepted, including "&" and
// ";".
const maxEntity = 12

// DecodeEntity decodes an entity name such as "lt", "#65", or "#x41".
func DecodeEntity(name string) (string, bool) {
	if s, ok := entities[name]; ok {
		return s, true
	}

	num, ok := strings.CutPrefix(name, "#")
	if !ok {
		return "", false
	}

	base := 10
	if hex, ok := strings.CutPrefix(strings.ToLower(num), "x"); ok {
		num, base = hex, 16
	}

	n, err := strconv.ParseUint(num, base, 32)
	if err != nil || !utf8.ValidRune(rune(n)) || n == 0 {
		return "", false
	}

	return string(rune(n)), true
}

// ScanEntity reads an entity reference at it, which must be on "&", and
// returns its decoded text and the position after ";".
func ScanEntity(it, end token.Iterator) (string, token.Iterator, bool) {
	if !it.Is("&") {
		return "", it, false
	}

	rest := it.TextTo(end)
	if len(rest) > maxEntity {
		rest = rest[:maxEntity]
	}

	semi := strings.IndexByte(rest, ';')
	if semi < 2 {
		return "", it, false
	}

	s, ok := DecodeEntity(rest[1:semi])
	if !ok {
		return "", it, false
	}

	target := it.Offset() + semi + 1

	for it.Before(end) && it.Offset() < target {
		it.Next()
	}

	return s, it, true
}

// DecodeEntities decodes every entity reference in s, leaving unknown ones
// as they are.
func DecodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var sb strings.Builder

	for {
		amp := strings.IndexByte(s, '&')
		if amp < 0 {
			sb.WriteString(s)

			return sb.String()
		}

		sb.WriteString(s[:amp])
		s = s[amp:]

		semi := strings.IndexByte(s, ';')
		if semi > 1 && semi < maxEntity {
			if decoded, ok := DecodeEntity(s[1:semi]); ok {
				sb.WriteString(decoded)
				s = s[semi+1:]

				continue
			}
		}

		sb.WriteByte('&')
		s = s[1:]
	}
}
