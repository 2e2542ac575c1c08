package ndmarkup

import (
	"strings"
)

// CodeLine is one line of a preformatted block.
type CodeLine struct {
	// Text is plain text without leading whitespace.
	Text string
	// Indent is the column of the first character, or -1 for a blank line.
	Indent int
	// IgnoreIndent excludes the line from the common indent, for text that
	// shared a line with the opening tag.
	IgnoreIndent bool
}

// NewCodeLine splits raw into indent and text. Tabs must already be
// expanded.
func NewCodeLine(raw string, ignoreIndent bool) CodeLine {
	text := strings.TrimLeft(raw, " \t")
	text = strings.TrimRight(text, " \t\r")

	if text == "" {
		return CodeLine{Indent: -1, IgnoreIndent: ignoreIndent}
	}

	return CodeLine{
		Text:         text,
		Indent:       len(raw) - len(strings.TrimLeft(raw, " \t")),
		IgnoreIndent: ignoreIndent,
	}
}

// IsBlank reports whether the line has no text.
func (l CodeLine) IsBlank() bool {
	return l.Indent < 0
}

// NormalizeCodeLines trims each line, turns whitespace-only lines into
// blank lines, drops leading and trailing blank lines, and removes the
// smallest indent among lines that count toward it.
func NormalizeCodeLines(lines []CodeLine) []CodeLine {
	out := make([]CodeLine, 0, len(lines))

	for _, l := range lines {
		if l.Indent < 0 {
			l.Indent = 0
		}

		trimmed := strings.TrimLeft(l.Text, " \t")
		l.Indent += len(l.Text) - len(trimmed)
		l.Text = strings.TrimRight(trimmed, " \t\r")

		if l.Text == "" {
			l = CodeLine{Indent: -1}
		}

		out = append(out, l)
	}

	for len(out) > 0 && out[0].IsBlank() {
		out = out[1:]
	}

	for len(out) > 0 && out[len(out)-1].IsBlank() {
		out = out[:len(out)-1]
	}

	lowest := -1

	for _, l := range out {
		if l.IsBlank() || l.IgnoreIndent {
			continue
		}

		if lowest < 0 || l.Indent < lowest {
			lowest = l.Indent
		}
	}

	if lowest <= 0 {
		return out
	}

	for i := range out {
		if out[i].IsBlank() {
			continue
		}

		out[i].Indent = max(out[i].Indent-lowest, 0)
	}

	return out
}

// Pre normalizes lines and renders them as a preformatted block. open is
// the opening tag, usually [PreOpen] or [PrototypeOpen]. It returns "" when
// no line has text.
func Pre(open string, lines []CodeLine) string {
	lines = NormalizeCodeLines(lines)
	if len(lines) == 0 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(open)

	for i, l := range lines {
		if i > 0 {
			sb.WriteString(Break)
		}

		if l.IsBlank() {
			continue
		}

		sb.WriteString(strings.Repeat(" ", l.Indent))
		sb.WriteString(Encode(l.Text))
	}

	sb.WriteString(PreClose)

	return sb.String()
}
