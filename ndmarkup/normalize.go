package ndmarkup

import (
	"strings"
)

// closers may follow sentence-ending punctuation without ending the
// sentence early.
var closers = []string{"&quot;", ")", "'", "’", "”", BoldClose, ItalicClose, UnderlineClose}

// Normalize turns raw generated markup into minimal markup.
//
// Outside preformatted blocks, tabs become spaces and every whitespace run
// holding a [BreakPlaceholder] becomes one space, or two after the end of a
// sentence. Spaces next to block tags and breaks are trimmed, repeated
// breaks collapse, breaks at block boundaries and empty paragraphs are
// removed, and the result is trimmed. Preformatted blocks are kept as they
// are.
//
// It returns false when nothing remains.
func Normalize(markup string) (string, bool) {
	pieces := Split(markup)

	var (
		out  []Piece
		tail strings.Builder
	)

	for _, p := range pieces {
		switch {
		case p.Kind == TextPiece:
			p.Text = collapseBreaks(tail.String(), strings.ReplaceAll(p.Text, "\t", " "))
			tail.WriteString(p.Text)

		case p.Kind == TagPiece && p.Closing && isInlineFormat(p.Name):
			tail.WriteString(p.Text)

		default:
			tail.Reset()
		}

		out = append(out, p)
	}

	for changed := true; changed; {
		out, changed = cleanup(out)
	}

	result := strings.TrimSpace(Join(out))

	if debugChecks {
		if err := Validate(result); err != nil {
			panic(err)
		}
	}

	if result == "" {
		return "", false
	}

	return result, true
}

func isInlineFormat(name string) bool {
	return name == "b" || name == "i" || name == "u"
}

// collapseBreaks replaces whitespace runs holding a line break. before is
// the visible text since the last opening or block tag, used to look back
// across inline closing tags.
func collapseBreaks(before, text string) string {
	if !strings.Contains(text, BreakPlaceholder) {
		return text
	}

	var sb strings.Builder

	i := 0
	for i < len(text) {
		c := text[i]
		if c != ' ' && c != '\n' && c != '\r' {
			sb.WriteByte(c)
			i++

			continue
		}

		j := i
		for j < len(text) && (text[j] == ' ' || text[j] == '\n' || text[j] == '\r') {
			j++
		}

		run := text[i:j]
		if !strings.ContainsAny(run, "\n\r") {
			sb.WriteString(run)
		} else if endsSentence(before + sb.String()) {
			sb.WriteString("  ")
		} else {
			sb.WriteByte(' ')
		}

		i = j
	}

	return sb.String()
}

// endsSentence reports whether s ends with sentence-ending punctuation,
// ignoring trailing closing quotes, parentheses and inline closing tags.
func endsSentence(s string) bool {
	for {
		trimmed := s
		for _, c := range closers {
			trimmed = strings.TrimSuffix(trimmed, c)
		}

		if trimmed == s {
			break
		}

		s = trimmed
	}

	if s == "" {
		return false
	}

	last := s[len(s)-1]

	return last == '.' || last == '?' || last == '!'
}

func isBoundary(pieces []Piece, i int) bool {
	if i < 0 || i >= len(pieces) {
		return true
	}

	return pieces[i].IsBlock() || pieces[i].IsBreak()
}

func isBlockBoundary(pieces []Piece, i int) bool {
	if i < 0 || i >= len(pieces) {
		return true
	}

	return pieces[i].IsBlock()
}

// cleanup applies one round of local rewrites and reports whether anything
// changed.
func cleanup(pieces []Piece) ([]Piece, bool) {
	changed := false

	for i := 0; i < len(pieces); i++ {
		p := pieces[i]

		switch {
		case p.Kind == TextPiece:
			text := p.Text
			if isBoundary(pieces, i-1) {
				text = strings.TrimLeft(text, " ")
			}

			if isBoundary(pieces, i+1) {
				text = strings.TrimRight(text, " ")
			}

			if text != p.Text {
				changed = true
				pieces[i].Text = text
			}

			if text == "" {
				pieces = append(pieces[:i], pieces[i+1:]...)
				i--
			}

		case p.IsBreak():
			if i+1 < len(pieces) && pieces[i+1].IsBreak() ||
				isBlockBoundary(pieces, i-1) || isBlockBoundary(pieces, i+1) {
				pieces = append(pieces[:i], pieces[i+1:]...)
				i--
				changed = true
			}

		case p.Kind == TagPiece && p.Name == "p" && !p.Closing:
			if i+1 < len(pieces) && pieces[i+1].Kind == TagPiece &&
				pieces[i+1].Name == "p" && pieces[i+1].Closing {
				pieces = append(pieces[:i], pieces[i+2:]...)
				i--
				changed = true
			}
		}
	}

	return pieces, changed
}
