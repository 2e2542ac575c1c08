package comment

import (
	"strings"

	"go.jacobcolvin.com/ndoc/token"
)

// Parse tokenizes the text of one comment, marks its comment markers, and
// returns a span covering every line. firstLine is the one-based source line
// of the first line of text.
//
// Recognized forms:
//
//	/** ... */   block, Javadoc
//	/* ... */    block, Plain
//	/// ...      line, XML (every line must start with "///")
//	// ...       line, Plain
//	# ...        line, Plain
//
// Text that does not start with a marker returns [ErrNotComment].
func Parse(text string, firstLine int) (Span, error) {
	buf := token.New(text)

	start := firstContentToken(buf)
	switch {
	case start.HasPrefix("/*"):
		return parseBlock(buf, start, firstLine), nil
	case start.HasPrefix("//"):
		return parseLines(buf, firstLine, lineMarker(buf)), nil
	case start.Is("#"):
		return parseLines(buf, firstLine, "#"), nil
	}

	return Span{}, ErrNotComment
}

func firstContentToken(buf *token.Buffer) token.Iterator {
	it := buf.First()
	it.SkipWhitespace(buf.End(), true)

	return it
}

func parseBlock(buf *token.Buffer, start token.Iterator, firstLine int) Span {
	dialect := Plain

	opening := 2
	if start.HasPrefix("/**") && !start.HasPrefix("/**/") {
		next := start
		next.Advance(3)

		// "/***" opens a box, not a Javadoc comment.
		if !next.Is("*") {
			dialect = Javadoc
			opening = 3
		}
	}

	it := start
	for range opening {
		it.SetCommentType(token.CommentSymbol)
		it.Next()
	}

	// Find the closing "*/" from the end, ignoring trailing whitespace.
	end := buf.End()
	end.Prev()

	for end.Valid() && (end.Type() == token.Whitespace || end.Type() == token.LineBreak) {
		end.Prev()
	}

	if end.Is("/") && end.Index() >= it.Index()+1 {
		star := end
		star.Prev()

		if star.Is("*") && star.CommentType() == token.Content {
			star.SetCommentType(token.CommentSymbol)
			end.SetCommentType(token.CommentSymbol)
		}
	}

	return NewSpan(buf, 0, buf.LineCount(), firstLine, dialect, Block)
}

// lineMarker picks "///" when every non-blank line starts with exactly three
// slashes, and "//" otherwise.
func lineMarker(buf *token.Buffer) string {
	xml := true

	for l := buf.FirstLine(); l.Valid(); l.Next() {
		text := strings.TrimLeft(l.String(token.Everything), " \t")
		if strings.TrimSpace(text) == "" {
			continue
		}

		if !strings.HasPrefix(text, "///") || strings.HasPrefix(text, "////") {
			xml = false

			break
		}
	}

	if xml {
		return "///"
	}

	return "//"
}

func parseLines(buf *token.Buffer, firstLine int, marker string) Span {
	for l := buf.FirstLine(); l.Valid(); l.Next() {
		it, _ := l.Bounds(token.ExcludeWhitespace)
		if !it.HasPrefix(marker) {
			continue
		}

		for range len(marker) {
			it.SetCommentType(token.CommentSymbol)
			it.Next()
		}
	}

	dialect := Plain
	if marker == "///" {
		dialect = XML
	}

	return NewSpan(buf, 0, buf.LineCount(), firstLine, dialect, Line)
}
