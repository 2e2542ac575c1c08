// Package comment classifies raw source comments into documentation comment
// spans.
//
// [Parse] tokenizes the text of one comment (a block comment or a run of line
// comments), marks its comment markers as [token.CommentSymbol], and
// classifies it by [Dialect] and [Kind]. The resulting [Span] is the input to
// the decoration pre-pass in package linefinder and to the dialect parsers in
// package doccomment.
package comment

import (
	"errors"
	"fmt"
	"strings"

	"go.jacobcolvin.com/ndoc/token"
)

// ErrNotComment indicates text that does not start with a comment marker.
var ErrNotComment = errors.New("not a comment")

// Dialect is the comment-tagging convention a span is a candidate for.
type Dialect uint8

const (
	// Plain comments carry no dialect markers.
	Plain Dialect = iota
	// Javadoc comments open with "/**".
	Javadoc
	// XML comments are "///" line comments.
	XML
)

// String returns the lowercase dialect name.
func (d Dialect) String() string {
	switch d {
	case Javadoc:
		return "javadoc"
	case XML:
		return "xml"
	}

	return "plain"
}

// Kind distinguishes block comments from runs of line comments.
type Kind uint8

const (
	// Block comments are delimited by "/*" and "*/".
	Block Kind = iota
	// Line comments start every line with a marker such as "//".
	Line
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	if k == Line {
		return "line"
	}

	return "block"
}

// Span is a documentation comment: a half-open range of lines over a token
// buffer plus the classification assigned by [Parse].
//
// Spans are immutable. The only mutation applied to the underlying buffer
// after classification is decoration marking.
type Span struct {
	buf       *token.Buffer
	start     int
	end       int
	firstLine int
	dialect   Dialect
	kind      Kind
}

// NewSpan returns a span over lines [start, end) of buf. firstLine is the
// one-based source line of line zero of the buffer.
func NewSpan(buf *token.Buffer, start, end, firstLine int, dialect Dialect, kind Kind) Span {
	if start < 0 || end > buf.LineCount() || start > end {
		panic(fmt.Sprintf("comment: span [%d, %d) out of range for %d lines", start, end, buf.LineCount()))
	}

	return Span{
		buf:       buf,
		start:     start,
		end:       end,
		firstLine: firstLine,
		dialect:   dialect,
		kind:      kind,
	}
}

// Buffer returns the tokenized comment text.
func (s Span) Buffer() *token.Buffer {
	return s.buf
}

// Start returns the first line of the span.
func (s Span) Start() token.Line {
	return s.buf.Line(s.start)
}

// End returns the line one past the last line of the span.
func (s Span) End() token.Line {
	return s.buf.Line(s.end)
}

// Lines calls fn for every line of the span, stopping if fn returns false.
func (s Span) Lines(fn func(token.Line) bool) {
	for l := s.Start(); l.Index() < s.end; l.Next() {
		if !fn(l) {
			return
		}
	}
}

// LineNumber returns the one-based source line of the first line.
func (s Span) LineNumber() int {
	return s.firstLine + s.start
}

// Dialect returns the upstream dialect classification.
func (s Span) Dialect() Dialect {
	return s.dialect
}

// Kind returns whether the span is a block or line comment.
func (s Span) Kind() Kind {
	return s.kind
}

// Content returns the text parsers read: every line of the span with comment
// symbols and decoration blanked out so columns are preserved, trailing
// whitespace removed, and tabs expanded to tabWidth columns. Lines are joined
// with "\n".
func (s Span) Content(tabWidth int) string {
	var lines []string

	s.Lines(func(l token.Line) bool {
		lines = append(lines, ExpandTabs(l.ContentString(), tabWidth))

		return true
	})

	return strings.Join(lines, "\n")
}

// ExpandTabs replaces tabs with spaces up to the next multiple of width.
func ExpandTabs(s string, width int) string {
	if width <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var sb strings.Builder

	col := 0

	for _, r := range s {
		if r == '\t' {
			n := width - col%width
			sb.WriteString(strings.Repeat(" ", n))

			col += n

			continue
		}

		sb.WriteRune(r)

		col++
	}

	return sb.String()
}
