package token

import "strings"

// Bounds selects which tokens at the edges of a [Line] are excluded.
type Bounds uint8

const (
	// Everything includes every token, including the trailing line break.
	Everything Bounds = iota
	// ExcludeWhitespace drops whitespace and line breaks from both edges.
	ExcludeWhitespace
	// CommentContent also drops comment symbols and decoration from both
	// edges, leaving only the content a parser should see.
	CommentContent
)

// Line is a line of a [Buffer]. Lines include their trailing line break.
type Line struct {
	buf *Buffer
	n   int
}

// Valid reports whether the line exists.
func (l Line) Valid() bool {
	return l.buf != nil && l.n >= 0 && l.n < l.buf.LineCount()
}

// Index returns the zero-based line index.
func (l Line) Index() int {
	return l.n
}

// Start returns the first token of the line. The line one past the last
// returns the end of the buffer.
func (l Line) Start() Iterator {
	return Iterator{buf: l.buf, i: l.buf.lines[l.n]}
}

// Next moves to the following line.
func (l *Line) Next() {
	l.n++
}

// Prev moves to the preceding line.
func (l *Line) Prev() {
	l.n--
}

// Bounds returns the first token and the token one past the last for the
// given mode. An empty range is returned as start == end.
func (l Line) Bounds(mode Bounds) (Iterator, Iterator) {
	start := Iterator{buf: l.buf, i: l.buf.lines[l.n]}
	end := Iterator{buf: l.buf, i: l.buf.lines[l.n+1]}

	if mode == Everything {
		return start, end
	}

	excluded := func(it Iterator) bool {
		switch it.Type() {
		case Whitespace, LineBreak:
			return true
		}

		if mode == CommentContent {
			ct := it.CommentType()

			return ct == CommentSymbol || ct == Decoration
		}

		return false
	}

	for start.Before(end) && excluded(start) {
		start.Next()
	}

	for end.i > start.i {
		prev := end
		prev.Prev()

		if !excluded(prev) {
			break
		}

		end = prev
	}

	return start, end
}

// IsEmpty reports whether the line has no tokens under the given mode.
func (l Line) IsEmpty(mode Bounds) bool {
	start, end := l.Bounds(mode)

	return !start.Before(end)
}

// String returns the text of the line under the given mode.
func (l Line) String(mode Bounds) string {
	start, end := l.Bounds(mode)

	return start.TextTo(end)
}

// Tokens calls fn for each token of the line under the given mode, stopping
// early if fn returns false.
func (l Line) Tokens(mode Bounds, fn func(Iterator) bool) {
	start, end := l.Bounds(mode)
	for it := start; it.Before(end); it.Next() {
		if !fn(it) {
			return
		}
	}
}

// ContentString returns the line with every comment symbol and decoration
// token replaced by spaces of the same width, and trailing whitespace and the
// line break removed. Columns of the remaining content are preserved.
func (l Line) ContentString() string {
	var sb strings.Builder

	l.Tokens(Everything, func(it Iterator) bool {
		switch {
		case it.Type() == LineBreak:
		case it.CommentType() == CommentSymbol, it.CommentType() == Decoration:
			sb.WriteString(strings.Repeat(" ", len(it.String())))
		default:
			sb.WriteString(it.String())
		}

		return true
	})

	return strings.TrimRight(sb.String(), " \t")
}
