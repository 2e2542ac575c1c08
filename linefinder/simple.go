package linefinder

import (
	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/token"
)

// MarkSimpleLeftLines detects a vertical line on the left of every line of a
// line comment after the first, and marks it as decoration. Every such line
// must either be blank or start with the same run of at most three identical
// symbols followed by whitespace or the end of the line. It reports whether
// detection succeeded. On failure the span is not modified.
func MarkSimpleLeftLines(span comment.Span) bool {
	lines, r, ok := classifySimpleLeftLines(span)
	if !ok {
		return false
	}

	for _, l := range lines {
		start, end := leftLineStart(l)
		markLeft(start, end, r)
	}

	return true
}

func classifySimpleLeftLines(span comment.Span) ([]token.Line, run, bool) {
	var (
		lines []token.Line
		want  run
		ok    = true
		first = true
	)

	span.Lines(func(l token.Line) bool {
		if first {
			first = false

			return true
		}

		start, end := leftLineStart(l)
		if !start.Before(end) {
			return true
		}

		r := leadingRun(start, end)
		if r.none() {
			ok = false

			return false
		}

		if want.none() {
			want = r
		} else if r != want {
			ok = false

			return false
		}

		lines = append(lines, l)

		return true
	})

	if !ok || want.none() {
		return nil, run{}, false
	}

	return lines, want, true
}

// leftLineStart returns the bounds of a line after its comment markers and
// leading whitespace.
func leftLineStart(l token.Line) (token.Iterator, token.Iterator) {
	start, end := l.Bounds(token.ExcludeWhitespace)

	for start.Before(end) && start.CommentType() == token.CommentSymbol {
		start.Next()
	}

	start.SkipWhitespace(end, false)

	return start, end
}

// leadingRun returns the run of identical symbols at start if it is short
// enough to be a vertical line and is followed by whitespace or the end.
func leadingRun(start, end token.Iterator) run {
	if start.Type() != token.Symbol {
		return run{}
	}

	ch := start.Char()

	n := 0

	it := start
	for it.Before(end) && it.Type() == token.Symbol && it.Char() == ch {
		n++

		it.Next()
	}

	if n > maxVerticalRun || (it.Before(end) && it.Type() != token.Whitespace) {
		return run{}
	}

	return run{char: ch, count: n}
}
