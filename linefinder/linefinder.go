package linefinder

import (
	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/token"
)

// maxVerticalRun is the longest symbol run accepted as a vertical line.
const maxVerticalRun = 3

// minHorizontalRun is the shortest symbol run that forms a horizontal line on
// its own.
const minHorizontalRun = 4

// run is a sequence of count identical symbol characters.
type run struct {
	char  byte
	count int
}

func (r run) none() bool {
	return r.count == 0
}

type lineKind uint8

const (
	blankLine lineKind = iota
	horizontalLine
	verticalLine
	aloneLine
)

type sideState uint8

const (
	sideUnset sideState = iota
	sideActive
	sideDead
)

// side tracks the agreed vertical line on one edge of a text box.
type side struct {
	run   run
	state sideState
}

// observe folds one line's edge run into the side.
func (s *side) observe(r run) {
	switch s.state {
	case sideUnset:
		if r.none() {
			s.state = sideDead
		} else {
			s.state = sideActive
			s.run = r
		}

	case sideActive:
		if r != s.run {
			s.state = sideDead
			s.run = run{}
		}

	case sideDead:
	}
}

func (s side) matches(r run) bool {
	return s.state == sideActive && s.run == r
}

// classified is the outcome of the classification pass for one line.
type classified struct {
	line       token.Line
	alone      run
	kind       lineKind
	leftMarker bool
	// onLeft records which side an alone line resolved to.
	onLeft bool
	// resolved is false for alone lines that matched no side.
	resolved    bool
	rightMarker bool
}

// textBox is a successful classification, ready to be marked.
type textBox struct {
	lines []classified
	left  side
	right side
}

// MarkTextBoxes detects a text box in a comment and marks its horizontal and
// vertical lines as decoration. It reports whether detection succeeded, which
// requires at least one horizontal line or one vertical side. On failure the
// span is not modified.
func MarkTextBoxes(span comment.Span) bool {
	box, ok := classifyTextBox(span)
	if !ok {
		return false
	}

	box.mark()

	return true
}

func classifyTextBox(span comment.Span) (*textBox, bool) {
	box := &textBox{}

	var lines []token.Line

	span.Lines(func(l token.Line) bool {
		lines = append(lines, l)

		return true
	})

	// Skip leading blank lines.
	first := 0
	for first < len(lines) && lines[first].IsEmpty(token.CommentContent) {
		first++
	}

	// Only the "/*" and "*/" of a block comment hide the edge they sit on.
	// Line comment markers come before the edge.
	block := span.Kind() == comment.Block

	var established, horizontal bool

	for i := first; i < len(lines); i++ {
		c := classifyLine(lines[i], block)

		switch c.kind {
		case horizontalLine:
			horizontal = true

		case blankLine:
			if box.left.state == sideActive || box.right.state == sideActive {
				if !onlyBlankAfter(lines[i+1:]) {
					return nil, false
				}
			}

		case aloneLine:
			box.resolveAlone(&c)

		case verticalLine:
			left, right := edgeRuns(lines[i])
			if !c.leftMarker {
				box.left.observe(left)
			}

			if !c.rightMarker {
				box.right.observe(right)
			}

			if box.left.state == sideActive || box.right.state == sideActive {
				established = true
			}

			if established && box.left.state == sideDead && box.right.state == sideDead {
				return nil, false
			}
		}

		box.lines = append(box.lines, c)
	}

	if !horizontal && !established {
		return nil, false
	}

	// Alone lines seen before the sides were established.
	for i := range box.lines {
		c := &box.lines[i]
		if c.kind != aloneLine || c.resolved {
			continue
		}

		box.resolveAlone(c)

		if !c.resolved && established {
			return nil, false
		}
	}

	return box, true
}

func (b *textBox) resolveAlone(c *classified) {
	switch {
	case b.left.matches(c.alone):
		c.onLeft = true
		c.resolved = true
	case b.right.matches(c.alone):
		c.resolved = true
	}
}

func onlyBlankAfter(lines []token.Line) bool {
	for _, l := range lines {
		if !l.IsEmpty(token.CommentContent) {
			return false
		}
	}

	return true
}

// trimmed returns the line bounds with comment markers and whitespace
// removed from both edges, plus whether a marker was found on each side and
// whether it directly touches the remaining content.
func trimmed(l token.Line) (start, end token.Iterator, leftMarker, leftTouch, rightMarker, rightTouch bool) {
	start, end = l.Bounds(token.ExcludeWhitespace)

	for start.Before(end) && start.CommentType() == token.CommentSymbol {
		start.Next()

		leftMarker = true
	}

	leftTouch = leftMarker && start.Before(end) && start.Type() != token.Whitespace

	for start.Before(end) {
		prev := end
		prev.Prev()

		if prev.CommentType() != token.CommentSymbol {
			break
		}

		end = prev
		rightMarker = true
	}

	if rightMarker && start.Before(end) {
		prev := end
		prev.Prev()
		rightTouch = prev.Type() != token.Whitespace
	}

	for start.Before(end) && start.Type() == token.Whitespace {
		start.Next()
	}

	for start.Before(end) {
		prev := end
		prev.Prev()

		if prev.Type() != token.Whitespace {
			break
		}

		end = prev
	}

	return start, end, leftMarker, leftTouch, rightMarker, rightTouch
}

func classifyLine(l token.Line, block bool) classified {
	start, end, leftMarker, leftTouch, rightMarker, rightTouch := trimmed(l)

	c := classified{
		line:        l,
		leftMarker:  block && leftMarker,
		rightMarker: block && rightMarker,
	}

	if !start.Before(end) {
		c.kind = blankLine

		return c
	}

	var counts [3]int

	pos := start
	for k := 0; k < 3 && pos.Before(end) && pos.Type() == token.Symbol; k++ {
		ch := pos.Char()
		for pos.Before(end) && pos.Type() == token.Symbol && pos.Char() == ch {
			counts[k]++

			pos.Next()
		}
	}

	if !pos.Before(end) && isHorizontal(counts[0], counts[1], counts[2], leftTouch, rightTouch) {
		c.kind = horizontalLine

		return c
	}

	left, _ := edgeRuns(l)
	if left.count > 0 && left.count == lineLength(start, end) {
		c.kind = aloneLine
		c.alone = left

		return c
	}

	c.kind = verticalLine

	return c
}

func isHorizontal(a, b, c int, leftTouch, rightTouch bool) bool {
	switch {
	case leftTouch && rightTouch && a >= minHorizontalRun && b == 0:
		return true
	case leftTouch && a >= minHorizontalRun && (b == 0 || (b <= maxVerticalRun && c == 0)):
		return true
	case rightTouch &&
		((a >= 1 && a <= maxVerticalRun && b >= minHorizontalRun && c == 0) ||
			(a >= minHorizontalRun && b == 0)):
		return true
	case (a >= minHorizontalRun && b == 0) ||
		(a >= 1 && a <= maxVerticalRun && b >= minHorizontalRun && c <= maxVerticalRun):
		return true
	}

	return false
}

func lineLength(start, end token.Iterator) int {
	return end.Index() - start.Index()
}

// edgeRuns returns the vertical-line candidates at each edge of a line. A
// candidate is at most three identical symbols separated from the rest of
// the line by whitespace. A line holding a single short run reports it as
// the left run.
func edgeRuns(l token.Line) (run, run) {
	start, end, _, _, _, _ := trimmed(l)

	var left, right run

	pos := start
	if pos.Before(end) && pos.Type() == token.Symbol {
		ch := pos.Char()

		n := 0
		for pos.Before(end) && pos.Type() == token.Symbol && pos.Char() == ch {
			n++

			pos.Next()
		}

		if n <= maxVerticalRun && (!pos.Before(end) || pos.Type() == token.Whitespace) {
			left = run{char: ch, count: n}
		}

		if !pos.Before(end) {
			return left, run{}
		}
	}

	pos = end
	pos.Prev()

	if pos.Index() >= start.Index() && pos.Type() == token.Symbol {
		ch := pos.Char()

		n := 0
		for pos.Index() >= start.Index() && pos.Type() == token.Symbol && pos.Char() == ch {
			n++

			pos.Prev()
		}

		if n <= maxVerticalRun && (pos.Index() < start.Index() || pos.Type() == token.Whitespace) {
			right = run{char: ch, count: n}
		}
	}

	return left, right
}

// mark applies a successful classification.
func (b *textBox) mark() {
	for _, c := range b.lines {
		start, end, _, _, _, _ := trimmed(c.line)

		switch c.kind {
		case horizontalLine:
			for it := start; it.Before(end); it.Next() {
				if it.Type() != token.Whitespace {
					it.SetCommentType(token.Decoration)
				}
			}

		case aloneLine:
			if c.resolved {
				markLeft(start, end, c.alone)
			}

		case verticalLine:
			if b.left.state == sideActive && !c.leftMarker {
				markLeft(start, end, b.left.run)
			}

			if b.right.state == sideActive && !c.rightMarker {
				markRight(start, end, b.right.run)
			}

		case blankLine:
		}
	}
}

// markLeft marks up to r.count tokens matching r.char at the start of
// [start, end).
func markLeft(start, end token.Iterator, r run) {
	it := start
	for range r.count {
		if !it.Before(end) || it.Type() != token.Symbol || it.Char() != r.char {
			return
		}

		it.SetCommentType(token.Decoration)
		it.Next()
	}
}

// markRight marks up to r.count tokens matching r.char at the end of
// [start, end).
func markRight(start, end token.Iterator, r run) {
	it := end
	for range r.count {
		it.Prev()

		if it.Index() < start.Index() || it.Type() != token.Symbol || it.Char() != r.char ||
			it.CommentType() == token.Decoration {
			return
		}

		it.SetCommentType(token.Decoration)
	}
}
