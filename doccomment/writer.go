package doccomment

import (
	"strings"

	"go.jacobcolvin.com/ndoc/ndmarkup"
)

// paragraphFrame is the tag stack identifier of the current paragraph.
const paragraphFrame = "p"

// Writer accumulates the markup of one conversion pass over comment text.
//
// It defers line breaks and spaces until more content arrives, so nothing
// trails the last word. In paragraph mode, content opens a paragraph frame
// on demand and a blank line closes it. Frames are tracked on a
// [ndmarkup.TagStack] shared with enclosing passes; the writer only closes
// frames above the stack height it started at.
type Writer struct {
	stack      *ndmarkup.TagStack
	out        strings.Builder
	floor      int
	breaks     int
	space      bool
	paragraphs bool
}

// NewWriter returns a writer over stack. paragraphs selects whether inline
// content is wrapped in paragraphs.
func NewWriter(stack *ndmarkup.TagStack, paragraphs bool) *Writer {
	return &Writer{
		stack:      stack,
		floor:      stack.Len(),
		paragraphs: paragraphs,
	}
}

// LineBreak records a source line break.
func (w *Writer) LineBreak() {
	w.breaks++
}

// Space records whitespace.
func (w *Writer) Space() {
	w.space = true
}

// Write writes inline markup, flushing pending whitespace first.
func (w *Writer) Write(markup string) {
	if markup == "" {
		return
	}

	w.flush()
	w.ensureParagraph()
	w.out.WriteString(markup)
}

// OpenInline writes open and pushes a frame closed by closing.
func (w *Writer) OpenInline(tag, open, closing string) {
	w.flush()
	w.ensureParagraph()
	w.out.WriteString(open)
	w.stack.Open(tag, closing)
}

// CloseInline closes the innermost frame with the given tag. A tag that is
// not open is ignored. It returns true without closing anything when the
// frame belongs to an enclosing pass, so the caller can stop and let that
// pass handle it.
func (w *Writer) CloseInline(tag string) bool {
	i := w.stack.Find(tag)

	switch {
	case i < 0:
		return false
	case i < w.floor:
		return true
	}

	w.stack.Close(i, &w.out)

	return false
}

// SplitParagraph closes the current paragraph, if any. The next content
// opens a new one.
func (w *Writer) SplitParagraph() {
	if i := w.stack.FindAbove(paragraphFrame, w.floor); i >= 0 {
		w.stack.Close(i, &w.out)
	}
}

// Block closes the current paragraph, drops pending whitespace, and writes
// block-level markup.
func (w *Writer) Block(markup string) {
	w.SplitParagraph()

	w.breaks = 0
	w.space = false

	w.out.WriteString(markup)
}

// Paragraphs reports whether the writer wraps content in paragraphs.
func (w *Writer) Paragraphs() bool {
	return w.paragraphs
}

// Finish closes every frame the writer opened and returns the markup.
func (w *Writer) Finish() string {
	if w.stack.Len() > w.floor {
		w.stack.Close(w.floor, &w.out)
	}

	return w.out.String()
}

func (w *Writer) flush() {
	switch {
	case w.breaks > 1 && w.paragraphs:
		w.SplitParagraph()
	case w.breaks > 0:
		w.out.WriteString(ndmarkup.BreakPlaceholder)
	case w.space:
		w.out.WriteByte(' ')
	}

	w.breaks = 0
	w.space = false
}

func (w *Writer) ensureParagraph() {
	if !w.paragraphs || w.stack.FindAbove(paragraphFrame, w.floor) >= 0 {
		return
	}

	w.out.WriteString(ndmarkup.ParagraphOpen)
	w.stack.Open(paragraphFrame, ndmarkup.ParagraphClose)
}
