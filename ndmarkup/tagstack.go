package ndmarkup

import (
	"fmt"
	"strings"
)

// Frame is one open element on a [TagStack].
type Frame struct {
	// Tag identifies the frame to the parser that opened it. It need not be
	// a canonical tag name.
	Tag string
	// Closing is the markup emitted when the frame is closed.
	Closing string
}

// TagStack tracks open markup frames while a dialect is converted.
//
// Frames are always closed top-down. Closing a frame that is not on top
// closes every frame above it first, which lets a parser reuse a surrounding
// frame, for example to split the current paragraph without unwinding the
// whole stack.
//
// The zero value is an empty stack.
type TagStack struct {
	frames []Frame
}

// Open pushes a frame.
func (s *TagStack) Open(tag, closing string) {
	s.frames = append(s.frames, Frame{Tag: tag, Closing: closing})
}

// Len returns the number of open frames.
func (s *TagStack) Len() int {
	return len(s.frames)
}

// Top returns the innermost frame.
func (s *TagStack) Top() (Frame, bool) {
	if len(s.frames) == 0 {
		return Frame{}, false
	}

	return s.frames[len(s.frames)-1], true
}

// Find returns the index of the innermost frame with the given tag, or -1.
func (s *TagStack) Find(tag string) int {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].Tag == tag {
			return i
		}
	}

	return -1
}

// FindAbove is like [TagStack.Find] but only considers frames at or above
// floor. It lets a nested conversion tell its own frames from those of an
// enclosing scope.
func (s *TagStack) FindAbove(tag string, floor int) int {
	i := s.Find(tag)
	if i < floor {
		return -1
	}

	return i
}

// Close writes the closing markup of every frame from the top down to and
// including index, then pops them. It panics if index is out of range.
func (s *TagStack) Close(index int, out *strings.Builder) {
	if index < 0 || index >= len(s.frames) {
		panic(fmt.Sprintf("ndmarkup: close of frame %d with %d open", index, len(s.frames)))
	}

	for i := len(s.frames) - 1; i >= index; i-- {
		out.WriteString(s.frames[i].Closing)
	}

	s.frames = s.frames[:index]
}

// CloseAbove closes every frame above index, leaving it on top.
func (s *TagStack) CloseAbove(index int, out *strings.Builder) {
	if index+1 < len(s.frames) {
		s.Close(index+1, out)
	}
}

// CloseAll closes every frame.
func (s *TagStack) CloseAll(out *strings.Builder) {
	if len(s.frames) > 0 {
		s.Close(0, out)
	}
}
