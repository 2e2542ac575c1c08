package token

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Type is the fundamental classification of a token.
type Type uint8

const (
	// Null is returned by iterators that are out of bounds.
	Null Type = iota
	// Text is a run of letters, digits, underscores, or non-ASCII runes.
	Text
	// Whitespace is a run of spaces and tabs.
	Whitespace
	// Symbol is a single ASCII punctuation character.
	Symbol
	// LineBreak is a single line ending.
	LineBreak
)

// String returns the lowercase name of the type.
func (t Type) String() string {
	switch t {
	case Text:
		return "text"
	case Whitespace:
		return "whitespace"
	case Symbol:
		return "symbol"
	case LineBreak:
		return "linebreak"
	}

	return "null"
}

// CommentType is the mutable comment-parsing annotation of a token.
type CommentType uint8

const (
	// Content is the default annotation: the token is comment content.
	Content CommentType = iota
	// CommentSymbol marks comment markers such as "/*", "*/", or "//".
	CommentSymbol
	// Decoration marks cosmetic framing such as box-drawing lines.
	Decoration
)

type tok struct {
	start int
	end   int
	typ   Type
	ct    CommentType
}

// Buffer is tokenized text.
//
// Create instances with [New].
type Buffer struct {
	text   string
	tokens []tok
	// lines holds the index of the first token of each line, plus a sentinel
	// equal to len(tokens).
	lines []int
}

// New tokenizes text.
func New(text string) *Buffer {
	b := &Buffer{text: text}
	b.tokenize()

	return b
}

func (b *Buffer) tokenize() {
	s := b.text
	b.lines = append(b.lines, 0)

	i := 0
	for i < len(s) {
		c := s[i]
		start := i

		switch {
		case c == '\n':
			i++
			b.push(start, i, LineBreak)
			b.lines = append(b.lines, len(b.tokens))

			continue

		case c == '\r':
			i++
			if i < len(s) && s[i] == '\n' {
				i++
			}

			b.push(start, i, LineBreak)
			b.lines = append(b.lines, len(b.tokens))

			continue

		case c == ' ' || c == '\t':
			for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
				i++
			}

			b.push(start, i, Whitespace)

		case isTextByte(c):
			for i < len(s) && isTextByte(s[i]) {
				if s[i] >= utf8.RuneSelf {
					_, size := utf8.DecodeRuneInString(s[i:])
					i += size
				} else {
					i++
				}
			}

			b.push(start, i, Text)

		default:
			i++
			b.push(start, i, Symbol)
		}
	}

	// The final line only exists if it has tokens or the text is empty.
	if last := b.lines[len(b.lines)-1]; last == len(b.tokens) && len(b.lines) > 1 {
		b.lines = b.lines[:len(b.lines)-1]
	}

	b.lines = append(b.lines, len(b.tokens))
}

func (b *Buffer) push(start, end int, typ Type) {
	b.tokens = append(b.tokens, tok{start: start, end: end, typ: typ})
}

func isTextByte(c byte) bool {
	return c >= utf8.RuneSelf ||
		c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// String returns the full source text.
func (b *Buffer) String() string {
	return b.text
}

// Len returns the number of tokens.
func (b *Buffer) Len() int {
	return len(b.tokens)
}

// LineCount returns the number of lines. Empty text has one empty line.
func (b *Buffer) LineCount() int {
	return len(b.lines) - 1
}

// First returns an iterator on the first token.
func (b *Buffer) First() Iterator {
	return Iterator{buf: b}
}

// End returns an iterator one past the last token.
func (b *Buffer) End() Iterator {
	return Iterator{buf: b, i: len(b.tokens)}
}

// At returns an iterator on the token with the given absolute index.
func (b *Buffer) At(index int) Iterator {
	return Iterator{buf: b, i: index}
}

// Line returns the line with the given zero-based index.
func (b *Buffer) Line(n int) Line {
	return Line{buf: b, n: n}
}

// FirstLine returns the first line.
func (b *Buffer) FirstLine() Line {
	return Line{buf: b}
}

// isBoundary reports whether offset falls on a token boundary.
func (b *Buffer) isBoundary(offset int) bool {
	if offset == len(b.text) {
		return true
	}

	i := sort.Search(len(b.tokens), func(i int) bool {
		return b.tokens[i].start >= offset
	})

	return i < len(b.tokens) && b.tokens[i].start == offset
}

// indexAt returns the index of the token starting at offset, or -1.
func (b *Buffer) indexAt(offset int) int {
	if offset == len(b.text) {
		return len(b.tokens)
	}

	i := sort.Search(len(b.tokens), func(i int) bool {
		return b.tokens[i].start >= offset
	})
	if i < len(b.tokens) && b.tokens[i].start == offset {
		return i
	}

	return -1
}

// lineOf returns the zero-based line holding the token index.
func (b *Buffer) lineOf(index int) int {
	n := sort.Search(len(b.lines), func(n int) bool {
		return b.lines[n] > index
	})

	return max(n-1, 0)
}

// Iterator is a position in a [Buffer]. The zero value is invalid.
//
// Iterators are values: copying one forks the position.
type Iterator struct {
	buf *Buffer
	i   int
}

// Valid reports whether the iterator is on a token.
func (it Iterator) Valid() bool {
	return it.buf != nil && it.i >= 0 && it.i < len(it.buf.tokens)
}

// Index returns the absolute token index.
func (it Iterator) Index() int {
	return it.i
}

// Buffer returns the underlying buffer.
func (it Iterator) Buffer() *Buffer {
	return it.buf
}

// Next moves forward one token.
func (it *Iterator) Next() {
	it.i++
}

// Prev moves backward one token.
func (it *Iterator) Prev() {
	it.i--
}

// Advance moves forward n tokens, or backward when n is negative.
func (it *Iterator) Advance(n int) {
	it.i += n
}

// Type returns the fundamental type, or [Null] when out of bounds.
func (it Iterator) Type() Type {
	if !it.Valid() {
		return Null
	}

	return it.buf.tokens[it.i].typ
}

// CommentType returns the comment-parsing annotation.
func (it Iterator) CommentType() CommentType {
	if !it.Valid() {
		return Content
	}

	return it.buf.tokens[it.i].ct
}

// SetCommentType sets the comment-parsing annotation.
func (it Iterator) SetCommentType(ct CommentType) {
	if !it.Valid() {
		panic("token: SetCommentType on invalid iterator")
	}

	it.buf.tokens[it.i].ct = ct
}

// String returns the token text, or "" when out of bounds.
func (it Iterator) String() string {
	if !it.Valid() {
		return ""
	}

	t := it.buf.tokens[it.i]

	return it.buf.text[t.start:t.end]
}

// Char returns the first byte of the token, or 0 when out of bounds.
func (it Iterator) Char() byte {
	if !it.Valid() {
		return 0
	}

	return it.buf.text[it.buf.tokens[it.i].start]
}

// Is reports whether the token text equals s.
func (it Iterator) Is(s string) bool {
	return it.Valid() && it.String() == s
}

// Offset returns the byte offset of the token in the source text.
func (it Iterator) Offset() int {
	switch {
	case it.buf == nil:
		return 0
	case it.i < 0:
		return 0
	case it.i >= len(it.buf.tokens):
		return len(it.buf.text)
	}

	return it.buf.tokens[it.i].start
}

// Line returns the zero-based line holding the token.
func (it Iterator) Line() int {
	return it.buf.lineOf(it.i)
}

// Equal reports whether both iterators are at the same position.
func (it Iterator) Equal(other Iterator) bool {
	return it.buf == other.buf && it.i == other.i
}

// Before reports whether it is positioned before other.
func (it Iterator) Before(other Iterator) bool {
	return it.i < other.i
}

// TextTo returns the source text from this token up to, but not including,
// end.
func (it Iterator) TextTo(end Iterator) string {
	start, stop := it.Offset(), end.Offset()
	if stop <= start {
		return ""
	}

	return it.buf.text[start:stop]
}

// HasPrefix reports whether the text at the iterator starts with s and s ends
// on a token boundary. It can match across several tokens, so "{@code" is
// found even though it spans three.
func (it Iterator) HasPrefix(s string) bool {
	if !it.Valid() || s == "" {
		return false
	}

	off := it.Offset()
	if !strings.HasPrefix(it.buf.text[off:], s) {
		return false
	}

	return it.buf.isBoundary(off + len(s))
}

// HasPrefixFold is [Iterator.HasPrefix] with ASCII case folding.
func (it Iterator) HasPrefixFold(s string) bool {
	if !it.Valid() || s == "" {
		return false
	}

	off := it.Offset()
	rest := it.buf.text[off:]

	if len(rest) < len(s) || !strings.EqualFold(rest[:len(s)], s) {
		return false
	}

	return it.buf.isBoundary(off + len(s))
}

// Skip advances past s when [Iterator.HasPrefix] matches and reports whether
// it did.
func (it *Iterator) Skip(s string) bool {
	if !it.HasPrefix(s) {
		return false
	}

	it.i = it.buf.indexAt(it.Offset() + len(s))

	return true
}

// SkipWhitespace advances past whitespace tokens, and line breaks too when
// lineBreaks is set. It never moves past limit.
func (it *Iterator) SkipWhitespace(limit Iterator, lineBreaks bool) {
	for it.Before(limit) {
		switch it.Type() {
		case Whitespace:
		case LineBreak:
			if !lineBreaks {
				return
			}

		default:
			return
		}

		it.Next()
	}
}
