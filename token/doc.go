// Package token splits comment text into an annotated token stream.
//
// A [Buffer] holds the source text and a flat slice of tokens. Every token has
// a fundamental [Type] ([Text], [Whitespace], [Symbol], or [LineBreak]) and a
// mutable [CommentType] annotation that upstream code uses to mark comment
// markers ([CommentSymbol]) and cosmetic framing ([Decoration]). Parsers step
// through the buffer with an [Iterator], or line by line with a [Line], whose
// bounds can be narrowed with a [Bounds] mode.
//
// Tokenization rules:
//
//   - Runs of letters, digits, underscores, and any non-ASCII rune form one
//     [Text] token.
//   - Runs of spaces and tabs form one [Whitespace] token.
//   - "\n", "\r\n", and a lone "\r" each form one [LineBreak] token.
//   - Every other ASCII character is its own [Symbol] token, so "/**" is three
//     tokens.
//
// Buffers are not safe for concurrent mutation. Distinct buffers share no
// state.
package token
