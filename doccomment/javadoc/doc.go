// Package javadoc parses Javadoc comments into NDMarkup.
//
// A comment is only treated as Javadoc when it contains at least one known
// block tag at the start of a line, or one known inline tag. Otherwise
// [Parser.Parse] returns false so another dialect can try.
//
// # Structure
//
// Text before the first line starting with "@word" is the description. Each block tag then runs to the next line starting with any
// "@word". A line starting with an unknown "@word" is skipped on its own, so
// a typo costs one line rather than the rest of the comment.
//
//	@author, @since, @version       unnamed list members
//	@deprecated                     one note shown before the description
//	@param, @exception, @throws     named members, dropped if the name or
//	                                description is missing
//	@return, @returns               text section
//	@see                            quoted text, an anchor, or a symbol
//	                                link with an optional label
//	@apiNote, @implSpec, @implNote  text sections
//	@serial, @serialData,
//	@serialField, @hidden           recognized and discarded
//
// # Inline markup
//
// The description and tag text may use a subset of HTML (p, b, strong, i,
// em, u, pre, ul, ol, li, a, br, and h1 to h6) and the inline tags
// {@code}, {@literal}, {@link}, {@linkplain}, {@value}, {@inheritDoc}, and
// {@docRoot}. Anything else is skipped. Blank lines also separate
// paragraphs.
package javadoc
