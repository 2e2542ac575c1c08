// Package doccomment holds the dialect-independent model of a parsed
// documentation comment and the pieces every dialect parser shares.
//
// # Flow
//
// A dialect parser (see the javadoc, xmldoc, and plain subpackages) reads a
// [comment.Span], fills a [SectionedComment] with [TextSection] and
// [ListSection] values, and renders it with an [Assembler]. The result is a
// [Unit] whose body is normalized NDMarkup and whose summary is the body's
// first paragraph.
//
// A parser that does not recognize its dialect returns false and produces
// nothing. That is the normal way to fall through to the next dialect, not
// an error.
//
// # Sections
//
// Sections keep the order in which they were first created.
// [SectionedComment.TextSection] and [SectionedComment.ListSection] create
// on first use and return the existing section afterwards, so a dialect can
// append to the same section from repeated tags.
//
// Each dialect describes its sections with a table of [SectionStyle] values:
// whether a section has a heading and of which type, whether its members
// always form a definition list, and whether member names become symbol
// links. A list section renders as a definition list when its style says so
// or every member has both a name and a description. Otherwise it renders
// as a bullet list, or as a single paragraph when it has one member.
//
// # Localization
//
// Heading and phrase text comes from a [Localizer] in the parser's [Env]. A
// section without a heading renders without one.
//
// # Embedding
//
// When a later stage learns that the documented symbol is list-like, such as
// an enum, [ReinterpretListAsEmbedded] turns the definition-list entries of
// its unit into embedded units of their own.
//
// # Registry
//
// A [Registry] maps dialect names to constructors:
//
//	reg := make(doccomment.Registry)
//	reg.Register(javadoc.Name, javadoc.NewParser)
//	parsers, err := reg.New(env, "javadoc")
package doccomment
