// Package xmldoc converts XML documentation comments into NDMarkup.
//
// A comment is recognized when it holds at least one top-level section tag:
//
//	/// <summary>Adds two numbers.</summary>
//	/// <param name="a">The first number.</param>
//	/// <returns>The sum.</returns>
//
// Text outside of section tags is ignored, as is every unknown top-level
// element together with its content. Inside a section the usual formatting
// elements apply: <para>, <code>, <c>, <see>, <a>, <list>, <paramref>, and
// the <b>, <i>, and <u> shorthands. Bare URLs and e-mail addresses become
// links.
//
// The summary, remarks, and value sections come first without headings.
// The others follow in the order they first appear.
package xmldoc
