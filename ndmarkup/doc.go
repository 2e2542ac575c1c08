// Package ndmarkup defines NDMarkup, the canonical markup every comment
// dialect is translated into, and the operations shared by all dialect
// parsers.
//
// # Vocabulary
//
// NDMarkup is a closed set of tags. Anything else is a wire-format break
// for every consumer.
//
//	<p>...</p>                     paragraph
//	<h>...</h>                     heading
//	<h type="parameters">...</h>   typed heading
//	<pre>...</pre>                 preformatted block, lines joined by <br>
//	<pre type="prototype">...</pre>
//	<ul><li>...</li></ul>          bullet list
//	<dl><de>term</de><dd>...</dd></dl>
//	                               definition list
//	<dl><ds>name</ds><dd>...</dd></dl>
//	                               definition list of embedded symbols
//	<b>, <i>, <u>                  bold, italic, underline
//	<br>                           explicit line break
//	<link type="symbol" target="Foo.bar" text="label">
//	<link type="url" target="https://example.com">
//	<link type="email" target="someone@example.com">
//	<image type="standalone" target="diagram.png">
//
// Text is entity-encoded with &lt; &gt; &amp; and &quot;. Attribute values
// use the same encoding. The text attribute of a link is only present when it
// differs from the target.
//
// # Generation
//
// Dialect parsers write source line breaks as the placeholder
// [BreakPlaceholder] and track open frames with a [TagStack]. [Normalize]
// then turns the raw output into minimal markup, and [ExtractSummary] pulls
// the summary from the result.
//
// Preformatted content is built from [CodeLine] values so the common indent
// can be removed with [NormalizeCodeLines] before [Pre] renders it.
//
// # Debug checks
//
// Builds with the ndoc_debug tag validate every normalized body with
// [Validate] and panic on malformed markup. Malformed markup can only come
// from a generation bug, never from comment text.
package ndmarkup
