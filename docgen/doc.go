// Package docgen turns the documentation comments of source files into
// NDMarkup documentation units.
//
// A [Generator] finds comments with the extract package, cleans them up,
// and hands each one to a chain of dialect parsers. The first parser that
// accepts a comment produces its [doccomment.Unit]. Results can be written
// as JSON or as a plain listing with [Write], and [Schema] describes the
// JSON output.
//
// # Pipeline
//
// Each comment goes through four steps:
//
//  1. Extract: [extract.Extract] parses the file with tree-sitter and
//     returns every comment, joining runs of line comments. A comment
//     directly above a declaration is attached to it.
//
//  2. Clean up: the comment's markers are stripped and, unless disabled
//     with [WithLineFinder], decorative boxes and separator lines are
//     removed. Trailing comments only get their left-hand lines removed.
//
//  3. Parse: parsers run in priority order. A parser is skipped when it
//     does not accept the comment's marker dialect or when it finds
//     nothing to convert. The default order is Javadoc, XML, then plain
//     text, so that plain text catches whatever the structured dialects
//     reject.
//
//  4. Attach: the declaration's access level is copied onto the unit. For
//     enums, definition lists are split into embedded units, one per
//     value, unless disabled with [WithEmbedLists].
//
// Parsing is deterministic, so results are cached by comment text when
// [WithCacheSize] is set. Cached units are cloned before being returned
// and callers may modify them freely.
//
// # Concurrency
//
// [Generator.Files] reads and converts files concurrently, bounded by
// [WithWorkers]. The output is always sorted by path, regardless of the
// order in which files finish.
//
// # Configuration
//
// [Config] binds generator options to command-line flags. See
// [Config.RegisterFlags] and [Config.NewGenerator].
package docgen
