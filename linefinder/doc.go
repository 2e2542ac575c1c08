// Package linefinder detects decorative lines in comments and marks their
// tokens as [token.Decoration] so parsers never see them as content.
//
// Both entry points work in two phases. A classification pass walks the
// comment without touching it and either fails, leaving the comment exactly
// as it was, or produces a plan. Only a successful plan is applied by a
// separate marking pass.
//
// # Text boxes
//
// [MarkTextBoxes] handles comments framed like these:
//
//	/*****************
//	 * Title         *
//	 *               *
//	 * Text          *
//	 *****************/
//
//	// +-------+
//	// | Title |
//	// +-------+
//
// Each line is trimmed of whitespace and comment markers, then up to three
// consecutive runs of one repeated symbol (A, B, C) are counted from its
// start. A line made of nothing but those runs is a horizontal line if any
// of these holds:
//
//  1. Both edges touch a comment marker with no whitespace between, A >= 4
//     and B = 0.
//  2. The left edge touches a marker, A >= 4, and either B = 0 or B <= 3 with
//     C = 0.
//  3. The right edge touches a marker, and either 1 <= A <= 3, B >= 4, C = 0,
//     or A >= 4, B = 0.
//  4. A >= 4 and B = 0, or 1 <= A <= 3, B >= 4 and C <= 3.
//
// The rules overlap. They are kept as they are because changing them changes
// which existing comments are treated as boxes.
//
// Other lines are checked for vertical lines: a run of at most three
// identical symbols at the left or right edge, separated from the content by
// whitespace. The first line with content fixes the symbol and count for
// each side; a later line that disagrees zeroes that side. Once a side has
// been established, losing both sides fails the whole comment, as does a
// blank line that is followed by anything other than blank lines. A line
// holding nothing but one short run could be either side and is resolved
// against the established ones, and fails the comment if it matches
// neither. In a block comment, the side of a line occupied by the opening or
// closing marker is not checked; line comment markers come before the left
// edge and never hide it. A comment with no horizontal line and no vertical
// side is not a box.
//
// # Simple left lines
//
// [MarkSimpleLeftLines] handles runs of line comments whose lines after the
// first all start with the same short symbol run:
//
//	int x; // Title
//	       // | detail
//	       // | detail
package linefinder
