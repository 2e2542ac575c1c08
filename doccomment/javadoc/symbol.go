package javadoc

import (
	"strings"

	"go.jacobcolvin.com/ndoc/token"
)

var closers = map[byte]byte{'(': ')', '[': ']', '{': '}', '<': '>'}

// extractSymbol reads a link target such as "Foo#bar(int, List<String>)".
// Brackets must balance, and whitespace only ends the symbol outside of
// them. An unmatched "}" also ends it. A leading "#" is dropped and any
// other "#" becomes ".". It returns the symbol and the position after it.
func extractSymbol(it, end token.Iterator) (string, token.Iterator) {
	start := it

	var open []byte

scan:
	for it.Before(end) {
		switch it.Type() {
		case token.Whitespace, token.LineBreak:
			if len(open) == 0 {
				break scan
			}

			it.Next()

			continue

		case token.Text:
			it.Next()

			continue
		}

		ch := it.Char()

		switch ch {
		case '(', '[', '{':
			open = append(open, closers[ch])

		case '<':
			// "operator<" and "operator<=" name an operator, not a template.
			if !strings.HasSuffix(start.TextTo(it), "operator") {
				open = append(open, '>')
			}

		case ')', ']', '}', '>':
			switch {
			case len(open) > 0 && open[len(open)-1] == ch:
				open = open[:len(open)-1]
			case ch == '>':
			default:
				break scan
			}
		}

		it.Next()
	}

	symbol := strings.TrimSpace(start.TextTo(it))
	symbol = strings.TrimPrefix(symbol, "#")
	symbol = strings.ReplaceAll(symbol, "#", ".")

	return symbol, it
}

// matchBrace returns the "}" closing the "{" at it.
func matchBrace(it, end token.Iterator) (token.Iterator, bool) {
	depth := 0

	for ; it.Before(end); it.Next() {
		switch {
		case it.Is("{"):
			depth++
		case it.Is("}"):
			depth--
			if depth == 0 {
				return it, true
			}
		}
	}

	return it, false
}
