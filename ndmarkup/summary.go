package ndmarkup

// ExtractSummary returns the inner markup of the first paragraph of a
// normalized body.
//
// Any number of headings, one prototype block, and one standalone image may
// come before the paragraph. If anything else comes first, there is no
// summary.
func ExtractSummary(body string) (string, bool) {
	pieces := Split(body)

	var seenPrototype, seenImage bool

	for i := 0; i < len(pieces); i++ {
		p := pieces[i]

		switch {
		case p.Kind == TagPiece && p.Name == "h" && !p.Closing:
			i = skipTo(pieces, i, "h")

		case p.Kind == PrePiece:
			if seenPrototype || !isPrototype(p.Text) {
				return "", false
			}

			seenPrototype = true

		case p.Kind == TagPiece && p.Name == "image" && p.IsBlock():
			if seenImage {
				return "", false
			}

			seenImage = true

		case p.Kind == TagPiece && p.Name == "p" && !p.Closing:
			end := skipTo(pieces, i, "p")

			summary := Join(pieces[i+1 : min(end, len(pieces))])
			if summary == "" {
				return "", false
			}

			return summary, true

		default:
			return "", false
		}
	}

	return "", false
}

func isPrototype(pre string) bool {
	return len(pre) >= len(PrototypeOpen) && pre[:len(PrototypeOpen)] == PrototypeOpen
}

// skipTo returns the index of the closing tag matching the opening tag at
// i, or len(pieces) if it is missing.
func skipTo(pieces []Piece, i int, name string) int {
	depth := 0

	for j := i; j < len(pieces); j++ {
		p := pieces[j]
		if p.Kind != TagPiece || p.Name != name {
			continue
		}

		if p.Closing {
			depth--
			if depth == 0 {
				return j
			}
		} else {
			depth++
		}
	}

	return len(pieces)
}
