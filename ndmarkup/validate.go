package ndmarkup

import (
	"errors"
	"fmt"
)

// ErrMalformed indicates markup that breaks the structure of the canonical
// vocabulary.
var ErrMalformed = errors.New("malformed markup")

var knownTags = map[string]bool{
	"p": true, "h": true, "pre": true, "ul": true, "li": true, "dl": true,
	"de": true, "ds": true, "dd": true, "b": true, "i": true, "u": true,
	"br": true, "link": true, "image": true,
}

// emptyTags have no closing tag.
var emptyTags = map[string]bool{"br": true, "link": true, "image": true}

// Validate checks that tags are known and balanced, and that every term of
// a definition list is immediately followed by its definition.
func Validate(markup string) error {
	pieces := Split(markup)

	var open []string

	for i, p := range pieces {
		if p.Kind != TagPiece {
			continue
		}

		if !knownTags[p.Name] {
			return fmt.Errorf("%w: unknown tag %q", ErrMalformed, p.Text)
		}

		if emptyTags[p.Name] {
			continue
		}

		if !p.Closing {
			open = append(open, p.Name)

			continue
		}

		if len(open) == 0 || open[len(open)-1] != p.Name {
			return fmt.Errorf("%w: unexpected %q", ErrMalformed, p.Text)
		}

		open = open[:len(open)-1]

		if p.Name == "de" || p.Name == "ds" {
			if i+1 >= len(pieces) || pieces[i+1].Text != DefOpen {
				return fmt.Errorf("%w: %q not followed by %q", ErrMalformed, p.Text, DefOpen)
			}
		}
	}

	if len(open) > 0 {
		return fmt.Errorf("%w: unclosed %q", ErrMalformed, open[len(open)-1])
	}

	return nil
}
