package docgen

import (
	"slices"

	"go.jacobcolvin.com/ndoc/doccomment"
)

// cacheKey identifies a parse result. Parsing depends only on the comment
// text and on how decorations are detected.
type cacheKey struct {
	text     string
	trailing bool
}

// cloneUnit copies a cached unit and moves it to line. Embedded units are
// copied too, so callers may modify the result.
func cloneUnit(u *doccomment.Unit, line int) *doccomment.Unit {
	c := *u
	c.Line = line
	c.Tags = slices.Clone(u.Tags)
	c.Embedded = nil

	for _, e := range u.Embedded {
		c.Embedded = append(c.Embedded, cloneUnit(e, line))
	}

	return &c
}
