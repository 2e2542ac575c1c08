package xmldoc

import (
	"strings"

	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/ndmarkup"
	"go.jacobcolvin.com/ndoc/token"
)

type listEntry struct {
	term   string
	desc   string
	header bool
}

// list converts a list element whose opening tag ends at it. Text outside
// of items is dropped.
func (c *converter) list(it token.Iterator) (token.Iterator, string) {
	var entries []listEntry

	for it.Before(c.end) {
		if !it.Is("<") {
			it.Next()

			continue
		}

		tag, next, ok := doccomment.ScanTag(it, c.end)
		if !ok {
			it.Next()

			continue
		}

		switch {
		case tag.Name == "list" && tag.Closing:
			return next, renderList(entries)

		case (tag.Name == "item" || tag.Name == "listheader") && !tag.Closing && !tag.SelfClosing:
			var e listEntry

			it, e = c.item(next, tag.Name)
			e.header = tag.Name == "listheader"
			entries = append(entries, e)

			continue
		}

		it = next
	}

	return it, renderList(entries)
}

// item converts an item or listheader element named name. Content without
// term or description elements is the description.
func (c *converter) item(it token.Iterator, name string) (token.Iterator, listEntry) {
	var e listEntry

	first := it
	first.SkipWhitespace(c.end, true)

	if tag, _, ok := doccomment.ScanTag(first, c.end); !ok || (tag.Name != "term" && tag.Name != "description") {
		after, desc := c.convert(it, name, inlineMode)
		e.desc = desc

		return after, e
	}

	for it.Before(c.end) {
		it.SkipWhitespace(c.end, true)

		tag, next, ok := doccomment.ScanTag(it, c.end)
		if !ok {
			it.Next()

			continue
		}

		it = next

		switch {
		case tag.Name == name && tag.Closing:
			return it, e

		case tag.Closing || tag.SelfClosing:

		case tag.Name == "term":
			var term string

			term, it = c.unformatted(next, "term")
			e.term = ndmarkup.Encode(term)

		case tag.Name == "description":
			it, e.desc = c.convert(next, "description", inlineMode)
		}
	}

	return it, e
}

// renderList renders a definition list when any entry has both a term and
// a description, and a bullet list otherwise.
func renderList(entries []listEntry) string {
	kept := entries[:0]
	definitions := false

	for _, e := range entries {
		e.term = strings.TrimSpace(e.term)
		e.desc = strings.TrimSpace(e.desc)

		if e.term == "" && e.desc == "" {
			continue
		}

		if e.header {
			e.term = bold(e.term)
			e.desc = bold(e.desc)
		}

		if e.term != "" && e.desc != "" {
			definitions = true
		}

		kept = append(kept, e)
	}

	if len(kept) == 0 {
		return ""
	}

	var sb strings.Builder

	if definitions {
		sb.WriteString(ndmarkup.DefListOpen)

		for _, e := range kept {
			sb.WriteString(ndmarkup.TermOpen + e.term + ndmarkup.TermClose)
			sb.WriteString(ndmarkup.DefOpen + e.desc + ndmarkup.DefClose)
		}

		sb.WriteString(ndmarkup.DefListClose)

		return sb.String()
	}

	sb.WriteString(ndmarkup.BulletListOpen)

	for _, e := range kept {
		sb.WriteString(ndmarkup.ItemOpen)

		if e.term != "" {
			sb.WriteString(e.term)
		} else {
			sb.WriteString(e.desc)
		}

		sb.WriteString(ndmarkup.ItemClose)
	}

	sb.WriteString(ndmarkup.BulletListClose)

	return sb.String()
}

func bold(s string) string {
	if s == "" {
		return ""
	}

	return ndmarkup.BoldOpen + s + ndmarkup.BoldClose
}
