package doccomment

import (
	"strings"

	"go.jacobcolvin.com/ndoc/ndmarkup"
)

// SectionStyle describes how one section is rendered.
type SectionStyle struct {
	// HeadingType is the type attribute of the section heading.
	HeadingType string
	// Unheaded sections are rendered without a heading.
	Unheaded bool
	// DefinitionList forces a list section to render as a definition list.
	DefinitionList bool
	// LinkNames wraps member names in symbol links unless they already are
	// one.
	LinkNames bool
}

// Assembler renders a [SectionedComment] into a markup body.
type Assembler struct {
	// Styles maps section names to their rendering. Sections without an
	// entry use the zero style.
	Styles  map[string]SectionStyle
	Env     Env
	Dialect string
}

// Section writes one section, preceded by its localized heading if it has
// one. Empty sections write nothing.
func (a Assembler) Section(out *strings.Builder, s Section) {
	style := a.Styles[s.SectionName()]

	switch s := s.(type) {
	case *TextSection:
		content := s.Content()
		if strings.TrimSpace(content) == "" {
			return
		}

		a.heading(out, s.Name, style, 1)
		out.WriteString(content)

	case *ListSection:
		members := a.members(s, style)
		if len(members) == 0 {
			return
		}

		a.heading(out, s.Name, style, len(members))
		a.list(out, members, style)
	}
}

func (a Assembler) heading(out *strings.Builder, name string, style SectionStyle, count int) {
	if style.Unheaded {
		return
	}

	text, ok := a.Env.Heading(a.Dialect, name, count)
	if !ok || text == "" {
		return
	}

	out.WriteString(ndmarkup.Heading(ndmarkup.Encode(text), style.HeadingType))
}

// members drops members that are empty and applies name linking.
func (a Assembler) members(s *ListSection, style SectionStyle) []Member {
	members := make([]Member, 0, len(s.Members))

	for _, m := range s.Members {
		m.Name = strings.TrimSpace(m.Name)
		m.Description = strings.TrimSpace(m.Description)

		if m.Name == "" && m.Description == "" {
			continue
		}

		if style.DefinitionList && m.Name == "" {
			continue
		}

		if style.LinkNames && m.Name != "" && !ndmarkup.IsLink(m.Name) {
			m.Name = ndmarkup.Link(ndmarkup.LinkSymbol, ndmarkup.Decode(m.Name), "")
		}

		members = append(members, m)
	}

	return members
}

func (a Assembler) list(out *strings.Builder, members []Member, style SectionStyle) {
	if style.DefinitionList || allNamedAndDescribed(members) {
		out.WriteString(ndmarkup.DefListOpen)

		for _, m := range members {
			out.WriteString(ndmarkup.TermOpen)
			out.WriteString(m.Name)
			out.WriteString(ndmarkup.TermClose)
			out.WriteString(ndmarkup.DefOpen)
			out.WriteString(m.Description)
			out.WriteString(ndmarkup.DefClose)
		}

		out.WriteString(ndmarkup.DefListClose)

		return
	}

	if len(members) == 1 {
		out.WriteString(ndmarkup.ParagraphOpen)
		out.WriteString(bulletText(members[0]))
		out.WriteString(ndmarkup.ParagraphClose)

		return
	}

	out.WriteString(ndmarkup.BulletListOpen)

	for _, m := range members {
		out.WriteString(ndmarkup.ItemOpen)
		out.WriteString(bulletText(m))
		out.WriteString(ndmarkup.ItemClose)
	}

	out.WriteString(ndmarkup.BulletListClose)
}

func allNamedAndDescribed(members []Member) bool {
	for _, m := range members {
		if m.Name == "" || m.Description == "" {
			return false
		}
	}

	return true
}

func bulletText(m Member) string {
	switch {
	case m.Name == "":
		return m.Description
	case m.Description == "":
		return m.Name
	}

	return ndmarkup.BoldOpen + m.Name + ndmarkup.BoldClose + " " + m.Description
}
