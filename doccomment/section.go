package doccomment

import (
	"fmt"
	"strings"
)

// Section is one named part of a [SectionedComment]: a [*TextSection] or a
// [*ListSection].
type Section interface {
	SectionName() string
}

// TextSection is a named block of markup built by appending.
type TextSection struct {
	content strings.Builder
	Name    string
}

// SectionName implements [Section].
func (s *TextSection) SectionName() string {
	return s.Name
}

// Append adds markup to the end of the section.
func (s *TextSection) Append(markup string) {
	s.content.WriteString(markup)
}

// Content returns the markup appended so far.
func (s *TextSection) Content() string {
	return s.content.String()
}

// Member is one entry of a [ListSection]. Both fields are inline markup and
// either may be empty.
type Member struct {
	Name        string
	Description string
}

// ListSection is a named, ordered list of members.
type ListSection struct {
	Name    string
	Members []Member
}

// SectionName implements [Section].
func (s *ListSection) SectionName() string {
	return s.Name
}

// AddMember appends a member. Callers decide whether a member with neither
// field is worth adding.
func (s *ListSection) AddMember(name, description string) {
	s.Members = append(s.Members, Member{Name: name, Description: description})
}

// SectionedComment is the dialect-independent form of a parsed comment: an
// ordered sequence of named sections.
//
// The zero value is ready to use.
type SectionedComment struct {
	index    map[string]Section
	sections []Section
}

// TextSection returns the text section with the given name, creating it at
// the end if it does not exist. It panics if name is a list section.
func (c *SectionedComment) TextSection(name string) *TextSection {
	if s, ok := c.index[name]; ok {
		ts, ok := s.(*TextSection)
		if !ok {
			panic(fmt.Sprintf("doccomment: section %q is not a text section", name))
		}

		return ts
	}

	ts := &TextSection{Name: name}
	c.add(ts)

	return ts
}

// ListSection returns the list section with the given name, creating it at
// the end if it does not exist. It panics if name is a text section.
func (c *SectionedComment) ListSection(name string) *ListSection {
	if s, ok := c.index[name]; ok {
		ls, ok := s.(*ListSection)
		if !ok {
			panic(fmt.Sprintf("doccomment: section %q is not a list section", name))
		}

		return ls
	}

	ls := &ListSection{Name: name}
	c.add(ls)

	return ls
}

func (c *SectionedComment) add(s Section) {
	if c.index == nil {
		c.index = make(map[string]Section)
	}

	c.index[s.SectionName()] = s
	c.sections = append(c.sections, s)
}

// Lookup returns the section with the given name.
func (c *SectionedComment) Lookup(name string) (Section, bool) {
	s, ok := c.index[name]

	return s, ok
}

// Sections returns the sections in the order they were first created.
func (c *SectionedComment) Sections() []Section {
	return c.sections
}
