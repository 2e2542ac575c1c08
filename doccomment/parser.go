package doccomment

import (
	"fmt"
	"slices"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/ndmarkup"
)

// Parser converts one comment dialect into a [Unit].
//
// Parsers hold only read-only state from their [Env], so a single instance
// may be used from many goroutines.
type Parser interface {
	// Name returns the registry name of the dialect.
	Name() string

	// Accepts reports whether spans classified as the given dialect are
	// candidates for this parser.
	Accepts(d comment.Dialect) bool

	// Parse converts the span. It returns false when the comment is not in
	// this parser's dialect, in which case the caller tries the next one.
	// A recognized comment may still produce a unit without a body.
	Parse(span comment.Span) (*Unit, bool)
}

// Localizer looks up the human-readable text of generated markup.
type Localizer interface {
	// Heading returns the heading for a section of a dialect. count is the
	// number of members for list sections and 1 otherwise. A missing
	// heading renders the section without one.
	Heading(dialect, section string, count int) (string, bool)

	// Phrase returns the text for key with "{0}", "{1}", ... replaced by
	// args.
	Phrase(key string, args ...any) string
}

// Env is the read-only state shared by every parser.
type Env struct {
	Localizer Localizer
	// URLProtocol reports whether a protocol such as "https" may be turned
	// into a link. Nil uses [KnownProtocol].
	URLProtocol func(protocol string) bool
	// TabWidth expands tabs in comment text. Zero uses 4.
	TabWidth int
}

// Protocol calls [Env.URLProtocol] or [KnownProtocol].
func (e Env) Protocol(protocol string) bool {
	if e.URLProtocol != nil {
		return e.URLProtocol(protocol)
	}

	return KnownProtocol(protocol)
}

// Tabs returns the configured tab width.
func (e Env) Tabs() int {
	if e.TabWidth > 0 {
		return e.TabWidth
	}

	return 4
}

// Heading calls the localizer, reporting no heading when there is none.
func (e Env) Heading(dialect, section string, count int) (string, bool) {
	if e.Localizer == nil {
		return "", false
	}

	return e.Localizer.Heading(dialect, section, count)
}

// Phrase calls the localizer, returning key itself when there is none.
func (e Env) Phrase(key string, args ...any) string {
	if e.Localizer == nil {
		return key
	}

	return e.Localizer.Phrase(key, args...)
}

// Registry maps dialect names to parser constructors.
type Registry map[string]func(Env) Parser

// Register adds a constructor under name.
func (r Registry) Register(name string, fn func(Env) Parser) {
	r[name] = fn
}

// Names returns the registered names in sorted order.
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// New builds the named parsers in order.
func (r Registry) New(env Env, names ...string) ([]Parser, error) {
	parsers := make([]Parser, 0, len(names))

	for _, name := range names {
		fn, ok := r[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, name)
		}

		parsers = append(parsers, fn(env))
	}

	return parsers, nil
}

// Unit is one documentation topic produced from a comment.
type Unit struct {
	// Title names an embedded unit, such as an enum value.
	Title   string `json:"title,omitempty"`
	Dialect string `json:"dialect"`
	Body    string `json:"body,omitempty"`
	Summary string `json:"summary,omitempty"`
	Access  string `json:"access,omitempty"`
	// Tags are keywords such as "deprecated".
	Tags     []string `json:"tags,omitempty"`
	Embedded []*Unit  `json:"embedded,omitempty"`
	// Line is the one-based source line the comment starts on.
	Line int `json:"line"`
}

// NewUnit normalizes raw markup into a unit's body and derives its
// summary.
func NewUnit(dialect string, line int, raw string) *Unit {
	u := &Unit{Dialect: dialect, Line: line}
	u.SetBody(raw)

	return u
}

// SetBody normalizes raw markup into the body and recomputes the summary.
func (u *Unit) SetBody(raw string) {
	u.Body, _ = ndmarkup.Normalize(raw)
	u.Summary, _ = ndmarkup.ExtractSummary(u.Body)
}

// AddTag adds a tag once.
func (u *Unit) AddTag(tag string) {
	if !slices.Contains(u.Tags, tag) {
		u.Tags = append(u.Tags, tag)
	}
}
