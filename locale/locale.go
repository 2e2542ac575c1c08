// Package locale provides the text of generated headings and phrases.
//
// Text comes from YAML catalogs. English and German catalogs are embedded;
// [Load] picks the best match for a BCP 47 language tag and [Parse] reads a
// catalog supplied by the user, which can be layered over an embedded one
// with [Catalog.Merge].
//
// A catalog looks like this:
//
//	language: en
//	headings:
//	  common:
//	    param: {one: Parameter, other: Parameters}
//	    return: Returns
//	  javadoc:
//	    throws: Throws
//	phrases:
//	  deprecated: "Deprecated:"
//	  value: "The value of {0}"
//
// Headings are looked up by dialect first and then in the common table. A
// heading is either one string or a pair of singular and plural forms.
// Phrases replace "{0}", "{1}", ... with their arguments.
//
// A [*Catalog] is read-only after loading and safe for concurrent use.
package locale

import (
	"embed"
	"errors"
	"fmt"
	"path"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"golang.org/x/text/language"
)

var (
	// ErrUnknownLocale indicates a language with no matching catalog.
	ErrUnknownLocale = errors.New("unknown locale")
	// ErrInvalidCatalog indicates a catalog that could not be decoded.
	ErrInvalidCatalog = errors.New("invalid catalog")
)

// commonDialect is the heading table consulted after the dialect's own.
const commonDialect = "common"

//go:embed catalogs/*.yaml
var catalogs embed.FS

// Forms holds the singular and plural text of a heading.
type Forms struct {
	One   string `yaml:"one"`
	Other string `yaml:"other"`
}

// UnmarshalYAML accepts either a plain string or a one/other mapping.
func (f *Forms) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err == nil {
		f.One, f.Other = s, s

		return nil
	}

	type forms Forms

	var m forms

	err := unmarshal(&m)
	if err != nil {
		return err
	}

	*f = Forms(m)

	return nil
}

// For returns the form for count, falling back to the other form.
func (f Forms) For(count int) string {
	if count == 1 && f.One != "" || f.Other == "" {
		return f.One
	}

	return f.Other
}

// Catalog is the text of one language.
type Catalog struct {
	Headings map[string]map[string]Forms `yaml:"headings"`
	Phrases  map[string]string           `yaml:"phrases"`
	Language string                      `yaml:"language"`
}

// Parse decodes a YAML catalog.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog

	err := yaml.Unmarshal(data, &c)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if c.Language != "" {
		_, err = language.Parse(c.Language)
		if err != nil {
			return nil, fmt.Errorf("%w: language %q: %w", ErrInvalidCatalog, c.Language, err)
		}
	}

	return &c, nil
}

// Available returns the languages of the embedded catalogs.
func Available() []string {
	entries, err := catalogs.ReadDir("catalogs")
	if err != nil {
		panic(err)
	}

	langs := make([]string, 0, len(entries))
	for _, e := range entries {
		langs = append(langs, strings.TrimSuffix(e.Name(), path.Ext(e.Name())))
	}

	// English first so it is the matcher's fallback.
	slices.SortFunc(langs, func(a, b string) int {
		switch {
		case a == "en":
			return -1
		case b == "en":
			return 1
		}

		return strings.Compare(a, b)
	})

	return langs
}

// Load returns the embedded catalog that best matches a BCP 47 tag such as
// "en", "de-AT", or "de_CH".
func Load(tag string) (*Catalog, error) {
	want, err := language.Parse(strings.ReplaceAll(tag, "_", "-"))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownLocale, tag, err)
	}

	langs := Available()

	supported := make([]language.Tag, 0, len(langs))
	for _, l := range langs {
		supported = append(supported, language.Make(l))
	}

	_, idx, conf := language.NewMatcher(supported).Match(want)
	if conf == language.No {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLocale, tag)
	}

	data, err := catalogs.ReadFile("catalogs/" + langs[idx] + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrUnknownLocale, tag, err)
	}

	return Parse(data)
}

// MustLoad is like [Load] but panics on error.
func MustLoad(tag string) *Catalog {
	c, err := Load(tag)
	if err != nil {
		panic(err)
	}

	return c
}

// Merge layers other over c. Entries in other win.
func (c *Catalog) Merge(other *Catalog) {
	if c.Headings == nil {
		c.Headings = make(map[string]map[string]Forms)
	}

	for dialect, table := range other.Headings {
		if c.Headings[dialect] == nil {
			c.Headings[dialect] = make(map[string]Forms)
		}

		for section, forms := range table {
			c.Headings[dialect][section] = forms
		}
	}

	if c.Phrases == nil {
		c.Phrases = make(map[string]string)
	}

	for key, text := range other.Phrases {
		c.Phrases[key] = text
	}

	if other.Language != "" {
		c.Language = other.Language
	}
}

// Heading returns the heading of a dialect's section for count members.
func (c *Catalog) Heading(dialect, section string, count int) (string, bool) {
	for _, d := range []string{dialect, commonDialect} {
		if forms, ok := c.Headings[d][section]; ok {
			return forms.For(count), true
		}
	}

	return "", false
}

// Phrase returns the phrase for key with placeholders replaced. A missing
// key returns the key itself.
func (c *Catalog) Phrase(key string, args ...any) string {
	text, ok := c.Phrases[key]
	if !ok {
		return key
	}

	for i, arg := range args {
		text = strings.ReplaceAll(text, "{"+strconv.Itoa(i)+"}", fmt.Sprint(arg))
	}

	return text
}
