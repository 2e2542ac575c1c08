package docgen

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/extract"
)

// File holds the documentation found in one source file.
type File struct {
	Path     string           `json:"path"`
	Language extract.Language `json:"language"`
	Entries  []Entry          `json:"entries"`
}

// Entry is one documented comment.
type Entry struct {
	Unit        *doccomment.Unit     `json:"unit"`
	Declaration *extract.Declaration `json:"declaration,omitempty"`
}

// Format selects how results are written.
type Format string

const (
	FormatJSON   Format = "json"
	FormatMarkup Format = "markup"
)

// Formats returns every output format.
func Formats() []Format {
	return []Format{FormatJSON, FormatMarkup}
}

// ParseFormat parses an output format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: unknown format %q", ErrInvalidOption, s)
}

// Write writes files to w in the given format.
func Write(w io.Writer, files []*File, format Format) error {
	var err error

	switch format {
	case FormatJSON:
		err = writeJSON(w, files)
	case FormatMarkup:
		err = writeMarkup(w, files)
	default:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidOption, format)
	}

	if err != nil {
		return fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return nil
}

func writeJSON(w io.Writer, files []*File) error {
	if files == nil {
		files = []*File{}
	}

	// Leave markup unescaped.
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	return enc.Encode(files)
}

// writeMarkup writes a listing with one block per unit:
//
//	path:line dialect [kind name]
//	  summary: ...
//	  body: ...
func writeMarkup(w io.Writer, files []*File) error {
	var sb strings.Builder

	for _, f := range files {
		for _, e := range f.Entries {
			fmt.Fprintf(&sb, "%s:%d %s", f.Path, e.Unit.Line, e.Unit.Dialect)

			if d := e.Declaration; d != nil {
				fmt.Fprintf(&sb, " [%s %s]", d.Kind, d.Name)
			}

			sb.WriteByte('\n')
			writeUnit(&sb, e.Unit, "  ")
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func writeUnit(sb *strings.Builder, u *doccomment.Unit, indent string) {
	if u.Title != "" {
		fmt.Fprintf(sb, "%stitle: %s\n", indent, u.Title)
	}

	if u.Summary != "" {
		fmt.Fprintf(sb, "%ssummary: %s\n", indent, u.Summary)
	}

	if u.Body != "" {
		fmt.Fprintf(sb, "%sbody: %s\n", indent, u.Body)
	}

	if len(u.Tags) > 0 {
		fmt.Fprintf(sb, "%stags: %s\n", indent, strings.Join(u.Tags, ","))
	}

	for _, e := range u.Embedded {
		writeUnit(sb, e, indent+"  ")
	}
}

// Schema returns the JSON Schema of the JSON output.
//
// Embedded units never embed further units, so the recursive unit type is
// described to one level.
func Schema() (*jsonschema.Schema, error) {
	units := reflect.TypeFor[[]*doccomment.Unit]()

	embedded, err := jsonschema.For[doccomment.Unit](&jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			units: {Type: "array", MaxItems: jsonschema.Ptr(0)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("reflect schema: %w", err)
	}

	schema, err := jsonschema.For[[]*File](&jsonschema.ForOptions{
		TypeSchemas: map[reflect.Type]*jsonschema.Schema{
			units: {Type: "array", Items: embedded},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("reflect schema: %w", err)
	}

	// The output is always an array, never null.
	schema.Types = nil
	schema.Type = "array"
	schema.Title = "ndoc output"
	schema.Description = "Documentation units extracted from source comments."

	return schema, nil
}
