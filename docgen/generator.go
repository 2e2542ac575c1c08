package docgen

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"go.jacobcolvin.com/ndoc/comment"
	"go.jacobcolvin.com/ndoc/doccomment"
	"go.jacobcolvin.com/ndoc/extract"
	"go.jacobcolvin.com/ndoc/linefinder"
	"go.jacobcolvin.com/ndoc/locale"
)

// Sentinel errors returned by the generator.
var (
	ErrInvalidOption = errors.New("invalid option")
	ErrReadInput     = errors.New("read input")
	ErrWriteOutput   = errors.New("write output")
)

// Generator turns source comments into documentation units.
//
// A Generator is safe for concurrent use.
type Generator struct {
	logger     *slog.Logger
	cache      *lru.Cache[cacheKey, *doccomment.Unit]
	parsers    []doccomment.Parser
	workers    int
	lineFinder bool
	embedLists bool
}

// Option configures a Generator.
type Option func(*Generator)

// NewGenerator creates a Generator with the given options.
//
// Without [WithParsers], it uses the javadoc, xml, and plain dialects with
// English headings.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		logger:     slog.New(slog.DiscardHandler),
		workers:    4,
		lineFinder: true,
		embedLists: true,
	}

	for _, opt := range opts {
		opt(g)
	}

	if len(g.parsers) == 0 {
		env := doccomment.Env{Localizer: locale.MustLoad("en")}

		g.parsers, _ = DefaultRegistry().New(env, DefaultDialects...)
	}

	return g
}

// WithParsers sets the dialect parsers, in priority order.
func WithParsers(parsers ...doccomment.Parser) Option {
	return func(g *Generator) {
		g.parsers = parsers
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithWorkers sets how many files are processed at once.
func WithWorkers(n int) Option {
	return func(g *Generator) {
		g.workers = max(n, 1)
	}
}

// WithCacheSize enables a cache of parse results holding up to n
// comments. Zero disables it.
func WithCacheSize(n int) Option {
	return func(g *Generator) {
		g.cache = nil

		if n > 0 {
			// New only fails for non-positive sizes.
			g.cache, _ = lru.New[cacheKey, *doccomment.Unit](n)
		}
	}
}

// WithLineFinder sets whether decorative comment lines are detected and
// removed before parsing.
func WithLineFinder(enabled bool) Option {
	return func(g *Generator) {
		g.lineFinder = enabled
	}
}

// WithEmbedLists sets whether definition lists in comments on enums become
// embedded units, one per enum value.
func WithEmbedLists(enabled bool) Option {
	return func(g *Generator) {
		g.embedLists = enabled
	}
}

// Comment converts one extracted comment. It returns false when no parser
// produced a unit.
func (g *Generator) Comment(c extract.Comment) (*doccomment.Unit, bool) {
	key := cacheKey{text: c.Text, trailing: c.Trailing}

	u, ok := g.cached(key)
	if !ok {
		u, ok = g.parse(c)
		if !ok {
			return nil, false
		}

		if g.cache != nil {
			g.cache.Add(key, u)
		}
	}

	u = cloneUnit(u, c.Line)

	if c.Decl != nil {
		u.Access = c.Decl.Access

		if c.Decl.Kind == extract.KindEnum && g.embedLists && doccomment.ReinterpretListAsEmbedded(u) {
			g.logger.Debug("embedded list items",
				slog.String("name", c.Decl.Name),
				slog.Int("count", len(u.Embedded)),
			)
		}
	}

	return u, true
}

func (g *Generator) cached(key cacheKey) (*doccomment.Unit, bool) {
	if g.cache == nil {
		return nil, false
	}

	u, ok := g.cache.Get(key)
	if ok {
		g.logger.Debug("cache hit", slog.Int("line", u.Line))
	}

	return u, ok
}

func (g *Generator) parse(c extract.Comment) (*doccomment.Unit, bool) {
	span, err := comment.Parse(c.Text, c.Line)
	if err != nil {
		g.logger.Debug("skipping comment",
			slog.Int("line", c.Line),
			slog.Any("error", err),
		)

		return nil, false
	}

	if g.lineFinder {
		switch {
		case c.Trailing:
			linefinder.MarkSimpleLeftLines(span)
		case !linefinder.MarkTextBoxes(span):
			linefinder.MarkSimpleLeftLines(span)
		}
	}

	for _, p := range g.parsers {
		if !p.Accepts(span.Dialect()) {
			continue
		}

		u, ok := p.Parse(span)
		if !ok {
			continue
		}

		g.logger.Debug("parsed comment",
			slog.Int("line", c.Line),
			slog.String("dialect", p.Name()),
		)

		return u, true
	}

	return nil, false
}

// Source converts every comment in src, which is written in lang.
func (g *Generator) Source(ctx context.Context, path string, lang extract.Language, src []byte) (*File, error) {
	comments, err := extract.Extract(ctx, lang, src)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	f := &File{Path: path, Language: lang, Entries: []Entry{}}

	for _, c := range comments {
		u, ok := g.Comment(c)
		if !ok {
			continue
		}

		f.Entries = append(f.Entries, Entry{Unit: u, Declaration: c.Decl})
	}

	return f, nil
}

// Files converts the files at paths. Directories are walked and files in
// unsupported languages inside them are skipped. Results are in path
// order.
func (g *Generator) Files(ctx context.Context, paths ...string) ([]*File, error) {
	files, err := g.collect(paths)
	if err != nil {
		return nil, err
	}

	out := make([]*File, len(files))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)

	for i, path := range files {
		eg.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrReadInput, err)
			}

			f, err := g.Source(ctx, path, extract.DetectLanguage(path), src)
			if err != nil {
				return err
			}

			out[i] = f

			return nil
		})
	}

	err = eg.Wait()
	if err != nil {
		return nil, err
	}

	return out, nil
}

// collect expands directories into the supported files they contain.
func (g *Generator) collect(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		if !info.IsDir() {
			if extract.DetectLanguage(path) == extract.LanguageUnknown {
				return nil, fmt.Errorf("%w: %s: %w", ErrReadInput, path, extract.ErrUnsupportedLanguage)
			}

			files = append(files, path)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			if extract.DetectLanguage(p) == extract.LanguageUnknown {
				g.logger.Debug("skipping file", slog.String("path", p))

				return nil
			}

			files = append(files, p)

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}
