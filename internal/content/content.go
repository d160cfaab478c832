// Package content loads the markdown sources for the site's pages and renders
// them to HTML.
package content

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/nav"
)

// Page is the rendered content for one menu entry.
type Page struct {
	Entry       nav.Entry
	Heading     string        // page heading; entry title unless the markdown leads with an H1
	Body        template.HTML // rendered markdown body
	Source      string        // path of the markdown source, empty when placeholder
	Placeholder bool          // true when no source file existed
}

// Loader renders markdown page sources from a content directory.
type Loader struct {
	dir string
	md  goldmark.Markdown
}

// NewLoader creates a loader for the given content directory.
func NewLoader(dir string) *Loader {
	return &Loader{
		dir: dir,
		md: goldmark.New(
			// Page sources are trusted local files; allow inline HTML
			// (publication lists embed raw markup).
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// LoadAll loads content for every menu entry in table order. Missing source
// files degrade to placeholder pages with a warning, never an error.
func (l *Loader) LoadAll() ([]Page, error) {
	entries := nav.Entries()
	pages := make([]Page, 0, len(entries))
	for _, e := range entries {
		page, err := l.Load(e)
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

// Load loads and renders the content for a single menu entry.
func (l *Loader) Load(e nav.Entry) (Page, error) {
	source := filepath.Join(l.dir, e.Slug()+".md")

	raw, err := os.ReadFile(source)
	if os.IsNotExist(err) {
		slog.Warn("No content file for page, using placeholder", logfields.Page(e.File), logfields.Source(source))
		return placeholder(e), nil
	}
	if err != nil {
		return Page{}, sgerrors.WrapError(err, sgerrors.CategoryContent, "failed to read page source").
			WithContext("source", source)
	}

	heading, body := splitHeading(raw, e.Title)

	var buf bytes.Buffer
	if err := l.md.Convert(body, &buf); err != nil {
		return Page{}, sgerrors.WrapError(err, sgerrors.CategoryContent, "failed to render markdown").
			WithContext("source", source)
	}

	return Page{
		Entry:   e,
		Heading: heading,
		Body:    template.HTML(buf.String()),
		Source:  source,
	}, nil
}

// splitHeading promotes a leading "# Heading" line to the page heading and
// strips it from the body. Anything else leaves the default heading in place.
func splitHeading(raw []byte, fallback string) (string, []byte) {
	trimmed := bytes.TrimLeft(raw, "\n\r\t ")
	if !bytes.HasPrefix(trimmed, []byte("# ")) {
		return fallback, raw
	}
	line, rest, found := bytes.Cut(trimmed, []byte("\n"))
	heading := strings.TrimSpace(string(line[2:]))
	if heading == "" {
		return fallback, raw
	}
	if !found {
		rest = nil
	}
	return heading, rest
}

func placeholder(e nav.Entry) Page {
	body := fmt.Sprintf("<p>Content for %s has not been written yet.</p>\n", e.Title)
	return Page{
		Entry:       e,
		Heading:     e.Title,
		Body:        template.HTML(body),
		Placeholder: true,
	}
}
