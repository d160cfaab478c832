package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/sitegen/internal/nav"
)

func writeSource(t *testing.T, dir, name, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
}

func TestLoadRendersMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "teaching.md", "Courses I teach:\n\n- **CS101**\n- CS404\n")

	page, err := NewLoader(dir).Load(nav.Entry{File: "teaching.html", Title: "Teaching"})
	require.NoError(t, err)

	assert.Equal(t, "Teaching", page.Heading)
	assert.False(t, page.Placeholder)
	assert.Contains(t, string(page.Body), "<strong>CS101</strong>")
	assert.Contains(t, string(page.Body), "<li>CS404</li>")
}

func TestLoadPromotesLeadingHeading(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "home.md", "# Welcome!\n\nHello there.\n")

	page, err := NewLoader(dir).Load(nav.Entry{File: "index.html", Title: "Home"})
	require.NoError(t, err)

	assert.Equal(t, "Welcome!", page.Heading)
	assert.Contains(t, string(page.Body), "<p>Hello there.</p>")
	assert.NotContains(t, string(page.Body), "Welcome!")
}

func TestLoadMissingSourceYieldsPlaceholder(t *testing.T) {
	page, err := NewLoader(t.TempDir()).Load(nav.Entry{File: "awards.html", Title: "Awards"})
	require.NoError(t, err)

	assert.True(t, page.Placeholder)
	assert.Equal(t, "Awards", page.Heading)
	assert.Contains(t, string(page.Body), "Awards")
}

func TestLoadAllCoversEveryMenuEntry(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "projects.md", "Active projects.\n")

	pages, err := NewLoader(dir).LoadAll()
	require.NoError(t, err)
	require.Len(t, pages, nav.Len())

	for i, e := range nav.Entries() {
		assert.Equal(t, e.File, pages[i].Entry.File, "page order must match menu order")
	}

	placeholders := 0
	for _, p := range pages {
		if p.Placeholder {
			placeholders++
		}
	}
	assert.Equal(t, nav.Len()-1, placeholders)
}

func TestLoadKeepsInlineHTML(t *testing.T) {
	dir := t.TempDir()
	writeSource(t, dir, "bibbase.md", "<div id=\"bibbase\"></div>\n")

	page, err := NewLoader(dir).Load(nav.Entry{File: "bibbase.html", Title: "BibBase"})
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(page.Body), `<div id="bibbase">`))
}
