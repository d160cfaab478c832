package linkcheck

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePage(t *testing.T, dir, name, body string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestExtractLinksFromReader(t *testing.T) {
	doc := `<html><body>
<ul class="nav">
<li><a href="index.html">Home</a></li>
<li class="active"><a class="active" href="awards.html">Awards</a></li>
</ul>
<a href="https://example.org/pubs">external</a>
<a href="mailto:jane@example.org">mail</a>
<a href="#top">top</a>
<img src="static/photo.jpg">
</body></html>`

	links, err := ExtractLinksFromReader(strings.NewReader(doc))
	require.NoError(t, err)

	var internal, external int
	for _, l := range links {
		if l.IsInternal {
			internal++
		} else {
			external++
		}
	}
	assert.Equal(t, 3, internal, "index, awards, photo")
	assert.Equal(t, 3, external, "https, mailto, fragment")
}

func TestCheckPassesForCompleteSite(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", `<a href="awards.html">Awards</a>`)
	writePage(t, dir, "awards.html", `<a href="index.html">Home</a>`)

	report, err := NewChecker(dir, nil).Check()
	require.NoError(t, err)

	assert.True(t, report.OK())
	assert.Equal(t, 2, report.PagesChecked)
	assert.Equal(t, 2, report.LinksChecked)
}

func TestCheckReportsMissingTargets(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "index.html", `<a href="missing.html">gone</a><a href="awards.html">ok</a>`)
	writePage(t, dir, "awards.html", `ok`)

	report, err := NewChecker(dir, nil).Check()
	require.NoError(t, err)

	require.Len(t, report.Broken, 1)
	assert.Equal(t, "index.html", report.Broken[0].SourcePage)
	assert.Equal(t, "missing.html", report.Broken[0].Target)
	assert.Equal(t, "gone", report.Broken[0].Text)
}

func TestCheckResolvesRootRelativeLinks(t *testing.T) {
	dir := t.TempDir()
	writePage(t, dir, "docs/guide.html", `<a href="/index.html">Home</a><a href="/static/app.css">css</a>`)
	writePage(t, dir, "index.html", `ok`)

	report, err := NewChecker(dir, nil).Check()
	require.NoError(t, err)

	require.Len(t, report.Broken, 1)
	assert.Equal(t, "/static/app.css", report.Broken[0].Target)
}

func TestCheckMissingSiteDir(t *testing.T) {
	_, err := NewChecker(filepath.Join(t.TempDir(), "nope"), nil).Check()
	assert.Error(t, err)
}
