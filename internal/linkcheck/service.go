package linkcheck

import (
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
)

// BrokenLink is one internal link whose target does not exist in the site.
type BrokenLink struct {
	SourcePage string // page the link appears on, relative to the site root
	Target     string // the raw link target
	Text       string // link text, when any
}

// Report is the outcome of checking a generated site.
type Report struct {
	PagesChecked int
	LinksChecked int
	Broken       []BrokenLink
}

// OK reports whether no broken links were found.
func (r *Report) OK() bool { return len(r.Broken) == 0 }

// Checker verifies internal links in a generated site directory.
type Checker struct {
	siteDir  string
	recorder metrics.Recorder
}

// NewChecker creates a checker for the given site output directory.
func NewChecker(siteDir string, recorder metrics.Recorder) *Checker {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Checker{siteDir: siteDir, recorder: recorder}
}

// Check walks every generated HTML page and verifies that each internal link
// resolves to a file under the site directory.
func (c *Checker) Check() (*Report, error) {
	report := &Report{}

	err := filepath.WalkDir(c.siteDir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".html") {
			return nil
		}

		rel, err := filepath.Rel(c.siteDir, p)
		if err != nil {
			return err
		}

		links, err := ExtractLinks(p)
		if err != nil {
			return err
		}

		report.PagesChecked++
		for _, link := range links {
			if !link.IsInternal {
				continue
			}
			report.LinksChecked++
			if !c.resolves(rel, link.URL) {
				report.Broken = append(report.Broken, BrokenLink{
					SourcePage: rel,
					Target:     link.URL,
					Text:       link.Text,
				})
			}
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sgerrors.New(sgerrors.CategoryFileSystem, sgerrors.SeverityFatal, "site directory does not exist; run build first").
				WithContext("site_dir", c.siteDir)
		}
		return nil, sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to walk site directory")
	}

	sort.Slice(report.Broken, func(i, j int) bool {
		if report.Broken[i].SourcePage == report.Broken[j].SourcePage {
			return report.Broken[i].Target < report.Broken[j].Target
		}
		return report.Broken[i].SourcePage < report.Broken[j].SourcePage
	})

	c.recorder.IncBrokenLinks(len(report.Broken))
	for _, b := range report.Broken {
		slog.Warn("Broken internal link", "page", b.SourcePage, "target", b.Target)
	}

	return report, nil
}

// resolves reports whether an internal link target exists relative to the page
// that references it. Root-relative targets resolve from the site root.
func (c *Checker) resolves(sourcePage, target string) bool {
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	clean := u.Path
	if clean == "" {
		// Fragment-only or query-only link to the page itself.
		return true
	}

	var resolved string
	if path.IsAbs(clean) {
		resolved = filepath.Join(c.siteDir, filepath.FromSlash(strings.TrimPrefix(clean, "/")))
	} else {
		resolved = filepath.Join(c.siteDir, filepath.Dir(filepath.FromSlash(sourcePage)), filepath.FromSlash(clean))
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return false
	}
	if info.IsDir() {
		// Directory links resolve when an index page exists.
		_, err = os.Stat(filepath.Join(resolved, "index.html"))
		return err == nil
	}
	return true
}
