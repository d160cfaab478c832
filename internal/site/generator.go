// Package site renders the full static site: one HTML page per navigation
// entry, written through a staging directory so the output is never left
// half-built.
package site

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/content"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/logfields"
	"git.home.luguber.info/inful/sitegen/internal/metrics"
	"git.home.luguber.info/inful/sitegen/internal/nav"
)

// Generator handles site generation
type Generator struct {
	config    *config.Config
	outputDir string // final output dir
	loader    *content.Loader
	recorder  metrics.Recorder
}

// Result summarizes a completed build.
type Result struct {
	BuildID      string
	Rendered     int
	Skipped      int
	Placeholders int
	Duration     time.Duration
	OutputDir    string
}

// NewGenerator creates a generator for the given configuration. A nil recorder
// disables metrics.
func NewGenerator(cfg *config.Config, outputDir string, recorder metrics.Recorder) *Generator {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Generator{
		config:    cfg,
		outputDir: outputDir,
		loader:    content.NewLoader(cfg.Content.Directory),
		recorder:  recorder,
	}
}

// Build renders every page and writes the output tree. Pages whose rendered
// bytes match the existing output are skipped.
func (g *Generator) Build(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{
		BuildID:   uuid.NewString(),
		OutputDir: g.outputDir,
	}

	slog.Info("Starting site build", logfields.BuildID(result.BuildID), logfields.Path(g.outputDir))

	pages, err := g.loader.LoadAll()
	if err != nil {
		g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return nil, err
	}

	if g.config.Output.Clean {
		if err := os.RemoveAll(g.outputDir); err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to clean output directory").
				WithContext("output", g.outputDir)
		}
	}

	stageDir, err := os.MkdirTemp(filepath.Dir(g.outputDir), ".sitegen-stage-*")
	if err != nil {
		g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return nil, sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to create staging directory")
	}
	defer func() {
		_ = os.RemoveAll(stageDir)
	}()

	for i, page := range pages {
		if err := ctx.Err(); err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, sgerrors.Wrap(err, sgerrors.CategoryRender, sgerrors.SeverityError, "build canceled")
		}
		rendered, err := g.renderPage(i, page)
		if err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(stageDir, page.Entry.File), rendered, 0o644); err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to stage page").
				WithContext("page", page.Entry.File)
		}
		if page.Placeholder {
			result.Placeholders++
		}
	}

	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return nil, sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to create output directory")
	}

	for _, page := range pages {
		moved, err := promote(filepath.Join(stageDir, page.Entry.File), filepath.Join(g.outputDir, page.Entry.File))
		if err != nil {
			g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
			return nil, err
		}
		if moved {
			result.Rendered++
			slog.Debug("Rendered page", logfields.Page(page.Entry.File))
		} else {
			result.Skipped++
			slog.Debug("Skipped unchanged page", logfields.Page(page.Entry.File))
		}
	}

	if err := g.copyStatic(); err != nil {
		g.recorder.IncBuildOutcome(metrics.OutcomeFailed)
		return nil, err
	}

	result.Duration = time.Since(start)
	g.recorder.ObserveBuildDuration(result.Duration)
	g.recorder.AddPagesRendered(result.Rendered)
	g.recorder.AddPagesSkipped(result.Skipped)
	if result.Placeholders > 0 {
		g.recorder.IncBuildOutcome(metrics.OutcomeWarning)
	} else {
		g.recorder.IncBuildOutcome(metrics.OutcomeSuccess)
	}

	slog.Info("Site build complete",
		logfields.BuildID(result.BuildID),
		slog.Int("rendered", result.Rendered),
		slog.Int("skipped", result.Skipped),
		slog.Int("placeholders", result.Placeholders),
		logfields.DurationMS(float64(result.Duration.Milliseconds())))

	return result, nil
}

// renderPage renders a single page through the layout. The page's own position
// selects the active navigation entry; all pages sit at the site root, so the
// navigation is rendered with an empty relative path.
func (g *Generator) renderPage(position int, page content.Page) ([]byte, error) {
	return renderLayout(layoutData{
		SiteTitle:    g.config.Site.Title,
		Author:       g.config.Site.Author,
		Description:  g.config.Site.Description,
		RelativePath: "",
		Nav:          template.HTML(nav.Render(position, "")),
		Heading:      page.Heading,
		Body:         page.Body,
	})
}

// promote moves a staged file into the output dir unless the existing file has
// identical content. Returns whether the file was written.
func promote(staged, final string) (bool, error) {
	newData, err := os.ReadFile(staged)
	if err != nil {
		return false, sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to read staged page")
	}

	if oldData, err := os.ReadFile(final); err == nil {
		if hashBytes(oldData) == hashBytes(newData) {
			return false, nil
		}
	}

	if err := os.Rename(staged, final); err != nil {
		// Cross-device staging falls back to copying.
		if werr := os.WriteFile(final, newData, 0o644); werr != nil {
			return false, sgerrors.WrapError(werr, sgerrors.CategoryFileSystem, "failed to write page").
				WithContext("page", final)
		}
	}
	return true, nil
}

func hashBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// copyStatic copies the static asset directory into the output tree when it exists.
func (g *Generator) copyStatic() error {
	srcDir := g.config.Content.StaticDir
	info, err := os.Stat(srcDir)
	if os.IsNotExist(err) || (err == nil && !info.IsDir()) {
		return nil
	}
	if err != nil {
		return sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to stat static directory")
	}

	destDir := filepath.Join(g.outputDir, "static")
	return filepath.WalkDir(srcDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return sgerrors.WrapError(err, sgerrors.CategoryFileSystem, "failed to read static asset").
				WithContext("asset", path)
		}
		return os.WriteFile(dest, data, 0o644)
	})
}
