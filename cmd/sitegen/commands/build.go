package commands

import (
	"context"
	"fmt"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" help:"Output directory for generated site (default ./site)"`
}

func (b *BuildCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ConfigureLogging(cfg, root.Verbose)

	outputDir := ResolveOutputDir(b.Output, cfg)
	return RunBuild(context.Background(), cfg, outputDir)
}

// RunBuild performs one build and records the outcome.
func RunBuild(ctx context.Context, cfg *config.Config, outputDir string) error {
	generator := site.NewGenerator(cfg, outputDir, nil)

	result, err := generator.Build(ctx)
	RecordBuild(ctx, cfg, result, err)
	if err != nil {
		return err
	}

	PublishBuildEvent(cfg, result)

	fmt.Printf("Built %d pages (%d unchanged) into %s\n", result.Rendered, result.Skipped, result.OutputDir)
	if result.Placeholders > 0 {
		fmt.Printf("%d pages have no content yet; add markdown files under %s\n", result.Placeholders, cfg.Content.Directory)
	}
	return nil
}
