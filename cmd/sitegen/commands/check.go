package commands

import (
	"fmt"

	"git.home.luguber.info/inful/sitegen/internal/config"
	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
	"git.home.luguber.info/inful/sitegen/internal/linkcheck"
)

// CheckCmd implements the 'check' command.
type CheckCmd struct {
	Output string `short:"o" help:"Site directory to check (default ./site)"`
}

func (c *CheckCmd) Run(_ *Global, root *CLI) error {
	cfg, err := config.Load(root.Config)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	ConfigureLogging(cfg, root.Verbose)

	siteDir := ResolveOutputDir(c.Output, cfg)
	report, err := linkcheck.NewChecker(siteDir, nil).Check()
	if err != nil {
		return err
	}

	fmt.Printf("Checked %d links across %d pages\n", report.LinksChecked, report.PagesChecked)
	if report.OK() {
		fmt.Println("No broken internal links")
		return nil
	}

	for _, b := range report.Broken {
		fmt.Printf("  %s -> %s\n", b.SourcePage, b.Target)
	}
	return sgerrors.New(sgerrors.CategoryValidation, sgerrors.SeverityError,
		fmt.Sprintf("%d broken internal links", len(report.Broken)))
}
