package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/sitegen/internal/config"
	"git.home.luguber.info/inful/sitegen/internal/nav"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force  bool   `help:"Overwrite existing configuration file"`
	Title  string `help:"Site title" default:"Personal Site"`
	Author string `help:"Site author, used in the page header"`
}

func (i *InitCmd) Run(_ *Global, root *CLI) error {
	fmt.Println("Initializing sitegen project")

	author := i.Author
	if author != "" && author == strings.ToLower(author) {
		author = cases.Title(language.English).String(author)
	}

	fmt.Printf("Writing configuration to %s\n", root.Config)
	if err := config.Init(root.Config, i.Force, i.Title, author); err != nil {
		return err
	}

	if err := scaffoldContent("content"); err != nil {
		return err
	}
	if err := scaffoldStatic("static"); err != nil {
		return err
	}

	fmt.Println("Initialized successfully")
	return nil
}

// scaffoldContent creates the content directory with a markdown stub per page.
// Existing files are left alone.
func scaffoldContent(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create content directory: %w", err)
	}

	for _, e := range nav.Entries() {
		path := filepath.Join(dir, e.Slug()+".md")
		if _, err := os.Stat(path); err == nil {
			continue
		}
		stub := fmt.Sprintf("# %s\n\nWrite the %s page here.\n", e.Title, strings.ToLower(e.Title))
		if err := os.WriteFile(path, []byte(stub), 0o644); err != nil {
			return fmt.Errorf("write content stub %s: %w", path, err)
		}
	}
	return nil
}

const starterStylesheet = `body {
  max-width: 48rem;
  margin: 0 auto;
  padding: 1rem;
  font-family: Georgia, serif;
  line-height: 1.6;
}
ul.nav {
  list-style: none;
  padding: 0;
}
ul.nav li {
  display: inline-block;
  margin-right: 1rem;
}
ul.nav .active {
  font-weight: bold;
}
`

// scaffoldStatic creates the static asset directory with a starter stylesheet,
// so the generated pages' stylesheet link resolves from the first build.
func scaffoldStatic(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create static directory: %w", err)
	}

	path := filepath.Join(dir, "style.css")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.WriteFile(path, []byte(starterStylesheet), 0o644); err != nil {
		return fmt.Errorf("write stylesheet %s: %w", path, err)
	}
	return nil
}
