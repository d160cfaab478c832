package site

import (
	"bytes"
	"embed"
	"html/template"

	sgerrors "git.home.luguber.info/inful/sitegen/internal/errors"
)

//go:embed templates
var templateFS embed.FS

var layoutTemplate = template.Must(template.ParseFS(templateFS, "templates/layout.html"))

// layoutData is the data the layout template is executed with.
type layoutData struct {
	SiteTitle    string
	Author       string
	Description  string
	RelativePath string
	Nav          template.HTML
	Heading      string
	Body         template.HTML
}

func renderLayout(data layoutData) ([]byte, error) {
	var buf bytes.Buffer
	if err := layoutTemplate.Execute(&buf, data); err != nil {
		return nil, sgerrors.WrapError(err, sgerrors.CategoryRender, "failed to execute page layout")
	}
	return buf.Bytes(), nil
}
