package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/MKhiriev/go-app-scaffold/models"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageIndex = "index"
	pageAbout = "about"
	pageUsers = "users"
	pageItems = "items"
)

// renderer holds one parsed template set per page, each combining the shared
// layout with the page's "content" block.
type renderer struct {
	pages map[string]*template.Template
}

func newRenderer() (*renderer, error) {
	r := &renderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{pageIndex, pageAbout, pageUsers, pageItems} {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("error parsing %s template: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// render executes the named page into a buffer so that a failing template
// never leaves a half-written response behind.
func (r *renderer) render(name string, data models.PageData) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errUnknownPage, name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return nil, fmt.Errorf("error rendering %s template: %w", name, err)
	}
	return buf.Bytes(), nil
}
