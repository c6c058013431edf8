// Package views renders the site's HTML pages from embedded templates.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"editfolio.dev/internal/services"
)

//go:embed templates
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Pages
const (
	HomePage  = "home.html"
	OrderPage = "order.html"
)

// Home is the data behind the landing page
type Home struct {
	Hero         services.Hero
	Gallery      services.Gallery
	Testimonials []services.TestimonialView
}

// OrderForm echoes submitted values back into the order form
type OrderForm struct {
	Name         string
	BusinessName string
	Budget       string
	Description  string
}

// Order is the data behind the order page
type Order struct {
	Hero    services.Hero
	Budgets []string
	Form    OrderForm
	Error   string
}

// Renderer holds one parsed template set per page
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the layout and partials
func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, page := range []string{HomePage, OrderPage} {
		t, err := template.New(page).ParseFS(templateFS,
			"templates/layout.html",
			"templates/partials/*.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", page, err)
		}
		r.pages[page] = t
	}
	return r, nil
}

// Render executes page into w
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	if err := t.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}
	return nil
}

// Static returns the embedded asset tree rooted at static/
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic("embedded static directory missing: " + err.Error())
	}
	return sub
}
