// Package gallery holds the demo pages shipped with the CLI. They
// exercise the markup DSL end to end and double as integration
// fixtures for the render, server, and publish layers.
package gallery

import (
	"github.com/vellum-dev/vellum/pkg/render"
)

// Page is one named demo page.
type Page struct {
	// Name is the page identifier used by the CLI.
	Name string

	// Path is the output path for publishing and the serve route.
	Path string

	// Doc builds a fresh document. Built per call so every render
	// starts from a clean tree.
	Doc func() *render.Document
}

// Pages lists every demo page in serving order.
func Pages() []Page {
	return []Page{
		{Name: "home", Path: "/", Doc: HomePage},
		{Name: "components", Path: "/components", Doc: ComponentsPage},
		{Name: "email", Path: "/email", Doc: EmailPage},
	}
}

// ByName returns the named page, or false when it does not exist.
func ByName(name string) (Page, bool) {
	for _, p := range Pages() {
		if p.Name == name {
			return p, true
		}
	}
	return Page{}, false
}

// OutputKey maps a page to its published file name.
func (p Page) OutputKey() string {
	if p.Path == "/" {
		return "index.html"
	}
	return p.Path[1:] + ".html"
}
