package gallery

import (
	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

// HomePage is the gallery landing page.
func HomePage() *render.Document {
	return &render.Document{
		Title: "vellum gallery",
		Head: markup.Meta(
			markup.Name("description"),
			markup.Content("An HTML rendering engine for Go"),
		),
		Body: markup.Main(
			markup.Style("font-family", "system-ui, sans-serif"),
			markup.Style("max-width", "42rem"),
			markup.Style("margin", "0 auto"),
			markup.Style("padding", "2rem 1rem"),
			hero(),
			featureList(),
			siteFooter(),
		),
	}
}

func hero() *markup.Node {
	return markup.Header(
		markup.H1(
			markup.Style("font-size", "2.5rem"),
			markup.Style("margin-bottom", "0.5rem"),
			markup.Text("vellum"),
		),
		markup.P(
			markup.Style("color", "#555"),
			markup.Style("font-size", "1.1rem"),
			markup.Text("Declarative markup trees, deterministic stylesheets, progressive streaming."),
		),
	)
}

func featureList() *markup.Node {
	features := []struct {
		title string
		blurb string
	}{
		{"Deterministic classes", "Every style rule gets a stable, reproducible class name."},
		{"Grouped stylesheets", "Media queries collapse into one block per condition."},
		{"Byte-equal streaming", "Chunked output concatenates to the exact sync render."},
	}

	return markup.Section(
		markup.Ul(
			markup.Style("list-style", "none"),
			markup.Style("padding", "0"),
			markup.Map(features, func(f struct {
				title string
				blurb string
			}, _ int) *markup.Node {
				return markup.Li(
					markup.Style("padding", "1rem"),
					markup.Style("border", "1px solid #e2e2e2"),
					markup.Style("border-radius", "8px"),
					markup.Style("margin-bottom", "0.75rem"),
					markup.Strong(markup.Text(f.title)),
					markup.P(
						markup.Style("margin", "0.25rem 0 0"),
						markup.Style("color", "#666"),
						markup.Text(f.blurb),
					),
				)
			}),
		),
	)
}

func siteFooter() *markup.Node {
	return markup.Footer(
		markup.Style("margin-top", "3rem"),
		markup.Style("color", "#999"),
		markup.Style("font-size", "0.875rem"),
		markup.P(
			markup.Text("Rendered by vellum. View the "),
			markup.A(
				markup.Href("/components"),
				markup.Hover("text-decoration", "underline"),
				markup.Text("component gallery"),
			),
			markup.Text("."),
		),
	)
}
