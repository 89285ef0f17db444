package gallery

import (
	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

// ComponentsPage shows reusable components with hover, focus, and
// responsive styles, exercising the whole style registry surface.
func ComponentsPage() *render.Document {
	return &render.Document{
		Title: "Components — vellum gallery",
		Body: markup.Main(
			markup.Style("font-family", "system-ui, sans-serif"),
			markup.Style("max-width", "48rem"),
			markup.Style("margin", "0 auto"),
			markup.Style("padding", "2rem 1rem"),
			navBar(),
			markup.H1(markup.Text("Components")),
			buttonRow(),
			cardGrid(),
		),
	}
}

func navBar() *markup.Node {
	links := []struct {
		href  string
		label string
	}{
		{"/", "Home"},
		{"/components", "Components"},
		{"/email", "Email"},
	}

	return markup.Nav(
		markup.Style("display", "flex"),
		markup.Style("gap", "1rem"),
		markup.Style("margin-bottom", "2rem"),
		markup.Map(links, func(l struct {
			href  string
			label string
		}, _ int) *markup.Node {
			return markup.A(
				markup.Href(l.href),
				markup.Style("color", "#0b5fff"),
				markup.Style("text-decoration", "none"),
				markup.Hover("text-decoration", "underline"),
				markup.Focus("outline", "2px solid #0b5fff"),
				markup.Text(l.label),
			)
		}),
	)
}

// button is a styled button component.
type button struct {
	Label   string
	Primary bool
}

// Render implements markup.Component.
func (b button) Render() *markup.Node {
	bg, fg := "#f0f0f0", "#222"
	if b.Primary {
		bg, fg = "#0b5fff", "#fff"
	}
	return markup.Button(
		markup.Type("button"),
		markup.Style("background", bg),
		markup.Style("color", fg),
		markup.Style("border", "none"),
		markup.Style("border-radius", "6px"),
		markup.Style("padding", "0.5rem 1rem"),
		markup.Hover("opacity", "0.85"),
		markup.Active("transform", "translateY(1px)"),
		markup.Text(b.Label),
	)
}

func buttonRow() *markup.Node {
	return markup.Section(
		markup.H2(markup.Text("Buttons")),
		markup.Div(
			markup.Style("display", "flex"),
			markup.Style("gap", "0.5rem"),
			button{Label: "Primary", Primary: true},
			button{Label: "Default"},
			markup.Button(markup.Type("button"), markup.Disabled(), markup.Text("Disabled")),
		),
	)
}

// card is a bordered content container.
type card struct {
	Title string
	Body  string
}

// Render implements markup.Component.
func (c card) Render() *markup.Node {
	return markup.Article(
		markup.Style("border", "1px solid #e2e2e2"),
		markup.Style("border-radius", "8px"),
		markup.Style("padding", "1rem"),
		markup.Hover("box-shadow", "0 2px 8px rgba(0,0,0,0.1)"),
		markup.H3(markup.Style("margin-top", "0"), markup.Text(c.Title)),
		markup.P(markup.Style("color", "#666"), markup.Text(c.Body)),
	)
}

func cardGrid() *markup.Node {
	cards := []card{
		{"Escaping", "Text and attribute values escape exactly what the context needs."},
		{"Streaming", "Documents stream progressively with the stylesheet trailing the body."},
		{"Publishing", "Rendered pages go to disk or S3 with one call."},
	}

	return markup.Section(
		markup.H2(markup.Text("Cards")),
		markup.Div(
			markup.Style("display", "grid"),
			markup.Style("grid-template-columns", "repeat(3, 1fr)"),
			markup.Style("gap", "1rem"),
			markup.MediaStyle("(max-width: 640px)", "grid-template-columns", "1fr"),
			markup.Map(cards, func(c card, _ int) *markup.Node {
				return markup.Fragment(c)
			}),
		),
	)
}
