package gallery

import (
	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

// EmailPage is a transactional-email sample meant for the Email
// preset, where every declaration carries !important.
func EmailPage() *render.Document {
	return &render.Document{
		Title: "Welcome to vellum",
		Body: markup.Table(
			markup.Attr("role", "presentation"),
			markup.Attr("width", "100%"),
			markup.Attr("cellpadding", "0"),
			markup.Attr("cellspacing", "0"),
			markup.Style("background", "#f4f4f4"),
			markup.Tbody(
				markup.Tr(
					markup.Td(
						markup.Attr("align", "center"),
						markup.Style("padding", "24px"),
						emailCard(),
					),
				),
			),
		),
	}
}

func emailCard() *markup.Node {
	return markup.Table(
		markup.Attr("role", "presentation"),
		markup.Attr("width", "600"),
		markup.Style("background", "#ffffff"),
		markup.Style("border-radius", "8px"),
		markup.Tbody(
			markup.Tr(markup.Td(
				markup.Style("padding", "32px"),
				markup.Style("font-family", "Arial, sans-serif"),
				markup.H1(
					markup.Style("margin", "0 0 16px"),
					markup.Style("font-size", "24px"),
					markup.Style("color", "#111111"),
					markup.Text("Welcome aboard"),
				),
				markup.P(
					markup.Style("margin", "0 0 24px"),
					markup.Style("color", "#555555"),
					markup.Style("line-height", "1.5"),
					markup.Text("Your account is ready. Everything renders inline-safe, and every rule is forced important for picky mail clients."),
				),
				markup.A(
					markup.Href("https://example.com/start"),
					markup.Style("display", "inline-block"),
					markup.Style("background", "#0b5fff"),
					markup.Style("color", "#ffffff"),
					markup.Style("padding", "12px 24px"),
					markup.Style("border-radius", "6px"),
					markup.Style("text-decoration", "none"),
					markup.Text("Get started"),
				),
			)),
		),
	)
}
