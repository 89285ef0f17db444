package server

import (
	"net/http"

	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

// serveErrorPage renders a minimal 500 page. In dev mode the error
// text is shown; otherwise the page stays generic.
func (s *Server) serveErrorPage(w http.ResponseWriter, r *http.Request, pageErr error) {
	detail := markup.Nothing()
	if s.cfg.Dev {
		detail = markup.Pre(
			markup.Style("background", "#1e1e1e"),
			markup.Style("color", "#f48771"),
			markup.Style("padding", "1rem"),
			markup.Style("overflow-x", "auto"),
			markup.Text(pageErr.Error()),
		)
	}

	doc := &render.Document{
		Title: "Internal Server Error",
		Body: markup.Main(
			markup.Style("font-family", "system-ui, sans-serif"),
			markup.Style("max-width", "40rem"),
			markup.Style("margin", "4rem auto"),
			markup.H1(markup.Text("Something went wrong")),
			markup.P(markup.Text("The page failed to render.")),
			detail,
		),
	}
	if s.cfg.Dev && s.reload != nil {
		doc = withReloadScript(doc)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	w.Write(render.New(s.cfg.Render).RenderDocument(doc))
}
