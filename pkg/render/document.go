package render

import (
	"io"

	"github.com/vellum-dev/vellum/pkg/markup"
)

// Document is a complete HTML page: body content plus the head pieces
// a standalone page needs. The renderer wraps it in the doctype,
// html, head, and body scaffolding and splices the collected
// stylesheet in.
type Document struct {
	// Lang is the html element's lang attribute. Defaults to "en".
	Lang string

	// Title is the document title. Omitted when empty.
	Title string

	// Head is optional extra head content: meta, link, and script
	// elements. A fragment works well here.
	Head *markup.Node

	// Body is the page content.
	Body *markup.Node
}

const doctype = "<!DOCTYPE html>"

// RenderDocument serializes a complete page. Head content renders
// before body content against one shared context, so class names span
// the document; the assembled stylesheet lands in a style element in
// the head.
func (r *Renderer) RenderDocument(d *Document) []byte {
	rc := NewContext(r.cfg)

	// Render the variable parts first: the stylesheet is only known
	// once the whole tree has been walked.
	headBuf := NewBuffer(256)
	bodyBuf := NewBuffer(r.cfg.ReserveBytes)
	rc.enter()
	if d.Head != nil {
		renderBlockChild(headBuf, rc, d.Head)
	}
	if d.Body != nil {
		renderBlockChild(bodyBuf, rc, d.Body)
	}
	rc.exit()
	css := rc.Stylesheet()

	out := NewBuffer(r.cfg.ReserveBytes)
	writeDocPrefix(out, rc, d)
	out.Write(headBuf.Bytes())
	writeStyleBlock(out, rc, css)
	rc.exit()
	out.WriteString("</head>")
	rc.writeNewline(out)
	out.WriteString("<body>")
	rc.writeNewline(out)
	out.Write(bodyBuf.Bytes())
	writeDocSuffix(out, rc)
	return out.Bytes()
}

// RenderDocumentString serializes a complete page to a string,
// returning a RenderError on invalid UTF-8.
func (r *Renderer) RenderDocumentString(d *Document) (string, error) {
	return toString(r.RenderDocument(d))
}

// RenderDocumentTo serializes a complete page to w.
func (r *Renderer) RenderDocumentTo(w io.Writer, d *Document) error {
	_, err := w.Write(r.RenderDocument(d))
	return err
}

// writeDocPrefix emits everything up to and including the fixed head
// content, and leaves the context indented one level for the rest of
// the head.
func writeDocPrefix(buf *Buffer, rc *Context, d *Document) {
	lang := d.Lang
	if lang == "" {
		lang = "en"
	}

	buf.WriteString(doctype)
	rc.writeNewline(buf)
	buf.WriteString(`<html lang="`)
	writeEscapedAttr(buf, lang)
	buf.WriteString(`">`)
	rc.writeNewline(buf)
	buf.WriteString("<head>")
	rc.writeNewline(buf)
	rc.enter()
	rc.writeIndent(buf)
	buf.WriteString(`<meta charset="utf-8">`)
	rc.writeNewline(buf)
	if d.Title != "" {
		rc.writeIndent(buf)
		buf.WriteString("<title>")
		writeEscapedText(buf, d.Title)
		buf.WriteString("</title>")
		rc.writeNewline(buf)
	}
}

// writeStyleBlock emits the stylesheet in a style element, or nothing
// when no rules were registered.
func writeStyleBlock(buf *Buffer, rc *Context, css string) {
	if css == "" {
		return
	}
	rc.writeIndent(buf)
	buf.WriteString("<style>")
	buf.WriteString(css)
	buf.WriteString("</style>")
	rc.writeNewline(buf)
}

// writeDocSuffix closes the body and html elements.
func writeDocSuffix(buf *Buffer, rc *Context) {
	buf.WriteString("</body>")
	rc.writeNewline(buf)
	buf.WriteString("</html>")
	rc.writeNewline(buf)
}
