package render

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/vellum-dev/vellum/pkg/markup"
)

// Renderer serializes markup trees to HTML.
//
// A Renderer is immutable after construction and safe for concurrent
// use: every render call builds its own Context and Buffer, so
// parallel renders never observe each other. Rendering the same tree
// with the same configuration produces identical bytes, including the
// generated class names.
type Renderer struct {
	cfg Config
}

// New creates a Renderer with the given configuration.
func New(cfg Config) *Renderer {
	return &Renderer{cfg: cfg}
}

// Config returns the renderer's configuration.
func (r *Renderer) Config() Config {
	return r.cfg
}

// Render serializes the tree and returns the bytes.
//
// Style rules registered during traversal are NOT part of the output;
// render a Document to get them spliced in, or use RenderStyled to
// receive the stylesheet alongside the markup.
func (r *Renderer) Render(node *markup.Node) []byte {
	out, _ := r.renderWithContext(node)
	return out
}

// RenderStyled serializes the tree and also returns the stylesheet
// assembled from the style rules the traversal registered.
func (r *Renderer) RenderStyled(node *markup.Node) (body []byte, css string) {
	out, rc := r.renderWithContext(node)
	return out, rc.Stylesheet()
}

// RenderString serializes the tree to a string. It returns a
// RenderError if the rendered bytes are not valid UTF-8, which can
// only happen when the input text was invalid to begin with.
func (r *Renderer) RenderString(node *markup.Node) (string, error) {
	return toString(r.Render(node))
}

// RenderTo serializes the tree and writes it to w.
func (r *Renderer) RenderTo(w io.Writer, node *markup.Node) error {
	_, err := w.Write(r.Render(node))
	return err
}

func (r *Renderer) renderWithContext(node *markup.Node) ([]byte, *Context) {
	rc := NewContext(r.cfg)
	buf := NewBuffer(r.cfg.ReserveBytes)
	renderNode(buf, rc, node)
	return buf.Bytes(), rc
}

// toString converts rendered bytes to a string, the engine's single
// failure point.
func toString(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &RenderError{Message: "render: output is not valid UTF-8"}
	}
	return string(b), nil
}

// renderNode dispatches on node kind. Emission is infallible: the
// buffer absorbs every write and traversal has nothing to report.
func renderNode(buf *Buffer, rc *Context, node *markup.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case markup.KindElement:
		renderElement(buf, rc, node)
	case markup.KindText:
		writeEscapedText(buf, node.Text)
	case markup.KindRaw:
		buf.WriteString(node.Text)
	case markup.KindFragment:
		for _, child := range node.Children {
			renderNode(buf, rc, child)
		}
	case markup.KindComponent:
		if node.Comp != nil {
			renderNode(buf, rc, node.Comp.Render())
		}
	}
}

// renderElement emits one element: open tag, attributes in insertion
// order, then children and the closing tag. Void elements stop at the
// open tag no matter what children were supplied.
func renderElement(buf *Buffer, rc *Context, node *markup.Node) {
	pretty := rc.cfg.pretty()
	inline := !pretty || rc.inline > 0

	if !inline {
		rc.writeIndent(buf)
	}

	buf.WriteByte('<')
	buf.WriteString(node.Tag)
	stageAttributes(rc, node)
	rc.flushAttributes(buf)
	buf.WriteByte('>')

	if isVoidElement(node.Tag) {
		if !inline {
			rc.writeNewline(buf)
		}
		return
	}

	if len(node.Children) > 0 {
		if inline || phrasingOnly(node) {
			rc.inline++
			for _, child := range node.Children {
				renderNode(buf, rc, child)
			}
			rc.inline--
		} else {
			rc.writeNewline(buf)
			rc.enter()
			for _, child := range node.Children {
				renderBlockChild(buf, rc, child)
			}
			rc.exit()
			rc.writeIndent(buf)
		}
	}

	buf.WriteString("</")
	buf.WriteString(node.Tag)
	buf.WriteByte('>')
	if !inline {
		rc.writeNewline(buf)
	}
}

// stageAttributes loads the element's attributes into the context in
// caller order, registers its style rules, and merges the generated
// class names into the class attribute. Explicit classes come first.
func stageAttributes(rc *Context, node *markup.Node) {
	for _, a := range node.Attrs {
		if !a.IsEmpty() {
			rc.SetAttribute(a.Name, a.Value)
		}
	}

	if len(node.Styles) == 0 {
		return
	}
	joined := strings.Join(rc.ClassNames(node.Styles), " ")
	if existing, ok := rc.Attribute("class"); ok && existing != "" {
		rc.SetAttribute("class", existing+" "+joined)
	} else {
		rc.SetAttribute("class", joined)
	}
}

// renderBlockChild lays out one child inside a block container: text
// and phrasing content each get their own indented line, elements
// handle their own lines, fragments and components pass through.
func renderBlockChild(buf *Buffer, rc *Context, node *markup.Node) {
	if node == nil {
		return
	}

	switch node.Kind {
	case markup.KindText:
		rc.writeIndent(buf)
		writeEscapedText(buf, node.Text)
		rc.writeNewline(buf)
	case markup.KindRaw:
		rc.writeIndent(buf)
		buf.WriteString(node.Text)
		rc.writeNewline(buf)
	case markup.KindFragment:
		for _, child := range node.Children {
			renderBlockChild(buf, rc, child)
		}
	case markup.KindComponent:
		if node.Comp != nil {
			renderBlockChild(buf, rc, node.Comp.Render())
		}
	case markup.KindElement:
		renderElement(buf, rc, node)
	}
}

// phrasingOnly reports whether the element's whole subtree is phrasing
// content (text, raw, inline elements), meaning pretty output keeps it
// on one line. Only consulted in pretty mode.
func phrasingOnly(node *markup.Node) bool {
	for _, child := range node.Children {
		if !phrasingNode(child) {
			return false
		}
	}
	return true
}

func phrasingNode(node *markup.Node) bool {
	if node == nil {
		return true
	}
	switch node.Kind {
	case markup.KindText, markup.KindRaw:
		return true
	case markup.KindFragment:
		for _, child := range node.Children {
			if !phrasingNode(child) {
				return false
			}
		}
		return true
	case markup.KindElement:
		return isInlineElement(node.Tag) && phrasingOnly(node)
	default:
		// Components resolve during emission; lay them out as blocks.
		return false
	}
}
