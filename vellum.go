// Package vellum renders declarative markup trees to HTML.
//
// This root package re-exports the everyday surface of pkg/markup and
// pkg/render so simple programs need a single import:
//
//	import "github.com/vellum-dev/vellum"
//
//	page := vellum.Div(
//	    vellum.Style("color", "rebeccapurple"),
//	    vellum.H1(vellum.Text("Hello")),
//	)
//	html, css := vellum.New(vellum.Compact).RenderStyled(page)
//
// The full element and attribute vocabulary lives in pkg/markup;
// serving and publishing live in pkg/server and pkg/publish.
package vellum

import (
	"github.com/vellum-dev/vellum/pkg/markup"
	"github.com/vellum-dev/vellum/pkg/render"
)

// Core types.
type (
	// Node is one element of the markup tree.
	Node = markup.Node

	// Attribute is a single name/value attribute pair.
	Attribute = markup.Attribute

	// StyleRule is one CSS declaration with its grouping context.
	StyleRule = markup.StyleRule

	// MediaQuery is an opaque CSS media condition.
	MediaQuery = markup.MediaQuery

	// Component is anything that can render to a Node.
	Component = markup.Component

	// Renderer serializes markup trees to HTML.
	Renderer = render.Renderer

	// Config controls serialization output.
	Config = render.Config

	// Document is a complete HTML page.
	Document = render.Document

	// RenderError is the engine's only error type.
	RenderError = render.RenderError
)

// New creates a Renderer.
var New = render.New

// Render configuration presets.
var (
	Compact   = render.Compact
	Pretty    = render.Pretty
	Email     = render.Email
	Optimized = render.Optimized
)

// Tree construction helpers.
var (
	Text     = markup.Text
	Textf    = markup.Textf
	Raw      = markup.Raw
	Fragment = markup.Fragment
	Group    = markup.Group
	Nothing  = markup.Nothing
	If       = markup.If
	IfElse   = markup.IfElse
	Unless   = markup.Unless
	Func     = markup.Func
	El       = markup.El
)

// Attributes and styles.
var (
	Attr       = markup.Attr
	Flag       = markup.Flag
	ID         = markup.ID
	Class      = markup.Class
	Href       = markup.Href
	Src        = markup.Src
	Style      = markup.Style
	MediaStyle = markup.MediaStyle
	Hover      = markup.Hover
	Focus      = markup.Focus
	Active     = markup.Active
)

// Common elements. The full set is in pkg/markup.
var (
	Div     = markup.Div
	Span    = markup.Span
	P       = markup.P
	A       = markup.A
	H1      = markup.H1
	H2      = markup.H2
	H3      = markup.H3
	Ul      = markup.Ul
	Ol      = markup.Ol
	Li      = markup.Li
	Img     = markup.Img
	Br      = markup.Br
	Main    = markup.Main
	Header  = markup.Header
	Footer  = markup.Footer
	Nav     = markup.Nav
	Section = markup.Section
	Article = markup.Article
	Button  = markup.Button
	Form    = markup.Form
	Input   = markup.Input
	Label   = markup.Label
	Table   = markup.Table
	Tr      = markup.Tr
	Td      = markup.Td
	Th      = markup.Th
)
