// Package markup provides the declarative node tree that vellum renders
// to HTML.
//
// # Core Types
//
// Node is the fundamental building block representing elements, text,
// fragments, components, and raw HTML. Attribute is an ordered
// name/value pair; StyleRule is a CSS declaration with optional media,
// selector-prefix, and pseudo context.
//
// # Element API
//
// Elements are created using variadic factory functions:
//
//	Div(Class("card"), ID("main"),
//	    Style("padding", "1rem"),
//	    H1(Text("Title")),
//	    P(Text("Content")),
//	)
//
// Attributes render in the order they are supplied. Style rules do not
// render inline; the renderer assigns each distinct rule a deterministic
// class name and collects the rules into a document stylesheet.
//
// # Components
//
// Any type with a Render() *Node method can be placed in the tree, and
// Func adapts a plain function. Components are resolved during
// rendering, not at construction.
package markup
