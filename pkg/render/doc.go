// Package render serializes markup trees to HTML bytes.
//
// # Rendering
//
// A Renderer owns a Config and nothing else; every call builds its own
// Context and Buffer, so one Renderer serves any number of goroutines:
//
//	r := render.New(render.Pretty)
//	html := r.Render(markup.Div(markup.Text("hi")))
//
// RenderDocument wraps a body in the doctype/html/head/body scaffold
// and splices the collected stylesheet into the head.
//
// # Styles
//
// Style rules attached to elements do not render inline. Each distinct
// rule gets a deterministic class name (property name plus a counter),
// the element's class attribute picks the names up, and the rules
// accumulate in the Context's registry. The assembled stylesheet lists
// ungrouped rules first in first-seen order, then one @media block per
// distinct condition.
//
// # Escaping
//
// Text content escapes &, <, and >. Attribute values additionally
// escape both quote characters. Raw nodes bypass escaping. There is no
// double-escape detection and no validation of names or values.
//
// # Streaming
//
// Chunks returns the rendered bytes pre-split. Stream delivers them
// over a channel. StreamDocument renders progressively: chunks ship
// while traversal runs, and the stylesheet moves to the end of the
// body because the head is already on the wire. Cancellation stops a
// stream between chunks, never mid-chunk.
package render
