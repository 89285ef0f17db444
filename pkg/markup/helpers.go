package markup

import "fmt"

// Text creates a text node. Content is escaped on output.
func Text(content string) *Node {
	return &Node{
		Kind: KindText,
		Text: content,
	}
}

// Textf creates a formatted text node.
func Textf(format string, args ...any) *Node {
	return Text(fmt.Sprintf(format, args...))
}

// Raw creates an unescaped HTML node.
// Use with caution - can lead to XSS if content is user-provided.
func Raw(html string) *Node {
	return &Node{
		Kind: KindRaw,
		Text: html,
	}
}

// Fragment groups children without a wrapper element.
func Fragment(children ...any) *Node {
	node := &Node{
		Kind: KindFragment,
	}

	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *Node:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		case Component:
			node.Children = append(node.Children, &Node{
				Kind: KindComponent,
				Comp: v,
			})
		}
	}

	return node
}

// Group wraps a slice of nodes in a fragment.
func Group(children []*Node) *Node {
	return &Node{
		Kind:     KindFragment,
		Children: children,
	}
}

// Nothing renders no output. Useful as an explicit empty branch.
func Nothing() *Node {
	return &Node{Kind: KindFragment}
}

// If returns the node if condition is true, nil otherwise.
func If(condition bool, node *Node) *Node {
	if condition {
		return node
	}
	return nil
}

// IfElse returns the first node if condition is true, the second otherwise.
func IfElse(condition bool, ifTrue, ifFalse *Node) *Node {
	if condition {
		return ifTrue
	}
	return ifFalse
}

// When is like If but with lazy evaluation.
// The function is only called if condition is true.
func When(condition bool, fn func() *Node) *Node {
	if condition {
		return fn()
	}
	return nil
}

// Unless is the inverse of If.
// Returns the node if condition is false.
func Unless(condition bool, node *Node) *Node {
	if !condition {
		return node
	}
	return nil
}

// Map maps a slice to nodes. Nil results are dropped.
func Map[T any](items []T, fn func(item T, index int) *Node) []*Node {
	result := make([]*Node, 0, len(items))
	for i, item := range items {
		node := fn(item, i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}

// Repeat renders the node returned by fn count times.
func Repeat(count int, fn func(index int) *Node) []*Node {
	result := make([]*Node, 0, count)
	for i := 0; i < count; i++ {
		node := fn(i)
		if node != nil {
			result = append(result, node)
		}
	}
	return result
}
