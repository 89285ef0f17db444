package markup

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Dump renders the node tree as an ASCII tree for debugging. Components
// are shown unexpanded; rendering is what resolves them.
func Dump(n *Node) string {
	tree := treeprint.New()
	dumpNode(tree, n)
	return tree.String()
}

func dumpNode(tree treeprint.Tree, n *Node) {
	if n == nil {
		tree.AddNode("<nil>")
		return
	}
	label := nodeLabel(n)
	if len(n.Children) == 0 {
		tree.AddNode(label)
		return
	}
	branch := tree.AddBranch(label)
	for _, child := range n.Children {
		dumpNode(branch, child)
	}
}

func nodeLabel(n *Node) string {
	switch n.Kind {
	case KindElement:
		if len(n.Attrs) > 0 || len(n.Styles) > 0 {
			return fmt.Sprintf("<%s> attrs=%d styles=%d", n.Tag, len(n.Attrs), len(n.Styles))
		}
		return fmt.Sprintf("<%s>", n.Tag)
	case KindText:
		return fmt.Sprintf("text %q", n.Text)
	case KindRaw:
		return fmt.Sprintf("raw %q", n.Text)
	case KindFragment:
		return "fragment"
	case KindComponent:
		return fmt.Sprintf("component %T", n.Comp)
	default:
		return n.Kind.String()
	}
}
