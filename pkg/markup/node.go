package markup

// Kind is the node type discriminator.
type Kind uint8

const (
	KindElement  Kind = iota // <div>, <section>, etc.
	KindText                 // Plain text node, escaped on output
	KindFragment             // Grouping without wrapper
	KindComponent            // Nested component
	KindRaw                  // Raw HTML (dangerous)
)

// String returns the string representation of the Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindFragment:
		return "Fragment"
	case KindComponent:
		return "Component"
	case KindRaw:
		return "Raw"
	default:
		return "Unknown"
	}
}

// Node is a single node in the markup tree.
//
// Exactly one rendering semantic applies per node: the built-in kinds
// (element, text, raw, fragment) emit output directly, while a component
// node delegates to the tree returned by its Component.
type Node struct {
	Kind     Kind        // Node type
	Tag      string      // Element tag name (e.g., "div")
	Attrs    []Attribute // Attributes in the order the caller supplied them
	Styles   []StyleRule // Style declarations attached to this element
	Children []*Node     // Child nodes
	Text     string      // For KindText and KindRaw
	Comp     Component   // For KindComponent
}

// Attribute is a single name/value attribute pair.
//
// Order matters: attributes render in the order they were attached.
// An empty Value renders as a boolean attribute (name only). An empty
// Name marks the attribute as inert; it is skipped during rendering,
// which is how conditional constructors express absence.
type Attribute struct {
	Name  string
	Value string
}

// IsEmpty returns true if this is an empty/inert attribute.
func (a Attribute) IsEmpty() bool {
	return a.Name == ""
}

// Component is anything that can render to a Node.
type Component interface {
	Render() *Node
}

// FuncComponent wraps a render function.
type FuncComponent struct {
	render func() *Node
}

// Render implements Component.
func (f *FuncComponent) Render() *Node {
	return f.render()
}

// Func creates a component from a render function.
func Func(render func() *Node) Component {
	return &FuncComponent{render: render}
}
