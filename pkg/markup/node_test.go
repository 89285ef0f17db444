package markup

import "testing"

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindElement, "Element"},
		{KindText, "Text"},
		{KindFragment, "Fragment"},
		{KindComponent, "Component"},
		{KindRaw, "Raw"},
		{Kind(255), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestAttributeIsEmpty(t *testing.T) {
	if !(Attribute{}).IsEmpty() {
		t.Error("zero Attribute should be empty")
	}
	if (Attribute{Name: "id", Value: "x"}).IsEmpty() {
		t.Error("named Attribute should not be empty")
	}
	if (Attribute{Name: "disabled"}).IsEmpty() {
		t.Error("boolean Attribute should not be empty")
	}
}

type greeting struct {
	name string
}

func (g greeting) Render() *Node {
	return P(Text("Hello, " + g.name))
}

func TestComponent(t *testing.T) {
	node := Div(greeting{name: "World"})

	if len(node.Children) != 1 {
		t.Fatalf("Children len = %d, want 1", len(node.Children))
	}
	child := node.Children[0]
	if child.Kind != KindComponent {
		t.Errorf("child Kind = %v, want KindComponent", child.Kind)
	}
	rendered := child.Comp.Render()
	if rendered.Tag != "p" {
		t.Errorf("rendered Tag = %q, want %q", rendered.Tag, "p")
	}
}

func TestFunc(t *testing.T) {
	comp := Func(func() *Node {
		return Span(Text("hi"))
	})

	node := comp.Render()
	if node.Tag != "span" {
		t.Errorf("Tag = %q, want %q", node.Tag, "span")
	}
}
