package markup

import (
	"strings"
	"testing"
)

func TestText(t *testing.T) {
	node := Text("Hello, World!")

	if node.Kind != KindText {
		t.Errorf("Kind = %v, want KindText", node.Kind)
	}
	if node.Text != "Hello, World!" {
		t.Errorf("Text = %v, want 'Hello, World!'", node.Text)
	}
}

func TestTextf(t *testing.T) {
	node := Textf("Count: %d", 42)

	if node.Text != "Count: 42" {
		t.Errorf("Text = %v, want 'Count: 42'", node.Text)
	}
}

func TestRaw(t *testing.T) {
	node := Raw("<strong>Bold</strong>")

	if node.Kind != KindRaw {
		t.Errorf("Kind = %v, want KindRaw", node.Kind)
	}
	if node.Text != "<strong>Bold</strong>" {
		t.Errorf("Text = %v, want '<strong>Bold</strong>'", node.Text)
	}
}

func TestFragment(t *testing.T) {
	t.Run("with nodes", func(t *testing.T) {
		node := Fragment(Div(), Span(), P())
		if node.Kind != KindFragment {
			t.Errorf("Kind = %v, want KindFragment", node.Kind)
		}
		if len(node.Children) != 3 {
			t.Errorf("Children len = %v, want 3", len(node.Children))
		}
	})

	t.Run("with nil filtered", func(t *testing.T) {
		node := Fragment(Div(), nil, Span())
		if len(node.Children) != 2 {
			t.Errorf("Children len = %v, want 2", len(node.Children))
		}
	})

	t.Run("with slice", func(t *testing.T) {
		children := []*Node{Div(), Span()}
		node := Fragment(children)
		if len(node.Children) != 2 {
			t.Errorf("Children len = %v, want 2", len(node.Children))
		}
	})

	t.Run("with string", func(t *testing.T) {
		node := Fragment("Hello")
		if len(node.Children) != 1 {
			t.Fatalf("Children len = %v, want 1", len(node.Children))
		}
		if node.Children[0].Kind != KindText {
			t.Errorf("Child kind = %v, want KindText", node.Children[0].Kind)
		}
	})
}

func TestGroup(t *testing.T) {
	node := Group([]*Node{Li(), Li()})
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 2 {
		t.Errorf("Children len = %v, want 2", len(node.Children))
	}
}

func TestNothing(t *testing.T) {
	node := Nothing()
	if node.Kind != KindFragment {
		t.Errorf("Kind = %v, want KindFragment", node.Kind)
	}
	if len(node.Children) != 0 {
		t.Errorf("Children len = %v, want 0", len(node.Children))
	}
}

func TestIf(t *testing.T) {
	node := Div()

	t.Run("condition true", func(t *testing.T) {
		if result := If(true, node); result != node {
			t.Error("expected node when condition is true")
		}
	})

	t.Run("condition false", func(t *testing.T) {
		if result := If(false, node); result != nil {
			t.Error("expected nil when condition is false")
		}
	})
}

func TestIfElse(t *testing.T) {
	a, b := Div(), Span()

	if result := IfElse(true, a, b); result != a {
		t.Error("expected first node when condition is true")
	}
	if result := IfElse(false, a, b); result != b {
		t.Error("expected second node when condition is false")
	}
}

func TestWhen(t *testing.T) {
	called := false
	fn := func() *Node {
		called = true
		return Div()
	}

	if result := When(false, fn); result != nil {
		t.Error("expected nil when condition is false")
	}
	if called {
		t.Error("fn should not be called when condition is false")
	}

	if result := When(true, fn); result == nil {
		t.Error("expected node when condition is true")
	}
}

func TestUnless(t *testing.T) {
	node := Div()

	if result := Unless(true, node); result != nil {
		t.Error("expected nil when condition is true")
	}
	if result := Unless(false, node); result != node {
		t.Error("expected node when condition is false")
	}
}

func TestMap(t *testing.T) {
	items := []string{"a", "b", "c"}
	nodes := Map(items, func(item string, i int) *Node {
		return Li(Text(item))
	})

	if len(nodes) != 3 {
		t.Fatalf("len = %v, want 3", len(nodes))
	}
	if nodes[1].Children[0].Text != "b" {
		t.Errorf("nodes[1] text = %q, want %q", nodes[1].Children[0].Text, "b")
	}
}

func TestMapDropsNil(t *testing.T) {
	items := []int{1, 2, 3, 4}
	nodes := Map(items, func(item, i int) *Node {
		return If(item%2 == 0, Li(Textf("%d", item)))
	})

	if len(nodes) != 2 {
		t.Errorf("len = %v, want 2", len(nodes))
	}
}

func TestRepeat(t *testing.T) {
	nodes := Repeat(3, func(i int) *Node {
		return Td(Textf("cell %d", i))
	})

	if len(nodes) != 3 {
		t.Fatalf("len = %v, want 3", len(nodes))
	}
	if nodes[2].Children[0].Text != "cell 2" {
		t.Errorf("nodes[2] text = %q, want %q", nodes[2].Children[0].Text, "cell 2")
	}
}

func TestDump(t *testing.T) {
	tree := Div(ID("root"),
		H1(Text("Title")),
		Fragment(Span(), Raw("<b>x</b>")),
	)

	out := Dump(tree)
	for _, want := range []string{"<div>", "<h1>", `text "Title"`, "fragment", `raw "<b>x</b>"`} {
		if !strings.Contains(out, want) {
			t.Errorf("Dump output missing %q:\n%s", want, out)
		}
	}
}
