package guikit_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/guitest"
)

type node struct {
	name     string
	children []*node
}

func (n *node) find(name string) *node {
	if strings.EqualFold(n.name, name) {
		return n
	}
	for _, c := range n.children {
		if f := c.find(name); f != nil {
			return f
		}
	}
	return nil
}

var nodeSource = guikit.TreeSource[*node]{
	Children: func(n *node) []*node { return n.children },
	Name:     func(n *node) string { return n.name },
}

func sampleTree() *node {
	return &node{name: "a", children: []*node{
		{name: "b", children: []*node{{name: "d"}}},
		{name: "c"},
	}}
}

func toggleCase(n *node) {
	if strings.ToUpper(n.name) == n.name {
		n.name = strings.ToLower(n.name)
	} else {
		n.name = strings.ToUpper(n.name)
	}
}

func TestNodeTreeIndentation(t *testing.T) {
	rec := guitest.New()
	rec.ExpandAll = true
	tree, err := guikit.NewNodeTree(15, guikit.NewButton("Aa", toggleCase))
	if err != nil {
		t.Fatal(err)
	}

	if err := tree.Draw(rec, []*node{sampleTree()}, nodeSource); err != nil {
		t.Fatal(err)
	}
	rec.CheckBalanced()
	if len(rec.Problems) > 0 {
		t.Fatalf("problems: %v", rec.Problems)
	}

	x := map[string]float32{}
	for _, c := range rec.Filter("TreeNode") {
		x[c.Label] = c.X
	}
	if len(x) != 4 {
		t.Fatalf("drew nodes %v, want a b c d", x)
	}
	for name, depth := range map[string]float32{"b": 1, "c": 1, "d": 2} {
		if got := x[name] - x["a"]; got != depth*15 {
			t.Errorf("%s offset from root = %v, want %v", name, got, depth*15)
		}
	}

	// Every row's buttons start at the same column.
	buttons := rec.Filter("Button")
	if len(buttons) != 4 {
		t.Fatalf("drew %d buttons, want 4", len(buttons))
	}
	for _, b := range buttons {
		if b.X != buttons[0].X {
			t.Errorf("button %s at x=%v, want %v", b.ID, b.X, buttons[0].X)
		}
	}
}

func TestNodeTreeCollapsed(t *testing.T) {
	rec := guitest.New()
	tree, err := guikit.NewNodeTree[*node](guikit.DefaultChildOffset)
	if err != nil {
		t.Fatal(err)
	}

	if err := tree.Draw(rec, []*node{sampleTree()}, nodeSource); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count("TreeNode"); n != 1 {
		t.Errorf("collapsed tree drew %d nodes, want 1", n)
	}
	if n := rec.Count("TreePop"); n != 0 {
		t.Errorf("TreePop called %d times for a collapsed node", n)
	}
}

func TestNodeTreeButtonActsOnItsNode(t *testing.T) {
	root := sampleTree()
	src := nodeSource
	src.Key = func(n *node) string { return strings.ToLower(n.name) }

	tree, err := guikit.NewNodeTree(guikit.DefaultChildOffset, guikit.NewButton("Aa", toggleCase))
	if err != nil {
		t.Fatal(err)
	}

	rec := guitest.New()
	rec.ExpandAll = true
	rec.Click("a/b/btn0/Aa")
	if err := tree.Draw(rec, []*node{root}, src); err != nil {
		t.Fatal(err)
	}

	for name, want := range map[string]string{"a": "a", "b": "B", "c": "c", "d": "d"} {
		if got := root.find(name).name; got != want {
			t.Errorf("node %s = %q, want %q", name, got, want)
		}
	}
}

func TestNodeTreeDefaultKeysAreUnique(t *testing.T) {
	rec := guitest.New()
	rec.ExpandAll = true
	root := &node{name: "dir", children: []*node{{name: "x"}, {name: "x"}}}
	tree, _ := guikit.NewNodeTree[*node](0)

	if err := tree.Draw(rec, []*node{root}, nodeSource); err != nil {
		t.Fatal(err)
	}

	seen := map[string]bool{}
	for _, c := range rec.Filter("TreeNode") {
		if seen[c.ID] {
			t.Errorf("duplicate tree node id %q", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestNodeTreeHeldButton(t *testing.T) {
	rec := guitest.New()
	rec.ExpandAll = true
	selected := "c"
	b := guikit.NewButton[*node]("*", nil).HoldWhen(func(n *node) bool { return n.name == selected })
	tree, _ := guikit.NewNodeTree(guikit.DefaultChildOffset, b)

	if err := tree.Draw(rec, []*node{sampleTree()}, nodeSource); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count("PushStyleColor"); n != 3 {
		t.Errorf("pushed %d colors, want 3 for the one held row", n)
	}
}

func TestNewNodeTreeErrors(t *testing.T) {
	if _, err := guikit.NewNodeTree[*node](-1); !errors.Is(err, guikit.ErrNegative) {
		t.Errorf("negative offset: err = %v, want ErrNegative", err)
	}
	if _, err := guikit.NewNodeTree[*node](0, nil); !errors.Is(err, guikit.ErrNilFunc) {
		t.Errorf("nil button: err = %v, want ErrNilFunc", err)
	}

	rec := guitest.New()
	tree, _ := guikit.NewNodeTree[*node](0)
	err := tree.Draw(rec, []*node{sampleTree()}, guikit.TreeSource[*node]{Name: nodeSource.Name})
	if !errors.Is(err, guikit.ErrNilFunc) {
		t.Errorf("missing Children: err = %v, want ErrNilFunc", err)
	}
	if len(rec.Calls) != 0 {
		t.Errorf("toolkit called before validation failed: %v", rec.Ops())
	}
}
