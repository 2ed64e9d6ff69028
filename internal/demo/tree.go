package demo

import (
	"strconv"

	"github.com/go-theft-auto/guikit"
)

// node is an element of the scene graph shown by the tree scene. Names are
// unique and double as tree keys.
type node struct {
	name     string
	hidden   bool
	children []*node
}

func sampleGraph() []*node {
	return []*node{
		{name: "World", children: []*node{
			{name: "Terrain"},
			{name: "Vehicles", children: []*node{
				{name: "Car"},
				{name: "Truck"},
			}},
		}},
		{name: "Camera"},
	}
}

func buildTree(_ *Scene, theme guikit.Theme) (func(tk guikit.Toolkit) error, error) {
	roots := sampleGraph()
	src := guikit.TreeSource[*node]{
		Children: func(n *node) []*node { return n.children },
		Name: func(n *node) string {
			if n.hidden {
				return n.name + " (hidden)"
			}
			return n.name
		},
		Key: func(n *node) string { return n.name },
	}

	hide := guikit.NewButton("H", func(n *node) { n.hidden = !n.hidden }, theme.ButtonOptions()...).
		HoldWhen(func(n *node) bool { return n.hidden })
	add := guikit.NewButton("+", func(n *node) {
		n.children = append(n.children, &node{name: n.name + "." + strconv.Itoa(len(n.children))})
	}, theme.ButtonOptions()...)

	tree, err := guikit.NewNodeTree(theme.Tree.ChildOffset, hide, add)
	if err != nil {
		return nil, err
	}
	w, err := guikit.NewBasicWindow("Scene graph", func(tk guikit.Toolkit) error {
		return tree.Draw(tk, roots, src)
	}, guikit.WithFlags(guikit.WindowAlwaysAutoResize))
	if err != nil {
		return nil, err
	}
	w.Hooks().PreOpen.Add(placeOnce(guikit.Vec2{X: 20, Y: 20}))
	return w.Draw, nil
}
