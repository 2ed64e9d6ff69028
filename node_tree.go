package guikit

import (
	"fmt"
	"strconv"
)

// DefaultChildOffset is the indentation added per tree level by the demos
// and the default theme.
const DefaultChildOffset float32 = 10

// TreeSource tells a NodeTree how to walk the caller's elements.
type TreeSource[T any] struct {
	// Children returns the children of an element. Required.
	Children func(T) []T
	// Name returns the label of an element. Required.
	Name func(T) string
	// Key returns a stable identity for an element. Optional; the default is
	// the index path of the element in the tree, e.g. "0/2/1".
	Key func(T) string
}

// NodeTree renders a forest as collapsible tree nodes with optional action
// buttons in a fixed left column.
type NodeTree[T any] struct {
	buttons     []*Button[T]
	childOffset float32
}

// NewNodeTree creates a tree view. childOffset is the horizontal indentation
// added per level; buttons are drawn before every node, in order, and receive
// the node's element.
func NewNodeTree[T any](childOffset float32, buttons ...*Button[T]) (*NodeTree[T], error) {
	const op = "new node tree"
	if childOffset < 0 {
		return nil, configErr(op, fmt.Errorf("%w: child offset %g", ErrNegative, childOffset))
	}
	for i, b := range buttons {
		if b == nil {
			return nil, configErr(op, fmt.Errorf("%w: button %d", ErrNilFunc, i))
		}
	}
	return &NodeTree[T]{buttons: buttons, childOffset: childOffset}, nil
}

// ChildOffset returns the per-level indentation.
func (t *NodeTree[T]) ChildOffset() float32 { return t.childOffset }

// Buttons returns the action buttons.
func (t *NodeTree[T]) Buttons() []*Button[T] { return t.buttons }

// Draw renders roots and, for every expanded node, its children.
//
// Buttons of every row start at the cursor X of the call. The tree node of an
// element at depth d is placed after its buttons, shifted right by
// d*childOffset. Draw only fails when src lacks Children or Name, before
// any toolkit call.
func (t *NodeTree[T]) Draw(tk Toolkit, roots []T, src TreeSource[T]) error {
	const op = "node tree draw"
	if src.Children == nil {
		return configErr(op, fmt.Errorf("%w: Children", ErrNilFunc))
	}
	if src.Name == nil {
		return configErr(op, fmt.Errorf("%w: Name", ErrNilFunc))
	}
	t.drawLevel(tk, roots, src, tk.CursorPosX(), 0, "")
	return nil
}

func (t *NodeTree[T]) drawLevel(tk Toolkit, elems []T, src TreeSource[T], anchor, offset float32, parent string) {
	for i, el := range elems {
		key := t.key(src, el, parent, i)

		tk.SetCursorPosX(anchor)
		for j, b := range t.buttons {
			tk.PushID(key + "/btn" + strconv.Itoa(j))
			b.Draw(tk, el)
			tk.PopID()
			tk.SameLine()
		}
		tk.SetCursorPosX(tk.CursorPosX() + offset)

		tk.PushID(key)
		if tk.TreeNode(src.Name(el)) {
			t.drawLevel(tk, src.Children(el), src, anchor, offset+t.childOffset, key)
			tk.TreePop()
		}
		tk.PopID()
	}
}

func (t *NodeTree[T]) key(src TreeSource[T], el T, parent string, index int) string {
	if src.Key != nil {
		return src.Key(el)
	}
	if parent == "" {
		return strconv.Itoa(index)
	}
	return parent + "/" + strconv.Itoa(index)
}
