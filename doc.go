/*
Package guikit provides small composition helpers on top of an immediate-mode
GUI toolkit: windows with lifecycle hooks, a main menu bar, buttons with a held
state, rows of drag controls, a node tree view and a window stack.

The helpers never draw anything themselves. They are written against the
Toolkit interface, which is implemented by the imm package (a small toolkit
with an OpenGL backend) and by guitest.Recorder for tests.

# Quick Start

	ui := imm.New(renderer)
	fm := guikit.NewFocusManager()

	hello, _ := guikit.NewBasicWindow("Hello", func(tk guikit.Toolkit) error {
	    tk.Text("Hello World")
	    return nil
	}, guikit.WithFocus(fm))

	for !window.ShouldClose() {
	    ctx := ui.Begin(input.Update(), displaySize, dt)
	    if err := hello.Draw(ctx); err != nil {
	        return err
	    }
	    fm.EndFrame(ctx)
	    ui.End()
	}

# Window Lifecycle

A Window runs its hooks in a fixed order on every Draw:

	PreOpen -> [scope begin] -> PostOpen -> content -> PreClose -> [scope end] -> PostClose

The scope is closed even if the content fails. Hooks are plain lists that can
be extended after construction:

	w.Hooks().PreOpen.Add(func(tk guikit.Toolkit) {
	    tk.SetNextWindowSize(guikit.Vec2{X: 40, Y: 50})
	})

# Window Stack

WindowStack places windows one after another along an axis:

	stack, _ := guikit.NewWindowStack(guikit.Vertical, 8, topBar, body)
	stack.Draw(ctx)
	size := stack.Size() // bounding size of the stack

Positions are computed from the realized size of the previous window, so
auto-sized windows lag one frame behind a size change.

# Identity

Every component takes an explicit key (or derives one from the element index
path in a NodeTree) and pushes it as a toolkit identity scope. Two drag rows
showing the same values, or two tree siblings with the same name, never share
toolkit state. KeySource hands out keys; HashKey derives one from data.

# Errors

Misuse is reported immediately as an error matching ErrConfig, together with
a more specific sentinel:

	_, err := guikit.NewNodeTree[*Node](-1)
	errors.Is(err, guikit.ErrConfig)   // true
	errors.Is(err, guikit.ErrNegative) // true
*/
package guikit
