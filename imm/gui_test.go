package imm_test

import (
	"testing"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/imm"
)

// mockRenderer is a test renderer that doesn't render anything.
type mockRenderer struct {
	renderCalls int
	lastVerts   int
}

func (m *mockRenderer) Render(dl *imm.DrawList) error {
	m.renderCalls++
	m.lastVerts = len(dl.VtxBuffer)
	return nil
}

func (m *mockRenderer) FontTextureID() uint32 {
	return 1
}

func (m *mockRenderer) Resize(width, height int) {}

var display = imm.Vec2{X: 800, Y: 600}

// click presses the left button at (x, y) for the next frame.
func click(in *imm.InputState, x, y float32) {
	in.Reset()
	in.SetMousePos(x, y)
	in.SetMouseButton(imm.MouseButtonLeft, false)
	in.SetMouseButton(imm.MouseButtonLeft, true)
}

// idle starts a frame without mouse events at (x, y).
func idle(in *imm.InputState, x, y float32) {
	in.Reset()
	in.SetMousePos(x, y)
	in.SetMouseButton(imm.MouseButtonLeft, false)
}

func frame(t *testing.T, ui *imm.UI, in *imm.InputState, draw func(ctx *imm.Context)) {
	t.Helper()
	ctx := ui.Begin(in, display, 0.016)
	draw(ctx)
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}
}

func TestGUIBasicUsage(t *testing.T) {
	renderer := &mockRenderer{}
	ui := imm.New(renderer)
	input := imm.NewInputState()

	ctx := ui.Begin(input, display, 0.016)
	if ctx == nil {
		t.Fatal("expected non-nil context")
	}
	ctx.Text("Hello World")
	if err := ui.End(); err != nil {
		t.Fatalf("End() returned error: %v", err)
	}

	if renderer.renderCalls != 1 {
		t.Errorf("expected 1 render call, got %d", renderer.renderCalls)
	}
	// 11 glyph quads
	if renderer.lastVerts != 44 {
		t.Errorf("expected 44 vertices, got %d", renderer.lastVerts)
	}
	if ui.Context().FrameCount != 1 {
		t.Errorf("expected frame count 1, got %d", ui.Context().FrameCount)
	}
}

func TestWindowPosAndSize(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	frame(t, ui, input, func(ctx *imm.Context) {
		if got := ctx.WindowPos(); got != (imm.Vec2{}) {
			t.Errorf("WindowPos outside a window = %v, want zero", got)
		}
		ctx.SetNextWindowPos(imm.Vec2{X: 10, Y: 20})
		ctx.SetNextWindowSize(imm.Vec2{X: 200, Y: 100})
		ctx.Begin("Fixed", nil, 0)
		if got := ctx.WindowPos(); got != (imm.Vec2{X: 10, Y: 20}) {
			t.Errorf("WindowPos = %v, want (10, 20)", got)
		}
		if got := ctx.WindowSize(); got != (imm.Vec2{X: 200, Y: 100}) {
			t.Errorf("WindowSize = %v, want (200, 100)", got)
		}
		ctx.End()
	})

	// The position sticks without another SetNextWindowPos.
	frame(t, ui, input, func(ctx *imm.Context) {
		ctx.Begin("Fixed", nil, 0)
		if got := ctx.WindowPos(); got != (imm.Vec2{X: 10, Y: 20}) {
			t.Errorf("WindowPos on second frame = %v, want (10, 20)", got)
		}
		ctx.End()
	})
}

func TestWindowAutoSizeLag(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var sizes []imm.Vec2
	draw := func(ctx *imm.Context) {
		ctx.Begin("Auto", nil, 0)
		sizes = append(sizes, ctx.WindowSize())
		ctx.Text("hello")
		ctx.End()
	}
	frame(t, ui, input, draw)
	frame(t, ui, input, draw)

	if sizes[0] != (imm.Vec2{}) {
		t.Errorf("first frame size = %v, want zero", sizes[0])
	}
	// Width fits the title: 4 glyphs + frame padding + close area.
	// Height: title 19, padding 8, text 13, padding 8.
	if want := (imm.Vec2{X: 55, Y: 48}); sizes[1] != want {
		t.Errorf("second frame size = %v, want %v", sizes[1], want)
	}
}

func TestNewWindowsCascade(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var a, b imm.Vec2
	frame(t, ui, input, func(ctx *imm.Context) {
		ctx.Begin("A", nil, 0)
		a = ctx.WindowPos()
		ctx.End()
		ctx.Begin("B", nil, 0)
		b = ctx.WindowPos()
		ctx.End()
	})
	if a != (imm.Vec2{X: 60, Y: 60}) || b != (imm.Vec2{X: 80, Y: 80}) {
		t.Errorf("cascade = %v, %v", a, b)
	}
}

func TestButtonWithClick(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	click(input, 10, 10)
	var pressed bool
	frame(t, ui, input, func(ctx *imm.Context) {
		pressed = ctx.Button("Go", imm.Vec2{})
	})
	if !pressed {
		t.Error("button should be pressed when clicked")
	}

	// Holding the button does not press it again.
	input.Reset()
	frame(t, ui, input, func(ctx *imm.Context) {
		pressed = ctx.Button("Go", imm.Vec2{})
	})
	if pressed {
		t.Error("button should not be pressed while held")
	}
}

func TestButtonMissedClick(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	// Default size is 2x7 + 8 by 13 + 6, starting at (8, 8).
	click(input, 31, 10)
	frame(t, ui, input, func(ctx *imm.Context) {
		if ctx.Button("Go", imm.Vec2{}) {
			t.Error("click right of the button pressed it")
		}
	})
}

func TestButtonInWindowUsesLastFrameLayout(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var pressed []bool
	draw := func(ctx *imm.Context) {
		ctx.SetNextWindowPos(imm.Vec2{})
		ctx.SetNextWindowSize(imm.Vec2{X: 200, Y: 100})
		ctx.Begin("Win", nil, 0)
		pressed = append(pressed, ctx.Button("Go", imm.Vec2{}))
		ctx.End()
	}

	// Button at (8, 27): below the 19 pixel title bar and the padding.
	click(input, 12, 30)
	frame(t, ui, input, draw)
	click(input, 12, 30)
	frame(t, ui, input, draw)

	if pressed[0] {
		t.Error("window was not hovered before its first frame")
	}
	if !pressed[1] {
		t.Error("button should be pressed on the second frame")
	}
	if !ui.Context().WantCaptureMouse {
		t.Error("mouse over a window should be captured")
	}
}

func TestCloseButton(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	open := true
	draw := func(ctx *imm.Context) {
		ctx.SetNextWindowPos(imm.Vec2{})
		ctx.SetNextWindowSize(imm.Vec2{X: 200, Y: 100})
		ctx.Begin("Closable", &open, 0)
		ctx.End()
	}
	frame(t, ui, input, draw)
	// Close box spans x 183..196, y 3..16.
	click(input, 190, 8)
	frame(t, ui, input, draw)
	if open {
		t.Error("clicking the close box should clear open")
	}
}

func TestDragFloat(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	value := float32(1)
	var changed []bool
	draw := func(ctx *imm.Context) {
		changed = append(changed, ctx.DragFloat("X", &value, 0.5, 0, 10, ""))
	}

	click(input, 20, 12)
	frame(t, ui, input, draw)
	if changed[0] || value != 1 {
		t.Fatalf("activation frame changed value to %g", value)
	}

	input.Reset()
	input.SetMousePos(30, 12)
	frame(t, ui, input, draw)
	if !changed[1] || value != 6 {
		t.Errorf("after dragging 10px value = %g (changed %v), want 6", value, changed[1])
	}

	input.Reset()
	input.SetMousePos(100, 12)
	frame(t, ui, input, draw)
	if value != 10 {
		t.Errorf("value = %g, want clamped to 10", value)
	}

	// Releasing ends the drag.
	idle(input, 200, 12)
	frame(t, ui, input, draw)
	if changed[3] {
		t.Error("released drag should not change the value")
	}
}

func TestDragFloatUnbounded(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	value := float32(0)
	draw := func(ctx *imm.Context) {
		ctx.SetNextItemWidth(50)
		ctx.DragFloat("##v", &value, 1, 0, 0, "%.0f")
	}
	click(input, 10, 12)
	frame(t, ui, input, draw)
	input.Reset()
	input.SetMousePos(-90, 12)
	frame(t, ui, input, draw)
	if value != -100 {
		t.Errorf("value = %g, want -100", value)
	}
}

func TestTreeNodeToggle(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var open []bool
	var childX float32
	draw := func(ctx *imm.Context) {
		o := ctx.TreeNode("Node")
		open = append(open, o)
		if o {
			childX = ctx.CursorPosX()
			ctx.Text("child")
			ctx.TreePop()
		}
	}

	frame(t, ui, input, draw)
	click(input, 10, 10)
	frame(t, ui, input, draw)
	input.Reset()
	frame(t, ui, input, draw)
	click(input, 10, 10)
	frame(t, ui, input, draw)

	want := []bool{false, true, true, false}
	for i := range want {
		if open[i] != want[i] {
			t.Errorf("frame %d: open = %v, want %v", i, open[i], want[i])
		}
	}
	if childX != 29 {
		t.Errorf("child cursor X = %g, want padding 8 + indent 21", childX)
	}
}

func TestPushStyleColor(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	frame(t, ui, input, func(ctx *imm.Context) {
		before := ctx.Style().ButtonColor
		ctx.PushStyleColor(guikit.StyleColorButton, guikit.RGB(1, 0, 0))
		if got := ctx.Style().ButtonColor; got != 0xFF0000FF {
			t.Errorf("pushed ButtonColor = %#08x, want 0xff0000ff", got)
		}
		ctx.PushStyleColor(guikit.StyleColorButton, guikit.RGB(0, 1, 0))
		ctx.PopStyleColor(1)
		if got := ctx.Style().ButtonColor; got != 0xFF0000FF {
			t.Errorf("after one pop ButtonColor = %#08x", got)
		}
		ctx.PopStyleColor(1)
		if got := ctx.Style().ButtonColor; got != before {
			t.Errorf("restored ButtonColor = %#08x, want %#08x", got, before)
		}
	})

	// Pushed colors do not leak into the UI style.
	if ui.Style().ButtonColor != imm.DefaultStyle().ButtonColor {
		t.Error("UI style was modified")
	}
}

func TestPushStyleColorKeepsAlpha(t *testing.T) {
	style := imm.DefaultStyle()
	style.WindowBgColor = imm.RGBA(0, 0, 0, 128)
	ui := imm.New(&mockRenderer{}, imm.WithStyle(style))

	frame(t, ui, imm.NewInputState(), func(ctx *imm.Context) {
		ctx.PushStyleColor(guikit.StyleColorWindowBg, guikit.RGB(1, 1, 1))
		if got := ctx.Style().WindowBgColor; got != 0x80FFFFFF {
			t.Errorf("WindowBgColor = %#08x, want 0x80ffffff", got)
		}
		ctx.PopStyleColor(1)
	})
}

func TestIDStability(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var ids [2]imm.ID
	for i := range ids {
		frame(t, ui, input, func(ctx *imm.Context) {
			ctx.PushID("row")
			ids[i] = ctx.GetID("button")
			ctx.PopID()
		})
	}
	if ids[0] != ids[1] {
		t.Error("ID changed between frames")
	}

	frame(t, ui, input, func(ctx *imm.Context) {
		top := ctx.GetID("button")
		if top == ids[0] {
			t.Error("ID should depend on the enclosing scope")
		}
		ctx.PushID("a")
		a := ctx.GetID("x")
		ctx.PopID()
		ctx.PushID("b")
		b := ctx.GetID("x")
		ctx.PopID()
		if a == b {
			t.Error("same label under different scopes should differ")
		}
		if ctx.CurrentID() != 0 {
			t.Error("scope stack should be empty")
		}
	})
}

func TestFocus(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var focused, anyFocused bool
	draw := func(ctx *imm.Context) {
		ctx.SetNextWindowPos(imm.Vec2{})
		ctx.SetNextWindowSize(imm.Vec2{X: 200, Y: 100})
		ctx.Begin("A", nil, 0)
		focused = ctx.IsWindowFocused()
		ctx.End()
		anyFocused = ctx.IsAnyWindowFocused()
	}

	frame(t, ui, input, draw)
	if anyFocused {
		t.Error("no window should start focused")
	}

	click(input, 50, 50)
	frame(t, ui, input, draw)
	if !focused || !anyFocused {
		t.Errorf("after click inside: focused %v, any %v", focused, anyFocused)
	}

	click(input, 500, 500)
	frame(t, ui, input, draw)
	if focused || anyFocused {
		t.Errorf("after click outside: focused %v, any %v", focused, anyFocused)
	}
}

func TestWindowMovedByTitle(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var pos imm.Vec2
	draw := func(ctx *imm.Context) {
		ctx.Begin("Mover", nil, 0)
		pos = ctx.WindowPos()
		ctx.Text("content")
		ctx.End()
	}
	frame(t, ui, input, draw)
	click(input, 65, 65)
	frame(t, ui, input, draw)
	input.Reset()
	input.SetMousePos(85, 95)
	frame(t, ui, input, draw)

	if want := (imm.Vec2{X: 80, Y: 90}); pos != want {
		t.Errorf("pos = %v, want %v", pos, want)
	}
}

func TestMainMenu(t *testing.T) {
	renderer := &mockRenderer{}
	ui := imm.New(renderer)
	input := imm.NewInputState()

	var opened, picked bool
	draw := func(ctx *imm.Context) {
		opened, picked = false, false
		if ctx.BeginMainMenuBar() {
			if ctx.BeginMenu("File", true) {
				opened = true
				picked = ctx.MenuItem("Open", "Ctrl+O", false, true)
				ctx.EndMenu()
			}
			ctx.BeginMenu("Edit", false)
			ctx.EndMainMenuBar()
		}
	}

	frame(t, ui, input, draw)
	if opened {
		t.Fatal("menu should start closed")
	}

	// "File" spans x 8..44 in the 19 pixel bar.
	click(input, 10, 5)
	calls := renderer.renderCalls
	frame(t, ui, input, draw)
	if !opened {
		t.Fatal("clicked menu should open")
	}
	if renderer.renderCalls-calls != 2 {
		t.Errorf("open menu should render the foreground list too")
	}

	// The popup is measured now: item row at (16, 27).
	idle(input, 20, 30)
	frame(t, ui, input, draw)
	if !opened || picked {
		t.Fatalf("opened %v picked %v while hovering", opened, picked)
	}

	click(input, 20, 30)
	frame(t, ui, input, draw)
	if !picked {
		t.Error("clicking the item should pick it")
	}
	idle(input, 20, 30)
	frame(t, ui, input, draw)
	if opened {
		t.Error("picking an item should close the menu")
	}
}

func TestMenuClosedByOutsideClick(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var opened bool
	draw := func(ctx *imm.Context) {
		ctx.BeginMainMenuBar()
		opened = ctx.BeginMenu("File", true)
		if opened {
			ctx.EndMenu()
		}
		ctx.EndMainMenuBar()
	}
	frame(t, ui, input, draw)
	click(input, 10, 5)
	frame(t, ui, input, draw)
	click(input, 400, 400)
	frame(t, ui, input, draw)
	idle(input, 400, 400)
	frame(t, ui, input, draw)
	if opened {
		t.Error("click outside should close the menu")
	}
}

func TestDisabledMenuNeverOpens(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	draw := func(ctx *imm.Context) {
		ctx.BeginMainMenuBar()
		if ctx.BeginMenu("File", false) {
			t.Error("disabled menu opened")
			ctx.EndMenu()
		}
		ctx.EndMainMenuBar()
	}
	frame(t, ui, input, draw)
	click(input, 10, 5)
	frame(t, ui, input, draw)
	frame(t, ui, input, draw)
}

func TestWindowStackOverImm(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	var posA, posB imm.Vec2
	a, err := guikit.NewBasicWindow("A", func(tk guikit.Toolkit) error {
		posA = tk.WindowPos()
		tk.Text("alpha")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	b, err := guikit.NewBasicWindow("B", func(tk guikit.Toolkit) error {
		posB = tk.WindowPos()
		tk.Text("beta")
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	stack, err := guikit.NewWindowStack(guikit.Vertical, 10, a, b)
	if err != nil {
		t.Fatal(err)
	}

	for range 3 {
		frame(t, ui, input, func(ctx *imm.Context) {
			if err := stack.Draw(ctx); err != nil {
				t.Fatal(err)
			}
		})
	}

	// A: title 19 + padding 8 + text 13 + padding 8.
	if posA != (imm.Vec2{X: 60, Y: 60}) {
		t.Errorf("A at %v", posA)
	}
	if want := (imm.Vec2{X: 60, Y: 118}); posB != want {
		t.Errorf("B at %v, want %v", posB, want)
	}
	if got := stack.Size().Y; got != 48+10+48 {
		t.Errorf("stack height = %g", got)
	}
}

func TestEndFrameClosesLeftoverWindows(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	frame(t, ui, input, func(ctx *imm.Context) {
		ctx.Begin("Leak", nil, 0)
		ctx.PushStyleColor(guikit.StyleColorText, guikit.Gray(0.5))
	})
	frame(t, ui, input, func(ctx *imm.Context) {
		if got := ctx.WindowPos(); got != (imm.Vec2{}) {
			t.Errorf("a window is still open: %v", got)
		}
		if ctx.Style().TextColor != imm.DefaultStyle().TextColor {
			t.Error("pushed color leaked into the next frame")
		}
	})
}

func TestEndWithoutBegin(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	frame(t, ui, imm.NewInputState(), func(ctx *imm.Context) {
		ctx.End()
		ctx.PopID()
		ctx.PopStyleColor(1)
		ctx.TreePop()
	})
}

func TestWindowStackHiddenTailLeavesNextWindowAlone(t *testing.T) {
	ui := imm.New(&mockRenderer{})
	input := imm.NewInputState()

	content := func(tk guikit.Toolkit) error {
		tk.Text("x")
		return nil
	}
	w0, _ := guikit.NewBasicWindow("w0", content)
	w1, _ := guikit.NewBasicWindow("w1", content)
	w1.Hide()
	other, _ := guikit.NewBasicWindow("other", content)
	stack, err := guikit.NewWindowStack(guikit.Horizontal, 12, w0, w1)
	if err != nil {
		t.Fatal(err)
	}

	var otherPos imm.Vec2
	other.Hooks().PreClose.Add(func(tk guikit.Toolkit) { otherPos = tk.WindowPos() })

	for i := range 3 {
		frame(t, ui, input, func(ctx *imm.Context) {
			if err := stack.Draw(ctx); err != nil {
				t.Fatal(err)
			}
			if err := other.Draw(ctx); err != nil {
				t.Fatal(err)
			}
		})
		// Second window ever created takes the second cascade slot.
		if want := (imm.Vec2{X: 80, Y: 80}); otherPos != want {
			t.Errorf("frame %d: other at %v, want %v", i, otherPos, want)
		}
	}
}
