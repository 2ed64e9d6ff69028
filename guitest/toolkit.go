package guitest

import (
	"unicode/utf8"

	"github.com/go-theft-auto/guikit"
)

func textWidth(s string) float32 {
	return float32(utf8.RuneCountInString(s)) * CharWidth
}

// Begin opens a window scope. Pending SetNextWindow* values are applied to
// the window; otherwise the stored position and size are kept.
func (r *Recorder) Begin(name string, open *bool, flags guikit.WindowFlags) bool {
	w := r.openWindow(name)
	if flags.Has(guikit.WindowNoTitleBar) {
		w.cursorY = 0
	}
	if open != nil && r.closing[name] {
		*open = false
		delete(r.closing, name)
	}
	r.current = append(r.current, w)
	r.record(Call{Op: "Begin", Label: name, Arg: flags})
	return !r.collapsed[name]
}

// openWindow applies pending SetNextWindow* values to the named window and
// resets its cursor.
func (r *Recorder) openWindow(name string) *windowState {
	w := r.window(name)
	if r.nextPos != nil {
		w.pos = *r.nextPos
		r.nextPos = nil
	}
	if r.nextSize != nil {
		w.size = *r.nextSize
		r.nextSize = nil
	}
	w.lineX, w.cursorX, w.cursorY = WindowPadding, WindowPadding, WindowPadding
	return w
}

// End closes the current window scope.
func (r *Recorder) End() {
	r.record(Call{Op: "End"})
	if len(r.current) == 0 {
		r.problem("End without Begin")
		return
	}
	r.current = r.current[:len(r.current)-1]
}

func (r *Recorder) SetNextWindowPos(pos guikit.Vec2) {
	r.record(Call{Op: "SetNextWindowPos", Arg: pos})
	r.nextPos = &pos
}

func (r *Recorder) SetNextWindowSize(size guikit.Vec2) {
	r.record(Call{Op: "SetNextWindowSize", Arg: size})
	r.nextSize = &size
}

func (r *Recorder) WindowPos() guikit.Vec2 {
	if len(r.current) == 0 {
		return guikit.Vec2{}
	}
	return r.top().pos
}

func (r *Recorder) WindowSize() guikit.Vec2 {
	if len(r.current) == 0 {
		return guikit.Vec2{}
	}
	return r.top().size
}

func (r *Recorder) IsWindowFocused() bool {
	return len(r.current) > 0 && r.focused != "" && r.top().name == r.focused
}

func (r *Recorder) IsAnyWindowFocused() bool { return r.focused != "" }

// MainMenuBarName is the window name the main menu bar is tracked under.
const MainMenuBarName = "##MainMenuBar"

// BeginMainMenuBar opens the menu bar as a window named MainMenuBarName, so
// WindowPos and WindowSize describe the bar while it is open.
func (r *Recorder) BeginMainMenuBar() bool {
	r.record(Call{Op: "BeginMainMenuBar"})
	if r.MenuBarHidden {
		return false
	}
	r.menuDepth++
	r.current = append(r.current, r.openWindow(MainMenuBarName))
	return true
}

func (r *Recorder) EndMainMenuBar() {
	r.record(Call{Op: "EndMainMenuBar"})
	r.popMenu("EndMainMenuBar")
	if len(r.current) > 0 && r.top().name == MainMenuBarName {
		r.current = r.current[:len(r.current)-1]
	}
}

// BeginMenu reports true when the menu was opened with OpenMenu or clicked
// with Click(label), and the menu is enabled.
func (r *Recorder) BeginMenu(label string, enabled bool) bool {
	r.record(Call{Op: "BeginMenu", Label: label, ID: label, Arg: enabled})
	open := r.openMenus[label] || r.consumeClick(label)
	if !open || !enabled {
		return false
	}
	r.menuDepth++
	return true
}

func (r *Recorder) EndMenu() {
	r.record(Call{Op: "EndMenu"})
	r.popMenu("EndMenu")
}

func (r *Recorder) popMenu(op string) {
	if r.menuDepth == 0 {
		r.problem("%s without a matching begin", op)
		return
	}
	r.menuDepth--
}

// MenuItem reports a click scheduled with Click(label) when enabled.
func (r *Recorder) MenuItem(label, shortcut string, selected, enabled bool) bool {
	r.record(Call{Op: "MenuItem", Label: label, ID: label, Arg: shortcut})
	return r.consumeClick(label) && enabled
}

func (r *Recorder) PushID(id string) {
	r.record(Call{Op: "PushID", Label: id})
	r.ids = append(r.ids, id)
}

func (r *Recorder) PopID() {
	r.record(Call{Op: "PopID"})
	if len(r.ids) == 0 {
		r.problem("PopID without PushID")
		return
	}
	r.ids = r.ids[:len(r.ids)-1]
}

func (r *Recorder) PushStyleColor(slot guikit.StyleColor, c guikit.Color) {
	r.record(Call{Op: "PushStyleColor", Label: slot.String(), Arg: c})
	r.colors = append(r.colors, pushedColor{slot, c})
}

func (r *Recorder) PopStyleColor(n int) {
	r.record(Call{Op: "PopStyleColor", Arg: n})
	if n > len(r.colors) {
		r.problem("PopStyleColor(%d) with %d pushed", n, len(r.colors))
		n = len(r.colors)
	}
	r.colors = r.colors[:len(r.colors)-n]
}

// PushedColor returns the innermost color of the slot still on the stack.
func (r *Recorder) PushedColor(slot guikit.StyleColor) (guikit.Color, bool) {
	for i := len(r.colors) - 1; i >= 0; i-- {
		if r.colors[i].slot == slot {
			return r.colors[i].color, true
		}
	}
	return guikit.Color{}, false
}

// Button reports a click scheduled with Click for its ID.
func (r *Recorder) Button(label string, size guikit.Vec2) bool {
	id := r.id(label)
	r.record(Call{Op: "Button", Label: label, ID: id, X: r.top().cursorX, Arg: size})
	width := size.X
	if width <= 0 {
		width = textWidth(label) + 2*WindowPadding
	}
	r.item(width)
	return r.consumeClick(id)
}

// DragFloat stores a value scheduled with Drag, clamped to [min, max] when
// the range is not empty, and reports whether it changed.
func (r *Recorder) DragFloat(label string, value *float32, speed, min, max float32, format string) bool {
	id := r.id(label)
	r.record(Call{Op: "DragFloat", Label: label, ID: id, X: r.top().cursorX, Arg: *value})
	width := r.nextItemWidth
	if width <= 0 {
		width = DragWidth
	}
	r.nextItemWidth = 0
	r.item(width)

	v, ok := r.drags[id]
	if !ok {
		return false
	}
	delete(r.drags, id)
	if min < max {
		v = clamp(v, min, max)
	}
	if v == *value {
		return false
	}
	*value = v
	return true
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (r *Recorder) SetNextItemWidth(width float32) {
	r.record(Call{Op: "SetNextItemWidth", Arg: width})
	r.nextItemWidth = width
}

// TreeNode reports open for nodes expanded with Expand, or every node when
// ExpandAll is set.
func (r *Recorder) TreeNode(label string) bool {
	id := r.id(label)
	r.record(Call{Op: "TreeNode", Label: label, ID: id, X: r.top().cursorX})
	r.item(textWidth(label) + TreeArrow)
	open, ok := r.expanded[id]
	if !ok {
		open = r.ExpandAll
	}
	if open {
		r.treeDepth++
	}
	return open
}

func (r *Recorder) TreePop() {
	r.record(Call{Op: "TreePop"})
	if r.treeDepth == 0 {
		r.problem("TreePop without an open TreeNode")
		return
	}
	r.treeDepth--
}

func (r *Recorder) Text(text string) {
	r.record(Call{Op: "Text", Label: text, X: r.top().cursorX})
	r.item(textWidth(text))
}

// SameLine moves the cursor back to the end of the last item.
func (r *Recorder) SameLine() {
	r.record(Call{Op: "SameLine"})
	w := r.top()
	w.cursorX = w.lastEndX + ItemSpacing
	w.cursorY = w.lastY
}

func (r *Recorder) CursorPosX() float32 { return r.top().cursorX }

func (r *Recorder) SetCursorPosX(x float32) {
	r.record(Call{Op: "SetCursorPosX", Arg: x})
	r.top().cursorX = x
}

func (r *Recorder) CursorPosY() float32 { return r.top().cursorY }

func (r *Recorder) SetCursorPosY(y float32) {
	r.record(Call{Op: "SetCursorPosY", Arg: y})
	r.top().cursorY = y
}

func (r *Recorder) consumeClick(id string) bool {
	if !r.clicks[id] {
		return false
	}
	delete(r.clicks, id)
	return true
}
