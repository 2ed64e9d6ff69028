// Package guitest provides a recording guikit.Toolkit for tests.
//
// A Recorder keeps a log of every toolkit call and simulates just enough
// toolkit behavior for the helpers: window positions and sizes, identity
// scopes, a cursor, focus and scripted clicks, drags and expanded tree nodes.
//
// Widget identities are the identity scopes joined with "/", followed by the
// label when it is not empty. A button "Go" drawn inside PushID("row") has the
// ID "row/Go".
package guitest

import (
	"fmt"
	"strings"

	"github.com/go-theft-auto/guikit"
)

// Layout constants of the simulated toolkit.
const (
	CharWidth     float32 = 7
	ItemSpacing   float32 = 8
	WindowPadding float32 = 8
	DragWidth     float32 = 100
	TreeArrow     float32 = 20
)

// DefaultWindowSize is the size of windows that never had one set.
var DefaultWindowSize = guikit.Vec2{X: 100, Y: 100}

// Call is one recorded toolkit call.
type Call struct {
	Op    string  // method name, e.g. "Button"
	Label string  // label, name or id argument
	ID    string  // full widget identity, widgets only
	X     float32 // window-local cursor X when the call was made
	Arg   any     // extra argument: color, size, position, new value
}

func (c Call) String() string {
	if c.Label == "" {
		return c.Op
	}
	return c.Op + "(" + c.Label + ")"
}

type pushedColor struct {
	slot  guikit.StyleColor
	color guikit.Color
}

type windowState struct {
	name     string
	pos      guikit.Vec2
	size     guikit.Vec2
	lineX    float32
	cursorX  float32
	cursorY  float32
	lastEndX float32
	lastY    float32
}

// Recorder is a guikit.Toolkit that records calls.
type Recorder struct {
	Calls []Call

	// Problems lists misuse detected by the recorder: unbalanced scopes,
	// pops without pushes, End without Begin.
	Problems []string

	// ExpandAll makes every TreeNode report open.
	ExpandAll bool

	// MenuBarHidden makes BeginMainMenuBar report false.
	MenuBarHidden bool

	clicks    map[string]bool
	drags     map[string]float32
	expanded  map[string]bool
	openMenus map[string]bool
	closing   map[string]bool
	collapsed map[string]bool

	windows  map[string]*windowState
	current  []*windowState
	focused  string
	nextPos  *guikit.Vec2
	nextSize *guikit.Vec2

	nextItemWidth float32
	ids           []string
	colors        []pushedColor
	menuDepth     int
	treeDepth     int
	root          windowState
}

// New creates an empty recorder.
func New() *Recorder {
	return &Recorder{
		clicks:    make(map[string]bool),
		drags:     make(map[string]float32),
		expanded:  make(map[string]bool),
		openMenus: make(map[string]bool),
		closing:   make(map[string]bool),
		collapsed: make(map[string]bool),
		windows:   make(map[string]*windowState),
		root:      windowState{name: "##root", lineX: WindowPadding, cursorX: WindowPadding},
	}
}

var _ guikit.Toolkit = (*Recorder)(nil)

// Click makes the widget with the given ID (button, menu or menu item)
// report a click the next time it is drawn.
func (r *Recorder) Click(id string) { r.clicks[id] = true }

// Drag makes the drag control with the given ID report value the next time
// it is drawn.
func (r *Recorder) Drag(id string, value float32) { r.drags[id] = value }

// Expand sets whether the tree node with the given ID reports open.
func (r *Recorder) Expand(id string, open bool) { r.expanded[id] = open }

// OpenMenu sets whether the menu with the given label reports open.
func (r *Recorder) OpenMenu(label string, open bool) { r.openMenus[label] = open }

// CloseWindow makes the next Begin of the named window clear its open flag,
// as if the user clicked the close button.
func (r *Recorder) CloseWindow(name string) { r.closing[name] = true }

// Collapse sets whether Begin of the named window reports false.
func (r *Recorder) Collapse(name string, collapsed bool) { r.collapsed[name] = collapsed }

// Focus makes the named window the focused one; "" removes the focus.
func (r *Recorder) Focus(name string) { r.focused = name }

// SetWindowSize sets the size the named window reports when no
// SetNextWindowSize is pending.
func (r *Recorder) SetWindowSize(name string, size guikit.Vec2) { r.window(name).size = size }

// SetWindowPos sets the position the named window reports when no
// SetNextWindowPos is pending.
func (r *Recorder) SetWindowPos(name string, pos guikit.Vec2) { r.window(name).pos = pos }

// WindowState returns the last position and size of the named window.
func (r *Recorder) WindowState(name string) (pos, size guikit.Vec2, ok bool) {
	w, ok := r.windows[name]
	if !ok {
		return guikit.Vec2{}, guikit.Vec2{}, false
	}
	return w.pos, w.size, true
}

// Reset clears the call log and the problems, keeping window state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
	r.Problems = r.Problems[:0]
}

// Ops returns the recorded calls formatted with Call.String.
func (r *Recorder) Ops() []string {
	ops := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		ops[i] = c.String()
	}
	return ops
}

// Filter returns the calls of the given operation in order.
func (r *Recorder) Filter(op string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many calls of the given operation were recorded.
func (r *Recorder) Count(op string) int {
	return len(r.Filter(op))
}

// Find returns the first call of op whose ID has the given suffix.
func (r *Recorder) Find(op, idSuffix string) (Call, bool) {
	for _, c := range r.Calls {
		if c.Op == op && strings.HasSuffix(c.ID, idSuffix) {
			return c, true
		}
	}
	return Call{}, false
}

// ColorDepth returns the number of style colors currently pushed.
func (r *Recorder) ColorDepth() int { return len(r.colors) }

// IDDepth returns the number of identity scopes currently pushed.
func (r *Recorder) IDDepth() int { return len(r.ids) }

// CheckBalanced records a problem for every scope still open. Call it at the
// end of a frame.
func (r *Recorder) CheckBalanced() {
	if n := len(r.ids); n > 0 {
		r.problem("%d identity scopes left open: %v", n, r.ids)
	}
	if n := len(r.colors); n > 0 {
		r.problem("%d style colors left pushed", n)
	}
	if n := len(r.current); n > 0 {
		r.problem("%d windows left open", n)
	}
	if r.menuDepth > 0 {
		r.problem("%d menus left open", r.menuDepth)
	}
	if r.treeDepth > 0 {
		r.problem("%d tree nodes left open", r.treeDepth)
	}
}

func (r *Recorder) problem(format string, args ...any) {
	r.Problems = append(r.Problems, fmt.Sprintf(format, args...))
}

func (r *Recorder) record(c Call) {
	r.Calls = append(r.Calls, c)
}

func (r *Recorder) window(name string) *windowState {
	w, ok := r.windows[name]
	if !ok {
		w = &windowState{name: name, size: DefaultWindowSize}
		r.windows[name] = w
	}
	return w
}

// top returns the current window, or the implicit root window.
func (r *Recorder) top() *windowState {
	if n := len(r.current); n > 0 {
		return r.current[n-1]
	}
	return &r.root
}

func (r *Recorder) id(label string) string {
	id := strings.Join(r.ids, "/")
	if label == "" {
		return id
	}
	if id == "" {
		return label
	}
	return id + "/" + label
}

// item advances the cursor past an item of the given width.
func (r *Recorder) item(width float32) {
	w := r.top()
	w.lastEndX = w.cursorX + width
	w.lastY = w.cursorY
	w.cursorX = w.lineX
	w.cursorY += 20
}
