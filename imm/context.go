package imm

import (
	"github.com/charmbracelet/log"

	"github.com/go-theft-auto/guikit"
)

// Context holds the state of a frame. It implements guikit.Toolkit and is
// only valid between UI.Begin and UI.End.
//
// Windows, tree node flags and the focused window persist between frames;
// everything else is rebuilt every frame.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // menus and other popups, drawn on top

	Input         *InputState
	DisplaySize   Vec2
	DeltaTime     float32
	FrameCount    uint64
	FontTextureID uint32

	// WantCaptureMouse is true when the mouse is over a window, so the
	// application should not act on it.
	WantCaptureMouse bool

	style      Style
	colorStack []colorBackup
	atlas      *FontAtlas
	stateStore StateStore
	log        *log.Logger
	idStack    []ID

	windows   map[string]*window
	drawn     []*window // windows begun this frame, in draw order
	prevDrawn []*window
	stack     []*window
	root      window
	hovered   *window // top-most window under the mouse in the last frame's layout
	focused   string

	next          nextWindow
	nextItemWidth float32

	activeID   ID      // widget held by the mouse
	moving     *window // window dragged by its title bar
	lastMouse  Vec2
	mouseDelta Vec2

	menu menuState
}

var _ guikit.Toolkit = (*Context)(nil)

type colorBackup struct {
	field *uint32
	prev  uint32
}

type nextWindow struct {
	pos, size       Vec2
	hasPos, hasSize bool
}

func newContext(atlas *FontAtlas, store StateStore, l *log.Logger) *Context {
	return &Context{
		atlas:      atlas,
		stateStore: store,
		log:        l,
		windows:    make(map[string]*window),
		colorStack: make([]colorBackup, 0, 8),
		idStack:    make([]ID, 0, 32),
		root:       window{name: "##Root"},
	}
}

// Style returns the style of the frame, including pushed colors.
func (ctx *Context) Style() Style { return ctx.style }

// Atlas returns the glyph atlas used for text.
func (ctx *Context) Atlas() *FontAtlas { return ctx.atlas }

// reset prepares the context for a new frame.
func (ctx *Context) reset(input *InputState, displaySize Vec2, deltaTime float32) {
	if input == nil {
		input = NewInputState()
	}
	ctx.FrameCount++
	ctx.Input = input
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime

	mouse := input.MousePos()
	if ctx.FrameCount > 1 {
		ctx.mouseDelta = mouse.Sub(ctx.lastMouse)
	}
	ctx.lastMouse = mouse

	ctx.colorStack = ctx.colorStack[:0]
	ctx.idStack = ctx.idStack[:0]
	ctx.stack = ctx.stack[:0]
	ctx.prevDrawn, ctx.drawn = ctx.drawn, ctx.prevDrawn[:0]
	ctx.next = nextWindow{}
	ctx.nextItemWidth = 0
	ctx.menu.consumed = false

	ctx.hovered = ctx.windowAt(mouse)
	ctx.WantCaptureMouse = ctx.hovered != nil

	if !input.MouseDown(MouseButtonLeft) || input.MouseClicked(MouseButtonLeft) {
		ctx.activeID = 0
		ctx.moving = nil
	}
	if input.MouseClicked(MouseButtonLeft) && ctx.hovered == nil && ctx.focused != "" {
		ctx.log.Debug("focus cleared", "window", ctx.focused)
		ctx.focused = ""
	}

	ctx.root.pos = Vec2{}
	ctx.root.size = displaySize
	ctx.root.dl = ctx.DrawList
	ctx.root.indent = 0
	ctx.root.cursor = ctx.style.WindowPadding
	ctx.root.lastItem = Rect{X: ctx.root.cursor.X, Y: ctx.root.cursor.Y}
}

// endFrame closes what the frame left open and settles menu state.
func (ctx *Context) endFrame() {
	if n := len(ctx.stack); n > 0 {
		ctx.log.Warn("windows left open at end of frame", "count", n, "top", ctx.stack[n-1].name)
		for len(ctx.stack) > 0 {
			ctx.popWindow()
		}
	}
	if n := len(ctx.colorStack); n > 0 {
		ctx.log.Warn("style colors left pushed at end of frame", "count", n)
	}
	if n := len(ctx.idStack); n > 0 {
		ctx.log.Warn("identity scopes left open at end of frame", "count", n)
	}
	if ctx.Input.MouseClicked(MouseButtonLeft) && !ctx.menu.consumed && (ctx.hovered == nil || !ctx.hovered.popup) {
		ctx.menu.open = 0
	}
}

// windowAt returns the top-most window of the previous frame containing p.
// Popups are drawn on the foreground list and are checked first.
func (ctx *Context) windowAt(p Vec2) *window {
	for _, popups := range []bool{true, false} {
		for i := len(ctx.prevDrawn) - 1; i >= 0; i-- {
			w := ctx.prevDrawn[i]
			if w.popup == popups && w.rect().Contains(p) {
				return w
			}
		}
	}
	return nil
}

// current returns the innermost open window, or the implicit root window.
func (ctx *Context) current() *window {
	if n := len(ctx.stack); n > 0 {
		return ctx.stack[n-1]
	}
	return &ctx.root
}

func (ctx *Context) drawList() *DrawList {
	return ctx.current().dl
}

// isHovered reports whether the mouse is over r in the current window and
// inside its clip rectangle.
func (ctx *Context) isHovered(r Rect) bool {
	if ctx.moving != nil {
		return false
	}
	w := ctx.current()
	if w != ctx.hovered && (w != &ctx.root || ctx.hovered != nil) {
		return false
	}
	m := ctx.Input.MousePos()
	clip := w.dl.ClipRect()
	return r.Contains(m) && m.X >= clip[0] && m.Y >= clip[1] && m.X < clip[2] && m.Y < clip[3]
}

// clicked reports a left click on r, making id the active widget.
func (ctx *Context) clicked(id ID, r Rect) bool {
	if !ctx.isHovered(r) || !ctx.Input.MouseClicked(MouseButtonLeft) {
		return false
	}
	ctx.activeID = id
	return true
}

func (ctx *Context) held(id ID) bool {
	return ctx.activeID == id && ctx.Input.MouseDown(MouseButtonLeft)
}

func (ctx *Context) lineHeight() float32 {
	return ctx.atlas.CellH * ctx.style.FontScale
}

// MeasureText returns the size of rendered text.
func (ctx *Context) MeasureText(text string) Vec2 {
	return ctx.atlas.MeasureText(text, ctx.style.FontScale)
}

func (ctx *Context) addText(pos Vec2, text string, color uint32) {
	ctx.drawList().AddText(pos, text, color, ctx.atlas, ctx.FontTextureID, ctx.style.FontScale)
}

// PushStyleColor overrides a style color until the matching PopStyleColor.
// The alpha of the overridden color is kept.
func (ctx *Context) PushStyleColor(slot guikit.StyleColor, c guikit.Color) {
	field := ctx.style.color(slot)
	if field == nil {
		ctx.log.Warn("unknown style color", "slot", slot)
		ctx.colorStack = append(ctx.colorStack, colorBackup{})
		return
	}
	ctx.colorStack = append(ctx.colorStack, colorBackup{field: field, prev: *field})
	*field = withAlpha(c.Packed(1), uint8(*field>>24))
}

// PopStyleColor restores the n most recently pushed colors.
func (ctx *Context) PopStyleColor(n int) {
	for range n {
		last := len(ctx.colorStack) - 1
		if last < 0 {
			ctx.log.Warn("PopStyleColor without PushStyleColor")
			return
		}
		if b := ctx.colorStack[last]; b.field != nil {
			*b.field = b.prev
		}
		ctx.colorStack = ctx.colorStack[:last]
	}
}

// CursorPosX returns the cursor X relative to the current window.
func (ctx *Context) CursorPosX() float32 {
	w := ctx.current()
	return w.cursor.X - w.pos.X
}

// SetCursorPosX moves the cursor to x relative to the current window.
func (ctx *Context) SetCursorPosX(x float32) {
	w := ctx.current()
	w.cursor.X = w.pos.X + x
}

// CursorPosY returns the cursor Y relative to the current window.
func (ctx *Context) CursorPosY() float32 {
	w := ctx.current()
	return w.cursor.Y - w.pos.Y
}

// SetCursorPosY moves the cursor to y relative to the current window.
func (ctx *Context) SetCursorPosY(y float32) {
	w := ctx.current()
	w.cursor.Y = w.pos.Y + y
}

// SameLine places the next item right of the last one.
func (ctx *Context) SameLine() {
	w := ctx.current()
	w.cursor = Vec2{X: w.lastItem.X + w.lastItem.W + ctx.style.ItemSpacing.X, Y: w.lastItem.Y}
}

// SetNextItemWidth sets the width of the next drag control.
func (ctx *Context) SetNextItemWidth(width float32) {
	ctx.nextItemWidth = width
}

// itemRect reserves a rectangle of the given size at the cursor and moves
// the cursor to the next line.
func (ctx *Context) itemRect(size Vec2) Rect {
	w := ctx.current()
	r := Rect{X: w.cursor.X, Y: w.cursor.Y, W: size.X, H: size.Y}
	w.lastItem = r

	end := r.Max().Sub(w.pos)
	w.content.X = maxf(w.content.X, end.X)
	w.content.Y = maxf(w.content.Y, end.Y)

	if w.horizontal {
		w.cursor = Vec2{X: r.X + r.W + ctx.style.ItemSpacing.X, Y: r.Y}
	} else {
		w.cursor = Vec2{X: w.lineStart(ctx.style), Y: r.Y + r.H + ctx.style.ItemSpacing.Y}
	}
	return r
}
