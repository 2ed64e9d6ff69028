package imm

import "github.com/go-theft-auto/guikit"

// window is the persistent state of a toolkit window.
type window struct {
	name  string
	flags guikit.WindowFlags
	pos   Vec2
	size  Vec2

	sized      bool // an explicit size was set at least once
	autoSize   bool // size follows the content measured in the last frame
	popup      bool // drawn on the foreground list, never focused
	horizontal bool // items flow left to right (menu bar)

	dl       *DrawList
	cursor   Vec2 // screen coordinates
	indent   float32
	lastItem Rect
	content  Vec2 // content extent relative to pos, measured this frame
}

func (w *window) rect() Rect {
	return Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: w.size.Y}
}

func (w *window) titleHeight(s Style, lineH float32) float32 {
	if w.flags.Has(guikit.WindowNoTitleBar) {
		return 0
	}
	return lineH + 2*s.FramePadding.Y
}

func (w *window) lineStart(s Style) float32 {
	return w.pos.X + s.WindowPadding.X + w.indent
}

// window returns the state of the named window, creating it on first use.
// New windows cascade from the top-left corner.
func (ctx *Context) window(name string) *window {
	w, ok := ctx.windows[name]
	if !ok {
		n := float32(len(ctx.windows))
		w = &window{name: name, pos: Vec2{X: 60 + 20*n, Y: 60 + 20*n}}
		ctx.windows[name] = w
		ctx.log.Debug("window created", "name", name)
	}
	return w
}

// SetNextWindowPos sets the position of the next window opened with Begin.
func (ctx *Context) SetNextWindowPos(pos Vec2) {
	ctx.next.pos, ctx.next.hasPos = pos, true
}

// SetNextWindowSize sets the size of the next window opened with Begin.
// Windows never given a size are sized to their content.
func (ctx *Context) SetNextWindowSize(size Vec2) {
	ctx.next.size, ctx.next.hasSize = size, true
}

// Begin opens a window. When open is not nil the window gets a close button
// that sets *open to false. Begin always returns true; every Begin must be
// matched by End.
func (ctx *Context) Begin(name string, open *bool, flags guikit.WindowFlags) bool {
	w := ctx.window(name)
	w.flags = flags
	w.dl = ctx.DrawList

	switch {
	case ctx.next.hasPos:
		w.pos = ctx.next.pos
	case ctx.moving == w:
		w.pos = w.pos.Add(ctx.mouseDelta)
	}
	if ctx.next.hasSize {
		w.size, w.sized = ctx.next.size, true
	}
	w.autoSize = flags.Has(guikit.WindowAlwaysAutoResize) || !w.sized
	ctx.next = nextWindow{}

	s := ctx.style
	lineH := ctx.lineHeight()
	titleH := w.titleHeight(s, lineH)
	mouse := ctx.Input.MousePos()

	startMove := false
	if ctx.hovered == w && ctx.Input.MouseClicked(MouseButtonLeft) {
		if ctx.focused != name {
			ctx.log.Debug("window focused", "name", name)
		}
		ctx.focused = name
		title := Rect{X: w.pos.X, Y: w.pos.Y, W: w.size.X, H: titleH}
		startMove = titleH > 0 && !flags.Has(guikit.WindowNoMove) && title.Contains(mouse)
	}

	r := w.rect()
	if !flags.Has(guikit.WindowNoBackground) {
		w.dl.AddRect(r, s.WindowBgColor)
		w.dl.AddRectOutline(r, s.BorderColor, s.BorderSize)
	}
	if titleH > 0 {
		bg := s.TitleBgColor
		if ctx.focused == name {
			bg = s.TitleBgActiveColor
		}
		w.dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: titleH}, bg)
		w.dl.AddText(Vec2{X: r.X + s.FramePadding.X, Y: r.Y + s.FramePadding.Y},
			displayLabel(name), s.TextColor, ctx.atlas, ctx.FontTextureID, s.FontScale)
	}

	ctx.pushWindow(w, Vec2{X: s.WindowPadding.X, Y: titleH + s.WindowPadding.Y})

	if open != nil && titleH > 0 {
		ctx.closeButton(w, open, lineH)
	}
	// The close box takes the click before the title bar does.
	if startMove && ctx.activeID == 0 {
		ctx.moving = w
	}
	return true
}

// closeButton draws the title bar close button of w.
func (ctx *Context) closeButton(w *window, open *bool, lineH float32) {
	s := ctx.style
	r := Rect{X: w.pos.X + w.size.X - lineH - s.FramePadding.X, Y: w.pos.Y + s.FramePadding.Y, W: lineH, H: lineH}
	id := ctx.GetID("##close")
	if ctx.isHovered(r) {
		w.dl.AddRect(r, s.ButtonHoveredColor)
	}
	w.dl.AddText(Vec2{X: r.X + (lineH-ctx.atlas.CellW*s.FontScale)/2, Y: r.Y}, "x", s.TextColor, ctx.atlas, ctx.FontTextureID, s.FontScale)
	if ctx.clicked(id, r) {
		*open = false
		ctx.log.Debug("window closed", "name", w.name)
	}
}

// End closes the window opened by the matching Begin.
func (ctx *Context) End() {
	if len(ctx.stack) == 0 {
		ctx.log.Warn("End without Begin")
		return
	}
	ctx.popWindow()
}

// pushWindow makes w the current window with its cursor at offset from the
// window origin.
func (ctx *Context) pushWindow(w *window, offset Vec2) {
	w.indent = 0
	w.content = Vec2{}
	w.cursor = w.pos.Add(offset)
	w.lastItem = Rect{X: w.cursor.X, Y: w.cursor.Y}

	w.dl.PushClipRect(w.rect())
	ctx.idStack = append(ctx.idStack, hashID(0, w.name))
	ctx.stack = append(ctx.stack, w)
	ctx.drawn = append(ctx.drawn, w)
}

// popWindow closes the current window. Auto-sized windows take the size of
// the content drawn this frame, which shows from the next frame on.
func (ctx *Context) popWindow() {
	w := ctx.stack[len(ctx.stack)-1]
	ctx.stack = ctx.stack[:len(ctx.stack)-1]
	if n := len(ctx.idStack); n > 0 {
		ctx.idStack = ctx.idStack[:n-1]
	}
	w.dl.PopClipRect()

	if w.autoSize {
		s := ctx.style
		size := w.content.Add(s.WindowPadding)
		if titleH := w.titleHeight(s, ctx.lineHeight()); titleH > 0 {
			size.X = maxf(size.X, ctx.MeasureText(displayLabel(w.name)).X+2*s.FramePadding.X+titleH)
		}
		w.size = Vec2{X: maxf(size.X, s.WindowMinSize.X), Y: maxf(size.Y, s.WindowMinSize.Y)}
	}
}

// WindowPos returns the position of the current window.
func (ctx *Context) WindowPos() Vec2 {
	if len(ctx.stack) == 0 {
		return Vec2{}
	}
	return ctx.current().pos
}

// WindowSize returns the size of the current window. Auto-sized windows
// report the size measured in the previous frame.
func (ctx *Context) WindowSize() Vec2 {
	if len(ctx.stack) == 0 {
		return Vec2{}
	}
	return ctx.current().size
}

// IsWindowFocused reports whether the current window holds the focus.
func (ctx *Context) IsWindowFocused() bool {
	return len(ctx.stack) > 0 && ctx.current().name == ctx.focused
}

// IsAnyWindowFocused reports whether any window holds the focus.
func (ctx *Context) IsAnyWindowFocused() bool {
	return ctx.focused != ""
}

// FocusWindow gives the focus to the named window; "" clears it.
func (ctx *Context) FocusWindow(name string) {
	ctx.focused = name
}
