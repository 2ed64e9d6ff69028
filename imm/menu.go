package imm

import (
	"fmt"

	"github.com/go-theft-auto/guikit"
)

// MainMenuBarName is the window name of the main menu bar.
const MainMenuBarName = "##MainMenuBar"

// menuState tracks the single open menu. A click that no menu consumes
// closes it at the end of the frame.
type menuState struct {
	open     ID
	consumed bool
}

// BeginMainMenuBar opens a bar across the top of the display. Menus
// begun inside it are laid out left to right. It always returns true.
func (ctx *Context) BeginMainMenuBar() bool {
	s := ctx.style
	w := ctx.window(MainMenuBarName)
	w.flags = guikit.WindowNoTitleBar | guikit.WindowNoMove | guikit.WindowNoResize
	w.pos = Vec2{}
	w.size = Vec2{X: ctx.DisplaySize.X, Y: ctx.lineHeight() + 2*s.FramePadding.Y}
	w.sized, w.autoSize, w.horizontal = true, false, true
	w.dl = ctx.DrawList
	ctx.next = nextWindow{}

	w.dl.AddRect(w.rect(), s.MenuBarBgColor)
	ctx.pushWindow(w, Vec2{X: s.WindowPadding.X, Y: 0})
	return true
}

// EndMainMenuBar closes the main menu bar.
func (ctx *Context) EndMainMenuBar() {
	if len(ctx.stack) == 0 || ctx.current().name != MainMenuBarName {
		ctx.log.Warn("EndMainMenuBar without BeginMainMenuBar")
		return
	}
	ctx.popWindow()
}

// BeginMenu draws a menu entry and reports whether its popup is open.
// Clicking the entry toggles the popup; hovering another entry while a
// menu is open switches to it.
func (ctx *Context) BeginMenu(label string, enabled bool) bool {
	s := ctx.style
	id := ctx.GetID(label)
	text := displayLabel(label)
	ts := ctx.MeasureText(text)
	r := ctx.itemRect(Vec2{X: ts.X + 2*s.FramePadding.X, Y: ts.Y + 2*s.FramePadding.Y})

	hovered := ctx.isHovered(r)
	if enabled {
		switch {
		case ctx.clicked(id, r):
			ctx.menu.consumed = true
			if ctx.menu.open == id {
				ctx.menu.open = 0
			} else {
				ctx.menu.open = id
			}
		case hovered && ctx.menu.open != 0 && ctx.menu.open != id:
			ctx.menu.open = id
		}
	}
	open := enabled && ctx.menu.open == id

	if open || (hovered && enabled) {
		ctx.drawList().AddRect(r, s.HeaderColor)
	}
	color := s.TextColor
	if !enabled {
		color = s.TextDisabledColor
	}
	ctx.addText(Vec2{X: r.X + s.FramePadding.X, Y: r.Y + s.FramePadding.Y}, text, color)
	if !open {
		return false
	}

	p := ctx.window(fmt.Sprintf("##Menu_%016x", uint64(id)))
	p.flags = guikit.WindowNoTitleBar | guikit.WindowNoMove | guikit.WindowAlwaysAutoResize
	p.popup, p.autoSize = true, true
	p.pos = Vec2{X: r.X, Y: r.Y + r.H}
	p.dl = ctx.ForegroundDrawList
	p.dl.AddRect(p.rect(), s.PopupBgColor)
	p.dl.AddRectOutline(p.rect(), s.BorderColor, s.BorderSize)
	ctx.pushWindow(p, s.WindowPadding)
	return true
}

// EndMenu closes a popup opened by BeginMenu.
func (ctx *Context) EndMenu() {
	if len(ctx.stack) == 0 || !ctx.current().popup {
		ctx.log.Warn("EndMenu without an open menu")
		return
	}
	ctx.popWindow()
}

// MenuItem draws a menu row and reports whether it was clicked. Clicking
// an enabled item closes the open menu.
func (ctx *Context) MenuItem(label, shortcut string, selected, enabled bool) bool {
	s := ctx.style
	id := ctx.GetID(label)
	w := ctx.current()
	lineH := ctx.lineHeight()
	text := displayLabel(label)

	need := lineH + ctx.MeasureText(text).X + s.FramePadding.X
	var sw float32
	if shortcut != "" {
		sw = ctx.MeasureText(shortcut).X
		need += 2*s.ItemSpacing.X + sw
	}
	r := ctx.itemRect(Vec2{X: need, Y: lineH + 2*s.FramePadding.Y})
	row := r
	if !w.horizontal {
		row.W = maxf(need, w.size.X-2*s.WindowPadding.X)
	}

	pressed := enabled && ctx.clicked(id, row)
	dl := ctx.drawList()
	if enabled && ctx.isHovered(row) {
		dl.AddRect(row, s.HeaderColor)
	}
	color := s.TextColor
	if !enabled {
		color = s.TextDisabledColor
	}
	if selected {
		m := lineH / 4
		dl.AddRect(Rect{X: row.X + m, Y: row.Y + s.FramePadding.Y + m, W: lineH - 2*m, H: lineH - 2*m}, color)
	}
	ctx.addText(Vec2{X: row.X + lineH, Y: row.Y + s.FramePadding.Y}, text, color)
	if shortcut != "" {
		ctx.addText(Vec2{X: row.X + row.W - sw - s.FramePadding.X, Y: row.Y + s.FramePadding.Y}, shortcut, s.TextDisabledColor)
	}

	if pressed {
		ctx.menu.consumed = true
		ctx.menu.open = 0
	}
	return pressed
}
