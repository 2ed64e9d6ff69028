package imm

import (
	"fmt"
	"strings"
)

// displayLabel strips the "##" identity suffix from a label.
func displayLabel(label string) string {
	if i := strings.Index(label, "##"); i >= 0 {
		return label[:i]
	}
	return label
}

// Text draws a line of text.
func (ctx *Context) Text(text string) {
	r := ctx.itemRect(ctx.MeasureText(text))
	ctx.addText(Vec2{X: r.X, Y: r.Y}, text, ctx.style.TextColor)
}

// Button draws a button and reports whether it was clicked this frame.
// Zero size components are fitted to the label.
func (ctx *Context) Button(label string, size Vec2) bool {
	s := ctx.style
	id := ctx.GetID(label)
	text := displayLabel(label)
	ts := ctx.MeasureText(text)
	if size.X <= 0 {
		size.X = ts.X + 2*s.FramePadding.X
	}
	if size.Y <= 0 {
		size.Y = ts.Y + 2*s.FramePadding.Y
	}
	r := ctx.itemRect(size)

	pressed := ctx.clicked(id, r)
	bg := s.ButtonColor
	switch {
	case ctx.held(id):
		bg = s.ButtonActiveColor
	case ctx.isHovered(r):
		bg = s.ButtonHoveredColor
	}
	dl := ctx.drawList()
	dl.AddRect(r, bg)
	ctx.addText(Vec2{X: r.X + (r.W-ts.X)/2, Y: r.Y + (r.H-ts.Y)/2}, text, s.TextColor)
	return pressed
}

// DragFloat draws a value changed by dragging the mouse horizontally, speed
// units per pixel. The value is clamped to [min, max] unless min >= max.
// It reports whether the value changed this frame.
func (ctx *Context) DragFloat(label string, value *float32, speed, min, max float32, format string) bool {
	s := ctx.style
	id := ctx.GetID(label)
	width := ctx.nextItemWidth
	if width <= 0 {
		width = s.DragWidth
	}
	ctx.nextItemWidth = 0
	if format == "" {
		format = "%.3f"
	}

	text := displayLabel(label)
	height := ctx.lineHeight() + 2*s.FramePadding.Y
	size := Vec2{X: width, Y: height}
	if text != "" {
		size.X += s.ItemSpacing.X + ctx.MeasureText(text).X
	}
	r := ctx.itemRect(size)
	frame := Rect{X: r.X, Y: r.Y, W: width, H: height}

	wasActive := ctx.activeID == id
	ctx.clicked(id, frame)
	old := *value
	if wasActive && ctx.held(id) && ctx.mouseDelta.X != 0 {
		*value += ctx.mouseDelta.X * speed
	}
	if min < max {
		*value = clampf(*value, min, max)
	}

	bg := s.FrameBgColor
	switch {
	case ctx.held(id):
		bg = s.FrameBgActiveColor
	case ctx.isHovered(frame):
		bg = s.FrameBgHoveredColor
	}
	ctx.drawList().AddRect(frame, bg)
	val := fmt.Sprintf(format, *value)
	vs := ctx.MeasureText(val)
	ctx.addText(Vec2{X: frame.X + (width-vs.X)/2, Y: frame.Y + s.FramePadding.Y}, val, s.TextColor)
	if text != "" {
		ctx.addText(Vec2{X: frame.X + width + s.ItemSpacing.X, Y: frame.Y + s.FramePadding.Y}, text, s.TextColor)
	}
	return *value != old
}

// TreeNode draws a collapsible node and reports whether it is open. The
// open flag persists in the state store. Open nodes indent the following
// lines until the matching TreePop.
func (ctx *Context) TreeNode(label string) bool {
	s := ctx.style
	id := ctx.GetID(label)
	lineH := ctx.lineHeight()
	text := displayLabel(label)
	r := ctx.itemRect(Vec2{X: lineH + s.FramePadding.X + ctx.MeasureText(text).X, Y: lineH + 2*s.FramePadding.Y})

	open := GetState(ctx, id, false)
	if ctx.clicked(id, r) {
		open = !open
		SetState(ctx, id, open)
	}

	dl := ctx.drawList()
	if ctx.isHovered(r) {
		dl.AddRect(r, s.HeaderColor)
	}
	// Arrow inside a lineH square at the start of the row.
	c := Vec2{X: r.X + lineH/2, Y: r.Y + r.H/2}
	h := lineH / 4
	if open {
		dl.AddTriangle(Vec2{X: c.X - h, Y: c.Y - h/2}, Vec2{X: c.X + h, Y: c.Y - h/2}, Vec2{X: c.X, Y: c.Y + h}, s.TextColor)
	} else {
		dl.AddTriangle(Vec2{X: c.X - h/2, Y: c.Y - h}, Vec2{X: c.X + h, Y: c.Y}, Vec2{X: c.X - h/2, Y: c.Y + h}, s.TextColor)
	}
	ctx.addText(Vec2{X: r.X + lineH + s.FramePadding.X, Y: r.Y + s.FramePadding.Y}, text, s.TextColor)

	if open {
		w := ctx.current()
		w.indent += s.IndentSpacing
		w.cursor.X = w.lineStart(s)
	}
	return open
}

// TreePop closes a node opened by TreeNode.
func (ctx *Context) TreePop() {
	w := ctx.current()
	if w.indent < ctx.style.IndentSpacing {
		ctx.log.Warn("TreePop without an open TreeNode", "window", w.name)
		return
	}
	w.indent -= ctx.style.IndentSpacing
	w.cursor.X = w.lineStart(ctx.style)
}
