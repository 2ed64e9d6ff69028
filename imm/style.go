package imm

import "github.com/go-theft-auto/guikit"

// Style defines the visual appearance of windows and widgets.
// Colors are packed as 0xAABBGGRR.
type Style struct {
	TextColor         uint32
	TextDisabledColor uint32

	WindowBgColor      uint32
	BorderColor        uint32
	TitleBgColor       uint32
	TitleBgActiveColor uint32
	MenuBarBgColor     uint32
	PopupBgColor       uint32

	ButtonColor        uint32
	ButtonHoveredColor uint32
	ButtonActiveColor  uint32

	FrameBgColor        uint32
	FrameBgHoveredColor uint32
	FrameBgActiveColor  uint32

	// HeaderColor highlights hovered tree nodes and menu entries.
	HeaderColor uint32

	FontScale     float32
	WindowPadding Vec2
	FramePadding  Vec2
	ItemSpacing   Vec2
	IndentSpacing float32
	BorderSize    float32

	// DragWidth is the width of drag controls without SetNextItemWidth.
	DragWidth float32
	// WindowMinSize bounds auto-sized windows from below.
	WindowMinSize Vec2
}

// DefaultStyle returns a dark style.
func DefaultStyle() Style {
	return Style{
		TextColor:         RGBA(235, 235, 235, 255),
		TextDisabledColor: RGBA(128, 128, 128, 255),

		WindowBgColor:      RGBA(20, 20, 24, 235),
		BorderColor:        RGBA(80, 80, 90, 255),
		TitleBgColor:       RGBA(36, 36, 44, 255),
		TitleBgActiveColor: RGBA(48, 72, 112, 255),
		MenuBarBgColor:     RGBA(36, 36, 40, 255),
		PopupBgColor:       RGBA(28, 28, 32, 245),

		ButtonColor:        RGBA(50, 72, 110, 255),
		ButtonHoveredColor: RGBA(66, 96, 146, 255),
		ButtonActiveColor:  RGBA(82, 120, 182, 255),

		FrameBgColor:        RGBA(44, 44, 52, 255),
		FrameBgHoveredColor: RGBA(60, 60, 72, 255),
		FrameBgActiveColor:  RGBA(76, 76, 92, 255),

		HeaderColor: RGBA(60, 84, 124, 200),

		FontScale:     1,
		WindowPadding: Vec2{X: 8, Y: 8},
		FramePadding:  Vec2{X: 4, Y: 3},
		ItemSpacing:   Vec2{X: 8, Y: 4},
		IndentSpacing: 21,
		BorderSize:    1,

		DragWidth:     100,
		WindowMinSize: Vec2{X: 32, Y: 32},
	}
}

// color returns a pointer to the style field behind a toolkit color slot.
func (s *Style) color(slot guikit.StyleColor) *uint32 {
	switch slot {
	case guikit.StyleColorText:
		return &s.TextColor
	case guikit.StyleColorButton:
		return &s.ButtonColor
	case guikit.StyleColorButtonHovered:
		return &s.ButtonHoveredColor
	case guikit.StyleColorButtonActive:
		return &s.ButtonActiveColor
	case guikit.StyleColorWindowBg:
		return &s.WindowBgColor
	case guikit.StyleColorFrameBg:
		return &s.FrameBgColor
	case guikit.StyleColorHeader:
		return &s.HeaderColor
	}
	return nil
}
