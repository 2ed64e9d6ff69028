package guikit

// DefaultHeldColor is the held-state color used when none is configured.
var DefaultHeldColor = Gray(0.5)

// stateColors holds the three button color slots. Unset slots are not pushed.
type stateColors struct {
	normal, hovered, active          Color
	hasNormal, hasHovered, hasActive bool
}

func (s stateColors) push(tk Toolkit) int {
	n := 0
	if s.hasNormal {
		tk.PushStyleColor(StyleColorButton, s.normal)
		n++
	}
	if s.hasHovered {
		tk.PushStyleColor(StyleColorButtonHovered, s.hovered)
		n++
	}
	if s.hasActive {
		tk.PushStyleColor(StyleColorButtonActive, s.active)
		n++
	}
	return n
}

// resolved returns the held colors with every slot set: hovered and active
// fall back to the normal color.
func (s stateColors) resolved() stateColors {
	if !s.hasNormal {
		s.normal, s.hasNormal = DefaultHeldColor, true
	}
	if !s.hasHovered {
		s.hovered, s.hasHovered = s.normal, true
	}
	if !s.hasActive {
		s.active, s.hasActive = s.normal, true
	}
	return s
}

type buttonConfig struct {
	base stateColors
	held stateColors
	size Vec2
}

// ButtonOption configures a Button.
type ButtonOption func(*buttonConfig)

// WithColor sets the normal button color.
func WithColor(normal Color) ButtonOption {
	return func(c *buttonConfig) {
		c.base.normal, c.base.hasNormal = normal, true
	}
}

// WithColors sets the normal, hovered and active button colors.
func WithColors(normal, hovered, active Color) ButtonOption {
	return func(c *buttonConfig) {
		c.base = stateColors{
			normal: normal, hovered: hovered, active: active,
			hasNormal: true, hasHovered: true, hasActive: true,
		}
	}
}

// WithHeldColors sets the colors applied while the held predicate is true.
// The optional extra colors are hovered then active; missing ones fall back
// to normal.
func WithHeldColors(normal Color, hoveredActive ...Color) ButtonOption {
	return func(c *buttonConfig) {
		c.held = stateColors{normal: normal, hasNormal: true}
		if len(hoveredActive) > 0 {
			c.held.hovered, c.held.hasHovered = hoveredActive[0], true
		}
		if len(hoveredActive) > 1 {
			c.held.active, c.held.hasActive = hoveredActive[1], true
		}
	}
}

// WithSize sets the button size. Zero components are sized by the toolkit.
func WithSize(w, h float32) ButtonOption {
	return func(c *buttonConfig) { c.size = Vec2{X: w, Y: h} }
}

// Button is a toolkit button with a callback and an optional held state.
//
// T is the argument forwarded to the callback and the held predicate on each
// draw, e.g. the element a tree row belongs to. Buttons that need no argument
// use struct{}.
type Button[T any] struct {
	label   string
	onClick func(T)
	held    func(T) bool
	cfg     buttonConfig
}

// NewButton creates a button. onClick may be nil for a purely visual button.
func NewButton[T any](label string, onClick func(T), opts ...ButtonOption) *Button[T] {
	b := &Button[T]{label: label, onClick: onClick}
	for _, opt := range opts {
		opt(&b.cfg)
	}
	b.cfg.held = b.cfg.held.resolved()
	return b
}

// HoldWhen sets the held predicate and returns the button.
func (b *Button[T]) HoldWhen(pred func(T) bool) *Button[T] {
	b.held = pred
	return b
}

// Label returns the button label.
func (b *Button[T]) Label() string { return b.label }

// SetLabel changes the button label.
func (b *Button[T]) SetLabel(label string) { b.label = label }

// Draw renders the button for arg and reports whether it was clicked.
// Explicit base colors are always applied; the held colors are pushed on top
// of them while the held predicate returns true. Every pushed color is popped
// before Draw returns.
func (b *Button[T]) Draw(tk Toolkit, arg T) bool {
	pushed := b.cfg.base.push(tk)
	if b.held != nil && b.held(arg) {
		pushed += b.cfg.held.push(tk)
	}
	if pushed > 0 {
		defer tk.PopStyleColor(pushed)
	}

	clicked := tk.Button(b.label, b.cfg.size)
	if clicked && b.onClick != nil {
		b.onClick(arg)
	}
	return clicked
}
