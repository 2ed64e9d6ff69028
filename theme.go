package guikit

import (
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
)

// Theme holds the configurable defaults of the helpers. It is usually loaded
// from a TOML file:
//
//	[button]
//	normal  = "#2a4d69"
//	hovered = "#4b86b4"
//	active  = "#adcbe3"
//
//	[held]
//	normal = "#808000"
//
//	[stack]
//	axis    = "horizontal"
//	spacing = 12
//
//	[tree]
//	child_offset = 20
//
//	[drag]
//	speed = 0.01
//	width = 80
//	min   = -1
//	max   = 1
//
//	[focus]
//	background = "#3c3c50"
type Theme struct {
	Button ButtonTheme `toml:"button"`
	Held   ButtonTheme `toml:"held"`
	Stack  StackTheme  `toml:"stack"`
	Tree   TreeTheme   `toml:"tree"`
	Drag   DragTheme   `toml:"drag"`
	Focus  FocusTheme  `toml:"focus"`
}

// ButtonTheme holds optional button colors. Nil colors are not applied.
type ButtonTheme struct {
	Normal  *Color `toml:"normal"`
	Hovered *Color `toml:"hovered"`
	Active  *Color `toml:"active"`
}

// StackTheme configures window stacks.
type StackTheme struct {
	Axis    Axis    `toml:"axis"`
	Spacing float32 `toml:"spacing"`
}

// TreeTheme configures node trees.
type TreeTheme struct {
	ChildOffset float32 `toml:"child_offset"`
}

// DragTheme configures drag rows.
type DragTheme struct {
	Speed float32 `toml:"speed"`
	Width float32 `toml:"width"`
	Min   float32 `toml:"min"`
	Max   float32 `toml:"max"`
}

// FocusTheme configures the focus highlight.
type FocusTheme struct {
	Background Color `toml:"background"`
}

// DefaultTheme returns the theme used when no file is loaded.
func DefaultTheme() Theme {
	held := DefaultHeldColor
	return Theme{
		Held:  ButtonTheme{Normal: &held},
		Stack: StackTheme{Axis: Vertical, Spacing: 8},
		Tree:  TreeTheme{ChildOffset: DefaultChildOffset},
		Drag:  DragTheme{Speed: 1, Width: 220},
		Focus: FocusTheme{Background: RGB(0.24, 0.24, 0.31)},
	}
}

// LoadTheme reads a TOML theme file on top of DefaultTheme.
// Unknown keys are rejected.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Theme{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	logger.Debug("theme loaded", "path", path, "axis", t.Stack.Axis, "spacing", t.Stack.Spacing)
	return t, nil
}

// DecodeTheme reads a TOML theme from r on top of DefaultTheme.
func DecodeTheme(r io.Reader) (Theme, error) {
	t := DefaultTheme()
	md, err := toml.NewDecoder(r).Decode(&t)
	if err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Theme{}, fmt.Errorf("decode theme: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Theme{}, err
	}
	return t, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}
	return configErr("theme", fmt.Errorf("%w: unknown keys %s", ErrRange, strings.Join(names, ", ")))
}

// Validate checks the numeric settings of the theme.
func (t Theme) Validate() error {
	const op = "theme"
	switch {
	case t.Stack.Spacing < 0:
		return configErr(op, fmt.Errorf("%w: stack.spacing %g", ErrNegative, t.Stack.Spacing))
	case t.Tree.ChildOffset < 0:
		return configErr(op, fmt.Errorf("%w: tree.child_offset %g", ErrNegative, t.Tree.ChildOffset))
	case t.Drag.Speed <= 0:
		return configErr(op, fmt.Errorf("%w: drag.speed %g", ErrRange, t.Drag.Speed))
	case t.Drag.Width <= 0:
		return configErr(op, fmt.Errorf("%w: drag.width %g", ErrRange, t.Drag.Width))
	case t.Drag.Min > t.Drag.Max:
		return configErr(op, fmt.Errorf("%w: drag.min %g > drag.max %g", ErrRange, t.Drag.Min, t.Drag.Max))
	}
	return nil
}

// ButtonOptions returns the button and held colors of the theme as options.
func (t Theme) ButtonOptions() []ButtonOption {
	return []ButtonOption{
		func(c *buttonConfig) {
			c.base = t.Button.colors()
			c.held = t.Held.colors()
		},
	}
}

// DragRowOptions returns the drag settings of the theme as options.
func (t Theme) DragRowOptions() []DragRowOption {
	return []DragRowOption{
		WithSpeed(t.Drag.Speed),
		WithItemWidth(t.Drag.Width),
		WithRange(t.Drag.Min, t.Drag.Max),
	}
}

func (b ButtonTheme) colors() stateColors {
	var s stateColors
	if b.Normal != nil {
		s.normal, s.hasNormal = *b.Normal, true
	}
	if b.Hovered != nil {
		s.hovered, s.hasHovered = *b.Hovered, true
	}
	if b.Active != nil {
		s.active, s.hasActive = *b.Active, true
	}
	return s
}
