package guikit

import "fmt"

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Along returns the component of v on the given axis.
// Vertical is Y, Horizontal is X.
func (v Vec2) Along(a Axis) float32 {
	if a == Horizontal {
		return v.X
	}
	return v.Y
}

// Across returns the component of v on the axis perpendicular to a.
func (v Vec2) Across(a Axis) float32 {
	return v.Along(a.Cross())
}

// With returns a copy of v with the component on axis a replaced by val.
func (v Vec2) With(a Axis, val float32) Vec2 {
	if a == Horizontal {
		v.X = val
	} else {
		v.Y = val
	}
	return v
}

// Axis is the direction along which a layout grows.
type Axis uint8

const (
	Vertical Axis = iota
	Horizontal
)

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

func (a Axis) String() string {
	switch a {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	default:
		return fmt.Sprintf("Axis(%d)", a)
	}
}

// ParseAxis parses "vertical" or "horizontal" (also "v" and "h").
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return 0, &ConfigError{Op: "parse axis", Err: fmt.Errorf("%w: unknown axis %q", ErrRange, s)}
}

// WindowFlags alter how a toolkit window is opened.
type WindowFlags uint32

const (
	WindowNoTitleBar WindowFlags = 1 << iota
	WindowNoResize
	WindowNoMove
	WindowNoScrollbar
	WindowNoBackground
	WindowAlwaysAutoResize
)

// Has reports whether all bits of f2 are set in f.
func (f WindowFlags) Has(f2 WindowFlags) bool {
	return f&f2 == f2
}

// StyleColor identifies a toolkit color slot for PushStyleColor.
type StyleColor int

const (
	StyleColorText StyleColor = iota
	StyleColorButton
	StyleColorButtonHovered
	StyleColorButtonActive
	StyleColorWindowBg
	StyleColorFrameBg
	StyleColorHeader
)

func (c StyleColor) String() string {
	switch c {
	case StyleColorText:
		return "Text"
	case StyleColorButton:
		return "Button"
	case StyleColorButtonHovered:
		return "ButtonHovered"
	case StyleColorButtonActive:
		return "ButtonActive"
	case StyleColorWindowBg:
		return "WindowBg"
	case StyleColorFrameBg:
		return "FrameBg"
	case StyleColorHeader:
		return "Header"
	default:
		return fmt.Sprintf("StyleColor(%d)", int(c))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Axis) UnmarshalText(text []byte) error {
	parsed, err := ParseAxis(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (a Axis) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}
