package guikit

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an RGB triple with components in 0.0-1.0.
// Toolkits apply it with full opacity.
type Color struct {
	R, G, B float32
}

// RGB creates a color from float components (0.0-1.0).
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a neutral color with all components set to v.
func Gray(v float32) Color {
	return Color{R: v, G: v, B: v}
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: color %q must be #rrggbb", ErrRange, s)
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: color %q: %v", ErrRange, s, err)
	}
	return Color{
		R: float32((n>>16)&0xFF) / 255,
		G: float32((n>>8)&0xFF) / 255,
		B: float32(n&0xFF) / 255,
	}, nil
}

// Hex formats the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// Packed returns the color packed as 0xAABBGGRR, the vertex color layout
// used by OpenGL draw lists.
func (c Color) Packed(alpha float32) uint32 {
	return uint32(to8(alpha))<<24 | uint32(to8(c.B))<<16 | uint32(to8(c.G))<<8 | uint32(to8(c.R))
}

// UnmarshalText implements encoding.TextUnmarshaler so themes can spell
// colors as hex strings.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseHex(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

func to8(v float32) uint8 {
	return uint8(clampf(v, 0, 1)*255 + 0.5)
}

// clampf clamps a float32 value to a range.
func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
