package guikit_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/guikit"
)

func TestVec2Axis(t *testing.T) {
	v := guikit.Vec2{X: 3, Y: 4}

	if v.Along(guikit.Horizontal) != 3 || v.Along(guikit.Vertical) != 4 {
		t.Errorf("Along = %v, %v", v.Along(guikit.Horizontal), v.Along(guikit.Vertical))
	}
	if v.Across(guikit.Horizontal) != 4 {
		t.Errorf("Across(Horizontal) = %v", v.Across(guikit.Horizontal))
	}
	if got := v.With(guikit.Vertical, 9); got != (guikit.Vec2{X: 3, Y: 9}) {
		t.Errorf("With = %v", got)
	}
	if got := v.Add(v).Sub(guikit.Vec2{X: 1, Y: 1}).Mul(2); got != (guikit.Vec2{X: 10, Y: 14}) {
		t.Errorf("arithmetic = %v", got)
	}
}

func TestParseAxis(t *testing.T) {
	for in, want := range map[string]guikit.Axis{
		"vertical": guikit.Vertical, "v": guikit.Vertical,
		"horizontal": guikit.Horizontal, "h": guikit.Horizontal,
	} {
		got, err := guikit.ParseAxis(in)
		if err != nil || got != want {
			t.Errorf("ParseAxis(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := guikit.ParseAxis("up"); !errors.Is(err, guikit.ErrConfig) {
		t.Errorf("ParseAxis(up): err = %v", err)
	}
}

func TestColorHex(t *testing.T) {
	c, err := guikit.ParseHex("#ff8000")
	if err != nil {
		t.Fatal(err)
	}
	if c.Hex() != "#ff8000" {
		t.Errorf("Hex() = %s", c.Hex())
	}
	if got := c.Packed(1); got != 0xFF0080FF {
		t.Errorf("Packed = %#x, want 0xff0080ff", got)
	}
	if _, err := guikit.ParseHex("zzzzzz"); !errors.Is(err, guikit.ErrRange) {
		t.Errorf("bad hex: err = %v", err)
	}
}

func TestKeySource(t *testing.T) {
	ks := guikit.NewKeySource("win")
	if a, b := ks.Next(), ks.Next(); a != "win-1" || b != "win-2" {
		t.Errorf("keys = %s, %s", a, b)
	}

	if guikit.HashKey("a", "bc") == guikit.HashKey("ab", "c") {
		t.Error("HashKey does not separate parts")
	}
	if guikit.HashKey("x") != guikit.HashKey("x") {
		t.Error("HashKey is not stable")
	}
}
