// Package demo builds the scenes shown by the example program and rendered
// by the screenshot generator. Scenes are made of guikit helpers only, so
// they draw on any guikit.Toolkit.
package demo

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/go-theft-auto/guikit"
)

// ErrUnknownScene is returned by New for names not listed by Names.
var ErrUnknownScene = errors.New("unknown scene")

// Scene is a self-contained demo drawn once per frame.
type Scene struct {
	name string
	draw func(tk guikit.Toolkit) error
	quit bool
}

type builder func(s *Scene, theme guikit.Theme) (func(tk guikit.Toolkit) error, error)

var builders = map[string]builder{
	"stack":  buildStack,
	"tree":   buildTree,
	"topbar": buildTopBar,
	"focus":  buildFocus,
	"drag":   buildDrag,
}

// Names returns the scene names in alphabetical order.
func Names() []string {
	return slices.Sorted(maps.Keys(builders))
}

// New builds the named scene with the settings of theme.
func New(name string, theme guikit.Theme) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	s := &Scene{name: name}
	draw, err := build(s, theme)
	if err != nil {
		return nil, fmt.Errorf("build scene %s: %w", name, err)
	}
	s.draw = draw
	return s, nil
}

// Name returns the scene name.
func (s *Scene) Name() string { return s.name }

// Draw draws one frame of the scene.
func (s *Scene) Draw(tk guikit.Toolkit) error { return s.draw(tk) }

// QuitRequested reports whether the scene asked the program to exit, from
// a File > Quit menu item.
func (s *Scene) QuitRequested() bool { return s.quit }

// placeOnce positions the next window on the first frame only, leaving the
// user free to move it afterwards.
func placeOnce(pos guikit.Vec2) func(tk guikit.Toolkit) {
	placed := false
	return func(tk guikit.Toolkit) {
		if !placed {
			tk.SetNextWindowPos(pos)
			placed = true
		}
	}
}

// vecSetters returns one setter per component of v.
func vecSetters(v []float32) []func(float32) {
	setters := make([]func(float32), len(v))
	for i := range v {
		setters[i] = func(x float32) { v[i] = x }
	}
	return setters
}
