package demo

import (
	"fmt"
	"math"

	"github.com/go-theft-auto/guikit"
)

// transform is edited by the stack scene, one window per component.
type transform struct {
	position [3]float32
	rotation [3]float32
	scale    [3]float32
}

func buildStack(_ *Scene, theme guikit.Theme) (func(tk guikit.Toolkit) error, error) {
	tr := &transform{scale: [3]float32{1, 1, 1}}
	parts := []struct {
		title, key string
		v          []float32
	}{
		{"Position", "pos", tr.position[:]},
		{"Rotation", "rot", tr.rotation[:]},
		{"Scale", "scale", tr.scale[:]},
	}

	windows := make([]guikit.Stackable, 0, len(parts))
	for _, p := range parts {
		row, err := guikit.NewDragRow(p.key, theme.DragRowOptions()...)
		if err != nil {
			return nil, err
		}
		setters := vecSetters(p.v)
		w, err := guikit.NewBasicWindow(p.title, func(tk guikit.Toolkit) error {
			if err := row.Draw(tk, p.v, setters, nil); err != nil {
				return err
			}
			tk.Text(fmt.Sprintf("|v| = %.2f", norm(p.v)))
			return nil
		}, guikit.WithFlags(guikit.WindowAlwaysAutoResize|guikit.WindowNoResize))
		if err != nil {
			return nil, err
		}
		windows = append(windows, w)
	}
	windows[0].Hooks().PreOpen.Add(placeOnce(guikit.Vec2{X: 20, Y: 20}))

	stack, err := guikit.NewWindowStack(theme.Stack.Axis, theme.Stack.Spacing, windows...)
	if err != nil {
		return nil, err
	}
	return stack.Draw, nil
}

func norm(v []float32) float64 {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	return math.Sqrt(sum)
}
