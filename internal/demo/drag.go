package demo

import (
	"github.com/go-theft-auto/guikit"
)

var defaultMix = [3]float32{1, 1, 0}

func buildDrag(_ *Scene, theme guikit.Theme) (func(tk guikit.Toolkit) error, error) {
	mix := defaultMix
	row, err := guikit.NewDragRow("rgb",
		guikit.WithRange(0, 1),
		guikit.WithSpeed(0.005),
		guikit.WithItemWidth(theme.Drag.Width/3),
		guikit.WithTitle("RGB"),
	)
	if err != nil {
		return nil, err
	}
	setters := vecSetters(mix[:])
	formats := []string{"R %.2f", "G %.2f", "B %.2f"}

	// Held while the mix is untouched, so the button reads as disabled.
	reset := guikit.NewButton("Reset", func(m *[3]float32) { *m = defaultMix }, theme.ButtonOptions()...).
		HoldWhen(func(m *[3]float32) bool { return *m == defaultMix })

	w, err := guikit.NewBasicWindow("Color mixer", func(tk guikit.Toolkit) error {
		if err := row.Draw(tk, mix[:], setters, formats); err != nil {
			return err
		}
		tk.Text(guikit.RGB(mix[0], mix[1], mix[2]).Hex())
		reset.Draw(tk, &mix)
		return nil
	}, guikit.WithFlags(guikit.WindowAlwaysAutoResize))
	if err != nil {
		return nil, err
	}
	w.Hooks().PreOpen.Add(placeOnce(guikit.Vec2{X: 20, Y: 20}))
	return w.Draw, nil
}
