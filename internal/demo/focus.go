package demo

import (
	"github.com/go-theft-auto/guikit"
)

func buildFocus(_ *Scene, theme guikit.Theme) (func(tk guikit.Toolkit) error, error) {
	fm := guikit.NewFocusManager()

	names := []string{"Alpha", "Beta", "Gamma"}
	windows := make([]guikit.Stackable, 0, len(names))
	for _, name := range names {
		var w *guikit.Window
		w, err := guikit.NewBasicWindow(name, func(tk guikit.Toolkit) error {
			if w.IsFocused() {
				tk.Text("focused")
			} else {
				tk.Text("click to focus")
			}
			return nil
		}, guikit.WithFlags(guikit.WindowAlwaysAutoResize), guikit.WithFocus(fm))
		if err != nil {
			return nil, err
		}
		guikit.HighlightFocus(w, fm, theme.Focus.Background)
		windows = append(windows, w)
	}
	windows[0].Hooks().PreOpen.Add(placeOnce(guikit.Vec2{X: 20, Y: 20}))

	stack, err := guikit.NewWindowStack(theme.Stack.Axis, theme.Stack.Spacing, windows...)
	if err != nil {
		return nil, err
	}
	return func(tk guikit.Toolkit) error {
		if err := stack.Draw(tk); err != nil {
			return err
		}
		fm.EndFrame(tk)
		return nil
	}, nil
}
