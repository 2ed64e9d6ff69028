package demo

import (
	"fmt"

	"github.com/go-theft-auto/guikit"
)

// toggleItem returns a View menu item that shows and hides w.
func toggleItem(title string, w *guikit.Window) *guikit.MenuItem {
	item := guikit.NewMenuItem("Hide "+title, "Show "+title)
	item.Action = func() {
		if w.Visible() {
			w.Hide()
		} else {
			w.Show()
		}
		item.Cycle()
	}
	return item
}

func buildTopBar(s *Scene, theme guikit.Theme) (func(tk guikit.Toolkit) error, error) {
	var (
		clicks int
		last   = "none"
	)

	info, err := guikit.NewBasicWindow("Info", func(tk guikit.Toolkit) error {
		tk.Text(fmt.Sprintf("menu actions: %d", clicks))
		tk.Text("last: " + last)
		return nil
	}, guikit.WithFlags(guikit.WindowAlwaysAutoResize))
	if err != nil {
		return nil, err
	}
	counter := guikit.NewButton("Count", func(n *int) { *n++ }, theme.ButtonOptions()...)
	tools, err := guikit.NewBasicWindow("Tools", func(tk guikit.Toolkit) error {
		counter.Draw(tk, &clicks)
		return nil
	}, guikit.WithFlags(guikit.WindowAlwaysAutoResize), guikit.Closable())
	if err != nil {
		return nil, err
	}

	act := func(name string, f func()) func() {
		return func() {
			clicks++
			last = name
			if f != nil {
				f()
			}
		}
	}

	reset := guikit.NewMenuItem("Reset")
	reset.Action = act("Reset", func() { clicks = 0 })
	quit := guikit.NewMenuItem("Quit")
	quit.Shortcut = "Esc"
	quit.Action = act("Quit", func() { s.quit = true })

	showInfo := toggleItem("info", info)
	showInfo.Action = act("View", showInfo.Action)
	showTools := toggleItem("tools", tools)
	showTools.Action = act("View", showTools.Action)

	help := guikit.NewMenu("Help")
	help.Enabled = false

	bar := guikit.NewMenuBar(
		guikit.NewMenu("File", reset, quit),
		guikit.NewMenu("View", showInfo, showTools),
		help,
	)

	stack, err := guikit.NewWindowStack(theme.Stack.Axis, theme.Stack.Spacing, bar, info, tools)
	if err != nil {
		return nil, err
	}
	return stack.Draw, nil
}
