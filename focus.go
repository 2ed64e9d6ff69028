package guikit

import "fmt"

// FocusManager tracks which window is focused.
//
// It is owned by the application's frame loop and handed to the windows that
// should take part in focus tracking. At most one registered window is
// focused at a time.
type FocusManager struct {
	known   map[string]struct{}
	focused string // "" when nothing is focused
}

// NewFocusManager creates an empty focus manager.
func NewFocusManager() *FocusManager {
	return &FocusManager{known: make(map[string]struct{})}
}

// Register makes key known to the manager. Registering twice is a no-op.
func (fm *FocusManager) Register(key string) {
	if _, ok := fm.known[key]; ok {
		return
	}
	fm.known[key] = struct{}{}
	logger.Debug("focus: registered window", "key", key)
}

// Focus marks key as the focused window, unfocusing the previous one.
func (fm *FocusManager) Focus(key string) error {
	if err := fm.check("focus", key); err != nil {
		return err
	}
	if fm.focused == key {
		return nil
	}
	if fm.focused != "" {
		logger.Debug("focus: unfocus window", "key", fm.focused)
	}
	fm.focused = key
	logger.Debug("focus: focus window", "key", key)
	return nil
}

// Unfocus clears the focus if key holds it.
func (fm *FocusManager) Unfocus(key string) error {
	if err := fm.check("unfocus", key); err != nil {
		return err
	}
	if fm.focused == key {
		fm.focused = ""
		logger.Debug("focus: unfocus window", "key", key)
	}
	return nil
}

// IsFocused reports whether key is the focused window.
func (fm *FocusManager) IsFocused(key string) (bool, error) {
	if err := fm.check("is focused", key); err != nil {
		return false, err
	}
	return fm.focused == key, nil
}

// Focused returns the focused key, if any.
func (fm *FocusManager) Focused() (string, bool) {
	return fm.focused, fm.focused != ""
}

// Clear removes the focus from every window.
func (fm *FocusManager) Clear() {
	if fm.focused != "" {
		logger.Debug("focus: cleared", "key", fm.focused)
	}
	fm.focused = ""
}

// EndFrame clears the focus when the toolkit reports that no window is
// focused. Call it once per frame after every window has been drawn.
func (fm *FocusManager) EndFrame(tk Toolkit) {
	if !tk.IsAnyWindowFocused() {
		fm.Clear()
	}
}

func (fm *FocusManager) check(op, key string) error {
	if _, ok := fm.known[key]; !ok {
		return configErr("focus "+op, fmt.Errorf("%w: %q", ErrUnknownWindow, key))
	}
	return nil
}

// TrackFocus registers the window in fm and adds a PostOpen hook that
// focuses it whenever the toolkit reports it as the focused window.
func (w *Window) TrackFocus(fm *FocusManager) {
	w.focus = fm
	fm.Register(w.key)
	w.hooks.PostOpen.Add(func(tk Toolkit) {
		if tk.IsWindowFocused() {
			// The key was registered above, Focus cannot fail.
			_ = fm.Focus(w.key)
		}
	})
}

// IsFocused reports whether the window holds the focus of its manager.
// Windows that do not track focus are never focused.
func (w *Window) IsFocused() bool {
	if w.focus == nil {
		return false
	}
	ok, _ := w.focus.IsFocused(w.key)
	return ok
}

// HighlightFocus draws w with background bg while it holds the focus of fm.
// The color is pushed before the window opens and popped after it closes.
// The pop follows the push of the same draw, not the focus at close time,
// and happens even when the content fails.
func HighlightFocus(w *Window, fm *FocusManager, bg Color) {
	if w.focus != fm {
		w.TrackFocus(fm)
	}
	pushed := false
	w.hooks.PreOpen.Add(func(tk Toolkit) {
		pushed = w.IsFocused()
		if pushed {
			tk.PushStyleColor(StyleColorWindowBg, bg)
		}
	})
	w.hooks.PostClose.Add(func(tk Toolkit) {
		if pushed {
			tk.PopStyleColor(1)
			pushed = false
		}
	})
}
