package guikit

import "fmt"

// Drawable is anything that can be drawn once per frame.
type Drawable interface {
	Draw(tk Toolkit) error
}

// Hook is a lifecycle callback. It receives the toolkit of the frame being
// drawn and nothing else.
type Hook func(tk Toolkit)

// HookList is an ordered list of hooks. Hooks run in insertion order.
type HookList []Hook

// Add appends hooks to the list. Nil hooks are dropped.
func (l *HookList) Add(hooks ...Hook) {
	for _, h := range hooks {
		if h != nil {
			*l = append(*l, h)
		}
	}
}

// Len returns the number of hooks.
func (l HookList) Len() int { return len(l) }

func (l HookList) run(tk Toolkit) {
	for _, h := range l {
		h(tk)
	}
}

// Hooks are the four lifecycle lists of a window. A draw runs them as
//
//	PreOpen, [scope begin], PostOpen, content, PreClose, [scope end], PostClose
//
// PostOpen and PreClose run inside the scope, so they may query the current
// window (position, size, focus). PreOpen is the place for SetNextWindow*
// calls; PostClose is the place to pop styles pushed in PreOpen. PostClose
// runs on every draw that ran PreOpen, including one whose content failed.
type Hooks struct {
	PreOpen   HookList
	PostOpen  HookList
	PreClose  HookList
	PostClose HookList
}

// Scope opens and closes the toolkit scope a window draws into.
// End is always called after Begin, with the value Begin returned.
type Scope interface {
	Begin(tk Toolkit) bool
	End(tk Toolkit, opened bool)
}

// ContentFunc draws the body of a window.
type ContentFunc func(tk Toolkit) error

// Window wraps a toolkit scope with lifecycle hooks.
//
// Window has no drawing of its own: the scope decides what kind of window it
// is and the content decides what goes in it. Both are required.
type Window struct {
	key     string
	scope   Scope
	content ContentFunc
	hooks   Hooks
	hidden  bool
	opened  bool
	focus   *FocusManager
}

// NewWindow creates a window from a scope and its content.
// It fails with ErrAbstractWindow if either is missing and with ErrEmptyKey
// if key is empty.
func NewWindow(key string, scope Scope, content ContentFunc) (*Window, error) {
	if scope == nil || content == nil {
		return nil, configErr("new window", fmt.Errorf("%w (key %q)", ErrAbstractWindow, key))
	}
	if key == "" {
		return nil, configErr("new window", ErrEmptyKey)
	}
	return &Window{key: key, scope: scope, content: content}, nil
}

// Key returns the stable key identifying the window.
func (w *Window) Key() string { return w.key }

// Hooks returns the window's lifecycle hooks for modification.
func (w *Window) Hooks() *Hooks { return &w.hooks }

// Show makes a hidden or user-closed window draw again.
func (w *Window) Show() { w.hidden = false }

// Hide stops the window from drawing. Hooks do not run while hidden.
func (w *Window) Hide() { w.hidden = true }

// Visible reports whether Draw will draw the window.
func (w *Window) Visible() bool { return !w.hidden }

// Opened reports whether the scope opened during the current or last Draw.
// A hidden window is never opened.
func (w *Window) Opened() bool { return w.opened }

// Draw runs the lifecycle of the window for one frame.
// The scope is closed and PostClose runs even if the content returns an
// error; in that case PreClose is skipped and the error is returned.
func (w *Window) Draw(tk Toolkit) error {
	w.opened = false
	if w.hidden {
		return nil
	}
	w.hooks.PreOpen.run(tk)
	defer w.hooks.PostClose.run(tk)
	return w.drawScope(tk)
}

func (w *Window) drawScope(tk Toolkit) error {
	opened := w.scope.Begin(tk)
	w.opened = opened
	defer w.scope.End(tk, opened)

	w.hooks.PostOpen.run(tk)
	if opened {
		if err := w.content(tk); err != nil {
			return fmt.Errorf("window %q: %w", w.key, err)
		}
	}
	w.hooks.PreClose.run(tk)
	return nil
}

// WindowOption configures a basic window.
type WindowOption func(*windowConfig)

type windowConfig struct {
	key      string
	flags    WindowFlags
	closable bool
	focus    *FocusManager
}

// WithKey sets the window key. The default key is the window name.
func WithKey(key string) WindowOption {
	return func(c *windowConfig) { c.key = key }
}

// WithFlags sets the toolkit window flags.
func WithFlags(flags WindowFlags) WindowOption {
	return func(c *windowConfig) { c.flags = flags }
}

// Closable gives the window a close button. A window closed by the user
// stops drawing until Show is called.
func Closable() WindowOption {
	return func(c *windowConfig) { c.closable = true }
}

// WithFocus tracks the window's focus in fm (see Window.TrackFocus).
func WithFocus(fm *FocusManager) WindowOption {
	return func(c *windowConfig) { c.focus = fm }
}

// NewBasicWindow creates a plain toolkit window titled name.
func NewBasicWindow(name string, content ContentFunc, opts ...WindowOption) (*Window, error) {
	if name == "" {
		return nil, configErr("new basic window", fmt.Errorf("%w: empty window name", ErrLabel))
	}
	cfg := windowConfig{key: name}
	for _, opt := range opts {
		opt(&cfg)
	}

	scope := &windowScope{name: name, flags: cfg.flags, closable: cfg.closable}
	w, err := NewWindow(cfg.key, scope, content)
	if err != nil {
		return nil, err
	}
	scope.window = w

	if cfg.focus != nil {
		w.TrackFocus(cfg.focus)
	}
	return w, nil
}

// windowScope opens a regular toolkit window.
type windowScope struct {
	name     string
	flags    WindowFlags
	closable bool
	window   *Window
}

func (s *windowScope) Begin(tk Toolkit) bool {
	if !s.closable {
		return tk.Begin(s.name, nil, s.flags)
	}
	open := true
	visible := tk.Begin(s.name, &open, s.flags)
	if !open {
		s.window.hidden = true
		logger.Debug("window closed by user", "key", s.window.key)
	}
	return visible
}

func (s *windowScope) End(tk Toolkit, _ bool) {
	tk.End()
}
