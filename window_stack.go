package guikit

import "fmt"

// Stackable is a window that can be placed in a WindowStack.
// *Window and *MenuBar implement it.
type Stackable interface {
	Drawable
	Hooks() *Hooks
	// Opened reports whether the scope opened during the current draw.
	Opened() bool
}

// WindowStack lays windows out one after the other along an axis.
//
// Each window that opened reports its realized position and size from a
// PreClose hook. The next window to open gets its position from a PreOpen
// hook: right after the previous window plus the spacing on the stack axis,
// aligned with the previous window on the cross axis. Moving the first window
// therefore moves the whole stack. A position is only commanded to a window
// of the stack that is about to begin, never to whatever is drawn after it.
//
// Sizes are read back as the toolkit reports them. Auto-sized windows report
// the size measured on the previous frame, so a sudden size change leaves the
// stack misaligned for one frame.
type WindowStack struct {
	windows []Stackable
	axis    Axis
	spacing float32

	lastPos  Vec2
	lastSize Vec2
	measured bool
	next     *Vec2
	drawing  bool
	size     Vec2
}

// NewWindowStack creates a stack of windows. It adds a PreOpen and a PreClose
// hook to each window. The hooks only act while this stack is drawing, so a
// window may belong to several stacks as long as they are drawn one at a time.
func NewWindowStack(axis Axis, spacing float32, windows ...Stackable) (*WindowStack, error) {
	const op = "new window stack"
	if spacing < 0 {
		return nil, configErr(op, fmt.Errorf("%w: spacing %g", ErrNegative, spacing))
	}
	if axis != Vertical && axis != Horizontal {
		return nil, configErr(op, fmt.Errorf("%w: %v", ErrRange, axis))
	}

	s := &WindowStack{axis: axis, spacing: spacing}
	for i, w := range windows {
		if w == nil {
			return nil, configErr(op, fmt.Errorf("%w: window %d", ErrNilFunc, i))
		}
		w.Hooks().PreOpen.Add(s.place)
		w.Hooks().PreClose.Add(func(tk Toolkit) {
			if w.Opened() {
				s.measure(tk)
			}
		})
		s.windows = append(s.windows, w)
	}
	return s, nil
}

// place commands the staged position. It stays staged until a window is
// measured, so a window that begins but does not open passes it on.
func (s *WindowStack) place(tk Toolkit) {
	if !s.drawing || s.next == nil {
		return
	}
	tk.SetNextWindowPos(*s.next)
}

func (s *WindowStack) measure(tk Toolkit) {
	if !s.drawing {
		return
	}
	s.lastPos = tk.WindowPos()
	s.lastSize = tk.WindowSize()
	s.measured = true
}

// Axis returns the stack axis.
func (s *WindowStack) Axis() Axis { return s.axis }

// Spacing returns the gap between windows.
func (s *WindowStack) Spacing() float32 { return s.spacing }

// Windows returns the stacked windows in draw order.
func (s *WindowStack) Windows() []Stackable { return s.windows }

// Size returns the bounding size of the stack as of the last Draw: the sum of
// the window extents on the stack axis plus the spacing between them, and the
// largest extent on the cross axis. Windows that did not open are left out.
func (s *WindowStack) Size() Vec2 { return s.size }

// Draw draws every window in order, positioning each one after the previous.
func (s *WindowStack) Draw(tk Toolkit) error {
	var along, across float32
	count := 0

	s.drawing = true
	defer func() {
		s.drawing = false
		s.next = nil
	}()

	for _, w := range s.windows {
		s.measured = false
		if err := w.Draw(tk); err != nil {
			return err
		}
		if !s.measured {
			continue
		}

		along += s.lastSize.Along(s.axis)
		across = max(across, s.lastSize.Across(s.axis))
		count++

		next := s.lastPos.With(s.axis, s.lastPos.Along(s.axis)+s.lastSize.Along(s.axis)+s.spacing)
		s.next = &next
	}

	if count > 1 {
		along += float32(count-1) * s.spacing
	}
	s.size = Vec2{}.With(s.axis, along).With(s.axis.Cross(), across)
	return nil
}
