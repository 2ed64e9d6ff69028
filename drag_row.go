package guikit

import (
	"fmt"
	"strconv"
)

// DefaultDragFormat is the display format of drag controls without a format.
const DefaultDragFormat = "%.3f"

// DragRow draws a row of drag controls, one per value.
type DragRow struct {
	key   string
	min   float32
	max   float32
	speed float32
	width float32
	title string
}

// DragRowOption configures a DragRow.
type DragRowOption func(*DragRow)

// WithRange limits the values to [min, max]. Equal bounds leave the values
// unbounded.
func WithRange(min, max float32) DragRowOption {
	return func(r *DragRow) { r.min, r.max = min, max }
}

// WithSpeed sets the value change per pixel of mouse movement.
func WithSpeed(speed float32) DragRowOption {
	return func(r *DragRow) { r.speed = speed }
}

// WithItemWidth sets the width of every control.
func WithItemWidth(width float32) DragRowOption {
	return func(r *DragRow) { r.width = width }
}

// WithTitle draws title inline after the last control.
func WithTitle(title string) DragRowOption {
	return func(r *DragRow) { r.title = title }
}

// NewDragRow creates a drag row. key scopes the identity of its controls and
// must be unique among the rows drawn in the same window.
func NewDragRow(key string, opts ...DragRowOption) (*DragRow, error) {
	r := &DragRow{key: key, speed: 1, width: 220}
	for _, opt := range opts {
		opt(r)
	}

	const op = "new drag row"
	switch {
	case key == "":
		return nil, configErr(op, ErrEmptyKey)
	case r.speed <= 0:
		return nil, configErr(op, fmt.Errorf("%w: speed %g", ErrRange, r.speed))
	case r.width <= 0:
		return nil, configErr(op, fmt.Errorf("%w: width %g", ErrRange, r.width))
	case r.min > r.max:
		return nil, configErr(op, fmt.Errorf("%w: min %g > max %g", ErrRange, r.min, r.max))
	}
	return r, nil
}

// Key returns the identity key of the row.
func (r *DragRow) Key() string { return r.key }

// Title returns the inline title, empty if none.
func (r *DragRow) Title() string { return r.title }

// Draw renders one control per value. When control i changes, setters[i] is
// called with the new value. formats, if not nil, gives the display format of
// each control.
//
// The inputs are validated before anything is drawn.
func (r *DragRow) Draw(tk Toolkit, values []float32, setters []func(float32), formats []string) error {
	if err := r.validate(values, setters, formats); err != nil {
		return err
	}

	for i := range values {
		format := DefaultDragFormat
		if formats != nil {
			format = formats[i]
		}

		tk.PushID(r.key + "#" + strconv.Itoa(i))
		tk.SetNextItemWidth(r.width)
		v := values[i]
		changed := tk.DragFloat("", &v, r.speed, r.min, r.max, format)
		tk.PopID()

		if changed {
			setters[i](v)
		}

		last := i == len(values)-1
		if !last {
			tk.SameLine()
		} else if r.title != "" {
			tk.SameLine()
			tk.Text(r.title)
		}
	}
	return nil
}

func (r *DragRow) validate(values []float32, setters []func(float32), formats []string) error {
	op := "drag row " + r.key
	if len(values) != len(setters) {
		return configErr(op, fmt.Errorf("%w: %d values, %d setters", ErrLengthMismatch, len(values), len(setters)))
	}
	if formats != nil && len(formats) != len(values) {
		return configErr(op, fmt.Errorf("%w: %d values, %d formats", ErrLengthMismatch, len(values), len(formats)))
	}
	for i, set := range setters {
		if set == nil {
			return configErr(op, fmt.Errorf("%w: setter %d", ErrNilFunc, i))
		}
	}
	return nil
}
