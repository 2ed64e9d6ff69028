package guikit_test

import (
	"errors"
	"testing"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/guitest"
)

func TestFocusManagerUnknownWindow(t *testing.T) {
	fm := guikit.NewFocusManager()

	if err := fm.Focus("nope"); !errors.Is(err, guikit.ErrUnknownWindow) {
		t.Errorf("Focus: err = %v, want ErrUnknownWindow", err)
	}
	if err := fm.Unfocus("nope"); !errors.Is(err, guikit.ErrUnknownWindow) {
		t.Errorf("Unfocus: err = %v, want ErrUnknownWindow", err)
	}
	if _, err := fm.IsFocused("nope"); !errors.Is(err, guikit.ErrUnknownWindow) {
		t.Errorf("IsFocused: err = %v, want ErrUnknownWindow", err)
	}
}

func TestFocusManagerSingleFocus(t *testing.T) {
	fm := guikit.NewFocusManager()
	fm.Register("a")
	fm.Register("b")
	fm.Register("a")

	if err := fm.Focus("a"); err != nil {
		t.Fatal(err)
	}
	if err := fm.Focus("b"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := fm.IsFocused("a"); ok {
		t.Error("a still focused after focusing b")
	}
	if key, ok := fm.Focused(); !ok || key != "b" {
		t.Errorf("Focused() = %q, %v", key, ok)
	}

	// Unfocusing a window without focus changes nothing.
	if err := fm.Unfocus("a"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := fm.IsFocused("b"); !ok {
		t.Error("b lost focus")
	}

	if err := fm.Unfocus("b"); err != nil {
		t.Fatal(err)
	}
	if _, ok := fm.Focused(); ok {
		t.Error("focus not cleared")
	}
}

func TestTrackFocus(t *testing.T) {
	rec := guitest.New()
	fm := guikit.NewFocusManager()
	content := func(guikit.Toolkit) error { return nil }
	a, _ := guikit.NewBasicWindow("A", content, guikit.WithFocus(fm))
	b, _ := guikit.NewBasicWindow("B", content, guikit.WithFocus(fm))

	frame := func() {
		t.Helper()
		for _, w := range []*guikit.Window{a, b} {
			if err := w.Draw(rec); err != nil {
				t.Fatal(err)
			}
		}
		fm.EndFrame(rec)
	}

	rec.Focus("B")
	frame()
	if a.IsFocused() || !b.IsFocused() {
		t.Errorf("after focusing B: a=%v b=%v", a.IsFocused(), b.IsFocused())
	}

	rec.Focus("A")
	frame()
	if !a.IsFocused() || b.IsFocused() {
		t.Errorf("after focusing A: a=%v b=%v", a.IsFocused(), b.IsFocused())
	}

	rec.Focus("")
	frame()
	if a.IsFocused() || b.IsFocused() {
		t.Error("focus kept after the toolkit reported no focused window")
	}
}

func TestWindowWithoutFocusTracking(t *testing.T) {
	w, _ := guikit.NewBasicWindow("A", func(guikit.Toolkit) error { return nil })
	if w.IsFocused() {
		t.Error("untracked window reports focus")
	}
}

func TestHighlightFocus(t *testing.T) {
	rec := guitest.New()
	fm := guikit.NewFocusManager()
	bg := guikit.RGB(0.2, 0.2, 0.3)
	var highlighted bool
	w, _ := guikit.NewBasicWindow("A", func(tk guikit.Toolkit) error {
		c, ok := rec.PushedColor(guikit.StyleColorWindowBg)
		highlighted = ok && c == bg
		return nil
	})
	guikit.HighlightFocus(w, fm, bg)

	// The first frame finds out about the focus, the second one shows it.
	rec.Focus("A")
	_ = w.Draw(rec)
	if rec.Count("PushStyleColor") != 0 {
		t.Errorf("pushed before the window was known to be focused: %v", rec.Ops())
	}

	rec.Reset()
	if err := w.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if !highlighted {
		t.Error("content was not drawn on the focus background")
	}
	if rec.Count("PushStyleColor") != 1 || rec.Count("PopStyleColor") != 1 {
		t.Errorf("ops = %v, want one push and one pop", rec.Ops())
	}
	if rec.ColorDepth() != 0 {
		t.Errorf("%d colors left pushed", rec.ColorDepth())
	}
}

func TestHighlightFocusBalancedOnContentError(t *testing.T) {
	rec := guitest.New()
	fm := guikit.NewFocusManager()
	boom := errors.New("boom")
	w, _ := guikit.NewBasicWindow("A", func(guikit.Toolkit) error { return boom })
	guikit.HighlightFocus(w, fm, guikit.RGB(0.2, 0.2, 0.3))

	rec.Focus("A")
	_ = w.Draw(rec)
	if !w.IsFocused() {
		t.Fatal("window not focused after the first draw")
	}

	rec.Reset()
	if err := w.Draw(rec); !errors.Is(err, boom) {
		t.Fatalf("Draw error = %v, want %v", err, boom)
	}
	if rec.Count("PushStyleColor") != 1 || rec.Count("PopStyleColor") != 1 {
		t.Errorf("ops = %v, want one push and one pop", rec.Ops())
	}
	if rec.ColorDepth() != 0 {
		t.Errorf("%d colors left pushed", rec.ColorDepth())
	}
}
