package guikit_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/guitest"
)

func TestMenuBarDrawsMenus(t *testing.T) {
	rec := guitest.New()
	quit := guikit.NewMenuItem("Quit")
	quit.Shortcut = "Ctrl+Q"
	quit.Action = func() {}
	bar := guikit.NewMenuBar(guikit.NewMenu("File", quit), guikit.NewMenu("View"))

	rec.OpenMenu("File", true)
	if err := bar.Draw(rec); err != nil {
		t.Fatal(err)
	}
	rec.CheckBalanced()

	want := []string{
		"BeginMainMenuBar",
		"BeginMenu(File)", "MenuItem(Quit)", "EndMenu",
		"BeginMenu(View)",
		"EndMainMenuBar",
	}
	if got := rec.Ops(); !slices.Equal(got, want) {
		t.Errorf("ops = %v, want %v", got, want)
	}
	if len(rec.Problems) > 0 {
		t.Errorf("problems: %v", rec.Problems)
	}
	if bar.Key() != guikit.MenuBarKey {
		t.Errorf("Key() = %q", bar.Key())
	}
}

func TestMenuItemAction(t *testing.T) {
	rec := guitest.New()
	toggle := guikit.NewMenuItem("Show grid", "Hide grid")
	shown := false
	toggle.Action = func() {
		shown = !shown
		toggle.Cycle()
	}
	bar := guikit.NewMenuBar(guikit.NewMenu("View", toggle))

	rec.OpenMenu("View", true)
	rec.Click("Show grid")
	if err := bar.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if !shown {
		t.Fatal("action did not run")
	}
	if label, _ := toggle.Label(); label != "Hide grid" {
		t.Errorf("label = %q, want Hide grid", label)
	}

	rec.Reset()
	rec.Click("Hide grid")
	if err := bar.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if shown {
		t.Error("second click did not toggle back")
	}
	if label, _ := toggle.Label(); label != "Show grid" {
		t.Errorf("label = %q, want Show grid", label)
	}
}

func TestMenuItemUndefinedAction(t *testing.T) {
	rec := guitest.New()
	bar := guikit.NewMenuBar(guikit.NewMenu("File", guikit.NewMenuItem("Open")))

	rec.OpenMenu("File", true)
	rec.Click("Open")
	err := bar.Draw(rec)
	if !errors.Is(err, guikit.ErrUndefinedAction) {
		t.Fatalf("err = %v, want ErrUndefinedAction", err)
	}
	rec.CheckBalanced()
	if len(rec.Problems) > 0 {
		t.Errorf("scopes left open after error: %v", rec.Problems)
	}
}

func TestMenuItemDisabled(t *testing.T) {
	rec := guitest.New()
	item := guikit.NewMenuItem("Save")
	item.Enabled = false
	ran := false
	item.Action = func() { ran = true }
	bar := guikit.NewMenuBar(guikit.NewMenu("File", item))

	rec.OpenMenu("File", true)
	rec.Click("Save")
	if err := bar.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if ran {
		t.Error("disabled item ran its action")
	}
}

func TestMenuItemLabel(t *testing.T) {
	if _, err := guikit.NewMenuItem().Label(); !errors.Is(err, guikit.ErrLabel) {
		t.Errorf("no labels: err = %v, want ErrLabel", err)
	}

	item := guikit.NewMenuItem("a", "b", "c")
	item.Index = 3
	if _, err := item.Label(); !errors.Is(err, guikit.ErrLabel) {
		t.Errorf("index out of range: err = %v, want ErrLabel", err)
	}

	item.Index = 2
	item.Cycle()
	if l, _ := item.Label(); l != "a" {
		t.Errorf("Cycle wrapped to %q, want a", l)
	}
}

func TestMenuBarHidden(t *testing.T) {
	rec := guitest.New()
	rec.MenuBarHidden = true
	bar := guikit.NewMenuBar()
	bar.AddMenu(guikit.NewMenu("File"))

	if err := bar.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if n := rec.Count("EndMainMenuBar"); n != 0 {
		t.Errorf("EndMainMenuBar called %d times for a hidden bar", n)
	}
	if len(bar.Menus()) != 1 {
		t.Errorf("Menus() = %v", bar.Menus())
	}
}
