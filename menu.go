package guikit

import "fmt"

// MenuItem is an entry of a Menu.
//
// The displayed label is Labels[Index]. Items with a single label never
// change; items with alternatives are relabelled by changing Index, for
// example a "Show"/"Hide" toggle that calls Cycle from its action.
type MenuItem struct {
	Labels   []string
	Index    int
	Action   func()
	Shortcut string // display only, the toolkit does not bind it
	Selected bool   // draws a check mark
	Enabled  bool
}

// NewMenuItem creates an enabled item with the given label alternatives.
func NewMenuItem(labels ...string) *MenuItem {
	return &MenuItem{Labels: labels, Enabled: true}
}

// Label returns the label currently selected by Index.
func (m *MenuItem) Label() (string, error) {
	if len(m.Labels) == 0 {
		return "", configErr("menu item label", fmt.Errorf("%w: no label", ErrLabel))
	}
	if m.Index < 0 || m.Index >= len(m.Labels) {
		return "", configErr("menu item label",
			fmt.Errorf("%w: index %d of %d labels", ErrLabel, m.Index, len(m.Labels)))
	}
	return m.Labels[m.Index], nil
}

// Cycle selects the next label alternative, wrapping around.
func (m *MenuItem) Cycle() {
	if len(m.Labels) > 0 {
		m.Index = (m.Index + 1) % len(m.Labels)
	}
}

// Menu is a named drop-down of items in a menu bar.
type Menu struct {
	Name    string
	Items   []*MenuItem
	Enabled bool
}

// NewMenu creates an enabled menu.
func NewMenu(name string, items ...*MenuItem) *Menu {
	return &Menu{Name: name, Items: items, Enabled: true}
}

func (m *Menu) draw(tk Toolkit) error {
	if !tk.BeginMenu(m.Name, m.Enabled) {
		return nil
	}
	defer tk.EndMenu()

	for _, item := range m.Items {
		label, err := item.Label()
		if err != nil {
			return err
		}
		if !tk.MenuItem(label, item.Shortcut, item.Selected, item.Enabled) {
			continue
		}
		if item.Action == nil {
			return configErr("menu "+m.Name, fmt.Errorf("%w: item %q", ErrUndefinedAction, label))
		}
		logger.Debug("menu action", "menu", m.Name, "item", label)
		item.Action()
	}
	return nil
}

// MenuBar is the application's main menu bar.
type MenuBar struct {
	*Window
	menus []*Menu
}

// MenuBarKey is the window key of every MenuBar.
const MenuBarKey = "main-menu-bar"

// NewMenuBar creates a main menu bar window with the given menus.
func NewMenuBar(menus ...*Menu) *MenuBar {
	mb := &MenuBar{menus: menus}
	// scope and content are both set, NewWindow cannot fail.
	mb.Window, _ = NewWindow(MenuBarKey, mainMenuBarScope{}, mb.drawMenus)
	return mb
}

// Menus returns the menus in display order.
func (mb *MenuBar) Menus() []*Menu { return mb.menus }

// AddMenu appends a menu to the bar.
func (mb *MenuBar) AddMenu(m *Menu) { mb.menus = append(mb.menus, m) }

func (mb *MenuBar) drawMenus(tk Toolkit) error {
	for _, m := range mb.menus {
		if err := m.draw(tk); err != nil {
			return err
		}
	}
	return nil
}

type mainMenuBarScope struct{}

func (mainMenuBarScope) Begin(tk Toolkit) bool { return tk.BeginMainMenuBar() }

func (mainMenuBarScope) End(tk Toolkit, opened bool) {
	if opened {
		tk.EndMainMenuBar()
	}
}
