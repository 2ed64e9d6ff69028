package guikit

// Toolkit is the immediate-mode surface the helpers are written against.
// Every method is called once per frame from the UI goroutine; nothing here
// is safe for concurrent use.
//
// Positions returned by CursorPosX/CursorPosY are local to the current
// window. WindowPos and WindowSize describe the current window in screen
// coordinates and are only meaningful between Begin and End.
type Toolkit interface {
	// Windows
	Begin(name string, open *bool, flags WindowFlags) bool
	End()
	SetNextWindowPos(pos Vec2)
	SetNextWindowSize(size Vec2)
	WindowPos() Vec2
	WindowSize() Vec2
	IsWindowFocused() bool
	IsAnyWindowFocused() bool

	// Menus. EndMainMenuBar and EndMenu must only be called when the
	// matching Begin returned true.
	BeginMainMenuBar() bool
	EndMainMenuBar()
	BeginMenu(label string, enabled bool) bool
	EndMenu()
	MenuItem(label, shortcut string, selected, enabled bool) bool

	// Identity scopes
	PushID(id string)
	PopID()

	// Style
	PushStyleColor(slot StyleColor, c Color)
	PopStyleColor(n int)

	// Widgets
	Button(label string, size Vec2) bool
	DragFloat(label string, value *float32, speed, min, max float32, format string) bool
	SetNextItemWidth(width float32)
	TreeNode(label string) bool
	TreePop()
	Text(text string)
	SameLine()

	// Cursor
	CursorPosX() float32
	SetCursorPosX(x float32)
	CursorPosY() float32
	SetCursorPosY(y float32)
}
