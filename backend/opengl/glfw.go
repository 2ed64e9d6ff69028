package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit/imm"
)

// GLFWInputAdapter adapts GLFW mouse input to imm.InputState.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  *imm.InputState
}

// NewGLFWInputAdapter installs mouse callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  imm.NewInputState(),
	}

	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update clears last frame's events, polls GLFW and returns the input of the
// new frame. Call it once at the start of each frame instead of
// glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *imm.InputState {
	a.input.Reset()
	glfw.PollEvents()

	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))
	return a.input
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *imm.InputState {
	return a.input
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(float32(xoff), float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwMouseButton maps GLFW mouse buttons to imm mouse buttons.
func glfwMouseButton(button glfw.MouseButton) imm.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return imm.MouseButtonLeft
	case glfw.MouseButtonRight:
		return imm.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return imm.MouseButtonMiddle
	default:
		return -1
	}
}
