package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridview"
)

// GLFWInputAdapter adapts GLFW input to gridview.InputState and applies
// the cursor icon a frame asked for.
//
// Per frame: glfw.PollEvents, Update, the gridview frame, then EndFrame.
type GLFWInputAdapter struct {
	window  *glfw.Window
	input   *gridview.InputState
	cursors map[gridview.CursorIcon]*glfw.Cursor
	current gridview.CursorIcon
}

// NewGLFWInputAdapter creates a new GLFW input adapter.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		input:  gridview.NewInputState(),
		cursors: map[gridview.CursorIcon]*glfw.Cursor{
			gridview.CursorResizeColumn: glfw.CreateStandardCursor(glfw.HResizeCursor),
			gridview.CursorResizeRow:    glfw.CreateStandardCursor(glfw.VResizeCursor),
			gridview.CursorGrabbing:     glfw.CreateStandardCursor(glfw.HandCursor),
			// GLFW 3.3 has no not-allowed shape
			gridview.CursorNotAllowed: glfw.CreateStandardCursor(glfw.CrosshairCursor),
		},
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update refreshes pointer position and modifiers after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() *gridview.InputState {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	a.input.ModCtrl = a.window.GetKey(glfw.KeyLeftControl) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightControl) == glfw.Press
	a.input.ModShift = a.window.GetKey(glfw.KeyLeftShift) == glfw.Press ||
		a.window.GetKey(glfw.KeyRightShift) == glfw.Press

	return a.input
}

// EndFrame applies the frame's cursor icon and clears per-frame edges.
func (a *GLFWInputAdapter) EndFrame(ctx *gridview.Context) {
	if icon := ctx.CursorIcon(); icon != a.current {
		a.window.SetCursor(a.cursors[icon]) // nil restores the arrow
		a.current = icon
	}
	a.input.Reset()
}

// Input returns the current input state.
func (a *GLFWInputAdapter) Input() *gridview.InputState {
	return a.input
}

// Destroy releases the cursors.
func (a *GLFWInputAdapter) Destroy() {
	a.window.SetCursor(nil)
	for icon, c := range a.cursors {
		c.Destroy()
		delete(a.cursors, icon)
	}
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k := glfwKeyToKey(key)
	if k == gridview.KeyNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetKey(k, true)
	case glfw.Repeat:
		// Repeats arrive without a release; make each one a new press
		a.input.SetKey(k, false)
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	// The press origin is recorded from the current position
	x, y := w.GetCursorPos()
	a.input.SetMousePos(float32(x), float32(y))

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.input.SetMouseWheel(a.input.MouseWheelX+float32(xoff), a.input.MouseWheelY+float32(yoff))
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(float32(xpos), float32(ypos))
}

// glfwKeyToKey maps the GLFW keys a table reacts to.
func glfwKeyToKey(key glfw.Key) gridview.Key {
	switch key {
	case glfw.KeyLeft:
		return gridview.KeyLeft
	case glfw.KeyRight:
		return gridview.KeyRight
	case glfw.KeyUp:
		return gridview.KeyUp
	case glfw.KeyDown:
		return gridview.KeyDown
	case glfw.KeyPageUp:
		return gridview.KeyPageUp
	case glfw.KeyPageDown:
		return gridview.KeyPageDown
	case glfw.KeyHome:
		return gridview.KeyHome
	case glfw.KeyEnd:
		return gridview.KeyEnd
	default:
		return gridview.KeyNone
	}
}

func glfwMouseButton(button glfw.MouseButton) gridview.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return gridview.MouseButtonLeft
	case glfw.MouseButtonRight:
		return gridview.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return gridview.MouseButtonMiddle
	default:
		return -1
	}
}
