package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// GLFWKeys maps keys to GLFW key codes.
var GLFWKeys = [KeyCount]glfw.Key{
	KeyW:         glfw.KeyW,
	KeyA:         glfw.KeyA,
	KeyS:         glfw.KeyS,
	KeyD:         glfw.KeyD,
	KeyLeftShift: glfw.KeyLeftShift,
	KeyEqual:     glfw.KeyEqual,
	KeyMinus:     glfw.KeyMinus,
	KeyF:         glfw.KeyF,
	KeyG:         glfw.KeyG,
	KeyEscape:    glfw.KeyEscape,
}

// GLFWCollector gathers callback-driven GLFW input between snapshots.
// Keys are read by polling; cursor, scroll and resize arrive through callbacks.
type GLFWCollector struct {
	cursorX, cursorY float64
	hasCursor        bool
	scrollY          float32
	resized          bool
	focusGained      bool
	width, height    int
}

// Attach installs the cursor, scroll, framebuffer and focus callbacks on win.
func (c *GLFWCollector) Attach(win *glfw.Window) {
	c.width, c.height = win.GetFramebufferSize()

	win.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		c.cursorX, c.cursorY = x, y
		c.hasCursor = true
	})
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		c.scrollY += float32(yoff)
	})
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		c.width, c.height = width, height
		c.resized = true
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		if focused {
			c.focusGained = true
		}
	})
}

// Snapshot reads key state from win and drains the collected callback data.
// Call it after glfw.PollEvents.
func (c *GLFWCollector) Snapshot(win *glfw.Window) Snapshot {
	snap := Snapshot{
		CursorX:   c.cursorX,
		CursorY:   c.cursorY,
		HasCursor: c.hasCursor,
		ScrollY:   c.scrollY,
		Quit:      win.ShouldClose(),
		Resized:   c.resized,
		Width:     c.width,
		Height:    c.height,

		FocusGained: c.focusGained,
	}
	for k, code := range GLFWKeys {
		snap.Keys[k] = win.GetKey(code) == glfw.Press
	}

	c.scrollY = 0
	c.resized = false
	c.focusGained = false
	return snap
}
