// Package window creates the application window and its OpenGL 4.1 core context.
package window

import (
	"fmt"
	"runtime"

	"github.com/Faultbox/invoker/internal/engine/input"
)

func init() {
	// OpenGL calls must be made from the main thread
	runtime.LockOSThread()
}

// Backend names accepted by New.
const (
	BackendSDL  = "sdl"
	BackendGLFW = "glfw"
)

// Config holds window configuration.
type Config struct {
	Title       string
	Width       int
	Height      int
	Fullscreen  bool
	VSync       bool
	StencilBits int
}

// Window owns the native window, its GL context and input polling.
type Window interface {
	// PollInput processes pending events and returns this frame's input.
	PollInput() input.Snapshot
	SwapBuffers()
	// FramebufferSize returns the drawable size in pixels.
	FramebufferSize() (int, int)
	SetTitle(title string)
	Close()
}

// New creates a window using the named backend.
func New(backend string, cfg Config) (Window, error) {
	if cfg.StencilBits == 0 {
		cfg.StencilBits = 8
	}
	switch backend {
	case BackendSDL, "":
		return newSDL(cfg)
	case BackendGLFW:
		return newGLFW(cfg)
	default:
		return nil, fmt.Errorf("unknown window backend %q", backend)
	}
}
