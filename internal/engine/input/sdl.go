package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// SDLScancodes maps keys to SDL scancodes.
var SDLScancodes = [KeyCount]sdl.Scancode{
	KeyW:         sdl.SCANCODE_W,
	KeyA:         sdl.SCANCODE_A,
	KeyS:         sdl.SCANCODE_S,
	KeyD:         sdl.SCANCODE_D,
	KeyLeftShift: sdl.SCANCODE_LSHIFT,
	KeyEqual:     sdl.SCANCODE_EQUALS,
	KeyMinus:     sdl.SCANCODE_MINUS,
	KeyF:         sdl.SCANCODE_F,
	KeyG:         sdl.SCANCODE_G,
	KeyEscape:    sdl.SCANCODE_ESCAPE,
}

// SDLPoller drains the SDL event queue into snapshots.
//
// In relative mouse mode SDL reports motion deltas only, so the deltas are
// summed into a virtual cursor that starts at the window center.
type SDLPoller struct {
	keys             [KeyCount]bool
	cursorX, cursorY float64
	hasCursor        bool
	width, height    int
}

// NewSDLPoller creates a poller for a window of the given size.
func NewSDLPoller(width, height int) *SDLPoller {
	return &SDLPoller{
		cursorX: float64(width) / 2,
		cursorY: float64(height) / 2,
		width:   width,
		height:  height,
	}
}

// Poll processes pending SDL events and returns the resulting snapshot.
func (p *SDLPoller) Poll() Snapshot {
	var snap Snapshot

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			snap.Quit = true

		case *sdl.WindowEvent:
			switch e.Event {
			case sdl.WINDOWEVENT_SIZE_CHANGED, sdl.WINDOWEVENT_RESIZED:
				p.width, p.height = int(e.Data1), int(e.Data2)
				snap.Resized = true
			case sdl.WINDOWEVENT_FOCUS_GAINED:
				snap.FocusGained = true
			}

		case *sdl.KeyboardEvent:
			if k, ok := keyForScancode(e.Keysym.Scancode); ok {
				p.keys[k] = e.Type == sdl.KEYDOWN
			}

		case *sdl.MouseMotionEvent:
			p.cursorX += float64(e.XRel)
			p.cursorY += float64(e.YRel)
			p.hasCursor = true

		case *sdl.MouseWheelEvent:
			snap.ScrollY += float32(e.Y)
		}
	}

	snap.Keys = p.keys
	snap.CursorX, snap.CursorY = p.cursorX, p.cursorY
	snap.HasCursor = p.hasCursor
	snap.Width, snap.Height = p.width, p.height
	return snap
}

func keyForScancode(sc sdl.Scancode) (Key, bool) {
	for k, code := range SDLScancodes {
		if code == sc {
			return Key(k), true
		}
	}
	return 0, false
}
