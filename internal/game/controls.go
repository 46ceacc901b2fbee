package game

import "github.com/Faultbox/invoker/internal/engine/input"

// Actions are the per-frame commands derived from input.
type Actions struct {
	Forward, Backward, Left, Right bool
	Boost                          bool

	// RadiusDir is +1 while growing the orbit, -1 while shrinking, 0 otherwise.
	RadiusDir float32

	Launch      bool
	ToggleGhost bool
	Quit        bool

	LookX, LookY float32
	Scroll       float32
}

// ReadActions maps the current input state to actions. Launch and ghost
// toggling fire only on the frame their key goes down. Regaining focus
// recalibrates the pointer so the cursor travel while away is ignored.
func ReadActions(t *input.Tracker, p *input.Pointer) Actions {
	cur := t.Current()
	a := Actions{
		Forward:     t.Down(input.KeyW),
		Backward:    t.Down(input.KeyS),
		Left:        t.Down(input.KeyA),
		Right:       t.Down(input.KeyD),
		Boost:       t.Down(input.KeyLeftShift),
		Launch:      t.JustPressed(input.KeyF),
		ToggleGhost: t.JustPressed(input.KeyG),
		Quit:        t.Down(input.KeyEscape) || cur.Quit,
		Scroll:      cur.ScrollY,
	}

	if t.Down(input.KeyEqual) {
		a.RadiusDir++
	}
	if t.Down(input.KeyMinus) {
		a.RadiusDir--
	}

	if cur.FocusGained {
		p.Reset()
	}
	if cur.HasCursor {
		a.LookX, a.LookY = p.Sample(cur.CursorX, cur.CursorY)
	}
	return a
}
