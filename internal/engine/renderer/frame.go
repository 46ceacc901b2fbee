package renderer

import (
	"errors"
	"fmt"
)

// Pass orders draw commands within a frame. Commands must be added in
// non-decreasing pass order.
type Pass int

const (
	PassSkybox Pass = iota
	PassBackground
	PassLightMarkers
	PassProjectile
	PassCharacter
	PassOutline
)

var passNames = [...]string{
	PassSkybox:       "skybox",
	PassBackground:   "background",
	PassLightMarkers: "light-markers",
	PassProjectile:   "projectile",
	PassCharacter:    "character",
	PassOutline:      "outline",
}

func (p Pass) String() string {
	if p < 0 || int(p) >= len(passNames) {
		return fmt.Sprintf("Pass(%d)", int(p))
	}
	return passNames[p]
}

// Frame building errors.
var (
	ErrPassOrder      = errors.New("draw pass out of order")
	ErrOutlineStencil = errors.New("outline pass requires a preceding stencil-writing character pass")
	ErrOutlineState   = errors.New("outline pass must test the stencil with notequal")
	ErrNilDraw        = errors.New("draw command has no draw function")
)

// Command is one draw with the state it needs.
type Command struct {
	Pass  Pass
	Label string
	State State
	Draw  func()
}

// Frame is a validated, ordered list of draw commands.
type Frame struct {
	Commands []Command
}

// FrameBuilder accumulates commands and enforces the pass sequence.
// The first error sticks; later Adds are ignored and Build returns it.
type FrameBuilder struct {
	cmds []Command
	err  error
}

// NewFrameBuilder creates an empty builder.
func NewFrameBuilder() *FrameBuilder {
	return &FrameBuilder{cmds: make([]Command, 0, 8)}
}

// Add appends a command. Passes must not go backwards.
func (b *FrameBuilder) Add(pass Pass, label string, state State, draw func()) error {
	if b.err != nil {
		return b.err
	}
	if draw == nil {
		b.err = fmt.Errorf("%s: %w", label, ErrNilDraw)
		return b.err
	}
	if n := len(b.cmds); n > 0 && pass < b.cmds[n-1].Pass {
		b.err = fmt.Errorf("%w: %s after %s", ErrPassOrder, pass, b.cmds[n-1].Pass)
		return b.err
	}
	b.cmds = append(b.cmds, Command{Pass: pass, Label: label, State: state, Draw: draw})
	return nil
}

// Build validates the stencil contract and returns the frame.
func (b *FrameBuilder) Build() (*Frame, error) {
	if b.err != nil {
		return nil, b.err
	}

	stencilWritten := false
	for _, c := range b.cmds {
		switch c.Pass {
		case PassCharacter:
			if c.State.Stencil.Func == StencilWrite {
				stencilWritten = true
			}
		case PassOutline:
			if c.State.Stencil.Func != StencilNotEqual {
				return nil, fmt.Errorf("%s: %w", c.Label, ErrOutlineState)
			}
			if !stencilWritten {
				return nil, fmt.Errorf("%s: %w", c.Label, ErrOutlineStencil)
			}
		}
	}

	return &Frame{Commands: b.cmds}, nil
}

// StateApplier translates declared state into GPU calls.
type StateApplier interface {
	// Clear clears color, depth and stencil with all stencil bits writable.
	Clear()
	Apply(State)
	// Reset restores the default state for the next frame.
	Reset()
}

// Submit clears, executes every command under its state, then resets.
func Submit(f *Frame, a StateApplier) {
	a.Clear()
	for _, c := range f.Commands {
		a.Apply(c.State)
		c.Draw()
	}
	a.Reset()
}
