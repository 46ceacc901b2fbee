package game

import "github.com/Faultbox/invoker/internal/engine/lighting"

// GhostAlpha is the character opacity during ghost walk.
const GhostAlpha = 0.2

// Ghost is the ghost-walk toggle.
type Ghost struct {
	Active bool
}

// Toggle flips the state and returns the new value.
func (g *Ghost) Toggle() bool {
	g.Active = !g.Active
	return g.Active
}

// Palette returns the light colors for the current state.
func (g Ghost) Palette() lighting.Palette {
	return lighting.ActivePalette(g.Active)
}

// Alpha returns the character opacity for the current state.
func (g Ghost) Alpha() float32 {
	if g.Active {
		return GhostAlpha
	}
	return 1
}
