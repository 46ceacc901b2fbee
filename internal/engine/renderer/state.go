package renderer

import "fmt"

// DepthFunc is the depth comparison used by a draw.
type DepthFunc int

const (
	DepthLess DepthFunc = iota
	// DepthLessEqual lets geometry written at the far plane (depth 1.0) pass.
	DepthLessEqual
)

// StencilFunc selects how a draw uses the stencil buffer.
type StencilFunc int

const (
	// StencilOff disables the stencil test.
	StencilOff StencilFunc = iota
	// StencilWrite always passes and replaces the stencil value with Ref.
	StencilWrite
	// StencilNotEqual passes only where the stencil value differs from Ref.
	StencilNotEqual
)

// Stencil describes the stencil test and write mask of a draw.
type Stencil struct {
	Func      StencilFunc
	Ref       int32
	ReadMask  uint32
	WriteMask uint32
}

// BlendMode selects color blending.
type BlendMode int

const (
	BlendOpaque BlendMode = iota
	// BlendAlpha uses src*alpha + dst*(1-alpha).
	BlendAlpha
)

// State is the fixed-function state a draw command requires.
type State struct {
	Depth   DepthFunc
	Stencil Stencil
	Blend   BlendMode
}

// OutlineStencilRef marks pixels covered by the character.
const OutlineStencilRef = 1

// Predefined states for each pass.
var (
	SkyboxState = State{Depth: DepthLessEqual}
	OpaqueState = State{Depth: DepthLess}

	OutlineState = State{
		Depth: DepthLess,
		Stencil: Stencil{
			Func:      StencilNotEqual,
			Ref:       OutlineStencilRef,
			ReadMask:  0xFF,
			WriteMask: 0x00,
		},
	}
)

// CharacterState writes the outline mask, optionally alpha blended.
func CharacterState(blend BlendMode) State {
	return State{
		Depth: DepthLess,
		Stencil: Stencil{
			Func:      StencilWrite,
			Ref:       OutlineStencilRef,
			ReadMask:  0xFF,
			WriteMask: 0xFF,
		},
		Blend: blend,
	}
}

func (d DepthFunc) String() string {
	switch d {
	case DepthLess:
		return "less"
	case DepthLessEqual:
		return "lequal"
	default:
		return fmt.Sprintf("DepthFunc(%d)", int(d))
	}
}

func (s StencilFunc) String() string {
	switch s {
	case StencilOff:
		return "off"
	case StencilWrite:
		return "write"
	case StencilNotEqual:
		return "notequal"
	default:
		return fmt.Sprintf("StencilFunc(%d)", int(s))
	}
}

func (b BlendMode) String() string {
	switch b {
	case BlendOpaque:
		return "opaque"
	case BlendAlpha:
		return "alpha"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(b))
	}
}
