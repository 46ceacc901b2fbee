// Package lighting provides the orbiting point lights and their color palettes.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// LightCount is the number of orbit lights; it matches NR_POINT_LIGHTS in the lit shader.
const LightCount = 3

// Attenuation terms shared by all orbit lights.
const (
	AttenuationConstant  = 1.0
	AttenuationLinear    = 0.09
	AttenuationQuadratic = 0.032

	// AmbientFactor scales a light's color into its ambient term.
	AmbientFactor = 0.1
)

// PointLight holds the per-light uniforms of the lit shader.
type PointLight struct {
	Position mgl32.Vec3
	Ambient  mgl32.Vec3
	Diffuse  mgl32.Vec3
	Specular mgl32.Vec3

	Constant  float32
	Linear    float32
	Quadratic float32
}

// NewPointLight derives ambient, diffuse and specular terms from a single color.
func NewPointLight(position, color mgl32.Vec3) PointLight {
	return PointLight{
		Position:  position,
		Ambient:   color.Mul(AmbientFactor),
		Diffuse:   color,
		Specular:  color,
		Constant:  AttenuationConstant,
		Linear:    AttenuationLinear,
		Quadratic: AttenuationQuadratic,
	}
}

// Palette is one color per orbit light.
type Palette [LightCount]mgl32.Vec3

var (
	// NormalPalette colors the lights quas blue, wex pink and exort orange.
	NormalPalette = Palette{
		{0.2, 0.2, 1.0},
		{1.0, 0.2, 1.0},
		{1.0, 0.5, 0.0},
	}

	// GhostPalette turns every light violet while ghost walk is active.
	GhostPalette = Palette{
		{0.8, 0.0, 1.0},
		{0.8, 0.0, 1.0},
		{0.8, 0.0, 1.0},
	}
)

// ActivePalette selects the palette for the ghost-walk state.
func ActivePalette(ghost bool) Palette {
	if ghost {
		return GhostPalette
	}
	return NormalPalette
}

// Lights pairs positions with palette colors.
func Lights(positions [LightCount]mgl32.Vec3, palette Palette) [LightCount]PointLight {
	var lights [LightCount]PointLight
	for i := range lights {
		lights[i] = NewPointLight(positions[i], palette[i])
	}
	return lights
}
