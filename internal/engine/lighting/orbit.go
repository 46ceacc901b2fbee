package lighting

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Orbit defaults.
const (
	MinOrbitRadius     = 1.0
	MaxOrbitRadius     = 15.0
	DefaultOrbitRadius = 1.25

	OrbitSpeed  = 2.0 // rad/s
	OrbitHeight = 1.3

	// RadiusRate is how fast the radius keys grow or shrink the orbit, in units per second.
	RadiusRate = 2.0
)

// OrbitPhases spaces the lights roughly 2π/3 apart.
var OrbitPhases = [LightCount]float32{0, 2.09, 4.18}

// Orbit computes the positions of the lights circling the character.
// Radius is kept within [MinOrbitRadius, MaxOrbitRadius].
type Orbit struct {
	radius float32
	Speed  float32
	Height float32
	Phases [LightCount]float32
}

// NewOrbit creates an orbit with the given initial radius, clamped to range.
func NewOrbit(radius float32) *Orbit {
	return &Orbit{
		radius: clampRadius(radius),
		Speed:  OrbitSpeed,
		Height: OrbitHeight,
		Phases: OrbitPhases,
	}
}

// Radius returns the current orbit radius.
func (o *Orbit) Radius() float32 {
	return o.radius
}

// AdjustRadius changes the radius by delta and clamps the result.
func (o *Orbit) AdjustRadius(delta float32) {
	o.radius = clampRadius(o.radius + delta)
}

// Angles returns θ_k = elapsed·speed + phase_k.
func (o *Orbit) Angles(elapsed float64) [LightCount]float64 {
	var a [LightCount]float64
	for i, phase := range o.Phases {
		a[i] = elapsed*float64(o.Speed) + float64(phase)
	}
	return a
}

// Positions returns (sin θ·r, height, cos θ·r) for each light.
func (o *Orbit) Positions(elapsed float64) [LightCount]mgl32.Vec3 {
	var p [LightCount]mgl32.Vec3
	r := float64(o.radius)
	for i, theta := range o.Angles(elapsed) {
		p[i] = mgl32.Vec3{
			float32(math.Sin(theta) * r),
			o.Height,
			float32(math.Cos(theta) * r),
		}
	}
	return p
}

func clampRadius(r float32) float32 {
	return mgl32.Clamp(r, MinOrbitRadius, MaxOrbitRadius)
}
