package game

import "github.com/go-gl/mathgl/mgl32"

// Projectile constants.
const (
	MeteorSpeed    = 15.0
	MeteorSpinRate = 5.0 // rad/s
	MeteorExpiryY  = -10.0
)

var (
	MeteorSpawn    = mgl32.Vec3{0, 15, 0}
	MeteorHeading  = mgl32.Vec3{0, -0.8, 0.5}.Normalize()
	MeteorSpinAxis = mgl32.Vec3{1, 0.5, 0}.Normalize()
)

// Meteor is the projectile state machine: idle until launched, then falling
// until it drops below MeteorExpiryY.
type Meteor struct {
	Active    bool
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Speed     float32
	Rotation  float32
}

// Launch starts a flight from the spawn point. It does nothing and returns
// false while a flight is in progress.
func (m *Meteor) Launch() bool {
	if m.Active {
		return false
	}
	*m = Meteor{
		Active:    true,
		Position:  MeteorSpawn,
		Direction: MeteorHeading,
		Speed:     MeteorSpeed,
	}
	return true
}

// Update advances an active flight by dt seconds and reports whether it
// ended on this step.
func (m *Meteor) Update(dt float32) (expired bool) {
	if !m.Active {
		return false
	}
	m.Position = m.Position.Add(m.Direction.Mul(m.Speed * dt))
	m.Rotation += MeteorSpinRate * dt
	if m.Position.Y() < MeteorExpiryY {
		m.Active = false
		return true
	}
	return false
}
