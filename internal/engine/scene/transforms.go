package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Scene layout constants.
const (
	MoonRadius     = 6.0
	MoonDepth      = -6.0
	MoonSpin       = 0.05 // rad/s about +Y
	OrbScale       = 0.15
	MeteorScale    = 0.03
	LevitateRate   = 1.5
	LevitateHeight = 0.2
	LevitateBase   = 0.5
	OutlineScale   = 1.02
)

// MoonTransform places the background sphere below the character and slowly spins it.
func MoonTransform(elapsed float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, MoonDepth, 0).
		Mul4(mgl32.Scale3D(MoonRadius, MoonRadius, MoonRadius)).
		Mul4(mgl32.HomogRotate3DY(elapsed * MoonSpin))
}

// OrbTransform places a light marker sphere.
func OrbTransform(position mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.Scale3D(OrbScale, OrbScale, OrbScale))
}

// MeteorTransform places the projectile spun by angle radians about axis.
// A zero axis leaves the projectile unrotated.
func MeteorTransform(position mgl32.Vec3, angle float32, axis mgl32.Vec3) mgl32.Mat4 {
	m := mgl32.Translate3D(position.X(), position.Y(), position.Z())
	if axis.Len() > 0 {
		m = m.Mul4(mgl32.HomogRotate3D(angle, axis.Normalize()))
	}
	return m.Mul4(mgl32.Scale3D(MeteorScale, MeteorScale, MeteorScale))
}

// LevitationHeight is the character's vertical bob at a given time.
func LevitationHeight(elapsed float32) float32 {
	return float32(math.Sin(float64(elapsed*LevitateRate)))*LevitateHeight + LevitateBase
}

// CharacterTransform lifts the character by its levitation height.
func CharacterTransform(elapsed float32) mgl32.Mat4 {
	return mgl32.Translate3D(0, LevitationHeight(elapsed), 0)
}

// OutlineTransform enlarges the character transform for the rim silhouette.
func OutlineTransform(character mgl32.Mat4) mgl32.Mat4 {
	return character.Mul4(mgl32.Scale3D(OutlineScale, OutlineScale, OutlineScale))
}

// SkyView strips translation from a view matrix so the skybox stays infinitely far.
func SkyView(view mgl32.Mat4) mgl32.Mat4 {
	return view.Mat3().Mat4()
}
