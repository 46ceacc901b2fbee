package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/invoker/internal/config"
	"github.com/Faultbox/invoker/internal/engine/camera"
	"github.com/Faultbox/invoker/internal/engine/lighting"
	"github.com/Faultbox/invoker/internal/engine/scene"
)

// Event is a discrete change produced by SceneState.Update.
type Event int

const (
	EventMeteorLaunched Event = iota
	EventMeteorExpired
	EventGhostToggled
)

func (e Event) String() string {
	switch e {
	case EventMeteorLaunched:
		return "meteor_launched"
	case EventMeteorExpired:
		return "meteor_expired"
	case EventGhostToggled:
		return "ghost_toggled"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// CameraStart is where the camera begins, looking down -Z at the character.
var CameraStart = mgl32.Vec3{0, 0, 3}

// MaxStep caps the simulation step so a stall (window drag, breakpoint) does
// not teleport the meteor or the camera. Elapsed time is not capped.
const MaxStep = 0.25

// SceneState is the whole mutable state of the scene.
type SceneState struct {
	Camera *camera.FlyCamera

	// Elapsed is wall-clock time driving the orbit, spin and levitation.
	// Delta is the last simulation step, at most MaxStep.
	Elapsed float64
	Delta   float32

	Orbit  *lighting.Orbit
	Meteor Meteor
	Ghost  Ghost

	MoveSpeed  float32
	BoostSpeed float32
}

// NewSceneState creates the initial state from settings.
func NewSceneState(cfg *config.Config) *SceneState {
	cam := camera.NewFlyCamera(CameraStart)
	cam.MouseSensitivity = cfg.Controls.MouseSensitivity
	cam.Zoom = cfg.Graphics.FOV
	cam.MovementSpeed = cfg.Controls.MoveSpeed

	return &SceneState{
		Camera:     cam,
		Orbit:      lighting.NewOrbit(cfg.Scene.OrbitRadius),
		MoveSpeed:  cfg.Controls.MoveSpeed,
		BoostSpeed: cfg.Controls.BoostSpeed,
	}
}

// Update advances the state by dt seconds and applies the frame's actions.
func (s *SceneState) Update(dt float32, a Actions) []Event {
	var events []Event

	s.Elapsed += float64(dt)
	if dt > MaxStep {
		dt = MaxStep
	}
	s.Delta = dt

	if a.Boost {
		s.Camera.MovementSpeed = s.BoostSpeed
	} else {
		s.Camera.MovementSpeed = s.MoveSpeed
	}
	if a.Forward {
		s.Camera.ProcessKeyboard(camera.Forward, dt)
	}
	if a.Backward {
		s.Camera.ProcessKeyboard(camera.Backward, dt)
	}
	if a.Left {
		s.Camera.ProcessKeyboard(camera.Left, dt)
	}
	if a.Right {
		s.Camera.ProcessKeyboard(camera.Right, dt)
	}
	if a.LookX != 0 || a.LookY != 0 {
		s.Camera.ProcessMouseMovement(a.LookX, a.LookY)
	}
	if a.Scroll != 0 {
		s.Camera.ProcessMouseScroll(a.Scroll)
	}

	if a.RadiusDir != 0 {
		s.Orbit.AdjustRadius(a.RadiusDir * lighting.RadiusRate * dt)
	}

	if a.Launch && s.Meteor.Launch() {
		events = append(events, EventMeteorLaunched)
	}
	if a.ToggleGhost {
		s.Ghost.Toggle()
		events = append(events, EventGhostToggled)
	}

	if s.Meteor.Update(dt) {
		events = append(events, EventMeteorExpired)
	}
	return events
}

// Lights returns the orbit lights for the current time and palette.
func (s *SceneState) Lights() [lighting.LightCount]lighting.PointLight {
	return lighting.Lights(s.Orbit.Positions(s.Elapsed), s.Ghost.Palette())
}

// View snapshots the state for drawing at the given aspect ratio.
func (s *SceneState) View(aspect float32) scene.View {
	v := scene.View{
		Projection:     s.Camera.ProjectionMatrix(aspect),
		View:           s.Camera.ViewMatrix(),
		CameraPos:      s.Camera.Position,
		Elapsed:        float32(s.Elapsed),
		Lights:         s.Lights(),
		Ghost:          s.Ghost.Active,
		CharacterAlpha: s.Ghost.Alpha(),
	}
	if s.Meteor.Active {
		v.Meteor = &scene.MeteorPose{
			Position: s.Meteor.Position,
			Angle:    s.Meteor.Rotation,
			Axis:     MeteorSpinAxis,
		}
	}
	return v
}
