package viewer

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	// OrbitDamping is the share of pending rotation applied per step.
	OrbitDamping = 0.05
	// FieldOfView is the vertical field of view in degrees.
	FieldOfView = 45

	maxPitch = math32.Pi/2 - 0.01
)

// Orbit is a damped orbit camera around Target. Position is kept in spherical form so distance
// limits and pitch limits are simple clamps.
type Orbit struct {
	Target      rl.Vector3
	MinDistance float32
	MaxDistance float32

	// Limits passed to NewOrbit; Frame widens from these, not from a previous framing.
	baseMin, baseMax float32

	distance float32
	yaw      float32
	pitch    float32

	pendingYaw   float32
	pendingPitch float32
}

// NewOrbit returns a camera looking at the origin from (10, 10, 10), clamped to [min, max].
func NewOrbit(minDistance, maxDistance float32) *Orbit {
	o := &Orbit{MinDistance: minDistance, MaxDistance: maxDistance, baseMin: minDistance, baseMax: maxDistance}
	o.SetPosition(rl.NewVector3(10, 10, 10))
	return o
}

// SetPosition places the camera at pos, keeping the target. Pending rotation is discarded.
func (o *Orbit) SetPosition(pos rl.Vector3) {
	off := rl.Vector3Subtract(pos, o.Target)
	o.distance = rl.Vector3Length(off)
	o.pendingYaw, o.pendingPitch = 0, 0
	if o.distance == 0 {
		o.yaw, o.pitch = 0, 0
		return
	}
	o.yaw = math32.Atan2(off.X, off.Z)
	o.pitch = clamp(math32.Asin(clamp(off.Y/o.distance, -1, 1)), -maxPitch, maxPitch)
}

// Frame points the camera at target from pos. Distance limits are reset to the configured ones and
// widened when pos lies outside them so the framing is not undone by the next clamp.
func (o *Orbit) Frame(pos, target rl.Vector3) {
	o.Target = target
	o.SetPosition(pos)
	o.MinDistance, o.MaxDistance = o.baseMin, o.baseMax
	if o.distance > o.MaxDistance {
		o.MaxDistance = o.distance
	}
	if o.distance < o.MinDistance {
		o.MinDistance = o.distance
	}
}

// Position returns the camera position in world space.
func (o *Orbit) Position() rl.Vector3 {
	cp := math32.Cos(o.pitch)
	return rl.NewVector3(
		o.Target.X+o.distance*cp*math32.Sin(o.yaw),
		o.Target.Y+o.distance*math32.Sin(o.pitch),
		o.Target.Z+o.distance*cp*math32.Cos(o.yaw),
	)
}

// Distance returns the distance from the camera to its target.
func (o *Orbit) Distance() float32 {
	return o.distance
}

// Rotate queues a rotation in radians; Step applies it gradually.
func (o *Orbit) Rotate(dYaw, dPitch float32) {
	o.pendingYaw += dYaw
	o.pendingPitch += dPitch
}

// Zoom scales the distance (factor < 1 moves closer) within the distance limits.
func (o *Orbit) Zoom(factor float32) {
	if factor <= 0 {
		return
	}
	o.distance = clamp(o.distance*factor, o.MinDistance, o.MaxDistance)
}

// Step applies one frame of damped rotation.
func (o *Orbit) Step() {
	o.yaw += o.pendingYaw * OrbitDamping
	o.pitch = clamp(o.pitch+o.pendingPitch*OrbitDamping, -maxPitch, maxPitch)
	o.pendingYaw *= 1 - OrbitDamping
	o.pendingPitch *= 1 - OrbitDamping
	if math32.Abs(o.pendingYaw) < 1e-5 {
		o.pendingYaw = 0
	}
	if math32.Abs(o.pendingPitch) < 1e-5 {
		o.pendingPitch = 0
	}
}

// Camera returns the raylib camera for the current orbit state.
func (o *Orbit) Camera() rl.Camera3D {
	return rl.Camera3D{
		Position:   o.Position(),
		Target:     o.Target,
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       FieldOfView,
		Projection: rl.CameraPerspective,
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
