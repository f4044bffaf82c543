package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/render"
	"gripper-viewer/internal/viewer"
)

const (
	gridExtent     = 10
	gridStep       = 0.5
	gridMajorEvery = 4
	gridMinorAlpha = 40
	gridMajorAlpha = 90
	axisLineAlpha  = 220
	// axesLength matches the helper drawn next to the model; one unit per axis.
	axesLength = 1
)

var (
	// Reused every frame.
	gridMinor = rl.NewColor(148, 163, 184, gridMinorAlpha)
	gridMajor = rl.NewColor(148, 163, 184, gridMajorAlpha)
	axisX     = rl.NewColor(220, 80, 80, axisLineAlpha)
	axisY     = rl.NewColor(80, 220, 80, axisLineAlpha)
	axisZ     = rl.NewColor(80, 80, 220, axisLineAlpha)
)

// Scene draws the 3D pass: helpers first, then the assembly.
type Scene struct {
	GridVisible bool
	AxesVisible bool
	registry    *render.Registry
	lastGen     uint64
}

// New returns a scene that draws through reg. Grid and axes are visible by default.
func New(reg *render.Registry) *Scene {
	return &Scene{GridVisible: true, AxesVisible: true, registry: reg}
}

// SetGridVisible sets whether the ground grid is drawn.
func (s *Scene) SetGridVisible(visible bool) {
	s.GridVisible = visible
}

// Draw renders the viewer's assembly from its camera. Call after ClearBackground and before the
// 2D overlays. Meshes of a replaced variant are released the first frame after the switch.
func (s *Scene) Draw(v *viewer.Viewer) {
	if gen := v.Generation(); gen != s.lastGen {
		s.registry.Prune(v.Assembly())
		s.lastGen = gen
	}
	cam := v.Camera()
	s.registry.SetView([3]float32{cam.Position.X, cam.Position.Y, cam.Position.Z}, lightFrom(cam))

	rl.BeginMode3D(cam)
	if s.GridVisible {
		drawGrid()
	}
	if s.AxesVisible {
		drawAxes()
	}
	s.registry.DrawAssembly(v.Assembly())
	rl.EndMode3D()
}

// lightFrom places the light above and behind the camera so the visible faces stay lit while
// orbiting.
func lightFrom(cam rl.Camera3D) [3]float32 {
	dir := rl.Vector3Normalize(rl.Vector3Subtract(cam.Position, cam.Target))
	dir = rl.Vector3Normalize(rl.Vector3Add(dir, rl.NewVector3(0, 0.75, 0)))
	return [3]float32{dir.X, dir.Y, dir.Z}
}

// drawGrid draws a grid on the XZ plane with a brighter line every gridMajorEvery steps.
func drawGrid() {
	var start, end rl.Vector3
	n := int(gridExtent / gridStep)
	for i := -n; i <= n; i++ {
		c := gridMinor
		if i%gridMajorEvery == 0 {
			c = gridMajor
		}
		p := float32(i) * gridStep
		start.X, start.Y, start.Z = p, 0, -gridExtent
		end.X, end.Y, end.Z = p, 0, gridExtent
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -gridExtent, 0, p
		end.X, end.Y, end.Z = gridExtent, 0, p
		rl.DrawLine3D(start, end, c)
	}
}

// drawAxes draws one colored unit line along each axis from the origin.
func drawAxes() {
	origin := rl.NewVector3(0, 0, 0)
	rl.DrawLine3D(origin, rl.NewVector3(axesLength, 0, 0), axisX)
	rl.DrawLine3D(origin, rl.NewVector3(0, axesLength, 0), axisY)
	rl.DrawLine3D(origin, rl.NewVector3(0, 0, axesLength), axisZ)
}
