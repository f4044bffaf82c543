package geom

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
)

func frontCamera() rl.Camera3D {
	return rl.Camera3D{
		Position:   rl.NewVector3(0, 0, 10),
		Target:     rl.NewVector3(0, 0, 0),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}
}

func TestBoxHelpers(t *testing.T) {
	b := EmptyBox()
	assert.True(t, IsEmpty(b))
	b = ExpandPoint(b, rl.NewVector3(1, 2, 3))
	assert.False(t, IsEmpty(b))
	b = ExpandPoint(b, rl.NewVector3(-1, 4, 0))
	assert.Equal(t, rl.NewVector3(-1, 2, 0), b.Min)
	assert.Equal(t, rl.NewVector3(1, 4, 3), b.Max)
	assert.Equal(t, rl.NewVector3(0, 3, 1.5), Center(b))
	assert.Equal(t, rl.NewVector3(2, 2, 3), Size(b))
	assert.Equal(t, float32(3), MaxDim(b))

	u := Union(EmptyBox(), b)
	assert.Equal(t, b, u)
	u = Union(b, rl.NewBoundingBox(rl.NewVector3(5, 5, 5), rl.NewVector3(6, 6, 6)))
	assert.Equal(t, rl.NewVector3(6, 6, 6), u.Max)

	moved := Translate(b, rl.NewVector3(1, 0, 0))
	assert.Equal(t, float32(0), moved.Min.X)
}

func TestComponentAndAxis(t *testing.T) {
	v := rl.NewVector3(1, 2, 3)
	assert.Equal(t, float32(1), Component(v, 0))
	assert.Equal(t, float32(2), Component(v, 1))
	assert.Equal(t, float32(3), Component(v, 2))
	assert.Equal(t, rl.NewVector3(0, 0, 1), AxisVector(2))
}

func TestProjectCenterAndDepth(t *testing.T) {
	cam := frontCamera()
	ndc, ok := Project(rl.NewVector3(0, 0, 0), cam, 1)
	assert.True(t, ok)
	assert.InDelta(t, 0, ndc.X, 1e-5)
	assert.InDelta(t, 0, ndc.Y, 1e-5)
	assert.True(t, ndc.Z > -1 && ndc.Z < 1)

	// Beyond the far plane.
	far, ok := Project(rl.NewVector3(0, 0, -2000), cam, 1)
	assert.True(t, ok)
	assert.Greater(t, far.Z, float32(1))

	// A point above the target projects above the center.
	up, _ := Project(rl.NewVector3(0, 1, 0), cam, 1)
	assert.Greater(t, up.Y, float32(0))
	s := ScreenFromNDC(up, 800, 600)
	assert.Less(t, s.Y, float32(300))
}

func TestUnprojectRoundTrip(t *testing.T) {
	cam := frontCamera()
	p := rl.NewVector3(1.5, -0.5, 2)
	ndc, ok := Project(p, cam, 4.0/3.0)
	assert.True(t, ok)
	back := Unproject(ndc, cam, 4.0/3.0)
	assert.InDelta(t, p.X, back.X, 1e-2)
	assert.InDelta(t, p.Y, back.Y, 1e-2)
	assert.InDelta(t, p.Z, back.Z, 1e-2)
}

func TestRayFromNDC(t *testing.T) {
	cam := frontCamera()
	ray := RayFromNDC(rl.NewVector2(0, 0), cam, 1)
	assert.Equal(t, cam.Position, ray.Position)
	assert.InDelta(t, 0, ray.Direction.X, 1e-4)
	assert.InDelta(t, 0, ray.Direction.Y, 1e-4)
	assert.InDelta(t, -1, ray.Direction.Z, 1e-4)

	ndc := NDCFromScreen(rl.NewVector2(400, 300), 800, 600)
	assert.Equal(t, rl.NewVector2(0, 0), ndc)
}
