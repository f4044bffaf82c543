package geom

import rl "github.com/gen2brain/raylib-go/raylib"

// Clip distances used for picking and label projection. They match raylib's default
// perspective cull distances so projected labels line up with what BeginMode3D draws.
const (
	ClipNear = 0.01
	ClipFar  = 1000.0
)

// ViewProjection returns the view and projection matrices raylib uses for a perspective camera
// at the given viewport aspect ratio.
func ViewProjection(cam rl.Camera3D, aspect float32) (view, proj rl.Matrix) {
	view = rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	proj = rl.MatrixPerspective(cam.Fovy*rl.Deg2rad, aspect, ClipNear, ClipFar)
	return view, proj
}

// transform4 applies m to the homogeneous point (v, w).
func transform4(v rl.Vector3, w float32, m rl.Matrix) (x, y, z, ow float32) {
	x = m.M0*v.X + m.M4*v.Y + m.M8*v.Z + m.M12*w
	y = m.M1*v.X + m.M5*v.Y + m.M9*v.Z + m.M13*w
	z = m.M2*v.X + m.M6*v.Y + m.M10*v.Z + m.M14*w
	ow = m.M3*v.X + m.M7*v.Y + m.M11*v.Z + m.M15*w
	return x, y, z, ow
}

// Project maps a world point to normalized device coordinates (each axis in [-1, 1] when visible,
// Y up). ok is false when the point is on the camera plane and has no projection.
func Project(p rl.Vector3, cam rl.Camera3D, aspect float32) (ndc rl.Vector3, ok bool) {
	view, proj := ViewProjection(cam, aspect)
	vx, vy, vz, vw := transform4(p, 1, view)
	x, y, z, w := transform4(rl.NewVector3(vx, vy, vz), vw, proj)
	if w == 0 {
		return rl.Vector3{}, false
	}
	return rl.NewVector3(x/w, y/w, z/w), true
}

// Unproject maps normalized device coordinates back to a world point.
func Unproject(ndc rl.Vector3, cam rl.Camera3D, aspect float32) rl.Vector3 {
	view, proj := ViewProjection(cam, aspect)
	inv := rl.MatrixInvert(rl.MatrixMultiply(view, proj))
	x, y, z, w := transform4(ndc, 1, inv)
	if w == 0 {
		return rl.NewVector3(x, y, z)
	}
	return rl.NewVector3(x/w, y/w, z/w)
}

// RayFromNDC builds the picking ray from the camera through a pointer at normalized device
// coordinates (x right, y up, both in [-1, 1]).
func RayFromNDC(ndc rl.Vector2, cam rl.Camera3D, aspect float32) rl.Ray {
	near := Unproject(rl.NewVector3(ndc.X, ndc.Y, -1), cam, aspect)
	far := Unproject(rl.NewVector3(ndc.X, ndc.Y, 1), cam, aspect)
	dir := rl.Vector3Normalize(rl.Vector3Subtract(far, near))
	return rl.NewRay(cam.Position, dir)
}

// ScreenFromNDC converts normalized device coordinates to pixel coordinates (origin top-left).
func ScreenFromNDC(ndc rl.Vector3, width, height float32) rl.Vector2 {
	return rl.NewVector2((ndc.X*0.5+0.5)*width, (-ndc.Y*0.5+0.5)*height)
}

// NDCFromScreen converts a pixel position to normalized device coordinates.
func NDCFromScreen(p rl.Vector2, width, height float32) rl.Vector2 {
	return rl.NewVector2(p.X/width*2-1, -(p.Y/height)*2+1)
}
