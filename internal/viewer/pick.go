package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/geom"
)

// PickState is the last successful pick. It survives camera moves; only the label's visibility
// is recomputed each frame.
type PickState struct {
	Point  rl.Vector3
	Label  string
	Active bool
}

// Pick casts a ray through the pointer position (normalized device coordinates) and records the
// nearest labelled hit. A miss, or a hit on geometry without a label, leaves the state untouched.
func (v *Viewer) Pick(ndc rl.Vector2, aspect float32) bool {
	ray := geom.RayFromNDC(ndc, v.camera.Camera(), aspect)
	hit, ok := v.assembly.Raycast(ray)
	if !ok {
		return false
	}
	label, ok := v.assembly.Label(hit.Node)
	if !ok || label == "" {
		return false
	}
	v.pick = PickState{Point: hit.Point, Label: label, Active: true}
	return true
}

// PickState returns the current pick.
func (v *Viewer) PickState() PickState {
	return v.pick
}

// ClearPick hides the floating label.
func (v *Viewer) ClearPick() {
	v.pick = PickState{}
}

// LabelPosition projects the picked point to pixel coordinates for a viewport of the given size.
// visible is false when nothing is picked or the point falls outside the clip depth range.
func (v *Viewer) LabelPosition(width, height float32) (pos rl.Vector2, visible bool) {
	if !v.pick.Active || width <= 0 || height <= 0 {
		return rl.Vector2{}, false
	}
	ndc, ok := geom.Project(v.pick.Point, v.camera.Camera(), width/height)
	if !ok || ndc.Z < -1 || ndc.Z > 1 {
		return rl.Vector2{}, false
	}
	return geom.ScreenFromNDC(ndc, width, height), true
}
