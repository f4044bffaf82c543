package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/catalog"
	"gripper-viewer/internal/geom"
)

const (
	// OpeningAxis is the axis (0 = X) the fingers slide along.
	OpeningAxis = 0

	openThreshold   = 0.95
	closedThreshold = 0.05
)

// Openness labels.
const (
	LabelOpen    = "Open"
	LabelClosed  = "Closed"
	LabelPartial = "Partial"
)

// FingerGroups holds the loaded parts of each finger. Membership comes from the catalog and is
// derived once per assembly load.
type FingerGroups struct {
	Left  []*LoadedPart
	Right []*LoadedPart
}

func deriveFingers(cat catalog.Catalog, a *Assembly) FingerGroups {
	var g FingerGroups
	for _, p := range a.parts {
		switch cat.SideOf(p.Spec.File) {
		case catalog.Left:
			g.Left = append(g.Left, p)
		case catalog.Right:
			g.Right = append(g.Right, p)
		}
	}
	return g
}

// measureOpenDistance returns the extent of the left finger along the opening axis, measured at
// base positions. It is zero when either finger has no loaded parts.
func measureOpenDistance(a *Assembly, g FingerGroups) float32 {
	if len(g.Left) == 0 || len(g.Right) == 0 {
		return 0
	}
	box := a.baseBounds(g.Left)
	if geom.IsEmpty(box) {
		return 0
	}
	return max(geom.Component(geom.Size(box), OpeningAxis), 0)
}

// OpennessLabel names the openness fraction t.
func OpennessLabel(t float32) string {
	switch {
	case t >= openThreshold:
		return LabelOpen
	case t <= closedThreshold:
		return LabelClosed
	}
	return LabelPartial
}

// ApplyOpenness places every finger part at its base position plus half the open distance times t,
// left fingers along +X and right fingers along -X. Positions are always derived from the base
// snapshot, so applying the same t twice is a no-op.
func (v *Viewer) ApplyOpenness(t float32) {
	t = clamp(t, 0, 1)
	v.openness = t
	v.readout.Openness = OpennessLabel(t)

	shift := rl.Vector3Scale(geom.AxisVector(OpeningAxis), v.openDistance*0.5*t)
	for _, p := range v.fingers.Left {
		if base, ok := p.Base(); ok {
			p.Position = rl.Vector3Add(base, shift)
		}
	}
	for _, p := range v.fingers.Right {
		if base, ok := p.Base(); ok {
			p.Position = rl.Vector3Subtract(base, shift)
		}
	}
}

// SetOpenness applies an integer openness percentage, clamped to 0..100.
func (v *Viewer) SetOpenness(percent int) {
	percent = min(max(percent, 0), 100)
	v.ApplyOpenness(float32(percent) / 100)
}

// Openness returns the current openness fraction.
func (v *Viewer) Openness() float32 {
	return v.openness
}

// OpennessPercent returns the current openness as the slider value.
func (v *Viewer) OpennessPercent() int {
	return int(v.openness*100 + 0.5)
}

// OpenDistance returns the measured open distance of the current assembly.
func (v *Viewer) OpenDistance() float32 {
	return v.openDistance
}

// Fingers returns the finger groups of the current assembly.
func (v *Viewer) Fingers() FingerGroups {
	return v.fingers
}
