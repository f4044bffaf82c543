package viewer

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gripper-viewer/internal/assets"
	"gripper-viewer/internal/geom"
)

// loadedFacingFront returns a viewer with variant 1.0 loaded and the camera on +Z looking down -Z,
// so the screen center hits the front face of the base at (0.3, -0.2, 1). The point is kept off
// the face's triangle diagonal.
func loadedFacingFront(t *testing.T) *Viewer {
	t.Helper()
	v, _ := newTestViewer(t, assets.NewDirSource(fixtureFS()))
	v.RequestVariant("1.0")
	settle(t, v)
	v.Orbit().Frame(v3(0.3, -0.2, 10), v3(0.3, -0.2, 0))
	return v
}

func TestPickNearestPart(t *testing.T) {
	v := loadedFacingFront(t)

	require.True(t, v.Pick(rl.NewVector2(0, 0), 1))
	st := v.PickState()
	assert.True(t, st.Active)
	assert.Equal(t, "Base", st.Label)
	assertVec(t, v3(0.3, -0.2, 1), st.Point)
}

func TestPickFinger(t *testing.T) {
	v := loadedFacingFront(t)

	ndc, ok := geom.Project(v3(1.5, 0.3, 0.5), v.Camera(), 1)
	require.True(t, ok)
	require.True(t, v.Pick(rl.NewVector2(ndc.X, ndc.Y), 1))
	assert.Equal(t, "Left pad", v.PickState().Label)
}

func TestPickMissKeepsState(t *testing.T) {
	v := loadedFacingFront(t)
	require.True(t, v.Pick(rl.NewVector2(0, 0), 1))
	before := v.PickState()

	assert.False(t, v.Pick(rl.NewVector2(0.95, 0.95), 1))
	assert.Equal(t, before, v.PickState())
}

func TestClearPickHidesLabel(t *testing.T) {
	v := loadedFacingFront(t)
	require.True(t, v.Pick(rl.NewVector2(0, 0), 1))
	_, visible := v.LabelPosition(800, 600)
	require.True(t, visible)

	v.ClearPick()
	assert.False(t, v.PickState().Active)
	_, visible = v.LabelPosition(800, 600)
	assert.False(t, visible)
}

func TestPickWithoutLabelIsNoop(t *testing.T) {
	v := loadedFacingFront(t)
	for _, p := range v.Assembly().Parts() {
		for _, n := range p.Nodes {
			delete(v.Assembly().labels, n.ID)
		}
	}
	assert.False(t, v.Pick(rl.NewVector2(0, 0), 1))
	assert.False(t, v.PickState().Active)
}

func TestNodesShareLabel(t *testing.T) {
	v := loadedFacingFront(t)
	for _, p := range v.Assembly().Parts() {
		for _, n := range p.Nodes {
			l, ok := v.Assembly().Label(n.ID)
			assert.True(t, ok)
			assert.Equal(t, p.Label, l)
		}
	}
}

func TestLabelPosition(t *testing.T) {
	v := loadedFacingFront(t)

	_, visible := v.LabelPosition(800, 600)
	assert.False(t, visible, "nothing picked")

	require.True(t, v.Pick(rl.NewVector2(0, 0), 800.0/600.0))
	pos, visible := v.LabelPosition(800, 600)
	require.True(t, visible)
	assert.InDelta(t, 400, pos.X, 0.5)
	assert.InDelta(t, 300, pos.Y, 0.5)

	// Looking away from the picked point puts it behind the camera.
	v.Orbit().Frame(v3(0.3, -0.2, 5), v3(0.3, -0.2, 10))
	_, visible = v.LabelPosition(800, 600)
	assert.False(t, visible)
	assert.True(t, v.PickState().Active, "pick survives while hidden")

	v.Orbit().Frame(v3(0.3, -0.2, 10), v3(0.3, -0.2, 0))
	_, visible = v.LabelPosition(800, 600)
	assert.True(t, visible)
}
