package hud

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/viewer"
)

const (
	sliderWidth  = 320
	sliderHeight = 22
	margin       = 16
	rowGap       = 12
	labelWidth   = 90
	textSize     = 18
)

// HUD draws the size and openness sliders along the bottom-left corner. raygui is immediate mode,
// so Draw only records slider moves; Apply hands them to the viewer from the update step.
type HUD struct {
	v           *viewer.Viewer
	sizeValue   float32
	openValue   float32
	pendingSize int
	pendingOpen int
	styled      bool
}

// New returns a HUD bound to v. Sliders start at the viewer's current state.
func New(v *viewer.Viewer) *HUD {
	return &HUD{
		v:           v,
		sizeValue:   float32(v.SizeIndex()),
		openValue:   float32(v.OpennessPercent()),
		pendingSize: -1,
		pendingOpen: -1,
	}
}

// layout returns the size and openness slider rectangles for a screen of the given size.
func layout(screenW, screenH int32) (size, open rl.Rectangle) {
	x := float32(margin + labelWidth)
	openY := float32(screenH - margin - sliderHeight)
	sizeY := openY - sliderHeight - rowGap
	w := min(float32(sliderWidth), float32(screenW)-x-2*margin-60)
	w = max(w, 40)
	return rl.NewRectangle(x, sizeY, w, sliderHeight), rl.NewRectangle(x, openY, w, sliderHeight)
}

// snapIndex rounds a slider value to the nearest size index in [0, n-1].
func snapIndex(value float32, n int) int {
	i := int(value + 0.5)
	return min(max(i, 0), max(n-1, 0))
}

// Contains reports whether p is over the slider area.
func (h *HUD) Contains(p rl.Vector2) bool {
	size, open := layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	area := rl.NewRectangle(margin, size.Y, size.X+size.Width+60-margin, open.Y+open.Height-size.Y)
	return rl.CheckCollisionPointRec(p, area)
}

// Sync moves the sliders to the viewer's state (after console commands or key presses).
func (h *HUD) Sync() {
	h.sizeValue = float32(h.v.SizeIndex())
	h.openValue = float32(h.v.OpennessPercent())
}

// Apply hands slider moves recorded by the last Draw to the viewer.
func (h *HUD) Apply() {
	if h.pendingSize >= 0 {
		if h.pendingSize != h.v.SizeIndex() || h.v.Variant() == "" {
			h.v.SelectIndex(h.pendingSize)
		}
		h.pendingSize = -1
	}
	if h.pendingOpen >= 0 {
		h.v.SetOpenness(h.pendingOpen)
		h.pendingOpen = -1
	}
}

// Draw draws both sliders with their labels and records changes.
func (h *HUD) Draw() {
	if !h.styled {
		gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, textSize)
		h.styled = true
	}
	sizes := h.v.Catalog().Sizes
	sizeRect, openRect := layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))

	idx := snapIndex(h.sizeValue, len(sizes))
	gui.Label(rl.NewRectangle(margin, sizeRect.Y, labelWidth, sliderHeight), "Size")
	value := gui.SliderBar(sizeRect, "", sizes[idx]+"x", h.sizeValue, 0, float32(len(sizes)-1))
	if next := snapIndex(value, len(sizes)); next != idx {
		h.pendingSize = next
	}
	h.sizeValue = float32(snapIndex(value, len(sizes)))

	gui.Label(rl.NewRectangle(margin, openRect.Y, labelWidth, sliderHeight), "Openness")
	open := gui.SliderBar(openRect, "", fmt.Sprintf("%d%%", int(h.openValue+0.5)), h.openValue, 0, 100)
	if int(open+0.5) != int(h.openValue+0.5) {
		h.pendingOpen = int(open + 0.5)
	}
	h.openValue = open
}
