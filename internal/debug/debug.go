package debug

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gripper-viewer/internal/viewer"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the FPS text every N frames to reduce allocations.
	updateInterval = 30
)

var loadingColor = rl.NewColor(56, 189, 248, 255)

// Debug draws the FPS counter and the load status in the top-right corner.
type Debug struct {
	ShowFPS    bool
	ShowStatus bool
	font       rl.Font
	frameCount uint32
	fpsText    string
}

// New returns a Debug overlay that shows load status only.
func New() *Debug {
	return &Debug{ShowStatus: true}
}

// SetShowFPS sets whether the FPS counter is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
}

// SetFont sets the overlay font. Zero texture ID = raylib default.
func (d *Debug) SetFont(font rl.Font) {
	d.font = font
}

// StatusText describes the request in st, or "" once it has fully settled without failures.
func StatusText(st viewer.Status) string {
	switch {
	case st.Variant == "":
		return ""
	case st.Loading && st.Loaded+st.Failed < st.Total:
		return fmt.Sprintf("Loading %s: %d/%d", st.Variant, st.Loaded+st.Failed, st.Total)
	case st.Loading:
		return fmt.Sprintf("Loading %s: dimensions", st.Variant)
	case st.Failed > 0:
		return fmt.Sprintf("%s: %d/%d parts", st.Variant, st.Loaded, st.Total)
	}
	return ""
}

// Draw renders the enabled overlays. Call after the scene and console.
func (d *Debug) Draw(st viewer.Status) {
	d.frameCount++
	screenW := int32(rl.GetScreenWidth())
	y := int32(padding)

	if d.ShowFPS {
		if d.fpsText == "" || d.frameCount%updateInterval == 0 {
			d.fpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		d.drawRight(d.fpsText, screenW, y, rl.Green)
		y += lineHeight
	}
	if d.ShowStatus {
		if text := StatusText(st); text != "" {
			d.drawRight(text, screenW, y, loadingColor)
		}
	}
}

func (d *Debug) drawRight(text string, screenW, y int32, c rl.Color) {
	if d.font.Texture.ID != 0 {
		w := rl.MeasureTextEx(d.font, text, fontSize, 1).X
		rl.DrawTextEx(d.font, text, rl.NewVector2(float32(screenW)-w-padding, float32(y)), fontSize, 1, c)
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, c)
}
