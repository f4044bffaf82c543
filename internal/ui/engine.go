package ui

import (
	_ "embed"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

//go:embed viewer.css
var defaultCSS string

// Engine holds the current stylesheet and nodes, and draws them with raylib.
// Draw order is node order. Resolved styles are cached per node and recomputed only when the
// stylesheet changes.
type Engine struct {
	sheet  *Stylesheet
	nodes  []*Node
	styles map[*Node]ComputedStyle
	font   rl.Font
}

// New creates an engine with the built-in viewer stylesheet.
func New() *Engine {
	sheet, _ := ParseCSS(defaultCSS)
	return &Engine{sheet: sheet, styles: make(map[*Node]ComputedStyle)}
}

// LoadCSS loads a stylesheet file and replaces the current one. Cached node styles are dropped.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.sheet = sheet
	e.styles = make(map[*Node]ComputedStyle)
	return nil
}

// SetFont sets the font used for text. A zero texture ID means raylib's default font.
func (e *Engine) SetFont(font rl.Font) {
	e.font = font
}

// SetNodes replaces the nodes drawn by the next Draw.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// Style returns the resolved style for n (class and id rules merged; last wins).
func (e *Engine) Style(n *Node) ComputedStyle {
	if s, ok := e.styles[n]; ok {
		return s
	}
	merged := make(map[string]string)
	if e.sheet != nil {
		for _, rule := range e.sheet.Rules {
			if rule.Matches(n) {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	s := ResolveProps(merged)
	e.styles[n] = s
	return s
}

// place computes the node rectangle on a screen of the given size. textW is the measured text
// width, used when the style sets no width.
func place(n *Node, style ComputedStyle, textW, screenW, screenH int32) rl.Rectangle {
	w, h := style.Width, style.Height
	if w == 0 && n.Text != "" {
		w = textW + 2*style.Padding
	}
	if h == 0 && n.Text != "" {
		h = style.FontSize + 2*style.Padding
	}
	x, y := style.Left, style.Top
	if style.Right >= 0 {
		x = screenW - w - style.Right
	}
	if style.Bottom >= 0 {
		y = screenH - h - style.Bottom
	}
	if n.Anchored {
		x, y = int32(n.Bounds.X), int32(n.Bounds.Y)
	}
	return rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
}

func (e *Engine) measure(text string, size int32) int32 {
	if text == "" {
		return 0
	}
	if e.font.Texture.ID != 0 {
		return int32(rl.MeasureTextEx(e.font, text, float32(size), 1).X)
	}
	return rl.MeasureText(text, size)
}

// Draw draws all nodes: background, border, then text.
func (e *Engine) Draw() {
	screenW := int32(rl.GetScreenWidth())
	screenH := int32(rl.GetScreenHeight())
	for _, n := range e.nodes {
		style := e.Style(n)
		r := place(n, style, e.measure(n.Text, style.FontSize), screenW, screenH)
		n.Bounds = r
		x, y, w, h := int32(r.X), int32(r.Y), int32(r.Width), int32(r.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		tx, ty := x+style.Padding, y+style.Padding
		if e.font.Texture.ID != 0 {
			rl.DrawTextEx(e.font, n.Text, rl.NewVector2(float32(tx), float32(ty)), float32(style.FontSize), 1, style.Color)
		} else {
			rl.DrawText(n.Text, tx, ty, style.FontSize, style.Color)
		}
	}
}

// Contains reports whether p lies inside any drawn node. Used to keep clicks on overlays from
// reaching the 3D view.
func (e *Engine) Contains(p rl.Vector2) bool {
	for _, n := range e.nodes {
		if n.Bounds.Width > 0 && rl.CheckCollisionPointRec(p, n.Bounds) {
			return true
		}
	}
	return false
}
