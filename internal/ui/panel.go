package ui

import "fmt"

// Readout is the data shown in the panel. ui does not depend on the viewer; the caller copies
// the viewer's readout in every frame.
type Readout struct {
	SizeLabel string
	Size      string
	Pad       string
	Openness  string
	Warning   string
}

// Panel is the top-left readout panel.
type Panel struct {
	panel    *Node
	title    *Node
	size     *Node
	area     *Node
	pad      *Node
	openness *Node
	warning  *Node
}

// NewPanel creates the panel nodes (.readout, .readout-title, .readout-line, .readout-warning).
func NewPanel() *Panel {
	return &Panel{
		panel:    NewNode("panel", "readout", "", ""),
		title:    NewNode("label", "readout-title", "", "Gripper"),
		size:     NewNode("label", "readout-line", "size-label", ""),
		area:     NewNode("label", "readout-line", "size", ""),
		pad:      NewNode("label", "readout-line", "pad", ""),
		openness: NewNode("label", "readout-line", "openness", ""),
		warning:  NewNode("label", "readout-warning", "", ""),
	}
}

// AppendNodes updates the labels from r and appends the panel nodes to dst.
func (p *Panel) AppendNodes(dst []*Node, r Readout) []*Node {
	p.size.Text = "Size: " + r.SizeLabel
	p.area.Text = "Pad: " + r.Size
	p.pad.Text = r.Pad
	p.openness.Text = fmt.Sprintf("Fingers: %s", r.Openness)
	dst = append(dst, p.panel, p.title, p.size, p.area, p.pad, p.openness)
	if r.Warning != "" {
		p.warning.Text = r.Warning
		dst = append(dst, p.warning)
	}
	return dst
}

// labelOffset keeps the floating label clear of the pointer.
const labelOffset = 12

// PartLabel is the floating label next to the picked point.
type PartLabel struct {
	node *Node
}

// NewPartLabel creates the floating label node (.part-label).
func NewPartLabel() *PartLabel {
	n := NewNode("label", "part-label", "", "")
	n.Anchored = true
	return &PartLabel{node: n}
}

// AppendNodes appends the label at screen position (x, y) when visible.
func (l *PartLabel) AppendNodes(dst []*Node, text string, x, y float32, visible bool) []*Node {
	if !visible || text == "" {
		return dst
	}
	l.node.Text = text
	l.node.Bounds.X = x + labelOffset
	l.node.Bounds.Y = y + labelOffset
	return append(dst, l.node)
}
