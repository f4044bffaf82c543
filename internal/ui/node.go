package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, etc. It has optional class and id for CSS matching,
// bounds (position and size), and optional text for labels.
type Node struct {
	Type   string // "panel", "label"
	Class  string // e.g. "readout" for .readout
	ID     string // e.g. "size" for #size
	Bounds rl.Rectangle
	Text   string
	// Anchored nodes are placed by the caller each frame (Bounds.X/Y) instead of by style offsets.
	Anchored bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
