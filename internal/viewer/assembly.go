package viewer

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gripper-viewer/internal/catalog"
	"gripper-viewer/internal/geom"
	"gripper-viewer/internal/meshio"
)

// Node is one piece of a part's geometry (an OBJ object). Nodes of the same part share its label.
type Node struct {
	ID        uuid.UUID
	Name      string
	Triangles []rl.Vector3
	Bounds    rl.BoundingBox
}

// LoadedPart is one part mesh of the active size variant. Position is relative to the assembly
// container; Base is the position recorded right after framing.
type LoadedPart struct {
	Spec     catalog.PartSpec
	Label    string
	Variant  string
	Nodes    []Node
	Bounds   rl.BoundingBox
	Position rl.Vector3
	base     rl.Vector3
	hasBase  bool
}

func newLoadedPart(spec catalog.PartSpec, variant string, g *meshio.Geometry) *LoadedPart {
	p := &LoadedPart{
		Spec:    spec,
		Label:   spec.Label,
		Variant: variant,
		Bounds:  g.Bounds(),
	}
	for _, o := range g.Objects {
		p.Nodes = append(p.Nodes, Node{
			ID:        uuid.New(),
			Name:      o.Name,
			Triangles: o.Triangles,
			Bounds:    o.Bounds,
		})
	}
	return p
}

// Base returns the recorded base position; ok is false until the assembly has been framed.
func (p *LoadedPart) Base() (pos rl.Vector3, ok bool) {
	return p.base, p.hasBase
}

// Assembly is the composite model: every loaded part of one size variant under a single container
// whose Offset is the translation applied by framing.
type Assembly struct {
	Offset rl.Vector3
	parts  []*LoadedPart
	labels map[uuid.UUID]string
}

// NewAssembly returns an empty assembly at the origin.
func NewAssembly() *Assembly {
	return &Assembly{labels: make(map[uuid.UUID]string)}
}

// Add appends a part and registers each of its nodes under the part label.
func (a *Assembly) Add(p *LoadedPart) {
	a.parts = append(a.parts, p)
	for _, n := range p.Nodes {
		a.labels[n.ID] = p.Label
	}
}

// Clear removes every part. The container offset is kept; the next framing recenters it.
func (a *Assembly) Clear() {
	a.parts = nil
	a.labels = make(map[uuid.UUID]string)
}

// Parts returns the loaded parts in load-completion order.
func (a *Assembly) Parts() []*LoadedPart {
	out := make([]*LoadedPart, len(a.parts))
	copy(out, a.parts)
	return out
}

// Len returns the number of loaded parts.
func (a *Assembly) Len() int {
	return len(a.parts)
}

// Label returns the label registered for a geometry node.
func (a *Assembly) Label(id uuid.UUID) (string, bool) {
	l, ok := a.labels[id]
	return l, ok
}

// WorldOffset is where the part's local origin sits in world space.
func (a *Assembly) WorldOffset(p *LoadedPart) rl.Vector3 {
	return rl.Vector3Add(a.Offset, p.Position)
}

// WorldTransform is the model matrix used to draw p.
func (a *Assembly) WorldTransform(p *LoadedPart) rl.Matrix {
	o := a.WorldOffset(p)
	return rl.MatrixTranslate(o.X, o.Y, o.Z)
}

// WorldBounds returns the world-space box around every part; ok is false when nothing is loaded.
func (a *Assembly) WorldBounds() (box rl.BoundingBox, ok bool) {
	box = geom.EmptyBox()
	for _, p := range a.parts {
		box = geom.Union(box, geom.Translate(p.Bounds, a.WorldOffset(p)))
	}
	return box, !geom.IsEmpty(box)
}

// baseBounds returns the world-space box around parts placed at their base positions.
func (a *Assembly) baseBounds(parts []*LoadedPart) rl.BoundingBox {
	box := geom.EmptyBox()
	for _, p := range parts {
		pos := p.Position
		if b, ok := p.Base(); ok {
			pos = b
		}
		box = geom.Union(box, geom.Translate(p.Bounds, rl.Vector3Add(a.Offset, pos)))
	}
	return box
}

// SnapshotBase records every part's current position as its base position.
func (a *Assembly) SnapshotBase() {
	for _, p := range a.parts {
		p.base = p.Position
		p.hasBase = true
	}
}

// Hit is the nearest ray intersection with the assembly.
type Hit struct {
	Part     *LoadedPart
	Node     uuid.UUID
	Point    rl.Vector3
	Distance float32
}

// Raycast returns the nearest triangle hit along ray. Node boxes are tested first so only
// candidate nodes are checked triangle by triangle.
func (a *Assembly) Raycast(ray rl.Ray) (Hit, bool) {
	var best Hit
	found := false
	for _, p := range a.parts {
		off := a.WorldOffset(p)
		for _, n := range p.Nodes {
			if !rl.GetRayCollisionBox(ray, geom.Translate(n.Bounds, off)).Hit {
				continue
			}
			for i := 0; i+2 < len(n.Triangles); i += 3 {
				c := rl.GetRayCollisionTriangle(ray,
					rl.Vector3Add(n.Triangles[i], off),
					rl.Vector3Add(n.Triangles[i+1], off),
					rl.Vector3Add(n.Triangles[i+2], off))
				if !c.Hit || (found && c.Distance >= best.Distance) {
					continue
				}
				best = Hit{Part: p, Node: n.ID, Point: c.Point, Distance: c.Distance}
				found = true
			}
		}
	}
	return best, found
}
