// Package meshio decodes part meshes (Wavefront OBJ or STL) into CPU-side triangle lists.
// Nothing here touches the GPU; render uploads the triangles lazily on first draw.
package meshio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/g3n/engine/loader/obj"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gostl/pkg/stl"

	"gripper-viewer/internal/geom"
)

// Supported mesh formats, matching the exporter's objs/ and stls/ folders.
const (
	FormatOBJ = "obj"
	FormatSTL = "stl"
)

// ErrEmpty is returned for a mesh that decodes but has no triangles.
var ErrEmpty = errors.New("meshio: mesh has no triangles")

// Object is one named piece of geometry inside a mesh file. Triangles holds three vertices per triangle.
type Object struct {
	Name      string
	Triangles []rl.Vector3
	Bounds    rl.BoundingBox
}

// Geometry is a decoded mesh file: one Object per OBJ object/group, or a single Object for STL.
type Geometry struct {
	Objects []Object
}

// Bounds returns the box around every object.
func (g *Geometry) Bounds() rl.BoundingBox {
	b := geom.EmptyBox()
	for _, o := range g.Objects {
		b = geom.Union(b, o.Bounds)
	}
	return b
}

// TriangleCount returns the number of triangles across all objects.
func (g *Geometry) TriangleCount() int {
	n := 0
	for _, o := range g.Objects {
		n += len(o.Triangles) / 3
	}
	return n
}

// Decode reads a mesh in the given format. name is used for the single STL object and for errors.
func Decode(format, name string, r io.Reader) (*Geometry, error) {
	var (
		g   *Geometry
		err error
	)
	switch strings.ToLower(format) {
	case FormatOBJ:
		g, err = decodeOBJ(r)
	case FormatSTL:
		g, err = decodeSTL(name, r)
	default:
		return nil, fmt.Errorf("meshio: unsupported format %q", format)
	}
	if err != nil {
		return nil, fmt.Errorf("meshio: %s: %w", name, err)
	}
	if g.TriangleCount() == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, name)
	}
	return g, nil
}

// decodeOBJ parses OBJ geometry only; material libraries are not needed because every part is
// drawn with its catalog color. Polygons are fan-triangulated.
func decodeOBJ(r io.Reader) (*Geometry, error) {
	dec, err := obj.DecodeReader(r, strings.NewReader(""))
	if err != nil {
		return nil, err
	}
	vertexCount := len(dec.Vertices) / 3
	vertex := func(i int) (rl.Vector3, error) {
		if i < 0 || i >= vertexCount {
			return rl.Vector3{}, fmt.Errorf("vertex index %d out of range (%d vertices)", i, vertexCount)
		}
		return rl.NewVector3(dec.Vertices[3*i], dec.Vertices[3*i+1], dec.Vertices[3*i+2]), nil
	}
	g := &Geometry{}
	for _, o := range dec.Objects {
		out := Object{Name: o.Name, Bounds: geom.EmptyBox()}
		for _, f := range o.Faces {
			if len(f.Vertices) < 3 {
				continue
			}
			first, err := vertex(f.Vertices[0])
			if err != nil {
				return nil, err
			}
			for i := 1; i+1 < len(f.Vertices); i++ {
				b, err := vertex(f.Vertices[i])
				if err != nil {
					return nil, err
				}
				c, err := vertex(f.Vertices[i+1])
				if err != nil {
					return nil, err
				}
				out.Triangles = append(out.Triangles, first, b, c)
				out.Bounds = geom.ExpandPoint(geom.ExpandPoint(geom.ExpandPoint(out.Bounds, first), b), c)
			}
		}
		if len(out.Triangles) > 0 {
			g.Objects = append(g.Objects, out)
		}
	}
	return g, nil
}

// decodeSTL spools the stream to a temporary file because the STL parser reads from a path.
// Both ASCII and binary STL are accepted.
func decodeSTL(name string, r io.Reader) (*Geometry, error) {
	tmp, err := os.CreateTemp("", "gripper-*.stl")
	if err != nil {
		return nil, err
	}
	defer os.Remove(tmp.Name())
	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return nil, err
	}
	if err := tmp.Close(); err != nil {
		return nil, err
	}
	model, err := stl.Parse(tmp.Name())
	if err != nil {
		return nil, err
	}
	out := Object{Name: name, Bounds: geom.EmptyBox()}
	out.Triangles = make([]rl.Vector3, 0, len(model.Triangles)*3)
	for _, tri := range model.Triangles {
		for _, v := range [3]rl.Vector3{
			rl.NewVector3(float32(tri.V1.X), float32(tri.V1.Y), float32(tri.V1.Z)),
			rl.NewVector3(float32(tri.V2.X), float32(tri.V2.Y), float32(tri.V2.Z)),
			rl.NewVector3(float32(tri.V3.X), float32(tri.V3.Y), float32(tri.V3.Z)),
		} {
			out.Triangles = append(out.Triangles, v)
			out.Bounds = geom.ExpandPoint(out.Bounds, v)
		}
	}
	return &Geometry{Objects: []Object{out}}, nil
}
