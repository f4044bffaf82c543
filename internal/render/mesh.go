package render

import rl "github.com/gen2brain/raylib-go/raylib"

// vertexData flattens a triangle list into position and flat-normal arrays for rl.Mesh.
// Degenerate triangles get a zero normal.
func vertexData(tris []rl.Vector3) (vertices, normals []float32) {
	n := len(tris) / 3 * 3
	vertices = make([]float32, 0, n*3)
	normals = make([]float32, 0, n*3)
	for i := 0; i+2 < len(tris); i += 3 {
		a, b, c := tris[i], tris[i+1], tris[i+2]
		normal := rl.Vector3CrossProduct(rl.Vector3Subtract(b, a), rl.Vector3Subtract(c, a))
		if rl.Vector3Length(normal) > 0 {
			normal = rl.Vector3Normalize(normal)
		}
		for _, v := range [3]rl.Vector3{a, b, c} {
			vertices = append(vertices, v.X, v.Y, v.Z)
			normals = append(normals, normal.X, normal.Y, normal.Z)
		}
	}
	return vertices, normals
}

// gpuMesh keeps the Go-side arrays alive as long as the uploaded mesh refers to them.
type gpuMesh struct {
	mesh     rl.Mesh
	vertices []float32
	normals  []float32
}

func uploadMesh(tris []rl.Vector3) (gpuMesh, bool) {
	vertices, normals := vertexData(tris)
	if len(vertices) == 0 {
		return gpuMesh{}, false
	}
	g := gpuMesh{vertices: vertices, normals: normals}
	g.mesh = rl.Mesh{
		VertexCount:   int32(len(vertices) / 3),
		TriangleCount: int32(len(vertices) / 9),
		Vertices:      &g.vertices[0],
		Normals:       &g.normals[0],
	}
	rl.UploadMesh(&g.mesh, false)
	return g, true
}
