package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"gripper-viewer/internal/ui"
	"gripper-viewer/internal/viewer"
)

// fallbackColor is used for parts whose catalog color does not parse.
var fallbackColor = rl.NewColor(128, 128, 128, 255)

// Registry maps geometry nodes to uploaded meshes and part colors to materials. Everything is
// created on first draw so GPU resources are allocated after the window exists.
type Registry struct {
	meshes    map[uuid.UUID]gpuMesh
	materials map[string]rl.Material
	shader    rl.Shader
	locs      shaderLocs
	loaded    bool
	viewPos   [3]float32
	lightDir  [3]float32
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		meshes:    make(map[uuid.UUID]gpuMesh),
		materials: make(map[string]rl.Material),
		lightDir:  [3]float32{0.5, 1, 0.5},
	}
}

// SetView sets the camera position and direction to the light for this frame.
func (r *Registry) SetView(viewPos, lightDir [3]float32) {
	r.viewPos = viewPos
	r.lightDir = lightDir
}

func (r *Registry) ensureShader() {
	if r.loaded {
		return
	}
	r.shader, r.locs = loadLitShader()
	r.loaded = true
}

// material returns the lit material for a "#rrggbb" color, creating it on first use.
func (r *Registry) material(color string) rl.Material {
	if m, ok := r.materials[color]; ok {
		return m
	}
	r.ensureShader()
	m := rl.LoadMaterialDefault()
	c, ok := ui.ParseHexColor(color)
	if !ok {
		c = fallbackColor
	}
	if albedo := m.GetMap(rl.MapAlbedo); albedo != nil {
		albedo.Color = c
	}
	if rl.IsShaderValid(r.shader) {
		m.Shader = r.shader
	}
	r.materials[color] = m
	return m
}

// DrawPart draws every node of p with the given model transform. Must be called between
// BeginMode3D and EndMode3D, after SetView.
func (r *Registry) DrawPart(p *viewer.LoadedPart, transform rl.Matrix) {
	mtl := r.material(p.Spec.Color)
	r.setUniforms()
	for _, n := range p.Nodes {
		g, ok := r.meshes[n.ID]
		if !ok {
			if g, ok = uploadMesh(n.Triangles); !ok {
				continue
			}
			r.meshes[n.ID] = g
		}
		rl.DrawMesh(g.mesh, mtl, transform)
	}
}

// DrawAssembly draws every part of a at its current position.
func (r *Registry) DrawAssembly(a *viewer.Assembly) {
	for _, p := range a.Parts() {
		r.DrawPart(p, a.WorldTransform(p))
	}
}

// Prune unloads meshes of nodes that are no longer part of a. Call after a variant change.
func (r *Registry) Prune(a *viewer.Assembly) {
	live := make(map[uuid.UUID]bool)
	for _, p := range a.Parts() {
		for _, n := range p.Nodes {
			live[n.ID] = true
		}
	}
	for id, g := range r.meshes {
		if live[id] {
			continue
		}
		unloadMesh(g)
		delete(r.meshes, id)
	}
}

// Close releases every GPU resource.
func (r *Registry) Close() {
	for id, g := range r.meshes {
		unloadMesh(g)
		delete(r.meshes, id)
	}
	r.materials = make(map[string]rl.Material)
	if r.loaded && rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
	r.loaded = false
}

// unloadMesh frees the GPU buffers. raylib-go tracks meshes uploaded from Go memory and leaves
// the vertex arrays to the garbage collector.
func unloadMesh(g gpuMesh) {
	rl.UnloadMesh(&g.mesh)
}
