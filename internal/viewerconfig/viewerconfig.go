package viewerconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// ConfigPath is the path to the viewer preferences file, relative to the process working directory.
const ConfigPath = "config/viewer.json"

// Prefs holds viewer preferences persisted across runs: where assets come from, which variant and
// openness to open with, and overlay toggles.
type Prefs struct {
	AssetRoot      string  `json:"asset_root,omitempty"`
	AssetURL       string  `json:"asset_url,omitempty"`
	MeshFormat     string  `json:"mesh_format"`
	DefaultSize    string  `json:"default_size"`
	Openness       int     `json:"openness"`
	GridVisible    bool    `json:"grid_visible"`
	ShowFPS        bool    `json:"show_fps"`
	MinDistance    float32 `json:"min_distance"`
	MaxDistance    float32 `json:"max_distance"`
	MaxConcurrency int     `json:"max_concurrency"`
	Watch          bool    `json:"watch"`
	Font           string  `json:"font,omitempty"`
}

// Environment variables that override the asset location.
const (
	EnvAssetRoot = "GRIPPER_ASSET_ROOT"
	EnvAssetURL  = "GRIPPER_ASSET_URL"
)

// WithEnv applies asset overrides from the environment. A URL override takes precedence over
// any directory.
func (p Prefs) WithEnv(getenv func(string) string) Prefs {
	if v := getenv(EnvAssetRoot); v != "" {
		p.AssetRoot = v
	}
	if v := getenv(EnvAssetURL); v != "" {
		p.AssetURL = v
	}
	return p
}

// Default returns default preferences: OBJ meshes under GripGen/output, size 1.5, fingers closed.
func Default() Prefs {
	return Prefs{
		AssetRoot:      "GripGen/output",
		MeshFormat:     "obj",
		DefaultSize:    "1.5",
		Openness:       0,
		GridVisible:    true,
		ShowFPS:        false,
		MinDistance:    0.5,
		MaxDistance:    20,
		MaxConcurrency: 0,
	}
}

// LoadFrom reads preferences from path (usually ConfigPath). If the file is missing or invalid,
// returns Default() and does not create a file. Fields absent from the file keep their defaults.
func LoadFrom(path string) (Prefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	return p.normalized(), nil
}

// SaveTo writes preferences to path, creating the config directory if needed.
func SaveTo(path string, p Prefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Choices are the preferences the user changes while the viewer runs.
type Choices struct {
	DefaultSize string
	Openness    int
	GridVisible bool
	ShowFPS     bool
}

// SaveChoices rereads the file at path, applies c and writes it back. Asset location, format and
// other settings stay as the file has them, so environment or flag overrides of a single run are
// never persisted. Nothing is written when the file already holds c.
func SaveChoices(path string, c Choices) (written bool, err error) {
	p, err := LoadFrom(path)
	if err != nil {
		return false, err
	}
	next := p
	if c.DefaultSize != "" {
		next.DefaultSize = c.DefaultSize
	}
	next.Openness = c.Openness
	next.GridVisible = c.GridVisible
	next.ShowFPS = c.ShowFPS
	next = next.normalized()
	if next == p {
		if _, statErr := os.Stat(path); statErr == nil {
			return false, nil
		}
	}
	if err := SaveTo(path, next); err != nil {
		return false, err
	}
	return true, nil
}

// normalized clamps out-of-range values back into something the viewer can use.
func (p Prefs) normalized() Prefs {
	d := Default()
	if p.MeshFormat != "obj" && p.MeshFormat != "stl" {
		p.MeshFormat = d.MeshFormat
	}
	if p.Openness < 0 {
		p.Openness = 0
	}
	if p.Openness > 100 {
		p.Openness = 100
	}
	if p.MinDistance <= 0 {
		p.MinDistance = d.MinDistance
	}
	if p.MaxDistance < p.MinDistance {
		p.MaxDistance = d.MaxDistance
	}
	if p.MaxConcurrency < 0 {
		p.MaxConcurrency = 0
	}
	return p
}
