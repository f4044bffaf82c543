package viewerconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingReturnsDefault(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestLoadInvalidReturnsDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestSaveLoadKeepsValuesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	p := Default()
	p.DefaultSize = "1.8"
	p.Openness = 140
	p.MeshFormat = "fbx"
	p.ShowFPS = true
	require.NoError(t, SaveTo(path, p))

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "1.8", got.DefaultSize)
	assert.Equal(t, 100, got.Openness)
	assert.Equal(t, "obj", got.MeshFormat)
	assert.True(t, got.ShowFPS)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"default_size":"1.2"}`), 0644))
	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2", p.DefaultSize)
	assert.Equal(t, float32(20), p.MaxDistance)
	assert.True(t, p.GridVisible)
}

func TestWithEnv(t *testing.T) {
	env := map[string]string{EnvAssetRoot: "/data/gripgen", EnvAssetURL: ""}
	p := Default().WithEnv(func(k string) string { return env[k] })
	assert.Equal(t, "/data/gripgen", p.AssetRoot)
	assert.Empty(t, p.AssetURL)

	env[EnvAssetURL] = "https://example.org/output"
	p = Default().WithEnv(func(k string) string { return env[k] })
	assert.Equal(t, "https://example.org/output", p.AssetURL)
}

func TestSaveChoicesKeepsFileSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "viewer.json")
	p := Default()
	p.AssetRoot = "exports"
	p.MeshFormat = "stl"
	require.NoError(t, SaveTo(path, p))

	written, err := SaveChoices(path, Choices{DefaultSize: "1.8", Openness: 40, GridVisible: false, ShowFPS: true})
	require.NoError(t, err)
	assert.True(t, written)

	got, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "exports", got.AssetRoot)
	assert.Empty(t, got.AssetURL)
	assert.Equal(t, "stl", got.MeshFormat)
	assert.Equal(t, "1.8", got.DefaultSize)
	assert.Equal(t, 40, got.Openness)
	assert.False(t, got.GridVisible)
	assert.True(t, got.ShowFPS)

	written, err = SaveChoices(path, Choices{DefaultSize: "1.8", Openness: 40, GridVisible: false, ShowFPS: true})
	require.NoError(t, err)
	assert.False(t, written)
}

func TestSaveChoicesCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "viewer.json")
	d := Default()
	written, err := SaveChoices(path, Choices{DefaultSize: d.DefaultSize, Openness: d.Openness, GridVisible: d.GridVisible})
	require.NoError(t, err)
	assert.True(t, written)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}
