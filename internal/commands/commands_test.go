package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gripper-viewer/internal/catalog"
)

type fakeViewer struct {
	cat       catalog.Catalog
	requested []string
	openness  int
	reloads   int
}

func (f *fakeViewer) Catalog() catalog.Catalog { return f.cat }

func (f *fakeViewer) SelectIndex(i int) uint64 {
	return f.RequestVariant(f.cat.Sizes[f.cat.ClampIndex(i)])
}

func (f *fakeViewer) RequestVariant(size string) uint64 {
	f.requested = append(f.requested, size)
	return uint64(len(f.requested))
}

func (f *fakeViewer) SetOpenness(p int) { f.openness = p }

func (f *fakeViewer) Reload() uint64 {
	f.reloads++
	return 0
}

func newTestRegistry() (*Registry, *fakeViewer, *bool, *int) {
	fv := &fakeViewer{cat: catalog.Default()}
	grid := true
	changes := 0
	r := NewRegistry()
	RegisterViewer(r, Bindings{
		Viewer:  fv,
		SetGrid: func(v bool) { grid = v },
		Changed: func() { changes++ },
	})
	return r, fv, &grid, &changes
}

func run(t *testing.T, r *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok, line)
	return r.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd size --index 3")
	assert.True(t, ok)
	assert.Equal(t, []string{"size", "--index", "3"}, args)

	args, ok = Parse("cmd ")
	assert.True(t, ok)
	assert.Empty(t, args)

	_, ok = Parse("hello")
	assert.False(t, ok)
}

func TestSizeCommand(t *testing.T) {
	r, fv, _, changes := newTestRegistry()

	require.NoError(t, run(t, r, "cmd size --index 99"))
	require.NoError(t, run(t, r, "cmd size --value 1.7"))
	require.NoError(t, run(t, r, "cmd size --index=0"))
	assert.Equal(t, []string{"2.0", "1.7", "1.0"}, fv.requested)
	assert.Equal(t, 3, *changes)

	assert.Error(t, run(t, r, "cmd size --value 7.5"))
	assert.Error(t, run(t, r, "cmd size"), "flags reset between runs")
	assert.Error(t, run(t, r, "cmd size --index abc"))
}

func TestOpenCommand(t *testing.T) {
	r, fv, _, _ := newTestRegistry()
	require.NoError(t, run(t, r, "cmd open --value 40"))
	assert.Equal(t, 40, fv.openness)

	assert.Error(t, run(t, r, "cmd open --value 101"))
	assert.Error(t, run(t, r, "cmd open"))
	assert.Equal(t, 40, fv.openness)
}

func TestToggleAndReload(t *testing.T) {
	r, fv, grid, _ := newTestRegistry()
	require.NoError(t, run(t, r, "cmd grid --hide"))
	assert.False(t, *grid)
	require.NoError(t, run(t, r, "cmd grid --show"))
	assert.True(t, *grid)
	assert.Error(t, run(t, r, "cmd grid"))
	assert.Error(t, run(t, r, "cmd grid --show --hide"))

	require.NoError(t, run(t, r, "cmd reload"))
	assert.Equal(t, 1, fv.reloads)

	err := run(t, r, "cmd fps --show")
	assert.EqualError(t, err, "unknown command: fps", "fps is not bound")
}

func TestUsage(t *testing.T) {
	r, _, _, _ := newTestRegistry()
	assert.Equal(t, []string{"grid", "open", "reload", "size"}, r.Names())
	assert.Contains(t, r.Usage(), "cmd size --index N | --value 1.7")
}
