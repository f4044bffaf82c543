package meshio

import (
	"errors"
	"strings"
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoObjects = `# exported
o Shell
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
o Pad
v 0 0 1
v 2 0 1
v 0 3 1
f 5 6 7
`

func TestDecodeOBJ(t *testing.T) {
	g, err := Decode(FormatOBJ, "Optical_pad", strings.NewReader(twoObjects))
	require.NoError(t, err)
	require.Len(t, g.Objects, 2)

	shell := g.Objects[0]
	assert.Equal(t, "Shell", shell.Name)
	assert.Len(t, shell.Triangles, 6, "quad is fan-triangulated into two triangles")
	assert.Equal(t, rl.NewVector3(1, 1, 0), shell.Bounds.Max)

	pad := g.Objects[1]
	assert.Equal(t, "Pad", pad.Name)
	assert.Len(t, pad.Triangles, 3)

	assert.Equal(t, 3, g.TriangleCount())
	b := g.Bounds()
	assert.Equal(t, rl.NewVector3(0, 0, 0), b.Min)
	assert.Equal(t, rl.NewVector3(2, 3, 1), b.Max)
}

func TestDecodeSTL(t *testing.T) {
	ascii := `solid part
facet normal 0 0 1
 outer loop
  vertex 0 0 0
  vertex 2 0 0
  vertex 0 2 0
 endloop
endfacet
endsolid part
`
	g, err := Decode(FormatSTL, "Prints_gear", strings.NewReader(ascii))
	require.NoError(t, err)
	require.Len(t, g.Objects, 1)
	assert.Equal(t, "Prints_gear", g.Objects[0].Name)
	assert.Equal(t, 1, g.TriangleCount())
	assert.Equal(t, rl.NewVector3(2, 2, 0), g.Bounds().Max)
}

func TestDecodeEmptyIsError(t *testing.T) {
	_, err := Decode(FormatOBJ, "Prints_base", strings.NewReader("# nothing here\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmpty))
}

func TestDecodeUnknownFormat(t *testing.T) {
	_, err := Decode("fbx", "x", strings.NewReader(""))
	assert.ErrorContains(t, err, "unsupported format")
}
