package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	assert.Len(t, c.Sizes, 11)
	assert.Equal(t, "1.0", c.Sizes[0])
	assert.Equal(t, "2.0", c.Sizes[10])
	assert.Len(t, c.Parts, 15)
	assert.Equal(t, 5, c.StartIndex())
	assert.Equal(t, Left, c.SideOf("Optical_shell_locked.001"))
	assert.Equal(t, Right, c.SideOf("Optical_shell_locked"))
	assert.Equal(t, Static, c.SideOf("Prints_base"))
}

func TestClampIndex(t *testing.T) {
	c := Default()
	assert.Equal(t, 0, c.ClampIndex(-3))
	assert.Equal(t, 10, c.ClampIndex(42))
	assert.Equal(t, 4, c.ClampIndex(4))
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"no sizes", `parts: [{file: a}]`},
		{"no parts", `sizes: ["1.0"]`},
		{"duplicate part", `{sizes: ["1.0"], parts: [{file: a}, {file: a}]}`},
		{"unknown finger part", `{sizes: ["1.0"], parts: [{file: a}], left_finger: [b]}`},
		{"overlapping fingers", `{sizes: ["1.0"], parts: [{file: a}], left_finger: [a], right_finger: [a]}`},
		{"bad default size", `{sizes: ["1.0"], default_size: "3.0", parts: [{file: a}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCloneIsDeep(t *testing.T) {
	c := Default()
	cp := c.Clone()
	require.Equal(t, c, cp)
	cp.Parts[0].Label = "changed"
	cp.LeftFinger[0] = "changed"
	assert.Equal(t, "Base", c.Parts[0].Label)
	assert.Equal(t, "Optical_led", c.LeftFinger[0])
}
