package dimensions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	d, err := Parse("X: 10.0\nY: 42.5\nZ: 8.2")
	require.NoError(t, err)
	assert.Equal(t, 10.0, d.X)
	assert.Equal(t, 42.5, d.Y)
	assert.Equal(t, 8.2, d.Z)
	assert.Equal(t, "348.5 mm²", d.SizeReadout())
	assert.Equal(t, "Y: 42.5 mm, Z: 8.2 mm", d.PadReadout())
}

func TestParseExporterOutput(t *testing.T) {
	text := "Pad Dimensions (mm)\r\n===================\r\nx: 3\r\ny: 24\r\nz: 18\r\n"
	d, err := Parse(text)
	require.NoError(t, err)
	assert.Equal(t, [3]string{"3", "24", "18"}, d.Raw)
	assert.Equal(t, "432.0 mm²", d.SizeReadout())
	assert.Equal(t, "Y: 24 mm, Z: 18 mm", d.PadReadout())
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"missing line", "X: 10.0\nY: 42.5\n"},
		{"wrong order", "Y: 42.5\nX: 10.0\nZ: 8.2"},
		{"not numbers", "X: a\nY: b\nZ: c"},
		{"empty", ""},
		{"lines not adjacent", "X: 1\nnote\nY: 2\nZ: 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			assert.Error(t, err)
		})
	}
}

func TestParseMalformedNumber(t *testing.T) {
	_, err := Parse("X: 1.2.3\nY: 2\nZ: 3")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoMatch)
}
