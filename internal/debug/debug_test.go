package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gripper-viewer/internal/viewer"
)

func TestStatusText(t *testing.T) {
	tests := []struct {
		name string
		st   viewer.Status
		want string
	}{
		{"idle", viewer.Status{}, ""},
		{"parts", viewer.Status{Variant: "1.5", Loading: true, Loaded: 4, Failed: 1, Total: 15}, "Loading 1.5: 5/15"},
		{"dimensions", viewer.Status{Variant: "1.5", Loading: true, Loaded: 15, Total: 15}, "Loading 1.5: dimensions"},
		{"partial", viewer.Status{Variant: "1.5", Loaded: 13, Failed: 2, Total: 15}, "1.5: 13/15 parts"},
		{"done", viewer.Status{Variant: "1.5", Loaded: 15, Total: 15}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusText(tt.st))
		})
	}
}
