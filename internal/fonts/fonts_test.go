package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, n := range names {
		p := filepath.Join(root, filepath.FromSlash(n))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("font"), 0o644))
	}
}

func TestScanDir(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "README.md", "Mono.otf")

	list, err := ScanDir(root)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"Inter/Inter-Bold.ttf", "Inter/Inter-Regular.TTF", "Mono.otf"}, list)

	list, err = ScanDir(filepath.Join(root, "missing"))
	assert.NoError(t, err)
	assert.Empty(t, list)
}

func TestFindInPrefersRegular(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "Inter/Inter-Bold.ttf", "Inter/Inter-Regular.ttf", "Google_Sans/GoogleSans-Medium.ttf")

	got, err := FindIn([]string{root}, "inter")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Inter", "Inter-Regular.ttf"), got)

	got, err = FindIn([]string{root}, "Google Sans")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "Google_Sans", "GoogleSans-Medium.ttf"), got)

	_, err = FindIn([]string{root}, "Comic")
	assert.ErrorIs(t, err, os.ErrNotExist)
	_, err = FindIn([]string{root}, " ")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindInAcceptsPath(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, "x/Custom.ttf")
	p := filepath.Join(root, "x", "Custom.ttf")
	got, err := FindIn(nil, p)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestCodepointsIncludeReadoutSymbols(t *testing.T) {
	cp := Codepoints()
	assert.Contains(t, cp, 'A')
	assert.Contains(t, cp, '²')
	assert.NotContains(t, cp, rune(127))
}
