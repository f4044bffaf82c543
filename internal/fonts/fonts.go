package fonts

import (
	"os"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Exts lists the file extensions treated as fonts.
var Exts = []string{".ttf", ".otf"}

// LoadSize is the pixel size glyphs are rasterized at; text drawn smaller is scaled down.
const LoadSize = 36

// BaseDirs returns candidate font directories relative to the working directory.
func BaseDirs() []string {
	return []string{"assets/fonts", "../../assets/fonts"}
}

// ScanDir returns relative paths of all font files under dir (e.g. "Inter/Inter-Regular.ttf").
// Paths use forward slashes. A missing dir yields no paths.
func ScanDir(dir string) ([]string, error) {
	var out []string
	dir = filepath.Clean(dir)
	err := filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return err
		}
		if info.IsDir() || !isFont(path) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		out = append(out, filepath.ToSlash(rel))
		return nil
	})
	return out, err
}

func isFont(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range Exts {
		if ext == e {
			return true
		}
	}
	return false
}

// normalizeForMatch lowercases and removes spaces, dashes, and underscores for fuzzy matching.
func normalizeForMatch(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(s))
}

// FindIn searches dirs for a font whose relative path contains search (fuzzy: case, spaces,
// dashes and underscores are ignored). An existing file path is returned as is. When several
// fonts match, one with "Regular" in its name wins.
func FindIn(dirs []string, search string) (string, error) {
	if fi, err := os.Stat(search); err == nil && !fi.IsDir() && isFont(search) {
		return search, nil
	}
	norm := normalizeForMatch(search)
	if norm == "" {
		return "", os.ErrNotExist
	}
	var matches []string
	for _, base := range dirs {
		list, err := ScanDir(base)
		if err != nil {
			continue
		}
		for _, rel := range list {
			if strings.Contains(normalizeForMatch(rel), norm) {
				matches = append(matches, filepath.Join(base, filepath.FromSlash(rel)))
			}
		}
	}
	if len(matches) == 0 {
		return "", os.ErrNotExist
	}
	for _, m := range matches {
		if strings.Contains(strings.ToLower(filepath.Base(m)), "regular") {
			return m, nil
		}
	}
	return matches[0], nil
}

// Find searches BaseDirs.
func Find(search string) (string, error) {
	return FindIn(BaseDirs(), search)
}

// Codepoints returns printable ASCII plus the symbols the readouts use.
func Codepoints() []rune {
	runes := make([]rune, 0, 100)
	for r := rune(32); r < 127; r++ {
		runes = append(runes, r)
	}
	return append(runes, '²', '…', '°')
}

// Load finds and loads a font for the overlays. It must be called after the window exists.
// ok is false when no font matches or raylib cannot load it; callers keep the default font.
func Load(search string) (font rl.Font, path string, ok bool) {
	path, err := Find(search)
	if err != nil {
		return rl.Font{}, "", false
	}
	font = rl.LoadFontEx(path, LoadSize, Codepoints())
	if font.Texture.ID == 0 {
		return rl.Font{}, path, false
	}
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font, path, true
}
