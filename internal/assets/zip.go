package assets

import (
	"archive/zip"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gripper-viewer/internal/dimensions"
)

// ZipSource serves assets from a zip archive of the exporter's output tree. Entries are read in
// place; nothing is extracted to disk.
type ZipSource struct {
	*DirSource
	rc *zip.ReadCloser
}

// IsZip reports whether path names a zip archive.
func IsZip(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".zip")
}

// OpenZip opens the archive at path. If every entry sits under one top-level directory that is
// not itself a size variant (it has no pad dimensions file), that directory becomes the root.
func OpenZip(path string) (*ZipSource, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("assets: unzip: %w", err)
	}
	var fsys fs.FS = &rc.Reader
	if root, ok := wrapperDir(&rc.Reader); ok {
		if fsys, err = fs.Sub(fsys, root); err != nil {
			rc.Close()
			return nil, fmt.Errorf("assets: unzip: %w", err)
		}
	}
	return &ZipSource{DirSource: NewDirSource(fsys), rc: rc}, nil
}

func wrapperDir(r *zip.Reader) (string, bool) {
	root := ""
	for _, f := range r.File {
		top, rest, nested := strings.Cut(f.Name, "/")
		if !nested || top == "" || (root != "" && top != root) {
			return "", false
		}
		if rest == dimensions.FileName {
			return "", false
		}
		root = top
	}
	return root, root != ""
}

// Close closes the archive.
func (s *ZipSource) Close() error {
	return s.rc.Close()
}
