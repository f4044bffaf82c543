package assets

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"gripper-viewer/internal/dimensions"
)

// Source opens per-variant asset files by slash-separated name, e.g. "1.5/objs/Prints_base.obj".
// Implementations must be safe for concurrent use: every part of a variant is opened from its own goroutine.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// MeshPath returns the asset name of a part mesh for a size variant and mesh format ("obj" or "stl").
// Meshes of each format live in their own folder, as the exporter writes them: <size>/objs, <size>/stls.
func MeshPath(size, file, format string) string {
	return path.Join(size, format+"s", file+"."+format)
}

// DimensionsPath returns the asset name of the pad dimensions file for a size variant.
func DimensionsPath(size string) string {
	return path.Join(size, dimensions.FileName)
}

// ReadAll opens name from src and returns its whole content.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	return data, nil
}

// DirSource serves assets from a file system, typically os.DirFS(root).
type DirSource struct {
	fsys fs.FS
}

// NewDirSource returns a Source reading from fsys.
func NewDirSource(fsys fs.FS) *DirSource {
	return &DirSource{fsys: fsys}
}

// Open opens name from the file system. The context is only checked before opening;
// local reads are not interruptible.
func (s *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name = strings.TrimPrefix(path.Clean(name), "/")
	f, err := s.fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	return f, nil
}
