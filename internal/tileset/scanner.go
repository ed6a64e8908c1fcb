package tileset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source is one discovered input file, bound to its tile slot.
type Source struct {
	// Index is the zero-based tile slot, assigned by name order.
	Index int
	// Path is the full path to the file.
	Path string
	// Name is the base filename.
	Name string
	// Size is the file size in bytes.
	Size int64
}

// Scan lists the files directly inside dir, sorted lexicographically
// by name. Every regular file counts as a source image regardless of
// extension; subdirectories and dotfiles are skipped. The name order
// is what fixes each image's tile index, so operators control the
// layout by naming (00-..., 01-..., ...).
func Scan(dir string) ([]Source, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}

	var sources []Source
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", e.Name(), err)
		}
		// os.ReadDir returns entries sorted by filename.
		sources = append(sources, Source{
			Index: len(sources),
			Path:  filepath.Join(dir, e.Name()),
			Name:  e.Name(),
			Size:  info.Size(),
		})
	}
	return sources, nil
}
