package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Entry is one regular file found below the scan root.
type Entry struct {
	// Path is relative to the root and slash-separated on every platform.
	Path string

	// FullPath is the location on the walked filesystem.
	FullPath string

	// Size is the byte count reported by the file's metadata.
	Size uint64
}

// WalkFunc is called for every regular file. Returning an error stops the
// walk and Walk returns that error.
type WalkFunc func(Entry) error

// Walk visits every regular file below root in lexical order. Symlinks and
// other non-regular entries are skipped. A missing or unreadable root, or any
// entry whose metadata cannot be read, fails the walk.
func Walk(fsys afero.Fs, root string, logger *slog.Logger, fn WalkFunc) error {
	if logger == nil {
		logger = slog.Default()
	}

	info, err := fsys.Stat(root)
	if err != nil {
		return fmt.Errorf("walk %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("walk %s: not a directory", root)
	}

	return afero.Walk(fsys, root, func(full string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walk %s: %w", full, err)
		}
		if info.IsDir() {
			return nil
		}
		if !info.Mode().IsRegular() {
			logger.Debug("skipping non-regular file", "path", full, "mode", info.Mode().String())
			return nil
		}

		rel, err := filepath.Rel(root, full)
		if err != nil {
			return fmt.Errorf("walk %s: %w", full, err)
		}
		return fn(Entry{
			Path:     filepath.ToSlash(rel),
			FullPath: full,
			Size:     uint64(info.Size()),
		})
	})
}
