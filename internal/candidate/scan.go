package candidate

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Directories returns the immediate child directories of root in the order
// the filesystem reports them. Files and symlinks to files are skipped.
func Directories(root string) (Set, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", root, err)
	}
	out := make(Set, 0, len(entries))
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if e.IsDir() {
			out = append(out, NewDirectory(path))
			continue
		}
		if e.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(path); err == nil && info.IsDir() {
				out = append(out, NewDirectory(path))
			}
		}
	}
	return out, nil
}

// Playlists walks root recursively and returns every .m3u / .m3u8 file.
// Sub-directories that cannot be read are skipped and logged; only a failure
// on root itself is returned.
func Playlists(root string, logger *slog.Logger) (Set, error) {
	if logger == nil {
		logger = slog.Default()
	}
	root = filepath.Clean(root)
	out := make(Set, 0, 16)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			if path == root {
				return walkErr
			}
			logger.Warn("skipping unreadable path", "path", path, "error", walkErr)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if IsPlaylistExt(d.Name()) {
			out = append(out, NewPlaylist(path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return out, nil
}

// Ascend walks up times parent directories from root. It stops at the
// filesystem root and reports how many steps were actually taken.
func Ascend(root string, times int) (dir string, steps int) {
	dir = filepath.Clean(root)
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	for steps < times {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
		steps++
	}
	return dir, steps
}
