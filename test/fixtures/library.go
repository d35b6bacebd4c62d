package fixtures

import (
	"os"
	"path/filepath"
	"testing"
)

// Albums are the album directories created by CreateLibrary.
var Albums = []string{"Abbey Road", "Let It Be", "Revolver"}

// Playlists are the playlist files created by CreateLibrary, relative to its root.
var Playlists = []string{
	"road trip.m3u",
	filepath.Join("Revolver", "side a.m3u8"),
	filepath.Join("Let It Be", "extras", "naked.M3U"),
}

// CreateLibrary builds a temporary music library: one directory per album,
// playlist files at several depths and some files that are neither.
func CreateLibrary(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	for _, a := range Albums {
		if err := os.MkdirAll(filepath.Join(root, a), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", a, err)
		}
	}
	files := append([]string{
		"cover.jpg",
		filepath.Join("Abbey Road", "01 Come Together.flac"),
		filepath.Join("Let It Be", "notes.txt"),
	}, Playlists...)
	for _, f := range files {
		p := filepath.Join(root, f)
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", f, err)
		}
		if err := os.WriteFile(p, []byte("#EXTM3U\n"), 0o644); err != nil {
			t.Fatalf("write %s: %v", f, err)
		}
	}
	return root
}
