// Package candidate models the entries a user can pick from: album
// directories and playlist files beneath a library root.
package candidate

import (
	"path/filepath"
	"strings"
)

// Kind identifies what a Candidate points at.
type Kind int

const (
	KindDirectory Kind = iota
	KindPlaylist
)

func (k Kind) String() string {
	switch k {
	case KindDirectory:
		return "directory"
	case KindPlaylist:
		return "playlist"
	default:
		return "unknown"
	}
}

// Candidate is a named, path-bearing filesystem entry.
type Candidate interface {
	Name() string
	FullPath() string
	Kind() Kind
}

// Set is an ordered sequence of candidates. Indices are stable for a session.
type Set []Candidate

// Names returns the display names in set order.
func (s Set) Names() []string {
	out := make([]string, len(s))
	for i, c := range s {
		out[i] = c.Name()
	}
	return out
}

// Directory is an album folder.
type Directory struct {
	path string
}

// NewDirectory returns a Directory for path. The path is cleaned but not checked.
func NewDirectory(path string) Directory {
	return Directory{path: filepath.Clean(path)}
}

func (d Directory) Name() string     { return filepath.Base(d.path) }
func (d Directory) FullPath() string { return d.path }
func (d Directory) Kind() Kind       { return KindDirectory }

// Playlist is an .m3u or .m3u8 file.
type Playlist struct {
	path string
}

// NewPlaylist returns a Playlist for path. The path is cleaned but not checked.
func NewPlaylist(path string) Playlist {
	return Playlist{path: filepath.Clean(path)}
}

func (p Playlist) Name() string     { return filepath.Base(p.path) }
func (p Playlist) FullPath() string { return p.path }
func (p Playlist) Kind() Kind       { return KindPlaylist }

// IsPlaylistExt reports whether name has a playlist extension (.m3u, .m3u8).
func IsPlaylistExt(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".m3u", ".m3u8":
		return true
	default:
		return false
	}
}
