// Package config loads settings.json, the file that names the player to
// launch and, optionally, the default album directory.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/gofrs/flock"

	perrors "github.com/gdql/albumpick/internal/errors"
)

const (
	// FileName is the settings file looked up next to the executable.
	FileName = "settings.json"
	// HistoryFileName is the pick history database kept beside the settings.
	HistoryFileName = "history.db"

	// PlaceholderFolder and PlaceholderSource are replaced in Args by the
	// chosen directory or playlist path.
	PlaceholderFolder = "$(folder)"
	PlaceholderSource = "$(source)"

	EnvConfig  = "ALBUMPICK_CONFIG"
	EnvHistory = "ALBUMPICK_HISTORY"
)

// Settings mirrors settings.json. Keys are PascalCase to stay compatible with
// files written by earlier releases.
type Settings struct {
	Executable            string `json:"Executable"`
	Args                  string `json:"Args"`
	DefaultAlbumDirectory string `json:"DefaultAlbumDirectory,omitempty"`
}

// Default returns the settings written when no usable file exists.
func Default() Settings {
	return Settings{
		Executable: defaultExecutable(),
		Args:       `"` + PlaceholderFolder + `"`,
	}
}

func defaultExecutable() string {
	switch runtime.GOOS {
	case "windows":
		base := os.Getenv("ProgramFiles(x86)")
		if base == "" {
			base = `C:\Program Files (x86)`
		}
		return filepath.ToSlash(filepath.Join(base, "Windows Media Player", "wmplayer.exe"))
	case "darwin":
		return "/Applications/VLC.app/Contents/MacOS/VLC"
	default:
		return "vlc"
	}
}

// Validate reports the first problem that makes s unusable.
func (s Settings) Validate() error {
	if strings.TrimSpace(s.Executable) == "" {
		return errors.New("Executable is empty")
	}
	return nil
}

// Path returns the settings file location: $ALBUMPICK_CONFIG if set,
// otherwise settings.json beside the running executable.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName), nil
}

// HistoryPath returns $ALBUMPICK_HISTORY if set, otherwise history.db in the
// same directory as settingsPath.
func HistoryPath(settingsPath string) string {
	if p := os.Getenv(EnvHistory); p != "" {
		return p
	}
	return filepath.Join(filepath.Dir(settingsPath), HistoryFileName)
}

// Load reads and validates the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &perrors.PickError{Type: perrors.ErrSettings, Message: "reading settings", Path: path, Cause: err}
	}
	return parse(path, data)
}

func parse(path string, data []byte) (*Settings, error) {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, &perrors.PickError{Type: perrors.ErrSettings, Message: "parsing settings", Path: path, Cause: err}
	}
	if err := s.Validate(); err != nil {
		return nil, &perrors.PickError{
			Type:    perrors.ErrSettings,
			Message: "invalid settings",
			Path:    path,
			Cause:   err,
			Hint:    "set Executable to the player to launch",
		}
	}
	return &s, nil
}

// LoadOrCreate loads path. When the file is missing, malformed or has no
// Executable, the default settings are written there instead and created is
// true; the caller should ask the user to edit the file and stop.
// A file that exists but cannot be read is an error and is left alone.
func LoadOrCreate(path string) (s *Settings, created bool, err error) {
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if s, perr := parse(path, data); perr == nil {
			return s, false, nil
		}
	case !errors.Is(err, fs.ErrNotExist):
		return nil, false, &perrors.PickError{Type: perrors.ErrSettings, Message: "reading settings", Path: path, Cause: err}
	}
	def := Default()
	if err := Write(path, def); err != nil {
		return nil, false, err
	}
	return &def, true, nil
}

// Write stores s at path as indented JSON. Concurrent writers are serialised
// with a lock file beside path.
func Write(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return perrors.Wrap(perrors.ErrSettings, "creating settings directory", err)
	}
	// the lock file stays behind; removing it would let a second writer lock
	// a fresh inode while the first still holds the old one
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return perrors.Wrap(perrors.ErrSettings, "locking settings", err)
	}
	defer lock.Unlock()

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return perrors.Wrap(perrors.ErrSettings, "encoding settings", err)
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return &perrors.PickError{Type: perrors.ErrSettings, Message: "writing settings", Path: path, Cause: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &perrors.PickError{Type: perrors.ErrSettings, Message: "writing settings", Path: path, Cause: err}
	}
	return nil
}
