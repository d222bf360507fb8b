package settings

import (
	"embed"
	"os"
	"path/filepath"
	"time"
)

// FileName is the settings file name, both embedded and on disk.
const FileName = "gridcursor.yaml"

//go:embed gridcursor.yaml
var DefaultsFS embed.FS

// Defaults returns the embedded default settings document.
func Defaults() ([]byte, error) {
	return DefaultsFS.ReadFile(FileName)
}

// DefaultPath is where the user's settings file lives when -config is not
// given. It is empty when no config directory can be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "gridcursor", FileName)
}

// ReadOverride returns the on-disk settings at path. A missing file is not an
// error: ok is false and the embedded defaults stand alone.
func ReadOverride(path string) (data []byte, ok bool, err error) {
	if path == "" {
		return nil, false, nil
	}
	data, err = os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func ModTime(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
