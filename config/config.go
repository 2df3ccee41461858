package config

import (
	"os"
	"path/filepath"
)

// Dir returns the peek configuration directory under the user config dir
// (XDG_CONFIG_HOME on Unix, APPDATA on Windows). When no home can be
// determined it falls back to the system temp dir.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "peek")
}

// LogFile returns the path of the debug log.
func LogFile() string {
	return filepath.Join(Dir(), "peek.log")
}
