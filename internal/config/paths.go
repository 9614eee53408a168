package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Allow user to set app home through env variable
// otherwise default to ~/.local/share/rowstore
func resolveHome(homeOverride string) (string, error) {
	home := homeOverride
	if home == "" {
		home = os.Getenv("ROWSTORE_HOME")
	}

	if home == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		home = filepath.Join(userHome, ".local", "share", "rowstore")
	}

	if err := os.MkdirAll(home, 0o755); err != nil {
		return "", err
	}
	return home, nil
}

// LogPath names the log file for a database: data/users.db logs to <log_dir>/users.log
func (cfg *Config) LogPath(dbPath string) string {
	name := filepath.Base(dbPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return filepath.Join(cfg.LogDir, name+".log")
}
