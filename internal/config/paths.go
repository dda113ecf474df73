package config

import (
	"os"
	"path/filepath"
)

// GetHome returns CODETALLY_HOME or the ~/.codetally default
func GetHome() string {
	home := os.Getenv("CODETALLY_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".codetally"
		}
		return filepath.Join(homeDir, ".codetally")
	}
	return ExpandPath(home)
}

// GetSettingsPath returns $CODETALLY_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetSSHDir returns $CODETALLY_HOME/ssh
func GetSSHDir() string {
	return filepath.Join(GetHome(), "ssh")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
