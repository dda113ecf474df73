package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	DefaultCommandTimeout   = 10 * time.Minute
	DefaultGitBinary        = "git"
	DefaultKeepAliveSeconds = 30
	DefaultListenAddr       = "127.0.0.1:3001"
	DefaultMaxOutputBytes   = 10 * 1024 * 1024
	DefaultMaxScans         = 100
)

// DefaultSkipDirs are directory names never descended into during discovery
var DefaultSkipDirs = []string{"node_modules", "vendor", "venv", "__pycache__"}

// Settings represents the structure of $CODETALLY_HOME/settings.json
type Settings struct {
	CommandTimeoutSeconds *int        `json:"command_timeout_seconds,omitempty"`
	Debug                 *bool       `json:"debug,omitempty"`
	DefaultBranchScope    string      `json:"default_branch_scope,omitempty"`
	GitBinary             string      `json:"git_binary,omitempty"`
	KeepAliveSeconds      *int        `json:"keepalive_seconds,omitempty"`
	ListenAddr            string      `json:"listen_addr,omitempty"`
	MaxLogFiles           *int        `json:"max_log_files,omitempty"`
	MaxOutputBytes        *int64      `json:"max_output_bytes,omitempty"`
	MaxScans              *int        `json:"max_scans,omitempty"`
	SkipDirs              StringArray `json:"skip_dirs,omitempty"`
	SSHAddr               string      `json:"ssh_addr,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $CODETALLY_HOME/settings.json.
// Returns empty Settings if the file doesn't exist.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.GitBinary != "" {
		settings.GitBinary = ExpandPath(settings.GitBinary)
	}

	return &settings, nil
}

// CommandTimeout returns the per-command timeout, zero meaning no timeout
func (s *Settings) CommandTimeout() time.Duration {
	if s == nil || s.CommandTimeoutSeconds == nil {
		return DefaultCommandTimeout
	}
	if *s.CommandTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(*s.CommandTimeoutSeconds) * time.Second
}

// GitBinaryOrDefault returns the configured git executable
func (s *Settings) GitBinaryOrDefault() string {
	if s == nil || s.GitBinary == "" {
		return DefaultGitBinary
	}
	return s.GitBinary
}

// KeepAliveInterval returns the progress keep-alive interval
func (s *Settings) KeepAliveInterval() time.Duration {
	if s == nil || s.KeepAliveSeconds == nil || *s.KeepAliveSeconds <= 0 {
		return DefaultKeepAliveSeconds * time.Second
	}
	return time.Duration(*s.KeepAliveSeconds) * time.Second
}

// MaxOutputBytesOrDefault returns the command output ceiling
func (s *Settings) MaxOutputBytesOrDefault() int64 {
	if s == nil || s.MaxOutputBytes == nil || *s.MaxOutputBytes <= 0 {
		return DefaultMaxOutputBytes
	}
	return *s.MaxOutputBytes
}

// MaxScansOrDefault returns how many scans the server holds before evicting the oldest
func (s *Settings) MaxScansOrDefault() int {
	if s == nil || s.MaxScans == nil || *s.MaxScans <= 0 {
		return DefaultMaxScans
	}
	return *s.MaxScans
}

// SkipDirsOrDefault returns the default skip list extended with configured names
func (s *Settings) SkipDirsOrDefault() []string {
	dirs := make([]string, 0, len(DefaultSkipDirs))
	dirs = append(dirs, DefaultSkipDirs...)
	if s == nil {
		return dirs
	}
	for _, d := range s.SkipDirs {
		if d != "" {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
