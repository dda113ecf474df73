package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"codetally/internal/config"
	"codetally/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"200"`

	Scan     ScanCmd     `cmd:"scan" help:"Scan a folder for git repositories and tally contributions" default:"withargs"`
	Repo     RepoCmd     `cmd:"repo" help:"Analyze a single git repository"`
	Serve    ServeCmd    `cmd:"serve" help:"Serve the HTTP API, progress streams and the SSH watcher"`
	Settings SettingsCmd `cmd:"settings" help:"Show settings file location and effective values"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}
	if logFilePath != "" {
		logging.Logger.Info("Logging initialized", "file", logFilePath)
	}

	// Logging must be ready before the container opens the store, whose gorm logger writes to it
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	if c.settings == nil {
		return
	}

	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		if _, hasEnv := os.LookupEnv("CODETALLY_MAX_LOG_FILES"); !hasEnv {
			if c.settings.MaxLogFiles != nil {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}
	}

	if !c.Debug {
		if _, hasEnv := os.LookupEnv("CODETALLY_DEBUG"); !hasEnv {
			if c.settings.Debug != nil && *c.settings.Debug {
				c.Debug = true
			}
		}
	}
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// defaultBranch returns the branch scope configured in settings.json, if any
func (c *CLI) defaultBranch() string {
	if c.settings == nil {
		return ""
	}
	return c.settings.DefaultBranchScope
}
