package cmd

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"codetally/internal/config"
)

// SettingsCmd shows the settings file location and the effective values
type SettingsCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

type settingsOutput struct {
	SettingsFile string         `json:"settings_file"`
	Values       map[string]any `json:"values"`
}

// Run executes the settings command
func (s *SettingsCmd) Run(cli *CLI) error {
	out := settingsOutput{
		SettingsFile: config.GetSettingsPath(),
		Values:       effectiveSettings(cli.settings),
	}
	if s.Format == formatJSON {
		return writeJSON(os.Stdout, out)
	}
	return renderSettings(os.Stdout, out)
}

// effectiveSettings resolves every setting to the value actually used
func effectiveSettings(settings *config.Settings) map[string]any {
	values := map[string]any{
		"command_timeout_seconds": int(settings.CommandTimeout().Seconds()),
		"default_branch_scope":    "",
		"git_binary":              settings.GitBinaryOrDefault(),
		"keepalive_seconds":       int(settings.KeepAliveInterval().Seconds()),
		"listen_addr":             config.DefaultListenAddr,
		"max_output_bytes":        settings.MaxOutputBytesOrDefault(),
		"max_scans":               settings.MaxScansOrDefault(),
		"skip_dirs":               settings.SkipDirsOrDefault(),
		"ssh_addr":                "",
	}
	if settings != nil {
		values["default_branch_scope"] = settings.DefaultBranchScope
		if settings.ListenAddr != "" {
			values["listen_addr"] = settings.ListenAddr
		}
		values["ssh_addr"] = settings.SSHAddr
	}
	return values
}

func renderSettings(w io.Writer, out settingsOutput) error {
	fmt.Fprintf(w, "Settings file: %s\n\n", out.SettingsFile)

	keys := make([]string, 0, len(out.Values))
	for key := range out.Values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		value := out.Values[key]
		if list, ok := value.([]string); ok {
			value = strings.Join(list, ",")
		}
		fmt.Fprintf(tw, "%s\t%v\n", key, value)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "All settings are optional and have sensible defaults.")
	return nil
}
