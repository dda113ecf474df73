package integration_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"codetally/test/integration/harness"
)

func TestSettingsJSON(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings(map[string]any{
		"listen_addr": "127.0.0.1:9999",
		"skip_dirs":   []string{"dist"},
	})

	result := harness.RunCommand(t, env, "settings", "--format", "json")

	harness.AssertSuccess(t, result)
	var out struct {
		SettingsFile string         `json:"settings_file"`
		Values       map[string]any `json:"values"`
	}
	harness.AssertValidJSON(t, result, &out)
	assert.Equal(t, filepath.Join(env.Home, "settings.json"), out.SettingsFile)
	assert.Equal(t, "127.0.0.1:9999", out.Values["listen_addr"])
	assert.Contains(t, out.Values["skip_dirs"], "dist")
}

func TestSettingsTable(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "git_binary")
	harness.AssertStdoutContains(t, result, "keepalive_seconds")
}

func TestVersionFlag(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")

	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "codetally "+harness.BuildVersion)
}
