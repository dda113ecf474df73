package harness

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own CODETALLY_HOME.
type TestEnvironment struct {
	Home     string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp CODETALLY_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		Home:     tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It filters out CODETALLY_* variables and sets:
//   - CODETALLY_HOME to the temp directory
//   - CODETALLY_DEBUG to empty string (disables debug logging)
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+2+len(e.extraEnv))

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "CODETALLY_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env,
		"CODETALLY_HOME="+e.Home,
		"CODETALLY_DEBUG=",
	)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}
	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	if e.extraEnv == nil {
		e.extraEnv = make(map[string]string)
	}
	e.extraEnv[key] = value
}

// WriteSettings writes settings.json into the environment's CODETALLY_HOME.
func (e *TestEnvironment) WriteSettings(settings map[string]any) {
	e.tb.Helper()
	data, err := json.Marshal(settings)
	if err != nil {
		e.tb.Fatalf("Failed to marshal settings: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Home, "settings.json"), data, 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
