package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const (
	defaultTimeout = 30 * time.Second

	// BuildVersion is stamped into the test binary so version output is predictable
	BuildVersion = "integration"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// CommandResult holds the exit code and captured streams of one CLI invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles codetally once per test run with a fixed version stamp.
// Call this from TestMain before running tests.
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		moduleRoot, err := findModuleRoot()
		if err != nil {
			buildErr = err
			return
		}

		tempDir, err := os.MkdirTemp("", "codetally-integration-*")
		if err != nil {
			buildErr = err
			return
		}
		binaryPath = filepath.Join(tempDir, "codetally")

		cmd := exec.Command("go", "build",
			"-trimpath",
			"-ldflags", "-X main.Version="+BuildVersion,
			"-o", binaryPath, ".")
		cmd.Dir = moduleRoot
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			buildErr = fmt.Errorf("go build in %s: %w", moduleRoot, err)
		}
	})

	return binaryPath, buildErr
}

// CleanupBinary removes the compiled binary and its temp directory.
// Call this from TestMain after tests complete.
func CleanupBinary() {
	if binaryPath == "" {
		return
	}
	if err := os.RemoveAll(filepath.Dir(binaryPath)); err != nil {
		log.Printf("Warning: failed to remove %s: %v", filepath.Dir(binaryPath), err)
	}
}

// RunCommand runs codetally with args inside env, waiting at most defaultTimeout.
// Every scan in the suite is expected to finish well inside that limit.
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binaryPath, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Env = env.Environ()

	result := CommandResult{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Fatalf("codetally %v did not finish within %v\nStderr: %s", args, defaultTimeout, stderr.String())
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Fatalf("Failed to start codetally %v: %v", args, err)
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// findModuleRoot walks up from the working directory to the directory holding go.mod
func findModuleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
