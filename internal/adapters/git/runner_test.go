package git

import (
	"context"
	"errors"
	"os/exec"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codetally/internal/domain"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCLIRunnerCapturesStdout(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	runner := NewCLIRunner("sh", 1024, time.Minute)

	out, err := runner.Run(context.Background(), dir, "-c", "pwd; echo hello")

	require.NoError(t, err)
	assert.Contains(t, out, "hello\n")
}

func TestCLIRunnerNonZeroExit(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	runner := NewCLIRunner("sh", 1024, time.Minute)

	_, err := runner.Run(context.Background(), dir, "-c", "echo 'fatal: bad revision' >&2; exit 3")

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "fatal: bad revision", cmdErr.Message)
	assert.Equal(t, dir, cmdErr.Dir)
	assert.Equal(t, []string{"sh", "-c", "echo 'fatal: bad revision' >&2; exit 3"}, cmdErr.Args)
}

func TestCLIRunnerOutputLimit(t *testing.T) {
	requireShell(t)
	runner := NewCLIRunner("sh", 100, time.Minute)

	_, err := runner.Run(context.Background(), t.TempDir(), "-c", "i=0; while [ $i -lt 1000 ]; do echo 0123456789; i=$((i+1)); done")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOutputLimitExceeded)
}

func TestCLIRunnerTimeout(t *testing.T) {
	requireShell(t)
	runner := NewCLIRunner("sh", 1024, 50*time.Millisecond)

	_, err := runner.Run(context.Background(), t.TempDir(), "-c", "sleep 5")

	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCLIRunnerMissingBinary(t *testing.T) {
	runner := NewCLIRunner("codetally-no-such-binary", 1024, 0)

	_, err := runner.Run(context.Background(), t.TempDir(), "log")

	var cmdErr *domain.CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, -1, cmdErr.ExitCode)
}

func TestLimitedBuffer(t *testing.T) {
	overflows := 0
	buf := &limitedBuffer{limit: 5, onOverflow: func() { overflows++ }}

	n, err := buf.Write([]byte("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = buf.Write([]byte("defg"))
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.True(t, buf.overflowed)
	assert.Equal(t, "abcde", buf.buf.String())

	_, _ = buf.Write([]byte("more"))
	assert.Equal(t, 1, overflows)
}
