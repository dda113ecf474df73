package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

const (
	maxStderrBytes = 64 * 1024
	waitDelay      = 2 * time.Second
)

// CLIRunner implements ports.CommandRunner by executing the git binary
type CLIRunner struct {
	binary         string
	maxOutputBytes int64
	timeout        time.Duration
}

// Verify interface compliance at compile time
var _ ports.CommandRunner = (*CLIRunner)(nil)

// NewCLIRunner creates a runner. A zero timeout disables the per-command deadline.
func NewCLIRunner(binary string, maxOutputBytes int64, timeout time.Duration) *CLIRunner {
	return &CLIRunner{
		binary:         binary,
		maxOutputBytes: maxOutputBytes,
		timeout:        timeout,
	}
}

// Run executes the binary with args in dir and returns its stdout.
// Output beyond the configured ceiling kills the process and fails the call.
func (r *CLIRunner) Run(ctx context.Context, dir string, args ...string) (string, error) {
	if r.timeout > 0 {
		var cancelTimeout context.CancelFunc
		ctx, cancelTimeout = context.WithTimeout(ctx, r.timeout)
		defer cancelTimeout()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stdout := &limitedBuffer{limit: r.maxOutputBytes, onOverflow: cancel}
	stderr := &limitedBuffer{limit: maxStderrBytes}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr
	cmd.WaitDelay = waitDelay

	started := time.Now()
	err := cmd.Run()
	commandArgs := append([]string{r.binary}, args...)

	logging.Logger.Debug("Command finished",
		"dir", dir,
		"args", args,
		"duration", time.Since(started),
		"stdout_bytes", stdout.buf.Len(),
		"error", err)

	if stdout.overflowed {
		return "", &domain.CommandError{
			Args:     commandArgs,
			Dir:      dir,
			Err:      domain.ErrOutputLimitExceeded,
			ExitCode: -1,
			Message:  fmt.Sprintf("stdout exceeded %d bytes", r.maxOutputBytes),
		}
	}

	if err != nil {
		cmdErr := &domain.CommandError{
			Args:     commandArgs,
			Dir:      dir,
			Err:      err,
			ExitCode: -1,
			Message:  strings.TrimSpace(stderr.buf.String()),
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		}
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(ctxErr, context.DeadlineExceeded) {
			cmdErr.Err = ctxErr
			cmdErr.Message = fmt.Sprintf("timed out after %s", r.timeout)
		}
		return "", cmdErr
	}

	return stdout.buf.String(), nil
}

// limitedBuffer accepts writes up to limit bytes. Past the limit it discards input
// and calls onOverflow once so the producer can be stopped.
type limitedBuffer struct {
	buf        bytes.Buffer
	limit      int64
	onOverflow func()
	overflowed bool
}

func (b *limitedBuffer) Write(p []byte) (int, error) {
	if b.overflowed {
		return len(p), nil
	}
	if b.limit > 0 && int64(b.buf.Len()+len(p)) > b.limit {
		remaining := b.limit - int64(b.buf.Len())
		if remaining > 0 {
			b.buf.Write(p[:remaining])
		}
		b.overflowed = true
		if b.onOverflow != nil {
			b.onOverflow()
		}
		return len(p), nil
	}
	return b.buf.Write(p)
}
