package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandError(t *testing.T) {
	err := &CommandError{
		Args:     []string{"git", "log", "--all"},
		Dir:      "/src/r1",
		ExitCode: 128,
		Message:  "fatal: not a git repository",
	}

	assert.Equal(t, "git log --all", err.Command())
	assert.Contains(t, err.Error(), "fatal: not a git repository")
	assert.Contains(t, err.Error(), "/src/r1")

	wrapped := fmt.Errorf("listing authors: %w", err)
	var target *CommandError
	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, 128, target.ExitCode)
}

func TestCommandErrorUnwrap(t *testing.T) {
	err := &CommandError{Args: []string{"git"}, Dir: "/x", Err: ErrOutputLimitExceeded}

	assert.ErrorIs(t, err, ErrOutputLimitExceeded)
	assert.Contains(t, err.Error(), ErrOutputLimitExceeded.Error())
}

func TestIsInputError(t *testing.T) {
	assert.True(t, IsInputError(fmt.Errorf("root: %w", ErrPathNotFound)))
	assert.True(t, IsInputError(ErrNotADirectory))
	assert.False(t, IsInputError(ErrScanNotFound))
	assert.False(t, IsInputError(errors.New("boom")))
}
