package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidBranchScope  = errors.New("invalid branch scope")
	ErrNotADirectory       = errors.New("path is not a directory")
	ErrOutputLimitExceeded = errors.New("command output exceeded limit")
	ErrPathNotFound        = errors.New("path does not exist")
	ErrScanNotFound        = errors.New("scan not found")
)

// CommandError describes a failed version control command
type CommandError struct {
	Args     []string
	Dir      string
	Err      error
	ExitCode int
	Message  string
}

func (e *CommandError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	return fmt.Sprintf("command %q failed in %s: %s", e.Command(), e.Dir, msg)
}

// Command returns the command line that was executed
func (e *CommandError) Command() string {
	return strings.Join(e.Args, " ")
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err was caused by invalid caller input
func IsInputError(err error) bool {
	return errors.Is(err, ErrPathNotFound) ||
		errors.Is(err, ErrNotADirectory) ||
		errors.Is(err, ErrInvalidBranchScope)
}
