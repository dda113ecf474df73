package ports

import "context"

// CommandRunner executes a version control subcommand in a directory and returns its stdout
type CommandRunner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}
