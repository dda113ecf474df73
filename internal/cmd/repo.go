package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"codetally/internal/config"
	"codetally/internal/domain"
	"codetally/internal/logging"
)

// RepoCmd analyzes a single repository
type RepoCmd struct {
	Branch string `help:"Branch to analyze ('all' or empty for every branch)" short:"b"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Path   string `arg:"" help:"Path of the git repository"`
	Plain  bool   `help:"Print progress as plain lines instead of the live view"`
}

// Run executes the repo command
func (r *RepoCmd) Run(cli *CLI) error {
	branch := r.Branch
	if branch == "" {
		branch = cli.defaultBranch()
	}
	scope, err := domain.ParseBranchScope(branch)
	if err != nil {
		return err
	}
	path := config.ExpandPath(r.Path)
	logging.Logger.Info("Executing repo command", "path", path, "scope", scope.Display())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var report domain.RepositoryReport
	err = runWithProgress(ctx, cli.Container.Registry, fmt.Sprintf("Analyzing %s", path), r.Plain,
		func(ctx context.Context, sessionID string) error {
			var err error
			report, err = cli.Container.ScanService.ReanalyzeOne(ctx, path, scope, sessionID)
			return err
		})
	if err != nil {
		return err
	}

	if r.Format == formatJSON {
		return writeJSON(os.Stdout, report)
	}
	renderReport(os.Stdout, report)
	renderTotals(os.Stdout, domain.FoldTotals([]domain.RepositoryReport{report}))
	return nil
}
