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

// ScanCmd scans a folder tree for git repositories and tallies their contributors
type ScanCmd struct {
	Branch string `help:"Branch to analyze ('all' or empty for every branch)" short:"b"`
	Format string `help:"Output format (table or json)" default:"table" enum:"table,json"`
	Plain  bool   `help:"Print progress as plain lines instead of the live view"`
	Root   string `arg:"" optional:"" help:"Folder to scan (prompts when omitted on a terminal)"`
}

// Run executes the scan command
func (s *ScanCmd) Run(cli *CLI) error {
	root := s.Root
	branch := s.Branch
	if branch == "" {
		branch = cli.defaultBranch()
	}

	if root == "" {
		if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
			if err := promptScanTarget(&root, &branch); err != nil {
				return err
			}
		} else {
			root = "."
		}
	}

	scope, err := domain.ParseBranchScope(branch)
	if err != nil {
		return err
	}
	root = config.ExpandPath(root)
	logging.Logger.Info("Executing scan command", "root", root, "scope", scope.Display(), "format", s.Format)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var result *domain.ScanResult
	err = runWithProgress(ctx, cli.Container.Registry, fmt.Sprintf("Scanning %s", root), s.Plain,
		func(ctx context.Context, sessionID string) error {
			var err error
			result, err = cli.Container.ScanService.ScanAll(ctx, root, scope, sessionID)
			return err
		})
	if err != nil {
		return err
	}

	if s.Format == formatJSON {
		return writeJSON(os.Stdout, scanOutput{
			Outcome:      result.Outcome,
			Repositories: result.Reports,
			Total:        result.Totals,
		})
	}
	renderScan(os.Stdout, result)
	return nil
}
