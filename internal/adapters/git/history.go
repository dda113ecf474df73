package git

import (
	"context"
	"fmt"
	"regexp"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

// CLIHistory implements ports.HistoryReader on top of a CommandRunner
type CLIHistory struct {
	runner ports.CommandRunner
}

// Verify interface compliance at compile time
var _ ports.HistoryReader = (*CLIHistory)(nil)

// NewCLIHistory creates a new CLIHistory
func NewCLIHistory(runner ports.CommandRunner) *CLIHistory {
	return &CLIHistory{runner: runner}
}

// refListArgs lists local and remote-tracking branch refs
var refListArgs = []string{"for-each-ref", "--format=%(refname)", "refs/heads", "refs/remotes"}

// ListBranches implements BranchLister.ListBranches
func (h *CLIHistory) ListBranches(ctx context.Context, repoPath string) ([]string, error) {
	out, err := h.runner.Run(ctx, repoPath, refListArgs...)
	if err != nil {
		return nil, fmt.Errorf("failed to list branches: %w", err)
	}
	branches := parseRefNames(out)
	logging.Logger.Debug("Listed branches", "repo", repoPath, "count", len(branches))
	return branches, nil
}

// ListAuthors implements AuthorLister.ListAuthors.
// Names are reported after .mailmap rewriting, the same identity AuthorStats matches on.
func (h *CLIHistory) ListAuthors(ctx context.Context, repoPath string, scope domain.BranchScope) ([]string, error) {
	revision, err := h.revision(ctx, repoPath, scope)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	out, err := h.runner.Run(ctx, repoPath, "log", "--use-mailmap", "--format=%aN", revision, "--")
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}
	authors := parseAuthors(out)
	logging.Logger.Debug("Listed authors", "repo", repoPath, "scope", scope.Display(), "count", len(authors))
	return authors, nil
}

// AuthorStats implements AuthorStatCalculator.AuthorStats.
// Line counts and commit counts come from two independent queries.
func (h *CLIHistory) AuthorStats(ctx context.Context, repoPath, author string, scope domain.BranchScope) (domain.AuthorStat, error) {
	stat := domain.AuthorStat{Author: author}
	pattern := authorPattern(author)

	revision, err := h.revision(ctx, repoPath, scope)
	if err != nil {
		return domain.AuthorStat{Author: author}, fmt.Errorf("failed to read line stats for %s: %w", author, err)
	}

	numstat, err := h.runner.Run(ctx, repoPath,
		"log", "--use-mailmap", "--pretty=tformat:", "--numstat", "-E", pattern, revision, "--")
	if err != nil {
		return domain.AuthorStat{Author: author}, fmt.Errorf("failed to read line stats for %s: %w", author, err)
	}
	stat.Added, stat.Deleted = parseNumstat(numstat)

	// rev-list ignores .mailmap, so commits are counted through log as well
	hashes, err := h.runner.Run(ctx, repoPath,
		"log", "--use-mailmap", "--format=%H", "-E", pattern, revision, "--")
	if err != nil {
		return domain.AuthorStat{Author: author}, fmt.Errorf("failed to count commits for %s: %w", author, err)
	}
	stat.Commits = parseLineCount(hashes)

	return stat, nil
}

// revision maps a scope to the revision argument understood by git log.
// A branch that only exists as a remote-tracking ref resolves to its full ref name;
// names matching no branch are passed through for git to resolve.
func (h *CLIHistory) revision(ctx context.Context, repoPath string, scope domain.BranchScope) (string, error) {
	if scope.IsAll() {
		return "--all", nil
	}
	out, err := h.runner.Run(ctx, repoPath, refListArgs...)
	if err != nil {
		return "", fmt.Errorf("failed to resolve branch %s: %w", scope.Branch(), err)
	}
	if ref, ok := parseRefTargets(out)[scope.Branch()]; ok {
		return ref, nil
	}
	return scope.Branch(), nil
}

// authorPattern matches the exact author name at the start of the "Name <email>" header
func authorPattern(author string) string {
	return "--author=^" + regexp.QuoteMeta(author) + " <"
}
