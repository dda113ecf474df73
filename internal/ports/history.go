package ports

import (
	"context"

	"codetally/internal/domain"
)

// BranchLister enumerates local and remote branch names
type BranchLister interface {
	ListBranches(ctx context.Context, repoPath string) ([]string, error)
}

// AuthorLister enumerates distinct author names reachable in a scope
type AuthorLister interface {
	ListAuthors(ctx context.Context, repoPath string, scope domain.BranchScope) ([]string, error)
}

// AuthorStatCalculator computes line and commit counts for one author
type AuthorStatCalculator interface {
	AuthorStats(ctx context.Context, repoPath, author string, scope domain.BranchScope) (domain.AuthorStat, error)
}

// HistoryReader is the composite interface
type HistoryReader interface {
	AuthorLister
	AuthorStatCalculator
	BranchLister
}
