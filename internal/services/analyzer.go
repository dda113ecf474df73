package services

import (
	"context"
	"fmt"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

// AnalyzerService builds the report for a single repository
type AnalyzerService struct {
	history   ports.HistoryReader
	publisher ports.ProgressPublisher
}

// NewAnalyzerService creates a new AnalyzerService
func NewAnalyzerService(history ports.HistoryReader, publisher ports.ProgressPublisher) *AnalyzerService {
	return &AnalyzerService{
		history:   history,
		publisher: publisher,
	}
}

// Analyze enumerates branches and authors, then computes every author's stats in
// enumeration order. Command failures degrade to empty lists or zeroed stats with a
// warning, so Analyze always returns a report.
func (s *AnalyzerService) Analyze(ctx context.Context, ref domain.RepositoryRef, scope domain.BranchScope, sessionID string) domain.RepositoryReport {
	logging.Logger.Info("Analyzing repository", "repo", ref.Path, "scope", scope.Display())
	s.publisher.Publish(sessionID, fmt.Sprintf("Analyzing repository: %s (%s)", ref.Name, scope.Display()), domain.SeverityInfo)

	branches, err := s.history.ListBranches(ctx, ref.Path)
	if err != nil {
		logging.Logger.Warn("Failed to list branches", "repo", ref.Path, "error", err)
		s.publisher.Publish(sessionID, fmt.Sprintf("Could not list branches of %s: %v", ref.Name, err), domain.SeverityWarning)
		branches = []string{}
	}

	authors, err := s.history.ListAuthors(ctx, ref.Path, scope)
	if err != nil {
		logging.Logger.Warn("Failed to list authors", "repo", ref.Path, "scope", scope.Display(), "error", err)
		s.publisher.Publish(sessionID, fmt.Sprintf("Could not list contributors of %s: %v", ref.Name, err), domain.SeverityWarning)
		authors = nil
	}
	authors = uniqueAuthors(authors)
	s.publisher.Publish(sessionID, fmt.Sprintf("Found %d contributors", len(authors)), domain.SeverityInfo)

	stats := make([]domain.AuthorStat, 0, len(authors))
	for i, author := range authors {
		s.publisher.Publish(sessionID, fmt.Sprintf("Processing [%d/%d]: %s", i+1, len(authors), author), domain.SeverityInfo)

		stat, err := s.history.AuthorStats(ctx, ref.Path, author, scope)
		if err != nil {
			logging.Logger.Warn("Failed to compute author stats", "repo", ref.Path, "author", author, "error", err)
			s.publisher.Publish(sessionID, fmt.Sprintf("Could not compute stats for %s: %v", author, err), domain.SeverityWarning)
			stat = domain.AuthorStat{}
		}
		stat.Author = author
		stats = append(stats, stat)
	}

	report := domain.NewRepositoryReport(ref, scope, branches, stats)
	totals := domain.FoldTotals([]domain.RepositoryReport{report})
	s.publisher.Publish(sessionID, fmt.Sprintf("Repository done: %s line changes, %s commits",
		domain.FormatNumber(totals.TotalChanges()),
		domain.FormatNumber(totals.TotalCommits)), domain.SeverityInfo)

	logging.Logger.Info("Repository analyzed",
		"repo", ref.Path,
		"contributors", len(report.Contributors),
		"total_changes", totals.TotalChanges(),
		"commits", totals.TotalCommits)
	return report
}

// uniqueAuthors drops repeated names, keeping the first occurrence
func uniqueAuthors(authors []string) []string {
	seen := make(map[string]struct{}, len(authors))
	result := make([]string, 0, len(authors))
	for _, a := range authors {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		result = append(result, a)
	}
	return result
}
