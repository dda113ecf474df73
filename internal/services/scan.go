package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

const separator = "----------------------------------------"

// ScanService runs full scans and single repository re-analysis
type ScanService struct {
	analyzer  *AnalyzerService
	finder    ports.RepositoryFinder
	publisher ports.ProgressPublisher
}

// NewScanService creates a new ScanService
func NewScanService(finder ports.RepositoryFinder, analyzer *AnalyzerService, publisher ports.ProgressPublisher) *ScanService {
	return &ScanService{
		analyzer:  analyzer,
		finder:    finder,
		publisher: publisher,
	}
}

// ScanAll discovers every repository under root and analyzes them one at a time in
// discovery order. Finding nothing is reported through OutcomeNoRepositories, not an error.
func (s *ScanService) ScanAll(ctx context.Context, root string, scope domain.BranchScope, sessionID string) (*domain.ScanResult, error) {
	root, err := CheckPath(root)
	if err != nil {
		s.publisher.Publish(sessionID, fmt.Sprintf("Folder path does not exist or is not accessible: %v", err), domain.SeverityError)
		return nil, err
	}

	logging.Logger.Info("Starting scan", "root", root, "scope", scope.Display(), "session_id", sessionID)
	s.publisher.Publish(sessionID, fmt.Sprintf("Scanning folder: %s", root), domain.SeverityInfo)
	s.publisher.Publish(sessionID, fmt.Sprintf("Branch scope: %s", scope.Display()), domain.SeverityInfo)

	repos, err := s.finder.Discover(ctx, root, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to discover repositories: %w", err)
	}
	s.publisher.Publish(sessionID, fmt.Sprintf("Discovery finished: found %d git repositories", len(repos)), domain.SeverityInfo)

	if len(repos) == 0 {
		logging.Logger.Info("No repositories found", "root", root)
		s.publisher.Publish(sessionID, "No git repositories found", domain.SeverityWarning)
		s.publisher.Publish(sessionID, "Analysis complete", domain.SeveritySuccess)
		return domain.NewScanResult(nil), nil
	}

	s.publisher.Publish(sessionID, separator, domain.SeverityInfo)
	s.publisher.Publish(sessionID, "Starting detailed analysis", domain.SeverityInfo)

	reports := make([]domain.RepositoryReport, 0, len(repos))
	for i, ref := range repos {
		s.publisher.Publish(sessionID, fmt.Sprintf("[%d/%d] %s", i+1, len(repos), ref.Name), domain.SeverityInfo)
		reports = append(reports, s.analyzer.Analyze(ctx, ref, scope, sessionID))
	}

	result := domain.NewScanResult(reports)
	s.publishSummary(sessionID, result.Totals)
	s.publisher.Publish(sessionID, "All analysis tasks completed", domain.SeveritySuccess)

	logging.Logger.Info("Scan finished",
		"root", root,
		"repositories", result.Totals.RepositoryCount,
		"contributors", result.Totals.ContributorCount,
		"total_changes", result.Totals.TotalChanges())
	return result, nil
}

// ReanalyzeOne re-runs the analysis of a single repository. It holds no state:
// callers replace the matching report in their own collection and refold totals.
func (s *ScanService) ReanalyzeOne(ctx context.Context, repoPath string, scope domain.BranchScope, sessionID string) (domain.RepositoryReport, error) {
	path, err := CheckPath(repoPath)
	if err != nil {
		s.publisher.Publish(sessionID, fmt.Sprintf("Repository path does not exist: %s", repoPath), domain.SeverityError)
		return domain.RepositoryReport{}, err
	}

	ref := domain.NewRepositoryRef(path)
	s.publisher.Publish(sessionID, fmt.Sprintf("Re-analyzing repository: %s (%s)", ref.Name, scope.Display()), domain.SeverityInfo)

	report := s.analyzer.Analyze(ctx, ref, scope, sessionID)

	s.publisher.Publish(sessionID, fmt.Sprintf("Re-analysis of %s complete", ref.Name), domain.SeveritySuccess)
	return report, nil
}

func (s *ScanService) publishSummary(sessionID string, totals domain.ScanTotals) {
	lines := []string{
		separator,
		"Overall statistics",
		separator,
		fmt.Sprintf("Repositories: %s", domain.FormatNumber(totals.RepositoryCount)),
		fmt.Sprintf("Contributors: %s", domain.FormatNumber(totals.ContributorCount)),
		fmt.Sprintf("Lines added: %s", domain.FormatNumber(totals.TotalAdded)),
		fmt.Sprintf("Lines deleted: %s", domain.FormatNumber(totals.TotalDeleted)),
		fmt.Sprintf("Total changes: %s", domain.FormatNumber(totals.TotalChanges())),
		fmt.Sprintf("Total commits: %s", domain.FormatNumber(totals.TotalCommits)),
		separator,
	}
	for _, line := range lines {
		s.publisher.Publish(sessionID, line, domain.SeverityInfo)
	}
}

// CheckPath validates that path names an accessible directory and returns it absolute
func CheckPath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", domain.ErrPathNotFound)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", domain.ErrPathNotFound, path, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", domain.ErrPathNotFound, abs)
		}
		return "", fmt.Errorf("%w: %s: %v", domain.ErrPathNotFound, abs, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", domain.ErrNotADirectory, abs)
	}
	return abs, nil
}
