package domain

import "encoding/json"

// ScanTotals aggregates a set of repository reports
type ScanTotals struct {
	ContributorCount int
	RepositoryCount  int
	TotalAdded       int
	TotalCommits     int
	TotalDeleted     int
}

// TotalChanges is always TotalAdded + TotalDeleted
func (t ScanTotals) TotalChanges() int {
	return t.TotalAdded + t.TotalDeleted
}

// FoldTotals sums every report. ContributorCount counts distinct author names across all reports.
func FoldTotals(reports []RepositoryReport) ScanTotals {
	authors := make(map[string]struct{})
	totals := ScanTotals{RepositoryCount: len(reports)}
	for _, report := range reports {
		for _, c := range report.Contributors {
			authors[c.Author] = struct{}{}
			totals.TotalAdded += c.Added
			totals.TotalDeleted += c.Deleted
			totals.TotalCommits += c.Commits
		}
	}
	totals.ContributorCount = len(authors)
	return totals
}

type scanTotalsJSON struct {
	RepositoryCount  int `json:"repositoryCount"`
	ContributorCount int `json:"contributorCount"`
	TotalAdded       int `json:"totalAdded"`
	TotalDeleted     int `json:"totalDeleted"`
	TotalChanges     int `json:"totalChanges"`
	TotalCommits     int `json:"totalCommits"`
}

// MarshalJSON emits totalChanges alongside the stored sums
func (t ScanTotals) MarshalJSON() ([]byte, error) {
	return json.Marshal(scanTotalsJSON{
		RepositoryCount:  t.RepositoryCount,
		ContributorCount: t.ContributorCount,
		TotalAdded:       t.TotalAdded,
		TotalDeleted:     t.TotalDeleted,
		TotalChanges:     t.TotalChanges(),
		TotalCommits:     t.TotalCommits,
	})
}

// ScanOutcome distinguishes a completed scan from one that found nothing to analyze
type ScanOutcome string

const (
	OutcomeCompleted      ScanOutcome = "completed"
	OutcomeNoRepositories ScanOutcome = "no_repositories"
)

// ScanResult is the output of a full scan
type ScanResult struct {
	Outcome ScanOutcome
	Reports []RepositoryReport
	Totals  ScanTotals
}

// NewScanResult folds totals and selects the outcome from the report count
func NewScanResult(reports []RepositoryReport) *ScanResult {
	if reports == nil {
		reports = []RepositoryReport{}
	}
	outcome := OutcomeCompleted
	if len(reports) == 0 {
		outcome = OutcomeNoRepositories
	}
	return &ScanResult{
		Outcome: outcome,
		Reports: reports,
		Totals:  FoldTotals(reports),
	}
}
