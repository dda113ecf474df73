package domain

import (
	"encoding/json"
	"sort"
)

// RepositoryReport is the analysis result for one repository
type RepositoryReport struct {
	Branches     []string
	Contributors []AuthorStat
	Ref          RepositoryRef
	Scope        BranchScope
}

// NewRepositoryReport builds a report with contributors ordered by SortContributors
func NewRepositoryReport(ref RepositoryRef, scope BranchScope, branches []string, contributors []AuthorStat) RepositoryReport {
	if branches == nil {
		branches = []string{}
	}
	sorted := make([]AuthorStat, len(contributors))
	copy(sorted, contributors)
	SortContributors(sorted)
	return RepositoryReport{
		Branches:     branches,
		Contributors: sorted,
		Ref:          ref,
		Scope:        scope,
	}
}

// SortContributors orders stats by TotalChanges descending. Ties keep their input order.
func SortContributors(stats []AuthorStat) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalChanges() > stats[j].TotalChanges()
	})
}

// ReplaceReport returns a copy of reports where the entry with the same path as report
// is replaced in place. The report is appended when no entry matches.
func ReplaceReport(reports []RepositoryReport, report RepositoryReport) []RepositoryReport {
	result := make([]RepositoryReport, 0, len(reports)+1)
	replaced := false
	for _, r := range reports {
		if r.Ref.Path == report.Ref.Path {
			result = append(result, report)
			replaced = true
			continue
		}
		result = append(result, r)
	}
	if !replaced {
		result = append(result, report)
	}
	return result
}

type repositoryReportJSON struct {
	Name         string       `json:"name"`
	Path         string       `json:"path"`
	Branch       string       `json:"branch"`
	BranchScope  string       `json:"branchScope"`
	Branches     []string     `json:"branches"`
	Contributors []AuthorStat `json:"contributors"`
}

// MarshalJSON renders the report in the shape consumed by API clients
func (r RepositoryReport) MarshalJSON() ([]byte, error) {
	branches := r.Branches
	if branches == nil {
		branches = []string{}
	}
	contributors := r.Contributors
	if contributors == nil {
		contributors = []AuthorStat{}
	}
	return json.Marshal(repositoryReportJSON{
		Name:         r.Ref.Name,
		Path:         r.Ref.Path,
		Branch:       r.Scope.Display(),
		BranchScope:  r.Scope.Value(),
		Branches:     branches,
		Contributors: contributors,
	})
}

// UnmarshalJSON restores a report from its API shape
func (r *RepositoryReport) UnmarshalJSON(data []byte) error {
	var raw repositoryReportJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	scope, err := ParseBranchScope(raw.BranchScope)
	if err != nil {
		return err
	}
	*r = RepositoryReport{
		Branches:     raw.Branches,
		Contributors: raw.Contributors,
		Ref:          RepositoryRef{Name: raw.Name, Path: raw.Path},
		Scope:        scope,
	}
	return nil
}
