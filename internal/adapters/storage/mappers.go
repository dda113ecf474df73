package storage

import (
	"codetally/internal/domain"
)

// reportToModel converts a domain report to its GORM model at the given position
func reportToModel(scanID string, position int, report domain.RepositoryReport) ReportModel {
	return ReportModel{
		Branches:     report.Branches,
		Contributors: contributorsToModels(report.Contributors),
		Name:         report.Ref.Name,
		Path:         report.Ref.Path,
		Position:     position,
		ScanID:       scanID,
		Scope:        report.Scope.Value(),
	}
}

func contributorsToModels(stats []domain.AuthorStat) []ContributorModel {
	models := make([]ContributorModel, 0, len(stats))
	for i, s := range stats {
		models = append(models, ContributorModel{
			Added:    s.Added,
			Author:   s.Author,
			Commits:  s.Commits,
			Deleted:  s.Deleted,
			Position: i,
		})
	}
	return models
}

// reportModelToDomain converts a ReportModel (GORM) to domain.RepositoryReport.
// Contributors are expected in stored position order.
func reportModelToDomain(m ReportModel) (domain.RepositoryReport, error) {
	scope, err := domain.ParseBranchScope(m.Scope)
	if err != nil {
		return domain.RepositoryReport{}, err
	}
	branches := m.Branches
	if branches == nil {
		branches = []string{}
	}
	stats := make([]domain.AuthorStat, 0, len(m.Contributors))
	for _, c := range m.Contributors {
		stats = append(stats, domain.AuthorStat{
			Added:   c.Added,
			Author:  c.Author,
			Commits: c.Commits,
			Deleted: c.Deleted,
		})
	}
	return domain.RepositoryReport{
		Branches:     branches,
		Contributors: stats,
		Ref:          domain.RepositoryRef{Name: m.Name, Path: m.Path},
		Scope:        scope,
	}, nil
}
