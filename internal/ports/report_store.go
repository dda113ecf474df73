package ports

import (
	"context"

	"codetally/internal/domain"
)

// ReportReader reads a held report collection
type ReportReader interface {
	List(ctx context.Context, scanID string) ([]domain.RepositoryReport, error)
}

// ReportWriter replaces a held report collection or one of its entries
type ReportWriter interface {
	Replace(ctx context.Context, scanID string, report domain.RepositoryReport) error
	ReplaceAll(ctx context.Context, scanID string, reports []domain.RepositoryReport) error
}

// ReportStore is the composite interface
type ReportStore interface {
	ReportReader
	ReportWriter
	Close() error
}
