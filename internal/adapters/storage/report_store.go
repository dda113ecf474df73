package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"codetally/internal/domain"
	"codetally/internal/logging"
	"codetally/internal/ports"
)

// ReportStore implements ports.ReportStore on an in-memory SQLite database.
// Nothing survives the process. At most maxScans scans are held; storing a new
// one evicts the oldest.
type ReportStore struct {
	db       *gorm.DB
	maxScans int
}

// Verify interface compliance at compile time
var _ ports.ReportStore = (*ReportStore)(nil)

// NewReportStore opens a private in-memory database and migrates the schema.
// A maxScans of zero or less keeps every scan.
func NewReportStore(maxScans int) (*ReportStore, error) {
	dsn := fmt.Sprintf("file:codetally-%s?mode=memory&cache=shared&_foreign_keys=on", uuid.New().String())

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open report database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get report database handle: %w", err)
	}
	// One connection keeps the shared-cache database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&ScanModel{}, &ReportModel{}, &ContributorModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate report schema: %w", err)
	}

	logging.Logger.Debug("Report store opened", "dsn", dsn, "max_scans", maxScans)
	return &ReportStore{db: db, maxScans: maxScans}, nil
}

// Close closes the database connection. The in-memory data is discarded.
func (s *ReportStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ReplaceAll implements ReportWriter.ReplaceAll. The scan's previous reports are discarded.
func (s *ReportStore) ReplaceAll(ctx context.Context, scanID string, reports []domain.RepositoryReport) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&ScanModel{ID: scanID}).Error; err != nil && !isConstraintViolation(err) {
			return fmt.Errorf("failed to register scan %s: %w", scanID, err)
		}

		if err := deleteReports(tx, "scan_id = ?", scanID); err != nil {
			return err
		}

		for i, report := range reports {
			model := reportToModel(scanID, i, report)
			if err := tx.Create(&model).Error; err != nil {
				return fmt.Errorf("failed to store report %s: %w", report.Ref.Path, err)
			}
		}

		logging.Logger.Debug("Stored scan reports", "scan_id", scanID, "count", len(reports))
		return s.evictOldScans(tx)
	})
}

// evictOldScans drops every scan beyond the newest maxScans
func (s *ReportStore) evictOldScans(tx *gorm.DB) error {
	if s.maxScans <= 0 {
		return nil
	}
	var ids []string
	if err := tx.Model(&ScanModel{}).Order("created_at DESC, rowid DESC").Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("failed to list scans: %w", err)
	}
	if len(ids) <= s.maxScans {
		return nil
	}
	evicted := ids[s.maxScans:]
	if err := deleteReports(tx, "scan_id IN ?", evicted); err != nil {
		return err
	}
	if err := tx.Where("id IN ?", evicted).Delete(&ScanModel{}).Error; err != nil {
		return fmt.Errorf("failed to evict scans: %w", err)
	}
	logging.Logger.Debug("Evicted old scans", "count", len(evicted), "max_scans", s.maxScans)
	return nil
}

// Replace implements ReportWriter.Replace. A report with the same path keeps its
// position; a new path is appended.
func (s *ReportStore) Replace(ctx context.Context, scanID string, report domain.RepositoryReport) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureScan(tx, scanID); err != nil {
			return err
		}

		var existing ReportModel
		err := tx.Where("scan_id = ? AND path = ?", scanID, report.Ref.Path).First(&existing).Error
		position := 0
		switch {
		case err == nil:
			position = existing.Position
			if err := deleteReports(tx, "id = ?", existing.ID); err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			var maxPosition sql.NullInt64
			if err := tx.Model(&ReportModel{}).Where("scan_id = ?", scanID).
				Select("MAX(position)").Row().Scan(&maxPosition); err != nil {
				return fmt.Errorf("failed to read report positions: %w", err)
			}
			if maxPosition.Valid {
				position = int(maxPosition.Int64) + 1
			}
		default:
			return fmt.Errorf("failed to look up report %s: %w", report.Ref.Path, err)
		}

		model := reportToModel(scanID, position, report)
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to store report %s: %w", report.Ref.Path, err)
		}

		logging.Logger.Debug("Replaced scan report", "scan_id", scanID, "path", report.Ref.Path, "position", position)
		return nil
	})
}

// List implements ReportReader.List
func (s *ReportStore) List(ctx context.Context, scanID string) ([]domain.RepositoryReport, error) {
	var models []ReportModel
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureScan(tx, scanID); err != nil {
			return err
		}
		return tx.Where("scan_id = ?", scanID).
			Order("position ASC").
			Preload("Contributors", func(db *gorm.DB) *gorm.DB {
				return db.Order("position ASC")
			}).
			Find(&models).Error
	})
	if err != nil {
		return nil, err
	}

	reports := make([]domain.RepositoryReport, 0, len(models))
	for _, m := range models {
		report, err := reportModelToDomain(m)
		if err != nil {
			return nil, fmt.Errorf("stored report %s is invalid: %w", m.Path, err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func ensureScan(tx *gorm.DB, scanID string) error {
	var scan ScanModel
	if err := tx.Where("id = ?", scanID).First(&scan).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrScanNotFound, scanID)
		}
		return fmt.Errorf("failed to load scan %s: %w", scanID, err)
	}
	return nil
}

// deleteReports removes matching reports together with their contributors
func deleteReports(tx *gorm.DB, query string, args ...any) error {
	var ids []uint
	if err := tx.Model(&ReportModel{}).Where(query, args...).Pluck("id", &ids).Error; err != nil {
		return fmt.Errorf("failed to find reports: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("report_id IN ?", ids).Delete(&ContributorModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete contributors: %w", err)
	}
	if err := tx.Where("id IN ?", ids).Delete(&ReportModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete reports: %w", err)
	}
	return nil
}

// isConstraintViolation reports whether err is a SQLite constraint failure
func isConstraintViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
