package storage

import "time"

// ScanModel is the GORM model for the scans table
type ScanModel struct {
	CreatedAt time.Time
	ID        string `gorm:"primaryKey"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ScanModel) TableName() string { return "scans" }

// ReportModel is the GORM model for repository reports. Totals are never stored.
type ReportModel struct {
	Branches     []string           `gorm:"serializer:json"`
	Contributors []ContributorModel `gorm:"foreignKey:ReportID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"not null;default:''"`
	Path         string `gorm:"not null;uniqueIndex:idx_scan_path"`
	Position     int    `gorm:"not null;default:0"`
	ScanID       string `gorm:"not null;uniqueIndex:idx_scan_path;index:idx_scan"`
	Scope        string `gorm:"not null"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (ReportModel) TableName() string { return "reports" }

// ContributorModel is the GORM model for one author's stats within a report
type ContributorModel struct {
	Added    int    `gorm:"not null;default:0"`
	Author   string `gorm:"not null"`
	Commits  int    `gorm:"not null;default:0"`
	Deleted  int    `gorm:"not null;default:0"`
	ID       uint   `gorm:"primaryKey"`
	Position int    `gorm:"not null;default:0"`
	ReportID uint   `gorm:"not null;index:idx_report"`
}

// TableName specifies the table name for GORM
func (ContributorModel) TableName() string { return "contributors" }
