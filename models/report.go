package models

import "time"

// Report status values.
const (
	ReportStatusDraft     = "Draft"
	ReportStatusPublished = "Published"
	ReportStatusArchived  = "Archived"
)

// Report represents the reports table. ReportType is a business label
// (Progress, Financial, Environmental, Social Impact). The project reference
// is nullable and deliberately not cascade-configured, so a report can
// outlive its project with a dangling project_id.
type Report struct {
	ReportID    uint       `gorm:"primaryKey;column:report_id" json:"report_id"`
	Title       string     `gorm:"column:title" json:"title"`
	Description *string    `gorm:"column:description" json:"description,omitempty"`
	ReportType  string     `gorm:"column:report_type" json:"report_type"`
	FilePath    *string    `gorm:"column:file_path" json:"file_path,omitempty"`
	FileType    *string    `gorm:"column:file_type" json:"file_type,omitempty"`
	FileSize    *int64     `gorm:"column:file_size" json:"file_size,omitempty"`
	ReportDate  time.Time  `gorm:"column:report_date" json:"report_date"`
	Status      string     `gorm:"column:status" json:"status"`
	Content     *string    `gorm:"column:content" json:"content,omitempty"`
	Author      *string    `gorm:"column:author" json:"author,omitempty"`
	ProjectID   *uint      `gorm:"column:project_id" json:"project_id,omitempty"`
	CreatedBy   *uint      `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

// TableName overrides the table name for Report
func (Report) TableName() string {
	return "reports"
}
