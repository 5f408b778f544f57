package models

import "time"

// Document represents the documents table. FilePath points at a file under
// the configured upload directory; DocumentType is a business label
// (Contract, Permit, Plan, ...), FileType the MIME type.
type Document struct {
	DocumentID   uint       `gorm:"primaryKey;column:document_id" json:"document_id"`
	DocumentName string     `gorm:"column:document_name" json:"document_name"`
	Description  *string    `gorm:"column:description" json:"description,omitempty"`
	FilePath     string     `gorm:"column:file_path" json:"file_path"`
	FileType     string     `gorm:"column:file_type" json:"file_type"`
	FileSize     int64      `gorm:"column:file_size" json:"file_size"`
	DocumentType string     `gorm:"column:document_type" json:"document_type"`
	UploadDate   time.Time  `gorm:"column:upload_date" json:"upload_date"`
	ExpiryDate   *time.Time `gorm:"column:expiry_date" json:"expiry_date,omitempty"`
	ProjectID    uint       `gorm:"column:project_id" json:"project_id"`
	UploadedBy   *uint      `gorm:"column:uploaded_by" json:"uploaded_by,omitempty"`

	Uploader *User `gorm:"foreignKey:UploadedBy" json:"-"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documents"
}
