package models

import "time"

// Tender status values. Transitions between them are validated by
// services.TenderService; the stored column only ever holds one of these.
const (
	TenderStatusDraft     = "Draft"
	TenderStatusPublished = "Published"
	TenderStatusClosed    = "Closed"
	TenderStatusAwarded   = "Awarded"
	TenderStatusCancelled = "Cancelled"
)

// Tender represents the tenders table. The parent Project relation is never
// serialized directly (the graph is circular); handlers flatten it into
// project_id + project_name.
type Tender struct {
	TenderID               uint       `gorm:"primaryKey;column:tender_id" json:"tender_id"`
	Title                  string     `gorm:"column:title" json:"title"`
	Description            *string    `gorm:"column:description" json:"description,omitempty"`
	ReleaseDate            time.Time  `gorm:"column:release_date" json:"release_date"`
	SubmissionDeadline     time.Time  `gorm:"column:submission_deadline" json:"submission_deadline"`
	EstimatedValue         float64    `gorm:"column:estimated_value" json:"estimated_value"`
	Status                 string     `gorm:"column:status" json:"status"`
	AwardedTo              *string    `gorm:"column:awarded_to" json:"awarded_to,omitempty"`
	AwardedAmount          *float64   `gorm:"column:awarded_amount" json:"awarded_amount,omitempty"`
	AwardedDate            *time.Time `gorm:"column:awarded_date" json:"awarded_date,omitempty"`
	RequiredQualifications *string    `gorm:"column:required_qualifications" json:"required_qualifications,omitempty"`
	EvaluationCriteria     *string    `gorm:"column:evaluation_criteria" json:"evaluation_criteria,omitempty"`
	ProjectID              uint       `gorm:"column:project_id" json:"project_id"`
	CreatedBy              *uint      `gorm:"column:created_by" json:"created_by,omitempty"`
	CreatedAt              time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt              *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`

	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
	Creator *User   `gorm:"foreignKey:CreatedBy" json:"-"`
}

// TableName overrides the table name for Tender
func (Tender) TableName() string {
	return "tenders"
}
