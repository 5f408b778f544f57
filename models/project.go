package models

import "time"

// Project status values.
const (
	ProjectStatusPlanning   = "Planning"
	ProjectStatusInProgress = "InProgress"
	ProjectStatusCompleted  = "Completed"
	ProjectStatusOnHold     = "OnHold"
	ProjectStatusDelayed    = "Delayed"
	ProjectStatusPending    = "Pending"
)

// Project represents the projects table
type Project struct {
	ProjectID        uint       `gorm:"primaryKey;column:project_id" json:"project_id"`
	ProjectName      string     `gorm:"column:project_name" json:"project_name"`
	Description      *string    `gorm:"column:description" json:"description,omitempty"`
	Location         *string    `gorm:"column:location" json:"location,omitempty"`
	City             *string    `gorm:"column:city" json:"city,omitempty"`
	Street           *string    `gorm:"column:street" json:"street,omitempty"`
	BuildingNumber   *string    `gorm:"column:building_number" json:"building_number,omitempty"`
	StartDate        time.Time  `gorm:"column:start_date" json:"start_date"`
	EndDate          *time.Time `gorm:"column:end_date" json:"end_date,omitempty"`
	Budget           float64    `gorm:"column:budget" json:"budget"`
	Status           string     `gorm:"column:status" json:"status"`
	TotalUnits       int        `gorm:"column:total_units" json:"total_units"`
	CurrentOccupancy int        `gorm:"column:current_occupancy" json:"current_occupancy"`
	LandArea         float64    `gorm:"column:land_area" json:"land_area"`
	BuildingArea     float64    `gorm:"column:building_area" json:"building_area"`
	CreatedAt        time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`

	// Relations. Documents, tenders and valuations are owned by the project
	// and removed with it; the customer link table cascades from both sides.
	Documents  []Document          `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Tenders    []Tender            `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"tenders,omitempty"`
	Valuations []PropertyValuation `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"valuations,omitempty"`
	Customers  []Customer          `gorm:"many2many:project_customers;constraint:OnDelete:CASCADE" json:"customers,omitempty"`
}

// TableName overrides the table name for Project
func (Project) TableName() string {
	return "projects"
}
