package models

import "time"

// PropertyValuation represents the property_valuations table
type PropertyValuation struct {
	ValuationID               uint       `gorm:"primaryKey;column:valuation_id" json:"valuation_id"`
	PropertyAddress           string     `gorm:"column:property_address" json:"property_address"`
	PropertyType              string     `gorm:"column:property_type" json:"property_type"`
	AssessedValue             float64    `gorm:"column:assessed_value" json:"assessed_value"`
	MarketValue               float64    `gorm:"column:market_value" json:"market_value"`
	PostRenewalEstimatedValue float64    `gorm:"column:post_renewal_estimated_value" json:"post_renewal_estimated_value"`
	PropertyArea              float64    `gorm:"column:property_area" json:"property_area"`
	NumberOfRooms             int        `gorm:"column:number_of_rooms" json:"number_of_rooms"`
	YearBuilt                 int        `gorm:"column:year_built" json:"year_built"`
	ValuationNotes            *string    `gorm:"column:valuation_notes" json:"valuation_notes,omitempty"`
	ValuationDate             time.Time  `gorm:"column:valuation_date" json:"valuation_date"`
	ValuationMethod           *string    `gorm:"column:valuation_method" json:"valuation_method,omitempty"`
	ValuedBy                  *string    `gorm:"column:valued_by" json:"valued_by,omitempty"`
	ProjectID                 uint       `gorm:"column:project_id" json:"project_id"`
	CreatedAt                 time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt                 *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`
}

// TableName overrides the table name for PropertyValuation
func (PropertyValuation) TableName() string {
	return "property_valuations"
}
