package models

import "time"

// Customer represents the customers table. CustomerType is free form
// ("Resident", "Business", "Government", ...).
type Customer struct {
	CustomerID           uint       `gorm:"primaryKey;column:customer_id" json:"customer_id"`
	FirstName            string     `gorm:"column:first_name" json:"first_name"`
	LastName             string     `gorm:"column:last_name" json:"last_name"`
	Email                *string    `gorm:"column:email" json:"email,omitempty"`
	Phone                *string    `gorm:"column:phone" json:"phone,omitempty"`
	Address              *string    `gorm:"column:address" json:"address,omitempty"`
	City                 *string    `gorm:"column:city" json:"city,omitempty"`
	PostalCode           *string    `gorm:"column:postal_code" json:"postal_code,omitempty"`
	IdentificationNumber *string    `gorm:"column:identification_number" json:"identification_number,omitempty"`
	CustomerType         string     `gorm:"column:customer_type" json:"customer_type"`
	CreatedAt            time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            *time.Time `gorm:"column:updated_at" json:"updated_at,omitempty"`

	Projects []Project `gorm:"many2many:project_customers;constraint:OnDelete:CASCADE" json:"projects,omitempty"`
}

// TableName overrides the table name for Customer
func (Customer) TableName() string {
	return "customers"
}
