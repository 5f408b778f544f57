package models

import (
	"time"
)

// Backend roles accepted by the authorization middleware.
const (
	RoleAdministrator = "Administrator"
	RoleManager       = "Manager"
	RoleProfessional  = "Professional"
)

type User struct {
	UserID      uint       `gorm:"primaryKey;column:user_id" json:"user_id"`
	Username    string     `gorm:"column:username;unique" json:"username"`
	Email       string     `gorm:"column:email;unique" json:"email"`
	Password    string     `gorm:"column:password" json:"-"`
	Role        string     `gorm:"column:role" json:"role"`
	PhoneNumber *string    `gorm:"column:phone_number" json:"phone_number,omitempty"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	LastLogin   *time.Time `gorm:"column:last_login" json:"last_login,omitempty"`
}

// TableName overrides
func (User) TableName() string {
	return "users"
}
