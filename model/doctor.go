package model

import "gorm.io/gorm"

// Doctor represents a doctor entity
// @Description Doctor information
type Doctor struct {
	gorm.Model
	FirstName    string `json:"first_name" gorm:"column:first_name;not null" example:"Grace"`
	LastName     string `json:"last_name" gorm:"column:last_name;not null" example:"Hopper"`
	PhoneNumber  string `json:"phone_number" gorm:"column:phone_number" example:"081234567890"`
	EmailAddress string `json:"email_address" gorm:"column:email_address" example:"dr.grace@example.com"`
	Specialty    string `json:"specialty" gorm:"column:specialty" example:"Cardiology"`
	// Version is the optimistic concurrency marker, bumped on every update.
	Version uint `json:"version" gorm:"column:version;default:1" example:"1"`
}
