package model

import "gorm.io/gorm"

// Patient represents a patient entity
// @Description Patient information
type Patient struct {
	gorm.Model
	FirstName   string `json:"first_name" gorm:"column:first_name;not null" example:"Ada"`
	LastName    string `json:"last_name" gorm:"column:last_name;not null" example:"Lovelace"`
	DateOfBirth string `json:"date_of_birth" gorm:"column:date_of_birth" example:"1815-12-10"`
	Address     string `json:"address" gorm:"column:address" example:"123 Main St"`
	State       string `json:"state" gorm:"column:state" example:"Abuja"`
	PhoneNumber string `json:"phone_number" gorm:"column:phone_number" example:"081234567890"`
	Gender      string `json:"gender" gorm:"column:gender" example:"F"`
	// Version is the optimistic concurrency marker, bumped on every update.
	Version uint `json:"version" gorm:"column:version;default:1" example:"1"`
}
