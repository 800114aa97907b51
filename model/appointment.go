package model

import "gorm.io/gorm"

// Appointment represents a booked appointment between a patient and a doctor
// @Description Appointment information
type Appointment struct {
	gorm.Model
	PatientID uint `json:"patient_id" gorm:"column:patient_id;not null;index" example:"3"`
	DoctorID  uint `json:"doctor_id" gorm:"column:doctor_id;not null;index" example:"5"`
	// AppointmentDateTime uses the local wall-clock format 2006-01-02T15:04:05.
	AppointmentDateTime string `json:"appointment_date_time" gorm:"column:appointment_date_time;not null" example:"2024-05-01T10:00:00"`
}
