package model

import "gorm.io/gorm"

// Encounter represents a clinical encounter for a patient.
// Symptoms and vital signs belong exclusively to their encounter and are
// removed together with it.
// @Description Clinical encounter information
type Encounter struct {
	gorm.Model
	PatientID     uint        `json:"patient_id" gorm:"column:patient_id;not null;index" example:"3"`
	EncounterDate string      `json:"encounter_date" gorm:"column:encounter_date;not null" example:"2024-05-01"`
	Symptoms      []Symptom   `json:"symptoms" gorm:"constraint:OnDelete:CASCADE"`
	VitalSigns    []VitalSign `json:"vital_signs" gorm:"constraint:OnDelete:CASCADE"`
}

// Symptom is a single reported symptom recorded during an encounter
// @Description Symptom information
type Symptom struct {
	gorm.Model
	EncounterID uint   `json:"encounter_id" gorm:"column:encounter_id;not null;index" example:"1"`
	Name        string `json:"name" gorm:"column:name;not null" example:"Fever"`
	Note        string `json:"note" gorm:"column:note" example:"Started two days ago"`
}

// VitalSign is a single measurement recorded during an encounter
// @Description Vital sign information
type VitalSign struct {
	gorm.Model
	EncounterID uint   `json:"encounter_id" gorm:"column:encounter_id;not null;index" example:"1"`
	Name        string `json:"name" gorm:"column:name;not null" example:"Blood pressure"`
	Value       string `json:"value" gorm:"column:value;not null" example:"120/80"`
	Unit        string `json:"unit" gorm:"column:unit" example:"mmHg"`
}
