package dto

import "github.com/ihvn/medix/model"

// PatientDTO is the transport shape for a patient.
// @Description Patient transport object
type PatientDTO struct {
	ID          uint   `json:"id" example:"1"`
	FirstName   string `json:"first_name" example:"Ada"`
	LastName    string `json:"last_name" example:"Lovelace"`
	DateOfBirth string `json:"date_of_birth" example:"1815-12-10"`
	Address     string `json:"address" example:"123 Main St"`
	State       string `json:"state" example:"Abuja"`
	PhoneNumber string `json:"phone_number" example:"081234567890"`
	Gender      string `json:"gender" example:"F"`
	Version     uint   `json:"version" example:"1"`
}

// PatientToDTO converts a patient entity to its transport object.
func PatientToDTO(patient *model.Patient) *PatientDTO {
	if patient == nil {
		return nil
	}
	return &PatientDTO{
		ID:          patient.ID,
		FirstName:   patient.FirstName,
		LastName:    patient.LastName,
		DateOfBirth: patient.DateOfBirth,
		Address:     patient.Address,
		State:       patient.State,
		PhoneNumber: patient.PhoneNumber,
		Gender:      patient.Gender,
		Version:     patient.Version,
	}
}

// PatientsToDTOs converts a slice of patient entities to transport objects.
func PatientsToDTOs(patients []model.Patient) []PatientDTO {
	dtos := make([]PatientDTO, len(patients))
	for i := range patients {
		dtos[i] = *PatientToDTO(&patients[i])
	}
	return dtos
}

// PatientFromDTO converts a bound form back to an entity.
func PatientFromDTO(p PatientDTO) model.Patient {
	patient := model.Patient{
		FirstName:   p.FirstName,
		LastName:    p.LastName,
		DateOfBirth: p.DateOfBirth,
		Address:     p.Address,
		State:       p.State,
		PhoneNumber: p.PhoneNumber,
		Gender:      p.Gender,
		Version:     p.Version,
	}
	patient.ID = p.ID
	return patient
}
