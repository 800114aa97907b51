package dto

import "github.com/ihvn/medix/model"

// DoctorDTO is the transport shape for a doctor. It carries the version
// marker so edit forms can round-trip it for the concurrency check.
// @Description Doctor transport object
type DoctorDTO struct {
	ID           uint   `json:"id" example:"1"`
	FirstName    string `json:"first_name" example:"Grace"`
	LastName     string `json:"last_name" example:"Hopper"`
	PhoneNumber  string `json:"phone_number" example:"081234567890"`
	EmailAddress string `json:"email_address" example:"dr.grace@example.com"`
	Specialty    string `json:"specialty" example:"Cardiology"`
	Version      uint   `json:"version" example:"1"`
}

// DoctorToDTO converts a doctor entity to its transport object.
func DoctorToDTO(doctor *model.Doctor) *DoctorDTO {
	if doctor == nil {
		return nil
	}
	return &DoctorDTO{
		ID:           doctor.ID,
		FirstName:    doctor.FirstName,
		LastName:     doctor.LastName,
		PhoneNumber:  doctor.PhoneNumber,
		EmailAddress: doctor.EmailAddress,
		Specialty:    doctor.Specialty,
		Version:      doctor.Version,
	}
}

// DoctorsToDTOs converts a slice of doctor entities to transport objects.
func DoctorsToDTOs(doctors []model.Doctor) []DoctorDTO {
	dtos := make([]DoctorDTO, len(doctors))
	for i := range doctors {
		dtos[i] = *DoctorToDTO(&doctors[i])
	}
	return dtos
}

// DoctorFromDTO converts a bound form back to an entity.
func DoctorFromDTO(d DoctorDTO) model.Doctor {
	doctor := model.Doctor{
		FirstName:    d.FirstName,
		LastName:     d.LastName,
		PhoneNumber:  d.PhoneNumber,
		EmailAddress: d.EmailAddress,
		Specialty:    d.Specialty,
		Version:      d.Version,
	}
	doctor.ID = d.ID
	return doctor
}
