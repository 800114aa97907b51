package dto

import "github.com/ihvn/medix/model"

// AppointmentDTO is the transport shape for an appointment.
// @Description Appointment transport object
type AppointmentDTO struct {
	ID                  uint   `json:"id" example:"1"`
	PatientID           uint   `json:"patient_id" example:"3"`
	DoctorID            uint   `json:"doctor_id" example:"5"`
	AppointmentDateTime string `json:"appointment_date_time" example:"2024-05-01T10:00:00"`
}

// AppointmentToDTO converts an appointment entity to its transport object.
func AppointmentToDTO(appointment *model.Appointment) *AppointmentDTO {
	if appointment == nil {
		return nil
	}
	return &AppointmentDTO{
		ID:                  appointment.ID,
		PatientID:           appointment.PatientID,
		DoctorID:            appointment.DoctorID,
		AppointmentDateTime: appointment.AppointmentDateTime,
	}
}

// AppointmentsToDTOs converts a slice of appointment entities to transport objects.
func AppointmentsToDTOs(appointments []model.Appointment) []AppointmentDTO {
	dtos := make([]AppointmentDTO, len(appointments))
	for i := range appointments {
		dtos[i] = *AppointmentToDTO(&appointments[i])
	}
	return dtos
}

// AppointmentFromDTO converts a bound booking form back to an entity.
func AppointmentFromDTO(a AppointmentDTO) model.Appointment {
	appointment := model.Appointment{
		PatientID:           a.PatientID,
		DoctorID:            a.DoctorID,
		AppointmentDateTime: a.AppointmentDateTime,
	}
	appointment.ID = a.ID
	return appointment
}
