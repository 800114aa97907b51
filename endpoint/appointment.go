package endpoint

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ihvn/medix/dto"
	"github.com/ihvn/medix/repository"
	"github.com/ihvn/medix/util"
)

// BookAppointmentForm godoc
// @Summary      Show appointment booking form for a doctor
// @Description  Returns a draft appointment pre-populated with the doctor reference
// @Tags         Appointment
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=dto.AppointmentDTO} "Appointment form"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /Doctors/BookAppointment/{id} [get]
func BookAppointmentForm(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	doctor, err := repository.NewDoctorRepository(db).Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Doctor not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve doctor", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointment form",
		Data: dto.AppointmentDTO{DoctorID: doctor.ID},
	})
}

func validateAppointmentForm(a dto.AppointmentDTO) error {
	if a.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if a.DoctorID == 0 {
		return fmt.Errorf("doctor_id is required")
	}
	if a.AppointmentDateTime == "" {
		return fmt.Errorf("appointment_date_time is required")
	}
	if !validAppointmentTime(a.AppointmentDateTime) {
		return fmt.Errorf("appointment_date_time must use layout %s", appointmentTimeLayout)
	}
	return nil
}

// BookAppointment godoc
// @Summary      Book an appointment with a doctor
// @Description  Validate and persist an appointment. Overlapping bookings for the same doctor are not detected.
// @Tags         Appointment
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        request body dto.AppointmentDTO true "Appointment information"
// @Success      303 "Redirect to doctor list"
// @Failure      400 {object} util.APIResponse "Invalid appointment, submitted values echoed back"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Doctors/BookAppointment/{id} [post]
func BookAppointment(c *gin.Context) {
	if _, ok := parseIDParam(c); !ok {
		return
	}

	form := dto.AppointmentDTO{}
	if err := c.ShouldBindJSON(&form); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	if err := validateAppointmentForm(form); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:  "Appointment is missing required fields",
			Err:  err,
			Data: form,
		})
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	appointment := dto.AppointmentFromDTO(form)
	appointment.ID = 0 // identity is store-assigned
	err := repository.NewAppointmentRepository(db).Add(c.Request.Context(), &appointment)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, doctorListRoute)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrValidation):
		util.CallUserError(c, util.APIErrorParams{Msg: "Appointment references missing records", Err: err, Data: form})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to book appointment", Err: err})
	}
}

// ListAppointments godoc
// @Summary      List appointments
// @Description  Get every appointment, optionally filtered by doctor
// @Tags         Appointment
// @Produce      json
// @Param        doctor_id query int false "Filter by doctor"
// @Success      200 {object} util.APIResponse{data=object} "Appointments retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Appointments [get]
func ListAppointments(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	repo := repository.NewAppointmentRepository(db)

	var appointments []dto.AppointmentDTO
	if doctorID, ok := parseDoctorFilter(c); ok && doctorID > 0 {
		found, err := repo.ListByDoctor(c.Request.Context(), doctorID)
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve appointments", Err: err})
			return
		}
		appointments = dto.AppointmentsToDTOs(found)
	} else {
		found, err := repo.List(c.Request.Context())
		if err != nil {
			util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve appointments", Err: err})
			return
		}
		appointments = dto.AppointmentsToDTOs(found)
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Appointments retrieved",
		Data: map[string]interface{}{"total": len(appointments), "appointments": appointments},
	})
}
