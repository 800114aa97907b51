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

const patientListRoute = "/Patients"

// ListPatients godoc
// @Summary      List all patients
// @Description  Get every registered patient
// @Tags         Patient
// @Produce      json
// @Success      200 {object} util.APIResponse{data=object} "Patients retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Patients [get]
func ListPatients(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	patients, err := repository.NewPatientRepository(db).List(c.Request.Context())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve patients",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patients retrieved",
		Data: map[string]interface{}{"total": len(patients), "patients": dto.PatientsToDTOs(patients)},
	})
}

// GetPatientDetails godoc
// @Summary      Get patient details
// @Description  Get detailed information about a specific patient
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=dto.PatientDTO} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /Patients/Details/{id} [get]
func GetPatientDetails(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	patient, err := repository.NewPatientRepository(db).Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve patient", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient retrieved",
		Data: dto.PatientToDTO(patient),
	})
}

// NewPatientForm godoc
// @Summary      Show blank patient form
// @Description  Returns an empty patient transport object for the create form
// @Tags         Patient
// @Produce      json
// @Success      200 {object} util.APIResponse{data=dto.PatientDTO} "Patient form"
// @Router       /Patients/Create [get]
func NewPatientForm(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Patient form",
		Data: dto.PatientDTO{},
	})
}

func validatePatientForm(p dto.PatientDTO) error {
	if p.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if p.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	return nil
}

// CreatePatient godoc
// @Summary      Create a new patient
// @Description  Validate and persist a patient, then redirect to the list
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        request body dto.PatientDTO true "Patient information"
// @Success      303 "Redirect to patient list"
// @Failure      400 {object} util.APIResponse "Invalid patient, submitted values echoed back"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Patients/Create [post]
func CreatePatient(c *gin.Context) {
	form := dto.PatientDTO{}
	if err := c.ShouldBindJSON(&form); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	form.FirstName = util.NormalizeName(form.FirstName)
	form.LastName = util.NormalizeName(form.LastName)
	if err := validatePatientForm(form); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:  "Patient is missing required fields",
			Err:  err,
			Data: form,
		})
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	patient := dto.PatientFromDTO(form)
	patient.ID = 0 // identity is store-assigned
	if err := repository.NewPatientRepository(db).Add(c.Request.Context(), &patient); err != nil {
		if errors.Is(err, repository.ErrValidation) {
			util.CallUserError(c, util.APIErrorParams{Msg: "Patient is missing required fields", Err: err, Data: form})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create patient", Err: err})
		return
	}

	c.Redirect(http.StatusSeeOther, patientListRoute)
}

// EditPatientForm godoc
// @Summary      Show patient edit form
// @Description  Returns the patient transport object populated for editing
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=dto.PatientDTO} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /Patients/Edit/{id} [get]
func EditPatientForm(c *gin.Context) {
	GetPatientDetails(c)
}

// EditPatient godoc
// @Summary      Update a patient
// @Description  Validate and persist patient changes with an optimistic concurrency check
// @Tags         Patient
// @Accept       json
// @Produce      json
// @Param        id path int true "Patient ID"
// @Param        request body dto.PatientDTO true "Updated patient information"
// @Success      303 "Redirect to patient list"
// @Failure      400 {object} util.APIResponse "Invalid patient, submitted values echoed back"
// @Failure      404 {object} util.APIResponse "Patient not found or id mismatch"
// @Failure      500 {object} util.APIResponse "Unresolvable concurrency conflict"
// @Router       /Patients/Edit/{id} [post]
func EditPatient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	form := dto.PatientDTO{}
	if err := c.ShouldBindJSON(&form); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	// The route id must match the submitted id before anything touches the
	// store. Reported as not found so tampered ids look like missing records.
	if form.ID != id {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Patient not found",
			Err: fmt.Errorf("submitted id %d does not match route id %d", form.ID, id),
		})
		return
	}

	form.FirstName = util.NormalizeName(form.FirstName)
	form.LastName = util.NormalizeName(form.LastName)
	if err := validatePatientForm(form); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:  "Patient is missing required fields",
			Err:  err,
			Data: form,
		})
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	patient := dto.PatientFromDTO(form)
	err := repository.NewPatientRepository(db).Update(c.Request.Context(), &patient)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, patientListRoute)
	case errors.Is(err, repository.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Patient not found", Err: err})
	case errors.Is(err, repository.ErrValidation):
		util.CallUserError(c, util.APIErrorParams{Msg: "Patient is missing required fields", Err: err, Data: form})
	case errors.Is(err, repository.ErrConflict):
		util.CallServerError(c, util.APIErrorParams{Msg: "Patient was modified by another request", Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update patient", Err: err})
	}
}

// ConfirmDeletePatient godoc
// @Summary      Show patient delete confirmation
// @Description  Returns the patient about to be deleted
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      200 {object} util.APIResponse{data=dto.PatientDTO} "Patient retrieved"
// @Failure      404 {object} util.APIResponse "Patient not found"
// @Router       /Patients/Delete/{id} [get]
func ConfirmDeletePatient(c *gin.Context) {
	GetPatientDetails(c)
}

// DeletePatient godoc
// @Summary      Delete a patient
// @Description  Delete a patient by ID; deleting a missing patient succeeds
// @Tags         Patient
// @Produce      json
// @Param        id path int true "Patient ID"
// @Success      303 "Redirect to patient list"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Patients/Delete/{id} [post]
func DeletePatient(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	if err := repository.NewPatientRepository(db).Delete(c.Request.Context(), id); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete patient", Err: err})
		return
	}

	c.Redirect(http.StatusSeeOther, patientListRoute)
}
