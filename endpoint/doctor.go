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

const doctorListRoute = "/Doctors"

// ListDoctors godoc
// @Summary      List all doctors
// @Description  Get every registered doctor
// @Tags         Doctor
// @Produce      json
// @Success      200 {object} util.APIResponse{data=object} "Doctors retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Doctors [get]
func ListDoctors(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	doctors, err := repository.NewDoctorRepository(db).List(c.Request.Context())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve doctors",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctors retrieved",
		Data: map[string]interface{}{"total": len(doctors), "doctors": dto.DoctorsToDTOs(doctors)},
	})
}

// GetDoctorDetails godoc
// @Summary      Get doctor details
// @Description  Get detailed information about a specific doctor
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=dto.DoctorDTO} "Doctor retrieved"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /Doctors/Details/{id} [get]
func GetDoctorDetails(c *gin.Context) {
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
		Msg:  "Doctor retrieved",
		Data: dto.DoctorToDTO(doctor),
	})
}

// NewDoctorForm godoc
// @Summary      Show blank doctor form
// @Description  Returns an empty doctor transport object for the create form
// @Tags         Doctor
// @Produce      json
// @Success      200 {object} util.APIResponse{data=dto.DoctorDTO} "Doctor form"
// @Router       /Doctors/Create [get]
func NewDoctorForm(c *gin.Context) {
	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Doctor form",
		Data: dto.DoctorDTO{},
	})
}

func validateDoctorForm(d dto.DoctorDTO) error {
	if d.FirstName == "" {
		return fmt.Errorf("first_name is required")
	}
	if d.LastName == "" {
		return fmt.Errorf("last_name is required")
	}
	return nil
}

// CreateDoctor godoc
// @Summary      Create a new doctor
// @Description  Validate and persist a doctor, then redirect to the list
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        request body dto.DoctorDTO true "Doctor information"
// @Success      303 "Redirect to doctor list"
// @Failure      400 {object} util.APIResponse "Invalid doctor, submitted values echoed back"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Doctors/Create [post]
func CreateDoctor(c *gin.Context) {
	form := dto.DoctorDTO{}
	if err := c.ShouldBindJSON(&form); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	form.FirstName = util.NormalizeName(form.FirstName)
	form.LastName = util.NormalizeName(form.LastName)
	if err := validateDoctorForm(form); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:  "Doctor is missing required fields",
			Err:  err,
			Data: form,
		})
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	doctor := dto.DoctorFromDTO(form)
	doctor.ID = 0 // identity is store-assigned
	if err := repository.NewDoctorRepository(db).Add(c.Request.Context(), &doctor); err != nil {
		if errors.Is(err, repository.ErrValidation) {
			util.CallUserError(c, util.APIErrorParams{Msg: "Doctor is missing required fields", Err: err, Data: form})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to create doctor", Err: err})
		return
	}

	c.Redirect(http.StatusSeeOther, doctorListRoute)
}

// EditDoctorForm godoc
// @Summary      Show doctor edit form
// @Description  Returns the doctor transport object populated for editing
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=dto.DoctorDTO} "Doctor retrieved"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /Doctors/Edit/{id} [get]
func EditDoctorForm(c *gin.Context) {
	GetDoctorDetails(c)
}

// EditDoctor godoc
// @Summary      Update a doctor
// @Description  Validate and persist doctor changes with an optimistic concurrency check
// @Tags         Doctor
// @Accept       json
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Param        request body dto.DoctorDTO true "Updated doctor information"
// @Success      303 "Redirect to doctor list"
// @Failure      400 {object} util.APIResponse "Invalid doctor, submitted values echoed back"
// @Failure      404 {object} util.APIResponse "Doctor not found or id mismatch"
// @Failure      500 {object} util.APIResponse "Unresolvable concurrency conflict"
// @Router       /Doctors/Edit/{id} [post]
func EditDoctor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	form := dto.DoctorDTO{}
	if err := c.ShouldBindJSON(&form); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	// The route id must match the submitted id before anything touches the
	// store. Reported as not found so tampered ids look like missing records.
	if form.ID != id {
		util.CallErrorNotFound(c, util.APIErrorParams{
			Msg: "Doctor not found",
			Err: fmt.Errorf("submitted id %d does not match route id %d", form.ID, id),
		})
		return
	}

	form.FirstName = util.NormalizeName(form.FirstName)
	form.LastName = util.NormalizeName(form.LastName)
	if err := validateDoctorForm(form); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:  "Doctor is missing required fields",
			Err:  err,
			Data: form,
		})
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	doctor := dto.DoctorFromDTO(form)
	err := repository.NewDoctorRepository(db).Update(c.Request.Context(), &doctor)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, doctorListRoute)
	case errors.Is(err, repository.ErrNotFound):
		util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Doctor not found", Err: err})
	case errors.Is(err, repository.ErrValidation):
		util.CallUserError(c, util.APIErrorParams{Msg: "Doctor is missing required fields", Err: err, Data: form})
	case errors.Is(err, repository.ErrConflict):
		// The record still exists but changed underneath the form. There is
		// no automatic merge at this layer.
		util.CallServerError(c, util.APIErrorParams{Msg: "Doctor was modified by another request", Err: err})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to update doctor", Err: err})
	}
}

// ConfirmDeleteDoctor godoc
// @Summary      Show doctor delete confirmation
// @Description  Returns the doctor about to be deleted
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      200 {object} util.APIResponse{data=dto.DoctorDTO} "Doctor retrieved"
// @Failure      404 {object} util.APIResponse "Doctor not found"
// @Router       /Doctors/Delete/{id} [get]
func ConfirmDeleteDoctor(c *gin.Context) {
	GetDoctorDetails(c)
}

// DeleteDoctor godoc
// @Summary      Delete a doctor
// @Description  Delete a doctor by ID; deleting a missing doctor succeeds
// @Tags         Doctor
// @Produce      json
// @Param        id path int true "Doctor ID"
// @Success      303 "Redirect to doctor list"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Doctors/Delete/{id} [post]
func DeleteDoctor(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	if err := repository.NewDoctorRepository(db).Delete(c.Request.Context(), id); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete doctor", Err: err})
		return
	}

	c.Redirect(http.StatusSeeOther, doctorListRoute)
}
