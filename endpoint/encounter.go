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

const encounterListRoute = "/Encounters"

// ListEncounters godoc
// @Summary      List all encounters
// @Description  Get every recorded encounter without owned symptom or vital sign rows
// @Tags         Encounter
// @Produce      json
// @Success      200 {object} util.APIResponse{data=object} "Encounters retrieved"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Encounters [get]
func ListEncounters(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	encounters, err := repository.NewEncounterRepository(db).List(c.Request.Context())
	if err != nil {
		util.CallServerError(c, util.APIErrorParams{
			Msg: "Failed to retrieve encounters",
			Err: err,
		})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Encounters retrieved",
		Data: map[string]interface{}{"total": len(encounters), "encounters": dto.EncountersToDTOs(encounters)},
	})
}

// GetEncounterDetails godoc
// @Summary      Get encounter details
// @Description  Get an encounter with its symptoms and vital signs
// @Tags         Encounter
// @Produce      json
// @Param        id path int true "Encounter ID"
// @Success      200 {object} util.APIResponse{data=dto.EncounterDTO} "Encounter retrieved"
// @Failure      404 {object} util.APIResponse "Encounter not found"
// @Router       /Encounters/Details/{id} [get]
func GetEncounterDetails(c *gin.Context) {
	db := getDBOrAbort(c)
	if db == nil {
		return
	}
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	encounter, err := repository.NewEncounterRepository(db).Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			util.CallErrorNotFound(c, util.APIErrorParams{Msg: "Encounter not found", Err: err})
			return
		}
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to retrieve encounter", Err: err})
		return
	}

	util.CallSuccessOK(c, util.APISuccessParams{
		Msg:  "Encounter retrieved",
		Data: dto.EncounterToDTO(encounter),
	})
}

func validateEncounterForm(e dto.EncounterDTO) error {
	if e.PatientID == 0 {
		return fmt.Errorf("patient_id is required")
	}
	if e.EncounterDate == "" {
		return fmt.Errorf("encounter_date is required")
	}
	for _, s := range e.Symptoms {
		if s.Name == "" {
			return fmt.Errorf("symptom name is required")
		}
	}
	for _, v := range e.VitalSigns {
		if v.Name == "" || v.Value == "" {
			return fmt.Errorf("vital sign name and value are required")
		}
	}
	return nil
}

// CreateEncounter godoc
// @Summary      Record a new encounter
// @Description  Validate and persist an encounter with its symptoms and vital signs
// @Tags         Encounter
// @Accept       json
// @Produce      json
// @Param        request body dto.EncounterDTO true "Encounter information"
// @Success      303 "Redirect to encounter list"
// @Failure      400 {object} util.APIResponse "Invalid encounter, submitted values echoed back"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Encounters/Create [post]
func CreateEncounter(c *gin.Context) {
	form := dto.EncounterDTO{}
	if err := c.ShouldBindJSON(&form); err != nil {
		util.CallUserError(c, util.APIErrorParams{Msg: "Invalid request body", Err: err})
		return
	}

	if err := validateEncounterForm(form); err != nil {
		util.CallUserError(c, util.APIErrorParams{
			Msg:  "Encounter is missing required fields",
			Err:  err,
			Data: form,
		})
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	encounter := dto.EncounterFromDTO(form)
	encounter.ID = 0 // identity is store-assigned
	err := repository.NewEncounterRepository(db).Add(c.Request.Context(), &encounter)
	switch {
	case err == nil:
		c.Redirect(http.StatusSeeOther, encounterListRoute)
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, repository.ErrValidation):
		util.CallUserError(c, util.APIErrorParams{Msg: "Encounter references missing records", Err: err, Data: form})
	default:
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to record encounter", Err: err})
	}
}

// DeleteEncounter godoc
// @Summary      Delete an encounter
// @Description  Delete an encounter and its owned records; deleting a missing encounter succeeds
// @Tags         Encounter
// @Produce      json
// @Param        id path int true "Encounter ID"
// @Success      303 "Redirect to encounter list"
// @Failure      500 {object} util.APIResponse "Server error"
// @Router       /Encounters/Delete/{id} [post]
func DeleteEncounter(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	db := getDBOrAbort(c)
	if db == nil {
		return
	}

	if err := repository.NewEncounterRepository(db).Delete(c.Request.Context(), id); err != nil {
		util.CallServerError(c, util.APIErrorParams{Msg: "Failed to delete encounter", Err: err})
		return
	}

	c.Redirect(http.StatusSeeOther, encounterListRoute)
}
