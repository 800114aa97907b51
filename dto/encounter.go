package dto

import "github.com/ihvn/medix/model"

// EncounterDTO is the transport shape for a clinical encounter with its
// owned symptom and vital sign records.
// @Description Encounter transport object
type EncounterDTO struct {
	ID            uint           `json:"id" example:"1"`
	PatientID     uint           `json:"patient_id" example:"3"`
	EncounterDate string         `json:"encounter_date" example:"2024-05-01"`
	Symptoms      []SymptomDTO   `json:"symptoms"`
	VitalSigns    []VitalSignDTO `json:"vital_signs"`
}

// SymptomDTO is the transport shape for a reported symptom.
type SymptomDTO struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Fever"`
	Note string `json:"note" example:"Started two days ago"`
}

// VitalSignDTO is the transport shape for a recorded measurement.
type VitalSignDTO struct {
	ID    uint   `json:"id" example:"1"`
	Name  string `json:"name" example:"Blood pressure"`
	Value string `json:"value" example:"120/80"`
	Unit  string `json:"unit" example:"mmHg"`
}

// EncounterToDTO converts an encounter entity, including owned records, to
// its transport object.
func EncounterToDTO(encounter *model.Encounter) *EncounterDTO {
	if encounter == nil {
		return nil
	}

	symptoms := make([]SymptomDTO, len(encounter.Symptoms))
	for i, s := range encounter.Symptoms {
		symptoms[i] = SymptomDTO{ID: s.ID, Name: s.Name, Note: s.Note}
	}

	vitals := make([]VitalSignDTO, len(encounter.VitalSigns))
	for i, v := range encounter.VitalSigns {
		vitals[i] = VitalSignDTO{ID: v.ID, Name: v.Name, Value: v.Value, Unit: v.Unit}
	}

	return &EncounterDTO{
		ID:            encounter.ID,
		PatientID:     encounter.PatientID,
		EncounterDate: encounter.EncounterDate,
		Symptoms:      symptoms,
		VitalSigns:    vitals,
	}
}

// EncountersToDTOs converts a slice of encounter entities to transport objects.
func EncountersToDTOs(encounters []model.Encounter) []EncounterDTO {
	dtos := make([]EncounterDTO, len(encounters))
	for i := range encounters {
		dtos[i] = *EncounterToDTO(&encounters[i])
	}
	return dtos
}

// EncounterFromDTO converts a bound form back to an entity.
func EncounterFromDTO(e EncounterDTO) model.Encounter {
	symptoms := make([]model.Symptom, len(e.Symptoms))
	for i, s := range e.Symptoms {
		symptoms[i] = model.Symptom{Name: s.Name, Note: s.Note}
	}

	vitals := make([]model.VitalSign, len(e.VitalSigns))
	for i, v := range e.VitalSigns {
		vitals[i] = model.VitalSign{Name: v.Name, Value: v.Value, Unit: v.Unit}
	}

	encounter := model.Encounter{
		PatientID:     e.PatientID,
		EncounterDate: e.EncounterDate,
		Symptoms:      symptoms,
		VitalSigns:    vitals,
	}
	encounter.ID = e.ID
	return encounter
}
