package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/ihvn/medix/model"
	"github.com/stretchr/testify/assert"
)

func TestEncounterRepository_AddThenGet(t *testing.T) {
	db := newTestDB(t, "encounter_add_get")
	repo := NewEncounterRepository(db)
	ctx := context.Background()

	patient := createPatient(t, db)

	encounter := model.Encounter{
		PatientID:     patient.ID,
		EncounterDate: "2024-05-01",
		Symptoms: []model.Symptom{
			{Name: "Fever", Note: "Started two days ago"},
		},
		VitalSigns: []model.VitalSign{
			{Name: "Blood pressure", Value: "120/80", Unit: "mmHg"},
			{Name: "Temperature", Value: "38.2", Unit: "C"},
		},
	}
	err := repo.Add(ctx, &encounter)
	assert.NoError(t, err)
	assert.NotZero(t, encounter.ID)

	found, err := repo.Get(ctx, encounter.ID)
	assert.NoError(t, err)
	assert.Equal(t, patient.ID, found.PatientID)
	assert.Len(t, found.Symptoms, 1)
	assert.Len(t, found.VitalSigns, 2)
}

func TestEncounterRepository_AddMissingPatient(t *testing.T) {
	db := newTestDB(t, "encounter_no_patient")
	repo := NewEncounterRepository(db)

	encounter := model.Encounter{PatientID: 999, EncounterDate: "2024-05-01"}
	err := repo.Add(context.Background(), &encounter)
	assert.True(t, errors.Is(err, ErrNotFound))

	var count int64
	db.Model(&model.Encounter{}).Count(&count)
	assert.Zero(t, count)
}

func TestEncounterRepository_AddMissingFields(t *testing.T) {
	db := newTestDB(t, "encounter_invalid")
	repo := NewEncounterRepository(db)

	err := repo.Add(context.Background(), &model.Encounter{PatientID: 1})
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestEncounterRepository_DeleteRemovesOwnedRecords(t *testing.T) {
	db := newTestDB(t, "encounter_delete_cascade")
	repo := NewEncounterRepository(db)
	ctx := context.Background()

	patient := createPatient(t, db)
	encounter := model.Encounter{
		PatientID:     patient.ID,
		EncounterDate: "2024-05-01",
		Symptoms:      []model.Symptom{{Name: "Cough"}},
		VitalSigns:    []model.VitalSign{{Name: "Pulse", Value: "72", Unit: "bpm"}},
	}
	assert.NoError(t, repo.Add(ctx, &encounter))

	assert.NoError(t, repo.Delete(ctx, encounter.ID))

	_, err := repo.Get(ctx, encounter.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	var symptomCount, vitalCount int64
	db.Model(&model.Symptom{}).Where("encounter_id = ?", encounter.ID).Count(&symptomCount)
	db.Model(&model.VitalSign{}).Where("encounter_id = ?", encounter.ID).Count(&vitalCount)
	assert.Zero(t, symptomCount)
	assert.Zero(t, vitalCount)
}

func TestEncounterRepository_DeleteIdempotent(t *testing.T) {
	db := newTestDB(t, "encounter_delete_idempotent")
	repo := NewEncounterRepository(db)

	assert.NoError(t, repo.Delete(context.Background(), 424242))
}
