package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ihvn/medix/model"
	"gorm.io/gorm"
)

// EncounterRepository isolates encounter persistence, including the symptom
// and vital sign rows owned by each encounter.
type EncounterRepository struct {
	db *gorm.DB
}

func NewEncounterRepository(db *gorm.DB) *EncounterRepository {
	return &EncounterRepository{db: db}
}

// List returns every encounter ordered by id. Owned records are not loaded;
// use Get for the full encounter.
func (r *EncounterRepository) List(ctx context.Context) ([]model.Encounter, error) {
	var encounters []model.Encounter
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&encounters).Error; err != nil {
		return nil, err
	}
	return encounters, nil
}

// Get returns the encounter with its symptoms and vital signs, or ErrNotFound.
func (r *EncounterRepository) Get(ctx context.Context, id uint) (*model.Encounter, error) {
	var encounter model.Encounter
	err := r.db.WithContext(ctx).
		Preload("Symptoms").
		Preload("VitalSigns").
		First(&encounter, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &encounter, nil
}

// Add persists an encounter together with its owned records. The referenced
// patient must exist; the check runs inside the insert transaction.
func (r *EncounterRepository) Add(ctx context.Context, encounter *model.Encounter) error {
	if encounter.PatientID == 0 || encounter.EncounterDate == "" {
		return fmt.Errorf("patient_id and encounter_date are required: %w", ErrValidation)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var patient model.Patient
		if err := tx.First(&patient, encounter.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("patient %d: %w", encounter.PatientID, ErrNotFound)
			}
			return err
		}

		return tx.Create(encounter).Error
	})
}

// Delete removes the encounter and every symptom and vital sign it owns in
// one transaction. Deleting a missing encounter succeeds silently.
func (r *EncounterRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("encounter_id = ?", id).Delete(&model.Symptom{}).Error; err != nil {
			return err
		}
		if err := tx.Where("encounter_id = ?", id).Delete(&model.VitalSign{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Encounter{}, id).Error
	})
}
