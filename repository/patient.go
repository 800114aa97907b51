package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ihvn/medix/model"
	"gorm.io/gorm"
)

// PatientRepository isolates patient persistence from request handling.
type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepository(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// List returns every patient ordered by id so paging stays stable.
func (r *PatientRepository) List(ctx context.Context) ([]model.Patient, error) {
	var patients []model.Patient
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

// Get returns the patient with the given id or ErrNotFound.
func (r *PatientRepository) Get(ctx context.Context, id uint) (*model.Patient, error) {
	var patient model.Patient
	if err := r.db.WithContext(ctx).First(&patient, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &patient, nil
}

// Add persists a new patient and assigns its identity.
func (r *PatientRepository) Add(ctx context.Context, patient *model.Patient) error {
	if patient.FirstName == "" || patient.LastName == "" {
		return fmt.Errorf("first_name and last_name are required: %w", ErrValidation)
	}
	return r.db.WithContext(ctx).Create(patient).Error
}

// Update replaces the stored record guarded by the version the caller loaded.
func (r *PatientRepository) Update(ctx context.Context, patient *model.Patient) error {
	if patient.FirstName == "" || patient.LastName == "" {
		return fmt.Errorf("first_name and last_name are required: %w", ErrValidation)
	}

	res := r.db.WithContext(ctx).Model(&model.Patient{}).
		Where("id = ? AND version = ?", patient.ID, patient.Version).
		Updates(map[string]interface{}{
			"first_name":    patient.FirstName,
			"last_name":     patient.LastName,
			"date_of_birth": patient.DateOfBirth,
			"address":       patient.Address,
			"state":         patient.State,
			"phone_number":  patient.PhoneNumber,
			"gender":        patient.Gender,
			"version":       patient.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Patient{}).Where("id = ?", patient.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}

	patient.Version++
	return nil
}

// Delete removes the patient with the given id. Deleting a missing record
// succeeds silently.
func (r *PatientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Patient{}, id).Error
}
