package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ihvn/medix/model"
	"gorm.io/gorm"
)

// DoctorRepository isolates doctor persistence from request handling.
type DoctorRepository struct {
	db *gorm.DB
}

func NewDoctorRepository(db *gorm.DB) *DoctorRepository {
	return &DoctorRepository{db: db}
}

// List returns every doctor ordered by id so paging stays stable.
func (r *DoctorRepository) List(ctx context.Context) ([]model.Doctor, error) {
	var doctors []model.Doctor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&doctors).Error; err != nil {
		return nil, err
	}
	return doctors, nil
}

// Get returns the doctor with the given id or ErrNotFound.
func (r *DoctorRepository) Get(ctx context.Context, id uint) (*model.Doctor, error) {
	var doctor model.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doctor, nil
}

// Add persists a new doctor and assigns its identity.
func (r *DoctorRepository) Add(ctx context.Context, doctor *model.Doctor) error {
	if doctor.FirstName == "" || doctor.LastName == "" {
		return fmt.Errorf("first_name and last_name are required: %w", ErrValidation)
	}
	return r.db.WithContext(ctx).Create(doctor).Error
}

// Update replaces the stored record guarded by the version the caller loaded.
// A stale version yields ErrConflict, a vanished record ErrNotFound.
func (r *DoctorRepository) Update(ctx context.Context, doctor *model.Doctor) error {
	if doctor.FirstName == "" || doctor.LastName == "" {
		return fmt.Errorf("first_name and last_name are required: %w", ErrValidation)
	}

	res := r.db.WithContext(ctx).Model(&model.Doctor{}).
		Where("id = ? AND version = ?", doctor.ID, doctor.Version).
		Updates(map[string]interface{}{
			"first_name":    doctor.FirstName,
			"last_name":     doctor.LastName,
			"phone_number":  doctor.PhoneNumber,
			"email_address": doctor.EmailAddress,
			"specialty":     doctor.Specialty,
			"version":       doctor.Version + 1,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&model.Doctor{}).Where("id = ?", doctor.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}
		return ErrConflict
	}

	doctor.Version++
	return nil
}

// Delete removes the doctor with the given id. Deleting a missing record
// succeeds silently.
func (r *DoctorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Doctor{}, id).Error
}
