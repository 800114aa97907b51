package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ihvn/medix/model"
	"gorm.io/gorm"
)

// AppointmentRepository isolates appointment persistence from request handling.
type AppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *AppointmentRepository {
	return &AppointmentRepository{db: db}
}

// List returns every appointment ordered by id so paging stays stable.
func (r *AppointmentRepository) List(ctx context.Context) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// ListByDoctor returns the appointments booked with one doctor.
func (r *AppointmentRepository) ListByDoctor(ctx context.Context, doctorID uint) ([]model.Appointment, error) {
	var appointments []model.Appointment
	if err := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID).Order("id ASC").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

// Get returns the appointment with the given id or ErrNotFound.
func (r *AppointmentRepository) Get(ctx context.Context, id uint) (*model.Appointment, error) {
	var appointment model.Appointment
	if err := r.db.WithContext(ctx).First(&appointment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &appointment, nil
}

// Add persists a new appointment. Both referenced records must exist at
// creation time; the checks run inside the insert transaction. Overlapping
// appointments for the same doctor are not detected.
func (r *AppointmentRepository) Add(ctx context.Context, appointment *model.Appointment) error {
	if appointment.PatientID == 0 || appointment.DoctorID == 0 || appointment.AppointmentDateTime == "" {
		return fmt.Errorf("patient_id, doctor_id and appointment_date_time are required: %w", ErrValidation)
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var doctor model.Doctor
		if err := tx.First(&doctor, appointment.DoctorID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("doctor %d: %w", appointment.DoctorID, ErrNotFound)
			}
			return err
		}

		var patient model.Patient
		if err := tx.First(&patient, appointment.PatientID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("patient %d: %w", appointment.PatientID, ErrNotFound)
			}
			return err
		}

		return tx.Create(appointment).Error
	})
}

// Delete removes the appointment with the given id. Deleting a missing record
// succeeds silently.
func (r *AppointmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Appointment{}, id).Error
}
