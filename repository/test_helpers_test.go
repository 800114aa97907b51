package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/ihvn/medix/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens an in-memory SQLite database, uniquified per test, with
// every aggregate migrated.
func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:repotest_%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	models := []interface{}{
		&model.Doctor{},
		&model.Patient{},
		&model.Appointment{},
		&model.Encounter{},
		&model.Symptom{},
		&model.VitalSign{},
	}
	if err := db.AutoMigrate(models...); err != nil {
		t.Fatalf("failed to auto-migrate models: %v", err)
	}

	return db
}

func createDoctor(t *testing.T, db *gorm.DB) model.Doctor {
	t.Helper()
	doctor := model.Doctor{FirstName: "Grace", LastName: "Hopper", Specialty: "Cardiology"}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return doctor
}

func createPatient(t *testing.T, db *gorm.DB) model.Patient {
	t.Helper()
	patient := model.Patient{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1815-12-10", Gender: "F"}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return patient
}
