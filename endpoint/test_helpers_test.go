package endpoint

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ihvn/medix/config"
	"github.com/ihvn/medix/middleware"
	"github.com/ihvn/medix/model"
	"github.com/ihvn/medix/util"
	"gorm.io/gorm"
)

// setupTestEnv points the config at the shared in-memory database and
// migrates the full schema.
func setupTestEnv(t *testing.T) *gorm.DB {
	t.Helper()

	t.Setenv("APPENV", "test")
	t.Setenv("JWTSECRET", "test-secret")
	util.SetJWTSecret("test-secret")

	db, err := config.ConnectMySQL()
	if err != nil {
		t.Fatalf("connect test db: %v", err)
	}

	testModels := []interface{}{
		&model.Doctor{},
		&model.Patient{},
		&model.Appointment{},
		&model.Encounter{},
		&model.Symptom{},
		&model.VitalSign{},
	}
	if err := db.AutoMigrate(testModels...); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	cleanupTestData(t, db)
	return db
}

func cleanupTestData(t *testing.T, db *gorm.DB) {
	t.Helper()
	tables := []interface{}{
		&model.Symptom{}, &model.VitalSign{}, &model.Encounter{},
		&model.Appointment{}, &model.Doctor{}, &model.Patient{},
	}
	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			t.Fatalf("cleanup table: %v", err)
		}
	}
}

// setupTestRouter registers the route surface without the anti-forgery and
// rate limiting layers, which have their own tests.
func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.DatabaseMiddleware(db))

	r.GET("/Doctors", ListDoctors)
	r.GET("/Doctors/Details/:id", GetDoctorDetails)
	r.GET("/Doctors/Create", NewDoctorForm)
	r.POST("/Doctors/Create", CreateDoctor)
	r.GET("/Doctors/Edit/:id", EditDoctorForm)
	r.POST("/Doctors/Edit/:id", EditDoctor)
	r.GET("/Doctors/Delete/:id", ConfirmDeleteDoctor)
	r.POST("/Doctors/Delete/:id", DeleteDoctor)
	r.GET("/Doctors/BookAppointment/:id", BookAppointmentForm)
	r.POST("/Doctors/BookAppointment/:id", BookAppointment)

	r.GET("/Patients", ListPatients)
	r.GET("/Patients/Details/:id", GetPatientDetails)
	r.GET("/Patients/Create", NewPatientForm)
	r.POST("/Patients/Create", CreatePatient)
	r.GET("/Patients/Edit/:id", EditPatientForm)
	r.POST("/Patients/Edit/:id", EditPatient)
	r.GET("/Patients/Delete/:id", ConfirmDeletePatient)
	r.POST("/Patients/Delete/:id", DeletePatient)

	r.GET("/Appointments", ListAppointments)

	r.GET("/Encounters", ListEncounters)
	r.GET("/Encounters/Details/:id", GetEncounterDetails)
	r.POST("/Encounters/Create", CreateEncounter)
	r.POST("/Encounters/Delete/:id", DeleteEncounter)

	return r
}

func performRequest(r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	var reader *strings.Reader
	setJSONHeader := false
	switch v := body.(type) {
	case nil:
		reader = strings.NewReader("")
	case string:
		reader = strings.NewReader(v)
		setJSONHeader = true
	default:
		b, _ := json.Marshal(body)
		reader = strings.NewReader(string(b))
		setJSONHeader = true
	}

	req := httptest.NewRequest(method, path, reader)
	if setJSONHeader {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	if w.Body.Len() > 0 && strings.Contains(w.Header().Get("Content-Type"), "application/json") {
		json.Unmarshal(w.Body.Bytes(), &response)
	}
	return w, response
}

func createTestDoctor(t *testing.T, db *gorm.DB) model.Doctor {
	t.Helper()
	doctor := model.Doctor{FirstName: "Grace", LastName: "Hopper", Specialty: "Cardiology", Version: 1}
	if err := db.Create(&doctor).Error; err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	return doctor
}

func createTestPatient(t *testing.T, db *gorm.DB) model.Patient {
	t.Helper()
	patient := model.Patient{FirstName: "Ada", LastName: "Lovelace", DateOfBirth: "1815-12-10", Version: 1}
	if err := db.Create(&patient).Error; err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return patient
}

func assertRedirect(t *testing.T, w *httptest.ResponseRecorder, location string) {
	t.Helper()
	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusSeeOther, w.Body.String())
	}
	if got := w.Header().Get("Location"); got != location {
		t.Fatalf("Location = %q, want %q", got, location)
	}
}
