package endpoint

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/ihvn/medix/model"
	"github.com/stretchr/testify/assert"
)

func TestCreatePatientEndToEnd(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)

	w, _ := performRequest(r, http.MethodPost, "/Patients/Create", map[string]interface{}{
		"first_name":    "Ada",
		"last_name":     "Lovelace",
		"date_of_birth": "1815-12-10",
		"state":         "Abuja",
		"gender":        "F",
	})
	assertRedirect(t, w, "/Patients")

	// The new patient shows up on the list the redirect points at.
	w, resp := performRequest(r, http.MethodGet, "/Patients", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(1), data["total"])
	patients := data["patients"].([]interface{})
	first := patients[0].(map[string]interface{})
	assert.Equal(t, "Ada", first["first_name"])
	assert.Equal(t, "1815-12-10", first["date_of_birth"])
}

func TestCreatePatientEchoesSubmittedValues(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)

	w, resp := performRequest(r, http.MethodPost, "/Patients/Create", map[string]interface{}{
		"first_name": "Ada",
		"state":      "Abuja",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "Ada", data["first_name"])
	assert.Equal(t, "Abuja", data["state"])

	var count int64
	db.Model(&model.Patient{}).Count(&count)
	assert.Zero(t, count)
}

func TestNewPatientFormIsBlank(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)

	w, resp := performRequest(r, http.MethodGet, "/Patients/Create", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["id"])
	assert.Equal(t, "", data["first_name"])
}

func TestGetPatientDetailsNotFound(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)

	for _, path := range []string{
		"/Patients/Details/9999",
		"/Patients/Edit/9999",
		"/Patients/Delete/9999",
	} {
		w, _ := performRequest(r, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestEditPatientIDMismatchLeavesRecordUnchanged(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)
	patient := createTestPatient(t, db)

	w, _ := performRequest(r, http.MethodPost, fmt.Sprintf("/Patients/Edit/%d", patient.ID), map[string]interface{}{
		"id":         patient.ID + 7,
		"first_name": "Changed",
		"last_name":  "Name",
		"version":    patient.Version,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var stored model.Patient
	assert.NoError(t, db.First(&stored, patient.ID).Error)
	assert.Equal(t, "Ada", stored.FirstName)
}

func TestEditPatientUpdatesAndRedirects(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)
	patient := createTestPatient(t, db)

	w, _ := performRequest(r, http.MethodPost, fmt.Sprintf("/Patients/Edit/%d", patient.ID), map[string]interface{}{
		"id":            patient.ID,
		"first_name":    "Ada",
		"last_name":     "King",
		"date_of_birth": "1815-12-10",
		"version":       patient.Version,
	})
	assertRedirect(t, w, "/Patients")

	var stored model.Patient
	assert.NoError(t, db.First(&stored, patient.ID).Error)
	assert.Equal(t, "King", stored.LastName)
	assert.Equal(t, patient.Version+1, stored.Version)
}

func TestEditPatientMissingRecord(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)

	w, _ := performRequest(r, http.MethodPost, "/Patients/Edit/424242", map[string]interface{}{
		"id":         424242,
		"first_name": "Ghost",
		"last_name":  "Record",
		"version":    1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeletePatientIdempotent(t *testing.T) {
	db := setupTestEnv(t)
	r := setupTestRouter(db)
	patient := createTestPatient(t, db)

	w, _ := performRequest(r, http.MethodPost, fmt.Sprintf("/Patients/Delete/%d", patient.ID), nil)
	assertRedirect(t, w, "/Patients")

	w, _ = performRequest(r, http.MethodPost, fmt.Sprintf("/Patients/Delete/%d", patient.ID), nil)
	assertRedirect(t, w, "/Patients")
}
