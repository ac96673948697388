package appointment

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/model"
	"github.com/medidesk/frontdesk-api/internal/repository/memory"
	"github.com/medidesk/frontdesk-api/internal/service/appointment"
	patientService "github.com/medidesk/frontdesk-api/internal/service/patient"
)

type testEnv struct {
	engine   *gin.Engine
	patients *patientService.Service
}

func newTestEnv() *testEnv {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	patients := patientService.NewService(memory.NewPatientRepository())
	svc := appointment.NewService(memory.NewAppointmentRepository(), patients)
	NewHandler(svc).RegisterRoutes(engine.Group("/api/v1"))
	return &testEnv{engine: engine, patients: patients}
}

func (e *testEnv) addPatient(t *testing.T, name string) *model.Patient {
	t.Helper()
	patient, err := e.patients.CreatePatient(context.Background(), name)
	require.NoError(t, err)
	return patient
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func validBody(patientID string) gin.H {
	return gin.H{
		"patientId":    patientID,
		"professional": "Dr. Ruiz",
		"date":         "2025-01-05",
		"time":         "09:00",
		"reason":       "checkup",
	}
}

func TestCreateAppointment(t *testing.T) {
	env := newTestEnv()
	patient := env.addPatient(t, "Ana Gomez")

	w, body := env.do(t, http.MethodPost, "/api/v1/appointments", validBody(patient.ID.String()))
	require.Equal(t, http.StatusCreated, w.Code)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "confirmed", data["status"])
	assert.Equal(t, "2025-01-05T09:00:00Z", data["scheduledAt"])
	assert.Equal(t, patient.ID.String(), data["patientId"])
}

func TestCreateAppointmentMissingField(t *testing.T) {
	env := newTestEnv()
	patient := env.addPatient(t, "Ana Gomez")

	payload := validBody(patient.ID.String())
	delete(payload, "reason")

	w, body := env.do(t, http.MethodPost, "/api/v1/appointments", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, body["message"], "reason is required")
}

func TestUpdateAppointmentUnknownID(t *testing.T) {
	env := newTestEnv()
	patient := env.addPatient(t, "Ana Gomez")

	w, _ := env.do(t, http.MethodPut, "/api/v1/appointments/"+uuid.NewString(), validBody(patient.ID.String()))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFrontDeskFlow(t *testing.T) {
	env := newTestEnv()
	patient := env.addPatient(t, "Ana Gomez")

	// book the visit
	w, body := env.do(t, http.MethodPost, "/api/v1/appointments", validBody(patient.ID.String()))
	require.Equal(t, http.StatusCreated, w.Code)
	id := body["data"].(map[string]interface{})["id"].(string)

	// the patient leaves the clinic's books
	require.NoError(t, env.patients.DeletePatient(context.Background(), patient.ID))

	// the appointment survives and renders a placeholder name
	w, body = env.do(t, http.MethodGet, "/api/v1/appointments", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := body["data"].([]interface{})
	require.Len(t, list, 1)

	view := list[0].(map[string]interface{})
	assert.Equal(t, id, view["id"])
	assert.Equal(t, patient.ID.String(), view["patientId"])
	assert.Equal(t, appointment.UnknownPatientName, view["patientName"])

	// cancel it via full replacement
	payload := validBody(patient.ID.String())
	payload["status"] = "cancelled"
	w, body = env.do(t, http.MethodPut, "/api/v1/appointments/"+id, payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", body["data"].(map[string]interface{})["status"])

	// then delete it for good
	w, _ = env.do(t, http.MethodDelete, "/api/v1/appointments/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = env.do(t, http.MethodDelete, "/api/v1/appointments/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetAppointmentInvalidID(t *testing.T) {
	env := newTestEnv()

	w, _ := env.do(t, http.MethodGet, "/api/v1/appointments/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
