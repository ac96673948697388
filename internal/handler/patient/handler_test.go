package patient

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medidesk/frontdesk-api/internal/repository/memory"
	"github.com/medidesk/frontdesk-api/internal/service/patient"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	h := NewHandler(patient.NewService(memory.NewPatientRepository()))
	h.RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doRequest(t *testing.T, engine *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
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
	engine.ServeHTTP(w, req)

	var decoded map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	}
	return w, decoded
}

func TestCreateAndListPatients(t *testing.T) {
	engine := newTestRouter()

	w, body := doRequest(t, engine, http.MethodPost, "/api/v1/patients", gin.H{"name": "Ana Gomez"})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "success", body["status"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "Ana Gomez", data["name"])
	assert.NotEmpty(t, data["id"])

	w, body = doRequest(t, engine, http.MethodGet, "/api/v1/patients", nil)
	require.Equal(t, http.StatusOK, w.Code)
	patients := body["data"].([]interface{})
	require.Len(t, patients, 1)
}

func TestCreatePatientEmptyName(t *testing.T) {
	engine := newTestRouter()

	w, body := doRequest(t, engine, http.MethodPost, "/api/v1/patients", gin.H{"name": "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", body["status"])
	assert.Contains(t, body["message"], "name is required")
}

func TestUpdatePatient(t *testing.T) {
	engine := newTestRouter()

	_, body := doRequest(t, engine, http.MethodPost, "/api/v1/patients", gin.H{"name": "Ana Gomez"})
	id := body["data"].(map[string]interface{})["id"].(string)

	w, body := doRequest(t, engine, http.MethodPut, "/api/v1/patients/"+id, gin.H{"name": "Ana Gomez de Leon"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ana Gomez de Leon", body["data"].(map[string]interface{})["name"])

	w, _ = doRequest(t, engine, http.MethodPut, fmt.Sprintf("/api/v1/patients/%s", uuid.New()), gin.H{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = doRequest(t, engine, http.MethodPut, "/api/v1/patients/not-a-uuid", gin.H{"name": "Nobody"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeletePatientTwice(t *testing.T) {
	engine := newTestRouter()

	_, body := doRequest(t, engine, http.MethodPost, "/api/v1/patients", gin.H{"name": "Ana Gomez"})
	id := body["data"].(map[string]interface{})["id"].(string)

	w, _ := doRequest(t, engine, http.MethodDelete, "/api/v1/patients/"+id, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, body = doRequest(t, engine, http.MethodDelete, "/api/v1/patients/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", body["status"])
}
