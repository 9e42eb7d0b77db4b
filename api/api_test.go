package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"harmonizer/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Environment: "test", Port: "8080"}
	return SetupRouter(cfg)
}

func TestHealthCheck(t *testing.T) {
	router := testRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestAnalyzeBasslineMissingNotes(t *testing.T) {
	router := testRouter()

	reqBody, _ := json.Marshal(map[string]interface{}{"bass_notes": []string{}})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze_bassline", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyzeBasslineHappyPath(t *testing.T) {
	router := testRouter()

	reqBody, _ := json.Marshal(map[string]interface{}{
		"bass_notes": []string{"C3", "F3", "G3", "C3"},
		"key":        "C major",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analyze_bassline", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "C major", body["key"])
	progressions, ok := body["progressions"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, progressions)
}

func TestRealizeSATBLengthMismatch(t *testing.T) {
	router := testRouter()

	reqBody, _ := json.Marshal(map[string]interface{}{
		"chord_progression": []string{"I", "IV", "V"},
		"bass_notes":        []string{"C3", "F3"},
		"key":               "C major",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/realize_satb", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRealizeSATBHappyPath(t *testing.T) {
	router := testRouter()

	reqBody, _ := json.Marshal(map[string]interface{}{
		"chord_progression": []string{"I", "IV", "V", "I"},
		"bass_notes":        []string{"C3", "F3", "G3", "C3"},
		"key":               "C major",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/realize_satb", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	harmonization, ok := body["satb_harmonization"].([]interface{})
	require.True(t, ok)
	assert.Len(t, harmonization, 4)
}

func TestRealizeSATBMidiFormat(t *testing.T) {
	router := testRouter()

	reqBody, _ := json.Marshal(map[string]interface{}{
		"chord_progression": []string{"I", "IV", "V", "I"},
		"bass_notes":        []string{"C3", "F3", "G3", "C3"},
		"key":               "C major",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/realize_satb?format=midi", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "audio/midi", w.Header().Get("Content-Type"))
	assert.NotEmpty(t, w.Body.Bytes())
}

func TestGenerateAIMusicWithoutCredentialFails(t *testing.T) {
	router := testRouter()

	reqBody, _ := json.Marshal(map[string]interface{}{
		"chord_progression": []string{"I", "IV", "V", "I"},
		"key":               "C major",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/generate_ai_music", bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
