package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-videotube/internal/apierror"
	"github.com/sbilibin2017/gw-videotube/internal/models"
)

func TestHealthcheckHandler(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthcheckHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	env := decodeEnvelope(t, rr)
	assert.True(t, env.Success)
	assert.Equal(t, "Server is healthy", env.Message)

	var health models.Health
	require.NoError(t, unmarshal(env.Data, &health))
	assert.Equal(t, "OK", health.Status)
	assert.NotEmpty(t, health.TimeStamp)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedMsg  string
		expectedErrs []string
	}{
		{"api error", apierror.BadRequest("Invalid input", "email is invalid"), http.StatusBadRequest, "Invalid input", []string{"email is invalid"}},
		{"wrapped api error", errors.Join(errors.New("ctx"), apierror.NotFound("Video not found")), http.StatusNotFound, "Video not found", []string{}},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, "Internal server error", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			respondError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			assert.Equal(t, tt.expectedCode, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.expectedCode, env.StatusCode)
			assert.Equal(t, tt.expectedMsg, env.Message)
			assert.False(t, env.Success)
			assert.Equal(t, tt.expectedErrs, env.Errors)
			assert.Empty(t, env.Data)
		})
	}
}
