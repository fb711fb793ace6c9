package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestRespondHelpers(t *testing.T) {
	cases := []struct {
		name    string
		respond func(http.ResponseWriter)
		status  int
		message string
	}{
		{"bad request", RespondBadRequest, http.StatusBadRequest, "bad request"},
		{"not found", RespondNotFound, http.StatusNotFound, "resource not found"},
		{"method", RespondMethodNotAllowed, http.StatusMethodNotAllowed, "method not allowed"},
		{"unprocessable", RespondUnprocessable, http.StatusUnprocessableEntity, "unprocessable"},
		{"internal", RespondInternalError, http.StatusInternalServerError, "internal server error"},
		{"unavailable", RespondServiceUnavailable, http.StatusServiceUnavailable, "service unavailable"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.respond(rec)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			body := decode(t, rec)
			assert.False(t, body.Success)
			assert.Equal(t, tc.status, body.Error)
			assert.Equal(t, tc.message, body.Message)
			assert.Empty(t, body.Field)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondValidationError(rec, "answer", "answer is required")

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, 422, body.Error)
	assert.Equal(t, "answer", body.Field)
	assert.Equal(t, "answer is required", body.Message)
}
