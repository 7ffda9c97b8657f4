package response_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/shared/failure"
	"bistro/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{
			name:     "conflict keeps its reason",
			err:      failure.Conflict("table T003 is already booked from 19:00 to 21:00"),
			wantCode: http.StatusConflict,
			wantBody: `{"error":"table T003 is already booked from 19:00 to 21:00","reason":"conflict"}`,
		},
		{
			name:     "forbidden carries no reason",
			err:      failure.ForbiddenError,
			wantCode: http.StatusForbidden,
			wantBody: `{"error":"You don't have the required permissions"}`,
		},
		{
			name:     "infrastructure errors are masked",
			err:      errors.New(`pq: relation "reservations" does not exist`),
			wantCode: http.StatusInternalServerError,
			wantBody: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			response.WithError(rec, tt.err)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestWithJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithJSON(rec, http.StatusCreated, map[string]string{"id": "r-1", "status": "PENDING"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":"r-1","status":"PENDING"}}`, rec.Body.String())
}

func TestWithRequestLimitExceeded(t *testing.T) {
	rec := httptest.NewRecorder()

	response.WithRequestLimitExceeded(rec)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, rec.Body.String())
}
