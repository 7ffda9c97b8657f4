package health_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"bistro/internal/handlers/health"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

type pinger struct {
	err error
}

func (p pinger) Ping(context.Context) error {
	return p.err
}

func TestHandler_Health(t *testing.T) {
	// Nothing listens on port 1, so every redis ping fails fast.
	unreachable := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = unreachable.Close() })

	tests := []struct {
		name     string
		db       pinger
		wantCode int
	}{
		{
			name:     "cache down",
			db:       pinger{},
			wantCode: http.StatusServiceUnavailable,
		},
		{
			name:     "database and cache down",
			db:       pinger{err: errors.New("connection refused")},
			wantCode: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := health.NewWithPingers(tt.db, unreachable)

			rec := httptest.NewRecorder()
			handler.Health(rec, httptest.NewRequest(http.MethodGet, "/v1/health", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
