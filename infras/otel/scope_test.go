package otel_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"bistro/infras/otel"
	"bistro/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func record(t *testing.T, fn func(scope otel.Scope)) tracetest.SpanStub {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "CreateReservation")
	scope := otel.NewScope(span)
	fn(scope)
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	return tracetest.SpanStubFromReadOnlySpan(spans[0])
}

func attr(span tracetest.SpanStub, key string) (attribute.Value, bool) {
	for _, kv := range span.Attributes {
		if string(kv.Key) == key {
			return kv.Value, true
		}
	}

	return attribute.Value{}, false
}

func TestScope_TraceError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus codes.Code
		wantReason string
	}{
		{
			name:       "overlap is an expected rejection",
			err:        failure.Conflict("table T001 is already booked"),
			wantStatus: codes.Unset,
			wantReason: failure.ReasonConflict,
		},
		{
			name:       "capacity is an expected rejection",
			err:        failure.Capacity("table T001 seats 2"),
			wantStatus: codes.Unset,
			wantReason: failure.ReasonCapacity,
		},
		{
			name:       "unknown errors fail the span",
			err:        errors.New("connection reset"),
			wantStatus: codes.Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := record(t, func(scope otel.Scope) { scope.TraceError(tt.err) })

			assert.Equal(t, tt.wantStatus, span.Status.Code)
			require.NotEmpty(t, span.Events)
			assert.Equal(t, "exception", span.Events[0].Name)

			reason, ok := attr(span, "failure.reason")
			if tt.wantReason == "" {
				assert.False(t, ok)

				return
			}

			assert.Equal(t, tt.wantReason, reason.AsString())
		})
	}
}

func TestScope_TraceIfError(t *testing.T) {
	span := record(t, func(scope otel.Scope) { scope.TraceIfError(nil) })

	assert.Empty(t, span.Events)
	assert.Equal(t, codes.Unset, span.Status.Code)
}

func TestScope_SetAttributes(t *testing.T) {
	start := time.Date(2025, 5, 21, 19, 0, 0, 0, time.UTC)

	span := record(t, func(scope otel.Scope) {
		scope.SetAttributes(map[string]any{
			"reservation.party_size": 4,
			"reservation.start":      start,
			"reservation.duration":   90 * time.Minute,
			"reservation.tables":     []string{"T001", "T002"},
			"reservation.staff":      true,
		})
	})

	partySize, _ := attr(span, "reservation.party_size")
	assert.Equal(t, int64(4), partySize.AsInt64())

	startAttr, _ := attr(span, "reservation.start")
	assert.Equal(t, "2025-05-21T19:00:00Z", startAttr.AsString())

	duration, _ := attr(span, "reservation.duration")
	assert.Equal(t, int64(90), duration.AsInt64())

	tables, _ := attr(span, "reservation.tables")
	assert.Equal(t, []string{"T001", "T002"}, tables.AsStringSlice())

	staff, _ := attr(span, "reservation.staff")
	assert.True(t, staff.AsBool())
}
