package model_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"bistro/internal/domains/reservation/model"
	"bistro/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.UTC)
}

func mustTime(t *testing.T, start time.Time, minutes int) model.ReservationTime {
	t.Helper()

	rt, err := model.RestoreReservationTime(start, minutes)
	require.NoError(t, err)

	return rt
}

func TestNewReservationTime(t *testing.T) {
	tests := []struct {
		name       string
		start      time.Time
		duration   int
		wantReason string
	}{
		{name: "evening slot", start: at(1, 19, 0), duration: 120},
		{name: "opens at eleven", start: at(1, 11, 0), duration: 30},
		{name: "ends exactly at closing", start: at(1, 21, 0), duration: 120},
		{name: "before opening", start: at(1, 10, 30), duration: 60, wantReason: failure.ReasonOutOfHours},
		{name: "one minute before opening", start: at(1, 10, 59), duration: 60, wantReason: failure.ReasonOutOfHours},
		{name: "ends one minute after closing", start: at(1, 21, 1), duration: 120, wantReason: failure.ReasonOutOfHours},
		{name: "ends after closing", start: at(1, 22, 0), duration: 120, wantReason: failure.ReasonOutOfHours},
		{name: "duration too short", start: at(1, 19, 0), duration: 29, wantReason: failure.ReasonValidation},
		{name: "duration too long", start: at(1, 11, 0), duration: 481, wantReason: failure.ReasonValidation},
		{name: "in the past", start: now.Add(-time.Hour), duration: 60, wantReason: failure.ReasonValidation},
		{name: "zero start", start: time.Time{}, duration: 60, wantReason: failure.ReasonValidation},
		{
			name:       "beyond three months",
			start:      time.Date(2025, 9, 1, 19, 0, 0, 0, time.UTC),
			duration:   120,
			wantReason: failure.ReasonHorizon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, err := model.NewReservationTime(tt.start, tt.duration, now)
			if tt.wantReason != "" {
				assert.True(t, failure.HasReason(err, tt.wantReason), "got %v", err)
				assert.True(t, failure.IsValidation(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.start, rt.Start())
			assert.Equal(t, tt.start.Add(time.Duration(tt.duration)*time.Minute), rt.End())
			assert.True(t, rt.IsWithinOperatingHours())
		})
	}
}

func TestNewReservationTime_ThirtyMinutesAheadIsAccepted(t *testing.T) {
	current := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	_, err := model.NewReservationTime(current.Add(30*time.Minute), 60, current)
	assert.NoError(t, err)
}

func TestReservationTime_Overlaps(t *testing.T) {
	base := mustTime(t, at(1, 19, 0), 120)

	tests := []struct {
		name  string
		other model.ReservationTime
		want  bool
	}{
		{name: "inside", other: mustTime(t, at(1, 19, 30), 60), want: true},
		{name: "straddles start", other: mustTime(t, at(1, 18, 0), 90), want: true},
		{name: "straddles end", other: mustTime(t, at(1, 20, 30), 60), want: true},
		{name: "same interval", other: base, want: true},
		{name: "touches end", other: mustTime(t, at(1, 21, 0), 60), want: false},
		{name: "touches start", other: mustTime(t, at(1, 17, 0), 120), want: false},
		{name: "other day", other: mustTime(t, at(2, 19, 0), 120), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Overlaps(tt.other))
			assert.Equal(t, tt.want, tt.other.Overlaps(base))
		})
	}
}

func TestReservationTime_OverlapsRandomPairs(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 42))
	day := at(1, 0, 0)

	for range 1000 {
		aStart, aMinutes := rng.IntN(1440), 30+rng.IntN(451)
		bStart, bMinutes := rng.IntN(1440), 30+rng.IntN(451)

		a := mustTime(t, day.Add(time.Duration(aStart)*time.Minute), aMinutes)
		b := mustTime(t, day.Add(time.Duration(bStart)*time.Minute), bMinutes)

		want := aStart < bStart+bMinutes && aStart+aMinutes > bStart

		require.Equal(t, want, a.Overlaps(b), "a=%s b=%s", a, b)
		require.Equal(t, want, b.Overlaps(a), "a=%s b=%s", a, b)

		touching := mustTime(t, a.End(), bMinutes)
		require.False(t, a.Overlaps(touching), "a=%s touching=%s", a, touching)
	}
}

func TestReservationTime_Date(t *testing.T) {
	rt := mustTime(t, at(1, 19, 45), 120)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), rt.Date())
	assert.Equal(t, 120, rt.DurationMinutes())
	assert.Equal(t, "2025-06-01 19:45-21:45", rt.String())
}
