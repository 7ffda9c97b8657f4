package timezone_test

import (
	"testing"
	"time"

	"bistro/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowUsesRestaurantLocation(t *testing.T) {
	assert.Equal(t, timezone.GetLocation(), timezone.Now().Location())
}

func TestParseAndFormatRoundTrip(t *testing.T) {
	parsed, err := timezone.Parse(time.DateOnly, "2025-06-01")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", timezone.Format(parsed, time.DateOnly))
	assert.Equal(t, 0, parsed.Hour())
}

func TestStartOfDay(t *testing.T) {
	local := time.Date(2025, 6, 1, 21, 45, 0, 0, timezone.GetLocation())

	day := timezone.StartOfDay(local)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, timezone.GetLocation()), day)
	assert.True(t, timezone.StartOfDay(day).Equal(day), "idempotent")
}

func TestAt(t *testing.T) {
	local := time.Date(2025, 6, 1, 8, 30, 0, 0, timezone.GetLocation())

	tests := []struct {
		name string
		hour int
		want time.Time
	}{
		{name: "opening", hour: 11, want: time.Date(2025, 6, 1, 11, 0, 0, 0, timezone.GetLocation())},
		{name: "closing", hour: 23, want: time.Date(2025, 6, 1, 23, 0, 0, 0, timezone.GetLocation())},
		{name: "midnight", hour: 0, want: time.Date(2025, 6, 1, 0, 0, 0, 0, timezone.GetLocation())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(timezone.At(local, tt.hour)))
		})
	}
}
