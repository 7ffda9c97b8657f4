package timezone

import (
	"time"

	"bistro/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Use IANA names like 'America/Sao_Paulo' or 'Europe/Lisbon'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Restaurant timezone initialized")
}

// Now returns the current time in the restaurant's time zone.
func Now() time.Time {
	return time.Now().In(GetLocation())
}

// ToAppTime converts t to the restaurant's time zone.
func ToAppTime(t time.Time) time.Time {
	return t.In(GetLocation())
}

// GetLocation returns the restaurant's location, UTC until init has run.
func GetLocation() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}

// Parse parses value in the restaurant's time zone.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, GetLocation())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// StartOfDay is local midnight of the calendar day t falls on in the restaurant.
func StartOfDay(t time.Time) time.Time {
	return At(t, 0)
}

// At is hour:00 local time on the restaurant calendar day of t. Wall-clock hours survive DST shifts.
func At(t time.Time, hour int) time.Time {
	local := ToAppTime(t)
	y, m, d := local.Date()

	return time.Date(y, m, d, hour, 0, 0, 0, local.Location())
}
