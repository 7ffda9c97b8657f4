package model

import (
	"fmt"
	"time"

	"bistro/shared/constant"
	"bistro/shared/failure"
	"bistro/shared/timezone"
)

const (
	OpeningHour = 11
	ClosingHour = 23

	MinDurationMinutes     = 30
	MaxDurationMinutes     = 480
	DefaultDurationMinutes = 120

	LeadTime      = time.Hour
	HorizonMonths = 3
)

// HorizonFrom is the latest start accepted relative to now.
func HorizonFrom(now time.Time) time.Time {
	return now.AddDate(0, HorizonMonths, 0)
}

// ReservationTime is a half-open interval [start, start+duration).
type ReservationTime struct {
	start    time.Time
	duration time.Duration
}

// NewReservationTime validates a requested interval against the clock and the opening hours.
func NewReservationTime(start time.Time, durationMinutes int, now time.Time) (ReservationTime, error) {
	if start.IsZero() {
		return ReservationTime{}, failure.BadRequestFromString("start time is required") // nolint:wrapcheck
	}

	rt, err := RestoreReservationTime(start, durationMinutes)
	if err != nil {
		return ReservationTime{}, err
	}

	if !start.After(now) {
		return ReservationTime{}, failure.BadRequestFromString("start time must be in the future") // nolint:wrapcheck
	}

	if !rt.IsWithinOperatingHours() {
		return ReservationTime{}, failure.Validation(failure.ReasonOutOfHours, // nolint:wrapcheck
			fmt.Sprintf("reservation must fall between %02d:00 and %02d:00", OpeningHour, ClosingHour))
	}

	if start.After(HorizonFrom(now)) {
		return ReservationTime{}, failure.Validation(failure.ReasonHorizon, // nolint:wrapcheck
			fmt.Sprintf("reservation cannot be made more than %d months ahead", HorizonMonths))
	}

	return rt, nil
}

// RestoreReservationTime rebuilds a stored interval; only the duration bounds are checked.
func RestoreReservationTime(start time.Time, durationMinutes int) (ReservationTime, error) {
	if durationMinutes < MinDurationMinutes || durationMinutes > MaxDurationMinutes {
		return ReservationTime{}, failure.BadRequestFromString( // nolint:wrapcheck
			fmt.Sprintf("duration must be between %d and %d minutes", MinDurationMinutes, MaxDurationMinutes))
	}

	return ReservationTime{
		start:    start,
		duration: time.Duration(durationMinutes) * time.Minute,
	}, nil
}

func (rt ReservationTime) Start() time.Time {
	return rt.start
}

func (rt ReservationTime) End() time.Time {
	return rt.start.Add(rt.duration)
}

func (rt ReservationTime) DurationMinutes() int {
	return int(rt.duration / time.Minute)
}

func (rt ReservationTime) IsZero() bool {
	return rt.start.IsZero()
}

// Overlaps treats intervals that only touch as disjoint.
func (rt ReservationTime) Overlaps(other ReservationTime) bool {
	return rt.start.Before(other.End()) && rt.End().After(other.start)
}

func (rt ReservationTime) IsWithinOperatingHours() bool {
	open := timezone.At(rt.start, OpeningHour)
	closing := timezone.At(rt.start, ClosingHour)

	return !rt.start.Before(open) && !rt.End().After(closing)
}

// Date is midnight of the start's day in the restaurant's time zone.
func (rt ReservationTime) Date() time.Time {
	return timezone.StartOfDay(rt.start)
}

func (rt ReservationTime) Equal(other ReservationTime) bool {
	return rt.start.Equal(other.start) && rt.duration == other.duration
}

func (rt ReservationTime) String() string {
	local := timezone.ToAppTime(rt.start)

	return fmt.Sprintf("%s %s-%s", local.Format(constant.DateOnly), local.Format(constant.ClockFormat),
		timezone.ToAppTime(rt.End()).Format(constant.ClockFormat))
}

