// Package timezone pins every calendar computation to the restaurant's wall clock.
//
// Reservations are stored as instants but judged by local time: opening hours, the
// day a reservation belongs to and the `date` query parameters all use the zone in
// APP_TIMEZONE (IANA names only, e.g. "America/Sao_Paulo"). The zone is loaded when
// the package is imported and falls back to UTC.
//
//	day := timezone.StartOfDay(reservationStart) // local midnight
//	open := timezone.At(reservationStart, 11)    // 11:00 that day
//	d, err := timezone.Parse(time.DateOnly, "2025-06-01")
package timezone
