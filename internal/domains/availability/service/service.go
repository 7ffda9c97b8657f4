package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"time"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/internal/domains/availability/model/dto"
	reservationModel "bistro/internal/domains/reservation/model"
	reservationRepository "bistro/internal/domains/reservation/repository"
	tableModel "bistro/internal/domains/table/model"
	tableRepository "bistro/internal/domains/table/repository"
	"bistro/shared/constant"
	"bistro/shared/failure"
	"bistro/shared/timezone"

	"github.com/rs/zerolog/log"
)

const defaultSlotsPerDay = 12

type Availability interface {
	// CheckAvailability returns nil when candidate can be booked on the table. Reservations
	// listed in exclude are ignored, which lets a reservation move within its own slot.
	CheckAvailability(ctx context.Context, tableID tableModel.TableID, candidate reservationModel.ReservationTime, exclude ...reservationModel.ReservationID) error
	GetAvailabilityReport(ctx context.Context, tableID tableModel.TableID, date time.Time) (dto.AvailabilityReport, error)
	FindAvailableTables(ctx context.Context, partySize int, candidate reservationModel.ReservationTime) ([]tableModel.Table, error)
}

type Option func(*serviceImpl)

// WithClock replaces the wall clock, e.g. to pin "now" in tests.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

type serviceImpl struct {
	reservations reservationRepository.Reservation
	tables       tableRepository.Table
	cfg          *config.Config
	otel         otel.Otel
	now          func() time.Time
}

func New(reservations reservationRepository.Reservation, tables tableRepository.Table, cfg *config.Config, otel otel.Otel, opts ...Option) Availability {
	s := &serviceImpl{
		reservations: reservations,
		tables:       tables,
		cfg:          cfg,
		otel:         otel,
		now:          timezone.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *serviceImpl) CheckAvailability(ctx context.Context, tableID tableModel.TableID, candidate reservationModel.ReservationTime, exclude ...reservationModel.ReservationID) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.CheckAvailability")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.checkRules(candidate); err != nil {
		return err
	}

	existing, err := s.reservations.FindByTableAndDate(ctx, tableID, candidate.Date())
	if err != nil {
		log.Error().Err(err).Str("table", tableID.String()).Msg("failed to load reservations for availability")

		return fmt.Errorf("failed to load reservations: %w", err)
	}

	for _, reservation := range existing {
		if !reservation.IsActive() || slices.Contains(exclude, reservation.ID()) {
			continue
		}

		if reservation.Time().Overlaps(candidate) {
			return failure.Conflict(fmt.Sprintf("table %s is already booked for %s", tableID, reservation.Time())) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) checkRules(candidate reservationModel.ReservationTime) error {
	now := s.now()

	if !candidate.IsWithinOperatingHours() {
		return failure.Unavailable(failure.ReasonOutOfHours, fmt.Sprintf("reservations are accepted between %02d:00 and %02d:00", // nolint:wrapcheck
			reservationModel.OpeningHour, reservationModel.ClosingHour))
	}

	if candidate.Start().Before(now.Add(reservationModel.LeadTime)) {
		return failure.Unavailable(failure.ReasonLeadTime, fmt.Sprintf("reservations must be made at least %s in advance", // nolint:wrapcheck
			reservationModel.LeadTime))
	}

	if candidate.Start().After(reservationModel.HorizonFrom(now)) {
		return failure.Unavailable(failure.ReasonHorizon, fmt.Sprintf("reservations cannot be made more than %d months ahead", // nolint:wrapcheck
			reservationModel.HorizonMonths))
	}

	return nil
}

func (s *serviceImpl) GetAvailabilityReport(ctx context.Context, tableID tableModel.TableID, date time.Time) (res dto.AvailabilityReport, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.GetAvailabilityReport")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	table, err := s.tables.FindByID(ctx, tableID)
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if table == nil {
		return res, failure.NotFound(fmt.Sprintf("table %s not found", tableID)) // nolint:wrapcheck
	}

	day := timezone.StartOfDay(date)

	existing, err := s.reservations.FindByTableAndDate(ctx, tableID, day)
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations for report")

		return res, fmt.Errorf("failed to load reservations: %w", err)
	}

	active := slices.DeleteFunc(existing, func(r *reservationModel.Reservation) bool {
		return !r.IsActive()
	})

	slotsPerDay := s.cfg.App.Reservation.SlotsPerDay
	if slotsPerDay <= 0 {
		slotsPerDay = defaultSlotsPerDay
	}

	return dto.NewAvailabilityReport(tableID, day, active, slotsPerDay), nil
}

func (s *serviceImpl) FindAvailableTables(ctx context.Context, partySize int, candidate reservationModel.ReservationTime) (res []tableModel.Table, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".availability.FindAvailableTables")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if partySize < 1 {
		return nil, failure.BadRequestFromString("number of people must be positive") // nolint:wrapcheck
	}

	// Rules that depend only on the candidate fail for every table alike.
	if err = s.checkRules(candidate); err != nil {
		return nil, err
	}

	tables, err := s.tables.FindActive(ctx, partySize)
	if err != nil {
		log.Error().Err(err).Msg("failed to list active tables")

		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	res = make([]tableModel.Table, 0, len(tables))

	for _, table := range tables {
		if !table.CanSeat(partySize) {
			continue
		}

		err = s.CheckAvailability(ctx, table.ID(), candidate)
		if failure.HasReason(err, failure.ReasonConflict) {
			continue
		}

		if err != nil {
			return nil, err
		}

		res = append(res, table)
	}

	return res, nil
}
