package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Reservation=MockReservationService

import (
	"context"
	"fmt"
	"time"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/infras/postgres"
	availabilityService "bistro/internal/domains/availability/service"
	"bistro/internal/domains/notification/dispatcher"
	"bistro/internal/domains/reservation/model"
	"bistro/internal/domains/reservation/model/dto"
	"bistro/internal/domains/reservation/repository"
	tableModel "bistro/internal/domains/table/model"
	tableRepository "bistro/internal/domains/table/repository"
	"bistro/shared"
	"bistro/shared/cache"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	"bistro/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (dto.ReservationResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	// GetByTableAndDate lists every reservation of the table starting on date, whatever its status.
	GetByTableAndDate(ctx context.Context, tableID string, date time.Time) ([]dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (dto.ReservationResponse, error)
	Confirm(ctx context.Context, id string) (dto.ReservationResponse, error)
	Cancel(ctx context.Context, id string) (dto.ReservationResponse, error)
	Complete(ctx context.Context, id string) (dto.ReservationResponse, error)
	MarkNoShow(ctx context.Context, id string) (dto.ReservationResponse, error)
}

type Option func(*serviceImpl)

// WithClock replaces the wall clock used for time validation.
func WithClock(now func() time.Time) Option {
	return func(s *serviceImpl) {
		s.now = now
	}
}

type serviceImpl struct {
	repo         repository.Reservation
	tables       tableRepository.Table
	availability availabilityService.Availability
	transactor   postgres.Transactor
	dispatcher   dispatcher.Dispatcher
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	now          func() time.Time
}

func New(
	repo repository.Reservation,
	tables tableRepository.Table,
	availability availabilityService.Availability,
	transactor postgres.Transactor,
	dispatcher dispatcher.Dispatcher,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	opts ...Option,
) Reservation {
	s := &serviceImpl{
		repo:         repo,
		tables:       tables,
		availability: availability,
		transactor:   transactor,
		dispatcher:   dispatcher,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		now:          timezone.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tableID, err := tableModel.NewTableID(req.TableID)
	if err != nil {
		return res, err
	}

	var reservation *model.Reservation

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.tables.Lock(ctx, tableID); err != nil {
			log.Error().Err(err).Str("table", tableID.String()).Msg("failed to lock table")

			return fmt.Errorf("failed to lock table: %w", err)
		}

		if err := s.checkTable(ctx, tableID, req.PartySize); err != nil {
			return err
		}

		customer, err := model.NewCustomerInfo(req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.SpecialRequests)
		if err != nil {
			return err
		}

		now := s.now()

		rt, err := model.NewReservationTime(req.StartTime, s.durationOrDefault(req.DurationMinutes), now)
		if err != nil {
			return err
		}

		if err := s.availability.CheckAvailability(ctx, tableID, rt); err != nil {
			return err
		}

		reservation, err = model.New(model.GenerateReservationID(), tableID, customer, rt, req.PartySize, now)
		if err != nil {
			return err
		}

		if err := s.repo.Save(ctx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to save reservation")

			return fmt.Errorf("failed to save reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	log.Info().
		Str("reservation", reservation.ID().String()).
		Str("table", tableID.String()).
		Str("time", reservation.Time().String()).
		Msg("reservation created")

	s.afterCommit(ctx, reservation)

	res.FromReservation(reservation)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	if req.SortBy == constant.Empty {
		req.SortBy = model.FieldStartTime
	}

	records, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(records, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetByTableAndDate(ctx context.Context, tableID string, date time.Time) (res []dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.GetByTableAndDate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := tableModel.NewTableID(tableID)
	if err != nil {
		return nil, err
	}

	reservations, err := s.repo.FindByTableAndDate(ctx, id, date)
	if err != nil {
		log.Error().Err(err).Str("table", tableID).Msg("failed to get reservations of table")

		return nil, fmt.Errorf("failed to get reservations of table: %w", err)
	}

	res = make([]dto.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		res[i].FromReservation(reservation)
	}

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	var (
		reservation *model.Reservation
		unchanged   bool
	)

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		reservation, err = s.loadForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if !reservation.CanBeModified() {
			return failure.InvalidStateTransition(fmt.Sprintf("reservation in status %s cannot be modified", reservation.Status())) // nolint:wrapcheck
		}

		tableID := reservation.TableID()
		if req.TableID != nil {
			if tableID, err = tableModel.NewTableID(*req.TableID); err != nil {
				return err
			}
		}

		partySize := reservation.PartySize()
		if req.PartySize != nil {
			partySize = *req.PartySize
		}

		current := reservation.Time()
		start, duration := current.Start(), current.DurationMinutes()

		if req.StartTime != nil {
			start = *req.StartTime
		}

		if req.DurationMinutes != nil {
			duration = *req.DurationMinutes
		}

		rt := current
		timeChanged := !start.Equal(current.Start()) || duration != current.DurationMinutes()

		if timeChanged {
			if rt, err = model.NewReservationTime(start, duration, s.now()); err != nil {
				return err
			}
		}

		tableChanged := tableID != reservation.TableID()

		if !tableChanged && !timeChanged && partySize == reservation.PartySize() {
			unchanged = true

			return nil
		}

		if err = s.tables.Lock(ctx, reservation.TableID(), tableID); err != nil {
			log.Error().Err(err).Msg("failed to lock tables")

			return fmt.Errorf("failed to lock tables: %w", err)
		}

		if err = s.checkTable(ctx, tableID, partySize); err != nil {
			return err
		}

		if tableChanged || timeChanged {
			if err = s.availability.CheckAvailability(ctx, tableID, rt, reservation.ID()); err != nil {
				return err
			}
		}

		if err = reservation.Modify(tableID, rt, partySize); err != nil {
			return err
		}

		if err = s.repo.Save(ctx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to save reservation")

			return fmt.Errorf("failed to save reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	if unchanged {
		log.Info().Str("reservation", id).Msg("update left the reservation as it was")
	} else {
		s.afterCommit(ctx, reservation)
	}

	res.FromReservation(reservation)

	return res, nil
}

func (s *serviceImpl) Confirm(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Confirm")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, (*model.Reservation).Confirm)
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, (*model.Reservation).Cancel)
}

func (s *serviceImpl) Complete(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, (*model.Reservation).Complete)
}

func (s *serviceImpl) MarkNoShow(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".reservation.MarkNoShow")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.transition(ctx, id, (*model.Reservation).MarkNoShow)
}

// transition locks and reads the reservation, applies one state change and saves it under the
// table lock.
func (s *serviceImpl) transition(ctx context.Context, id string, apply func(*model.Reservation) error) (res dto.ReservationResponse, err error) {
	var reservation *model.Reservation

	err = s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		reservation, err = s.loadForUpdate(ctx, id)
		if err != nil {
			return err
		}

		if err = s.tables.Lock(ctx, reservation.TableID()); err != nil {
			log.Error().Err(err).Msg("failed to lock table")

			return fmt.Errorf("failed to lock table: %w", err)
		}

		if err = apply(reservation); err != nil {
			return err
		}

		if err = s.repo.Save(ctx, reservation); err != nil {
			log.Error().Err(err).Msg("failed to save reservation")

			return fmt.Errorf("failed to save reservation: %w", err)
		}

		return nil
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	log.Info().
		Str("reservation", reservation.ID().String()).
		Str("status", reservation.Status().String()).
		Msg("reservation status changed")

	s.afterCommit(ctx, reservation)

	res.FromReservation(reservation)

	return res, nil
}

// loadForUpdate reads the current row and holds its lock until the transaction ends, so
// concurrent writers to one reservation take turns.
func (s *serviceImpl) loadForUpdate(ctx context.Context, id string) (*model.Reservation, error) {
	reservationID, err := model.NewReservationID(id)
	if err != nil {
		return nil, err
	}

	reservation, err := s.repo.FindByIDForUpdate(ctx, reservationID)
	if err != nil {
		log.Error().Err(err).Str("reservation", id).Msg("failed to get reservation")

		return nil, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation == nil {
		return nil, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	return reservation, nil
}

// checkTable verifies the table exists, is in service and seats partySize.
func (s *serviceImpl) checkTable(ctx context.Context, tableID tableModel.TableID, partySize int) error {
	table, err := s.tables.FindByID(ctx, tableID)
	if err != nil {
		log.Error().Err(err).Str("table", tableID.String()).Msg("failed to get table")

		return fmt.Errorf("failed to get table: %w", err)
	}

	if table == nil {
		return failure.NotFound(fmt.Sprintf("table %s not found", tableID)) // nolint:wrapcheck
	}

	return table.CheckSeating(partySize) // nolint:wrapcheck
}

func (s *serviceImpl) durationOrDefault(minutes int) int {
	if minutes > 0 {
		return minutes
	}

	if d := s.cfg.App.Reservation.DefaultDurationMinutes; d > 0 {
		return d
	}

	return model.DefaultDurationMinutes
}

// afterCommit hands the drained events to the dispatcher and drops stale cache entries.
func (s *serviceImpl) afterCommit(ctx context.Context, reservation *model.Reservation) {
	if events := reservation.PullDomainEvents(); len(events) > 0 {
		s.dispatcher.Dispatch(ctx, events...)
	}

	id := reservation.ID().String()

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
