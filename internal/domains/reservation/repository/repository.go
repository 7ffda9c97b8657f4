package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/internal/domains/reservation/model"
	"bistro/internal/domains/reservation/model/dto"
	tableModel "bistro/internal/domains/table/model"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	gRepo "bistro/shared/repository"
	"bistro/shared/timezone"

	"github.com/lib/pq"
)

type Reservation interface {
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Record, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Record, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)

	// FindByID returns nil when the reservation does not exist.
	FindByID(ctx context.Context, id model.ReservationID) (*model.Reservation, error)
	// FindByIDForUpdate is FindByID that also locks the row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, id model.ReservationID) (*model.Reservation, error)
	// FindByTableAndDate returns every reservation of the table starting on date, in start order.
	FindByTableAndDate(ctx context.Context, tableID tableModel.TableID, date time.Time) ([]*model.Reservation, error)
	// Save inserts or overwrites the reservation and refreshes its audit fields.
	Save(ctx context.Context, reservation *model.Reservation) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Record]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Record](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id model.ReservationID) (*model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindByID")
	defer scope.End()

	record, err := r.Get(ctx, shared.FilterByID(id.String(), model.FieldID, model.TableName))
	if err != nil {
		return nil, err
	}

	if record.ID == constant.Empty {
		return nil, nil
	}

	reservation, err := record.ToReservation()
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return reservation, nil
}

func (r *repositoryImpl) FindByIDForUpdate(ctx context.Context, id model.ReservationID) (*model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindByIDForUpdate")
	defer scope.End()

	record, err := r.GetForUpdate(ctx, shared.FilterByID(id.String(), model.FieldID, model.TableName))
	if err != nil {
		return nil, err
	}

	if record.ID == constant.Empty {
		return nil, nil
	}

	reservation, err := record.ToReservation()
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return reservation, nil
}

func (r *repositoryImpl) FindByTableAndDate(ctx context.Context, tableID tableModel.TableID, date time.Time) ([]*model.Reservation, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.FindByTableAndDate")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		model.FieldTableID: tableID.String(),
		"date":             date,
	})

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: append([]any{
			gDto.Filter{Field: model.FieldTableID, Operator: gDto.FilterOperatorEq, Value: tableID.String(), Table: model.TableName},
		}, dto.DayFilters(timezone.ToAppTime(date))...),
	}

	records, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldStartTime, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		return nil, err
	}

	reservations := make([]*model.Reservation, 0, len(records))

	for _, record := range records {
		reservation, err := record.ToReservation()
		if err != nil {
			scope.TraceError(err)

			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	return reservations, nil
}

func (r *repositoryImpl) Save(ctx context.Context, reservation *model.Reservation) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".reservation.Save")
	defer scope.End()

	reservation.Touch(timezone.Now(), shared.ActorFromContext(ctx))

	if err := r.Upsert(ctx, model.FromReservation(reservation)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeExclusionViolation {
			return failure.Conflict(fmt.Sprintf("table %s already has a reservation overlapping %s", // nolint:wrapcheck
				reservation.TableID(), reservation.Time()))
		}

		return err
	}

	return nil
}
