package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"bistro/infras/otel"
	"bistro/infras/postgres"
	"bistro/internal/domains/table/model"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	gRepo "bistro/shared/repository"
)

type Table interface {
	Insert(ctx context.Context, record model.Record) error
	InsertBulk(ctx context.Context, records []model.Record) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Record, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Record, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error

	// FindByID returns nil when the table does not exist.
	FindByID(ctx context.Context, id model.TableID) (*model.Table, error)
	// FindActive lists active tables seating at least minCapacity, smallest first.
	FindActive(ctx context.Context, minCapacity int) ([]model.Table, error)
	// Lock row-locks the tables until the surrounding transaction ends.
	Lock(ctx context.Context, ids ...model.TableID) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Record]
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Table {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Record](model.EntityName, model.TableName, model.FieldID, db, otel),
		otel:       otel,
	}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id model.TableID) (*model.Table, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".table.FindByID")
	defer scope.End()

	record, err := r.Get(ctx, shared.FilterByID(id.String(), model.FieldID, model.TableName))
	if err != nil {
		return nil, err
	}

	if record.ID == constant.Empty {
		return nil, nil
	}

	table, err := record.ToTable()
	if err != nil {
		scope.TraceError(err)

		return nil, err
	}

	return &table, nil
}

func (r *repositoryImpl) FindActive(ctx context.Context, minCapacity int) ([]model.Table, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".table.FindActive")
	defer scope.End()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
			gDto.Filter{Field: model.FieldCapacity, Operator: gDto.FilterOperatorGreaterEq, Value: minCapacity, Table: model.TableName},
		},
	}

	records, err := r.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldCapacity, SortDir: gDto.SortDirAsc}, filter)
	if err != nil {
		return nil, err
	}

	tables := make([]model.Table, 0, len(records))

	for _, record := range records {
		table, err := record.ToTable()
		if err != nil {
			return nil, fmt.Errorf("failed to map table: %w", err)
		}

		tables = append(tables, table)
	}

	return tables, nil
}

func (r *repositoryImpl) Lock(ctx context.Context, ids ...model.TableID) error {
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = id.String()
	}

	return r.LockByIDs(ctx, keys...)
}
