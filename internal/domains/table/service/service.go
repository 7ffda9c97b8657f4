package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Table=MockTableService

import (
	"context"
	"fmt"
	"path/filepath"

	"bistro/config"
	"bistro/infras/otel"
	"bistro/infras/s3"
	"bistro/internal/domains/table/model"
	"bistro/internal/domains/table/model/dto"
	"bistro/internal/domains/table/repository"
	"bistro/shared"
	"bistro/shared/cache"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetTable    = "table:get"
	cacheGetAllTable = "table:gets"
	cacheCountTable  = "table:count"
)

type Table interface {
	Create(ctx context.Context, req dto.CreateTableRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTablesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.TableResponse, error)
	Update(ctx context.Context, req dto.UpdateTableRequest, id string) error
	// Seed inserts the sample floor, skipping tables that already exist.
	Seed(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo  repository.Table
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
	s3    s3.S3
}

func New(repo repository.Table, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Table {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
		s3:    s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTableRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user := shared.ActorFromContext(ctx)

	record, err := req.ToModel(user)
	if err != nil {
		return err
	}

	exist, err := s.repo.Exist(ctx, shared.FilterByID(record.ID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check table existence")

		return fmt.Errorf("failed to check table existence: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("table %s already exists", record.ID)) // nolint:wrapcheck
	}

	directory := s.cfg.External.S3.TableDirectory

	var uploadedObjectName string

	if req.Image != nil {
		filename := uuid.NewString() + filepath.Ext(req.Image.Filename)

		url, err := s.s3.UploadFile(ctx, directory, req.File, req.Image, filename)
		if err != nil {
			log.Error().Err(err).Msg("failed to upload table image")

			return fmt.Errorf("failed to upload image: %w", err)
		}

		record.ImageURL = url
		uploadedObjectName = filename
	}

	if err = s.repo.Insert(ctx, record); err != nil {
		log.Error().Err(err).Msg("failed to insert table")

		if uploadedObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, directory, uploadedObjectName)
		}

		return fmt.Errorf("failed to insert table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTablesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllTable, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for tables")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	records, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get tables")

		return res, fmt.Errorf("failed to get tables: %w", err)
	}

	res.FromModels(records, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save tables to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountTable, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count tables")

		return res, fmt.Errorf("failed to count tables: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TableResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetTable, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for table")

		return res, nil
	}

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get table")

		return res, fmt.Errorf("failed to get table: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFound(fmt.Sprintf("table %s not found", id)) // nolint:wrapcheck
	}

	res.FromModel(record)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save table to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateTableRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return failure.BadRequestFromString("nothing to update") // nolint:wrapcheck
	}

	if req.Capacity != nil {
		if _, err = model.NewCapacity(*req.Capacity); err != nil {
			return err
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check table existence")

		return fmt.Errorf("failed to check table existence: %w", err)
	}

	if !exist {
		return failure.NotFound(fmt.Sprintf("table %s not found", id)) // nolint:wrapcheck
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, shared.ActorFromContext(ctx)), filter); err != nil {
		log.Error().Err(err).Msg("failed to update table")

		return fmt.Errorf("failed to update table: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetTable, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete table cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
	}()

	return nil
}

func (s *serviceImpl) Seed(ctx context.Context) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".table.Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	now := timezone.Now()
	metadata := gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  constant.ContextStaff,
		ModifiedBy: constant.ContextStaff,
	}

	tables := model.SampleTables()
	records := make([]model.Record, len(tables))

	for i, table := range tables {
		records[i] = model.FromTable(table, metadata)
	}

	if err = s.repo.InsertBulk(ctx, records); err != nil {
		log.Error().Err(err).Msg("failed to seed tables")

		return 0, fmt.Errorf("failed to seed tables: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetTable)
		shared.InvalidateCaches(c, s.cache, cacheGetAllTable)
		shared.InvalidateCaches(c, s.cache, cacheCountTable)
	}()

	return len(records), nil
}
