package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"bistro/config"
	"bistro/infras/otel/mocks"
	s3Mocks "bistro/infras/s3/mocks"
	tableMocks "bistro/internal/domains/table/mocks"
	"bistro/internal/domains/table/model"
	"bistro/internal/domains/table/model/dto"
	"bistro/internal/domains/table/service"
	cacheMocks "bistro/shared/cache/mocks"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
)

func newService(t *testing.T) (service.Table, *tableMocks.MockTable, *cacheMocks.MockRedisCache, *s3Mocks.MockS3) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := tableMocks.NewMockTable(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.TableDirectory = "tables"

	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel(), mockS3), mockRepo, mockCache, mockS3
}

func TestTableService_Create(t *testing.T) {
	svc, mockRepo, _, mockS3 := newService(t)

	image := &multipart.FileHeader{Filename: "window.jpg"}

	tests := []struct {
		name      string
		req       dto.CreateTableRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "successful creation without image",
			req:  dto.CreateTableRequest{ID: "T020", Capacity: 4, Location: "Terraço"},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record model.Record) error {
						assert.Equal(t, "T020", record.ID)
						assert.True(t, record.IsActive)
						assert.Equal(t, "staff-1", record.CreatedBy)

						return nil
					})
			},
		},
		{
			name: "successful creation with image",
			req:  dto.CreateTableRequest{ID: "T021", Capacity: 2, Image: image},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockS3.EXPECT().
					UploadFile(gomock.Any(), "tables", gomock.Any(), image, gomock.Any()).
					Return("https://cdn.example.com/tables/a.jpg", nil)
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, record model.Record) error {
						assert.Equal(t, "https://cdn.example.com/tables/a.jpg", record.ImageURL)

						return nil
					})
			},
		},
		{
			name: "insert failure removes uploaded image",
			req:  dto.CreateTableRequest{ID: "T022", Capacity: 2, Image: image},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				mockS3.EXPECT().
					UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/tables/b.jpg", nil)
				mockRepo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
				mockS3.EXPECT().DeleteFile(gomock.Any(), "tables", gomock.Any()).Return(nil)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "duplicate id",
			req:  dto.CreateTableRequest{ID: "T001", Capacity: 2},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name:      "capacity out of range",
			req:       dto.CreateTableRequest{ID: "T023", Capacity: 25},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyActor, "staff-1")
			err := svc.Create(ctx, tt.req)

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_Get(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
		wantCode  int
	}{
		{
			name: "cache miss reads repository",
			id:   "T001",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), "table:get:T001", gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Record{ID: "T001", Capacity: 2, IsActive: true}, nil)
			},
		},
		{
			name: "not found",
			id:   "T999",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Record{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "repository error",
			id:   "T001",
			setupMock: func() {
				mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
				mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Record{}, errors.New("database error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.Get(context.Background(), tt.id)

			time.Sleep(10 * time.Millisecond)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.id, res.ID)
		})
	}
}

func TestTableService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache, _ := newService(t)

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	mockRepo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.Record{
		{ID: "T001", Capacity: 2, IsActive: true},
		{ID: "T002", Capacity: 2, IsActive: true},
	}, nil)

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 2}, gDto.FilterGroup{})

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Tables, 2)
}

func TestTableService_Update(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	capacity := 6
	tooBig := 30
	active := false

	tests := []struct {
		name      string
		req       dto.UpdateTableRequest
		setupMock func()
		wantCode  int
	}{
		{
			name: "deactivate and resize",
			req:  dto.UpdateTableRequest{Capacity: &capacity, IsActive: &active},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 6, fields[model.FieldCapacity])
						assert.Equal(t, false, fields[model.FieldIsActive])

						return nil
					})
			},
		},
		{
			name:      "empty request",
			req:       dto.UpdateTableRequest{},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "invalid capacity",
			req:       dto.UpdateTableRequest{Capacity: &tooBig},
			setupMock: func() {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "table not found",
			req:  dto.UpdateTableRequest{Capacity: &capacity},
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Update(context.Background(), tt.req, "T004")

			time.Sleep(10 * time.Millisecond)

			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTableService_Seed(t *testing.T) {
	svc, mockRepo, _, _ := newService(t)

	mockRepo.EXPECT().
		InsertBulk(gomock.Any(), gomock.Len(12)).
		Return(nil)

	n, err := svc.Seed(context.Background())

	time.Sleep(10 * time.Millisecond)

	assert.NoError(t, err)
	assert.Equal(t, 12, n)
}
