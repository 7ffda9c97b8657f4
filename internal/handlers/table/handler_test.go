package table_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bistro/config"
	otelMocks "bistro/infras/otel/mocks"
	availabilityMocks "bistro/internal/domains/availability/mocks"
	availabilityDto "bistro/internal/domains/availability/model/dto"
	reservationMocks "bistro/internal/domains/reservation/mocks"
	reservationModel "bistro/internal/domains/reservation/model"
	reservationDto "bistro/internal/domains/reservation/model/dto"
	tableMocks "bistro/internal/domains/table/mocks"
	tableModel "bistro/internal/domains/table/model"
	"bistro/internal/domains/table/model/dto"
	"bistro/internal/handlers/table"
	"bistro/shared/constant"
	"bistro/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const staffKey = "staff-key"

type deps struct {
	tables       *tableMocks.MockTableService
	availability *availabilityMocks.MockAvailability
	reservations *reservationMocks.MockReservationService
}

func newRouter(t *testing.T) (http.Handler, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		tables:       tableMocks.NewMockTableService(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		reservations: reservationMocks.NewMockReservationService(ctrl),
	}

	cfg := &config.Config{}
	cfg.App.APIKey = staffKey

	auth := middleware.NewAuthMiddleware(otelMocks.NewOtel(), cfg)
	handler := table.New(d.tables, d.availability, d.reservations, auth, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(auth.APIKey)
	handler.Router(router)

	return router, d
}

func mustTable(t *testing.T, id string, seats int) tableModel.Table {
	t.Helper()

	tableID, err := tableModel.NewTableID(id)
	require.NoError(t, err)

	capacity, err := tableModel.NewCapacity(seats)
	require.NoError(t, err)

	tbl, err := tableModel.New(tableID, capacity, "window")
	require.NoError(t, err)

	return tbl
}

func TestHandler_GetAvailableTables(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		setup     func(t *testing.T, d deps)
		wantCode  int
		wantCount int
	}{
		{
			name:  "defaults to a two hour slot",
			query: "party_size=4&start_time=2025-05-21T19:00:00Z",
			setup: func(t *testing.T, d deps) {
				d.availability.EXPECT().FindAvailableTables(gomock.Any(), 4, gomock.Any()).
					DoAndReturn(func(_ any, _ int, candidate reservationModel.ReservationTime) ([]tableModel.Table, error) {
						assert.Equal(t, 120, candidate.DurationMinutes())
						assert.True(t, candidate.Start().Equal(time.Date(2025, 5, 21, 19, 0, 0, 0, time.UTC)))

						return []tableModel.Table{mustTable(t, "T004", 4), mustTable(t, "T007", 6)}, nil
					})
			},
			wantCode:  http.StatusOK,
			wantCount: 2,
		},
		{
			name:     "party size is required",
			query:    "start_time=2025-05-21T19:00:00Z",
			setup:    func(*testing.T, deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "start time must be RFC3339",
			query:    "party_size=2&start_time=tomorrow",
			setup:    func(*testing.T, deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "duration below the minimum",
			query:    "party_size=2&start_time=2025-05-21T19:00:00Z&duration_minutes=15",
			setup:    func(*testing.T, deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "party larger than any table",
			query:    "party_size=21&start_time=2025-05-21T19:00:00Z",
			setup:    func(*testing.T, deps) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newRouter(t)
			tt.setup(t, d)

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables/available?"+tt.query, nil))

			require.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode != http.StatusOK {
				return
			}

			var body struct {
				Data availabilityDto.AvailableTablesResponse `json:"data"`
			}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Len(t, body.Data.Tables, tt.wantCount)
		})
	}
}

func TestHandler_GetAvailabilityReport(t *testing.T) {
	t.Run("date is required", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables/T001/availability", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("reports the requested day", func(t *testing.T) {
		router, d := newRouter(t)

		d.availability.EXPECT().GetAvailabilityReport(gomock.Any(), tableModel.TableID("T001"), gomock.Any()).
			DoAndReturn(func(_ any, id tableModel.TableID, date time.Time) (availabilityDto.AvailabilityReport, error) {
				assert.Equal(t, "2025-05-21", date.Format(constant.DateOnly))

				return availabilityDto.AvailabilityReport{TableID: id.String(), Date: "2025-05-21", AvailableSlots: 12}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables/T001/availability?date=2025-05-21", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"available_slots":12`)
	})
}

func TestHandler_GetTableReservations(t *testing.T) {
	router, d := newRouter(t)

	d.reservations.EXPECT().GetByTableAndDate(gomock.Any(), "T002", gomock.Any()).
		Return([]reservationDto.ReservationResponse{{ID: "r-1", TableID: "T002"}}, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tables/T002/reservations?date=2025-05-21", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"r-1"`)
}

func TestHandler_CreateTable(t *testing.T) {
	form := func(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
		t.Helper()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)

		for k, v := range fields {
			require.NoError(t, writer.WriteField(k, v))
		}

		require.NoError(t, writer.Close())

		return body, writer.FormDataContentType()
	}

	tests := []struct {
		name     string
		key      string
		fields   map[string]string
		setup    func(d deps)
		wantCode int
	}{
		{
			name:     "guests cannot add tables",
			fields:   map[string]string{"id": "T013", "capacity": "4"},
			setup:    func(deps) {},
			wantCode: http.StatusForbidden,
		},
		{
			name:   "staff add a table",
			key:    staffKey,
			fields: map[string]string{"id": "T013", "capacity": "4", "location": "terrace"},
			setup: func(d deps) {
				d.tables.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.CreateTableRequest) error {
						assert.Equal(t, "T013", req.ID)
						assert.Equal(t, 4, req.Capacity)
						assert.Equal(t, "terrace", req.Location)
						assert.Nil(t, req.Image)

						return nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:     "capacity above twenty",
			key:      staffKey,
			fields:   map[string]string{"id": "T013", "capacity": "24"},
			setup:    func(deps) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "capacity not a number",
			key:      staffKey,
			fields:   map[string]string{"id": "T013", "capacity": "four"},
			setup:    func(deps) {},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, d := newRouter(t)
			tt.setup(d)

			body, contentType := form(t, tt.fields)

			req := httptest.NewRequest(http.MethodPost, "/tables/", body)
			req.Header.Set(constant.RequestHeaderContentType, contentType)

			if tt.key != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.key)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_UpdateTable(t *testing.T) {
	router, d := newRouter(t)

	d.tables.EXPECT().Update(gomock.Any(), gomock.Any(), "T012").
		DoAndReturn(func(_ any, req dto.UpdateTableRequest, _ string) error {
			require.NotNil(t, req.IsActive)
			assert.True(t, *req.IsActive)

			return nil
		})

	req := httptest.NewRequest(http.MethodPatch, "/tables/T012", strings.NewReader(`{"is_active": true}`))
	req.Header.Set(constant.RequestHeaderAPIKey, staffKey)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
