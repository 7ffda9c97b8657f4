package reservation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bistro/config"
	otelMocks "bistro/infras/otel/mocks"
	"bistro/internal/domains/reservation/mocks"
	"bistro/internal/domains/reservation/model/dto"
	"bistro/internal/handlers/reservation"
	"bistro/shared/constant"
	"bistro/shared/failure"
	"bistro/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const staffKey = "staff-key"

func newRouter(t *testing.T) (http.Handler, *mocks.MockReservationService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockReservationService(ctrl)

	cfg := &config.Config{}
	cfg.App.APIKey = staffKey

	auth := middleware.NewAuthMiddleware(otelMocks.NewOtel(), cfg)
	handler := reservation.New(svc, auth, otelMocks.NewOtel())

	router := chi.NewRouter()
	router.Use(auth.APIKey)
	handler.Router(router)

	return router, svc
}

type errorBody struct {
	Error  string `json:"error"`
	Reason string `json:"reason"`
}

const validBody = `{
	"table_id": "T001",
	"customer_name": "Ana Souza",
	"customer_email": "ana@example.com",
	"customer_phone": "(11) 98765-4321",
	"start_time": "2025-05-21T19:00:00Z",
	"party_size": 2
}`

func TestHandler_CreateReservation(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(svc *mocks.MockReservationService)
		wantCode   int
		wantReason string
	}{
		{
			name: "created",
			body: validBody,
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, req dto.CreateReservationRequest) (dto.ReservationResponse, error) {
						assert.Equal(t, "T001", req.TableID)
						assert.Equal(t, 2, req.PartySize)

						return dto.ReservationResponse{ID: "r-1", Status: "PENDING"}, nil
					})
			},
			wantCode: http.StatusCreated,
		},
		{
			name:       "malformed phone never reaches the service",
			body:       strings.Replace(validBody, "(11) 98765-4321", "call me", 1),
			setup:      func(*mocks.MockReservationService) {},
			wantCode:   http.StatusBadRequest,
			wantReason: failure.ReasonValidation,
		},
		{
			name:     "broken json",
			body:     `{"table_id":`,
			setup:    func(*mocks.MockReservationService) {},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "overlap",
			body: validBody,
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.ReservationResponse{}, failure.Conflict("table T001 is already booked"))
			},
			wantCode:   http.StatusConflict,
			wantReason: failure.ReasonConflict,
		},
		{
			name: "party too large",
			body: validBody,
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(dto.ReservationResponse{}, failure.Capacity("table T001 seats 2"))
			},
			wantCode:   http.StatusUnprocessableEntity,
			wantReason: failure.ReasonCapacity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, "/reservations/", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantReason != "" {
				var body errorBody
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantReason, body.Reason)
			}
		})
	}
}

func TestHandler_StaffTransitions(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		key      string
		setup    func(svc *mocks.MockReservationService)
		wantCode int
	}{
		{
			name:     "guest cannot confirm",
			path:     "/reservations/r-1/confirm",
			setup:    func(*mocks.MockReservationService) {},
			wantCode: http.StatusForbidden,
		},
		{
			name: "staff confirms",
			path: "/reservations/r-1/confirm",
			key:  staffKey,
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().Confirm(gomock.Any(), "r-1").Return(dto.ReservationResponse{ID: "r-1", Status: "CONFIRMED"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "staff completes",
			path: "/reservations/r-1/complete",
			key:  staffKey,
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().Complete(gomock.Any(), "r-1").Return(dto.ReservationResponse{ID: "r-1", Status: "COMPLETED"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "no-show on a pending reservation",
			path: "/reservations/r-1/no-show",
			key:  staffKey,
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().MarkNoShow(gomock.Any(), "r-1").
					Return(dto.ReservationResponse{}, failure.InvalidStateTransition("cannot move from PENDING to NO_SHOW"))
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "guest cancels",
			path: "/reservations/r-1/cancel",
			setup: func(svc *mocks.MockReservationService) {
				svc.EXPECT().Cancel(gomock.Any(), "r-1").Return(dto.ReservationResponse{ID: "r-1", Status: "CANCELLED"}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodPost, tt.path, nil)
			if tt.key != "" {
				req.Header.Set(constant.RequestHeaderAPIKey, tt.key)
			}

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_GetReservations(t *testing.T) {
	t.Run("unknown status is rejected", func(t *testing.T) {
		router, _ := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/?status=SEATED", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("filters by table and day", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(dto.GetReservationsResponse{TotalPage: 1, TotalData: 0}, nil)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservations/?table_id=T001&date=2025-05-21", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestHandler_UpdateReservation(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), "r-1").
		DoAndReturn(func(_ any, req dto.UpdateReservationRequest, _ string) (dto.ReservationResponse, error) {
			require.NotNil(t, req.PartySize)
			assert.Equal(t, 4, *req.PartySize)
			assert.Nil(t, req.TableID)

			return dto.ReservationResponse{ID: "r-1", PartySize: 4}, nil
		})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/reservations/r-1", strings.NewReader(`{"party_size": 4}`)))

	assert.Equal(t, http.StatusOK, rec.Code)
}
