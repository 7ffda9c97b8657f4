package reservation

import (
	"context"
	"net/http"

	"bistro/infras/otel"
	"bistro/internal/domains/reservation/model"
	"bistro/internal/domains/reservation/model/dto"
	"bistro/internal/domains/reservation/service"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	"bistro/shared/validator"
	"bistro/transport/http/middleware"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Reservation
	auth    middleware.Auth
	otel    otel.Otel
}

func New(service service.Reservation, auth middleware.Auth, otel otel.Otel) Handler {
	return Handler{
		service: service,
		auth:    auth,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reservations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateReservation)
		routerGroup.Get("/", handler.GetReservations)
		routerGroup.Get("/{id}", handler.GetReservationByID)
		routerGroup.Patch("/{id}", handler.UpdateReservation)
		routerGroup.Post("/{id}/cancel", handler.CancelReservation)

		routerGroup.Group(func(staff chi.Router) {
			staff.Use(handler.auth.RequireStaff)

			staff.Post("/{id}/confirm", handler.ConfirmReservation)
			staff.Post("/{id}/complete", handler.CompleteReservation)
			staff.Post("/{id}/no-show", handler.MarkNoShow)
		})
	})
}

// CreateReservation books a table for a party.
// @Summary Create a reservation
// @Description Book a table. The reservation starts PENDING until staff confirm it.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param request body dto.CreateReservationRequest true "Create Reservation Request"
// @Success 201 {object} response.Data[dto.ReservationResponse] "Reservation created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error "Overlapping reservation"
// @Failure 422 {object} response.Error "Capacity or opening hours violation"
// @Failure 500 {object} response.Error
// @Router /v1/reservations [post]
func (handler *Handler) CreateReservation(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateReservation")
	defer scope.End()

	req := dto.CreateReservationRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create reservation")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Reservation created by " + shared.ActorFromContext(ctx))

	response.WithJSON(writer, http.StatusCreated, res)
}

// GetReservations lists reservations.
// @Summary Get all reservations
// @Description Retrieve reservations with optional filtering and pagination.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param table_id query string false "Filter by table"
// @Param status query string false "Filter by status, comma separated (PENDING, CONFIRMED, COMPLETED, CANCELLED, NO_SHOW)"
// @Param customer_email query string false "Filter by customer email"
// @Param date query string false "Filter by day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.GetReservationsResponse] "List of reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations [get]
func (handler *Handler) GetReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservations")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	queryParams.RestrictSort(model.FieldStartTime,
		model.FieldStartTime, model.FieldPartySize, model.FieldStatus, model.FieldTableID, constant.FieldCreatedAt)

	filter := dto.ListFilter{
		TableID:       r.URL.Query().Get(model.FieldTableID),
		Status:        r.URL.Query().Get(model.FieldStatus),
		CustomerEmail: r.URL.Query().Get(model.FieldCustomerEmail),
		Date:          r.URL.Query().Get(constant.RequestParamDate),
	}

	filterGroup, err := filter.ToFilterGroup()
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, failure.BadRequest(err))

		return
	}

	reservations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations retrieved successfully")

	response.WithJSON(w, http.StatusOK, reservations)
}

// GetReservationByID retrieves one reservation.
// @Summary Get reservation by ID
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [get]
func (handler *Handler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// UpdateReservation moves a reservation to another table, time or party size.
// @Summary Update a reservation
// @Description Fields left out keep their current value. Only PENDING and CONFIRMED reservations can change.
// @Tags Reservation
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body dto.UpdateReservationRequest true "Update Reservation Request"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation updated"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id} [patch]
func (handler *Handler) UpdateReservation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReservation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateReservationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reservation, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update reservation")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservation)
}

// CancelReservation cancels a pending or confirmed reservation.
// @Summary Cancel a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation cancelled"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/cancel [post]
func (handler *Handler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "CancelReservation", handler.service.Cancel)
}

// ConfirmReservation confirms a pending reservation.
// @Summary Confirm a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation confirmed"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/confirm [post]
// @Security ApiKeyAuth
func (handler *Handler) ConfirmReservation(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "ConfirmReservation", handler.service.Confirm)
}

// CompleteReservation closes a confirmed reservation after the party has dined.
// @Summary Complete a reservation
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation completed"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/complete [post]
// @Security ApiKeyAuth
func (handler *Handler) CompleteReservation(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "CompleteReservation", handler.service.Complete)
}

// MarkNoShow closes a confirmed reservation whose party never arrived.
// @Summary Mark a reservation as no-show
// @Tags Reservation
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.Data[dto.ReservationResponse] "Reservation marked as no-show"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reservations/{id}/no-show [post]
// @Security ApiKeyAuth
func (handler *Handler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	handler.changeStatus(w, r, "MarkNoShow", handler.service.MarkNoShow)
}

func (handler *Handler) changeStatus(
	w http.ResponseWriter,
	r *http.Request,
	name string,
	apply func(ctx context.Context, id string) (dto.ReservationResponse, error),
) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+"."+name)
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reservation, err := apply(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Str("action", name).Msg("failed to change reservation status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservation " + id + " is now " + reservation.Status)

	response.WithJSON(w, http.StatusOK, reservation)
}
