package table

import (
	"net/http"
	"strconv"
	"time"

	"bistro/infras/otel"
	availabilityDto "bistro/internal/domains/availability/model/dto"
	availabilityService "bistro/internal/domains/availability/service"
	reservationModel "bistro/internal/domains/reservation/model"
	reservationService "bistro/internal/domains/reservation/service"
	"bistro/internal/domains/table/model"
	"bistro/internal/domains/table/model/dto"
	"bistro/internal/domains/table/service"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/failure"
	"bistro/shared/timezone"
	"bistro/shared/validator"
	"bistro/transport/http/middleware"
	"bistro/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

const queryParamMinCapacity = "min_capacity"

type Handler struct {
	service      service.Table
	availability availabilityService.Availability
	reservations reservationService.Reservation
	auth         middleware.Auth
	otel         otel.Otel
}

func New(
	service service.Table,
	availability availabilityService.Availability,
	reservations reservationService.Reservation,
	auth middleware.Auth,
	otel otel.Otel,
) Handler {
	return Handler{
		service:      service,
		availability: availability,
		reservations: reservations,
		auth:         auth,
		otel:         otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/tables", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTables)
		routerGroup.Get("/available", handler.GetAvailableTables)
		routerGroup.Get("/{id}", handler.GetTableByID)
		routerGroup.Get("/{id}/availability", handler.GetAvailabilityReport)
		routerGroup.Get("/{id}/reservations", handler.GetTableReservations)

		routerGroup.Group(func(staff chi.Router) {
			staff.Use(handler.auth.RequireStaff)

			staff.Post("/", handler.CreateTable)
			staff.Patch("/{id}", handler.UpdateTable)
		})
	})
}

// CreateTable handles the creation of a new table.
// @Summary Create a new table
// @Description Add a table to the floor, optionally with a photo.
// @Tags Table
// @Accept multipart/form-data
// @Produce json
// @Param id formData string true "Table code, e.g. T013"
// @Param capacity formData integer true "Seats"
// @Param location formData string false "Where the table is"
// @Param image formData file false "Table photo"
// @Success 201 {object} response.Message "Table created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables [post]
// @Security ApiKeyAuth
func (handler *Handler) CreateTable(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTable")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(writer, failure.BadRequest(err))

		return
	}

	req := dto.CreateTableRequest{
		ID:       request.FormValue(model.FieldID),
		Location: request.FormValue(model.FieldLocation),
	}

	if capStr := request.FormValue(model.FieldCapacity); capStr != constant.Empty {
		c, err := strconv.Atoi(capStr)
		if err != nil {
			response.WithError(writer, failure.BadRequestFromString("capacity must be a number"))

			return
		}

		req.Capacity = c
	}

	file, fileHeader, err := request.FormFile(constant.FormFileImage)
	if err == nil {
		req.Image = fileHeader
		req.File = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create table")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Table created successfully by " + shared.ActorFromContext(ctx))

	response.WithMessage(writer, http.StatusCreated, "Table created successfully")
}

// GetTables lists tables.
// @Summary Get all tables
// @Tags Table
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_active query boolean false "Filter by active flag"
// @Param min_capacity query integer false "Only tables seating at least this many"
// @Param location query string false "Filter by location"
// @Success 200 {object} response.Data[dto.GetTablesResponse] "List of tables"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables [get]
func (handler *Handler) GetTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTables")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	queryParams.RestrictSort(model.FieldID, model.FieldID, model.FieldCapacity, model.FieldLocation, constant.FieldCreatedAt)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsActive)); active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	if minCapacity := r.URL.Query().Get(queryParamMinCapacity); minCapacity != constant.Empty {
		n, err := strconv.Atoi(minCapacity)
		if err != nil {
			response.WithError(w, failure.BadRequestFromString("min_capacity must be a number"))

			return
		}

		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCapacity,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    n,
			Table:    model.TableName,
		})
	}

	if location := r.URL.Query().Get(model.FieldLocation); location != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldLocation,
			Operator: gDto.FilterOperatorLike,
			Value:    location,
			Table:    model.TableName,
		})
	}

	tables, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get tables")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, tables)
}

// GetTableByID retrieves one table.
// @Summary Get table by ID
// @Tags Table
// @Produce json
// @Param id path string true "Table ID"
// @Success 200 {object} response.Data[dto.TableResponse] "Table"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{id} [get]
func (handler *Handler) GetTableByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	table, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get table")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, table)
}

// UpdateTable changes a table's capacity, location or active flag.
// @Summary Update a table
// @Tags Table
// @Accept json
// @Produce json
// @Param id path string true "Table ID"
// @Param request body dto.UpdateTableRequest true "Update Table Request"
// @Success 200 {object} response.Message "Table updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{id} [patch]
// @Security ApiKeyAuth
func (handler *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTable")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	req := dto.UpdateTableRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to update table")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Table updated successfully")
}

// GetAvailableTables lists the tables a party can book at a given time.
// @Summary Find available tables
// @Tags Availability
// @Produce json
// @Param party_size query integer true "Number of people"
// @Param start_time query string true "Start time (RFC3339)"
// @Param duration_minutes query integer false "Duration in minutes (default 120)"
// @Success 200 {object} response.Data[availabilityDto.AvailableTablesResponse] "Available tables"
// @Failure 400 {object} response.Error
// @Failure 422 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/available [get]
func (handler *Handler) GetAvailableTables(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableTables")
	defer scope.End()

	req, err := availableTablesRequest(r)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	candidate, err := reservationModel.RestoreReservationTime(req.StartTime, req.DurationMinutes)
	if err != nil {
		response.WithError(w, err)

		return
	}

	tables, err := handler.availability.FindAvailableTables(ctx, req.PartySize, candidate)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find available tables")

		response.WithError(w, err)

		return
	}

	res := availabilityDto.AvailableTablesResponse{}
	res.FromModels(candidate, tables)

	response.WithJSON(w, http.StatusOK, res)
}

// GetAvailabilityReport summarises a table's bookings on a day.
// @Summary Get a table's availability for a day
// @Tags Availability
// @Produce json
// @Param id path string true "Table ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[availabilityDto.AvailabilityReport] "Availability report"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{id}/availability [get]
func (handler *Handler) GetAvailabilityReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailabilityReport")
	defer scope.End()

	tableID, err := model.NewTableID(chi.URLParam(r, constant.RequestParamID))
	if err != nil {
		response.WithError(w, err)

		return
	}

	date, err := dateParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	report, err := handler.availability.GetAvailabilityReport(ctx, tableID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table", tableID.String()).Msg("failed to build availability report")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, report)
}

// GetTableReservations lists every reservation of a table on a day.
// @Summary Get a table's reservations for a day
// @Tags Table
// @Produce json
// @Param id path string true "Table ID"
// @Param date query string true "Day (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]reservationDto.ReservationResponse] "Reservations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/tables/{id}/reservations [get]
func (handler *Handler) GetTableReservations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTableReservations")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	date, err := dateParam(r)
	if err != nil {
		response.WithError(w, err)

		return
	}

	reservations, err := handler.reservations.GetByTableAndDate(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("table", id).Msg("failed to get table reservations")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, reservations)
}

func dateParam(r *http.Request) (time.Time, error) {
	value := r.URL.Query().Get(constant.RequestParamDate)
	if value == constant.Empty {
		return time.Time{}, failure.BadRequestFromString("date is required (YYYY-MM-DD)") // nolint:wrapcheck
	}

	date, err := timezone.Parse(constant.DateOnly, value)
	if err != nil {
		return time.Time{}, failure.BadRequestFromString("date must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	return date, nil
}

func availableTablesRequest(r *http.Request) (availabilityDto.AvailableTablesRequest, error) {
	query := r.URL.Query()
	req := availabilityDto.AvailableTablesRequest{DurationMinutes: reservationModel.DefaultDurationMinutes}

	partySize, err := strconv.Atoi(query.Get(constant.RequestParamPartySize))
	if err != nil {
		return req, failure.BadRequestFromString("party_size must be a number") // nolint:wrapcheck
	}

	req.PartySize = partySize

	if req.StartTime, err = time.Parse(constant.DateFormat, query.Get(constant.RequestParamStartTime)); err != nil {
		return req, failure.BadRequestFromString("start_time must be an RFC3339 timestamp") // nolint:wrapcheck
	}

	if duration := query.Get(constant.RequestParamDuration); duration != constant.Empty {
		if req.DurationMinutes, err = strconv.Atoi(duration); err != nil {
			return req, failure.BadRequestFromString("duration_minutes must be a number") // nolint:wrapcheck
		}
	}

	return req, validator.ValidateStruct(&req)
}
