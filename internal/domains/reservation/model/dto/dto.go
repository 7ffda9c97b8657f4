package dto

import (
	"strings"
	"time"

	"bistro/internal/domains/reservation/model"
	"bistro/shared"
	"bistro/shared/constant"
	gDto "bistro/shared/dto"
	"bistro/shared/timezone"
)

type CreateReservationRequest struct {
	TableID         string    `json:"table_id"                   validate:"required,max=20"`
	CustomerName    string    `json:"customer_name"              validate:"required,min=2,max=100"`
	CustomerEmail   string    `json:"customer_email"             validate:"required,email,max=100"`
	CustomerPhone   string    `json:"customer_phone"             validate:"required,phone"`
	SpecialRequests string    `json:"special_requests,omitempty" validate:"omitempty,max=500"`
	StartTime       time.Time `json:"start_time"                 validate:"required"`
	DurationMinutes int       `json:"duration_minutes,omitempty" validate:"omitempty,gte=30,lte=480"`
	PartySize       int       `json:"party_size"                 validate:"required,gte=1,lte=20"`
}

// UpdateReservationRequest carries optional changes; absent fields keep the current value.
type UpdateReservationRequest struct {
	TableID         *string    `json:"table_id,omitempty"         validate:"omitempty,max=20"`
	PartySize       *int       `json:"party_size,omitempty"       validate:"omitempty,gte=1,lte=20"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty" validate:"omitempty,gte=30,lte=480"`
}

func (u UpdateReservationRequest) IsEmpty() bool {
	return u.TableID == nil && u.PartySize == nil && u.StartTime == nil && u.DurationMinutes == nil
}

// ListFilter narrows reservation listings. Date is a calendar day in the restaurant's time zone.
type ListFilter struct {
	TableID       string
	Status        string
	CustomerEmail string
	Date          string
}

func (f ListFilter) ToFilterGroup() (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.TableID != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldTableID, Operator: gDto.FilterOperatorEq, Value: f.TableID, Table: model.TableName,
		})
	}

	if f.Status != constant.Empty {
		statuses := []string{}

		for _, raw := range strings.Split(f.Status, ",") {
			status, err := model.ParseStatus(strings.TrimSpace(raw))
			if err != nil {
				return group, err
			}

			statuses = append(statuses, status.String())
		}

		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldStatus, Operator: gDto.FilterOperatorIn, Value: statuses, Table: model.TableName,
		})
	}

	if f.CustomerEmail != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field: model.FieldCustomerEmail, Operator: gDto.FilterOperatorEq, Value: strings.ToLower(f.CustomerEmail), Table: model.TableName,
		})
	}

	if f.Date != constant.Empty {
		day, err := timezone.Parse(constant.DateOnly, f.Date)
		if err != nil {
			return group, err
		}

		group.Filters = append(group.Filters, DayFilters(day)...)
	}

	return group, nil
}

// DayFilters select reservations starting on the given calendar day.
func DayFilters(day time.Time) []any {
	from := timezone.StartOfDay(day)

	return []any{
		gDto.Filter{
			ArgName:  "day",
			Field:    model.FieldStartTime,
			Operator: gDto.FilterOperatorWithin,
			Value:    gDto.TimeRange{From: from, To: from.AddDate(0, 0, 1)},
			Table:    model.TableName,
		},
	}
}

type ReservationResponse struct {
	ID              string `json:"id"`
	TableID         string `json:"table_id"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	SpecialRequests string `json:"special_requests,omitempty"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	DurationMinutes int    `json:"duration_minutes"`
	PartySize       int    `json:"party_size"`
	Status          string `json:"status"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(record model.Record) {
	r.ID = record.ID
	r.TableID = record.TableID
	r.CustomerName = record.CustomerName
	r.CustomerEmail = record.CustomerEmail
	r.CustomerPhone = record.CustomerPhone
	r.SpecialRequests = record.SpecialRequests
	r.StartTime = timezone.Format(record.StartTime, constant.DateFormat)
	r.EndTime = timezone.Format(record.EndTime, constant.DateFormat)
	r.DurationMinutes = record.DurationMinutes
	r.PartySize = record.PartySize
	r.Status = record.Status
	r.Metadata.FromModel(record.Metadata)
}

func (r *ReservationResponse) FromReservation(reservation *model.Reservation) {
	r.FromModel(model.FromReservation(reservation))
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(records []model.Record, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(records))
	for i, record := range records {
		r.Reservations[i].FromModel(record)
	}
}
