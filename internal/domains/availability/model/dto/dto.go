package dto

import (
	"time"

	reservationModel "bistro/internal/domains/reservation/model"
	reservationDto "bistro/internal/domains/reservation/model/dto"
	tableModel "bistro/internal/domains/table/model"
	tableDto "bistro/internal/domains/table/model/dto"
	"bistro/shared/constant"
	gModel "bistro/shared/model"
)

// AvailabilityReport is an informational snapshot of one table's day. It does not reserve anything.
type AvailabilityReport struct {
	TableID           string                               `json:"table_id"`
	Date              string                               `json:"date"`
	TotalReservations int                                  `json:"total_reservations"`
	OccupancyRate     float64                              `json:"occupancy_rate"`
	AvailableSlots    int                                  `json:"available_slots"`
	FullyOccupied     bool                                 `json:"fully_occupied"`
	Reservations      []reservationDto.ReservationResponse `json:"reservations"`
}

func NewAvailabilityReport(tableID tableModel.TableID, date time.Time, active []*reservationModel.Reservation, slotsPerDay int) AvailabilityReport {
	report := AvailabilityReport{
		TableID:           tableID.String(),
		Date:              date.Format(constant.DateOnly),
		TotalReservations: len(active),
		AvailableSlots:    max(0, slotsPerDay-len(active)),
		FullyOccupied:     len(active) >= slotsPerDay,
		Reservations:      make([]reservationDto.ReservationResponse, len(active)),
	}

	if slotsPerDay > 0 {
		report.OccupancyRate = float64(len(active)) / float64(slotsPerDay)
	}

	for i, reservation := range active {
		report.Reservations[i].FromReservation(reservation)
	}

	return report
}

type AvailableTablesRequest struct {
	PartySize       int       `json:"party_size"       validate:"required,gte=1,lte=20"`
	StartTime       time.Time `json:"start_time"       validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"omitempty,gte=30,lte=480"`
}

type AvailableTablesResponse struct {
	StartTime string                   `json:"start_time"`
	EndTime   string                   `json:"end_time"`
	Tables    []tableDto.TableResponse `json:"tables"`
}

func (r *AvailableTablesResponse) FromModels(candidate reservationModel.ReservationTime, tables []tableModel.Table) {
	r.StartTime = candidate.Start().Format(constant.DateFormat)
	r.EndTime = candidate.End().Format(constant.DateFormat)

	r.Tables = make([]tableDto.TableResponse, len(tables))
	for i, table := range tables {
		r.Tables[i].FromModel(tableModel.FromTable(table, gModel.Metadata{}))
	}
}
