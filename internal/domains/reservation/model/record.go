package model

import (
	"fmt"
	"time"

	tableModel "bistro/internal/domains/table/model"
	gModel "bistro/shared/model"
)

// Record is the reservations row.
type Record struct {
	ID              string    `db:"id"`
	TableID         string    `db:"table_id"`
	CustomerName    string    `db:"customer_name"`
	CustomerEmail   string    `db:"customer_email"`
	CustomerPhone   string    `db:"customer_phone"`
	SpecialRequests string    `db:"special_requests"`
	StartTime       time.Time `db:"start_time"`
	EndTime         time.Time `db:"end_time"`
	DurationMinutes int       `db:"duration_minutes"`
	PartySize       int       `db:"party_size"`
	Status          string    `db:"status"`
	gModel.Metadata
}

func FromReservation(r *Reservation) Record {
	return Record{
		ID:              r.id.String(),
		TableID:         r.tableID.String(),
		CustomerName:    r.customer.Name(),
		CustomerEmail:   r.customer.Email(),
		CustomerPhone:   r.customer.Phone(),
		SpecialRequests: r.customer.SpecialRequests(),
		StartTime:       r.time.Start(),
		EndTime:         r.time.End(),
		DurationMinutes: r.time.DurationMinutes(),
		PartySize:       r.partySize,
		Status:          r.status.String(),
		Metadata:        r.metadata,
	}
}

func (r Record) ToReservation() (*Reservation, error) {
	customer, err := NewCustomerInfo(r.CustomerName, r.CustomerEmail, r.CustomerPhone, r.SpecialRequests)
	if err != nil {
		return nil, fmt.Errorf("invalid customer stored for reservation %s: %v", r.ID, err) //nolint:errorlint
	}

	rt, err := RestoreReservationTime(r.StartTime, r.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid time stored for reservation %s: %v", r.ID, err) //nolint:errorlint
	}

	status, err := ParseStatus(r.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status stored for reservation %s: %v", r.ID, err) //nolint:errorlint
	}

	return Restore(ReservationID(r.ID), tableModel.TableID(r.TableID), customer, rt, r.PartySize, status, r.Metadata), nil
}
