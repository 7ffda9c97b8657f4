package model

import (
	"context"
	"fmt"
	"time"

	tableModel "bistro/internal/domains/table/model"
)

type EventType string

const (
	EventReservationConfirmed EventType = "ReservationConfirmed"
	EventReservationCancelled EventType = "ReservationCancelled"
	EventReservationCompleted EventType = "ReservationCompleted"
	EventReservationModified  EventType = "ReservationModified"
)

// Snapshot is the reservation state an event was raised with.
type Snapshot struct {
	ReservationID ReservationID
	TableID       tableModel.TableID
	Customer      CustomerInfo
	Time          ReservationTime
	PartySize     int
}

// Event is closed to the variants declared in this package.
type Event interface {
	ID() string
	Type() EventType
	OccurredOn() time.Time
	Snapshot() Snapshot
	Accept(ctx context.Context, visitor EventVisitor) error
	sealed()
}

// EventVisitor handles each event variant. Adding a variant breaks every visitor at compile time.
type EventVisitor interface {
	VisitConfirmed(ctx context.Context, event ReservationConfirmed) error
	VisitCancelled(ctx context.Context, event ReservationCancelled) error
	VisitCompleted(ctx context.Context, event ReservationCompleted) error
	VisitModified(ctx context.Context, event ReservationModified) error
}

type baseEvent struct {
	id         string
	occurredOn time.Time
	snapshot   Snapshot
}

func (e baseEvent) ID() string {
	return e.id
}

func (e baseEvent) OccurredOn() time.Time {
	return e.occurredOn
}

func (e baseEvent) Snapshot() Snapshot {
	return e.snapshot
}

func (baseEvent) sealed() {}

type ReservationConfirmed struct {
	baseEvent
}

func (ReservationConfirmed) Type() EventType {
	return EventReservationConfirmed
}

func (e ReservationConfirmed) Accept(ctx context.Context, visitor EventVisitor) error {
	return visitor.VisitConfirmed(ctx, e)
}

type ReservationCancelled struct {
	baseEvent
}

func (ReservationCancelled) Type() EventType {
	return EventReservationCancelled
}

func (e ReservationCancelled) Accept(ctx context.Context, visitor EventVisitor) error {
	return visitor.VisitCancelled(ctx, e)
}

type ReservationCompleted struct {
	baseEvent
}

func (ReservationCompleted) Type() EventType {
	return EventReservationCompleted
}

func (e ReservationCompleted) Accept(ctx context.Context, visitor EventVisitor) error {
	return visitor.VisitCompleted(ctx, e)
}

// ReservationModified carries the new values in Snapshot and the old ones in Previous.
type ReservationModified struct {
	baseEvent
	previous Snapshot
}

func (ReservationModified) Type() EventType {
	return EventReservationModified
}

func (e ReservationModified) Previous() Snapshot {
	return e.previous
}

func (e ReservationModified) Accept(ctx context.Context, visitor EventVisitor) error {
	return visitor.VisitModified(ctx, e)
}

// EventEnvelope is the wire form of an Event.
type EventEnvelope struct {
	EventID         string    `json:"event_id"`
	EventType       EventType `json:"event_type"`
	OccurredOn      time.Time `json:"occurred_on"`
	ReservationID   string    `json:"reservation_id"`
	TableID         string    `json:"table_id"`
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	SpecialRequests string    `json:"special_requests,omitempty"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	PartySize       int       `json:"party_size"`

	PreviousTableID         string     `json:"previous_table_id,omitempty"`
	PreviousStartTime       *time.Time `json:"previous_start_time,omitempty"`
	PreviousDurationMinutes int        `json:"previous_duration_minutes,omitempty"`
	PreviousPartySize       int        `json:"previous_party_size,omitempty"`
}

func NewEventEnvelope(event Event) EventEnvelope {
	s := event.Snapshot()

	envelope := EventEnvelope{
		EventID:         event.ID(),
		EventType:       event.Type(),
		OccurredOn:      event.OccurredOn(),
		ReservationID:   s.ReservationID.String(),
		TableID:         s.TableID.String(),
		CustomerName:    s.Customer.Name(),
		CustomerEmail:   s.Customer.Email(),
		CustomerPhone:   s.Customer.Phone(),
		SpecialRequests: s.Customer.SpecialRequests(),
		StartTime:       s.Time.Start(),
		DurationMinutes: s.Time.DurationMinutes(),
		PartySize:       s.PartySize,
	}

	if modified, ok := event.(ReservationModified); ok {
		prev := modified.Previous()
		start := prev.Time.Start()

		envelope.PreviousTableID = prev.TableID.String()
		envelope.PreviousStartTime = &start
		envelope.PreviousDurationMinutes = prev.Time.DurationMinutes()
		envelope.PreviousPartySize = prev.PartySize
	}

	return envelope
}

// ToEvent rebuilds the typed event, e.g. on the consuming side of the topic.
func (e EventEnvelope) ToEvent() (Event, error) {
	customer, err := NewCustomerInfo(e.CustomerName, e.CustomerEmail, e.CustomerPhone, e.SpecialRequests)
	if err != nil {
		return nil, fmt.Errorf("invalid customer in event %s: %w", e.EventID, err)
	}

	rt, err := RestoreReservationTime(e.StartTime, e.DurationMinutes)
	if err != nil {
		return nil, fmt.Errorf("invalid time in event %s: %w", e.EventID, err)
	}

	base := baseEvent{
		id:         e.EventID,
		occurredOn: e.OccurredOn,
		snapshot: Snapshot{
			ReservationID: ReservationID(e.ReservationID),
			TableID:       tableModel.TableID(e.TableID),
			Customer:      customer,
			Time:          rt,
			PartySize:     e.PartySize,
		},
	}

	switch e.EventType {
	case EventReservationConfirmed:
		return ReservationConfirmed{baseEvent: base}, nil
	case EventReservationCancelled:
		return ReservationCancelled{baseEvent: base}, nil
	case EventReservationCompleted:
		return ReservationCompleted{baseEvent: base}, nil
	case EventReservationModified:
		previous := Snapshot{
			ReservationID: base.snapshot.ReservationID,
			TableID:       tableModel.TableID(e.PreviousTableID),
			Customer:      customer,
			PartySize:     e.PreviousPartySize,
		}

		if e.PreviousStartTime != nil {
			if previous.Time, err = RestoreReservationTime(*e.PreviousStartTime, e.PreviousDurationMinutes); err != nil {
				return nil, fmt.Errorf("invalid previous time in event %s: %w", e.EventID, err)
			}
		}

		return ReservationModified{baseEvent: base, previous: previous}, nil
	default:
		return nil, fmt.Errorf("unknown event type %q", e.EventType)
	}
}
