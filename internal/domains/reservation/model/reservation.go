package model

import (
	"fmt"
	"slices"
	"strings"
	"time"

	tableModel "bistro/internal/domains/table/model"
	"bistro/shared/failure"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/google/uuid"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID            = "id"
	FieldTableID       = "table_id"
	FieldCustomerEmail = "customer_email"
	FieldStartTime     = "start_time"
	FieldEndTime       = "end_time"
	FieldStatus        = "status"
	FieldPartySize     = "party_size"
)

type ReservationID string

func NewReservationID(value string) (ReservationID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", failure.BadRequestFromString("reservation id is required") // nolint:wrapcheck
	}

	return ReservationID(value), nil
}

func GenerateReservationID() ReservationID {
	return ReservationID(uuid.NewString())
}

func (id ReservationID) String() string {
	return string(id)
}

// Reservation is the aggregate root. State changes go through its methods, each of which
// queues the matching event until the caller drains them after a successful save.
type Reservation struct {
	id        ReservationID
	tableID   tableModel.TableID
	customer  CustomerInfo
	time      ReservationTime
	partySize int
	status    Status
	metadata  gModel.Metadata
	events    []Event
}

// New opens a PENDING reservation.
func New(id ReservationID, tableID tableModel.TableID, customer CustomerInfo, rt ReservationTime, partySize int, now time.Time) (*Reservation, error) {
	switch {
	case id == "":
		return nil, failure.BadRequestFromString("reservation id is required") // nolint:wrapcheck
	case tableID == "":
		return nil, failure.BadRequestFromString("table id is required") // nolint:wrapcheck
	case customer.IsZero():
		return nil, failure.BadRequestFromString("customer info is required") // nolint:wrapcheck
	case rt.IsZero():
		return nil, failure.BadRequestFromString("reservation time is required") // nolint:wrapcheck
	case !rt.Start().After(now):
		return nil, failure.BadRequestFromString("reservation time cannot be in the past") // nolint:wrapcheck
	case partySize < 1:
		return nil, failure.BadRequestFromString("number of people must be positive") // nolint:wrapcheck
	}

	return &Reservation{
		id:        id,
		tableID:   tableID,
		customer:  customer,
		time:      rt,
		partySize: partySize,
		status:    StatusPending,
	}, nil
}

// Restore rehydrates a stored reservation without re-running creation rules.
func Restore(id ReservationID, tableID tableModel.TableID, customer CustomerInfo, rt ReservationTime, partySize int, status Status, metadata gModel.Metadata) *Reservation {
	return &Reservation{
		id:        id,
		tableID:   tableID,
		customer:  customer,
		time:      rt,
		partySize: partySize,
		status:    status,
		metadata:  metadata,
	}
}

func (r *Reservation) ID() ReservationID {
	return r.id
}

func (r *Reservation) TableID() tableModel.TableID {
	return r.tableID
}

func (r *Reservation) Customer() CustomerInfo {
	return r.customer
}

func (r *Reservation) Time() ReservationTime {
	return r.time
}

func (r *Reservation) PartySize() int {
	return r.partySize
}

func (r *Reservation) Status() Status {
	return r.status
}

func (r *Reservation) Metadata() gModel.Metadata {
	return r.metadata
}

func (r *Reservation) IsActive() bool {
	return r.status.IsActive()
}

func (r *Reservation) CanBeModified() bool {
	return r.status == StatusPending || r.status == StatusConfirmed
}

// Touch stamps the audit fields before a save.
func (r *Reservation) Touch(now time.Time, actor string) {
	r.metadata.Touch(now, actor)
}

func (r *Reservation) Confirm() error {
	if err := r.transition(StatusConfirmed); err != nil {
		return err
	}

	r.record(ReservationConfirmed{baseEvent: r.newBaseEvent()})

	return nil
}

func (r *Reservation) Cancel() error {
	if err := r.transition(StatusCancelled); err != nil {
		return err
	}

	r.record(ReservationCancelled{baseEvent: r.newBaseEvent()})

	return nil
}

func (r *Reservation) Complete() error {
	if err := r.transition(StatusCompleted); err != nil {
		return err
	}

	r.record(ReservationCompleted{baseEvent: r.newBaseEvent()})

	return nil
}

// MarkNoShow closes a confirmed reservation whose party never arrived. No event is queued.
func (r *Reservation) MarkNoShow() error {
	return r.transition(StatusNoShow)
}

// Modify moves the reservation to another table, time or party size.
func (r *Reservation) Modify(tableID tableModel.TableID, rt ReservationTime, partySize int) error {
	if !r.CanBeModified() {
		return failure.InvalidStateTransition(fmt.Sprintf("reservation in status %s cannot be modified", r.status)) // nolint:wrapcheck
	}

	if tableID == "" || rt.IsZero() {
		return failure.BadRequestFromString("table and reservation time are required") // nolint:wrapcheck
	}

	if partySize < 1 {
		return failure.BadRequestFromString("number of people must be positive") // nolint:wrapcheck
	}

	previous := r.snapshot()

	r.tableID = tableID
	r.time = rt
	r.partySize = partySize

	r.record(ReservationModified{baseEvent: r.newBaseEvent(), previous: previous})

	return nil
}

// DomainEvents returns a copy of the pending events.
func (r *Reservation) DomainEvents() []Event {
	return slices.Clone(r.events)
}

func (r *Reservation) ClearDomainEvents() {
	r.events = nil
}

// PullDomainEvents returns the pending events and empties the queue.
func (r *Reservation) PullDomainEvents() []Event {
	events := r.events
	r.events = nil

	return events
}

func (r *Reservation) transition(next Status) error {
	if !r.status.CanTransitionTo(next) {
		return failure.InvalidStateTransition(fmt.Sprintf("cannot change reservation from %s to %s", r.status, next)) // nolint:wrapcheck
	}

	r.status = next

	return nil
}

func (r *Reservation) record(event Event) {
	r.events = append(r.events, event)
}

func (r *Reservation) snapshot() Snapshot {
	return Snapshot{
		ReservationID: r.id,
		TableID:       r.tableID,
		Customer:      r.customer,
		Time:          r.time,
		PartySize:     r.partySize,
	}
}

func (r *Reservation) newBaseEvent() baseEvent {
	return baseEvent{
		id:         uuid.NewString(),
		occurredOn: timezone.Now(),
		snapshot:   r.snapshot(),
	}
}
