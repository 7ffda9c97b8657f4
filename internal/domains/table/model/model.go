package model

import (
	"fmt"
	"strings"

	"bistro/shared/failure"
	"bistro/shared/model"
)

const (
	TableName  = "restaurant_tables"
	EntityName = "table"

	FieldID       = "id"
	FieldCapacity = "capacity"
	FieldIsActive = "is_active"
	FieldLocation = "location"
	FieldImageURL = "image_url"
)

const (
	MinCapacity = 1
	MaxCapacity = 20
)

// TableID identifies a restaurant table, e.g. "T001".
type TableID string

func NewTableID(value string) (TableID, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", failure.BadRequestFromString("table id is required") // nolint:wrapcheck
	}

	return TableID(value), nil
}

func (id TableID) String() string {
	return string(id)
}

type Capacity int

func NewCapacity(value int) (Capacity, error) {
	if value < MinCapacity || value > MaxCapacity {
		return 0, failure.BadRequestFromString(fmt.Sprintf("capacity must be between %d and %d", MinCapacity, MaxCapacity)) // nolint:wrapcheck
	}

	return Capacity(value), nil
}

func (c Capacity) Int() int {
	return int(c)
}

// Table is a seating unit. Values are immutable; use the With* methods for variants.
type Table struct {
	id       TableID
	capacity Capacity
	active   bool
	location string
	imageURL string
}

func New(id TableID, capacity Capacity, location string) (Table, error) {
	if id == "" {
		return Table{}, failure.BadRequestFromString("table id is required") // nolint:wrapcheck
	}

	if capacity < MinCapacity {
		return Table{}, failure.BadRequestFromString("capacity must be positive") // nolint:wrapcheck
	}

	return Table{
		id:       id,
		capacity: capacity,
		active:   true,
		location: strings.TrimSpace(location),
	}, nil
}

func (t Table) ID() TableID { return t.id }

func (t Table) Capacity() Capacity { return t.capacity }

func (t Table) IsActive() bool { return t.active }

func (t Table) Location() string { return t.location }

func (t Table) ImageURL() string { return t.imageURL }

func (t Table) IsZero() bool { return t.id == "" }

func (t Table) WithActive(v bool) Table {
	t.active = v

	return t
}

func (t Table) WithImageURL(url string) Table {
	t.imageURL = url

	return t
}

// CanSeat reports whether an active table holds a party of n.
func (t Table) CanSeat(n int) bool {
	return t.active && n > 0 && n <= t.capacity.Int()
}

// CheckSeating explains why CanSeat would be false.
func (t Table) CheckSeating(n int) error {
	if !t.active {
		return failure.Capacity(fmt.Sprintf("table %s is not active", t.id)) // nolint:wrapcheck
	}

	if n > t.capacity.Int() {
		return failure.Capacity(fmt.Sprintf("table %s seats %d, party of %d requested", t.id, t.capacity, n)) // nolint:wrapcheck
	}

	if n <= 0 {
		return failure.BadRequestFromString("number of people must be positive") // nolint:wrapcheck
	}

	return nil
}

// Record is the restaurant_tables row.
type Record struct {
	ID       string `db:"id"`
	Capacity int    `db:"capacity"`
	IsActive bool   `db:"is_active"`
	Location string `db:"location"`
	ImageURL string `db:"image_url"`
	model.Metadata
}

func (r Record) ToTable() (Table, error) {
	capacity, err := NewCapacity(r.Capacity)
	if err != nil {
		return Table{}, fmt.Errorf("invalid capacity stored for table %s: %v", r.ID, err) //nolint:errorlint
	}

	return Table{
		id:       TableID(r.ID),
		capacity: capacity,
		active:   r.IsActive,
		location: r.Location,
		imageURL: r.ImageURL,
	}, nil
}

func FromTable(t Table, metadata model.Metadata) Record {
	return Record{
		ID:       t.id.String(),
		Capacity: t.capacity.Int(),
		IsActive: t.active,
		Location: t.location,
		ImageURL: t.imageURL,
		Metadata: metadata,
	}
}

// SampleTables is the demo floor: eleven active tables and one under maintenance.
func SampleTables() []Table {
	sample := []struct {
		id       TableID
		capacity Capacity
		location string
		active   bool
	}{
		{"T001", 2, "Área interna", true},
		{"T002", 2, "Área interna", true},
		{"T003", 4, "Área interna", true},
		{"T004", 4, "Área interna", true},
		{"T005", 4, "Área interna", true},
		{"T006", 6, "Área interna", true},
		{"T007", 6, "Área interna", true},
		{"T008", 8, "Área externa", true},
		{"T009", 8, "Área externa", true},
		{"T010", 10, "Área externa", true},
		{"T011", 12, "Área VIP", true},
		{"T012", 2, "Área interna - Manutenção", false},
	}

	tables := make([]Table, len(sample))
	for i, s := range sample {
		tables[i] = Table{id: s.id, capacity: s.capacity, active: s.active, location: s.location}
	}

	return tables
}
