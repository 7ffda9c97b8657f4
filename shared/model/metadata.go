package model

import "time"

type Metadata struct {
	CreatedAt  time.Time `db:"created_at"  json:"created_at"`
	ModifiedAt time.Time `db:"modified_at" json:"modified_at"`
	CreatedBy  string    `db:"created_by"  json:"created_by"`
	ModifiedBy string    `db:"modified_by" json:"modified_by"`
}

// Touch refreshes the modification audit fields, filling the creation ones on first save.
func (m *Metadata) Touch(now time.Time, actor string) {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
		m.CreatedBy = actor
	}

	m.ModifiedAt = now
	m.ModifiedBy = actor
}
