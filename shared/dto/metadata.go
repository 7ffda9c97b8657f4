package dto

import (
	"time"

	"bistro/shared/constant"
	"bistro/shared/model"
	"bistro/shared/timezone"
)

// Metadata is the audit trail echoed on every resource, rendered in the restaurant's time zone.
type Metadata struct {
	CreatedAt  string `json:"created_at,omitempty"`
	ModifiedAt string `json:"modified_at,omitempty"`
	CreatedBy  string `json:"created_by,omitempty"`
	ModifiedBy string `json:"modified_by,omitempty"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = formatTime(model.CreatedAt)
	m.ModifiedAt = formatTime(model.ModifiedAt)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return constant.Empty
	}

	return timezone.Format(t, constant.DateFormat)
}
