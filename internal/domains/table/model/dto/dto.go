package dto

import (
	"mime/multipart"

	"bistro/internal/domains/table/model"
	"bistro/shared"
	gDto "bistro/shared/dto"
	gModel "bistro/shared/model"
	"bistro/shared/timezone"
)

// CreateTableRequest is parsed from a multipart form so a photo can ride along.
type CreateTableRequest struct {
	ID       string                `json:"id"       validate:"required,max=20"`
	Capacity int                   `json:"capacity" validate:"required,gte=1,lte=20"`
	Location string                `json:"location" validate:"omitempty,max=100"`
	Image    *multipart.FileHeader `json:"-"        validate:"omitempty,mimetypes=image/jpeg image/png image/webp"`
	File     multipart.File        `json:"-"`
}

func (c *CreateTableRequest) ToModel(user string) (model.Record, error) {
	id, err := model.NewTableID(c.ID)
	if err != nil {
		return model.Record{}, err
	}

	capacity, err := model.NewCapacity(c.Capacity)
	if err != nil {
		return model.Record{}, err
	}

	table, err := model.New(id, capacity, c.Location)
	if err != nil {
		return model.Record{}, err
	}

	now := timezone.Now()

	return model.FromTable(table, gModel.Metadata{
		CreatedAt:  now,
		ModifiedAt: now,
		CreatedBy:  user,
		ModifiedBy: user,
	}), nil
}

// UpdateTableRequest carries optional changes; nil pointers leave the column untouched.
type UpdateTableRequest struct {
	Capacity *int    `db:"capacity"  json:"capacity,omitempty"  validate:"omitempty,gte=1,lte=20"`
	IsActive *bool   `db:"is_active" json:"is_active,omitempty"`
	Location *string `db:"location"  json:"location,omitempty"  validate:"omitempty,max=100"`
}

func (u UpdateTableRequest) IsEmpty() bool {
	return u.Capacity == nil && u.IsActive == nil && u.Location == nil
}

type TableResponse struct {
	ID       string `json:"id"`
	Capacity int    `json:"capacity"`
	IsActive bool   `json:"is_active"`
	Location string `json:"location"`
	ImageURL string `json:"image_url,omitempty"`
	gDto.Metadata
}

func (r *TableResponse) FromModel(record model.Record) {
	r.ID = record.ID
	r.Capacity = record.Capacity
	r.IsActive = record.IsActive
	r.Location = record.Location
	r.ImageURL = record.ImageURL
	r.Metadata.FromModel(record.Metadata)
}

type GetTablesResponse struct {
	Tables    []TableResponse `json:"tables"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetTablesResponse) FromModels(records []model.Record, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tables = make([]TableResponse, len(records))
	for i, record := range records {
		r.Tables[i].FromModel(record)
	}
}
