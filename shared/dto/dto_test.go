package dto_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bistro/shared/constant"
	"bistro/shared/dto"
	"bistro/shared/model"
	"bistro/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2025, 5, 2, 18, 30, 0, 0, time.UTC)

	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  constant.ContextGuest,
		ModifiedBy: constant.ContextStaff,
	})

	assert.Equal(t, timezone.Format(createdAt, constant.DateFormat), metadata.CreatedAt)
	assert.Equal(t, timezone.Format(modifiedAt, constant.DateFormat), metadata.ModifiedAt)
	assert.Equal(t, constant.ContextGuest, metadata.CreatedBy)
	assert.Equal(t, constant.ContextStaff, metadata.ModifiedBy)
}

func TestMetadata_FromModelUnsaved(t *testing.T) {
	metadata := dto.Metadata{}
	metadata.FromModel(model.Metadata{})

	assert.Empty(t, metadata.CreatedAt)
	assert.Empty(t, metadata.ModifiedAt)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:     "all parameters",
			query:    "page=2&limit=20&sort_by=Start_Time&sort_dir=desc",
			expected: dto.QueryParams{Page: 2, Limit: 20, SortBy: "start_time", SortDir: dto.SortDirDesc},
		},
		{
			name:           "defaults",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "no defaults",
			expected: dto.QueryParams{},
		},
		{
			name:           "invalid and negative numbers fall back",
			query:          "page=abc&limit=-5",
			defaultRequest: true,
			expected:       dto.QueryParams{Page: constant.DefaultValuePage, Limit: constant.DefaultValueLimit},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: dto.QueryParams{Limit: dto.MaxLimit},
		},
		{
			name:     "unknown direction ignored",
			query:    "sort_dir=sideways",
			expected: dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/reservations?"+tt.query, nil)

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		expected dto.QueryParams
	}{
		{
			name:     "allowed column kept",
			params:   dto.QueryParams{SortBy: "party_size", SortDir: dto.SortDirDesc},
			expected: dto.QueryParams{SortBy: "party_size", SortDir: dto.SortDirDesc},
		},
		{
			name:     "unknown column replaced",
			params:   dto.QueryParams{SortBy: "customer_phone"},
			expected: dto.QueryParams{SortBy: "start_time", SortDir: dto.SortDirAsc},
		},
		{
			name:     "empty uses fallback ascending",
			expected: dto.QueryParams{SortBy: "start_time", SortDir: dto.SortDirAsc},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.params.RestrictSort("start_time", "start_time", "party_size")

			assert.Equal(t, tt.expected, tt.params)
		})
	}
}
