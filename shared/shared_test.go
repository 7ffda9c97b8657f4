package shared_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"bistro/shared"
	cacheMocks "bistro/shared/cache/mocks"
	"bistro/shared/constant"
	"bistro/shared/dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *bool
	}{
		{name: "empty string returns nil", input: "", expected: nil},
		{name: "true", input: "true", expected: boolPtr(true)},
		{name: "numeric false", input: "0", expected: boolPtr(false)},
		{name: "invalid string returns nil", input: "active", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "zero total returns 1", total: 0, limit: 10, expected: 1},
		{name: "zero limit returns 1", total: 100, limit: 0, expected: 1},
		{name: "exact division", total: 100, limit: 10, expected: 10},
		{name: "division with remainder", total: 101, limit: 10, expected: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type tableUpdate struct {
		Location string `db:"location"`
		Capacity *int   `db:"capacity"`
		Active   *bool  `db:"is_active"`
		Note     string
	}

	capacity := 6
	inactive := false

	result := shared.TransformFields(tableUpdate{
		Location: "Patio",
		Capacity: &capacity,
		Active:   &inactive,
		Note:     "ignored",
	}, "staff")

	assert.Equal(t, "Patio", result["location"])
	assert.Equal(t, 6, result["capacity"])
	assert.Equal(t, false, result["is_active"])
	assert.Equal(t, "staff", result[constant.FieldModifiedBy])
	assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
	assert.Len(t, result, 5)

	empty := shared.TransformFields(tableUpdate{}, "staff")
	assert.Len(t, empty, 2)
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID("T001", "id", "restaurant_tables")

	assert.Len(t, result.Filters, 1)

	filter, ok := result.Filters[0].(dto.Filter)
	assert.True(t, ok)
	assert.Equal(t, "id", filter.Field)
	assert.Equal(t, "T001", filter.Value)
	assert.Equal(t, dto.FilterOperatorEq, filter.Operator)
	assert.Equal(t, "restaurant_tables", filter.Table)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "reservation:get:abc", shared.BuildCacheKey("reservation:get", "abc"))
	assert.Equal(t, "limiter", shared.BuildCacheKey("limiter"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10}
	byTable := shared.FilterByID("T001", "table_id", "reservations")
	byOther := shared.FilterByID("T002", "table_id", "reservations")

	first := shared.BuildCacheKeyWithQuery("reservation:gets", params, byTable)
	again := shared.BuildCacheKeyWithQuery("reservation:gets", params, byTable)
	other := shared.BuildCacheKeyWithQuery("reservation:gets", params, byOther)

	assert.True(t, strings.HasPrefix(first, "reservation:gets:"))
	assert.Equal(t, first, again)
	assert.NotEqual(t, first, other)
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "table:gets:*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "table:gets")

	mockCache.EXPECT().Clear(gomock.Any(), "table:count:*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "table:count")
}

func boolPtr(b bool) *bool {
	return &b
}
