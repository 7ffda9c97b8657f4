package dto

import (
	"net/http"
	"slices"
	"strconv"
	"strings"

	"bistro/shared/constant"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// MaxLimit caps page size so one listing cannot pull a whole table's history.
const MaxLimit = 100

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates QueryParams from the query string. With defaultRequest set, a missing
// page or limit falls back to the first page of DefaultValueLimit rows.
//
//	q := dto.QueryParams{}
//	q.FromRequest(r, true)
//	q.RestrictSort(model.FieldStartTime, model.FieldStartTime, model.FieldPartySize)
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(constant.RequestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(constant.RequestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = min(limitInt, MaxLimit)
		}
	}

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = strings.ToLower(strings.TrimSpace(sortBy))
	}

	if sortDir := strings.ToUpper(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = constant.DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = constant.DefaultValueLimit
		}
	}
}

// RestrictSort keeps SortBy only when it is one of the listing's public columns, otherwise
// sorts by fallback. Direction defaults to ascending.
func (q *QueryParams) RestrictSort(fallback string, columns ...string) {
	if !slices.Contains(columns, q.SortBy) {
		q.SortBy = fallback
	}

	if q.SortDir == "" {
		q.SortDir = SortDirAsc
	}
}
