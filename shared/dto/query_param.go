package dto

import (
	"dashboard/shared/constant"
	"net/http"
	"net/url"
	"strings"
)

const (
	SortDirAsc  = "asc"
	SortDirDesc = "desc"
)

type QueryParams struct {
	Search  string `json:"q"        validate:"omitempty"`
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

// FromRequest populates QueryParams from the HTTP request.
// Example:
//
//	q := &dto.QueryParams{}
//	q.FromRequest(req, true)
//
// With `defaultRequest` set to true the sort falls back to the dashboard default
// (due date, ascending) when the request carries none.
// The search term is taken verbatim: no trimming, no case folding.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	q.Search = queryParams.Get(constant.RequestParamSearch)

	if sortBy := queryParams.Get(constant.RequestParamSortBy); sortBy != "" {
		q.SortBy = sortBy
	}

	if sortDir := strings.ToLower(queryParams.Get(constant.RequestParamSortDir)); sortDir == SortDirAsc || sortDir == SortDirDesc {
		q.SortDir = sortDir
	}

	if defaultRequest {
		if q.SortBy == "" {
			q.SortBy = constant.DefaultValueSortBy
		}

		if q.SortDir == "" {
			q.SortDir = constant.DefaultValueSortDir
		}
	}
}

// Encode renders the params back into a query string, omitting empty values.
func (q QueryParams) Encode() string {
	values := make([]string, 0, 3)

	if q.Search != "" {
		values = append(values, constant.RequestParamSearch+"="+url.QueryEscape(q.Search))
	}

	if q.SortBy != "" {
		values = append(values, constant.RequestParamSortBy+"="+url.QueryEscape(q.SortBy))
	}

	if q.SortDir != "" {
		values = append(values, constant.RequestParamSortDir+"="+url.QueryEscape(q.SortDir))
	}

	return strings.Join(values, "&")
}
