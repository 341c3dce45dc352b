package dto_test

import (
	"dashboard/shared/constant"
	"dashboard/shared/dto"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"q":        "Sarah",
				"sort_by":  "name",
				"sort_dir": "desc",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Search:  "Sarah",
				SortBy:  "name",
				SortDir: "desc",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name: "with upper case direction",
			queryParams: map[string]string{
				"sort_dir": "DESC",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: dto.SortDirDesc,
			},
		},
		{
			name: "with invalid direction",
			queryParams: map[string]string{
				"sort_dir": "sideways",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				SortBy:  constant.DefaultValueSortBy,
				SortDir: constant.DefaultValueSortDir,
			},
		},
		{
			name: "search keeps surrounding spaces",
			queryParams: map[string]string{
				"q": " api ",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Search: " api ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := url.Values{}
			for key, value := range tt.queryParams {
				values.Set(key, value)
			}

			req := &http.Request{URL: &url.URL{RawQuery: values.Encode()}}

			params := dto.QueryParams{}
			params.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestQueryParams_Encode(t *testing.T) {
	params := dto.QueryParams{Search: "mike chen", SortBy: "assignee", SortDir: "asc"}

	assert.Equal(t, "q=mike+chen&sort_by=assignee&sort_dir=asc", params.Encode())
	assert.Equal(t, "", dto.QueryParams{}.Encode())
}
