package validator_test

import (
	"dashboard/shared/failure"
	"dashboard/shared/validator"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID       string `json:"id"        validate:"required"`
	DueDate  string `yaml:"dueDate"   validate:"required,datetime=2006-01-02"`
	Progress int    `json:"progress"  validate:"gte=0,lte=100"`
	Kind     string `validate:"oneof=asc desc"`
	Code     string `validate:"omitempty,alpha"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    record
		wantErr string
	}{
		{
			name: "valid record",
			data: record{ID: "PRJ-001", DueDate: "2024-02-15", Progress: 85, Kind: "asc"},
		},
		{
			name:    "json name is reported",
			data:    record{DueDate: "2024-02-15", Progress: 85, Kind: "asc"},
			wantErr: "id is required",
		},
		{
			name:    "yaml name is reported",
			data:    record{ID: "PRJ-001", DueDate: "15/02/2024", Progress: 85, Kind: "asc"},
			wantErr: "dueDate must be a date in the 2006-01-02 layout",
		},
		{
			name:    "progress above range",
			data:    record{ID: "PRJ-001", DueDate: "2024-02-15", Progress: 101, Kind: "asc"},
			wantErr: "progress must be at most 100",
		},
		{
			name:    "go name when untagged",
			data:    record{ID: "PRJ-001", DueDate: "2024-02-15", Progress: 1, Kind: "up"},
			wantErr: "Kind must be one of [asc desc]",
		},
		{
			name:    "every violation is listed",
			data:    record{Progress: -1, Kind: "asc"},
			wantErr: "id is required; dueDate is required; progress must be at least 0",
		},
		{
			name:    "tag without a message",
			data:    record{ID: "PRJ-001", DueDate: "2024-02-15", Kind: "asc", Code: "42"},
			wantErr: "Code failed alpha",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar([]string{"PRJ-001", "PRJ-002"}, "unique"))

	err := validator.ValidateVar([]string{"PRJ-001", "PRJ-001"}, "unique")
	require.Error(t, err)
	assert.Equal(t, "value must not contain duplicates", err.Error())
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
