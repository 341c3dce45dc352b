package failure_test

import (
	"dashboard/shared/failure"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{
			name:    "bad request",
			err:     failure.BadRequestFromString("sort_dir must be one of [asc desc]"),
			code:    http.StatusBadRequest,
			message: "sort_dir must be one of [asc desc]",
		},
		{
			name:    "internal error",
			err:     failure.InternalError(errors.New("fixture unreadable")),
			code:    http.StatusInternalServerError,
			message: "fixture unreadable",
		},
		{
			name:    "unimplemented",
			err:     failure.Unimplemented("entry delete"),
			code:    http.StatusNotImplemented,
			message: "entry delete is not implemented",
		},
		{
			name:    "not found",
			err:     failure.NotFound("entry", "PRJ-404"),
			code:    http.StatusNotFound,
			message: "entry PRJ-404 not found",
		},
		{
			name:    "arbitrary code",
			err:     failure.New(http.StatusConflict, "conflict"),
			code:    http.StatusConflict,
			message: "conflict",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f *failure.Failure

			require.ErrorAs(t, tt.err, &f)
			assert.Equal(t, tt.code, f.Code)
			assert.Equal(t, tt.message, tt.err.Error())
		})
	}
}

func TestInternalError_Nil(t *testing.T) {
	assert.NoError(t, failure.InternalError(nil))
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name     string
		input    error
		expected int
	}{
		{
			name:     "failure",
			input:    failure.BadRequestFromString("bad"),
			expected: http.StatusBadRequest,
		},
		{
			name:     "wrapped failure",
			input:    fmt.Errorf("failed to get entry: %w", failure.NotFound("entry", "PRJ-404")),
			expected: http.StatusNotFound,
		},
		{
			name:     "plain error",
			input:    errors.New("regular error"),
			expected: http.StatusInternalServerError,
		},
		{
			name:     "nil",
			input:    nil,
			expected: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, failure.GetCode(tt.input))
		})
	}
}
