package shared_test

import (
	"dashboard/shared"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		parts    []string
		expected string
	}{
		{
			name:     "joins all parts",
			parts:    []string{"limiter", "10.0.0.1", "curl/8.0"},
			expected: "limiter:10.0.0.1:curl/8.0",
		},
		{
			name:     "skips empty parts",
			parts:    []string{"limiter", "", "agent"},
			expected: "limiter:agent",
		},
		{
			name:     "no parts",
			parts:    nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.BuildCacheKey(tt.parts...))
		})
	}
}
