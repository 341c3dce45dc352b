package model_test

import (
	"dashboard/internal/domains/dashboard/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeries_Scaled(t *testing.T) {
	tests := []struct {
		name     string
		points   []model.Point
		expected []int
	}{
		{
			name:     "relative to peak",
			points:   []model.Point{{Label: "Thu", Value: 200}, {Label: "Sat", Value: 90}, {Label: "Sun", Value: 60}},
			expected: []int{100, 45, 30},
		},
		{
			name:     "all zero",
			points:   []model.Point{{Label: "a", Value: 0}, {Label: "b", Value: 0}},
			expected: []int{0, 0},
		},
		{
			name:     "negative values clamp to zero",
			points:   []model.Point{{Label: "a", Value: -5}, {Label: "b", Value: 10}},
			expected: []int{0, 100},
		},
		{
			name:     "empty",
			points:   nil,
			expected: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, model.Series{Points: tt.points}.Scaled())
		})
	}
}

func TestSummaryCard_Footer(t *testing.T) {
	progress, zero := 73, 0

	tests := []struct {
		name     string
		card     model.SummaryCard
		expected model.Footer
	}{
		{
			name:     "progress with trend",
			card:     model.SummaryCard{Progress: &progress, Trend: "+5.2%"},
			expected: model.Footer{ShowProgress: true, ShowTrend: true},
		},
		{
			name:     "badge only",
			card:     model.SummaryCard{Badge: &model.Badge{Text: "Completed"}},
			expected: model.Footer{ShowBadge: true},
		},
		{
			name:     "badge hides a lone trend",
			card:     model.SummaryCard{Badge: &model.Badge{Text: "Completed"}, Trend: "+1"},
			expected: model.Footer{ShowBadge: true},
		},
		{
			name:     "trend alone",
			card:     model.SummaryCard{Trend: "+12% improvement"},
			expected: model.Footer{ShowTrend: true},
		},
		{
			name:     "zero progress counts as absent",
			card:     model.SummaryCard{Progress: &zero, Trend: "flat"},
			expected: model.Footer{ShowTrend: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.card.Footer())
		})
	}
}
