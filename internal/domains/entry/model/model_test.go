package model_test

import (
	"dashboard/internal/domains/entry/model"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Variant(t *testing.T) {
	tests := []struct {
		status   model.Status
		expected model.Variant
	}{
		{status: model.StatusActive, expected: model.VariantDefault},
		{status: model.StatusCompleted, expected: model.VariantSecondary},
		{status: model.StatusPending, expected: model.VariantOutline},
		{status: model.StatusOnHold, expected: model.VariantDestructive},
		{status: model.StatusUnknown, expected: model.VariantOutline},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.status.Variant())
		})
	}
}

func TestPriority_Variant(t *testing.T) {
	tests := []struct {
		priority model.Priority
		expected model.Variant
	}{
		{priority: model.PriorityCritical, expected: model.VariantDestructive},
		{priority: model.PriorityHigh, expected: model.VariantDestructive},
		{priority: model.PriorityMedium, expected: model.VariantSecondary},
		{priority: model.PriorityLow, expected: model.VariantOutline},
		{priority: model.PriorityUnknown, expected: model.VariantOutline},
	}

	for _, tt := range tests {
		t.Run(tt.priority.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.priority.Variant())
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected model.Status
		wantErr  bool
	}{
		{input: "Active", expected: model.StatusActive},
		{input: "completed", expected: model.StatusCompleted},
		{input: "PENDING", expected: model.StatusPending},
		{input: "On Hold", expected: model.StatusOnHold},
		{input: "OnHold", expected: model.StatusOnHold},
		{input: "Archived", expected: model.StatusUnknown, wantErr: true},
		{input: "", expected: model.StatusUnknown, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := model.ParseStatus(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.Equal(t, tt.expected, status)
		})
	}
}

func TestParsePriority(t *testing.T) {
	for _, priority := range model.Priorities {
		parsed, err := model.ParsePriority(priority.String())

		require.NoError(t, err)
		assert.Equal(t, priority, parsed)
	}

	_, err := model.ParsePriority("Urgent")
	assert.Error(t, err)
}

func TestStatus_JSONText(t *testing.T) {
	payload, err := json.Marshal(struct {
		Status   model.Status   `json:"status"`
		Priority model.Priority `json:"priority"`
	}{Status: model.StatusOnHold, Priority: model.PriorityCritical})

	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"On Hold","priority":"Critical"}`, string(payload))

	_, err = json.Marshal(model.StatusUnknown)
	assert.Error(t, err)

	var decoded model.Status
	assert.Error(t, json.Unmarshal([]byte(`"Later"`), &decoded))
}
