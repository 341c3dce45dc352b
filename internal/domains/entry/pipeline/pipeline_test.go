package pipeline_test

import (
	"dashboard/internal/domains/entry/model"
	"dashboard/internal/domains/entry/pipeline"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture() []model.Entry {
	return []model.Entry{
		{ID: "PRJ-001", Name: "Website Redesign", Status: model.StatusActive, Priority: model.PriorityHigh, Assignee: "Sarah Johnson", DueDate: "2024-02-15", Progress: 85},
		{ID: "PRJ-002", Name: "Mobile App Development", Status: model.StatusActive, Priority: model.PriorityCritical, Assignee: "Mike Chen", DueDate: "2024-02-20", Progress: 60},
		{ID: "PRJ-003", Name: "Database Migration", Status: model.StatusCompleted, Priority: model.PriorityMedium, Assignee: "Alex Rodriguez", DueDate: "2024-01-30", Progress: 100},
		{ID: "PRJ-004", Name: "API Integration", Status: model.StatusPending, Priority: model.PriorityHigh, Assignee: "Emily Davis", DueDate: "2024-02-25", Progress: 25},
		{ID: "PRJ-005", Name: "Security Audit", Status: model.StatusOnHold, Priority: model.PriorityMedium, Assignee: "David Wilson", DueDate: "2024-03-01", Progress: 40},
		{ID: "PRJ-006", Name: "Performance Optimization", Status: model.StatusActive, Priority: model.PriorityLow, Assignee: "Lisa Zhang", DueDate: "2024-02-28", Progress: 70},
	}
}

func ids(entries []model.Entry) []string {
	out := make([]string, len(entries))
	for i, entry := range entries {
		out[i] = entry.ID
	}

	return out
}

func TestDeriveView_Search(t *testing.T) {
	tests := []struct {
		name     string
		term     string
		expected []string
	}{
		{
			name:     "empty term keeps everything",
			term:     "",
			expected: []string{"PRJ-001", "PRJ-002", "PRJ-003", "PRJ-004", "PRJ-005", "PRJ-006"},
		},
		{
			name:     "matches name",
			term:     "api",
			expected: []string{"PRJ-004"},
		},
		{
			name:     "matches assignee",
			term:     "sarah",
			expected: []string{"PRJ-001"},
		},
		{
			name:     "matches id",
			term:     "prj-00",
			expected: []string{"PRJ-001", "PRJ-002", "PRJ-003", "PRJ-004", "PRJ-005", "PRJ-006"},
		},
		{
			name:     "no match returns empty",
			term:     "zzz",
			expected: []string{},
		},
		{
			name:     "term is not trimmed",
			term:     " api",
			expected: []string{},
		},
		{
			name:     "status is not searched",
			term:     "pending",
			expected: []string{},
		},
	}

	unsorted := pipeline.Sort{Field: "unknown", Direction: pipeline.Ascending}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := pipeline.DeriveView(fixture(), tt.term, unsorted)

			require.NotNil(t, view)
			assert.Equal(t, tt.expected, ids(view))
		})
	}
}

func TestDeriveView_CaseInsensitiveSearch(t *testing.T) {
	lower := pipeline.DeriveView(fixture(), "sarah", pipeline.DefaultSort)
	upper := pipeline.DeriveView(fixture(), "SARAH", pipeline.DefaultSort)

	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, []string{"PRJ-001"}, ids(upper))
}

func TestDeriveView_Sort(t *testing.T) {
	tests := []struct {
		name     string
		sort     pipeline.Sort
		expected []string
	}{
		{
			name:     "due date ascending",
			sort:     pipeline.Sort{Field: model.FieldDueDate, Direction: pipeline.Ascending},
			expected: []string{"PRJ-003", "PRJ-001", "PRJ-002", "PRJ-004", "PRJ-006", "PRJ-005"},
		},
		{
			name:     "due date descending",
			sort:     pipeline.Sort{Field: model.FieldDueDate, Direction: pipeline.Descending},
			expected: []string{"PRJ-005", "PRJ-006", "PRJ-004", "PRJ-002", "PRJ-001", "PRJ-003"},
		},
		{
			name:     "name ascending ignores case",
			sort:     pipeline.Sort{Field: model.FieldName, Direction: pipeline.Ascending},
			expected: []string{"PRJ-004", "PRJ-003", "PRJ-002", "PRJ-006", "PRJ-005", "PRJ-001"},
		},
		{
			name:     "assignee descending",
			sort:     pipeline.Sort{Field: model.FieldAssignee, Direction: pipeline.Descending},
			expected: []string{"PRJ-001", "PRJ-002", "PRJ-006", "PRJ-004", "PRJ-005", "PRJ-003"},
		},
		{
			name:     "id descending",
			sort:     pipeline.Sort{Field: model.FieldID, Direction: pipeline.Descending},
			expected: []string{"PRJ-006", "PRJ-005", "PRJ-004", "PRJ-003", "PRJ-002", "PRJ-001"},
		},
		{
			name:     "progress is numeric",
			sort:     pipeline.Sort{Field: model.FieldProgress, Direction: pipeline.Ascending},
			expected: []string{"PRJ-004", "PRJ-005", "PRJ-002", "PRJ-006", "PRJ-001", "PRJ-003"},
		},
		{
			name:     "unknown field keeps filtered order",
			sort:     pipeline.Sort{Field: "budget", Direction: pipeline.Descending},
			expected: []string{"PRJ-001", "PRJ-002", "PRJ-003", "PRJ-004", "PRJ-005", "PRJ-006"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(pipeline.DeriveView(fixture(), "", tt.sort)))
		})
	}
}

func TestDeriveView_TwoEntryDueDate(t *testing.T) {
	entries := []model.Entry{
		{ID: "PRJ-003", DueDate: "2024-01-30"},
		{ID: "PRJ-001", DueDate: "2024-02-15"},
	}

	asc := pipeline.DeriveView(entries, "", pipeline.Sort{Field: model.FieldDueDate, Direction: pipeline.Ascending})
	desc := pipeline.DeriveView(entries, "", pipeline.Sort{Field: model.FieldDueDate, Direction: pipeline.Descending})

	assert.Equal(t, []string{"PRJ-003", "PRJ-001"}, ids(asc))
	assert.Equal(t, []string{"PRJ-001", "PRJ-003"}, ids(desc))
}

func TestDeriveView_NumericProgress(t *testing.T) {
	entries := []model.Entry{
		{ID: "a", Progress: 100},
		{ID: "b", Progress: 25},
		{ID: "c", Progress: 60},
	}

	view := pipeline.DeriveView(entries, "", pipeline.Sort{Field: model.FieldProgress, Direction: pipeline.Ascending})

	progress := make([]int, len(view))
	for i, entry := range view {
		progress[i] = entry.Progress
	}

	assert.Equal(t, []int{25, 60, 100}, progress)
}

func TestDeriveView_StableTies(t *testing.T) {
	entries := []model.Entry{
		{ID: "x", DueDate: "2024-02-01"},
		{ID: "y", DueDate: "2024-02-01"},
		{ID: "z", DueDate: "2024-01-01"},
	}

	asc := pipeline.DeriveView(entries, "", pipeline.Sort{Field: model.FieldDueDate, Direction: pipeline.Ascending})
	desc := pipeline.DeriveView(entries, "", pipeline.Sort{Field: model.FieldDueDate, Direction: pipeline.Descending})

	assert.Equal(t, []string{"z", "x", "y"}, ids(asc))
	assert.Equal(t, []string{"x", "y", "z"}, ids(desc))
}

func TestDeriveView_DoesNotMutateInput(t *testing.T) {
	entries := fixture()
	before := ids(entries)

	_ = pipeline.DeriveView(entries, "", pipeline.Sort{Field: model.FieldID, Direction: pipeline.Descending})

	assert.Equal(t, before, ids(entries))
}

func TestDeriveView_IsSubset(t *testing.T) {
	entries := fixture()
	known := map[string]model.Entry{}

	for _, entry := range entries {
		known[entry.ID] = entry
	}

	for _, term := range []string{"", "a", "e", "PRJ", "zzz", "o"} {
		view := pipeline.DeriveView(entries, term, pipeline.DefaultSort)
		seen := map[string]bool{}

		for _, entry := range view {
			assert.Equal(t, known[entry.ID], entry, "term %q returned an unknown entry", term)
			assert.False(t, seen[entry.ID], "term %q duplicated %s", term, entry.ID)
			seen[entry.ID] = true
		}
	}
}

func TestDeriveView_Empty(t *testing.T) {
	view := pipeline.DeriveView(nil, "api", pipeline.DefaultSort)

	require.NotNil(t, view)
	assert.Empty(t, view)
}

func TestSort_Toggle(t *testing.T) {
	tests := []struct {
		name     string
		current  pipeline.Sort
		field    string
		expected pipeline.Sort
	}{
		{
			name:     "same field flips ascending",
			current:  pipeline.Sort{Field: model.FieldName, Direction: pipeline.Ascending},
			field:    model.FieldName,
			expected: pipeline.Sort{Field: model.FieldName, Direction: pipeline.Descending},
		},
		{
			name:     "same field flips descending",
			current:  pipeline.Sort{Field: model.FieldName, Direction: pipeline.Descending},
			field:    model.FieldName,
			expected: pipeline.Sort{Field: model.FieldName, Direction: pipeline.Ascending},
		},
		{
			name:     "other field resets to ascending",
			current:  pipeline.Sort{Field: model.FieldName, Direction: pipeline.Descending},
			field:    model.FieldAssignee,
			expected: pipeline.Sort{Field: model.FieldAssignee, Direction: pipeline.Ascending},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.current.Toggle(tt.field))
		})
	}
}

func TestSort_DoubleToggleRestoresOrder(t *testing.T) {
	for _, field := range pipeline.SortableColumns() {
		t.Run(field, func(t *testing.T) {
			start := pipeline.Sort{Field: field, Direction: pipeline.Ascending}
			twice := start.Toggle(field).Toggle(field)

			assert.Equal(t, start, twice)
			assert.Equal(t,
				ids(pipeline.DeriveView(fixture(), "", start)),
				ids(pipeline.DeriveView(fixture(), "", twice)),
			)
		})
	}
}

func TestIsSortable(t *testing.T) {
	assert.True(t, pipeline.IsSortable(model.FieldDueDate))
	assert.True(t, pipeline.IsSortable(model.FieldID))
	assert.False(t, pipeline.IsSortable(model.FieldProgress))
	assert.False(t, pipeline.IsSortable(model.FieldStatus))

	assert.True(t, pipeline.IsOrderable(model.FieldProgress))
	assert.False(t, pipeline.IsOrderable("budget"))
}
