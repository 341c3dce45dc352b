// Package pipeline derives the entries shown in the project table from the full
// entry set, the search term and the active sort.
//
// DeriveView is pure: it never mutates its input and never fails. Every render
// recomputes the view from scratch.
package pipeline

import (
	"cmp"
	"dashboard/internal/domains/entry/model"
	"slices"
	"strings"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Flip returns the opposite direction. Anything that is not descending flips to descending.
func (d Direction) Flip() Direction {
	if d == Descending {
		return Ascending
	}

	return Descending
}

type Sort struct {
	Field     string
	Direction Direction
}

var DefaultSort = Sort{Field: model.FieldDueDate, Direction: Ascending}

// Toggle applies a column header click: the active column flips its direction,
// any other column becomes active in ascending order.
func (s Sort) Toggle(field string) Sort {
	if s.Field == field {
		return Sort{Field: field, Direction: s.Direction.Flip()}
	}

	return Sort{Field: field, Direction: Ascending}
}

type comparator func(a, b model.Entry) int

var sortableColumns = []string{model.FieldID, model.FieldName, model.FieldAssignee, model.FieldDueDate}

var comparators = map[string]comparator{
	model.FieldID:       byText(func(e model.Entry) string { return e.ID }),
	model.FieldName:     byText(func(e model.Entry) string { return e.Name }),
	model.FieldAssignee: byText(func(e model.Entry) string { return e.Assignee }),
	model.FieldDueDate:  byText(func(e model.Entry) string { return e.DueDate }),
	model.FieldStatus:   byText(func(e model.Entry) string { return e.Status.String() }),
	model.FieldPriority: byText(func(e model.Entry) string { return e.Priority.String() }),
	model.FieldProgress: func(a, b model.Entry) int { return cmp.Compare(a.Progress, b.Progress) },
}

func byText(value func(model.Entry) string) comparator {
	return func(a, b model.Entry) int {
		return strings.Compare(strings.ToLower(value(a)), strings.ToLower(value(b)))
	}
}

// SortableColumns lists the fields the table exposes as clickable headers.
func SortableColumns() []string {
	return slices.Clone(sortableColumns)
}

func IsSortable(field string) bool {
	return slices.Contains(sortableColumns, field)
}

// IsOrderable reports whether DeriveView knows how to order by field.
func IsOrderable(field string) bool {
	_, ok := comparators[field]

	return ok
}

// DeriveView filters entries by searchTerm and orders the survivors by sort.
func DeriveView(entries []model.Entry, searchTerm string, sort Sort) []model.Entry {
	view := Filter(entries, searchTerm)
	Order(view, sort)

	return view
}

// Filter keeps the entries whose name, assignee or id contains term, ignoring case.
// The result is a new slice; an empty term keeps every entry.
func Filter(entries []model.Entry, term string) []model.Entry {
	view := make([]model.Entry, 0, len(entries))
	term = strings.ToLower(term)

	for _, entry := range entries {
		if matches(entry, term) {
			view = append(view, entry)
		}
	}

	return view
}

func matches(entry model.Entry, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(entry.Name), lowerTerm) ||
		strings.Contains(strings.ToLower(entry.Assignee), lowerTerm) ||
		strings.Contains(strings.ToLower(entry.ID), lowerTerm)
}

// Order sorts entries in place with a stable sort. An unknown field leaves the order untouched.
func Order(entries []model.Entry, sort Sort) {
	compare, ok := comparators[sort.Field]
	if !ok {
		return
	}

	if sort.Direction == Descending {
		slices.SortStableFunc(entries, func(a, b model.Entry) int { return compare(b, a) })

		return
	}

	slices.SortStableFunc(entries, compare)
}
