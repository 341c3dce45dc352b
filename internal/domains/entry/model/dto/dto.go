package dto

import (
	"dashboard/internal/domains/entry/model"
	"dashboard/internal/domains/entry/pipeline"
	gDto "dashboard/shared/dto"
)

const (
	ActionEdit   = "edit"
	ActionView   = "view"
	ActionAssign = "assign"
	ActionDelete = "delete"
)

type ListEntriesRequest struct {
	Search  string `json:"q"`
	SortBy  string `json:"sort_by"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=asc desc"`
}

func (r *ListEntriesRequest) FromQueryParams(params gDto.QueryParams) {
	r.Search = params.Search
	r.SortBy = params.SortBy
	r.SortDir = params.SortDir
}

// ToSort resolves the requested sort, taking missing parts from fallback.
func (r *ListEntriesRequest) ToSort(fallback pipeline.Sort) pipeline.Sort {
	sort := fallback

	if r.SortBy != "" {
		sort.Field = r.SortBy
	}

	if r.SortDir != "" {
		sort.Direction = pipeline.Direction(r.SortDir)
	}

	return sort
}

type ActionRequest struct {
	ID     string `json:"id"     validate:"required"`
	Action string `json:"action" validate:"required,oneof=edit view assign delete"`
}

type EntryResponse struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Status          string `json:"status"`
	StatusVariant   string `json:"status_variant"`
	Priority        string `json:"priority"`
	PriorityVariant string `json:"priority_variant"`
	Assignee        string `json:"assignee"`
	DueDate         string `json:"due_date"`
	Progress        int    `json:"progress"`
}

func (r *EntryResponse) FromModel(entry model.Entry) {
	r.ID = entry.ID
	r.Name = entry.Name
	r.Status = entry.Status.String()
	r.StatusVariant = string(entry.Status.Variant())
	r.Priority = entry.Priority.String()
	r.PriorityVariant = string(entry.Priority.Variant())
	r.Assignee = entry.Assignee
	r.DueDate = entry.DueDate
	r.Progress = entry.Progress
}

type SortResponse struct {
	Field     string `json:"field"`
	Direction string `json:"direction"`
}

func (r *SortResponse) FromSort(sort pipeline.Sort) {
	r.Field = sort.Field
	r.Direction = string(sort.Direction)
}

// ColumnResponse describes one table header. Sortable columns carry the sort a
// click on the header switches to.
type ColumnResponse struct {
	Field     string        `json:"field"`
	Label     string        `json:"label"`
	Sortable  bool          `json:"sortable"`
	Active    bool          `json:"active"`
	Direction string        `json:"direction,omitempty"`
	Next      *SortResponse `json:"next,omitempty"`
}

type column struct {
	field string
	label string
}

var columns = []column{
	{field: model.FieldID, label: "ID"},
	{field: model.FieldName, label: "Project Name"},
	{field: model.FieldStatus, label: "Status"},
	{field: model.FieldPriority, label: "Priority"},
	{field: model.FieldAssignee, label: "Assignee"},
	{field: model.FieldDueDate, label: "Due Date"},
	{field: model.FieldProgress, label: "Progress"},
}

func Columns(current pipeline.Sort) []ColumnResponse {
	res := make([]ColumnResponse, len(columns))

	for i, col := range columns {
		res[i] = ColumnResponse{
			Field:    col.field,
			Label:    col.label,
			Sortable: pipeline.IsSortable(col.field),
			Active:   current.Field == col.field,
		}

		if res[i].Active {
			res[i].Direction = string(current.Direction)
		}

		if res[i].Sortable {
			next := SortResponse{}
			next.FromSort(current.Toggle(col.field))
			res[i].Next = &next
		}
	}

	return res
}

type ListEntriesResponse struct {
	Entries      []EntryResponse  `json:"entries"`
	Search       string           `json:"q"`
	Sort         SortResponse     `json:"sort"`
	Columns      []ColumnResponse `json:"columns"`
	TotalData    int              `json:"total_data"`
	TotalEntries int              `json:"total_entries"`
}

func (r *ListEntriesResponse) FromModels(models []model.Entry, search string, sort pipeline.Sort, totalEntries int) {
	r.Search = search
	r.Sort.FromSort(sort)
	r.Columns = Columns(sort)
	r.TotalData = len(models)
	r.TotalEntries = totalEntries

	r.Entries = make([]EntryResponse, len(models))
	for i, mod := range models {
		r.Entries[i].FromModel(mod)
	}
}
