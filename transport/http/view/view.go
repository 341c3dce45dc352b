package view

import (
	dashboardDto "dashboard/internal/domains/dashboard/model/dto"
	entryDto "dashboard/internal/domains/entry/model/dto"
	"dashboard/internal/domains/entry/pipeline"
	gDto "dashboard/shared/dto"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templates embed.FS

type Page struct {
	Dashboard dashboardDto.DashboardResponse
	Entries   entryDto.ListEntriesResponse
}

type Renderer interface {
	Page(w io.Writer, page Page) error
	Entries(w io.Writer, entries entryDto.ListEntriesResponse) error
	Error(w io.Writer, code int, message string) error
}

type menuAction struct {
	Action      string
	Label       string
	Destructive bool
}

var menuActions = []menuAction{
	{Action: entryDto.ActionEdit, Label: "Edit"},
	{Action: entryDto.ActionView, Label: "View Details"},
	{Action: entryDto.ActionAssign, Label: "Assign"},
	{Action: entryDto.ActionDelete, Label: "Delete", Destructive: true},
}

var funcs = template.FuncMap{
	"badge":    badgeClass,
	"sortLink": sortLink,
	"arrow":    arrow,
	"actions":  func() []menuAction { return menuActions },
}

type renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates. Parsing only fails on a broken build, so it panics.
func New() Renderer {
	tmpl := template.Must(template.New("view").Funcs(funcs).ParseFS(templates, "templates/*.html"))

	return &renderer{tmpl: tmpl}
}

func (r *renderer) Page(w io.Writer, page Page) error {
	return r.execute(w, "page", page)
}

func (r *renderer) Entries(w io.Writer, entries entryDto.ListEntriesResponse) error {
	return r.execute(w, "entries", entries)
}

func (r *renderer) Error(w io.Writer, code int, message string) error {
	return r.execute(w, "error", struct {
		Code    int
		Message string
	}{Code: code, Message: message})
}

func (r *renderer) execute(w io.Writer, name string, data any) error {
	if err := r.tmpl.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	return nil
}

func badgeClass(variant string) string {
	return "badge badge-" + variant
}

// sortLink is the query a header click navigates to: the toggled sort with the
// current search preserved.
func sortLink(search string, next *entryDto.SortResponse) string {
	params := gDto.QueryParams{Search: search}

	if next != nil {
		params.SortBy = next.Field
		params.SortDir = next.Direction
	}

	return "?" + params.Encode()
}

func arrow(column entryDto.ColumnResponse) string {
	if !column.Active {
		return "↕"
	}

	if pipeline.Direction(column.Direction) == pipeline.Descending {
		return "↓"
	}

	return "↑"
}
