package entry

import (
	"dashboard/infras/otel"
	"dashboard/internal/domains/entry/model/dto"
	"dashboard/internal/domains/entry/service"
	"dashboard/shared/constant"
	gDto "dashboard/shared/dto"
	"dashboard/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Entry
	otel    otel.Otel
}

func New(service service.Entry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/entries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetEntries)
		routerGroup.Get("/{id}", handler.GetEntryByID)
		routerGroup.Post("/{id}/{action}", handler.EntryAction)
	})
}

// GetEntries returns the entries table after search and sort.
// @Summary List project entries
// @Description Filter entries by a case-insensitive search over name, assignee and id, then order them by the requested column.
// @Tags Entry
// @Produce json
// @Param q query string false "Search term"
// @Param sort_by query string false "Sort field" default(dueDate)
// @Param sort_dir query string false "Sort direction" Enums(asc, desc) default(asc)
// @Success 200 {object} dto.ListEntriesResponse "Entries view"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/entries [get]
func (handler *Handler) GetEntries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	req := dto.ListEntriesRequest{}
	req.FromQueryParams(queryParams)

	entries, err := handler.service.List(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list entries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entries listed successfully")

	response.WithJSON(w, http.StatusOK, entries)
}

// GetEntryByID returns a single entry.
// @Summary Get a project entry by ID
// @Tags Entry
// @Produce json
// @Param id path string true "Entry ID"
// @Success 200 {object} dto.EntryResponse "Entry details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/entries/{id} [get]
func (handler *Handler) GetEntryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEntryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	entry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", id).Msg("failed to get entry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entry retrieved successfully")

	response.WithJSON(w, http.StatusOK, entry)
}

// EntryAction runs one of the row menu actions.
// @Summary Run a row action on an entry
// @Description Only view is served; edit, assign and delete answer 501.
// @Tags Entry
// @Produce json
// @Param id path string true "Entry ID"
// @Param action path string true "Menu action" Enums(edit, view, assign, delete)
// @Success 200 {object} dto.EntryResponse "Entry details"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 501 {object} response.Error
// @Router /v1/entries/{id}/{action} [post]
func (handler *Handler) EntryAction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EntryAction")
	defer scope.End()

	req := dto.ActionRequest{
		ID:     chi.URLParam(r, constant.RequestParamID),
		Action: chi.URLParam(r, constant.RequestParamAction),
	}

	entry, err := handler.service.Action(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("id", req.ID).Str("action", req.Action).Msg("failed to run entry action")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Entry action " + req.Action + " completed")

	response.WithJSON(w, http.StatusOK, entry)
}
