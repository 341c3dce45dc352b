package dashboard

import (
	"bytes"
	"dashboard/infras/otel"
	"dashboard/internal/domains/dashboard/service"
	entryDto "dashboard/internal/domains/entry/model/dto"
	entryService "dashboard/internal/domains/entry/service"
	"dashboard/shared/constant"
	gDto "dashboard/shared/dto"
	"dashboard/shared/failure"
	"dashboard/transport/http/response"
	"dashboard/transport/http/view"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service      service.Dashboard
	entryService entryService.Entry
	view         view.Renderer
	otel         otel.Otel
}

func New(service service.Dashboard, entryService entryService.Entry, view view.Renderer, otel otel.Otel) Handler {
	return Handler{
		service:      service,
		entryService: entryService,
		view:         view,
		otel:         otel,
	}
}

// Router mounts the JSON panels under the versioned group.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/dashboard", handler.GetDashboard)
}

// Pages mounts the rendered HTML views at the root.
func (handler *Handler) Pages(router chi.Router) {
	router.Get("/", handler.Page)
	router.Get("/entries", handler.EntriesFragment)
}

// GetDashboard returns the static panels around the entries table.
// @Summary Get dashboard panels
// @Description Navigation, hero metrics and charts, and the performance summary cards.
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse "Dashboard panels"
// @Failure 500 {object} response.Error
// @Router /v1/dashboard [get]
func (handler *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDashboard")
	defer scope.End()

	panels, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, panels)
}

// Page renders the whole dashboard with the entries table for the current query.
func (handler *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Page")
	defer scope.End()

	panels, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get dashboard")

		handler.renderError(w, err)

		return
	}

	entries, err := handler.entryService.List(ctx, listRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list entries")

		handler.renderError(w, err)

		return
	}

	var buf bytes.Buffer
	if err = handler.view.Page(&buf, view.Page{Dashboard: panels, Entries: entries}); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render dashboard")

		handler.renderError(w, failure.InternalError(err))

		return
	}

	response.WithHTML(w, http.StatusOK, buf.Bytes())
}

// EntriesFragment renders only the entries card, for swapping the table in place.
func (handler *Handler) EntriesFragment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EntriesFragment")
	defer scope.End()

	entries, err := handler.entryService.List(ctx, listRequest(r))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list entries")

		handler.renderError(w, err)

		return
	}

	var buf bytes.Buffer
	if err = handler.view.Entries(&buf, entries); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to render entries")

		handler.renderError(w, failure.InternalError(err))

		return
	}

	response.WithHTML(w, http.StatusOK, buf.Bytes())
}

func (handler *Handler) renderError(w http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	var buf bytes.Buffer
	if renderErr := handler.view.Error(&buf, code, err.Error()); renderErr != nil {
		log.Error().Err(renderErr).Msg("failed to render error page")

		response.WithError(w, err)

		return
	}

	response.WithHTML(w, code, buf.Bytes())
}

func listRequest(r *http.Request) entryDto.ListEntriesRequest {
	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, false)

	req := entryDto.ListEntriesRequest{}
	req.FromQueryParams(queryParams)

	return req
}
