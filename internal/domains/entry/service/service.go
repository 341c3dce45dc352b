package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Entry=MockEntryService

import (
	"context"
	"dashboard/config"
	"dashboard/infras/otel"
	"dashboard/internal/domains/entry/model"
	"dashboard/internal/domains/entry/model/dto"
	"dashboard/internal/domains/entry/pipeline"
	"dashboard/internal/domains/entry/repository"
	"dashboard/shared/constant"
	"dashboard/shared/failure"
	"dashboard/shared/validator"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Entry interface {
	List(ctx context.Context, req dto.ListEntriesRequest) (dto.ListEntriesResponse, error)
	Get(ctx context.Context, id string) (dto.EntryResponse, error)
	Action(ctx context.Context, req dto.ActionRequest) (dto.EntryResponse, error)
}

type serviceImpl struct {
	repo        repository.Entry
	defaultSort pipeline.Sort
	otel        otel.Otel
}

func New(repo repository.Entry, cfg *config.Config, otel otel.Otel) Entry {
	defaultSort := pipeline.DefaultSort

	if field := cfg.Dashboard.DefaultSortBy; pipeline.IsOrderable(field) {
		defaultSort.Field = field
	}

	if dir := pipeline.Direction(cfg.Dashboard.DefaultSortDir); dir == pipeline.Ascending || dir == pipeline.Descending {
		defaultSort.Direction = dir
	}

	return &serviceImpl{
		repo:        repo,
		defaultSort: defaultSort,
		otel:        otel,
	}
}

func (s *serviceImpl) List(ctx context.Context, req dto.ListEntriesRequest) (res dto.ListEntriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	entries, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get entries")

		return res, fmt.Errorf("failed to get entries: %w", err)
	}

	sort := req.ToSort(s.defaultSort)
	if !pipeline.IsOrderable(sort.Field) {
		log.Debug().Str("field", sort.Field).Msg("unknown sort field, keeping fixture order")
	}

	view := pipeline.DeriveView(entries, req.Search, sort)

	scope.SetAttributes(map[string]any{
		"entries.search":   req.Search,
		"entries.sort":     sort.Field,
		"entries.dir":      string(sort.Direction),
		"entries.total":    len(entries),
		"entries.filtered": len(view),
	})

	res.FromModels(view, req.Search, sort, len(entries))

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	entry, err := s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("id", id).Msg("failed to get entry")

		return res, fmt.Errorf("failed to get entry: %w", err)
	}

	res.FromModel(entry)

	return res, nil
}

// Action handles the row menu. Viewing details returns the entry; edit, assign and
// delete have no mutation semantics since entries are not persisted.
func (s *serviceImpl) Action(ctx context.Context, req dto.ActionRequest) (res dto.EntryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Action")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = validator.ValidateStruct(&req); err != nil {
		return res, err //nolint:wrapcheck
	}

	scope.SetAttributes(map[string]any{
		"entry.id":     req.ID,
		"entry.action": req.Action,
	})

	entry, err := s.repo.Get(ctx, req.ID)
	if err != nil {
		log.Error().Err(err).Str("id", req.ID).Msg("failed to get entry")

		return res, fmt.Errorf("failed to get entry: %w", err)
	}

	if req.Action != dto.ActionView {
		log.Warn().Str("id", req.ID).Str("action", req.Action).Msg("entry action has no effect")

		return res, failure.Unimplemented(model.EntityName + " " + req.Action) //nolint:wrapcheck
	}

	res.FromModel(entry)

	return res, nil
}
