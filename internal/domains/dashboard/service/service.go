package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"dashboard/infras/otel"
	"dashboard/internal/domains/dashboard/model/dto"
	"dashboard/internal/domains/dashboard/repository"
	"dashboard/shared/constant"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Dashboard interface {
	Get(ctx context.Context) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo repository.Dashboard
	otel otel.Otel
}

func New(repo repository.Dashboard, otel otel.Otel) Dashboard {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	dashboard, err := s.repo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get dashboard panels")

		return res, fmt.Errorf("failed to get dashboard panels: %w", err)
	}

	res.FromModel(dashboard)

	return res, nil
}
