package service_test

import (
	"context"
	"dashboard/infras/otel/mocks"
	"dashboard/internal/domains/dashboard/repository"
	"dashboard/internal/domains/dashboard/service"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Get(t *testing.T) {
	svc := service.New(repository.New(mocks.NewOtel()), mocks.NewOtel())

	res, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Dashboard", res.Nav.Brand)
	assert.Equal(t, "JD", res.Nav.User.Initials)
	assert.Len(t, res.Nav.Links, 4)
	assert.True(t, res.Nav.Links[0].Active)

	assert.Equal(t, "Welcome back, John!", res.Hero.Greeting)
	require.Len(t, res.Hero.Metrics, 4)
	assert.Equal(t, "$45,231.89", res.Hero.Metrics[0].Value)
	assert.Equal(t, "down", res.Hero.Metrics[3].TrendDirection)

	require.Len(t, res.Hero.Revenue.Points, 7)
	assert.Equal(t, "area", res.Hero.Revenue.Kind)
	assert.Equal(t, 100, res.Hero.Revenue.Points[6].Height)
	assert.Equal(t, 57, res.Hero.Revenue.Points[0].Height)

	require.Len(t, res.Hero.Activity.Points, 7)
	assert.Equal(t, "bar", res.Hero.Activity.Kind)
	assert.Equal(t, 100, res.Hero.Activity.Points[3].Height)

	require.Len(t, res.Summary.Cards, 4)
	assert.Equal(t, "This Week", res.Summary.Period)

	completion := res.Summary.Cards[0]
	require.NotNil(t, completion.Progress)
	assert.Equal(t, 73, *completion.Progress)
	assert.True(t, completion.ShowProgress)
	assert.True(t, completion.ShowTrend)
	assert.False(t, completion.ShowBadge)

	active := res.Summary.Cards[1]
	require.NotNil(t, active.Badge)
	assert.Equal(t, "secondary", active.Badge.Variant)
	assert.True(t, active.ShowBadge)
	assert.False(t, active.ShowProgress)
}
