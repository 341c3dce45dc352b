package cache_test

import (
	"context"
	"dashboard/infras/otel/mocks"
	"dashboard/shared/cache"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedisCache_WithoutClient(t *testing.T) {
	c := cache.NewRedisCache(nil, mocks.NewOtel())

	var count int

	assert.ErrorIs(t, c.Get(context.Background(), "limiter:127.0.0.1", &count), cache.ErrUnavailable)
	assert.ErrorIs(t, c.Save(context.Background(), "limiter:127.0.0.1", 1, 60), cache.ErrUnavailable)
}
