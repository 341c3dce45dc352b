package redis

import (
	"context"
	"dashboard/config"
	"net"

	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// New connects to the primary Redis. It returns nil when no host is configured so
// that callers depending on Redis (the rate limiter) can run without it.
func New(config *config.Config) *goRedis.Client {
	primary := config.Cache.Redis.Primary

	if primary.Host == "" {
		log.Warn().Msg("No Redis host configured, rate limiter storage disabled")

		return nil
	}

	client := goRedis.NewClient(&goRedis.Options{
		Addr:     net.JoinHostPort(primary.Host, primary.Port),
		Password: primary.Password,
		DB:       primary.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}

	log.Info().
		Int("db", primary.DB).
		Str("host", primary.Host).
		Str("port", primary.Port).
		Msg("Connected to Redis")

	return client
}
