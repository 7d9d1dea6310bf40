package redisclient

import (
	"context"
	"crypto/tls"
	"fmt"
	"log/slog"
	"time"

	"concert-reservation/internal/pkg/config"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 2 * time.Second

// Connect builds a client and verifies reachability. The coordination store is
// mandatory for reservations, so an unreachable server fails startup.
func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	opts := &redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, fmt.Errorf("failed to ping redis at %s: %w", cfg.Addr, err)
	}

	cleanup := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}

	return client, cleanup, nil
}
