package config

// This file defines a Redis client constructor for the application.  Redis
// holds session auth state, the backend read cache and the rate limiter
// buckets.  If connection fails during startup, the function returns nil and
// callers degrade gracefully: sessions fall back to process memory and
// caching and rate limiting are disabled.

import (
    "context"
    "crypto/tls"
    "strings"
    "time"

    "github.com/redis/go-redis/v9"
    "github.com/rs/zerolog/log"
)

// NewRedisClient instantiates a Redis client using environment variables.
// Supported variables are:
//   REDIS_HOST and REDIS_PORT – hostname and port of the Redis server
//   REDIS_ADDR – host:port shorthand (used when host/port are not both set)
//   REDIS_PASSWORD – optional password
//   REDIS_DB – database number (default 0)
//   REDIS_TLS – enable TLS when "true" or "1"
//   REDIS_DISABLED – skip Redis entirely
// The returned client may be nil if a connection cannot be established.
func NewRedisClient() *redis.Client {
    if envBool("REDIS_DISABLED", false) {
        return nil
    }
    host := envStr("REDIS_HOST", "")
    port := envStr("REDIS_PORT", "")
    addr := envStr("REDIS_ADDR", "localhost:6379")
    if host != "" && port != "" {
        addr = host + ":" + port
    }
    var tlsConf *tls.Config
    if tlsEnv := envStr("REDIS_TLS", ""); strings.EqualFold(tlsEnv, "true") || tlsEnv == "1" {
        tlsConf = &tls.Config{MinVersion: tls.VersionTLS12}
    }
    client := redis.NewClient(&redis.Options{
        Addr:      addr,
        Password:  envStr("REDIS_PASSWORD", ""),
        DB:        envInt("REDIS_DB", 0),
        TLSConfig: tlsConf,
    })
    // Ping the server with a short timeout.  Return nil on failure.
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
    defer cancel()
    if err := client.Ping(ctx).Err(); err != nil {
        log.Warn().Err(err).Str("addr", addr).Msg("redis unavailable, continuing without it")
        _ = client.Close()
        return nil
    }
    return client
}
