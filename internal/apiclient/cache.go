package apiclient

import (
	"context"
	"crypto/sha1"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/hotel-booking-web/internal/config"
)

// catalogue resources are public and shared between sessions, so their
// unauthenticated reads can be cached.
var catalogue = []string{"/hotels", "/rooms", "/amenities"}

func isCatalogue(path string) bool {
	for _, p := range catalogue {
		if path == p || strings.HasPrefix(path, p+"/") || strings.HasPrefix(path, p+"?") {
			return true
		}
	}
	return false
}

// changesCatalogue reports whether a write to path can change cached
// catalogue reads. Bookings change the available amount of their rooms.
func changesCatalogue(path string) bool {
	return isCatalogue(path) || path == "/bookings" || strings.HasPrefix(path, "/bookings/")
}

// ReadCache stores envelope data of catalogue reads in Redis. Any write to
// a catalogue resource drops every cached entry, since hotel pages embed
// rooms and amenities.
type ReadCache struct {
	rdb     *redis.Client
	ttl     time.Duration
	prefix  string
	maxBody int
}

// NewReadCache returns nil when caching is disabled or Redis is absent; a
// nil *ReadCache is never consulted.
func NewReadCache(cfg config.CacheConfig, rdb *redis.Client) *ReadCache {
	if !cfg.Enabled || rdb == nil {
		return nil
	}
	return &ReadCache{rdb: rdb, ttl: cfg.TTL, prefix: cfg.Prefix, maxBody: cfg.MaxBodyBytes}
}

func (rc *ReadCache) key(endpoint string) string {
	sum := sha1.Sum([]byte(endpoint))
	return fmt.Sprintf("%s:%x", rc.prefix, sum[:])
}

// Get returns the cached data for endpoint.
func (rc *ReadCache) Get(ctx context.Context, path, endpoint string) ([]byte, bool) {
	bs, err := rc.rdb.Get(ctx, rc.key(endpoint)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("path", path).Msg("read cache get failed")
		}
		return nil, false
	}
	return bs, true
}

// Set stores data for endpoint unless it exceeds the size limit.
func (rc *ReadCache) Set(ctx context.Context, path, endpoint string, data []byte) {
	if rc.maxBody > 0 && len(data) > rc.maxBody {
		return
	}
	if err := rc.rdb.SetEx(ctx, rc.key(endpoint), data, rc.ttl).Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("read cache set failed")
	}
}

// Invalidate removes every cached catalogue entry.
func (rc *ReadCache) Invalidate(ctx context.Context, path string) {
	iter := rc.rdb.Scan(ctx, 0, rc.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("read cache scan failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := rc.rdb.Del(ctx, keys...).Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("read cache invalidate failed")
	}
}
