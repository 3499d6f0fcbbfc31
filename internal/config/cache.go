package config

import "time"

// CacheConfig defines settings for the backend read cache.  Only public
// catalogue lookups (hotels, rooms, amenities) are cached; anything carrying
// a bearer token bypasses the cache.  When Enabled is false or no Redis
// client is configured, every call goes to the backend.  TTL defines the
// lifetime of cache entries; Prefix namespaces the keys and MaxBodyBytes
// skips caching of oversized payloads.
type CacheConfig struct {
    Enabled      bool
    TTL          time.Duration
    Prefix       string
    MaxBodyBytes int
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
func LoadCacheConfig() CacheConfig {
    cfg := CacheConfig{
        Enabled:      envBool("CACHE_ENABLED", true),
        TTL:          envDur("CACHE_TTL", 30*time.Second),
        Prefix:       envStr("CACHE_PREFIX", "hotelweb:cache"),
        MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
    }
    if cfg.TTL <= 0 {
        cfg.TTL = time.Second
    }
    return cfg
}
