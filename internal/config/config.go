package config // package config loads application configuration from environment variables

import (
    "os"      // os provides access to environment variables
    "strings" // strings trims trailing slashes from the backend URL
    "time"    // time parses the backend timeout

    "github.com/joho/godotenv"  // godotenv loads a local .env file when present
    "github.com/rs/zerolog/log" // log reports configuration errors and halts execution
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.
type Config struct {
    Env             string        // application environment (e.g. "development", "production")
    Port            string        // HTTP port to listen on
    APIBaseURL      string        // base URL of the hotel REST backend, without trailing slash
    APITimeout      time.Duration // per-request timeout applied by the backend client
    SessionSecret   string        // key used by the CSRF protection
    CookieSecure    bool          // mark session and CSRF cookies Secure
    SessionTTLHours int           // lifetime of the session cookie and stored auth state
    Locale          string        // UI language tag ("en" or "vi")
    ServiceName     string        // service field attached to every log line
}

// Load reads a .env file if one exists, then builds a Config from the
// environment.  Required variables are enforced by must() and missing values
// cause the program to exit with a fatal log message.
func Load() Config {
    _ = godotenv.Load() // a missing .env is normal outside local development

    return Config{
        Env:             must("APP_ENV"),
        Port:            must("APP_PORT"),
        APIBaseURL:      strings.TrimRight(must("API_BASE_URL"), "/"),
        APITimeout:      envDur("API_TIMEOUT", 10*time.Second),
        SessionSecret:   must("SESSION_SECRET"),
        CookieSecure:    envBool("COOKIE_SECURE", false),
        SessionTTLHours: envInt("SESSION_TTL_HOURS", 24),
        Locale:          envStr("APP_LOCALE", "en"),
        ServiceName:     envStr("SERVICE_NAME", "hotel-booking-web"),
    }
}

// SessionTTL returns the session lifetime as a duration.
func (c Config) SessionTTL() time.Duration {
    if c.SessionTTLHours <= 0 {
        return 24 * time.Hour
    }
    return time.Duration(c.SessionTTLHours) * time.Hour
}

// must retrieves the value of a required environment variable.  If the
// variable is unset or empty, the application logs a fatal error and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatal().Str("key", key).Msg("missing required env var")
    }
    return v
}
