package middleware

import (
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"
)

// RequestLogger assigns every request an id (reusing X-Request-ID when the
// proxy sent one) and logs one line when it completes.
func RequestLogger() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            start := time.Now()
            req := c.Request()
            rid := req.Header.Get(echo.HeaderXRequestID)
            if rid == "" {
                rid = uuid.NewString()
            }
            c.Response().Header().Set(echo.HeaderXRequestID, rid)

            err := next(c)
            if err != nil {
                c.Error(err)
            }

            status := c.Response().Status
            ev := log.Info()
            if status >= 500 {
                ev = log.Error().Err(err)
            } else if status >= 400 {
                ev = log.Warn()
            }
            ev.Str("request_id", rid).
                Str("method", req.Method).
                Str("path", req.URL.Path).
                Int("status", status).
                Dur("latency", time.Since(start)).
                Str("ip", c.RealIP()).
                Msg("request")
            return nil
        }
    }
}
