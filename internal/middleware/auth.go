package middleware

import (
    "net/http"
    "net/url"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"

    "github.com/iliyamo/hotel-booking-web/internal/auth"
)

// TokenExpiry ends sessions whose bearer token carries an exp claim in the
// past. Tokens that are not JWTs are left alone; the backend still rejects
// them. The subject claim, when present, is exposed as "user_id".
func TokenExpiry(now func() time.Time) echo.MiddlewareFunc {
    if now == nil {
        now = time.Now
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            st := State(c)
            if !st.LoggedIn() {
                return next(c)
            }
            info, err := auth.InspectToken(st.Token)
            if err != nil {
                log.Debug().Err(err).Str("session", SessionID(c)).Msg("bearer token is not a readable JWT")
                return next(c)
            }
            if info.Expired(now()) {
                log.Info().Str("session", SessionID(c)).Time("expired_at", info.ExpiresAt).Msg("session token expired; logging out")
                if err := Store(c).Logout(c.Request().Context()); err != nil {
                    log.Warn().Err(err).Msg("clear expired session failed")
                }
                c.Set("role", nil)
                return next(c)
            }
            if info.Subject != "" {
                c.Set("user_id", info.Subject)
            }
            return next(c)
        }
    }
}

// RequireLogin redirects anonymous visitors to the login page, remembering
// where they were going.
func RequireLogin() echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            if !State(c).LoggedIn() {
                target := "/login?next=" + url.QueryEscape(c.Request().URL.RequestURI())
                return c.Redirect(http.StatusSeeOther, target)
            }
            return next(c)
        }
    }
}

// RequireRole rejects logged-in users whose role is not listed with 403.
// Anonymous visitors are sent to the login page.
func RequireRole(roles ...string) echo.MiddlewareFunc {
    allowed := make(map[string]bool, len(roles))
    for _, r := range roles {
        allowed[r] = true
    }
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return RequireLogin()(func(c echo.Context) error {
            if !allowed[string(State(c).Role)] {
                return echo.NewHTTPError(http.StatusForbidden, "You do not have access to this page")
            }
            return next(c)
        })
    }
}
