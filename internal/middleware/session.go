package middleware

import (
    "net/http"
    "time"

    "github.com/google/uuid"
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/auth"
)

const (
    // SessionCookie carries the opaque browser session id.
    SessionCookie = "hotelweb_session"

    storeKey     = "auth_store"
    sessionIDKey = "session_id"
)

// SessionConfig controls the session cookie.
type SessionConfig struct {
    Secure bool
    TTL    time.Duration
}

// Session resolves the browser session from its cookie, issuing a new uuid
// when the cookie is missing or malformed, and puts an auth.Store bound to
// that id into the context. Handlers read it with Store(c).
func Session(storage auth.Storage, notifier *auth.Notifier, cfg SessionConfig) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            id := ""
            if ck, err := c.Cookie(SessionCookie); err == nil {
                if _, perr := uuid.Parse(ck.Value); perr == nil {
                    id = ck.Value
                }
            }
            if id == "" {
                id = uuid.NewString()
            }
            // Refresh on every request so an active session never expires.
            c.SetCookie(&http.Cookie{
                Name:     SessionCookie,
                Value:    id,
                Path:     "/",
                HttpOnly: true,
                Secure:   cfg.Secure,
                SameSite: http.SameSiteLaxMode,
                MaxAge:   int(cfg.TTL / time.Second),
            })

            store := auth.NewStore(id, storage, notifier)
            c.Set(storeKey, store)
            c.Set(sessionIDKey, id)
            if st := store.State(c.Request().Context()); st.LoggedIn() {
                c.Set("role", string(st.Role))
            }
            return next(c)
        }
    }
}

// Store returns the auth store placed by Session, or nil outside it.
func Store(c echo.Context) *auth.Store {
    s, _ := c.Get(storeKey).(*auth.Store)
    return s
}

// State is shorthand for Store(c).State. Outside a session it is the
// logged-out state.
func State(c echo.Context) auth.AuthState {
    s := Store(c)
    if s == nil {
        return auth.AuthState{}
    }
    return s.State(c.Request().Context())
}

// SessionID returns the session id or "anon" outside a session.
func SessionID(c echo.Context) string {
    if v, ok := c.Get(sessionIDKey).(string); ok && v != "" {
        return v
    }
    return "anon"
}
