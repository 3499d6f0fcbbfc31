package middleware

import (
    "crypto/sha256"
    "net/http"

    "github.com/gorilla/csrf"
    "github.com/labstack/echo/v4"
)

// CSRFField is the form field carrying the token.
const CSRFField = "csrf_token"

// CSRF protects every unsafe request with gorilla/csrf. On plain HTTP the
// request is marked so the origin check does not demand TLS.
func CSRF(secret string, secure bool) echo.MiddlewareFunc {
    protect := csrf.Protect(
        deriveKey(secret),
        csrf.Secure(secure),
        csrf.Path("/"),
        csrf.FieldName(CSRFField),
        csrf.SameSite(csrf.SameSiteLaxMode),
        csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            http.Error(w, "Your form expired, please reload the page and try again", http.StatusForbidden)
        })),
    )
    wrap := func(h http.Handler) http.Handler {
        inner := protect(h)
        if secure {
            return inner
        }
        return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
            inner.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
        })
    }
    return echo.WrapMiddleware(wrap)
}

// CSRFToken returns the masked token for the current request.
func CSRFToken(c echo.Context) string {
    return csrf.Token(c.Request())
}

// deriveKey hashes secret into the 32-byte key gorilla/csrf needs.
func deriveKey(secret string) []byte {
    sum := sha256.Sum256([]byte(secret))
    return sum[:]
}
