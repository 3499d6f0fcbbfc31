// Package handler contains the page handlers of the booking site. Every
// handler talks to the REST backend through apiclient and renders a page;
// failures become a banner on the page rather than an error response.
package handler

import (
    "context"
    "errors"
    "net/http"
    "net/url"
    "strconv"
    "strings"
    "time"

    "github.com/labstack/echo/v4"
    "github.com/rs/zerolog/log"
    "golang.org/x/text/language"

    "github.com/iliyamo/hotel-booking-web/internal/apiclient"
    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/middleware"
    "github.com/iliyamo/hotel-booking-web/internal/queue"
    "github.com/iliyamo/hotel-booking-web/internal/view"
)

const (
    langCookie  = "hotelweb_lang"
    flashCookie = "hotelweb_flash"

    // publishTimeout bounds how long a page waits on the broker.
    publishTimeout = 3 * time.Second

    msgSessionExpired = "Your session has expired, please log in again"
)

// Handler bundles what every page needs.
type Handler struct {
    api       *apiclient.Client   // api is the unauthenticated backend client
    nav       *view.Navigation    // nav tracks the navigation bar per session
    tr        *view.Translator    // tr picks the page language
    spaces    *Workspaces         // spaces holds per-session booking and admin state
    publisher queue.Publisher     // publisher announces booking activity
    now       func() time.Time    // now is the clock used by the booking rules
}

// Deps lists the collaborators of New.
type Deps struct {
    API        *apiclient.Client
    Navigation *view.Navigation
    Translator *view.Translator
    Workspaces *Workspaces
    Publisher  queue.Publisher
    Now        func() time.Time
}

// New builds the handler set. Publisher defaults to a no-op and Now to
// time.Now.
func New(d Deps) *Handler {
    if d.API == nil || d.Navigation == nil || d.Translator == nil || d.Workspaces == nil {
        panic("handler: missing dependency")
    }
    h := &Handler{api: d.API, nav: d.Navigation, tr: d.Translator, spaces: d.Workspaces, publisher: d.Publisher, now: d.Now}
    if h.publisher == nil {
        h.publisher = queue.NopPublisher{}
    }
    if h.now == nil {
        h.now = time.Now
    }
    return h
}

// client returns the backend client for the current session: the bearer
// token is attached when logged in.
func (h *Handler) client(c echo.Context) *apiclient.Client {
    if st := middleware.State(c); st.LoggedIn() {
        return h.api.WithToken(st.Token)
    }
    return h.api
}

// page assembles the layout values and consumes any pending flash banner.
func (h *Handler) page(c echo.Context, title string, data interface{}) *view.Page {
    st := middleware.State(c)
    p := &view.Page{
        Title:     title,
        Nav:       h.nav.For(middleware.SessionID(c), st),
        Lang:      h.lang(c),
        CSRFToken: middleware.CSRFToken(c),
        Data:      data,
    }
    p.Notice, p.Error = takeFlash(c)
    return p
}

// render writes page with status. A non-nil err becomes the error banner.
func (h *Handler) render(c echo.Context, status int, name string, p *view.Page, err error) error {
    if err != nil {
        p.Error = apperror.Message(err)
    }
    return c.Render(status, name, p)
}

func (h *Handler) lang(c echo.Context) language.Tag {
    var pref string
    if ck, err := c.Cookie(langCookie); err == nil {
        pref = ck.Value
    }
    return h.tr.Match(pref, c.Request().Header.Get("Accept-Language"))
}

// sessionLost logs the session out when the backend rejected its token
// and reports whether it did.
func (h *Handler) sessionLost(c echo.Context, err error) bool {
    if !apperror.Is(err, apperror.TypeUnauthorized) || !middleware.State(c).LoggedIn() {
        return false
    }
    if lerr := middleware.Store(c).Logout(c.Request().Context()); lerr != nil {
        log.Warn().Err(lerr).Str("session", middleware.SessionID(c)).Msg("logout after rejected token failed")
    }
    return true
}

// toLogin sends the visitor to the login page after their token was rejected.
func toLogin(c echo.Context) error {
    setFlash(c, "error", msgSessionExpired)
    return c.Redirect(http.StatusSeeOther, "/login?next="+url.QueryEscape(c.Request().URL.RequestURI()))
}

// redirect stores a banner and redirects with 303.
func redirect(c echo.Context, to, kind, msg string) error {
    if msg != "" {
        setFlash(c, kind, msg)
    }
    return c.Redirect(http.StatusSeeOther, to)
}

// redirectErr redirects with err as the banner.
func redirectErr(c echo.Context, to string, err error) error {
    return redirect(c, to, "error", apperror.Message(err))
}

func setFlash(c echo.Context, kind, msg string) {
    c.SetCookie(&http.Cookie{
        Name:     flashCookie,
        Value:    url.QueryEscape(kind + "|" + msg),
        Path:     "/",
        HttpOnly: true,
        SameSite: http.SameSiteLaxMode,
    })
}

// takeFlash returns and clears the banner set by the previous response.
func takeFlash(c echo.Context) (notice, errMsg string) {
    ck, err := c.Cookie(flashCookie)
    if err != nil || ck.Value == "" {
        return "", ""
    }
    c.SetCookie(&http.Cookie{Name: flashCookie, Value: "", Path: "/", MaxAge: -1})
    raw, err := url.QueryUnescape(ck.Value)
    if err != nil {
        return "", ""
    }
    kind, msg, ok := strings.Cut(raw, "|")
    if !ok {
        return "", ""
    }
    if kind == "error" {
        return "", msg
    }
    return msg, ""
}

// statusFor picks the response status of a page re-rendered after err.
func statusFor(err error) int {
    var ae *apperror.AppError
    if !errors.As(err, &ae) {
        return http.StatusBadGateway
    }
    switch ae.Type {
    case apperror.TypeValidation:
        return http.StatusUnprocessableEntity
    case apperror.TypeNotFound:
        return http.StatusNotFound
    case apperror.TypeUnauthorized:
        return http.StatusUnauthorized
    case apperror.TypeForbidden:
        return http.StatusForbidden
    case apperror.TypeBusy:
        return http.StatusConflict
    }
    return http.StatusBadGateway
}

// paramID parses the :id path parameter.
func paramID(c echo.Context) (int64, error) {
    id, err := strconv.ParseInt(c.Param("id"), 10, 64)
    if err != nil || id <= 0 {
        return 0, echo.NewHTTPError(http.StatusNotFound, "Page not found")
    }
    return id, nil
}

// publish runs fn with a bounded context and logs failures. The booking
// call has already succeeded, so nothing is returned to the page.
func (h *Handler) publish(c echo.Context, what string, fn func(ctx context.Context, p queue.Publisher) error) {
    ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), publishTimeout)
    defer cancel()
    if err := fn(ctx, h.publisher); err != nil {
        log.Warn().Err(err).Str("event", what).Msg("publish activity event failed")
    }
}

type errorData struct {
    Status  int
    Message string
}

// HTTPError renders the error page for errors that escape a handler:
// unknown routes, forbidden areas, rate limiting and render failures.
func (h *Handler) HTTPError(err error, c echo.Context) {
    if c.Response().Committed {
        return
    }
    code, msg := http.StatusInternalServerError, apperror.GenericMessage
    var he *echo.HTTPError
    if errors.As(err, &he) {
        code = he.Code
        if m, ok := he.Message.(string); ok && m != "" {
            msg = m
        }
        if code == http.StatusNotFound && msg == http.StatusText(http.StatusNotFound) {
            msg = "Page not found"
        }
    } else {
        log.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
    }

    if c.Request().Method == http.MethodHead {
        _ = c.NoContent(code)
        return
    }
    if rerr := c.Render(code, "error", h.page(c, "Error", errorData{Status: code, Message: msg})); rerr != nil {
        log.Error().Err(rerr).Msg("render error page failed")
        _ = c.String(code, msg)
    }
}

// SetLanguage stores the chosen page language and goes back.
func (h *Handler) SetLanguage(c echo.Context) error {
    tag := h.tr.Match(c.Param("tag"))
    c.SetCookie(&http.Cookie{
        Name:     langCookie,
        Value:    tag.String(),
        Path:     "/",
        MaxAge:   int((365 * 24 * time.Hour) / time.Second),
        SameSite: http.SameSiteLaxMode,
    })
    back := "/"
    if ref, err := url.Parse(c.Request().Referer()); err == nil && ref.Path != "" && ref.Host == c.Request().Host {
        back = ref.RequestURI()
    }
    return c.Redirect(http.StatusSeeOther, back)
}

// safeNext accepts only local absolute paths as a post-login target.
func safeNext(next string) string {
    if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, "\\") {
        return ""
    }
    return next
}
