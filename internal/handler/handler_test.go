package handler_test

import (
    "encoding/json"
    "io"
    "mime/multipart"
    "net/http"
    "net/http/httptest"
    "net/url"
    "strings"
    "sync"
    "sync/atomic"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/labstack/echo/v4"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "github.com/iliyamo/hotel-booking-web/internal/apiclient"
    "github.com/iliyamo/hotel-booking-web/internal/auth"
    "github.com/iliyamo/hotel-booking-web/internal/config"
    "github.com/iliyamo/hotel-booking-web/internal/handler"
    "github.com/iliyamo/hotel-booking-web/internal/middleware"
    "github.com/iliyamo/hotel-booking-web/internal/router"
    "github.com/iliyamo/hotel-booking-web/internal/view"
)

// ----- fake backend -----

type call struct {
    Method      string
    Path        string
    Auth        string
    ContentType string
    Body        []byte
}

type backend struct {
    t  *testing.T
    mu sync.Mutex

    calls  []call
    routes map[string]http.HandlerFunc
}

func newBackend(t *testing.T) *backend {
    return &backend{t: t, routes: map[string]http.HandlerFunc{}}
}

// on registers a reply for "METHOD /path".
func (b *backend) on(route string, fn http.HandlerFunc) {
    b.routes[route] = fn
}

func (b *backend) reply(route string, status int, message string, data interface{}) {
    b.on(route, func(w http.ResponseWriter, _ *http.Request) {
        envelope(w, status, message, data)
    })
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
    body, _ := io.ReadAll(r.Body)
    b.mu.Lock()
    b.calls = append(b.calls, call{
        Method:      r.Method,
        Path:        r.URL.Path,
        Auth:        r.Header.Get("Authorization"),
        ContentType: r.Header.Get("Content-Type"),
        Body:        body,
    })
    b.mu.Unlock()

    fn, ok := b.routes[r.Method+" "+r.URL.Path]
    if !ok {
        envelope(w, http.StatusNotFound, "no route", nil)
        return
    }
    r.Body = io.NopCloser(strings.NewReader(string(body)))
    fn(w, r)
}

func (b *backend) count(method, path string) int {
    b.mu.Lock()
    defer b.mu.Unlock()
    n := 0
    for _, c := range b.calls {
        if c.Method == method && c.Path == path {
            n++
        }
    }
    return n
}

func (b *backend) last(method, path string) (call, bool) {
    b.mu.Lock()
    defer b.mu.Unlock()
    for i := len(b.calls) - 1; i >= 0; i-- {
        if b.calls[i].Method == method && b.calls[i].Path == path {
            return b.calls[i], true
        }
    }
    return call{}, false
}

func envelope(w http.ResponseWriter, status int, message string, data interface{}) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(status)
    _ = json.NewEncoder(w).Encode(map[string]interface{}{"status": status, "message": message, "data": data})
}

// ----- site under test -----

type site struct {
    e      *echo.Echo
    be     *backend
    spaces *handler.Workspaces
}

var juneFirst = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

func newSite(t *testing.T, be *backend, opts ...apiclient.Option) *site {
    t.Helper()
    srv := httptest.NewServer(be)
    t.Cleanup(srv.Close)

    notifier := auth.NewNotifier()
    nav := view.NewNavigation(notifier)
    spaces := handler.NewWorkspaces(notifier)
    t.Cleanup(nav.Close)
    t.Cleanup(spaces.Close)

    tr := view.NewTranslator("en")
    renderer, err := view.NewRenderer(tr)
    require.NoError(t, err)

    h := handler.New(handler.Deps{
        API:        apiclient.New(srv.URL, append([]apiclient.Option{apiclient.WithTimeout(2 * time.Second)}, opts...)...),
        Navigation: nav,
        Translator: tr,
        Workspaces: spaces,
        Now:        func() time.Time { return juneFirst },
    })

    e := echo.New()
    e.Renderer = renderer
    e.Use(middleware.Session(auth.NewMemoryStorage(time.Hour), notifier, middleware.SessionConfig{TTL: time.Hour}))
    router.RegisterAll(e, h)
    return &site{e: e, be: be, spaces: spaces}
}

// browser keeps cookies between requests like a real one would.
type browser struct {
    s       *site
    cookies map[string]*http.Cookie
}

func (s *site) browser() *browser {
    return &browser{s: s, cookies: map[string]*http.Cookie{}}
}

func (b *browser) send(req *http.Request) *httptest.ResponseRecorder {
    for _, ck := range b.cookies {
        req.AddCookie(ck)
    }
    rec := httptest.NewRecorder()
    b.s.e.ServeHTTP(rec, req)
    for _, ck := range rec.Result().Cookies() {
        if ck.MaxAge < 0 || ck.Value == "" {
            delete(b.cookies, ck.Name)
            continue
        }
        b.cookies[ck.Name] = ck
    }
    return rec
}

func (b *browser) get(path string) *httptest.ResponseRecorder {
    return b.send(httptest.NewRequest(http.MethodGet, path, nil))
}

func (b *browser) post(path string, form url.Values) *httptest.ResponseRecorder {
    req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
    req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
    return b.send(req)
}

func (b *browser) login(t *testing.T, email string) *httptest.ResponseRecorder {
    t.Helper()
    rec := b.post("/login", url.Values{"email": {email}, "password": {"secret1"}})
    require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
    return rec
}

// ----- fixtures -----

func withAccounts(be *backend) {
    be.on("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
        var in apiclient.LoginRequest
        _ = json.NewDecoder(r.Body).Decode(&in)
        switch in.Email {
        case "admin@hotel.test":
            envelope(w, http.StatusOK, "ok", map[string]string{"token": "tok-admin", "role": "ADMIN"})
        case "guest@hotel.test":
            envelope(w, http.StatusOK, "ok", map[string]string{"token": "tok-guest", "role": "CUSTOMER"})
        default:
            envelope(w, http.StatusUnauthorized, "Invalid email or password", nil)
        }
    })
}

func withRoom(be *backend) {
    be.reply("GET /rooms/3", http.StatusOK, "ok", map[string]interface{}{
        "id": 3, "hotelId": 1, "name": "Deluxe", "type": "DOUBLE",
        "price": 500000, "capacity": 2, "amount": 5, "amenityIds": []int{},
    })
    be.reply("GET /hotels/1", http.StatusOK, "ok", map[string]interface{}{
        "id": 1, "name": "Sea View", "location": "Da Nang", "starRating": 4, "active": true,
    })
    be.reply("GET /amenities", http.StatusOK, "ok", []interface{}{})
    be.reply("GET /hotels", http.StatusOK, "ok", []interface{}{})
}

func bookingJSON(id int, ref, status string) map[string]interface{} {
    return map[string]interface{}{
        "id": id, "referenceCode": ref, "roomId": 3, "hotelId": 1,
        "checkInDate": "2025-06-10", "checkOutDate": "2025-06-12",
        "adults": 1, "roomQuantity": 1, "status": status, "totalPrice": 1000000,
    }
}

// ----- tests -----

func TestLogin_RedirectsByRole(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    s := newSite(t, be)

    rec := s.browser().login(t, "guest@hotel.test")
    assert.Equal(t, "/", rec.Header().Get(echo.HeaderLocation))

    rec = s.browser().login(t, "admin@hotel.test")
    assert.Equal(t, "/admin/bookings", rec.Header().Get(echo.HeaderLocation))

    b := s.browser()
    rec = b.post("/login", url.Values{"email": {"guest@hotel.test"}, "password": {"x"}, "next": {"/profile"}})
    assert.Equal(t, "/profile", rec.Header().Get(echo.HeaderLocation))
}

func TestLogin_ShowsServerMessage(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    s := newSite(t, be)

    rec := s.browser().post("/login", url.Values{"email": {"nobody@hotel.test"}, "password": {"x"}})

    assert.Equal(t, http.StatusUnauthorized, rec.Code)
    assert.Contains(t, rec.Body.String(), "Invalid email or password")
}

func TestLogin_InvalidFormMakesNoCall(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    s := newSite(t, be)

    rec := s.browser().post("/login", url.Values{"email": {"not-an-email"}, "password": {""}})

    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.Zero(t, be.count(http.MethodPost, "/auth/login"))
}

func TestCustomerPages_RequireLogin(t *testing.T) {
    s := newSite(t, newBackend(t))

    rec := s.browser().post("/rooms/3/book", url.Values{})

    assert.Equal(t, http.StatusSeeOther, rec.Code)
    assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), "/login?next="))
}

func TestAdminPages_ForbiddenForCustomers(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "guest@hotel.test")

    rec := b.get("/admin/bookings")

    assert.Equal(t, http.StatusForbidden, rec.Code)
    assert.Contains(t, rec.Body.String(), "You do not have access to this page")
    assert.Zero(t, be.count(http.MethodGet, "/bookings"))
}

func TestBook_CreatesBookingAndShowsConfirmation(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    withRoom(be)
    be.reply("POST /bookings", http.StatusCreated, "Booking created", map[string]interface{}{"id": 42, "referenceCode": "ABC123"})
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "guest@hotel.test")

    rec := b.post("/rooms/3/book", url.Values{
        "checkIn": {"2025-06-10"}, "checkOut": {"2025-06-12"},
        "adults": {"1"}, "children": {"0"}, "roomQuantity": {"1"},
    })
    require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
    assert.Equal(t, "/bookings/confirmation", rec.Header().Get(echo.HeaderLocation))

    require.Equal(t, 1, be.count(http.MethodPost, "/bookings"))
    sent, _ := be.last(http.MethodPost, "/bookings")
    assert.Equal(t, "Bearer tok-guest", sent.Auth)
    var payload map[string]interface{}
    require.NoError(t, json.Unmarshal(sent.Body, &payload))
    assert.Equal(t, "2025-06-10", payload["checkInDate"])
    assert.Equal(t, "2025-06-12", payload["checkOutDate"])
    assert.EqualValues(t, 3, payload["roomId"])
    assert.EqualValues(t, 1, payload["hotelId"])
    assert.EqualValues(t, 1, payload["roomQuantity"])

    rec = b.get("/bookings/confirmation")
    require.Equal(t, http.StatusOK, rec.Code)
    body := rec.Body.String()
    assert.Contains(t, body, "ABC123")
    assert.Contains(t, body, `<td class="total">1,000,000 VND</td>`)
    assert.Contains(t, body, "Sea View")
    // The confirmation is assembled locally; the booking is never re-read.
    assert.Zero(t, be.count(http.MethodGet, "/bookings/reference/ABC123"))
}

func TestBook_ChecksAvailabilityAgainstCurrentAmount(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    withRoom(be)
    var amount int32 = 1
    be.on("GET /rooms/3", func(w http.ResponseWriter, _ *http.Request) {
        envelope(w, http.StatusOK, "ok", map[string]interface{}{
            "id": 3, "hotelId": 1, "name": "Deluxe", "type": "DOUBLE",
            "price": 500000, "capacity": 2, "amount": atomic.LoadInt32(&amount),
        })
    })
    be.on("POST /bookings", func(w http.ResponseWriter, _ *http.Request) {
        atomic.StoreInt32(&amount, 0)
        envelope(w, http.StatusCreated, "Booking created", map[string]interface{}{"id": 42, "referenceCode": "ABC123"})
    })

    mr := miniredis.RunT(t)
    rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
    t.Cleanup(func() { _ = rdb.Close() })
    cache := apiclient.NewReadCache(config.CacheConfig{Enabled: true, TTL: time.Minute, Prefix: "test", MaxBodyBytes: 1 << 20}, rdb)
    s := newSite(t, be, apiclient.WithReadCache(cache))

    b := s.browser()
    require.Equal(t, http.StatusOK, b.get("/rooms/3").Code) // warms the public cache
    b.login(t, "guest@hotel.test")

    form := url.Values{"checkIn": {"2025-06-10"}, "checkOut": {"2025-06-12"}, "adults": {"1"}, "roomQuantity": {"1"}}
    rec := b.post("/rooms/3/book", form)
    require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
    sent, _ := be.last(http.MethodGet, "/rooms/3")
    assert.Equal(t, "Bearer tok-guest", sent.Auth)

    rec = b.post("/rooms/3/book", form)
    assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
    assert.Contains(t, rec.Body.String(), "Not enough rooms available for the requested quantity")
    assert.Equal(t, 1, be.count(http.MethodPost, "/bookings"))

    // The public page sees the new amount too.
    gets := be.count(http.MethodGet, "/rooms/3")
    b.get("/rooms/3")
    assert.Equal(t, gets+1, be.count(http.MethodGet, "/rooms/3"))
}

func TestBook_ValidationFailureMakesNoCall(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    withRoom(be)
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "guest@hotel.test")

    cases := []struct {
        name string
        form url.Values
        msg  string
    }{
        {"checkout before checkin", url.Values{"checkIn": {"2025-06-12"}, "checkOut": {"2025-06-10"}, "adults": {"1"}, "roomQuantity": {"1"}}, "Check-out date must be after check-in date"},
        {"past checkin", url.Values{"checkIn": {"2025-05-30"}, "checkOut": {"2025-06-02"}, "adults": {"1"}, "roomQuantity": {"1"}}, "Check-in date cannot be in the past"},
        {"over capacity", url.Values{"checkIn": {"2025-06-10"}, "checkOut": {"2025-06-12"}, "adults": {"2"}, "children": {"1"}, "roomQuantity": {"1"}}, "The number of guests exceeds the room capacity"},
        {"too many rooms", url.Values{"checkIn": {"2025-06-10"}, "checkOut": {"2025-06-12"}, "adults": {"1"}, "roomQuantity": {"6"}}, "Not enough rooms available for the requested quantity"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            rec := b.post("/rooms/3/book", tc.form)
            assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
            assert.Contains(t, rec.Body.String(), tc.msg)
        })
    }
    assert.Zero(t, be.count(http.MethodPost, "/bookings"))
}

func TestBook_ServerMessageShownVerbatim(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    withRoom(be)
    be.reply("POST /bookings", http.StatusConflict, "Room is fully booked for these dates", nil)
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "guest@hotel.test")

    rec := b.post("/rooms/3/book", url.Values{
        "checkIn": {"2025-06-10"}, "checkOut": {"2025-06-12"}, "adults": {"1"}, "roomQuantity": {"1"},
    })

    assert.Equal(t, http.StatusBadGateway, rec.Code)
    assert.Contains(t, rec.Body.String(), "Room is fully booked for these dates")
    assert.Equal(t, 1, be.count(http.MethodPost, "/bookings"))
}

func TestAdminBookings_SearchClearAndCancel(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    be.reply("GET /bookings", http.StatusOK, "ok", []interface{}{
        bookingJSON(5, "AAA111", "BOOKED"),
        bookingJSON(7, "BBB222", "BOOKED"),
    })
    be.reply("GET /bookings/reference/ZZZ999", http.StatusNotFound, "Booking not found", nil)
    cancelled := bookingJSON(5, "AAA111", "CANCELLED")
    cancelled["cancellationReason"] = "guest request"
    be.reply("PUT /bookings/5", http.StatusOK, "ok", cancelled)
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "admin@hotel.test")

    rec := b.get("/admin/bookings")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "AAA111")
    assert.Contains(t, rec.Body.String(), "BBB222")

    // Unknown code: a not-found state, not an error.
    rec = b.post("/admin/bookings/search", url.Values{"code": {"ZZZ999"}})
    require.Equal(t, http.StatusSeeOther, rec.Code)
    rec = b.get("/admin/bookings")
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "No booking matches this confirmation code")
    assert.NotContains(t, rec.Body.String(), "AAA111")

    // Clearing restores the full list from memory.
    b.post("/admin/bookings/clear", url.Values{})
    rec = b.get("/admin/bookings")
    assert.Contains(t, rec.Body.String(), "AAA111")
    assert.NotContains(t, rec.Body.String(), "No booking matches this confirmation code")
    assert.Equal(t, 1, be.count(http.MethodGet, "/bookings"))

    // Two-phase cancel.
    rec = b.post("/admin/bookings/5/status", url.Values{"status": {"CANCELLED"}})
    require.Equal(t, http.StatusSeeOther, rec.Code)
    rec = b.get("/admin/bookings")
    assert.Contains(t, rec.Body.String(), `id="confirm"`)
    assert.Contains(t, rec.Body.String(), `name="cancellationReason"`)
    assert.Zero(t, be.count(http.MethodPut, "/bookings/5"))

    rec = b.post("/admin/bookings/confirm", url.Values{"cancellationReason": {"guest request"}})
    require.Equal(t, http.StatusSeeOther, rec.Code)
    require.Equal(t, 1, be.count(http.MethodPut, "/bookings/5"))
    sent, _ := be.last(http.MethodPut, "/bookings/5")
    assert.JSONEq(t, `{"status":"CANCELLED","cancellationReason":"guest request","roomNumber":""}`, string(sent.Body))

    rec = b.get("/admin/bookings")
    assert.Contains(t, rec.Body.String(), "/admin/bookings/5/reason")
    assert.NotContains(t, rec.Body.String(), `id="confirm"`)
    assert.Equal(t, 1, be.count(http.MethodGet, "/bookings"))
}

func TestAdminBookings_CancelNeedsReason(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    be.reply("GET /bookings", http.StatusOK, "ok", []interface{}{bookingJSON(5, "AAA111", "BOOKED")})
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "admin@hotel.test")
    b.get("/admin/bookings")

    b.post("/admin/bookings/5/status", url.Values{"status": {"CANCELLED"}})
    rec := b.post("/admin/bookings/confirm", url.Values{"cancellationReason": {"   "}})

    assert.Equal(t, http.StatusSeeOther, rec.Code)
    assert.Zero(t, be.count(http.MethodPut, "/bookings/5"))
    // The transition stays pending so the reason can be entered.
    rec = b.get("/admin/bookings")
    assert.Contains(t, rec.Body.String(), `id="confirm"`)
}

func TestAdminBookings_SameStatusIsNoop(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    be.reply("GET /bookings", http.StatusOK, "ok", []interface{}{bookingJSON(7, "BBB222", "BOOKED")})
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "admin@hotel.test")
    b.get("/admin/bookings")

    rec := b.post("/admin/bookings/7/status", url.Values{"status": {"BOOKED"}})
    require.Equal(t, http.StatusSeeOther, rec.Code)

    rec = b.get("/admin/bookings")
    assert.NotContains(t, rec.Body.String(), `id="confirm"`)
    assert.Zero(t, be.count(http.MethodPut, "/bookings/7"))
}

func TestLogout_ClearsSessionAndNavigation(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    withRoom(be)
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "guest@hotel.test")

    rec := b.get("/")
    require.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), `href="/profile"`)
    b.get("/bookings/confirmation") // touches the workspace
    assert.Equal(t, 1, s.spaces.Len())

    rec = b.post("/logout", url.Values{})
    require.Equal(t, http.StatusSeeOther, rec.Code)
    assert.Zero(t, s.spaces.Len())

    rec = b.get("/")
    assert.NotContains(t, rec.Body.String(), `href="/profile"`)
    assert.Contains(t, rec.Body.String(), "You have been logged out")

    rec = b.get("/profile")
    assert.Equal(t, http.StatusSeeOther, rec.Code)
}

func TestUpdateRoom_PhotoPartOnlyWhenChosen(t *testing.T) {
    be := newBackend(t)
    withAccounts(be)
    be.reply("PUT /rooms/3", http.StatusOK, "ok", map[string]interface{}{"id": 3, "hotelId": 1, "name": "Deluxe"})
    s := newSite(t, be)
    b := s.browser()
    b.login(t, "admin@hotel.test")

    post := func(photo string) *httptest.ResponseRecorder {
        body := &strings.Builder{}
        w := multipart.NewWriter(body)
        for k, v := range map[string]string{
            "hotelId": "1", "name": "Deluxe", "type": "DOUBLE",
            "price": "500000", "capacity": "2", "amount": "5",
        } {
            require.NoError(t, w.WriteField(k, v))
        }
        if photo != "" {
            fw, err := w.CreateFormFile("photo", photo)
            require.NoError(t, err)
            _, _ = fw.Write([]byte("jpeg-bytes"))
        }
        require.NoError(t, w.Close())
        req := httptest.NewRequest(http.MethodPost, "/admin/rooms/3", strings.NewReader(body.String()))
        req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
        return b.send(req)
    }

    sentParts := func() (fields map[string][]string, files map[string]int) {
        sent, ok := be.last(http.MethodPut, "/rooms/3")
        require.True(t, ok)
        req := httptest.NewRequest(http.MethodPut, "/", strings.NewReader(string(sent.Body)))
        req.Header.Set("Content-Type", sent.ContentType)
        require.NoError(t, req.ParseMultipartForm(1<<20))
        files = map[string]int{}
        for k, v := range req.MultipartForm.File {
            files[k] = len(v)
        }
        return req.MultipartForm.Value, files
    }

    rec := post("")
    require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
    assert.Equal(t, "/admin/rooms?hotelId=1", rec.Header().Get(echo.HeaderLocation))
    fields, files := sentParts()
    assert.Equal(t, []string{"Deluxe"}, fields["name"])
    assert.Equal(t, []string{"DOUBLE"}, fields["type"])
    assert.NotContains(t, files, "photo")

    rec = post("room.jpg")
    require.Equal(t, http.StatusSeeOther, rec.Code, rec.Body.String())
    _, files = sentParts()
    assert.Equal(t, 1, files["photo"])
}

func TestFindBooking_NotFoundIsNotAnError(t *testing.T) {
    be := newBackend(t)
    be.reply("GET /bookings/reference/ZZZ999", http.StatusNotFound, "Booking not found", nil)
    be.reply("GET /bookings/reference/AAA111", http.StatusOK, "ok", bookingJSON(5, "AAA111", "BOOKED"))
    s := newSite(t, be)
    b := s.browser()

    rec := b.get("/bookings/find?code=ZZZ999")
    assert.Equal(t, http.StatusOK, rec.Code)

    rec = b.get("/bookings/find?code=AAA111")
    assert.Equal(t, http.StatusOK, rec.Code)
    assert.Contains(t, rec.Body.String(), "AAA111")
}

func TestUnknownRoute_RendersErrorPage(t *testing.T) {
    s := newSite(t, newBackend(t))

    rec := s.browser().get("/no/such/page")

    assert.Equal(t, http.StatusNotFound, rec.Code)
    assert.Contains(t, rec.Body.String(), "Page not found")
}

func TestHealth(t *testing.T) {
    s := newSite(t, newBackend(t))

    rec := s.browser().get("/healthz")

    assert.Equal(t, http.StatusOK, rec.Code)
}
