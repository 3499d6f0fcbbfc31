package router // package router defines how page routes are registered

import (
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-booking-web/internal/handler"    // page handlers
	"github.com/iliyamo/hotel-booking-web/internal/middleware" // session and role middleware
)

// RegisterRoutes registers the routes that need no session: the health
// probe and the language switch.
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	// Liveness probe for load balancers; it never calls the backend.
	e.GET("/healthz", handler.Health)
	// Language switch stores a cookie and goes back to the referring page.
	e.GET("/lang/:tag", h.SetLanguage)
}

// RegisterAuth registers login, registration and logout. These pages talk
// to the backend with the unauthenticated client.
func RegisterAuth(e *echo.Echo, h *handler.Handler) {
	e.GET("/login", h.LoginPage)
	e.POST("/login", h.Login)
	e.GET("/register", h.RegisterPage)
	e.POST("/register", h.Register)
	// Logout only clears this browser's session, so it needs no role.
	e.POST("/logout", h.Logout)
}

// RegisterPublic registers the browsing pages guests can see: hotel list
// and search, hotel and room details and the booking lookup by
// confirmation code.
func RegisterPublic(e *echo.Echo, h *handler.Handler) {
	e.GET("/", h.Home)
	e.GET("/hotels/:id", h.Hotel)
	e.GET("/rooms/:id", h.Room)
	e.GET("/bookings/find", h.FindBooking)
}

// RegisterAll wires every group in one call.
func RegisterAll(e *echo.Echo, h *handler.Handler) {
	RegisterRoutes(e, h)
	RegisterAuth(e, h)
	RegisterPublic(e, h)
	RegisterCustomer(e, h)
	RegisterAdmin(e, h)
	e.HTTPErrorHandler = h.HTTPError
}

// loggedIn is the middleware chain of every page that needs a session.
func loggedIn() echo.MiddlewareFunc {
	return middleware.RequireLogin()
}
