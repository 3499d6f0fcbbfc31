package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-web/internal/handler"
)

// RegisterCustomer registers the pages of any logged-in user: booking a
// room, the confirmation of the last booking and the profile with the
// user's own bookings. Anonymous visitors are redirected to the login page.
// The middleware is attached per route; a root group would also capture
// unknown paths.
func RegisterCustomer(e *echo.Echo, h *handler.Handler) {
	auth := loggedIn()
	e.POST("/rooms/:id/book", h.Book, auth)
	e.GET("/bookings/confirmation", h.Confirmation, auth)
	e.GET("/profile", h.Profile, auth)
	e.POST("/profile", h.UpdateProfile, auth)
}
