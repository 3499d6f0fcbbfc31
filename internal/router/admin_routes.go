package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-booking-web/internal/handler"
	"github.com/iliyamo/hotel-booking-web/internal/middleware"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// RegisterAdmin registers the admin console under /admin. Every route
// requires the ADMIN role.
func RegisterAdmin(e *echo.Echo, h *handler.Handler) {
	g := e.Group("/admin", middleware.RequireRole(string(model.RoleAdmin)))

	// Booking console: browse, search by confirmation code and move
	// bookings through their lifecycle with a select/confirm pair.
	g.GET("/bookings", h.AdminBookings)
	g.POST("/bookings/reload", h.ReloadBookings)
	g.POST("/bookings/search", h.SearchBookings)
	g.POST("/bookings/clear", h.ClearBookingSearch)
	g.POST("/bookings/:id/status", h.SelectStatus)
	g.POST("/bookings/confirm", h.ConfirmStatus)
	g.POST("/bookings/dismiss", h.DismissStatus)
	g.GET("/bookings/:id/reason", h.BookingReason)

	// Hotels.
	g.GET("/hotels", h.AdminHotels)
	g.POST("/hotels", h.CreateHotel)
	g.GET("/hotels/:id/edit", h.EditHotel)
	g.POST("/hotels/:id", h.UpdateHotel)
	g.POST("/hotels/:id/delete", h.DeleteHotel)

	// Rooms; create and update are multipart because of the photo.
	g.GET("/rooms", h.AdminRooms)
	g.GET("/rooms/new", h.NewRoom)
	g.POST("/rooms", h.CreateRoom)
	g.GET("/rooms/:id/edit", h.EditRoom)
	g.POST("/rooms/:id", h.UpdateRoom)
	g.POST("/rooms/:id/delete", h.DeleteRoom)

	// Amenities, one level at a time.
	g.GET("/amenities", h.AdminAmenities)
	g.POST("/amenities", h.CreateAmenity)
	g.POST("/amenities/:id", h.UpdateAmenity)
	g.POST("/amenities/:id/delete", h.DeleteAmenity)

	// Accounts.
	g.GET("/accounts", h.AdminAccounts)
	g.POST("/accounts/:id/lock", h.LockAccount)
	g.POST("/accounts/:id/unlock", h.UnlockAccount)
}
