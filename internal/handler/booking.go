package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/booking"
    "github.com/iliyamo/hotel-booking-web/internal/middleware"
    "github.com/iliyamo/hotel-booking-web/internal/queue"
)

// Book submits the booking form of a room. The room and hotel are read with
// the session's token, which skips the read cache, so capacity and
// availability rules use current values; validation failures and backend
// errors re-render the form with the entered values.
func (h *Handler) Book(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    data, err := h.loadRoom(c, h.client(c), id)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.render(c, statusFor(err), "error", h.page(c, "Rooms", errorData{Status: statusFor(err), Message: apperror.Message(err)}), nil)
    }
    var form booking.Form
    if err := c.Bind(&form); err != nil {
        data.Form = booking.DefaultForm()
        return h.render(c, http.StatusBadRequest, "room", h.page(c, data.Room.Name, data), bindError(err))
    }
    data.Form = form

    ws := h.spaces.Get(middleware.SessionID(c))
    wf := booking.NewWorkflow(h.client(c), ws.Guard, booking.WithClock(h.now))
    conf, err := wf.Submit(c.Request().Context(), data.Room, data.Hotel, form)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.render(c, statusFor(err), "room", h.page(c, data.Room.Name, data), err)
    }

    ws.SetConfirmation(conf)
    h.publish(c, "booking.created", func(ctx context.Context, p queue.Publisher) error {
        return p.PublishBookingCreated(ctx, queue.BookingCreatedEvent{
            BookingID:     conf.BookingID,
            ReferenceCode: conf.ReferenceCode,
            HotelID:       conf.HotelID,
            HotelName:     conf.HotelName,
            RoomID:        conf.RoomID,
            RoomName:      conf.RoomName,
            CheckIn:       conf.CheckIn.String(),
            CheckOut:      conf.CheckOut.String(),
            Nights:        conf.Nights,
            RoomQuantity:  conf.RoomQuantity,
            TotalPrice:    conf.TotalPrice,
            CreatedAt:     conf.BookedAt.UTC().Format(time.RFC3339),
        })
    })
    return c.Redirect(http.StatusSeeOther, "/bookings/confirmation")
}

// Confirmation shows the display record of the session's last booking.
func (h *Handler) Confirmation(c echo.Context) error {
    conf, ok := h.spaces.Get(middleware.SessionID(c)).Confirmation()
    if !ok {
        return c.Redirect(http.StatusSeeOther, "/profile")
    }
    return h.render(c, http.StatusOK, "booking_result", h.page(c, "Your booking is confirmed", conf), nil)
}
