package handler

import (
    "context"
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/adminbooking"
    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/middleware"
    "github.com/iliyamo/hotel-booking-web/internal/model"
    "github.com/iliyamo/hotel-booking-web/internal/queue"
)

const bookingsPath = "/admin/bookings"

type adminBookingsData struct {
    View   adminbooking.View
    Reason *model.Booking
}

func (h *Handler) console(c echo.Context) *adminbooking.Console {
    return h.spaces.Get(middleware.SessionID(c)).Console
}

// consoleFailed handles a failed console call: a rejected token ends the
// session, anything else becomes the banner of the bookings page.
func (h *Handler) consoleFailed(c echo.Context, err error) error {
    if h.sessionLost(c, err) {
        return toLogin(c)
    }
    return redirectErr(c, bookingsPath, err)
}

// AdminBookings shows the console. The full list is fetched once per
// session; Reload fetches it again.
func (h *Handler) AdminBookings(c echo.Context) error {
    con := h.console(c)
    err := con.EnsureLoaded(c.Request().Context(), h.client(c))
    if err != nil && h.sessionLost(c, err) {
        return toLogin(c)
    }
    status := http.StatusOK
    if err != nil {
        status = statusFor(err)
    }
    return h.render(c, status, "admin_bookings", h.page(c, "Bookings", adminBookingsData{View: con.Snapshot()}), err)
}

// ReloadBookings fetches the full list again and drops any search.
func (h *Handler) ReloadBookings(c echo.Context) error {
    if err := h.console(c).Load(c.Request().Context(), h.client(c)); err != nil {
        return h.consoleFailed(c, err)
    }
    return c.Redirect(http.StatusSeeOther, bookingsPath)
}

// SearchBookings looks a booking up by confirmation code.
func (h *Handler) SearchBookings(c echo.Context) error {
    con := h.console(c)
    ctx := c.Request().Context()
    if err := con.EnsureLoaded(ctx, h.client(c)); err != nil {
        return h.consoleFailed(c, err)
    }
    if err := con.Search(ctx, h.client(c), c.FormValue("code")); err != nil {
        return h.consoleFailed(c, err)
    }
    return c.Redirect(http.StatusSeeOther, bookingsPath)
}

// ClearBookingSearch restores the full list without calling the backend.
func (h *Handler) ClearBookingSearch(c echo.Context) error {
    h.console(c).ClearSearch()
    return c.Redirect(http.StatusSeeOther, bookingsPath)
}

// SelectStatus is the first phase of a transition: it records the chosen
// target status for the confirm step. Choosing the current status does
// nothing.
func (h *Handler) SelectStatus(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    to, ok := model.ParseBookingStatus(c.FormValue("status"))
    if !ok {
        return redirectErr(c, bookingsPath, apperror.Validation("status", adminbooking.MsgUnknownStatus))
    }
    if _, _, err := h.console(c).Select(id, to); err != nil {
        return redirectErr(c, bookingsPath, err)
    }
    return c.Redirect(http.StatusSeeOther, bookingsPath+"#confirm")
}

// ConfirmStatus is the second phase: it validates the collected reason or
// room number and submits the transition.
func (h *Handler) ConfirmStatus(c echo.Context) error {
    con := h.console(c)
    pending := con.Snapshot().Pending
    in := adminbooking.ConfirmInput{
        CancellationReason: c.FormValue("cancellationReason"),
        RoomNumber:         c.FormValue("roomNumber"),
    }
    updated, err := con.Confirm(c.Request().Context(), h.client(c), in)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, bookingsPath+"#confirm", err)
    }

    if pending != nil {
        h.publish(c, "booking.status_changed", func(ctx context.Context, p queue.Publisher) error {
            return p.PublishStatusChanged(ctx, queue.BookingStatusChangedEvent{
                BookingID:          updated.ID,
                ReferenceCode:      pending.ReferenceCode,
                From:               string(pending.From),
                To:                 string(pending.To),
                CancellationReason: updated.CancellationReason,
                RoomNumber:         updated.RoomNumber,
                ChangedAt:          h.now().UTC().Format(time.RFC3339),
            })
        })
    }
    return redirect(c, bookingsPath, "notice", "Booking status updated")
}

// DismissStatus abandons the pending transition.
func (h *Handler) DismissStatus(c echo.Context) error {
    h.console(c).Dismiss()
    return c.Redirect(http.StatusSeeOther, bookingsPath)
}

// BookingReason shows the stored cancellation reason of a booking.
func (h *Handler) BookingReason(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    con := h.console(c)
    if _, ok := con.Reason(id); !ok {
        return redirect(c, bookingsPath, "error", "No cancellation reason recorded")
    }
    b, _ := con.Booking(id)
    return h.render(c, http.StatusOK, "admin_bookings", h.page(c, "Bookings", adminBookingsData{View: con.Snapshot(), Reason: &b}), nil)
}
