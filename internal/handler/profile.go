package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/apiclient"
    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/model"
)

type profileData struct {
    User     model.User
    Bookings []model.Booking
}

type profileForm struct {
    FullName    string `form:"fullName" validate:"required"`
    Phone       string `form:"phone"`
    DateOfBirth string `form:"dateOfBirth"`
}

// Profile shows the account and its bookings.
func (h *Handler) Profile(c echo.Context) error {
    ctx := c.Request().Context()
    api := h.client(c)

    user, err := api.Profile(ctx)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.render(c, statusFor(err), "profile", h.page(c, "Profile", profileData{}), err)
    }
    data := profileData{User: user}
    if data.Bookings, err = api.MyBookings(ctx); err != nil {
        return h.render(c, statusFor(err), "profile", h.page(c, "Profile", data), err)
    }
    return h.render(c, http.StatusOK, "profile", h.page(c, "Profile", data), nil)
}

// UpdateProfile saves the editable profile fields.
func (h *Handler) UpdateProfile(c echo.Context) error {
    var f profileForm
    if err := c.Bind(&f); err != nil {
        return redirectErr(c, "/profile", bindError(err))
    }
    f.FullName = strings.TrimSpace(f.FullName)
    if err := validateForm(f); err != nil {
        return redirectErr(c, "/profile", err)
    }
    upd := apiclient.ProfileUpdate{FullName: f.FullName, Phone: strings.TrimSpace(f.Phone)}
    if s := strings.TrimSpace(f.DateOfBirth); s != "" {
        dob, err := model.ParseDate(s)
        if err != nil {
            return redirectErr(c, "/profile", apperror.Validation("dateOfBirth", fieldMessages["DateOfBirth"]))
        }
        upd.DateOfBirth = dob
    }

    if _, err := h.client(c).UpdateProfile(c.Request().Context(), upd); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/profile", err)
    }
    return redirect(c, "/profile", "notice", "Profile updated")
}
