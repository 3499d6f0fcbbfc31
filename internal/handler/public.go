package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/apiclient"
    "github.com/iliyamo/hotel-booking-web/internal/apperror"
    "github.com/iliyamo/hotel-booking-web/internal/booking"
    "github.com/iliyamo/hotel-booking-web/internal/middleware"
    "github.com/iliyamo/hotel-booking-web/internal/model"
)

type homeData struct {
    Keyword string
    Hotels  []model.Hotel
}

type hotelData struct {
    Hotel     model.Hotel
    Rooms     []model.Room
    Amenities []model.Amenity
}

type roomData struct {
    Room      model.Room
    Hotel     model.Hotel
    Amenities []model.Amenity
    Form      booking.Form
    Busy      bool
}

type findData struct {
    Code     string
    Booking  *model.Booking
    NotFound bool
}

// Home lists hotels, or the hotels matching ?q=.
func (h *Handler) Home(c echo.Context) error {
    ctx := c.Request().Context()
    data := homeData{Keyword: strings.TrimSpace(c.QueryParam("q"))}

    var err error
    if data.Keyword != "" {
        data.Hotels, err = h.api.SearchHotels(ctx, data.Keyword)
    } else {
        data.Hotels, err = h.api.ListHotels(ctx)
    }
    status := http.StatusOK
    if err != nil {
        status = statusFor(err)
    }
    return h.render(c, status, "home", h.page(c, "Hotels", data), err)
}

// Hotel shows one hotel with its rooms and hotel-level amenities.
func (h *Handler) Hotel(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    ctx := c.Request().Context()

    hotel, err := h.api.GetHotel(ctx, id)
    if err != nil {
        return h.render(c, statusFor(err), "error", h.page(c, "Hotels", errorData{Status: statusFor(err), Message: apperror.Message(err)}), nil)
    }
    data := hotelData{Hotel: hotel}
    if data.Rooms, err = h.api.ListHotelRooms(ctx, id); err != nil {
        return h.render(c, statusFor(err), "hotel", h.page(c, hotel.Name, data), err)
    }
    all, err := h.api.ListAmenities(ctx, model.AmenityHotel)
    if err != nil {
        return h.render(c, statusFor(err), "hotel", h.page(c, hotel.Name, data), err)
    }
    data.Amenities = pick(model.FilterAmenities(all, model.AmenityHotel), hotel.AmenityIDs)
    return h.render(c, http.StatusOK, "hotel", h.page(c, hotel.Name, data), nil)
}

// Room shows one room and its booking form.
func (h *Handler) Room(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    data, err := h.loadRoom(c, h.api, id)
    if err != nil {
        return h.render(c, statusFor(err), "error", h.page(c, "Rooms", errorData{Status: statusFor(err), Message: apperror.Message(err)}), nil)
    }
    data.Form = booking.DefaultForm()
    return h.render(c, http.StatusOK, "room", h.page(c, data.Room.Name, data), nil)
}

// loadRoom reads the room, its hotel and its room-level amenities through
// api. The public client may answer from the read cache; a token-bearing
// client always reaches the backend. An amenity failure only leaves the
// list empty.
func (h *Handler) loadRoom(c echo.Context, api *apiclient.Client, id int64) (roomData, error) {
    ctx := c.Request().Context()
    room, err := api.GetRoom(ctx, id)
    if err != nil {
        return roomData{}, err
    }
    hotel, err := api.GetHotel(ctx, room.HotelID)
    if err != nil {
        return roomData{}, err
    }
    data := roomData{Room: room, Hotel: hotel}
    if all, err := api.ListAmenities(ctx, model.AmenityRoom); err == nil {
        data.Amenities = pick(model.FilterAmenities(all, model.AmenityRoom), room.AmenityIDs)
    }
    if st := middleware.State(c); st.LoggedIn() {
        data.Busy = h.spaces.Get(middleware.SessionID(c)).Guard.Busy()
    }
    return data, nil
}

// FindBooking looks a booking up by confirmation code. No match is shown
// as a not-found state, not as an error.
func (h *Handler) FindBooking(c echo.Context) error {
    data := findData{Code: strings.TrimSpace(c.QueryParam("code"))}
    if data.Code == "" {
        return h.render(c, http.StatusOK, "find_booking", h.page(c, "Find my booking", data), nil)
    }
    b, found, err := h.client(c).GetBookingByReference(c.Request().Context(), data.Code)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.render(c, statusFor(err), "find_booking", h.page(c, "Find my booking", data), err)
    }
    if found {
        data.Booking = &b
    } else {
        data.NotFound = true
    }
    return h.render(c, http.StatusOK, "find_booking", h.page(c, "Find my booking", data), nil)
}

// pick keeps the amenities whose id is in ids, in list order.
func pick(list []model.Amenity, ids []int64) []model.Amenity {
    want := make(map[int64]bool, len(ids))
    for _, id := range ids {
        want[id] = true
    }
    out := make([]model.Amenity, 0, len(ids))
    for _, a := range list {
        if want[a.ID] {
            out = append(out, a)
        }
    }
    return out
}
