package handler

import (
    "errors"
    "fmt"
    "net/http"
    "strconv"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/hotel-booking-web/internal/apiclient"
    "github.com/iliyamo/hotel-booking-web/internal/model"
)

// ----- hotels -----

type adminHotelsData struct {
    Hotels    []model.Hotel
    Amenities []model.Amenity
    Edit      model.Hotel
}

type hotelForm struct {
    Name        string  `form:"name" validate:"required"`
    Location    string  `form:"location" validate:"required"`
    Description string  `form:"description"`
    StarRating  int     `form:"starRating" validate:"gte=0,lte=5"`
    Phone       string  `form:"contactPhone"`
    Email       string  `form:"contactEmail" validate:"omitempty,email"`
    Active      bool    `form:"active"`
    AmenityIDs  []int64 `form:"amenityIds"`
}

func (f hotelForm) input() apiclient.HotelInput {
    return apiclient.HotelInput{
        Name:        strings.TrimSpace(f.Name),
        Location:    strings.TrimSpace(f.Location),
        Description: strings.TrimSpace(f.Description),
        StarRating:  f.StarRating,
        Phone:       strings.TrimSpace(f.Phone),
        Email:       strings.TrimSpace(f.Email),
        Active:      f.Active,
        AmenityIDs:  f.AmenityIDs,
    }
}

// AdminHotels lists hotels with the create form.
func (h *Handler) AdminHotels(c echo.Context) error {
    return h.hotelsPage(c, model.Hotel{Active: true})
}

// EditHotel lists hotels with the edit form of one hotel.
func (h *Handler) EditHotel(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    hotel, err := h.client(c).GetHotel(c.Request().Context(), id)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/admin/hotels", err)
    }
    return h.hotelsPage(c, hotel)
}

func (h *Handler) hotelsPage(c echo.Context, edit model.Hotel) error {
    ctx := c.Request().Context()
    api := h.client(c)
    data := adminHotelsData{Edit: edit}

    hotels, err := api.ListHotels(ctx)
    if err == nil {
        data.Hotels = hotels
        var all []model.Amenity
        if all, err = api.ListAmenities(ctx, model.AmenityHotel); err == nil {
            data.Amenities = model.FilterAmenities(all, model.AmenityHotel)
        }
    }
    if err != nil && h.sessionLost(c, err) {
        return toLogin(c)
    }
    status := http.StatusOK
    if err != nil {
        status = statusFor(err)
    }
    return h.render(c, status, "admin_hotels", h.page(c, "Hotels", data), err)
}

// CreateHotel adds a hotel.
func (h *Handler) CreateHotel(c echo.Context) error {
    var f hotelForm
    if err := c.Bind(&f); err != nil {
        return redirectErr(c, "/admin/hotels", bindError(err))
    }
    if err := validateForm(f); err != nil {
        return redirectErr(c, "/admin/hotels", err)
    }
    if _, err := h.client(c).CreateHotel(c.Request().Context(), f.input()); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/admin/hotels", err)
    }
    return redirect(c, "/admin/hotels", "notice", "Hotel saved")
}

// UpdateHotel saves the edit form of a hotel.
func (h *Handler) UpdateHotel(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    back := fmt.Sprintf("/admin/hotels/%d/edit", id)
    var f hotelForm
    if err := c.Bind(&f); err != nil {
        return redirectErr(c, back, bindError(err))
    }
    if err := validateForm(f); err != nil {
        return redirectErr(c, back, err)
    }
    if _, err := h.client(c).UpdateHotel(c.Request().Context(), id, f.input()); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, back, err)
    }
    return redirect(c, "/admin/hotels", "notice", "Hotel saved")
}

// DeleteHotel removes a hotel.
func (h *Handler) DeleteHotel(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    if err := h.client(c).DeleteHotel(c.Request().Context(), id); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/admin/hotels", err)
    }
    return redirect(c, "/admin/hotels", "notice", "Hotel deleted")
}

// ----- rooms -----

type adminRoomsData struct {
    Rooms   []model.Room
    Hotels  []model.Hotel
    HotelID int64
}

type roomFormData struct {
    Room      model.Room
    Hotels    []model.Hotel
    Amenities []model.Amenity
}

type roomForm struct {
    HotelID     int64   `form:"hotelId" validate:"gte=1"`
    Name        string  `form:"name" validate:"required"`
    Type        string  `form:"type" validate:"required,oneof=SINGLE DOUBLE SUIT TRIPLE"`
    Price       int64   `form:"price" validate:"gte=0"`
    Capacity    int     `form:"capacity" validate:"gte=1"`
    Amount      int     `form:"amount" validate:"gte=0"`
    Description string  `form:"description"`
    AmenityIDs  []int64 `form:"amenityIds"`
}

func (f roomForm) fields() apiclient.RoomFields {
    t, _ := model.ParseRoomType(f.Type)
    return apiclient.RoomFields{
        HotelID:     f.HotelID,
        Name:        strings.TrimSpace(f.Name),
        Type:        t,
        Price:       f.Price,
        Capacity:    f.Capacity,
        Amount:      f.Amount,
        Description: strings.TrimSpace(f.Description),
        AmenityIDs:  f.AmenityIDs,
    }
}

// room returns the form values as a room for re-display.
func (f roomForm) room(id int64) model.Room {
    rf := f.fields()
    return model.Room{
        ID: id, HotelID: rf.HotelID, Name: rf.Name, Type: rf.Type, Price: rf.Price,
        Capacity: rf.Capacity, Amount: rf.Amount, Description: rf.Description, AmenityIDs: rf.AmenityIDs,
    }
}

// AdminRooms lists rooms, optionally of one hotel (?hotelId=).
func (h *Handler) AdminRooms(c echo.Context) error {
    ctx := c.Request().Context()
    api := h.client(c)
    data := adminRoomsData{}
    if v := c.QueryParam("hotelId"); v != "" {
        data.HotelID, _ = strconv.ParseInt(v, 10, 64)
    }

    hotels, err := api.ListHotels(ctx)
    if err == nil {
        data.Hotels = hotels
        if data.HotelID > 0 {
            data.Rooms, err = api.ListHotelRooms(ctx, data.HotelID)
        } else {
            data.Rooms, err = api.ListRooms(ctx)
        }
    }
    if err != nil && h.sessionLost(c, err) {
        return toLogin(c)
    }
    status := http.StatusOK
    if err != nil {
        status = statusFor(err)
    }
    return h.render(c, status, "admin_rooms", h.page(c, "Rooms", data), err)
}

// NewRoom shows the empty room form.
func (h *Handler) NewRoom(c echo.Context) error {
    room := model.Room{Type: model.RoomSingle, Capacity: 1, Amount: 1}
    if v, err := strconv.ParseInt(c.QueryParam("hotelId"), 10, 64); err == nil {
        room.HotelID = v
    }
    return h.roomForm(c, http.StatusOK, room, nil)
}

// EditRoom shows the form of an existing room.
func (h *Handler) EditRoom(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    room, err := h.client(c).GetRoom(c.Request().Context(), id)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/admin/rooms", err)
    }
    return h.roomForm(c, http.StatusOK, room, nil)
}

// roomForm renders the room form with the hotel list and the room-level
// amenities only.
func (h *Handler) roomForm(c echo.Context, status int, room model.Room, formErr error) error {
    ctx := c.Request().Context()
    api := h.client(c)
    data := roomFormData{Room: room}

    hotels, err := api.ListHotels(ctx)
    if err == nil {
        data.Hotels = hotels
        var all []model.Amenity
        if all, err = api.ListAmenities(ctx, model.AmenityRoom); err == nil {
            data.Amenities = model.FilterAmenities(all, model.AmenityRoom)
        }
    }
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        if formErr == nil {
            formErr, status = err, statusFor(err)
        }
    }
    title := "New room"
    if room.ID != 0 {
        title = room.Name
    }
    return h.render(c, status, "admin_room_form", h.page(c, title, data), formErr)
}

// CreateRoom submits the multipart room form.
func (h *Handler) CreateRoom(c echo.Context) error {
    return h.saveRoom(c, 0)
}

// UpdateRoom submits the room form of an existing room. Without a new
// photo the request has no photo part and the current image stays.
func (h *Handler) UpdateRoom(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    return h.saveRoom(c, id)
}

func (h *Handler) saveRoom(c echo.Context, id int64) error {
    var f roomForm
    if err := c.Bind(&f); err != nil {
        return h.roomForm(c, http.StatusBadRequest, f.room(id), bindError(err))
    }
    if err := validateForm(f); err != nil {
        return h.roomForm(c, statusFor(err), f.room(id), err)
    }

    req := apiclient.NewRoomRequest(f.fields())
    fh, err := c.FormFile("photo")
    switch {
    case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
    case err != nil:
        return h.roomForm(c, http.StatusBadRequest, f.room(id), bindError(err))
    case fh.Size > 0 && fh.Filename != "":
        file, err := fh.Open()
        if err != nil {
            return h.roomForm(c, http.StatusBadRequest, f.room(id), bindError(err))
        }
        defer file.Close()
        req.WithPhoto(fh.Filename, file)
    }

    ctx := c.Request().Context()
    if id == 0 {
        _, err = h.client(c).CreateRoom(ctx, req)
    } else {
        _, err = h.client(c).UpdateRoom(ctx, id, req)
    }
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.roomForm(c, statusFor(err), f.room(id), err)
    }
    return redirect(c, fmt.Sprintf("/admin/rooms?hotelId=%d", f.HotelID), "notice", "Room saved")
}

// DeleteRoom removes a room.
func (h *Handler) DeleteRoom(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    if err := h.client(c).DeleteRoom(c.Request().Context(), id); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, "/admin/rooms", err)
    }
    return redirect(c, "/admin/rooms", "notice", "Room deleted")
}

// ----- amenities -----

type adminAmenitiesData struct {
    Type      model.AmenityType
    Amenities []model.Amenity
}

type amenityForm struct {
    Name        string `form:"name" validate:"required"`
    Type        string `form:"type" validate:"required,oneof=HOTEL ROOM"`
    Description string `form:"description"`
}

func (f amenityForm) input() apiclient.AmenityInput {
    t, _ := model.ParseAmenityType(f.Type)
    return apiclient.AmenityInput{Name: strings.TrimSpace(f.Name), Type: t, Description: strings.TrimSpace(f.Description)}
}

func amenitiesPath(t string) string {
    if at, ok := model.ParseAmenityType(t); ok {
        return "/admin/amenities?type=" + string(at)
    }
    return "/admin/amenities"
}

// AdminAmenities lists the amenities of one level (?type=HOTEL|ROOM,
// HOTEL by default).
func (h *Handler) AdminAmenities(c echo.Context) error {
    t, ok := model.ParseAmenityType(c.QueryParam("type"))
    if !ok {
        t = model.AmenityHotel
    }
    data := adminAmenitiesData{Type: t}
    all, err := h.client(c).ListAmenities(c.Request().Context(), t)
    if err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return h.render(c, statusFor(err), "admin_amenities", h.page(c, "Amenities", data), err)
    }
    data.Amenities = model.FilterAmenities(all, t)
    return h.render(c, http.StatusOK, "admin_amenities", h.page(c, "Amenities", data), nil)
}

// CreateAmenity adds an amenity of the posted level.
func (h *Handler) CreateAmenity(c echo.Context) error {
    var f amenityForm
    if err := c.Bind(&f); err != nil {
        return redirectErr(c, "/admin/amenities", bindError(err))
    }
    back := amenitiesPath(f.Type)
    f.Type = strings.ToUpper(strings.TrimSpace(f.Type))
    if err := validateForm(f); err != nil {
        return redirectErr(c, back, err)
    }
    if _, err := h.client(c).CreateAmenity(c.Request().Context(), f.input()); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, back, err)
    }
    return redirect(c, back, "notice", "Amenity saved")
}

// UpdateAmenity saves one amenity.
func (h *Handler) UpdateAmenity(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    var f amenityForm
    if err := c.Bind(&f); err != nil {
        return redirectErr(c, "/admin/amenities", bindError(err))
    }
    back := amenitiesPath(f.Type)
    f.Type = strings.ToUpper(strings.TrimSpace(f.Type))
    if err := validateForm(f); err != nil {
        return redirectErr(c, back, err)
    }
    if _, err := h.client(c).UpdateAmenity(c.Request().Context(), id, f.input()); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, back, err)
    }
    return redirect(c, back, "notice", "Amenity saved")
}

// DeleteAmenity removes one amenity.
func (h *Handler) DeleteAmenity(c echo.Context) error {
    id, err := paramID(c)
    if err != nil {
        return err
    }
    back := amenitiesPath(c.FormValue("type"))
    if err := h.client(c).DeleteAmenity(c.Request().Context(), id); err != nil {
        if h.sessionLost(c, err) {
            return toLogin(c)
        }
        return redirectErr(c, back, err)
    }
    return redirect(c, back, "notice", "Amenity deleted")
}
