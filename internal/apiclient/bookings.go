package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/iliyamo/hotel-booking-web/internal/apperror"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// CreateBookingRequest is the payload of the create-booking call.
type CreateBookingRequest struct {
	RoomID         int64      `json:"roomId"`
	HotelID        int64      `json:"hotelId"`
	CheckIn        model.Date `json:"checkInDate"`
	CheckOut       model.Date `json:"checkOutDate"`
	Adults         int        `json:"adults"`
	Children       int        `json:"children"`
	RoomQuantity   int        `json:"roomQuantity"`
	SpecialRequest string     `json:"specialRequest"`
}

// CreateBookingResult is what the backend returns for a new booking.
type CreateBookingResult struct {
	ID            int64  `json:"id"`
	ReferenceCode string `json:"referenceCode"`
}

// StatusUpdate is the payload of every status transition. Unused fields
// travel as empty strings.
type StatusUpdate struct {
	Status             model.BookingStatus `json:"status"`
	CancellationReason string              `json:"cancellationReason"`
	RoomNumber         string              `json:"roomNumber"`
}

// CreateBooking submits a booking and returns the server-issued reference.
func (c *Client) CreateBooking(ctx context.Context, req CreateBookingRequest) (CreateBookingResult, error) {
	var out CreateBookingResult
	err := c.sendJSON(ctx, http.MethodPost, "/bookings", req, &out)
	return out, err
}

// ListBookings returns every booking. Admin only.
func (c *Client) ListBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	err := c.getJSON(ctx, "/bookings", nil, &out)
	return out, err
}

// GetBookingByReference looks a booking up by confirmation code. A missing
// booking is reported as found == false with a nil error.
func (c *Client) GetBookingByReference(ctx context.Context, code string) (b model.Booking, found bool, err error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return b, false, nil
	}
	err = c.getJSON(ctx, "/bookings/reference/"+url.PathEscape(code), nil, &b)
	if apperror.Is(err, apperror.TypeNotFound) {
		return model.Booking{}, false, nil
	}
	if err != nil {
		return model.Booking{}, false, err
	}
	// Some deployments answer 200 with an empty data field.
	if b.ID == 0 && b.ReferenceCode == "" {
		return model.Booking{}, false, nil
	}
	return b, true, nil
}

// UpdateBooking applies a status transition and returns the stored record.
func (c *Client) UpdateBooking(ctx context.Context, id int64, upd StatusUpdate) (model.Booking, error) {
	var b model.Booking
	err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/bookings/%d", id), upd, &b)
	return b, err
}
