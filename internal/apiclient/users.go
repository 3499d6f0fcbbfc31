package apiclient

import (
	"context"
	"fmt"
	"net/http"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FullName    string     `json:"fullName"`
	Phone       string     `json:"phone"`
	DateOfBirth model.Date `json:"dateOfBirth"`
}

// Profile returns the account behind the bearer token.
func (c *Client) Profile(ctx context.Context) (model.User, error) {
	var u model.User
	err := c.getJSON(ctx, "/users/profile", nil, &u)
	return u, err
}

// UpdateProfile saves the editable profile fields and returns the stored account.
func (c *Client) UpdateProfile(ctx context.Context, upd ProfileUpdate) (model.User, error) {
	var u model.User
	err := c.sendJSON(ctx, http.MethodPut, "/users/profile", upd, &u)
	return u, err
}

// MyBookings lists the bookings of the account behind the bearer token.
func (c *Client) MyBookings(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	err := c.getJSON(ctx, "/users/profile/bookings", nil, &out)
	return out, err
}

// ListUsers returns every account. Admin only.
func (c *Client) ListUsers(ctx context.Context) ([]model.User, error) {
	var out []model.User
	err := c.getJSON(ctx, "/users", nil, &out)
	return out, err
}

// LockUser prevents an account from logging in. Admin only.
func (c *Client) LockUser(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/lock", id), nil, &u)
	return u, err
}

// UnlockUser lifts a lock. Admin only.
func (c *Client) UnlockUser(ctx context.Context, id int64) (model.User, error) {
	var u model.User
	err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d/unlock", id), nil, &u)
	return u, err
}
