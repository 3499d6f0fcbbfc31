package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// AmenityInput is the payload for amenity create and update.
type AmenityInput struct {
	Name        string            `json:"name"`
	Type        model.AmenityType `json:"type"`
	Description string            `json:"description,omitempty"`
}

// ListAmenities returns amenities of level t, or all of them when t is empty.
func (c *Client) ListAmenities(ctx context.Context, t model.AmenityType) ([]model.Amenity, error) {
	var q url.Values
	if t != "" {
		q = url.Values{"type": {string(t)}}
	}
	var out []model.Amenity
	err := c.getJSON(ctx, "/amenities", q, &out)
	return out, err
}

// CreateAmenity adds an amenity. Admin only.
func (c *Client) CreateAmenity(ctx context.Context, in AmenityInput) (model.Amenity, error) {
	var a model.Amenity
	err := c.sendJSON(ctx, http.MethodPost, "/amenities", in, &a)
	return a, err
}

// UpdateAmenity replaces an amenity. Admin only.
func (c *Client) UpdateAmenity(ctx context.Context, id int64, in AmenityInput) (model.Amenity, error) {
	var a model.Amenity
	err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/amenities/%d", id), in, &a)
	return a, err
}

// DeleteAmenity removes an amenity. Admin only.
func (c *Client) DeleteAmenity(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/amenities/%d", id), nil, nil)
}
