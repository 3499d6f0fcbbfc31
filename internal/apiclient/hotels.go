package apiclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// HotelInput is the payload for hotel create and update.
type HotelInput struct {
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	StarRating  int     `json:"starRating"`
	Phone       string  `json:"contactPhone"`
	Email       string  `json:"contactEmail"`
	Active      bool    `json:"active"`
	AmenityIDs  []int64 `json:"amenityIds"`
}

// ListHotels returns every hotel.
func (c *Client) ListHotels(ctx context.Context) ([]model.Hotel, error) {
	var out []model.Hotel
	err := c.getJSON(ctx, "/hotels", nil, &out)
	return out, err
}

// SearchHotels matches hotels by name or location. An empty keyword lists all.
func (c *Client) SearchHotels(ctx context.Context, keyword string) ([]model.Hotel, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return c.ListHotels(ctx)
	}
	var out []model.Hotel
	err := c.getJSON(ctx, "/hotels/search", url.Values{"keyword": {keyword}}, &out)
	return out, err
}

// GetHotel returns one hotel.
func (c *Client) GetHotel(ctx context.Context, id int64) (model.Hotel, error) {
	var h model.Hotel
	err := c.getJSON(ctx, fmt.Sprintf("/hotels/%d", id), nil, &h)
	return h, err
}

// CreateHotel adds a hotel. Admin only.
func (c *Client) CreateHotel(ctx context.Context, in HotelInput) (model.Hotel, error) {
	var h model.Hotel
	err := c.sendJSON(ctx, http.MethodPost, "/hotels", in, &h)
	return h, err
}

// UpdateHotel replaces a hotel's editable fields. Admin only.
func (c *Client) UpdateHotel(ctx context.Context, id int64, in HotelInput) (model.Hotel, error) {
	var h model.Hotel
	err := c.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/hotels/%d", id), in, &h)
	return h, err
}

// DeleteHotel removes a hotel. Admin only.
func (c *Client) DeleteHotel(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/hotels/%d", id), nil, nil)
}
