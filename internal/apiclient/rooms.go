package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// RoomFields are the scalar fields of a room create or update.
type RoomFields struct {
	HotelID     int64
	Name        string
	Type        model.RoomType
	Price       int64
	Capacity    int
	Amount      int
	Description string
	AmenityIDs  []int64
}

// RoomRequest builds the multipart body for room create and update. The
// photo part is written only when WithPhoto was called, so an update
// without a new file keeps the room's current image.
type RoomRequest struct {
	fields    RoomFields
	photoName string
	photo     io.Reader
}

// NewRoomRequest starts a request from the scalar fields.
func NewRoomRequest(f RoomFields) *RoomRequest {
	return &RoomRequest{fields: f}
}

// WithPhoto attaches a new image. A nil reader or empty name is ignored.
func (r *RoomRequest) WithPhoto(filename string, photo io.Reader) *RoomRequest {
	if photo == nil || strings.TrimSpace(filename) == "" {
		return r
	}
	r.photoName = filename
	r.photo = photo
	return r
}

// HasPhoto reports whether the request will carry a photo part.
func (r *RoomRequest) HasPhoto() bool {
	return r.photo != nil
}

// Encode writes the multipart body and returns it with its content type.
func (r *RoomRequest) Encode() (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	f := r.fields
	fields := [][2]string{
		{"hotelId", strconv.FormatInt(f.HotelID, 10)},
		{"name", f.Name},
		{"type", string(f.Type)},
		{"price", strconv.FormatInt(f.Price, 10)},
		{"capacity", strconv.Itoa(f.Capacity)},
		{"amount", strconv.Itoa(f.Amount)},
		{"description", f.Description},
	}
	for _, kv := range fields {
		if err := w.WriteField(kv[0], kv[1]); err != nil {
			return nil, "", err
		}
	}
	for _, id := range f.AmenityIDs {
		if err := w.WriteField("amenityIds", strconv.FormatInt(id, 10)); err != nil {
			return nil, "", err
		}
	}

	if r.photo != nil {
		part, err := w.CreateFormFile("photo", r.photoName)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, r.photo); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}

// ListRooms returns every room.
func (c *Client) ListRooms(ctx context.Context) ([]model.Room, error) {
	var out []model.Room
	err := c.getJSON(ctx, "/rooms", nil, &out)
	return out, err
}

// ListHotelRooms returns the rooms of one hotel.
func (c *Client) ListHotelRooms(ctx context.Context, hotelID int64) ([]model.Room, error) {
	var out []model.Room
	err := c.getJSON(ctx, "/rooms", url.Values{"hotelId": {strconv.FormatInt(hotelID, 10)}}, &out)
	return out, err
}

// GetRoom returns one room.
func (c *Client) GetRoom(ctx context.Context, id int64) (model.Room, error) {
	var r model.Room
	err := c.getJSON(ctx, fmt.Sprintf("/rooms/%d", id), nil, &r)
	return r, err
}

// CreateRoom adds a room. Admin only.
func (c *Client) CreateRoom(ctx context.Context, req *RoomRequest) (model.Room, error) {
	return c.sendRoom(ctx, http.MethodPost, "/rooms", req)
}

// UpdateRoom replaces a room's fields, and its image when req has a photo. Admin only.
func (c *Client) UpdateRoom(ctx context.Context, id int64, req *RoomRequest) (model.Room, error) {
	return c.sendRoom(ctx, http.MethodPut, fmt.Sprintf("/rooms/%d", id), req)
}

// DeleteRoom removes a room. Admin only.
func (c *Client) DeleteRoom(ctx context.Context, id int64) error {
	return c.sendJSON(ctx, http.MethodDelete, fmt.Sprintf("/rooms/%d", id), nil, nil)
}

func (c *Client) sendRoom(ctx context.Context, method, path string, req *RoomRequest) (model.Room, error) {
	var r model.Room
	body, contentType, err := req.Encode()
	if err != nil {
		return r, fmt.Errorf("encode room form: %w", err)
	}
	err = c.sendRaw(ctx, method, path, body, contentType, &r)
	return r, err
}
