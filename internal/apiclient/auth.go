package apiclient

import (
	"context"
	"net/http"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// LoginRequest is the credential pair sent to the authenticate endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult carries the issued bearer token and the account role.
type LoginResult struct {
	Token string     `json:"token"`
	Role  model.Role `json:"role"`
}

// RegisterRequest creates a customer account.
type RegisterRequest struct {
	FullName    string     `json:"fullName"`
	Email       string     `json:"email"`
	Password    string     `json:"password"`
	Phone       string     `json:"phone"`
	DateOfBirth model.Date `json:"dateOfBirth"`
}

// Login authenticates against the backend.
func (c *Client) Login(ctx context.Context, req LoginRequest) (LoginResult, error) {
	var out LoginResult
	err := c.sendJSON(ctx, http.MethodPost, "/auth/login", req, &out)
	return out, err
}

// Register creates a new customer account.
func (c *Client) Register(ctx context.Context, req RegisterRequest) error {
	return c.sendJSON(ctx, http.MethodPost, "/auth/register", req, nil)
}
