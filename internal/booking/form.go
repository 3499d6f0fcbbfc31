// Package booking turns the stay parameters a guest enters into a validated
// create-booking call and assembles the confirmation shown afterwards.
package booking

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/iliyamo/hotel-booking-web/internal/apperror"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// Validation messages. They double as translation keys.
const (
	MsgCheckInRequired  = "Check-in date is required"
	MsgCheckOutRequired = "Check-out date is required"
	MsgInvalidDate      = "Dates must use the YYYY-MM-DD format"
	MsgCheckInPast      = "Check-in date cannot be in the past"
	MsgCheckOutOrder    = "Check-out date must be after check-in date"
	MsgAdultsMin        = "At least one adult is required"
	MsgChildrenMin      = "Number of children cannot be negative"
	MsgInvalidNumber    = "Guests and rooms must be whole numbers"
	MsgCapacityExceeded = "The number of guests exceeds the room capacity"
	MsgQuantityMin      = "At least one room must be booked"
	MsgQuantityExceeded = "Not enough rooms available for the requested quantity"
)

// Form is the raw page input. Numbers arrive as text and are only parsed
// at submit time.
type Form struct {
	CheckIn        string `form:"checkIn" validate:"required"`
	CheckOut       string `form:"checkOut" validate:"required"`
	Adults         string `form:"adults"`
	Children       string `form:"children"`
	RoomQuantity   string `form:"roomQuantity"`
	SpecialRequest string `form:"specialRequest"`
}

// DefaultForm pre-fills the page: one adult, one room.
func DefaultForm() Form {
	return Form{Adults: "1", Children: "0", RoomQuantity: "1"}
}

// Request is the parsed, typed form.
type Request struct {
	CheckIn        model.Date
	CheckOut       model.Date
	Adults         int `validate:"gte=1"`
	Children       int `validate:"gte=0"`
	RoomQuantity   int `validate:"gte=1"`
	SpecialRequest string
}

var validate = validator.New()

var fieldMessages = map[string]string{
	"CheckIn":      MsgCheckInRequired,
	"CheckOut":     MsgCheckOutRequired,
	"Adults":       MsgAdultsMin,
	"Children":     MsgChildrenMin,
	"RoomQuantity": MsgQuantityMin,
}

// fromValidator converts the first validator failure into an AppError.
func fromValidator(err error) error {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		f := verrs[0].StructField()
		return apperror.Validation(lowerFirst(f), fieldMessages[f])
	}
	return apperror.Validation("", apperror.GenericMessage)
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// Parse checks required fields and converts the form into a Request.
func (f Form) Parse() (Request, error) {
	if err := validate.Struct(f); err != nil {
		return Request{}, fromValidator(err)
	}

	in, err := model.ParseDate(f.CheckIn)
	if err != nil {
		return Request{}, apperror.Validation("checkIn", MsgInvalidDate)
	}
	out, err := model.ParseDate(f.CheckOut)
	if err != nil {
		return Request{}, apperror.Validation("checkOut", MsgInvalidDate)
	}

	adults, err := atoiDefault(f.Adults, 1)
	if err != nil {
		return Request{}, apperror.Validation("adults", MsgInvalidNumber)
	}
	children, err := atoiDefault(f.Children, 0)
	if err != nil {
		return Request{}, apperror.Validation("children", MsgInvalidNumber)
	}
	qty, err := atoiDefault(f.RoomQuantity, 1)
	if err != nil {
		return Request{}, apperror.Validation("roomQuantity", MsgInvalidNumber)
	}

	return Request{
		CheckIn:        in,
		CheckOut:       out,
		Adults:         adults,
		Children:       children,
		RoomQuantity:   qty,
		SpecialRequest: strings.TrimSpace(f.SpecialRequest),
	}, nil
}

func atoiDefault(s string, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// Validate applies every client-side rule against room as of today. It
// never touches the network.
func (r Request) Validate(room model.Room, now time.Time) error {
	if err := validate.Struct(r); err != nil {
		return fromValidator(err)
	}

	today := model.NewDate(now)
	if r.CheckIn.Before(today.Time) {
		return apperror.Validation("checkIn", MsgCheckInPast)
	}
	if !r.CheckOut.After(r.CheckIn.Time) {
		return apperror.Validation("checkOut", MsgCheckOutOrder)
	}
	if r.Adults+r.Children > room.Capacity {
		return apperror.Validation("adults", MsgCapacityExceeded)
	}
	if r.RoomQuantity > room.Amount {
		return apperror.Validation("roomQuantity", MsgQuantityExceeded)
	}
	return nil
}
