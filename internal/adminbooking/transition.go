// Package adminbooking implements the administrator's booking console:
// browsing and searching bookings and moving them through their lifecycle.
package adminbooking

import (
	"strings"

	"github.com/iliyamo/hotel-booking-web/internal/apiclient"
	"github.com/iliyamo/hotel-booking-web/internal/apperror"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// Messages shown by the console. They double as translation keys.
const (
	MsgTerminal           = "This booking can no longer change status"
	MsgInvalidTransition  = "This status change is not allowed"
	MsgUnknownStatus      = "Unknown booking status"
	MsgReasonRequired     = "Please enter a cancellation reason"
	MsgRoomNumberRequired = "Please enter the room number"
	MsgNoPending          = "No status change is waiting for confirmation"
	MsgBookingMissing     = "Booking is not in the current list"
	MsgNotFound           = "No booking matches this confirmation code"
)

// allowed lists the forward edges of the lifecycle. Cancellation is
// reachable from every non-terminal state.
var allowed = map[model.BookingStatus][]model.BookingStatus{
	model.StatusBooked:    {model.StatusCheckedIn, model.StatusCancelled},
	model.StatusCheckedIn: {model.StatusCheckedOut, model.StatusCancelled},
}

// CanTransition reports whether a booking in from may move to to. Equal
// statuses are not a transition; callers treat them as a no-op first.
func CanTransition(from, to model.BookingStatus) error {
	if _, ok := model.ParseBookingStatus(string(to)); !ok {
		return apperror.Validation("status", MsgUnknownStatus)
	}
	if from.Terminal() {
		return apperror.Validation("status", MsgTerminal)
	}
	for _, next := range allowed[from] {
		if next == to {
			return nil
		}
	}
	return apperror.Validation("status", MsgInvalidTransition)
}

// Targets returns the statuses a booking in from may move to, in lifecycle
// order.
func Targets(from model.BookingStatus) []model.BookingStatus {
	return append([]model.BookingStatus(nil), allowed[from]...)
}

// Pending is a chosen transition waiting for the confirm step.
type Pending struct {
	BookingID     int64
	ReferenceCode string
	From          model.BookingStatus
	To            model.BookingStatus
}

// NeedsReason reports whether the confirm step must collect a reason.
func (p Pending) NeedsReason() bool { return p.To == model.StatusCancelled }

// NeedsRoomNumber reports whether the confirm step must collect a room number.
func (p Pending) NeedsRoomNumber() bool { return p.To == model.StatusCheckedIn }

// ConfirmInput is what the confirm dialog collects.
type ConfirmInput struct {
	CancellationReason string
	RoomNumber         string
}

// payload validates in against p and builds the request body. Fields that
// do not apply to the target status are sent as empty strings.
func (p Pending) payload(in ConfirmInput) (apiclient.StatusUpdate, error) {
	upd := apiclient.StatusUpdate{Status: p.To}
	switch p.To {
	case model.StatusCancelled:
		reason := strings.TrimSpace(in.CancellationReason)
		if reason == "" {
			return upd, apperror.Validation("cancellationReason", MsgReasonRequired)
		}
		upd.CancellationReason = reason
	case model.StatusCheckedIn:
		room := strings.TrimSpace(in.RoomNumber)
		if room == "" {
			return upd, apperror.Validation("roomNumber", MsgRoomNumberRequired)
		}
		upd.RoomNumber = room
	}
	return upd, nil
}
