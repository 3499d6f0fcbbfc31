package model

import (
    "strings"
    "time"
)

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
    StatusBooked     BookingStatus = "BOOKED"
    StatusCheckedIn  BookingStatus = "CHECKED_IN"
    StatusCheckedOut BookingStatus = "CHECKED_OUT"
    StatusCancelled  BookingStatus = "CANCELLED"
)

// BookingStatuses lists the statuses in lifecycle order.
var BookingStatuses = []BookingStatus{StatusBooked, StatusCheckedIn, StatusCheckedOut, StatusCancelled}

// ParseBookingStatus normalises s and reports whether it is a known status.
func ParseBookingStatus(s string) (BookingStatus, bool) {
    st := BookingStatus(strings.ToUpper(strings.TrimSpace(s)))
    for _, known := range BookingStatuses {
        if st == known {
            return st, true
        }
    }
    return "", false
}

// Terminal reports whether no transition leaves the status.
func (s BookingStatus) Terminal() bool {
    return s == StatusCheckedOut || s == StatusCancelled
}

// Booking records a reservation of one or more units of a room.
// ReferenceCode is the only key shown to customers; ID stays internal.
// CancellationReason is set only for CANCELLED bookings and RoomNumber
// only once a guest has checked in.
type Booking struct {
    ID                 int64         `json:"id"`
    ReferenceCode      string        `json:"referenceCode"`
    RoomID             int64         `json:"roomId"`
    HotelID            int64         `json:"hotelId"`
    RoomName           string        `json:"roomName,omitempty"`
    HotelName          string        `json:"hotelName,omitempty"`
    CheckIn            Date          `json:"checkInDate"`
    CheckOut           Date          `json:"checkOutDate"`
    Adults             int           `json:"adults"`
    Children           int           `json:"children"`
    RoomQuantity       int           `json:"roomQuantity"`
    SpecialRequest     string        `json:"specialRequest,omitempty"`
    Status             BookingStatus `json:"status"`
    CancellationReason string        `json:"cancellationReason,omitempty"`
    RoomNumber         string        `json:"roomNumber,omitempty"`
    TotalPrice         int64         `json:"totalPrice"`
    CreatedAt          time.Time     `json:"createdAt"`
}

// HasReason reports whether a cancellation reason can be shown.
func (b Booking) HasReason() bool {
    return b.Status == StatusCancelled && b.CancellationReason != ""
}
