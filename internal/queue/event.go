// Package queue defines the booking activity events exchanged over the
// message broker, the publisher used by the web handlers and the consumer
// that appends them to the activity log.
package queue

import (
    "fmt"
    "strings"
)

// BookingCreatedEvent is published after the backend accepted a new booking.
// It carries what the confirmation page showed so consumers never need to
// query the backend.
type BookingCreatedEvent struct {
    BookingID     int64  `json:"booking_id"`
    ReferenceCode string `json:"reference_code"`
    HotelID       int64  `json:"hotel_id"`
    HotelName     string `json:"hotel_name"`
    RoomID        int64  `json:"room_id"`
    RoomName      string `json:"room_name"`
    CheckIn       string `json:"check_in"`
    CheckOut      string `json:"check_out"`
    Nights        int    `json:"nights"`
    RoomQuantity  int    `json:"room_quantity"`
    TotalPrice    int64  `json:"total_price"`
    CreatedAt     string `json:"created_at"`
}

// BookingStatusChangedEvent is published after an admin transition succeeded.
type BookingStatusChangedEvent struct {
    BookingID          int64  `json:"booking_id"`
    ReferenceCode      string `json:"reference_code"`
    From               string `json:"from"`
    To                 string `json:"to"`
    CancellationReason string `json:"cancellation_reason,omitempty"`
    RoomNumber         string `json:"room_number,omitempty"`
    ChangedAt          string `json:"changed_at"`
}

// ActivityLine renders the event as a single log line.
func (e BookingCreatedEvent) ActivityLine() string {
    return fmt.Sprintf("[%s] Booking created | booking_id=%d | ref=%s | hotel=%q | room=%q | stay=%s..%s | nights=%d | rooms=%d | total=%d\n",
        e.CreatedAt, e.BookingID, e.ReferenceCode, e.HotelName, e.RoomName, e.CheckIn, e.CheckOut, e.Nights, e.RoomQuantity, e.TotalPrice)
}

// ActivityLine renders the event as a single log line. Reason and room
// number only appear when set.
func (e BookingStatusChangedEvent) ActivityLine() string {
    var b strings.Builder
    fmt.Fprintf(&b, "[%s] Booking status changed | booking_id=%d | ref=%s | %s -> %s",
        e.ChangedAt, e.BookingID, e.ReferenceCode, e.From, e.To)
    if e.RoomNumber != "" {
        fmt.Fprintf(&b, " | room_number=%s", e.RoomNumber)
    }
    if e.CancellationReason != "" {
        fmt.Fprintf(&b, " | reason=%q", e.CancellationReason)
    }
    b.WriteString("\n")
    return b.String()
}
