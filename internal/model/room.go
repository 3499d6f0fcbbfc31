package model

import "strings"

// RoomType enumerates the kinds of rooms a hotel can list.
type RoomType string

const (
    RoomSingle RoomType = "SINGLE"
    RoomDouble RoomType = "DOUBLE"
    RoomSuite  RoomType = "SUIT"
    RoomTriple RoomType = "TRIPLE"
)

// RoomTypes lists every room type in the order the admin forms offer them.
var RoomTypes = []RoomType{RoomSingle, RoomDouble, RoomSuite, RoomTriple}

// ParseRoomType normalises s and reports whether it names a known room type.
func ParseRoomType(s string) (RoomType, bool) {
    t := RoomType(strings.ToUpper(strings.TrimSpace(s)))
    for _, known := range RoomTypes {
        if t == known {
            return t, true
        }
    }
    return "", false
}

// Room is a bookable room offer as returned by the backend.
//
// Fields:
//  ID          – backend identifier.
//  HotelID     – hotel the room belongs to.
//  Name        – display name.
//  Type        – one of RoomTypes.
//  Price       – price per night in the backend currency unit.
//  Capacity    – maximum number of occupants (adults + children).
//  Amount      – units still available for booking; read-only on this side.
//  Description – free text.
//  AmenityIDs  – ordered room-level amenity references.
//  Images      – ordered image URLs.
type Room struct {
    ID          int64    `json:"id"`
    HotelID     int64    `json:"hotelId"`
    Name        string   `json:"name"`
    Type        RoomType `json:"type"`
    Price       int64    `json:"price"`
    Capacity    int      `json:"capacity"`
    Amount      int      `json:"amount"`
    Description string   `json:"description"`
    AmenityIDs  []int64  `json:"amenityIds"`
    Images      []string `json:"images"`
}

// Cover returns the first image of the room or an empty string.
func (r Room) Cover() string {
    if len(r.Images) == 0 {
        return ""
    }
    return r.Images[0]
}
