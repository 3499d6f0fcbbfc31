package model

import "strings"

// AmenityType decides which admin form may attach an amenity.
type AmenityType string

const (
    AmenityHotel AmenityType = "HOTEL"
    AmenityRoom  AmenityType = "ROOM"
)

// ParseAmenityType normalises s and reports whether it is HOTEL or ROOM.
func ParseAmenityType(s string) (AmenityType, bool) {
    switch t := AmenityType(strings.ToUpper(strings.TrimSpace(s))); t {
    case AmenityHotel, AmenityRoom:
        return t, true
    }
    return "", false
}

// Amenity is a facility attached to either hotels or rooms.
type Amenity struct {
    ID          int64       `json:"id"`
    Name        string      `json:"name"`
    Type        AmenityType `json:"type"`
    Description string      `json:"description,omitempty"`
}

// FilterAmenities returns the amenities of the given level, preserving order.
func FilterAmenities(all []Amenity, t AmenityType) []Amenity {
    out := make([]Amenity, 0, len(all))
    for _, a := range all {
        if a.Type == t {
            out = append(out, a)
        }
    }
    return out
}
