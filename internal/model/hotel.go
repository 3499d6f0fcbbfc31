package model

// Hotel is a property listed by the backend.
type Hotel struct {
    ID          int64    `json:"id"`
    Name        string   `json:"name"`
    Location    string   `json:"location"`
    Description string   `json:"description"`
    StarRating  int      `json:"starRating"`
    Phone       string   `json:"contactPhone"`
    Email       string   `json:"contactEmail"`
    Active      bool     `json:"active"`
    AmenityIDs  []int64  `json:"amenityIds"`
    RoomIDs     []int64  `json:"roomIds"`
    Images      []string `json:"images"`
}
