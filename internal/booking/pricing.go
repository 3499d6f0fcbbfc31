package booking

import (
	"math"
	"time"

	"github.com/iliyamo/hotel-booking-web/internal/model"
)

const day = 24 * time.Hour

// Nights returns ceil((checkOut - checkIn) / 1 day). A partial day, such
// as the 23 hours across a daylight-saving change, counts as a night.
func Nights(checkIn, checkOut model.Date) int {
	d := checkOut.Sub(checkIn.Time)
	if d <= 0 {
		return 0
	}
	return int(math.Ceil(float64(d) / float64(day)))
}

// TotalPrice is price per night × nights × room quantity.
func TotalPrice(pricePerNight int64, nights, quantity int) int64 {
	return pricePerNight * int64(nights) * int64(quantity)
}
