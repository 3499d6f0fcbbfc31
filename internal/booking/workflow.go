package booking

import (
	"context"
	"sync"
	"time"

	"github.com/iliyamo/hotel-booking-web/internal/apiclient"
	"github.com/iliyamo/hotel-booking-web/internal/apperror"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// Backend is the part of the REST client the workflow needs.
type Backend interface {
	CreateBooking(ctx context.Context, req apiclient.CreateBookingRequest) (apiclient.CreateBookingResult, error)
}

// Confirmation is the display record handed to the result page. It is
// assembled from the room and hotel snapshot plus the computed pricing;
// the booking is not fetched again.
type Confirmation struct {
	BookingID      int64
	ReferenceCode  string
	HotelID        int64
	HotelName      string
	HotelLocation  string
	RoomID         int64
	RoomName       string
	RoomType       model.RoomType
	RoomImage      string
	CheckIn        model.Date
	CheckOut       model.Date
	Nights         int
	Adults         int
	Children       int
	RoomQuantity   int
	PricePerNight  int64
	TotalPrice     int64
	SpecialRequest string
	BookedAt       time.Time
}

// Guard is the loading flag of one session's booking form. While a submit
// is in flight every other submit is rejected with a BUSY error.
type Guard struct {
	mu   sync.Mutex
	busy bool
}

func (g *Guard) acquire() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy {
		return false
	}
	g.busy = true
	return true
}

func (g *Guard) release() {
	g.mu.Lock()
	g.busy = false
	g.mu.Unlock()
}

// Busy reports whether a submit is in flight.
func (g *Guard) Busy() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.busy
}

// Workflow submits one booking at a time for a session.
type Workflow struct {
	backend Backend
	guard   *Guard
	now     func() time.Time
}

// Option customises a Workflow.
type Option func(*Workflow)

// WithClock overrides the clock used for the "not in the past" rule.
func WithClock(now func() time.Time) Option {
	return func(w *Workflow) { w.now = now }
}

// NewWorkflow binds backend to a session's guard. A nil guard gets a
// private one.
func NewWorkflow(backend Backend, guard *Guard, opts ...Option) *Workflow {
	if guard == nil {
		guard = &Guard{}
	}
	w := &Workflow{backend: backend, guard: guard, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Submit validates form against room, issues exactly one create call and
// returns the confirmation. Validation failures return before any network
// call; backend failures carry the server message and are not retried.
func (w *Workflow) Submit(ctx context.Context, room model.Room, hotel model.Hotel, form Form) (Confirmation, error) {
	req, err := form.Parse()
	if err != nil {
		return Confirmation{}, err
	}
	now := w.now()
	if err := req.Validate(room, now); err != nil {
		return Confirmation{}, err
	}

	if !w.guard.acquire() {
		return Confirmation{}, apperror.Busy()
	}
	defer w.guard.release()

	hotelID := room.HotelID
	if hotelID == 0 {
		hotelID = hotel.ID
	}
	res, err := w.backend.CreateBooking(ctx, apiclient.CreateBookingRequest{
		RoomID:         room.ID,
		HotelID:        hotelID,
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Adults:         req.Adults,
		Children:       req.Children,
		RoomQuantity:   req.RoomQuantity,
		SpecialRequest: req.SpecialRequest,
	})
	if err != nil {
		return Confirmation{}, err
	}

	nights := Nights(req.CheckIn, req.CheckOut)
	return Confirmation{
		BookingID:      res.ID,
		ReferenceCode:  res.ReferenceCode,
		HotelID:        hotelID,
		HotelName:      hotel.Name,
		HotelLocation:  hotel.Location,
		RoomID:         room.ID,
		RoomName:       room.Name,
		RoomType:       room.Type,
		RoomImage:      room.Cover(),
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Nights:         nights,
		Adults:         req.Adults,
		Children:       req.Children,
		RoomQuantity:   req.RoomQuantity,
		PricePerNight:  room.Price,
		TotalPrice:     TotalPrice(room.Price, nights, req.RoomQuantity),
		SpecialRequest: req.SpecialRequest,
		BookedAt:       now,
	}, nil
}
