package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/hotel-booking-web/internal/apiclient"
	"github.com/iliyamo/hotel-booking-web/internal/apperror"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

type fakeBackend struct {
	mu    sync.Mutex
	calls []apiclient.CreateBookingRequest
	res   apiclient.CreateBookingResult
	err   error
	block chan struct{}
}

func (f *fakeBackend) CreateBooking(ctx context.Context, req apiclient.CreateBookingRequest) (apiclient.CreateBookingResult, error) {
	f.mu.Lock()
	f.calls = append(f.calls, req)
	block := f.block
	f.mu.Unlock()
	if block != nil {
		<-block
	}
	return f.res, f.err
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

var (
	june9 = time.Date(2025, 6, 9, 15, 30, 0, 0, time.Local)
	room  = model.Room{ID: 4, HotelID: 2, Name: "Deluxe", Type: model.RoomDouble, Price: 500000, Capacity: 3, Amount: 2, Images: []string{"deluxe.jpg"}}
	hotel = model.Hotel{ID: 2, Name: "Lotus", Location: "Da Nang"}
)

func form(in, out, adults, children, qty string) Form {
	return Form{CheckIn: in, CheckOut: out, Adults: adults, Children: children, RoomQuantity: qty}
}

func TestSubmit_ScenarioTwoNights(t *testing.T) {
	be := &fakeBackend{res: apiclient.CreateBookingResult{ID: 11, ReferenceCode: "HB-7Q2K"}}
	w := NewWorkflow(be, nil, WithClock(func() time.Time { return june9 }))

	conf, err := w.Submit(context.Background(), room, hotel, form("2025-06-10", "2025-06-12", "2", "0", "1"))

	require.NoError(t, err)
	assert.Equal(t, 2, conf.Nights)
	assert.Equal(t, int64(1000000), conf.TotalPrice)
	assert.Equal(t, "HB-7Q2K", conf.ReferenceCode)
	assert.Equal(t, "Lotus", conf.HotelName)
	assert.Equal(t, "deluxe.jpg", conf.RoomImage)

	require.Equal(t, 1, be.callCount())
	sent := be.calls[0]
	assert.Equal(t, int64(4), sent.RoomID)
	assert.Equal(t, int64(2), sent.HotelID)
	assert.Equal(t, "2025-06-10", sent.CheckIn.String())
	assert.Equal(t, 2, sent.Adults)
}

func TestSubmit_TotalIsPriceTimesNightsTimesQuantity(t *testing.T) {
	be := &fakeBackend{res: apiclient.CreateBookingResult{ReferenceCode: "R"}}
	w := NewWorkflow(be, nil, WithClock(func() time.Time { return june9 }))
	big := room
	big.Amount = 5

	for _, tc := range []struct {
		out    string
		qty    string
		nights int
	}{
		{"2025-06-11", "1", 1},
		{"2025-06-13", "2", 3},
		{"2025-06-17", "5", 7},
	} {
		conf, err := w.Submit(context.Background(), big, hotel, form("2025-06-10", tc.out, "1", "0", tc.qty))
		require.NoError(t, err)
		assert.Equal(t, tc.nights, conf.Nights)
		assert.Equal(t, big.Price*int64(tc.nights)*int64(conf.RoomQuantity), conf.TotalPrice)
	}
}

func TestSubmit_RejectsBeforeAnyNetworkCall(t *testing.T) {
	cases := []struct {
		name  string
		form  Form
		field string
		msg   string
	}{
		{"missing check-in", form("", "2025-06-12", "1", "0", "1"), "checkIn", MsgCheckInRequired},
		{"missing check-out", form("2025-06-10", "", "1", "0", "1"), "checkOut", MsgCheckOutRequired},
		{"bad date", form("10/06/2025", "2025-06-12", "1", "0", "1"), "checkIn", MsgInvalidDate},
		{"check-in in the past", form("2025-06-08", "2025-06-12", "1", "0", "1"), "checkIn", MsgCheckInPast},
		{"check-out equals check-in", form("2025-06-10", "2025-06-10", "1", "0", "1"), "checkOut", MsgCheckOutOrder},
		{"check-out before check-in", form("2025-06-12", "2025-06-10", "1", "0", "1"), "checkOut", MsgCheckOutOrder},
		{"no adults", form("2025-06-10", "2025-06-12", "0", "1", "1"), "adults", MsgAdultsMin},
		{"negative children", form("2025-06-10", "2025-06-12", "1", "-1", "1"), "children", MsgChildrenMin},
		{"not a number", form("2025-06-10", "2025-06-12", "two", "0", "1"), "adults", MsgInvalidNumber},
		{"over capacity", form("2025-06-10", "2025-06-12", "2", "2", "1"), "adults", MsgCapacityExceeded},
		{"zero rooms", form("2025-06-10", "2025-06-12", "1", "0", "0"), "roomQuantity", MsgQuantityMin},
		{"more rooms than available", form("2025-06-10", "2025-06-12", "1", "0", "3"), "roomQuantity", MsgQuantityExceeded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			be := &fakeBackend{}
			w := NewWorkflow(be, nil, WithClock(func() time.Time { return june9 }))

			_, err := w.Submit(context.Background(), room, hotel, tc.form)

			require.Error(t, err)
			ae, ok := apperror.As(err)
			require.True(t, ok)
			assert.Equal(t, apperror.TypeValidation, ae.Type)
			assert.Equal(t, tc.field, ae.Field)
			assert.Equal(t, tc.msg, ae.Message)
			assert.Equal(t, 0, be.callCount())
		})
	}
}

func TestSubmit_TodayIsAllowed(t *testing.T) {
	be := &fakeBackend{res: apiclient.CreateBookingResult{ReferenceCode: "R"}}
	w := NewWorkflow(be, nil, WithClock(func() time.Time { return june9 }))

	_, err := w.Submit(context.Background(), room, hotel, form("2025-06-09", "2025-06-10", "1", "0", "1"))
	assert.NoError(t, err)
}

func TestSubmit_SurfacesServerMessageWithoutRetry(t *testing.T) {
	be := &fakeBackend{err: apperror.External("Room is fully booked for these dates", errors.New("status 409"))}
	w := NewWorkflow(be, nil, WithClock(func() time.Time { return june9 }))

	_, err := w.Submit(context.Background(), room, hotel, form("2025-06-10", "2025-06-12", "1", "0", "1"))

	assert.Equal(t, "Room is fully booked for these dates", apperror.Message(err))
	assert.Equal(t, 1, be.callCount())
}

func TestSubmit_RejectsDuplicateWhileInFlight(t *testing.T) {
	be := &fakeBackend{res: apiclient.CreateBookingResult{ReferenceCode: "R"}, block: make(chan struct{})}
	guard := &Guard{}
	clock := WithClock(func() time.Time { return june9 })
	f := form("2025-06-10", "2025-06-12", "1", "0", "1")

	done := make(chan error, 1)
	go func() {
		_, err := NewWorkflow(be, guard, clock).Submit(context.Background(), room, hotel, f)
		done <- err
	}()

	require.Eventually(t, guard.Busy, time.Second, time.Millisecond)

	_, err := NewWorkflow(be, guard, clock).Submit(context.Background(), room, hotel, f)
	assert.True(t, apperror.Is(err, apperror.TypeBusy))

	close(be.block)
	require.NoError(t, <-done)
	assert.False(t, guard.Busy())
	assert.Equal(t, 1, be.callCount())
}

func TestNights(t *testing.T) {
	in, _ := model.ParseDate("2025-06-10")
	out, _ := model.ParseDate("2025-06-12")
	assert.Equal(t, 2, Nights(in, out))
	assert.Equal(t, 0, Nights(out, in))

	// 23 hours still counts as one night.
	short := model.Date{Time: in.Add(23 * time.Hour)}
	assert.Equal(t, 1, Nights(in, short))
}
