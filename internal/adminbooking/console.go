package adminbooking

import (
	"context"
	"strings"
	"sync"

	"github.com/iliyamo/hotel-booking-web/internal/apiclient"
	"github.com/iliyamo/hotel-booking-web/internal/apperror"
	"github.com/iliyamo/hotel-booking-web/internal/model"
)

// Backend is the part of the REST client the console needs.
type Backend interface {
	ListBookings(ctx context.Context) ([]model.Booking, error)
	GetBookingByReference(ctx context.Context, code string) (model.Booking, bool, error)
	UpdateBooking(ctx context.Context, id int64, upd apiclient.StatusUpdate) (model.Booking, error)
}

// Console is one administrator's view of the bookings. It keeps the full
// list from the last load and the visible list, which is either the full
// list or a search result. Only one backend call runs at a time; list state
// changes only after a call succeeds.
type Console struct {
	mu        sync.Mutex
	loaded    bool
	all       []model.Booking
	visible   []model.Booking
	query     string
	searching bool
	notFound  bool
	pending   *Pending
	busy      bool
}

// View is a copy of the console state for rendering.
type View struct {
	Loaded    bool
	Bookings  []model.Booking
	Total     int
	Query     string
	Searching bool
	NotFound  bool
	Pending   *Pending
	Busy      bool
}

// New returns an empty console.
func New() *Console {
	return &Console{}
}

// begin marks a backend call as in flight.
func (c *Console) begin() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.busy {
		return apperror.Busy()
	}
	c.busy = true
	return nil
}

func (c *Console) end() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// Load fetches every booking and resets both lists and any search.
func (c *Console) Load(ctx context.Context, be Backend) error {
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	list, err := be.ListBookings(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = true
	c.all = list
	c.visible = clone(list)
	c.query, c.searching, c.notFound = "", false, false
	return nil
}

// EnsureLoaded loads the list on first use only.
func (c *Console) EnsureLoaded(ctx context.Context, be Backend) error {
	c.mu.Lock()
	loaded := c.loaded
	c.mu.Unlock()
	if loaded {
		return nil
	}
	return c.Load(ctx, be)
}

// Search looks a booking up by confirmation code. No match empties the
// visible list and sets the not-found state; a match shows only that
// booking. An empty code clears the search. On error nothing changes.
func (c *Console) Search(ctx context.Context, be Backend, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		c.ClearSearch()
		return nil
	}
	if err := c.begin(); err != nil {
		return err
	}
	defer c.end()

	b, found, err := be.GetBookingByReference(ctx, code)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.query, c.searching = code, true
	if !found {
		c.visible = []model.Booking{}
		c.notFound = true
		return nil
	}
	c.visible = []model.Booking{b}
	c.notFound = false
	return nil
}

// ClearSearch restores the full list held from the last load without
// calling the backend.
func (c *Console) ClearSearch() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.visible = clone(c.all)
	c.query, c.searching, c.notFound = "", false, false
}

// Select starts a transition of booking id to status. Choosing the
// booking's current status is a no-op and returns noop == true. Otherwise
// the transition becomes pending until Confirm or Dismiss.
func (c *Console) Select(id int64, to model.BookingStatus) (p *Pending, noop bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.find(id)
	if !ok {
		return nil, false, apperror.Validation("booking", MsgBookingMissing)
	}
	if b.Status == to {
		return nil, true, nil
	}
	if err := CanTransition(b.Status, to); err != nil {
		return nil, false, err
	}
	c.pending = &Pending{BookingID: b.ID, ReferenceCode: b.ReferenceCode, From: b.Status, To: to}
	cp := *c.pending
	return &cp, false, nil
}

// Dismiss drops the pending transition.
func (c *Console) Dismiss() {
	c.mu.Lock()
	c.pending = nil
	c.mu.Unlock()
}

// Confirm submits the pending transition. A missing reason or room number
// is rejected before the call and keeps the transition pending. On success
// the server's record replaces the local copy in both lists.
func (c *Console) Confirm(ctx context.Context, be Backend, in ConfirmInput) (model.Booking, error) {
	c.mu.Lock()
	if c.pending == nil {
		c.mu.Unlock()
		return model.Booking{}, apperror.Validation("status", MsgNoPending)
	}
	p := *c.pending
	c.mu.Unlock()

	upd, err := p.payload(in)
	if err != nil {
		return model.Booking{}, err
	}

	if err := c.begin(); err != nil {
		return model.Booking{}, err
	}
	defer c.end()

	updated, err := be.UpdateBooking(ctx, p.BookingID, upd)
	if err != nil {
		return model.Booking{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if updated.ID == 0 && updated.ReferenceCode == "" {
		// Accepted without a record in the reply: apply the update to the
		// local copy instead.
		local, ok := c.find(p.BookingID)
		if !ok {
			local = model.Booking{ID: p.BookingID, ReferenceCode: p.ReferenceCode}
		}
		local.Status = upd.Status
		if upd.CancellationReason != "" {
			local.CancellationReason = upd.CancellationReason
		}
		if upd.RoomNumber != "" {
			local.RoomNumber = upd.RoomNumber
		}
		updated = local
	} else if updated.ID == 0 {
		updated.ID = p.BookingID
	}
	replace(c.all, updated)
	replace(c.visible, updated)
	// A selection made while the call was in flight stays pending.
	if c.pending != nil && *c.pending == p {
		c.pending = nil
	}
	return updated, nil
}

// Reason returns the stored cancellation reason of a cancelled booking.
func (c *Console) Reason(id int64) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.find(id)
	if !ok || !b.HasReason() {
		return "", false
	}
	return b.CancellationReason, true
}

// Booking returns the local copy of booking id.
func (c *Console) Booking(id int64) (model.Booking, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.find(id)
}

// Snapshot copies the state for rendering.
func (c *Console) Snapshot() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	v := View{
		Loaded:    c.loaded,
		Bookings:  clone(c.visible),
		Total:     len(c.all),
		Query:     c.query,
		Searching: c.searching,
		NotFound:  c.notFound,
		Busy:      c.busy,
	}
	if c.pending != nil {
		p := *c.pending
		v.Pending = &p
	}
	return v
}

// find looks in the visible list first so a search result that is newer
// than the full list wins.
func (c *Console) find(id int64) (model.Booking, bool) {
	for _, b := range c.visible {
		if b.ID == id {
			return b, true
		}
	}
	for _, b := range c.all {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

func replace(list []model.Booking, b model.Booking) {
	for i := range list {
		if list[i].ID == b.ID {
			list[i] = b
		}
	}
}

func clone(list []model.Booking) []model.Booking {
	out := make([]model.Booking, len(list))
	copy(out, list)
	return out
}
