package view

import (
    "sync"
    "time"

    "github.com/iliyamo/hotel-booking-web/internal/auth"
)

// Link is one navigation entry.
type Link struct {
    Href  string
    Label string
}

// Nav is what the navigation bar shows for a session.
type Nav struct {
    LoggedIn bool
    Admin    bool
    Links    []Link
}

// NavFor derives the navigation bar from an auth state.
func NavFor(st auth.AuthState) Nav {
    links := []Link{{"/", "Hotels"}, {"/bookings/find", "Find my booking"}}
    switch {
    case st.IsAdmin():
        links = append(links,
            Link{"/admin/bookings", "Bookings"},
            Link{"/admin/hotels", "Hotels"},
            Link{"/admin/rooms", "Rooms"},
            Link{"/admin/amenities", "Amenities"},
            Link{"/admin/accounts", "Accounts"},
            Link{"/profile", "Profile"},
        )
    case st.LoggedIn():
        links = append(links, Link{"/profile", "Profile"})
    }
    return Nav{LoggedIn: st.LoggedIn(), Admin: st.IsAdmin(), Links: links}
}

// Navigation keeps the nav bar of every logged-in session current by
// listening to auth events. Logged-out sessions hold no entry; sessions that
// went quiet are removed by Sweep.
type Navigation struct {
    mu          sync.Mutex
    entries     map[string]navEntry
    now         func() time.Time
    unsubscribe func()
}

type navEntry struct {
    nav  Nav
    seen time.Time
}

// NewNavigation subscribes to n.
func NewNavigation(n *auth.Notifier) *Navigation {
    nv := &Navigation{entries: make(map[string]navEntry), now: time.Now}
    nv.unsubscribe = n.Subscribe(nv.onAuth)
    return nv
}

func (nv *Navigation) onAuth(ev auth.Event) {
    nv.mu.Lock()
    defer nv.mu.Unlock()
    if ev.State.LoggedIn() {
        nv.entries[ev.SessionID] = navEntry{nav: NavFor(ev.State), seen: nv.now()}
        return
    }
    delete(nv.entries, ev.SessionID)
}

// For returns the nav bar of sessionID. st is the state the request read
// from storage; it wins when the entry disagrees about being logged in,
// which happens after a login or logout served by another instance.
func (nv *Navigation) For(sessionID string, st auth.AuthState) Nav {
    nv.mu.Lock()
    defer nv.mu.Unlock()
    e, ok := nv.entries[sessionID]
    if ok && e.nav.LoggedIn == st.LoggedIn() {
        e.seen = nv.now()
        nv.entries[sessionID] = e
        return e.nav
    }
    return NavFor(st)
}

// Sweep drops entries not used for maxIdle and returns how many it removed.
func (nv *Navigation) Sweep(maxIdle time.Duration) int {
    nv.mu.Lock()
    defer nv.mu.Unlock()
    cutoff := nv.now().Add(-maxIdle)
    n := 0
    for id, e := range nv.entries {
        if e.seen.Before(cutoff) {
            delete(nv.entries, id)
            n++
        }
    }
    return n
}

// Len reports the number of tracked sessions.
func (nv *Navigation) Len() int {
    nv.mu.Lock()
    defer nv.mu.Unlock()
    return len(nv.entries)
}

// Close stops listening.
func (nv *Navigation) Close() {
    nv.unsubscribe()
}
