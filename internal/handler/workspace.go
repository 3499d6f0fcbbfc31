package handler

import (
    "sync"
    "time"

    "github.com/iliyamo/hotel-booking-web/internal/adminbooking"
    "github.com/iliyamo/hotel-booking-web/internal/auth"
    "github.com/iliyamo/hotel-booking-web/internal/booking"
)

// Workspace is the in-memory state one logged-in session works with: the
// loading flag of its booking form, the last booking confirmation and, for
// administrators, the booking console.
type Workspace struct {
    Guard   *booking.Guard
    Console *adminbooking.Console

    mu   sync.Mutex
    last *booking.Confirmation
    seen time.Time
}

// SetConfirmation keeps conf for the result page.
func (w *Workspace) SetConfirmation(conf booking.Confirmation) {
    w.mu.Lock()
    w.last = &conf
    w.mu.Unlock()
}

// Confirmation returns the last booking confirmation.
func (w *Workspace) Confirmation() (booking.Confirmation, bool) {
    w.mu.Lock()
    defer w.mu.Unlock()
    if w.last == nil {
        return booking.Confirmation{}, false
    }
    return *w.last, true
}

// Workspaces maps session ids to workspaces. Any login or logout of a
// session drops its workspace, so a new login never sees the previous
// user's console or confirmation.
type Workspaces struct {
    mu          sync.Mutex
    m           map[string]*Workspace
    now         func() time.Time
    unsubscribe func()
}

// NewWorkspaces subscribes to n.
func NewWorkspaces(n *auth.Notifier) *Workspaces {
    ws := &Workspaces{m: make(map[string]*Workspace), now: time.Now}
    ws.unsubscribe = n.Subscribe(func(ev auth.Event) { ws.Drop(ev.SessionID) })
    return ws
}

// Get returns the workspace of sessionID, creating it on first use.
func (ws *Workspaces) Get(sessionID string) *Workspace {
    ws.mu.Lock()
    defer ws.mu.Unlock()
    w, ok := ws.m[sessionID]
    if !ok {
        w = &Workspace{Guard: &booking.Guard{}, Console: adminbooking.New()}
        ws.m[sessionID] = w
    }
    w.seen = ws.now()
    return w
}

// Drop forgets the workspace of sessionID.
func (ws *Workspaces) Drop(sessionID string) {
    ws.mu.Lock()
    delete(ws.m, sessionID)
    ws.mu.Unlock()
}

// Sweep drops workspaces unused for longer than maxIdle and returns how
// many it dropped.
func (ws *Workspaces) Sweep(maxIdle time.Duration) int {
    ws.mu.Lock()
    defer ws.mu.Unlock()
    cutoff := ws.now().Add(-maxIdle)
    n := 0
    for id, w := range ws.m {
        if w.seen.Before(cutoff) {
            delete(ws.m, id)
            n++
        }
    }
    return n
}

// Len returns the number of live workspaces.
func (ws *Workspaces) Len() int {
    ws.mu.Lock()
    defer ws.mu.Unlock()
    return len(ws.m)
}

// Close stops listening to auth events.
func (ws *Workspaces) Close() {
    ws.unsubscribe()
}
