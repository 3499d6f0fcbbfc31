package auth

import "sync"

// Event is broadcast on every login and logout.
type Event struct {
	SessionID string
	State     AuthState
}

// Listener receives auth events. It runs on the notifying goroutine and
// must not call Subscribe or unsubscribe functions.
type Listener func(Event)

// Notifier fans auth events out to listeners synchronously, in the order
// they subscribed. There is no buffering: Notify returns once every
// listener has run.
type Notifier struct {
	mu        sync.RWMutex
	nextID    uint64
	listeners []subscription
}

type subscription struct {
	id uint64
	fn Listener
}

// NewNotifier returns an empty notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns a function that removes it. Calling
// the returned function more than once is harmless.
func (n *Notifier) Subscribe(fn Listener) (unsubscribe func()) {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.listeners = append(n.listeners, subscription{id: id, fn: fn})
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { n.remove(id) })
	}
}

func (n *Notifier) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.listeners {
		if s.id == id {
			n.listeners = append(n.listeners[:i:i], n.listeners[i+1:]...)
			return
		}
	}
}

// Notify calls every listener with ev in subscription order.
func (n *Notifier) Notify(ev Event) {
	n.mu.RLock()
	snapshot := make([]subscription, len(n.listeners))
	copy(snapshot, n.listeners)
	n.mu.RUnlock()

	for _, s := range snapshot {
		s.fn(ev)
	}
}

// Len returns the number of listeners.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners)
}
