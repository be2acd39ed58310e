package contactform

import (
	"sync"
	"time"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const (
	// AutoDismissAfter is how long a notification stays before closing itself
	AutoDismissAfter = 5 * time.Second
	// RemoveAfter is the closing transition; the notification is gone afterwards
	RemoveAfter = 300 * time.Millisecond
)

type Notification struct {
	ID      int
	Message string
	Kind    Kind
	Closing bool
}

type EventType int

const (
	EventShown EventType = iota
	EventClosing
	EventRemoved
)

type Event struct {
	Type         EventType
	Notification Notification
}

type entry struct {
	n    Notification
	auto Timer
}

// Notifications tracks the transient notifications currently on screen.
// Each one closes on Dismiss or after AutoDismissAfter, whichever is first,
// and is removed RemoveAfter later.
type Notifications struct {
	mu      sync.Mutex
	clock   Clock
	nextID  int
	entries []*entry
	onEvent func(Event)
}

func NewNotifications(clock Clock) *Notifications {
	if clock == nil {
		clock = RealClock()
	}
	return &Notifications{clock: clock}
}

// OnEvent registers a hook called outside the lock for every lifecycle change
func (ns *Notifications) OnEvent(fn func(Event)) {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	ns.onEvent = fn
}

// Show inserts a notification and schedules its auto-dismissal
func (ns *Notifications) Show(message string, kind Kind) int {
	ns.mu.Lock()
	ns.nextID++
	id := ns.nextID
	e := &entry{n: Notification{ID: id, Message: message, Kind: kind}}
	ns.entries = append(ns.entries, e)
	e.auto = ns.clock.AfterFunc(AutoDismissAfter, func() { ns.Dismiss(id) })
	snapshot, hook := e.n, ns.onEvent
	ns.mu.Unlock()

	emit(hook, EventShown, snapshot)
	return id
}

// Dismiss starts the closing transition. It reports false when the
// notification is unknown or already closing.
func (ns *Notifications) Dismiss(id int) bool {
	ns.mu.Lock()
	e := ns.find(id)
	if e == nil || e.n.Closing {
		ns.mu.Unlock()
		return false
	}
	e.n.Closing = true
	if e.auto != nil {
		e.auto.Stop()
	}
	ns.clock.AfterFunc(RemoveAfter, func() { ns.remove(id) })
	snapshot, hook := e.n, ns.onEvent
	ns.mu.Unlock()

	emit(hook, EventClosing, snapshot)
	return true
}

// Visible returns every notification still in the document, closing ones included
func (ns *Notifications) Visible() []Notification {
	ns.mu.Lock()
	defer ns.mu.Unlock()

	out := make([]Notification, len(ns.entries))
	for i, e := range ns.entries {
		out[i] = e.n
	}
	return out
}

func (ns *Notifications) remove(id int) {
	ns.mu.Lock()
	var removed *entry
	for i, e := range ns.entries {
		if e.n.ID == id {
			removed = e
			ns.entries = append(ns.entries[:i], ns.entries[i+1:]...)
			break
		}
	}
	hook := ns.onEvent
	ns.mu.Unlock()

	if removed != nil {
		emit(hook, EventRemoved, removed.n)
	}
}

func (ns *Notifications) find(id int) *entry {
	for _, e := range ns.entries {
		if e.n.ID == id {
			return e
		}
	}
	return nil
}

func emit(hook func(Event), typ EventType, n Notification) {
	if hook != nil {
		hook(Event{Type: typ, Notification: n})
	}
}
