// Package session holds the singleton auth record and the change-notification
// channel that lets independently wired components observe the same logical
// session without any shared parent.
package session

import (
	"sync"

	"github.com/google/uuid"
)

// Broadcaster is a process-wide publish/subscribe channel for auth-state
// changes. The notification carries no payload: it means "something changed,
// re-read the session record", never "here is the new state". Pushing state
// through the event would invite staleness mismatches between subscribers.
type Broadcaster struct {
	mu   sync.Mutex
	subs map[string]func()
}

// NewBroadcaster returns a channel with no subscribers.
func NewBroadcaster() *Broadcaster {
	return &Broadcaster{subs: make(map[string]func())}
}

// Subscribe registers fn to run on every Publish and returns the matching
// unsubscribe handle. Calling the handle more than once is harmless.
func (b *Broadcaster) Subscribe(fn func()) (unsubscribe func()) {
	id := uuid.NewString()
	b.mu.Lock()
	b.subs[id] = fn
	b.mu.Unlock()
	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Publish invokes every subscribed callback. Callbacks run synchronously on
// the publisher's goroutine, outside the lock, so a subscriber may call
// Subscribe or its own unsubscribe handle without deadlocking.
func (b *Broadcaster) Publish() {
	b.mu.Lock()
	fns := make([]func(), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
