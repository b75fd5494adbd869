// Package scroll tracks a vertical scroll offset and decides when the
// "jump to top" affordance should be shown.
package scroll

import "sync"

// Source delivers scroll offsets. Subscribe returns the function that stops
// delivery to fn.
type Source interface {
	Subscribe(fn func(offset int)) (unsubscribe func())
}

// Feed is an in-process Source. Publish hands an offset to every current
// subscriber.
type Feed struct {
	mu   sync.Mutex
	next int
	subs map[int]func(int)
}

// NewFeed returns an empty feed.
func NewFeed() *Feed {
	return &Feed{subs: make(map[int]func(int))}
}

// Subscribe registers fn until the returned func is called.
func (f *Feed) Subscribe(fn func(offset int)) func() {
	f.mu.Lock()
	id := f.next
	f.next++
	f.subs[id] = fn
	f.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			f.mu.Unlock()
		})
	}
}

// Publish delivers offset to the subscribers registered at the time of the call.
func (f *Feed) Publish(offset int) {
	f.mu.Lock()
	subs := make([]func(int), 0, len(f.subs))
	for _, fn := range f.subs {
		subs = append(subs, fn)
	}
	f.mu.Unlock()

	for _, fn := range subs {
		fn(offset)
	}
}

// Subscribers returns the number of active subscriptions.
func (f *Feed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}
