package scroll

import (
	"errors"
	"sync"
)

// DefaultThreshold is the offset at which the affordance appears.
const DefaultThreshold = 200

// ErrMounted is returned by Mount when the observer already holds a subscription.
var ErrMounted = errors.New("scroll: observer already mounted")

// AffordanceVisible reports whether an offset has reached threshold.
func AffordanceVisible(offset, threshold int) bool {
	return offset >= threshold
}

// Observer keeps the latest offset seen while mounted on a Source.
//
// Mount acquires the subscription and Unmount releases it. Offsets delivered
// after Unmount, including ones already in flight, are dropped.
type Observer struct {
	mu        sync.Mutex
	threshold int
	offset    int
	active    *subscription
	onToggle  func(visible bool)
}

type subscription struct {
	unsubscribe func()
}

// Option configures an Observer.
type Option func(*Observer)

// WithThreshold sets the offset at which Visible turns true.
func WithThreshold(n int) Option {
	return func(o *Observer) {
		o.threshold = n
	}
}

// OnToggle registers fn to be called whenever visibility changes.
// fn runs on the goroutine that delivered the offset.
func OnToggle(fn func(visible bool)) Option {
	return func(o *Observer) {
		o.onToggle = fn
	}
}

// NewObserver returns an unmounted observer.
func NewObserver(opts ...Option) *Observer {
	o := &Observer{threshold: DefaultThreshold}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Mount subscribes to src and resets the offset to zero.
func (o *Observer) Mount(src Source) error {
	o.mu.Lock()
	if o.active != nil {
		o.mu.Unlock()
		return ErrMounted
	}
	sub := &subscription{}
	o.active = sub
	wasVisible := AffordanceVisible(o.offset, o.threshold)
	o.offset = 0
	nowVisible := AffordanceVisible(0, o.threshold)
	o.mu.Unlock()

	if wasVisible != nowVisible {
		o.toggle(nowVisible)
	}

	unsubscribe := src.Subscribe(func(offset int) {
		o.observe(sub, offset)
	})

	o.mu.Lock()
	if o.active != sub {
		// Unmounted while subscribing.
		o.mu.Unlock()
		unsubscribe()
		return nil
	}
	sub.unsubscribe = unsubscribe
	o.mu.Unlock()
	return nil
}

// Unmount releases the subscription. It is safe to call more than once.
func (o *Observer) Unmount() {
	o.mu.Lock()
	var unsubscribe func()
	if o.active != nil {
		unsubscribe = o.active.unsubscribe
	}
	o.active = nil
	o.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
}

// Mounted reports whether the observer holds a subscription.
func (o *Observer) Mounted() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.active != nil
}

// Offset returns the last observed offset.
func (o *Observer) Offset() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.offset
}

// Threshold returns the configured threshold.
func (o *Observer) Threshold() int {
	return o.threshold
}

// Visible reports whether the affordance should be shown.
func (o *Observer) Visible() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return AffordanceVisible(o.offset, o.threshold)
}

func (o *Observer) observe(sub *subscription, offset int) {
	o.mu.Lock()
	if o.active != sub {
		o.mu.Unlock()
		return
	}
	before := AffordanceVisible(o.offset, o.threshold)
	o.offset = offset
	after := AffordanceVisible(o.offset, o.threshold)
	o.mu.Unlock()

	if before != after {
		o.toggle(after)
	}
}

func (o *Observer) toggle(visible bool) {
	if o.onToggle != nil {
		o.onToggle(visible)
	}
}
