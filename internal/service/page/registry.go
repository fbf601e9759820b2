package page

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Registry keeps one page instance per user and evicts instances that have
// not been used for the idle TTL. Instances are never shared between users.
// Evicting an instance does not cancel work it has in flight; the result
// simply lands in an instance nobody can reach any more.
type Registry[P any] struct {
	mu      sync.Mutex
	entries map[uuid.UUID]*entry[P]
	factory func() P
	ttl     time.Duration
	now     func() time.Time
	log     *slog.Logger
	stop    chan struct{}
	once    sync.Once
}

type entry[P any] struct {
	page     P
	lastUsed time.Time
}

// NewRegistry creates a registry with a background sweeper.
// Call Stop() on shutdown.
func NewRegistry[P any](name string, factory func() P, ttl, sweepInterval time.Duration, logger *slog.Logger) *Registry[P] {
	r := newRegistry(factory, ttl, logger.With("registry", name))
	go r.sweepLoop(sweepInterval)
	return r
}

func newRegistry[P any](factory func() P, ttl time.Duration, logger *slog.Logger) *Registry[P] {
	return &Registry[P]{
		entries: make(map[uuid.UUID]*entry[P]),
		factory: factory,
		ttl:     ttl,
		now:     time.Now,
		log:     logger,
		stop:    make(chan struct{}),
	}
}

// Get returns the user's page instance, creating it on first use.
func (r *Registry[P]) Get(userID uuid.UUID) P {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[userID]
	if !ok {
		e = &entry[P]{page: r.factory()}
		r.entries[userID] = e
	}
	e.lastUsed = r.now()
	return e.page
}

// Len returns the number of live instances.
func (r *Registry[P]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep evicts instances idle for longer than the TTL and returns how many
// were removed.
func (r *Registry[P]) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	removed := 0
	for id, e := range r.entries {
		if now.Sub(e.lastUsed) > r.ttl {
			delete(r.entries, id)
			removed++
		}
	}
	return removed
}

// Stop terminates the background sweeper. Safe to call more than once.
func (r *Registry[P]) Stop() {
	r.once.Do(func() { close(r.stop) })
}

func (r *Registry[P]) sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.log.Debug("evicted idle pages", slog.Int("count", n))
			}
		}
	}
}
