package page

import (
	"context"
	"sync"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// Machine owns the snapshot of one page instance and serializes its
// transitions. At most one run per guard is in flight at a time; each
// action is its own guard unless ShareGuard groups it with others.
type Machine[T any] struct {
	mu       sync.Mutex
	snap     Snapshot[T]
	inflight map[string]struct{}
	guards   map[string]string
}

// NewMachine returns a machine in the idle state.
func NewMachine[T any]() *Machine[T] {
	return &Machine[T]{
		snap:     Snapshot[T]{Status: StatusIdle},
		inflight: make(map[string]struct{}),
		guards:   make(map[string]string),
	}
}

// ShareGuard makes actions mutually exclusive: while any of them runs, the
// others return domain.ErrActionInFlight. Call it before the machine is
// shared.
func (m *Machine[T]) ShareGuard(key string, actions ...string) *Machine[T] {
	for _, a := range actions {
		m.guards[a] = key
	}
	return m
}

func (m *Machine[T]) guardFor(action string) string {
	if key, ok := m.guards[action]; ok {
		return key
	}
	return action
}

// Snapshot returns the current state.
func (m *Machine[T]) Snapshot() Snapshot[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snap
}

// Run executes fn as action. A Run whose guard is already held returns
// domain.ErrActionInFlight without calling fn.
// Actions other than load keep running if ctx is cancelled so that remote
// side effects are not abandoned halfway.
func (m *Machine[T]) Run(ctx context.Context, action string, fn func(ctx context.Context) (*T, error)) (Snapshot[T], error) {
	guard := m.guardFor(action)

	m.mu.Lock()
	if _, busy := m.inflight[guard]; busy {
		snap := m.snap
		m.mu.Unlock()
		return snap, domain.ErrActionInFlight
	}
	m.inflight[guard] = struct{}{}
	m.snap = Reconcile(m.snap, Event[T]{Kind: EventStarted, Action: action})
	m.mu.Unlock()

	if action != ActionLoad {
		ctx = context.WithoutCancel(ctx)
	}
	data, err := fn(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inflight, guard)
	if err != nil {
		m.snap = Reconcile(m.snap, Event[T]{Kind: EventFailed, Action: action, Err: err})
		return m.snap, err
	}
	m.snap = Reconcile(m.snap, Event[T]{Kind: EventSucceeded, Action: action, Data: data})
	return m.snap, nil
}

// Acknowledge clears a failure.
func (m *Machine[T]) Acknowledge() Snapshot[T] {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = Reconcile(m.snap, Event[T]{Kind: EventAcknowledged})
	return m.snap
}

// Busy reports whether any action is in flight.
func (m *Machine[T]) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.inflight) > 0
}
