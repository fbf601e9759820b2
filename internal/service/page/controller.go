package page

import (
	"context"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// Gate resolves the signed-in caller.
type Gate interface {
	CurrentIdentity(ctx context.Context) (domain.Identity, error)
}

// ActionFunc performs one page action for identity. prior is the data
// currently shown on the page, nil before the first successful load.
type ActionFunc[T any] func(ctx context.Context, identity domain.Identity, prior *T) (*T, error)

// Binder ties a page kind to the session gate and its registry.
type Binder[T any] struct {
	gate  Gate
	pages *Registry[*Machine[T]]
}

// NewBinder creates a Binder.
func NewBinder[T any](gate Gate, pages *Registry[*Machine[T]]) Binder[T] {
	return Binder[T]{gate: gate, pages: pages}
}

// Run resolves the caller's page instance and runs fn as action on it.
// Without a signed-in caller it returns the login redirect snapshot and
// domain.ErrAuthRequired, and fn is not called.
func (b Binder[T]) Run(ctx context.Context, action string, fn ActionFunc[T]) (Snapshot[T], error) {
	identity, err := b.gate.CurrentIdentity(ctx)
	if err != nil {
		return loginRedirect[T](err), err
	}

	m := b.pages.Get(identity.ID)
	return m.Run(ctx, action, func(ctx context.Context) (*T, error) {
		return fn(ctx, identity, m.Snapshot().Data)
	})
}

// Acknowledge clears the caller's page failure.
func (b Binder[T]) Acknowledge(ctx context.Context) (Snapshot[T], error) {
	identity, err := b.gate.CurrentIdentity(ctx)
	if err != nil {
		return loginRedirect[T](err), err
	}
	return b.pages.Get(identity.ID).Acknowledge(), nil
}

// Current returns the caller's page snapshot without changing it.
func (b Binder[T]) Current(ctx context.Context) (Snapshot[T], error) {
	identity, err := b.gate.CurrentIdentity(ctx)
	if err != nil {
		return loginRedirect[T](err), err
	}
	return b.pages.Get(identity.ID).Snapshot(), nil
}

func loginRedirect[T any](err error) Snapshot[T] {
	return Reconcile(Snapshot[T]{Status: StatusIdle}, Event[T]{Kind: EventFailed, Err: err})
}
