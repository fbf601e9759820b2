// Package page holds the per-page state machine shared by every page
// controller and the registry of live page instances.
package page

import (
	"errors"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

// Status is the lifecycle state of a page.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusActing  Status = "acting"
	StatusFailed  Status = "failed"
)

// ActionLoad is the name of the hydrate action every page has.
const ActionLoad = "load"

// Snapshot is the externally visible state of a page.
type Snapshot[T any] struct {
	Status          Status `json:"status"`
	Data            *T     `json:"data,omitempty"`
	Action          string `json:"action,omitempty"`
	Error           string `json:"error,omitempty"`
	RedirectToLogin bool   `json:"redirectToLogin,omitempty"`
}

// EventKind is what happened to a page.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventSucceeded
	EventFailed
	EventAcknowledged
)

// Event drives a Snapshot from one state to the next.
type Event[T any] struct {
	Kind   EventKind
	Action string
	Data   *T
	Err    error
}

// Reconcile returns the snapshot that follows prior after ev. It has no
// side effects.
func Reconcile[T any](prior Snapshot[T], ev Event[T]) Snapshot[T] {
	next := prior
	next.RedirectToLogin = false

	switch ev.Kind {
	case EventStarted:
		next.Error = ""
		next.Action = ev.Action
		if ev.Action == ActionLoad {
			next.Status = StatusLoading
		} else {
			next.Status = StatusActing
		}

	case EventSucceeded:
		if ev.Data != nil {
			next.Data = ev.Data
		}
		next.Status = StatusReady
		next.Action = ""
		next.Error = ""

	case EventFailed:
		if errors.Is(ev.Err, domain.ErrAuthRequired) {
			return Snapshot[T]{Status: StatusIdle, RedirectToLogin: true}
		}
		next.Status = StatusFailed
		next.Action = ev.Action
		next.Error = UserMessage(ev.Err)

	case EventAcknowledged:
		if prior.Status != StatusFailed {
			return prior
		}
		next.Error = ""
		next.Action = ""
		if prior.Data != nil {
			next.Status = StatusReady
		} else {
			next.Status = StatusIdle
		}
	}

	return next
}
