package domain

import (
	"time"

	"github.com/google/uuid"
)

// Identity is the authenticated caller as seen by this service.
// It is built from verified token claims and never written back.
type Identity struct {
	ID            uuid.UUID
	Email         string
	EmailVerified bool
	LastSignInAt  time.Time
	Provider      string
}

// IsZero reports whether the identity carries no user.
func (i Identity) IsZero() bool { return i.ID == uuid.Nil }
