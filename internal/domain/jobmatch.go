package domain

import (
	"time"

	"github.com/google/uuid"
)

// Score bounds of a job match.
const (
	MinScore = 0
	MaxScore = 100
)

// JobMatch is a scored job opportunity found by the discovery task.
// Rows are append-only.
type JobMatch struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	Title        string
	Company      string
	Link         string
	Score        int
	Reasons      string
	Requirements []string
	DateFound    time.Time
	Location     *string
	Salary       *string
}
