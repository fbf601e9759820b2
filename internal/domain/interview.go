package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Question is one generated interview question.
type Question struct {
	Question    string       `json:"question"`
	Type        QuestionType `json:"type"`
	Difficulty  Difficulty   `json:"difficulty"`
	Answer      *string      `json:"answer,omitempty"`
	Explanation *string      `json:"explanation,omitempty"`
}

// InterviewSession is a stored set of generated questions for one
// company/role pairing. Rows are append-only.
type InterviewSession struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Company   string
	Role      string
	TechStack []string
	Date      time.Time
	Questions []Question
}

// InterviewRequest is the input of the interview question generator.
type InterviewRequest struct {
	Company   string
	Role      string
	TechStack []string
}

// Validate checks that company and role are present.
func (r InterviewRequest) Validate() error {
	var errs []FieldError
	if strings.TrimSpace(r.Company) == "" {
		errs = append(errs, FieldError{Field: "company", Message: "Please fill in company and role"})
	}
	if strings.TrimSpace(r.Role) == "" {
		errs = append(errs, FieldError{Field: "role", Message: "Please fill in company and role"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
