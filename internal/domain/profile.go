package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Profile is the one-per-identity résumé profile.
type Profile struct {
	ID         uuid.UUID
	Name       *string
	AvatarURL  *string
	ResumeURL  *string
	Skills     []string
	Experience []Section
	Education  []Section
	Projects   []Section
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// HasResume reports whether a résumé reference is set.
func (p *Profile) HasResume() bool {
	return p != nil && p.ResumeURL != nil && *p.ResumeURL != ""
}

// ProfilePatch is a partial profile update. Nil fields are left unchanged.
// A non-nil empty slice clears the collection.
type ProfilePatch struct {
	Name        *string
	AvatarURL   *string
	ResumeURL   *string
	ClearResume bool
	Skills      []string
	Experience  []Section
	Education   []Section
	Projects    []Section
}

// IsEmpty reports whether the patch changes nothing.
func (p ProfilePatch) IsEmpty() bool {
	return p.Name == nil && p.AvatarURL == nil && p.ResumeURL == nil && !p.ClearResume &&
		p.Skills == nil && p.Experience == nil && p.Education == nil && p.Projects == nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the patch before anything is written.
func (p ProfilePatch) Validate() error {
	var errs []FieldError

	if p.ResumeURL != nil {
		if p.ClearResume {
			errs = append(errs, FieldError{Field: "resume_url", Message: "cannot set and clear at the same time"})
		} else if err := validate.Var(*p.ResumeURL, "required,http_url"); err != nil {
			errs = append(errs, FieldError{Field: "resume_url", Message: "must be an absolute http(s) URL"})
		}
	}

	if p.AvatarURL != nil && *p.AvatarURL != "" {
		if err := validate.Var(*p.AvatarURL, "http_url"); err != nil {
			errs = append(errs, FieldError{Field: "avatar_url", Message: "must be an absolute http(s) URL"})
		}
	}

	for _, s := range p.Skills {
		if s == "" {
			errs = append(errs, FieldError{Field: "skills", Message: "must not contain empty values"})
			break
		}
	}

	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
