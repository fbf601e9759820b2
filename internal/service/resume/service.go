package resume

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// Page action names.
const (
	ActionUpload = "upload"
	ActionParse  = "parse"
	ActionDelete = "delete"
)

// mutationGuard groups the actions that rewrite the résumé reference so an
// upload and a delete never interleave on one page.
const mutationGuard = "resume-reference"

// NewPage returns a résumé page machine; registries use it as their factory.
func NewPage() *page.Machine[viewmodel.Resume] {
	return page.NewMachine[viewmodel.Resume]().ShareGuard(mutationGuard, ActionUpload, ActionDelete)
}

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, patch domain.ProfilePatch) (*domain.Profile, error)
}

type blobStore interface {
	Validate(file []byte, contentType string) error
	UploadResume(ctx context.Context, identity domain.Identity, file []byte, contentType string) (string, error)
	DeleteResume(ctx context.Context, identity domain.Identity, ref string) (domain.DeleteOutcome, error)
}

type resumeParser interface {
	ParseResume(ctx context.Context, identity domain.Identity, resumeURL string) (*domain.ParsedResume, error)
}

// Snapshot is the résumé page state.
type Snapshot = page.Snapshot[viewmodel.Resume]

// Service drives the résumé upload page.
type Service struct {
	pages    page.Binder[viewmodel.Resume]
	profiles profileRepo
	blobs    blobStore
	parser   resumeParser
	log      *slog.Logger
}

// NewService creates a résumé Service.
func NewService(
	log *slog.Logger,
	gate page.Gate,
	pages *page.Registry[*page.Machine[viewmodel.Resume]],
	profiles profileRepo,
	blobs blobStore,
	parser resumeParser,
) *Service {
	return &Service{
		pages:    page.NewBinder(gate, pages),
		profiles: profiles,
		blobs:    blobs,
		parser:   parser,
		log:      log.With("service", "resume"),
	}
}

// loadProfile reads the caller's profile. A missing profile row is a
// degraded store, not a user error.
func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("profile missing for %s: %w", userID, domain.ErrStoreUnavailable)
	}
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return p, nil
}

// Load hydrates the page. A parse result already on screen is kept.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	return s.pages.Run(ctx, page.ActionLoad, func(ctx context.Context, identity domain.Identity, prior *viewmodel.Resume) (*viewmodel.Resume, error) {
		p, err := s.loadProfile(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("resume.Load: %w", err)
		}
		view := viewmodel.BuildResume(p, parsedOf(prior))
		return &view, nil
	})
}

// Acknowledge clears a page failure.
func (s *Service) Acknowledge(ctx context.Context) (Snapshot, error) {
	return s.pages.Acknowledge(ctx)
}

func parsedOf(v *viewmodel.Resume) *domain.ParsedResume {
	if v == nil {
		return nil
	}
	return v.Parsed
}
