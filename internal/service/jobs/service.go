package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// ActionDiscover is the page action that asks for new matches.
const ActionDiscover = "discover"

type jobMatchRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JobMatch, error)
}

type jobDiscoverer interface {
	DiscoverJobs(ctx context.Context, identity domain.Identity, query string) error
}

// Snapshot is the job discovery page state.
type Snapshot = page.Snapshot[viewmodel.Jobs]

// Service drives the job discovery page.
type Service struct {
	pages      page.Binder[viewmodel.Jobs]
	matches    jobMatchRepo
	discoverer jobDiscoverer
	log        *slog.Logger
}

// NewService creates a jobs Service.
func NewService(
	log *slog.Logger,
	gate page.Gate,
	pages *page.Registry[*page.Machine[viewmodel.Jobs]],
	matches jobMatchRepo,
	discoverer jobDiscoverer,
) *Service {
	return &Service{
		pages:      page.NewBinder(gate, pages),
		matches:    matches,
		discoverer: discoverer,
		log:        log.With("service", "jobs"),
	}
}

// Load lists every match of the caller, newest first.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	return s.pages.Run(ctx, page.ActionLoad, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Jobs) (*viewmodel.Jobs, error) {
		view, err := s.list(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("jobs.Load: %w", err)
		}
		return view, nil
	})
}

// Discover triggers job discovery and re-lists the matches it stored.
// query may be empty.
func (s *Service) Discover(ctx context.Context, query string) (Snapshot, error) {
	return s.pages.Run(ctx, ActionDiscover, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Jobs) (*viewmodel.Jobs, error) {
		if err := s.discoverer.DiscoverJobs(ctx, identity, query); err != nil {
			return nil, fmt.Errorf("jobs.Discover: %w", err)
		}

		view, err := s.list(ctx, identity.ID)
		if err != nil {
			return nil, fmt.Errorf("jobs.Discover: %w", err)
		}

		s.log.InfoContext(ctx, "jobs discovered",
			slog.String("user_id", identity.ID.String()),
			slog.Int("total", view.Total),
		)
		return view, nil
	})
}

// Acknowledge clears a page failure.
func (s *Service) Acknowledge(ctx context.Context) (Snapshot, error) {
	return s.pages.Acknowledge(ctx)
}

func (s *Service) list(ctx context.Context, userID uuid.UUID) (*viewmodel.Jobs, error) {
	matches, err := s.matches.ListByUser(ctx, userID, 0)
	if err != nil {
		return nil, fmt.Errorf("list job matches: %w", err)
	}
	view := viewmodel.BuildJobs(matches)
	return &view, nil
}
