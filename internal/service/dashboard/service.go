package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/dawoodjaved5/soventure-project/internal/config"
	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type jobMatchRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.JobMatch, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	DatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

type interviewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.InterviewSession, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int, error)
	DatesSince(ctx context.Context, userID uuid.UUID, since time.Time) ([]time.Time, error)
}

// Snapshot is the dashboard page state.
type Snapshot = page.Snapshot[viewmodel.Dashboard]

// Service loads and derives the dashboard.
type Service struct {
	pages          page.Binder[viewmodel.Dashboard]
	profiles       profileRepo
	jobs           jobMatchRepo
	interviews     interviewRepo
	opts           viewmodel.Options
	jobLimit       int
	interviewLimit int
	now            func() time.Time
	log            *slog.Logger
}

// NewService creates a dashboard Service.
func NewService(
	log *slog.Logger,
	gate page.Gate,
	pages *page.Registry[*page.Machine[viewmodel.Dashboard]],
	profiles profileRepo,
	jobs jobMatchRepo,
	interviews interviewRepo,
	cfg config.ViewsConfig,
) *Service {
	return &Service{
		pages:          page.NewBinder(gate, pages),
		profiles:       profiles,
		jobs:           jobs,
		interviews:     interviews,
		opts:           viewmodel.OptionsFrom(cfg),
		jobLimit:       cfg.DashboardJobLimit,
		interviewLimit: cfg.DashboardInterviewLimit,
		now:            time.Now,
		log:            log.With("service", "dashboard"),
	}
}

// Load hydrates the dashboard. Profile, matches, history, totals and the
// activity window dates are read concurrently; any failure fails the whole
// load. Activity is counted from the full window, not the limited lists.
func (s *Service) Load(ctx context.Context) (Snapshot, error) {
	return s.pages.Run(ctx, page.ActionLoad, func(ctx context.Context, identity domain.Identity, _ *viewmodel.Dashboard) (*viewmodel.Dashboard, error) {
		in := viewmodel.DashboardInput{Identity: identity}
		now := s.now()
		since := viewmodel.ActivitySince(now)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			p, err := s.profiles.GetByUserID(gctx, identity.ID)
			if errors.Is(err, domain.ErrNotFound) {
				return fmt.Errorf("profile missing for %s: %w", identity.ID, domain.ErrStoreUnavailable)
			}
			if err != nil {
				return fmt.Errorf("get profile: %w", err)
			}
			in.Profile = p
			return nil
		})
		g.Go(func() error {
			jobs, err := s.jobs.ListByUser(gctx, identity.ID, s.jobLimit)
			if err != nil {
				return fmt.Errorf("list job matches: %w", err)
			}
			in.Jobs = jobs
			return nil
		})
		g.Go(func() error {
			sessions, err := s.interviews.ListByUser(gctx, identity.ID, s.interviewLimit)
			if err != nil {
				return fmt.Errorf("list interviews: %w", err)
			}
			in.Interviews = sessions
			return nil
		})
		g.Go(func() error {
			n, err := s.jobs.CountByUser(gctx, identity.ID)
			if err != nil {
				return fmt.Errorf("count job matches: %w", err)
			}
			in.JobCount = n
			return nil
		})
		g.Go(func() error {
			n, err := s.interviews.CountByUser(gctx, identity.ID)
			if err != nil {
				return fmt.Errorf("count interviews: %w", err)
			}
			in.InterviewCount = n
			return nil
		})
		g.Go(func() error {
			dates, err := s.jobs.DatesSince(gctx, identity.ID, since)
			if err != nil {
				return fmt.Errorf("job match activity: %w", err)
			}
			in.JobDates = dates
			return nil
		})
		g.Go(func() error {
			dates, err := s.interviews.DatesSince(gctx, identity.ID, since)
			if err != nil {
				return fmt.Errorf("interview activity: %w", err)
			}
			in.InterviewDates = dates
			return nil
		})

		if err := g.Wait(); err != nil {
			s.log.ErrorContext(ctx, "dashboard load failed",
				slog.String("user_id", identity.ID.String()),
				slog.String("error", err.Error()),
			)
			return nil, fmt.Errorf("dashboard.Load: %w", err)
		}

		view := viewmodel.BuildDashboard(in, now, s.opts)

		s.log.InfoContext(ctx, "dashboard loaded",
			slog.String("user_id", identity.ID.String()),
			slog.Int("job_matches", in.JobCount),
			slog.Int("interviews", in.InterviewCount),
		)
		return &view, nil
	})
}

// Acknowledge clears a failed load.
func (s *Service) Acknowledge(ctx context.Context) (Snapshot, error) {
	return s.pages.Acknowledge(ctx)
}
