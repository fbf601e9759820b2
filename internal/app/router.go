package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dawoodjaved5/soventure-project/internal/adapter/functions"
	"github.com/dawoodjaved5/soventure-project/internal/adapter/postgres"
	"github.com/dawoodjaved5/soventure-project/internal/adapter/postgres/interview"
	"github.com/dawoodjaved5/soventure-project/internal/adapter/postgres/jobmatch"
	"github.com/dawoodjaved5/soventure-project/internal/adapter/postgres/profile"
	"github.com/dawoodjaved5/soventure-project/internal/adapter/storage"
	"github.com/dawoodjaved5/soventure-project/internal/auth"
	"github.com/dawoodjaved5/soventure-project/internal/config"
	dashboardsvc "github.com/dawoodjaved5/soventure-project/internal/service/dashboard"
	interviewsvc "github.com/dawoodjaved5/soventure-project/internal/service/interview"
	jobssvc "github.com/dawoodjaved5/soventure-project/internal/service/jobs"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
	resumesvc "github.com/dawoodjaved5/soventure-project/internal/service/resume"
	"github.com/dawoodjaved5/soventure-project/internal/transport/middleware"
	"github.com/dawoodjaved5/soventure-project/internal/transport/rest"
	"github.com/dawoodjaved5/soventure-project/internal/viewmodel"
)

// database is what the router needs from the record store pool.
type database interface {
	postgres.Querier
	Ping(ctx context.Context) error
}

// NewRouter wires every component on top of db and returns the HTTP
// handler of the service. stop releases the background sweepers and must
// be called once the server stopped accepting requests.
func NewRouter(cfg *config.Config, db database, logger *slog.Logger) (handler http.Handler, stop func(), err error) {
	invoker, err := functions.NewInvoker(cfg.Supabase, cfg.Tasks, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("app: remote tasks: %w", err)
	}
	blobs := storage.NewClient(cfg.Supabase, cfg.Storage, logger)

	profiles := profile.New(db)
	matches := jobmatch.New(db)
	sessions := interview.New(db)

	gate := auth.NewGate(cfg.Auth.LoginPath)
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.JWTAudience)

	ttl, sweep := cfg.Pages.IdleTTL, cfg.Pages.CleanupInterval
	dashboardPages := page.NewRegistry("dashboard", page.NewMachine[viewmodel.Dashboard], ttl, sweep, logger)
	resumePages := page.NewRegistry("resume", resumesvc.NewPage, ttl, sweep, logger)
	jobsPages := page.NewRegistry("jobs", page.NewMachine[viewmodel.Jobs], ttl, sweep, logger)
	interviewPages := page.NewRegistry("interview", page.NewMachine[viewmodel.Interview], ttl, sweep, logger)

	services := rest.Services{
		Dashboard: dashboardsvc.NewService(logger, gate, dashboardPages, profiles, matches, sessions, cfg.Views),
		Resume:    resumesvc.NewService(logger, gate, resumePages, profiles, blobs, invoker),
		Jobs:      jobssvc.NewService(logger, gate, jobsPages, matches, invoker),
		Interview: interviewsvc.NewService(logger, gate, interviewPages, sessions, invoker, cfg.Views.InterviewHistoryLimit),
	}

	var (
		limit       func(http.Handler) http.Handler
		stopLimiter = func() {}
	)
	if cfg.RateLimit.Enabled {
		rl := middleware.NewRateLimiter(cfg.RateLimit)
		limit, stopLimiter = rl.Limit, rl.Stop
	}

	mux := http.NewServeMux()

	health := rest.NewHealthHandler(BuildVersion(), rest.Probe{Name: "database", Target: db})
	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/me", rest.NewMeHandler(gate).Me)
	rest.NewHandler(services, blobs.MaxUploadBytes(), gate.LoginPath(), logger).Register(mux, limit)

	// Auth sits outside Logger so that request lines carry the user ID.
	handler = middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(verifier),
		middleware.Logger(logger),
	)(mux)

	stop = func() {
		stopLimiter()
		dashboardPages.Stop()
		resumePages.Stop()
		jobsPages.Stop()
		interviewPages.Stop()
	}
	return handler, stop, nil
}
