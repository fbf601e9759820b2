package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dawoodjaved5/soventure-project/internal/service/dashboard"
	"github.com/dawoodjaved5/soventure-project/internal/service/interview"
	"github.com/dawoodjaved5/soventure-project/internal/service/jobs"
	"github.com/dawoodjaved5/soventure-project/internal/service/resume"
)

type dashboardService interface {
	Load(ctx context.Context) (dashboard.Snapshot, error)
	Acknowledge(ctx context.Context) (dashboard.Snapshot, error)
}

type resumeService interface {
	Load(ctx context.Context) (resume.Snapshot, error)
	Upload(ctx context.Context, in resume.UploadInput) (resume.Snapshot, error)
	Parse(ctx context.Context) (resume.Snapshot, error)
	Delete(ctx context.Context) (resume.Snapshot, error)
	Acknowledge(ctx context.Context) (resume.Snapshot, error)
}

type jobsService interface {
	Load(ctx context.Context) (jobs.Snapshot, error)
	Discover(ctx context.Context, query string) (jobs.Snapshot, error)
	Acknowledge(ctx context.Context) (jobs.Snapshot, error)
}

type interviewService interface {
	Load(ctx context.Context) (interview.Snapshot, error)
	Generate(ctx context.Context, in interview.GenerateInput) (interview.Snapshot, error)
	Acknowledge(ctx context.Context) (interview.Snapshot, error)
}

// Services groups the page controllers served over HTTP.
type Services struct {
	Dashboard dashboardService
	Resume    resumeService
	Jobs      jobsService
	Interview interviewService
}

// Handler serves the page endpoints of the front end.
type Handler struct {
	svc       Services
	maxUpload int64
	pages     pageResponder
	log       *slog.Logger
}

// NewHandler creates a Handler. maxUpload is the résumé size ceiling in
// bytes; loginPath is returned to callers that must sign in.
func NewHandler(svc Services, maxUpload int64, loginPath string, logger *slog.Logger) *Handler {
	log := logger.With("handler", "pages")
	return &Handler{
		svc:       svc,
		maxUpload: maxUpload,
		pages:     pageResponder{loginPath: loginPath, log: log},
		log:       log,
	}
}

// Register mounts every page route on mux. limit wraps the routes that
// start remote work; it may be nil.
func (h *Handler) Register(mux *http.ServeMux, limit func(http.Handler) http.Handler) {
	action := func(fn http.HandlerFunc) http.Handler {
		if limit == nil {
			return fn
		}
		return limit(fn)
	}

	mux.HandleFunc("GET /api/dashboard", h.Dashboard)

	mux.HandleFunc("GET /api/resume", h.Resume)
	mux.Handle("POST /api/resume", action(h.UploadResume))
	mux.Handle("POST /api/resume/parse", action(h.ParseResume))
	mux.Handle("DELETE /api/resume", action(h.DeleteResume))

	mux.HandleFunc("GET /api/jobs", h.Jobs)
	mux.Handle("POST /api/jobs/discover", action(h.DiscoverJobs))

	mux.HandleFunc("GET /api/interview", h.Interview)
	mux.Handle("POST /api/interview", action(h.GenerateInterview))

	mux.HandleFunc("POST /api/pages/{page}/ack", h.Acknowledge)
}

// Acknowledge clears the failure shown on the named page.
func (h *Handler) Acknowledge(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.PathValue("page") {
	case "dashboard":
		snap, err := h.svc.Dashboard.Acknowledge(ctx)
		respondPage(h.pages, w, r, snap, err)
	case "resume":
		snap, err := h.svc.Resume.Acknowledge(ctx)
		respondPage(h.pages, w, r, snap, err)
	case "jobs":
		snap, err := h.svc.Jobs.Acknowledge(ctx)
		respondPage(h.pages, w, r, snap, err)
	case "interview":
		snap, err := h.svc.Interview.Acknowledge(ctx)
		respondPage(h.pages, w, r, snap, err)
	default:
		writeError(w, http.StatusNotFound, "unknown page")
	}
}
