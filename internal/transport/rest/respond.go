package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
)

// errorResponse is the body of every failure that has no page snapshot.
type errorResponse struct {
	Error           string `json:"error"`
	RedirectToLogin bool   `json:"redirectToLogin,omitempty"`
	LoginPath       string `json:"loginPath,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// statusFor maps a controller error onto an HTTP status.
func statusFor(err error) int {
	var taskErr *domain.TaskFailure
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrAuthRequired):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrActionInFlight):
		return http.StatusConflict
	case errors.As(err, &taskErr):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// pageResponder writes page snapshots. The snapshot is the body in both
// the success and the failure case, so the front end always receives the
// page state it has to render.
type pageResponder struct {
	loginPath string
	log       *slog.Logger
}

type pageBody[T any] struct {
	page.Snapshot[T]
	LoginPath string `json:"loginPath,omitempty"`
}

func respondPage[T any](rp pageResponder, w http.ResponseWriter, r *http.Request, snap page.Snapshot[T], err error) {
	status := statusFor(err)
	if err != nil {
		if snap.Error == "" && !snap.RedirectToLogin {
			snap.Error = page.UserMessage(err)
		}
		logFailure(rp.log, r, status, err)
	}

	body := pageBody[T]{Snapshot: snap}
	if snap.RedirectToLogin {
		body.LoginPath = rp.loginPath
	}
	writeJSON(w, status, body)
}

func logFailure(log *slog.Logger, r *http.Request, status int, err error) {
	attrs := []slog.Attr{
		slog.String("path", r.URL.Path),
		slog.Int("status", status),
		slog.String("error", err.Error()),
	}
	switch {
	case status >= http.StatusInternalServerError && status != http.StatusBadGateway && status != http.StatusServiceUnavailable:
		log.LogAttrs(r.Context(), slog.LevelError, "request failed", attrs...)
	case status >= http.StatusBadGateway:
		log.LogAttrs(r.Context(), slog.LevelWarn, "request failed", attrs...)
	default:
		log.LogAttrs(r.Context(), slog.LevelDebug, "request rejected", attrs...)
	}
}
