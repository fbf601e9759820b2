package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
)

type identityGate interface {
	CurrentIdentity(ctx context.Context) (domain.Identity, error)
	LoginPath() string
}

// MeHandler reports who the caller is.
type MeHandler struct {
	gate identityGate
}

// NewMeHandler creates a MeHandler.
func NewMeHandler(gate identityGate) *MeHandler {
	return &MeHandler{gate: gate}
}

type meResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	EmailVerified bool      `json:"emailVerified"`
	Provider      string    `json:"provider,omitempty"`
	LastSignInAt  time.Time `json:"lastSignInAt"`
}

// Me returns the signed-in identity or 401 with the login path.
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, err := h.gate.CurrentIdentity(r.Context())
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:           "please sign in",
			RedirectToLogin: true,
			LoginPath:       h.gate.LoginPath(),
		})
		return
	}

	writeJSON(w, http.StatusOK, meResponse{
		ID:            id.ID.String(),
		Email:         id.Email,
		EmailVerified: id.EmailVerified,
		Provider:      id.Provider,
		LastSignInAt:  id.LastSignInAt,
	})
}
