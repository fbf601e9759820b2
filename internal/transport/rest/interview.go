package rest

import (
	"net/http"

	"github.com/dawoodjaved5/soventure-project/internal/service/interview"
)

type generateRequest struct {
	Company   string `json:"company"`
	Role      string `json:"role"`
	TechStack string `json:"techStack"`
}

// Interview lists recent interview sessions.
func (h *Handler) Interview(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Interview.Load(r.Context())
	respondPage(h.pages, w, r, snap, err)
}

// GenerateInterview asks for a question set for the submitted company,
// role and comma separated tech stack.
func (h *Handler) GenerateInterview(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req, false); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Interview.Generate(r.Context(), interview.GenerateInput{
		Company:   req.Company,
		Role:      req.Role,
		TechStack: req.TechStack,
	})
	respondPage(h.pages, w, r, snap, err)
}
