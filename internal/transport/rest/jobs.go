package rest

import "net/http"

type discoverRequest struct {
	Query string `json:"query"`
}

// Jobs lists the caller's job matches.
func (h *Handler) Jobs(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Jobs.Load(r.Context())
	respondPage(h.pages, w, r, snap, err)
}

// DiscoverJobs runs job discovery. The body and its query are optional.
func (h *Handler) DiscoverJobs(w http.ResponseWriter, r *http.Request) {
	var req discoverRequest
	if err := decodeJSON(w, r, &req, true); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	snap, err := h.svc.Jobs.Discover(r.Context(), req.Query)
	respondPage(h.pages, w, r, snap, err)
}
