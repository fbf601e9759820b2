package rest

import "net/http"

// Dashboard loads the caller's overview.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Dashboard.Load(r.Context())
	respondPage(h.pages, w, r, snap, err)
}
