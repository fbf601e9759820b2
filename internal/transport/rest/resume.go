package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/dawoodjaved5/soventure-project/internal/domain"
	"github.com/dawoodjaved5/soventure-project/internal/service/page"
	"github.com/dawoodjaved5/soventure-project/internal/service/resume"
)

const (
	uploadField = "file"
	// multipartSlack covers the multipart framing around the file itself.
	multipartSlack = 64 << 10
)

// Resume loads the upload page.
func (h *Handler) Resume(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Resume.Load(r.Context())
	respondPage(h.pages, w, r, snap, err)
}

// UploadResume accepts a multipart form with the résumé in the "file"
// field. Size and type are checked by the controller so that the failure
// shows up on the page; a body far beyond the ceiling is cut off here.
func (h *Handler) UploadResume(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+multipartSlack)

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, page.UserMessage(domain.ErrPayloadTooLarge))
		case errors.Is(err, http.ErrMissingFile):
			writeError(w, http.StatusBadRequest, "Please choose a file to upload")
		default:
			writeError(w, http.StatusBadRequest, "invalid upload form")
		}
		return
	}
	defer file.Close()

	// One byte past the ceiling is enough for the controller to reject it.
	data, err := io.ReadAll(io.LimitReader(file, h.maxUpload+1))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read the uploaded file")
		return
	}

	snap, err := h.svc.Resume.Upload(r.Context(), resume.UploadInput{
		File:        data,
		ContentType: header.Header.Get("Content-Type"),
	})
	respondPage(h.pages, w, r, snap, err)
}

// ParseResume extracts structured data from the stored résumé.
func (h *Handler) ParseResume(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Resume.Parse(r.Context())
	respondPage(h.pages, w, r, snap, err)
}

// DeleteResume removes the stored résumé.
func (h *Handler) DeleteResume(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Resume.Delete(r.Context())
	respondPage(h.pages, w, r, snap, err)
}
