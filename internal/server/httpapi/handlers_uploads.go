package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// createUploadURL hands the client a storage key and a short-lived URL for
// PUTting the image bytes directly to object storage.
func (s *HTTPServer) createUploadURL(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.images.PresignedUploadURL(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{
		"status": "success",
		"data":   render.M{"key": key, "uploadUrl": url},
	})
}

// getImageURL resolves a stored object key (which contains slashes, hence
// the wildcard route) to a short-lived download URL.
func (s *HTTPServer) getImageURL(w http.ResponseWriter, r *http.Request) {
	url, err := s.images.PresignedImageURL(r.Context(), chi.URLParam(r, "*"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{
		"status": "success",
		"data":   render.M{"url": url},
	})
}
