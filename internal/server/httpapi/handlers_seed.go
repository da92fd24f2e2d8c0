package httpapi

import (
	"net/http"

	"github.com/go-chi/render"
)

func (s *HTTPServer) seedProducts(w http.ResponseWriter, r *http.Request) {
	clear := r.URL.Query().Get("clear") == "true"

	result, err := s.seed.Import(r.Context(), clear)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	message := "Products seeded successfully!"
	if result.AlreadySeeded {
		message = "Products already exist, skipping seed."
	}

	render.JSON(w, r, render.M{
		"status":  "success",
		"message": message,
		"data":    result,
	})
}
