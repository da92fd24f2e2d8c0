package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/server/models"
	"github.com/andrejsk/prodcatalog/internal/server/services"
)

type productRequest struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

type productPatchRequest struct {
	Name               *string  `json:"name"`
	Description        *string  `json:"description"`
	Price              *float64 `json:"price"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	Rating             *float64 `json:"rating"`
	Stock              *int64   `json:"stock"`
	Brand              *string  `json:"brand"`
	Category           *string  `json:"category"`
	Thumbnail          *string  `json:"thumbnail"`
	Images             []string `json:"images"`
}

func (s *HTTPServer) listProducts(w http.ResponseWriter, r *http.Request) {
	items, err := s.products.List(r.Context())
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{
		"status":  "success",
		"results": len(items),
		"data":    render.M{"products": items},
	})
}

func (s *HTTPServer) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := s.products.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{
		"status": "success",
		"data":   render.M{"product": product},
	})
}

func (s *HTTPServer) createProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, common.ErrorValidation)
		return
	}

	product, err := s.products.Create(r.Context(), &models.Product{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Rating:             req.Rating,
		Stock:              req.Stock,
		Brand:              req.Brand,
		Category:           req.Category,
		Thumbnail:          req.Thumbnail,
		Images:             req.Images,
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.Status(r, http.StatusCreated)
	render.JSON(w, r, render.M{
		"status": "success",
		"data":   render.M{"product": product},
	})
}

func (s *HTTPServer) updateProduct(w http.ResponseWriter, r *http.Request) {
	var req productPatchRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, common.ErrorValidation)
		return
	}

	product, err := s.products.Update(r.Context(), chi.URLParam(r, "id"), &services.ProductPatch{
		Name:               req.Name,
		Description:        req.Description,
		Price:              req.Price,
		DiscountPercentage: req.DiscountPercentage,
		Rating:             req.Rating,
		Stock:              req.Stock,
		Brand:              req.Brand,
		Category:           req.Category,
		Thumbnail:          req.Thumbnail,
		Images:             req.Images,
	})
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	render.JSON(w, r, render.M{
		"status": "success",
		"data":   render.M{"product": product},
	})
}

func (s *HTTPServer) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := s.products.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.renderError(w, r, err)
		return
	}

	render.NoContent(w, r)
}
