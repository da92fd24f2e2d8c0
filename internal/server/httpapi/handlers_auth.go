package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/server/models"
)

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Status string `json:"status"`
	Token  string `json:"token"`
	Data   struct {
		User *models.User `json:"user"`
	} `json:"data"`
}

func (s *HTTPServer) renderToken(w http.ResponseWriter, r *http.Request, status int, token string, user *models.User) {
	resp := tokenResponse{Status: "success", Token: token}
	resp.Data.User = user
	render.Status(r, status)
	render.JSON(w, r, resp)
}

func (s *HTTPServer) health(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, render.M{"status": "success", "message": "Product catalog API is running"})
}

func (s *HTTPServer) signup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, common.ErrorMissingCredentials)
		return
	}

	token, user, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderToken(w, r, http.StatusCreated, token, user)
}

func (s *HTTPServer) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		s.renderError(w, r, common.ErrorMissingCredentials)
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(w, r, err)
		return
	}

	s.renderToken(w, r, http.StatusOK, token, user)
}
