package httpapi

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/render"

	"github.com/andrejsk/prodcatalog/internal/common"
)

// apiError is the uniform error body. Client mistakes carry status "fail",
// server-side failures carry status "error".
type apiError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func newError(message string) *apiError {
	return &apiError{Status: "fail", Message: message}
}

// renderError maps service-layer sentinel errors to HTTP responses. Anything
// unrecognized is treated as an internal failure: logged with detail, but
// answered with a fixed message that leaks nothing.
func (s *HTTPServer) renderError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	var body *apiError

	switch {
	case errors.Is(err, common.ErrorMissingCredentials):
		status = http.StatusBadRequest
		body = newError("Please provide all required fields!")
	case errors.Is(err, common.ErrorValidation):
		status = http.StatusBadRequest
		body = newError(validationMessage(err))
	case errors.Is(err, common.ErrorDuplicateEmail):
		status = http.StatusConflict
		body = newError("This email is already registered!")
	case errors.Is(err, common.ErrorInvalidCredentials):
		status = http.StatusUnauthorized
		body = newError("Incorrect email or password!")
	case errors.Is(err, common.ErrorNotAuthenticated):
		status = http.StatusUnauthorized
		body = newError("You are not logged in! Please log in to get access.")
	case errors.Is(err, common.ErrInvalidToken):
		status = http.StatusUnauthorized
		body = newError("Invalid token. Please log in again!")
	case errors.Is(err, common.ErrTokenExpired):
		status = http.StatusUnauthorized
		body = newError("Your token has expired! Please log in again.")
	case errors.Is(err, common.ErrorAccountNotFound):
		status = http.StatusUnauthorized
		body = newError("The user belonging to this token does no longer exist.")
	case errors.Is(err, common.ErrorNotFound):
		status = http.StatusNotFound
		body = newError("No product found with that ID!")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		status = http.StatusInternalServerError
		body = &apiError{Status: "error", Message: "Something went wrong!"}
	}

	render.Status(r, status)
	render.JSON(w, r, body)
}

// validationMessage strips the sentinel prefix so the client sees only the
// human-readable part ("a product name is required").
func validationMessage(err error) string {
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, common.ErrorValidation.Error()+": "); ok {
		return rest
	}
	return msg
}
