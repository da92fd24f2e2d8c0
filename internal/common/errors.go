// Package common defines shared constants and sentinel errors used across
// the catalog service. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrorDuplicateEmail = errors.New("email already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Credential errors. Unknown email and wrong password deliberately share
	// ErrorInvalidCredentials so account existence does not leak at login.
	ErrorMissingCredentials = errors.New("missing credentials")
	ErrorInvalidCredentials = errors.New("invalid credentials")

	// Request-authorization errors.
	ErrorNotAuthenticated = errors.New("not authenticated")
	ErrorAccountNotFound  = errors.New("account not found")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")

	// Validation errors.
	ErrorValidation = errors.New("validation error")
)
