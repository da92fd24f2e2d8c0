// Package services contains server-side business logic. This file implements
// UserService, which handles signup and login and issues identity tokens.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/server/auth"
	"github.com/andrejsk/prodcatalog/internal/server/models"
	"github.com/andrejsk/prodcatalog/internal/server/repositories/repomanager"
)

// UserService provides authentication-related operations:
// - Register: create a user and mint a token
// - Login: verify credentials and mint a token
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
}

// NewUserService constructs a UserService using repositories and the token codec.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, codec *auth.Codec) *UserService {
	return &UserService{db: db, repomanager: m, codec: codec}
}

// Register creates a new user with a freshly computed password hash and
// returns a token for the new subject. The returned user never carries the
// password hash. A duplicate email surfaces as common.ErrorDuplicateEmail.
func (s *UserService) Register(ctx context.Context, name, email, password string) (string, *models.User, error) {
	if name == "" || email == "" || password == "" {
		return "", nil, common.ErrorMissingCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.Create(ctx, &models.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		if errors.Is(err, common.ErrorDuplicateEmail) {
			return "", nil, common.ErrorDuplicateEmail
		}
		return "", nil, common.ErrorInternal
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, stripHash(user), nil
}

// Login verifies the provided credentials and, on success, returns a new
// token. An unknown email and a wrong password both yield the single
// common.ErrorInvalidCredentials so account existence does not leak.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	if email == "" || password == "" {
		return "", nil, common.ErrorMissingCredentials
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", nil, common.ErrorInvalidCredentials
		}
		return "", nil, common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", nil, common.ErrorInvalidCredentials
	}

	token, err := s.codec.Issue(user.ID)
	if err != nil {
		return "", nil, common.ErrorInternal
	}

	return token, stripHash(user), nil
}

// stripHash clears the stored digest before the record leaves the service.
// The JSON tag on the field already hides it; this keeps it out of logs too.
func stripHash(user *models.User) *models.User {
	user.PasswordHash = ""
	return user
}
