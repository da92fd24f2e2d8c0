package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/dbx"
	"github.com/andrejsk/prodcatalog/internal/server/auth"
	"github.com/andrejsk/prodcatalog/internal/server/models"
	productsrepo "github.com/andrejsk/prodcatalog/internal/server/repositories/products"
	usersrepo "github.com/andrejsk/prodcatalog/internal/server/repositories/users"
)

// --- fakes ---

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	byEmailOut *models.User
	byEmailErr error

	byIDOut *models.User
	byIDErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-new"
	u.CreatedAt = time.Now()
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.byEmailErr != nil {
		return nil, f.byEmailErr
	}
	return f.byEmailOut, nil
}

func (f *fakeUsersRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if f.byIDErr != nil {
		return nil, f.byIDErr
	}
	return f.byIDOut, nil
}

type fakeRepoMgr struct {
	users    usersrepo.Repository
	products productsrepo.Repository
}

func (m *fakeRepoMgr) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeRepoMgr) Users(db dbx.DBTX) usersrepo.Repository { return m.users }

func (m *fakeRepoMgr) Products(db dbx.DBTX) productsrepo.Repository { return m.products }

func newTestCodec(t *testing.T) *auth.Codec {
	t.Helper()
	c, err := auth.NewCodec([]byte("k"), time.Hour)
	if err != nil {
		t.Fatalf("NewCodec error: %v", err)
	}
	return c
}

// --- Register ---

func TestRegister_Success(t *testing.T) {
	repo := &fakeUsersRepo{}
	codec := newTestCodec(t)
	s := NewUserService(nil, &fakeRepoMgr{users: repo}, codec)

	token, user, err := s.Register(context.Background(), "Ann", "ann@x.com", "secret123")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}

	subject, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if subject != "u-new" {
		t.Fatalf("token subject mismatch: got %q", subject)
	}

	if user.PasswordHash != "" {
		t.Fatal("returned user must not carry the password hash")
	}
	if repo.created == nil {
		t.Fatal("repository did not receive the new record")
	}
	if repo.created.PasswordHash == "secret123" {
		t.Fatal("plaintext must never be stored")
	}
	if !auth.CheckPassword("secret123", repo.created.PasswordHash) {
		t.Fatal("stored hash does not verify the original password")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	s := NewUserService(nil, &fakeRepoMgr{users: &fakeUsersRepo{}}, newTestCodec(t))

	for _, tc := range []struct{ name, email, password string }{
		{"", "ann@x.com", "pw"},
		{"Ann", "", "pw"},
		{"Ann", "ann@x.com", ""},
	} {
		_, _, err := s.Register(context.Background(), tc.name, tc.email, tc.password)
		if !errors.Is(err, common.ErrorMissingCredentials) {
			t.Fatalf("want common.ErrorMissingCredentials for %+v, got %v", tc, err)
		}
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{createErr: common.ErrorDuplicateEmail}
	s := NewUserService(nil, &fakeRepoMgr{users: repo}, newTestCodec(t))

	token, _, err := s.Register(context.Background(), "Ann", "ann@x.com", "secret123")
	if !errors.Is(err, common.ErrorDuplicateEmail) {
		t.Fatalf("want common.ErrorDuplicateEmail, got %v", err)
	}
	if token != "" {
		t.Fatal("no token must be issued on duplicate email")
	}
}

func TestRegister_RepoInfraError(t *testing.T) {
	repo := &fakeUsersRepo{createErr: errors.New("db down")}
	s := NewUserService(nil, &fakeRepoMgr{users: repo}, newTestCodec(t))

	_, _, err := s.Register(context.Background(), "Ann", "ann@x.com", "secret123")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want common.ErrorInternal, got %v", err)
	}
}

// --- Login ---

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	return &models.User{ID: "u-1", Name: "Ann", Email: "ann@x.com", PasswordHash: hash}
}

func TestLogin_Success(t *testing.T) {
	repo := &fakeUsersRepo{byEmailOut: storedUser(t, "secret123")}
	codec := newTestCodec(t)
	s := NewUserService(nil, &fakeRepoMgr{users: repo}, codec)

	token, user, err := s.Login(context.Background(), "ann@x.com", "secret123")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	subject, err := codec.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if subject != "u-1" {
		t.Fatalf("token subject mismatch: got %q", subject)
	}
	if user.PasswordHash != "" {
		t.Fatal("returned user must not carry the password hash")
	}
}

func TestLogin_MissingFields(t *testing.T) {
	s := NewUserService(nil, &fakeRepoMgr{users: &fakeUsersRepo{}}, newTestCodec(t))

	for _, tc := range []struct{ email, password string }{
		{"", "pw"},
		{"ann@x.com", ""},
		{"", ""},
	} {
		_, _, err := s.Login(context.Background(), tc.email, tc.password)
		if !errors.Is(err, common.ErrorMissingCredentials) {
			t.Fatalf("want common.ErrorMissingCredentials for %+v, got %v", tc, err)
		}
	}
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLogin_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	unknownRepo := &fakeUsersRepo{byEmailErr: common.ErrorNotFound}
	wrongPwRepo := &fakeUsersRepo{byEmailOut: storedUser(t, "right-password")}
	codec := newTestCodec(t)

	_, _, errUnknown := NewUserService(nil, &fakeRepoMgr{users: unknownRepo}, codec).
		Login(context.Background(), "ghost@x.com", "whatever")
	_, _, errWrongPw := NewUserService(nil, &fakeRepoMgr{users: wrongPwRepo}, codec).
		Login(context.Background(), "ann@x.com", "wrong-password")

	if !errors.Is(errUnknown, common.ErrorInvalidCredentials) {
		t.Fatalf("unknown email: want common.ErrorInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, common.ErrorInvalidCredentials) {
		t.Fatalf("wrong password: want common.ErrorInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("error payloads differ: %q vs %q", errUnknown, errWrongPw)
	}
}

func TestLogin_RepoInfraError(t *testing.T) {
	repo := &fakeUsersRepo{byEmailErr: errors.New("db down")}
	s := NewUserService(nil, &fakeRepoMgr{users: repo}, newTestCodec(t))

	_, _, err := s.Login(context.Background(), "ann@x.com", "secret123")
	if !errors.Is(err, common.ErrorInternal) {
		t.Fatalf("want common.ErrorInternal, got %v", err)
	}
}
