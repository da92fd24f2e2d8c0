package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

const seedPayload = `{
  "products": [
    {"title": "Phone", "description": "A phone", "price": 499.99,
     "discountPercentage": 5.5, "rating": 4.2, "stock": 10, "brand": "Acme",
     "category": "smartphones", "thumbnail": "http://img/t.jpg",
     "images": ["http://img/1.jpg"]},
    {"title": "No brand", "description": "Incomplete", "price": 10,
     "category": "misc", "thumbnail": "http://img/t.jpg"},
    {"title": "No price", "description": "Incomplete", "brand": "Acme",
     "category": "misc", "thumbnail": "http://img/t.jpg"}
  ]
}`

func newSeedService(t *testing.T, repo *fakeProductsRepo, url string) (*SeedService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewSeedService(db, &fakeRepoMgr{products: repo}, url), mock
}

func TestSeedImport_FiltersIncompleteRecords(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(seedPayload))
	}))
	defer srv.Close()

	repo := &fakeProductsRepo{countOut: 0}
	s, mock := newSeedService(t, repo, srv.URL)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := s.Import(context.Background(), false)
	if err != nil {
		t.Fatalf("Import error: %v", err)
	}

	if result.Imported != 1 || result.Skipped != 2 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if len(repo.batch) != 1 || repo.batch[0].Name != "Phone" {
		t.Fatalf("unexpected batch: %+v", repo.batch)
	}
	if repo.batch[0].Price != 499.99 || repo.batch[0].Images[0] != "http://img/1.jpg" {
		t.Fatalf("upstream fields not mapped: %+v", repo.batch[0])
	}
}

func TestSeedImport_AlreadySeededShortCircuits(t *testing.T) {
	fetched := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched = true
	}))
	defer srv.Close()

	repo := &fakeProductsRepo{countOut: 7}
	s, _ := newSeedService(t, repo, srv.URL)

	result, err := s.Import(context.Background(), false)
	if err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if !result.AlreadySeeded || result.Imported != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if fetched {
		t.Fatal("seed source must not be fetched when the catalog is populated")
	}
}

func TestSeedImport_ClearDeletesFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(seedPayload))
	}))
	defer srv.Close()

	repo := &fakeProductsRepo{countOut: 7}
	s, mock := newSeedService(t, repo, srv.URL)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := s.Import(context.Background(), true)
	if err != nil {
		t.Fatalf("Import error: %v", err)
	}
	if !repo.deletedAll {
		t.Fatal("clear must delete existing products")
	}
	if !result.Cleared || result.Imported != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestSeedImport_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	repo := &fakeProductsRepo{}
	s, _ := newSeedService(t, repo, srv.URL)

	if _, err := s.Import(context.Background(), false); err == nil {
		t.Fatal("expected error on upstream failure")
	}
}

func TestSeedImport_EmptyUpstream(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"products": []}`))
	}))
	defer srv.Close()

	repo := &fakeProductsRepo{}
	s, _ := newSeedService(t, repo, srv.URL)

	if _, err := s.Import(context.Background(), false); err == nil {
		t.Fatal("expected error on empty upstream response")
	}
}
