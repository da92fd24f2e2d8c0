package cli

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFakeAPI(t *testing.T, handler http.HandlerFunc) *apiClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return newAPIClient(srv.URL)
}

func TestAPIClient_LoginStoresToken(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/login", r.URL.Path)
		io.WriteString(w, `{"status":"success","token":"tok-123","data":{"user":{"name":"Ann"}}}`)
	})

	err := client.login(context.Background(), "ann@example.com", []byte("pass"))
	require.NoError(t, err)
	assert.Equal(t, "tok-123", client.token)
}

func TestAPIClient_SendsBearerHeader(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		io.WriteString(w, `{"status":"success","message":"Products seeded successfully!"}`)
	})
	client.token = "tok-123"

	message, err := client.seed(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "Products seeded successfully!", message)
}

func TestAPIClient_SeedClearQuery(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "true", r.URL.Query().Get("clear"))
		io.WriteString(w, `{"status":"success","message":"ok"}`)
	})

	_, err := client.seed(context.Background(), true)
	require.NoError(t, err)
}

func TestAPIClient_SurfacesServerMessage(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"status":"fail","message":"Incorrect email or password!"}`)
	})

	err := client.login(context.Background(), "ann@example.com", []byte("bad"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Incorrect email or password!")
}

func TestAPIClient_Products(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"status":"success","results":1,
			"data":{"products":[{"id":"p-1","name":"Phone","price":499.99}]}}`)
	})

	items, err := client.products(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Phone", items[0].Name)
}

func TestAPIClient_CreateUpload(t *testing.T) {
	client := newFakeAPI(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"status":"success","data":{"key":"products/2024/5/1/abc","uploadUrl":"http://s3/put"}}`)
	})

	key, url, err := client.createUpload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "products/2024/5/1/abc", key)
	assert.Equal(t, "http://s3/put", url)
}
