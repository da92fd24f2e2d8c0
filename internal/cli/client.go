package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// apiClient is a thin wrapper over the catalog HTTP API. After a successful
// Register or Login it holds the identity token and sends it as a Bearer
// header on every subsequent call.
type apiClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

func newAPIClient(baseURL string) *apiClient {
	return &apiClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type product struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Brand     string  `json:"brand"`
	Category  string  `json:"category"`
	Stock     int64   `json:"stock"`
	Thumbnail string  `json:"thumbnail"`
}

type apiFailure struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (c *apiClient) do(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		var failure apiFailure
		if err := json.Unmarshal(payload, &failure); err == nil && failure.Message != "" {
			return fmt.Errorf("%s", failure.Message)
		}
		return fmt.Errorf("server returned %s", resp.Status)
	}

	if out != nil {
		return json.Unmarshal(payload, out)
	}
	return nil
}

func (c *apiClient) register(ctx context.Context, name, email string, password []byte) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/users/signup", map[string]string{
		"name": name, "email": email, "password": string(password),
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *apiClient) login(ctx context.Context, email string, password []byte) error {
	var resp struct {
		Token string `json:"token"`
	}
	err := c.do(ctx, http.MethodPost, "/api/users/login", map[string]string{
		"email": email, "password": string(password),
	}, &resp)
	if err != nil {
		return err
	}
	c.token = resp.Token
	return nil
}

func (c *apiClient) products(ctx context.Context) ([]product, error) {
	var resp struct {
		Results int `json:"results"`
		Data    struct {
			Products []product `json:"products"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data.Products, nil
}

func (c *apiClient) productByID(ctx context.Context, id string) (*product, error) {
	var resp struct {
		Data struct {
			Product product `json:"product"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/products/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data.Product, nil
}

func (c *apiClient) seed(ctx context.Context, clear bool) (string, error) {
	path := "/api/seed/products"
	if clear {
		path += "?clear=true"
	}
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

func (c *apiClient) createUpload(ctx context.Context) (key string, uploadURL string, err error) {
	var resp struct {
		Data struct {
			Key       string `json:"key"`
			UploadURL string `json:"uploadUrl"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/uploads", nil, &resp); err != nil {
		return "", "", err
	}
	return resp.Data.Key, resp.Data.UploadURL, nil
}

func (c *apiClient) imageURL(ctx context.Context, key string) (string, error) {
	var resp struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/uploads/"+key, nil, &resp); err != nil {
		return "", err
	}
	return resp.Data.URL, nil
}
