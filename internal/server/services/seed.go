package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/andrejsk/prodcatalog/internal/dbx"
	"github.com/andrejsk/prodcatalog/internal/server/models"
	"github.com/andrejsk/prodcatalog/internal/server/repositories/repomanager"
)

// SeedService bootstraps an empty catalog from a third-party product API
// (dummyjson.com by default). The import is one-time: if the catalog already
// holds products it does nothing unless asked to clear first.
type SeedService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	sourceURL   string
	httpClient  *http.Client
}

func NewSeedService(db *sql.DB, m repomanager.RepositoryManager, sourceURL string) *SeedService {
	return &SeedService{
		db:          db,
		repomanager: m,
		sourceURL:   sourceURL,
		httpClient:  http.DefaultClient,
	}
}

// SeedResult reports what the import did.
type SeedResult struct {
	Imported      int  `json:"imported"`
	Skipped       int  `json:"skipped"`
	AlreadySeeded bool `json:"alreadySeeded"`
	Cleared       bool `json:"cleared"`
}

// seedProduct mirrors the upstream dummyjson record shape. Price is a
// pointer so records without one can be filtered out.
type seedProduct struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              *float64 `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int64    `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

type seedResponse struct {
	Products []seedProduct `json:"products"`
}

// Import runs the catalog bootstrap. With clear set, existing products are
// removed first; clearing and inserting share one transaction so a failed
// import never leaves the catalog half-empty.
func (s *SeedService) Import(ctx context.Context, clear bool) (*SeedResult, error) {
	result := &SeedResult{}

	if !clear {
		count, err := s.repomanager.Products(s.db).Count(ctx)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			result.AlreadySeeded = true
			return result, nil
		}
	}

	upstream, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(upstream) == 0 {
		return nil, fmt.Errorf("no products found in the seed source response")
	}

	batch := make([]*models.Product, 0, len(upstream))
	for _, sp := range upstream {
		if !sp.complete() {
			result.Skipped++
			continue
		}
		batch = append(batch, &models.Product{
			Name:               sp.Title,
			Description:        sp.Description,
			Price:              *sp.Price,
			DiscountPercentage: sp.DiscountPercentage,
			Rating:             sp.Rating,
			Stock:              sp.Stock,
			Brand:              sp.Brand,
			Category:           sp.Category,
			Thumbnail:          sp.Thumbnail,
			Images:             sp.Images,
		})
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Products(tx)
		if clear {
			if err := repo.DeleteAll(ctx); err != nil {
				return err
			}
			result.Cleared = true
		}
		return repo.CreateBatch(ctx, batch)
	})
	if err != nil {
		return nil, err
	}

	result.Imported = len(batch)
	return result, nil
}

func (s *SeedService) fetch(ctx context.Context) ([]seedProduct, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.sourceURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching seed source: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("seed source returned %s", resp.Status)
	}

	var decoded seedResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding seed source response: %w", err)
	}

	return decoded.Products, nil
}

// complete reports whether the upstream record has every field the catalog
// schema requires.
func (sp *seedProduct) complete() bool {
	return sp.Title != "" &&
		sp.Description != "" &&
		sp.Price != nil &&
		sp.Brand != "" &&
		sp.Category != "" &&
		sp.Thumbnail != ""
}
