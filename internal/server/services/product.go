package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/andrejsk/prodcatalog/internal/common"
	"github.com/andrejsk/prodcatalog/internal/dbx"
	"github.com/andrejsk/prodcatalog/internal/server/models"
	"github.com/andrejsk/prodcatalog/internal/server/repositories/repomanager"
)

// ProductService provides CRUD over catalog listings. Reads are public;
// the HTTP layer gates mutations behind a verified identity.
type ProductService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewProductService(db *sql.DB, m repomanager.RepositoryManager) *ProductService {
	return &ProductService{db: db, repomanager: m}
}

// ProductPatch carries a partial update; nil fields keep their stored value.
type ProductPatch struct {
	Name               *string
	Description        *string
	Price              *float64
	DiscountPercentage *float64
	Rating             *float64
	Stock              *int64
	Brand              *string
	Category           *string
	Thumbnail          *string
	Images             []string
}

func (s *ProductService) List(ctx context.Context) ([]*models.Product, error) {
	return s.repomanager.Products(s.db).List(ctx)
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	return s.repomanager.Products(s.db).GetByID(ctx, id)
}

func (s *ProductService) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if err := validateProduct(product); err != nil {
		return nil, err
	}
	return s.repomanager.Products(s.db).Create(ctx, product)
}

// Update applies a partial patch with read-modify-write semantics inside a
// transaction, so concurrent patches never interleave field-by-field.
func (s *ProductService) Update(ctx context.Context, id string, patch *ProductPatch) (*models.Product, error) {
	var updated *models.Product

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Products(tx)

		current, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}

		applyPatch(current, patch)
		if err := validateProduct(current); err != nil {
			return err
		}

		updated, err = repo.Update(ctx, current)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repomanager.Products(s.db).Delete(ctx, id)
}

func applyPatch(p *models.Product, patch *ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.DiscountPercentage != nil {
		p.DiscountPercentage = *patch.DiscountPercentage
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Stock != nil {
		p.Stock = *patch.Stock
	}
	if patch.Brand != nil {
		p.Brand = *patch.Brand
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	if patch.Thumbnail != nil {
		p.Thumbnail = *patch.Thumbnail
	}
}

func validateProduct(p *models.Product) error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: a product name is required", common.ErrorValidation)
	case p.Description == "":
		return fmt.Errorf("%w: a product description is required", common.ErrorValidation)
	case p.Price < 0:
		return fmt.Errorf("%w: a product price must not be negative", common.ErrorValidation)
	case p.Rating < 0 || p.Rating > 5:
		return fmt.Errorf("%w: a product rating must be between 0 and 5", common.ErrorValidation)
	case p.Brand == "":
		return fmt.Errorf("%w: a product brand is required", common.ErrorValidation)
	case p.Category == "":
		return fmt.Errorf("%w: a product category is required", common.ErrorValidation)
	case p.Thumbnail == "":
		return fmt.Errorf("%w: a product thumbnail is required", common.ErrorValidation)
	}
	return nil
}
