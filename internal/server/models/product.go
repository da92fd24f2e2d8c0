package models

import "time"

// Product is a catalog listing.
type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	Price              float64   `json:"price"`
	DiscountPercentage float64   `json:"discountPercentage"`
	Rating             float64   `json:"rating"`
	Stock              int64     `json:"stock"`
	Brand              string    `json:"brand"`
	Category           string    `json:"category"`
	Thumbnail          string    `json:"thumbnail"`
	Images             []string  `json:"images"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
