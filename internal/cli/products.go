package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// List fetches the catalog and prints one line per product.
func (a *App) List(ctx context.Context) error {
	items, err := a.api.products(ctx)
	if err != nil {
		log.Printf("List unsuccessful: %s", err.Error())
		return err
	}

	if len(items) == 0 {
		fmt.Println("The catalog is empty.")
		return nil
	}

	for _, p := range items {
		fmt.Printf("%s  %-30s %10.2f  %s/%s (stock: %d)\n",
			p.ID, p.Name, p.Price, p.Brand, p.Category, p.Stock)
	}
	return nil
}

// Show prompts for a product id and prints the full record.
func (a *App) Show(ctx context.Context) error {
	id, err := getSimpleText(a.reader, "Enter product id", os.Stdout)
	if err != nil {
		return err
	}

	p, err := a.api.productByID(ctx, id)
	if err != nil {
		log.Printf("Show unsuccessful: %s", err.Error())
		return err
	}

	fmt.Printf("Name:      %s\nPrice:     %.2f\nBrand:     %s\nCategory:  %s\nStock:     %d\nThumbnail: %s\n",
		p.Name, p.Price, p.Brand, p.Category, p.Stock, p.Thumbnail)
	return nil
}

// Seed asks the server to import the third-party catalog.
func (a *App) Seed(ctx context.Context) error {
	answer, err := getSimpleText(a.reader, "Clear existing products first? (y/N)", os.Stdout)
	if err != nil {
		return err
	}

	message, err := a.api.seed(ctx, answer == "y" || answer == "Y")
	if err != nil {
		log.Printf("Seed unsuccessful: %s", err.Error())
		return err
	}

	fmt.Println(message)
	return nil
}
