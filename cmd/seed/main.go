// Seeds the products collection with randomized sample data. Existing
// products are cleared first.
package main

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/productcatalog/catalog-api/internal/core/domain"
	"github.com/productcatalog/catalog-api/internal/infrastructure/config"
	mongodb "github.com/productcatalog/catalog-api/internal/infrastructure/db/mongo"
	"github.com/productcatalog/catalog-api/pkg/logger"
)

const seedCount = 100

var categories = []string{
	"Electronics", "Clothing", "Books", "Home & Garden",
	"Sports", "Beauty", "Toys", "Automotive",
}

var productNames = []string{
	"Smartphone", "Laptop", "Headphones", "T-Shirt", "Jeans", "Sneakers", "Novel", "Cookbook",
	"Chair", "Table", "Lamp", "Basketball", "Tennis Racket", "Lipstick", "Shampoo", "Action Figure",
	"Board Game", "Car Phone Mount", "Bluetooth Speaker", "Tablet", "Watch", "Sunglasses", "Backpack",
	"Coffee Maker", "Blender", "Microwave", "TV", "Gaming Console", "Keyboard", "Mouse", "Monitor",
	"Dress", "Jacket", "Boots", "Hat", "Gloves", "Scarf", "Textbook", "Magazine", "Journal",
	"Sofa", "Bed", "Pillow", "Blanket", "Curtains", "Mirror", "Soccer Ball", "Golf Club",
	"Yoga Mat", "Dumbbells", "Perfume", "Face Cream", "Toothbrush", "Puzzle", "Doll",
	"Remote Control Car", "LEGO Set", "Phone Case", "Charger", "Power Bank", "Camera",
}

func randomProduct(index int) domain.Product {
	price := math.Round((rand.Float64()*999+1)*100) / 100
	return domain.Product{
		Name:     fmt.Sprintf("%s %d", productNames[rand.IntN(len(productNames))], index+1),
		Price:    price,
		Category: categories[rand.IntN(len(categories))],
		InStock:  rand.Float64() > 0.2,
	}
}

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	products := make([]domain.Product, seedCount)
	for i := range products {
		products[i] = randomProduct(i)
	}

	repo := mongodb.NewProductRepository(db)
	if err := repo.Reseed(ctx, products); err != nil {
		log.Fatal().Err(err).Msg("seeding failed")
	}

	log.Info().Int("count", seedCount).Msg("products seeded")

	for i, p := range products[:5] {
		stock := "In Stock"
		if !p.InStock {
			stock = "Out of Stock"
		}
		log.Info().Msgf("%d. %s - $%.2f - %s - %s", i+1, p.Name, p.Price, p.Category, stock)
	}
}
