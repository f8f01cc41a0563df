package store

import (
	"github.com/example/storefront/pkg/models"
	"github.com/shopspring/decimal"
)

// Seed loads a small development dataset: two users and a handful of
// products across a few categories.
func Seed(s *Store) {
	s.Users.Create(UserInput{Email: "admin@storefront.local", Name: "Store Admin", Role: models.RoleAdmin})
	s.Users.Create(UserInput{Email: "user@storefront.local", Name: "Store User", Role: models.RoleUser})

	s.Catalog.Create(models.ProductInput{
		Name:        "Aurora Wireless Headphones",
		Description: "Over-ear wireless headphones with active noise cancelling and 30-hour battery life.",
		Price:       decimal.NewFromFloat(349.99),
		Category:    "Electronics",
		Stock:       25,
		Brand:       "Aurora",
		Color:       "Black",
		Features:    []string{"Active Noise Cancelling", "30h Battery", "Bluetooth 5.2"},
		Specifications: map[string]string{
			"Driver":  "40mm",
			"Weight":  "254g",
			"Battery": "30 hours",
		},
	})
	s.Catalog.Create(models.ProductInput{
		Name:        "Trailhead Hiking Backpack 35L",
		Description: "Weather-resistant 35 litre pack with ventilated back panel and rain cover.",
		Price:       decimal.NewFromFloat(89.50),
		Category:    "Outdoors",
		Stock:       40,
		Brand:       "Trailhead",
		Color:       "Forest Green",
		Material:    "Ripstop Nylon",
	})
	s.Catalog.Create(models.ProductInput{
		Name:        "Ember Pour-Over Kettle",
		Description: "Gooseneck kettle with built-in thermometer for precise pour-over brewing.",
		Price:       decimal.NewFromFloat(54.00),
		Category:    "Home & Kitchen",
		Stock:       60,
		Brand:       "Ember",
		Material:    "Stainless Steel",
	})
	s.Catalog.Create(models.ProductInput{
		Name:        "Meridian Merino Crewneck",
		Description: "Midweight merino wool sweater, machine washable, classic fit.",
		Price:       decimal.NewFromFloat(120.00),
		Category:    "Clothing",
		Stock:       30,
		Brand:       "Meridian",
		Color:       "Navy",
		Material:    "100% Merino Wool",
	})
	s.Catalog.Create(models.ProductInput{
		Name:        "Lumen Smart Desk Lamp",
		Description: "App-controlled desk lamp with adjustable color temperature and scheduling.",
		Price:       decimal.NewFromFloat(79.99),
		Category:    "Electronics",
		Stock:       50,
		Brand:       "Lumen",
		Color:       "White",
		Features:    []string{"App Control", "Schedules", "USB-C Charging Port"},
	})
}
